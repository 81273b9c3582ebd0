package domain

import (
	"math"
	"time"

	"github.com/estrys/fediprofile/internal/mastodon"
)

const (
	PostingStatsWindow = 20
	minPostingStats    = 3
)

type PostingStats struct {
	Total             int `json:"total"`
	Originals         int `json:"originals"`
	Replies           int `json:"replies"`
	Boosts            int `json:"boosts"`
	DaysSinceLastPost int `json:"days_since_last_post"`
}

// Active tells if there are enough statuses for the stats to mean anything.
func (s PostingStats) Active() bool {
	return s.Total >= minPostingStats
}

type StatusKind string

const (
	StatusOriginal StatusKind = "original"
	StatusReply    StatusKind = "reply"
	StatusBoost    StatusKind = "boost"
)

// Classify sorts a status of accountID, replies to itself being threads and counted as originals.
func Classify(status mastodon.Status, accountID string) StatusKind {
	switch {
	case status.Reblog != nil:
		return StatusBoost
	case status.InReplyToID != "" && status.InReplyToAccountID != accountID:
		return StatusReply
	default:
		return StatusOriginal
	}
}

func ComputePostingStats(statuses []mastodon.Status, accountID string, now time.Time) PostingStats {
	stats := PostingStats{Total: len(statuses)}
	if len(statuses) == 0 {
		return stats
	}

	oldest := statuses[0].CreatedAt
	for _, status := range statuses {
		switch Classify(status, accountID) {
		case StatusBoost:
			stats.Boosts++
		case StatusReply:
			stats.Replies++
		case StatusOriginal:
			stats.Originals++
		}
		if status.CreatedAt.Before(oldest) {
			oldest = status.CreatedAt
		}
	}
	stats.DaysSinceLastPost = int(math.Ceil(now.Sub(oldest).Hours() / 24))
	return stats
}
