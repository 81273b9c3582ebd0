package domain

import (
	"context"
	"time"

	"github.com/sourcegraph/conc"

	"github.com/estrys/fediprofile/internal/logger"
	"github.com/estrys/fediprofile/internal/mastodon"
)

const FamiliarFollowersLimit = 3

type Insights struct {
	FamiliarFollowers []mastodon.Account
	PostingStats      *PostingStats
}

//go:generate mockery --name=InsightsFetcher
type InsightsFetcher interface {
	Fetch(ctx context.Context, change RelationshipChange, standalone bool) Insights
}

type insightsFetcher struct {
	log      logger.Logger
	provider mastodon.Provider
	now      func() time.Time
}

func NewInsightsFetcher(log logger.Logger, provider mastodon.Provider) *insightsFetcher {
	return &insightsFetcher{
		log:      log,
		provider: provider,
		now:      time.Now,
	}
}

// Fetch gathers familiar followers and posting stats of an account the viewer does not follow.
// Both calls run together and a failure only loses its own half.
func (f *insightsFetcher) Fetch(ctx context.Context, change RelationshipChange, standalone bool) Insights {
	var insights Insights
	if change.Relationship.Following || change.ResolvedID == "" {
		return insights
	}
	client := f.provider.Viewer()
	log := f.log.WithField("account", change.ResolvedID)

	var wg conc.WaitGroup
	wg.Go(func() {
		familiar, err := client.FetchFamiliarFollowers(ctx, change.ResolvedID)
		if err != nil {
			log.WithError(err).Warn("unable to fetch familiar followers")
			return
		}
		accounts := familiarAccounts(familiar, change.ResolvedID)
		if len(accounts) > FamiliarFollowersLimit {
			accounts = accounts[:FamiliarFollowersLimit]
		}
		insights.FamiliarFollowers = accounts
	})
	if !standalone {
		wg.Go(func() {
			statuses, err := client.ListStatuses(ctx, change.ResolvedID, PostingStatsWindow)
			if err != nil {
				log.WithError(err).Warn("unable to fetch statuses")
				return
			}
			stats := ComputePostingStats(statuses, change.ResolvedID, f.now())
			log.WithField("stats", stats).Debug("posting stats computed")
			insights.PostingStats = &stats
		})
	}
	wg.Wait()
	return insights
}

// familiarAccounts picks the entry of accountID, the server answering one entry per requested id.
func familiarAccounts(familiar []mastodon.FamiliarFollowers, accountID string) []mastodon.Account {
	for _, entry := range familiar {
		if entry.ID == accountID {
			return entry.Accounts
		}
	}
	if len(familiar) > 0 {
		return familiar[0].Accounts
	}
	return nil
}
