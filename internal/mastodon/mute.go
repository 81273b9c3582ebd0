package mastodon

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

type MuteDuration time.Duration

const (
	MuteFiveMinutes   = MuteDuration(5 * time.Minute)
	MuteThirtyMinutes = MuteDuration(30 * time.Minute)
	MuteOneHour       = MuteDuration(time.Hour)
	MuteSixHours      = MuteDuration(6 * time.Hour)
	MuteOneDay        = MuteDuration(24 * time.Hour)
	MuteThreeDays     = MuteDuration(3 * 24 * time.Hour)
	MuteOneWeek       = MuteDuration(7 * 24 * time.Hour)
	MuteForever       = MuteDuration(0)
)

var ErrUnknownMuteDuration = errors.New("unknown mute duration")

// MuteDurations is the fixed set offered to the viewer, in menu order.
var MuteDurations = []MuteDuration{ //nolint:gochecknoglobals
	MuteFiveMinutes,
	MuteThirtyMinutes,
	MuteOneHour,
	MuteSixHours,
	MuteOneDay,
	MuteThreeDays,
	MuteOneWeek,
	MuteForever,
}

var muteDurationLabels = map[MuteDuration]string{ //nolint:gochecknoglobals
	MuteForever:       "Forever",
	MuteFiveMinutes:   "5 minutes",
	MuteThirtyMinutes: "30 minutes",
	MuteOneHour:       "1 hour",
	MuteSixHours:      "6 hours",
	MuteOneDay:        "1 day",
	MuteThreeDays:     "3 days",
	MuteOneWeek:       "1 week",
}

var muteDurationAliases = map[string]MuteDuration{ //nolint:gochecknoglobals
	"5m":      MuteFiveMinutes,
	"30m":     MuteThirtyMinutes,
	"1h":      MuteOneHour,
	"6h":      MuteSixHours,
	"1d":      MuteOneDay,
	"3d":      MuteThreeDays,
	"1w":      MuteOneWeek,
	"0":       MuteForever,
	"forever": MuteForever,
}

// Milliseconds is the value sent as the mute request duration, 0 meaning forever.
func (d MuteDuration) Milliseconds() int64 {
	return time.Duration(d).Milliseconds()
}

func (d MuteDuration) Label() string {
	return muteDurationLabels[d]
}

func (d MuteDuration) Valid() bool {
	_, ok := muteDurationLabels[d]
	return ok
}

func (d MuteDuration) String() string {
	if label := d.Label(); label != "" {
		return label
	}
	return time.Duration(d).String()
}

// ParseMuteDuration accepts the short aliases ("5m" ... "1w", "forever") and any Go
// duration matching one of the offered values.
func ParseMuteDuration(value string) (MuteDuration, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if duration, ok := muteDurationAliases[value]; ok {
		return duration, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.Wrapf(ErrUnknownMuteDuration, "%q", value)
	}
	duration := MuteDuration(parsed)
	if !duration.Valid() {
		return 0, errors.Wrapf(ErrUnknownMuteDuration, "%q", value)
	}
	return duration, nil
}
