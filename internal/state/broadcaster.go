package state

import (
	"context"
	"strings"

	"github.com/go-redis/redis/v9"
	"github.com/gofrs/uuid"
	"github.com/pkg/errors"

	"github.com/estrys/fediprofile/internal/cache"
	"github.com/estrys/fediprofile/internal/logger"
)

const reloadChannel = "fediprofile:reload"

//go:generate mockery --name=Broadcaster
type Broadcaster interface {
	Publish(ctx context.Context, kind ReloadKind) error
	// Subscribe blocks until ctx is done, calling handler for reloads published by other processes.
	Subscribe(ctx context.Context, handler func(ReloadKind)) error
}

type redisBroadcaster struct {
	log    logger.Logger
	client *redis.Client
	origin string
}

func NewRedisBroadcaster(log logger.Logger, client *cache.RedisClient) (*redisBroadcaster, error) {
	origin, err := uuid.NewV4()
	if err != nil {
		return nil, errors.Wrap(err, "unable to generate broadcaster origin")
	}
	return &redisBroadcaster{
		log:    log,
		client: client.Client(),
		origin: origin.String(),
	}, nil
}

func (b *redisBroadcaster) Publish(ctx context.Context, kind ReloadKind) error {
	err := b.client.Publish(ctx, reloadChannel, encodeReload(b.origin, kind)).Err()
	if err != nil {
		return errors.Wrap(err, "unable to publish reload")
	}
	return nil
}

func (b *redisBroadcaster) Subscribe(ctx context.Context, handler func(ReloadKind)) error {
	pubsub := b.client.Subscribe(ctx, reloadChannel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return errors.Wrap(err, "unable to subscribe to reloads")
	}
	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case message, ok := <-messages:
			if !ok {
				return nil
			}
			origin, kind, valid := decodeReload(message.Payload)
			if !valid {
				b.log.WithField("payload", message.Payload).Warn("ignoring malformed reload message")
				continue
			}
			if origin == b.origin {
				continue
			}
			handler(kind)
		}
	}
}

func encodeReload(origin string, kind ReloadKind) string {
	return origin + "|" + string(kind)
}

func decodeReload(payload string) (string, ReloadKind, bool) {
	origin, kind, found := strings.Cut(payload, "|")
	if !found || origin == "" || kind == "" {
		return "", "", false
	}
	return origin, ReloadKind(kind), true
}
