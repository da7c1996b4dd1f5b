package redis

import (
	"context"
	"encoding/json"
	"time"

	sessionPort "clipcast/internal/ports/session"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const sessionChannel = "session:events"

// SessionBusRedis publishes session lifecycle events on a pub/sub channel so
// every subscriber sees sign-in, sign-out and token refresh as they happen.
type SessionBusRedis struct {
	Client *redis.Client
	Logger *zap.Logger
}

func NewSessionBusRedis(client *redis.Client, logger *zap.Logger) *SessionBusRedis {
	return &SessionBusRedis{
		Client: client,
		Logger: logger,
	}
}

func (b *SessionBusRedis) Publish(ctx context.Context, ev sessionPort.Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.Client.Publish(ctx, sessionChannel, payload).Err()
}

// Subscribe streams session events until ctx is cancelled. Malformed
// payloads are logged and skipped.
func (b *SessionBusRedis) Subscribe(ctx context.Context) (<-chan sessionPort.Event, error) {
	sub := b.Client.Subscribe(ctx, sessionChannel)
	if _, err := sub.Receive(ctx); err != nil {
		return nil, err
	}

	out := make(chan sessionPort.Event)
	go func() {
		defer close(out)
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				var ev sessionPort.Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					b.Logger.Warn("Dropping malformed session event", zap.Error(err))
					continue
				}
				out <- ev
			}
		}
	}()
	return out, nil
}

// RevokedTokenStoreRedis keeps signed-out tokens in a deny list until their
// natural expiry.
type RevokedTokenStoreRedis struct {
	Client *redis.Client
}

func NewRevokedTokenStoreRedis(client *redis.Client) *RevokedTokenStoreRedis {
	return &RevokedTokenStoreRedis{Client: client}
}

func (s *RevokedTokenStoreRedis) Revoke(ctx context.Context, token string, ttlSeconds int64) error {
	key := "session:revoked:" + token
	return s.Client.Set(ctx, key, "1", time.Duration(ttlSeconds)*time.Second).Err()
}

func (s *RevokedTokenStoreRedis) IsRevoked(ctx context.Context, token string) (bool, error) {
	key := "session:revoked:" + token
	n, err := s.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
