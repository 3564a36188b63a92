package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"dealer-portal/internal/domain/payment"
	"dealer-portal/internal/infra"
	"dealer-portal/internal/pkg/config"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const keyPrefix = "pending_gateway_session:"

// RedisSessionStore holds at most one PendingGatewaySession per user: the
// slot written before the browser leaves for the gateway and consumed when
// it returns. GETDEL makes the consume atomic, so a reloaded return page can
// never observe the same session twice.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, cfg config.PaymentConfig) *RedisSessionStore {
	return &RedisSessionStore{
		client: client,
		ttl:    cfg.SessionTTL,
	}
}

func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = client.Close()
	}

	return client, cleanup, nil
}

// Put writes the session slot, overwriting any previous one for the user.
func (s *RedisSessionStore) Put(ctx context.Context, userID uuid.UUID, session *payment.PendingGatewaySession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return infra.WrapRepoErr("failed to encode gateway session", err, infra.KindStoreFailure)
	}

	if err := s.client.Set(ctx, key(userID), data, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to store gateway session", err, infra.KindStoreFailure)
	}
	return nil
}

// Consume reads and deletes the session in one round trip. Returns
// (nil, nil) when no session is pending; the caller treats that as a
// stale or duplicate return, not an error.
func (s *RedisSessionStore) Consume(ctx context.Context, userID uuid.UUID) (*payment.PendingGatewaySession, error) {
	data, err := s.client.GetDel(ctx, key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to consume gateway session", err, infra.KindStoreFailure)
	}

	var session payment.PendingGatewaySession
	if err := json.Unmarshal(data, &session); err != nil {
		// A corrupt slot has already been deleted; nothing left to reprocess.
		return nil, infra.WrapRepoErr("failed to decode gateway session", err, infra.KindStoreFailure)
	}
	return &session, nil
}

func key(userID uuid.UUID) string {
	return keyPrefix + userID.String()
}
