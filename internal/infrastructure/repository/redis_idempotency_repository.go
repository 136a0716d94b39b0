package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sangkips/cafeteria-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/cafeteria-pos/internal/domain/repository"
)

const idempotencyKeyPrefix = "cafeteria:idempotency:"

type redisIdempotencyRepository struct {
	rdb *redis.Client
}

// NewRedisIdempotencyRepository stores idempotency keys in redis with a TTL
// matching their expiry.
func NewRedisIdempotencyRepository(rdb *redis.Client) domainRepo.IdempotencyRepository {
	return &redisIdempotencyRepository{rdb: rdb}
}

func redisKey(key, clientID string) string {
	return idempotencyKeyPrefix + clientID + ":" + key
}

func (r *redisIdempotencyRepository) GetByKey(ctx context.Context, key, clientID string) (*entity.IdempotencyKey, error) {
	val, err := r.rdb.Get(ctx, redisKey(key, clientID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ikey entity.IdempotencyKey
	if err := json.Unmarshal([]byte(val), &ikey); err != nil {
		return nil, err
	}
	return &ikey, nil
}

func (r *redisIdempotencyRepository) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	ttl := time.Until(ikey.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	payload, err := json.Marshal(ikey)
	if err != nil {
		return err
	}
	return r.rdb.SetNX(ctx, redisKey(ikey.Key, ikey.ClientID), payload, ttl).Err()
}

// DeleteExpired is a no-op, redis evicts keys on their TTL.
func (r *redisIdempotencyRepository) DeleteExpired(context.Context, time.Time) error {
	return nil
}
