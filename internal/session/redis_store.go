package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ridloal/storefront-bff/internal/platform/logger"
)

// RedisStore menyimpan satu hash per session: session:<id> -> {token, username}.
type RedisStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisStore(rdb redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (s *RedisStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	val, err := s.rdb.HGet(ctx, s.sessionKey(sessionID), key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		logger.Error("RedisStore.Get: HGET failed for key "+key, err)
		return "", err
	}
	return val, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID, key, value string) error {
	redisKey := s.sessionKey(sessionID)
	if err := s.rdb.HSet(ctx, redisKey, key, value).Err(); err != nil {
		logger.Error("RedisStore.Set: HSET failed for key "+key, err)
		return err
	}
	// Perpanjang TTL setiap ada write
	if s.ttl > 0 {
		if err := s.rdb.Expire(ctx, redisKey, s.ttl).Err(); err != nil {
			logger.Error("RedisStore.Set: EXPIRE failed", err)
			return err
		}
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, s.sessionKey(sessionID)).Err(); err != nil {
		logger.Error("RedisStore.Clear: DEL failed", err)
		return err
	}
	return nil
}
