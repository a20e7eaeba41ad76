package session

import (
	"context"
	"errors"

	"bonrecords/kv"

	"github.com/redis/go-redis/v9"
)

// RedisKV stores session entries as plain Redis strings without expiry.
type RedisKV struct {
	rdb    *redis.Client
	prefix string
}

var _ kv.Store = (*RedisKV)(nil)

func NewRedisKV(rdb *redis.Client, prefix string) *RedisKV {
	return &RedisKV{rdb: rdb, prefix: prefix}
}

func (s *RedisKV) key(k string) string { return s.prefix + k }

func (s *RedisKV) Get(ctx context.Context, key string) (string, error) {
	v, err := s.rdb.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", kv.ErrNotFound
	}
	return v, err
}

func (s *RedisKV) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, s.key(key), value, 0).Err()
}

func (s *RedisKV) Delete(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, s.key(key)).Err()
}

func (s *RedisKV) Close() error { return s.rdb.Close() }
