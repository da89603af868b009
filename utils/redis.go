package utils

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	password := os.Getenv("REDIS_PASSWORD")

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
}

// GetCached loads a JSON value into dest. The bool reports a cache hit.
func GetCached(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(data), dest)
}

func SetCached(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return RedisClient.Set(ctx, key, data, ttl).Err()
}

// GenerateQueryCacheKey builds a stable cache key from query parameters.
func GenerateQueryCacheKey(prefix string, queryParams map[string]string) string {
	keys := make([]string, 0, len(queryParams))
	for k := range queryParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, k := range keys {
		if i > 0 {
			builder.WriteString(":")
		}
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(queryParams[k])
	}

	hash := md5.Sum([]byte(builder.String()))
	hashStr := hex.EncodeToString(hash[:])

	return prefix + ":" + hashStr
}

const revokedTokenPrefix = "revoked_token"

func tokenKey(token string) string {
	hash := md5.Sum([]byte(token))
	return revokedTokenPrefix + ":" + hex.EncodeToString(hash[:])
}

// RevokeToken marks a token as signed out until it would have expired anyway.
func RevokeToken(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return RedisClient.Set(ctx, tokenKey(token), "1", ttl).Err()
}

// IsTokenRevoked reports whether a token has been signed out. Redis errors
// are treated as "not revoked" so an unavailable cache does not lock every
// session out.
func IsTokenRevoked(ctx context.Context, token string) bool {
	_, err := RedisClient.Get(ctx, tokenKey(token)).Result()
	return err == nil
}
