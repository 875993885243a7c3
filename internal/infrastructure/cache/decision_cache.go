// Package cache keeps recently evaluated decision records in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"

	"github.com/bibbank/decisioning/internal/domain/model"
	"github.com/bibbank/decisioning/internal/domain/port"
	"github.com/bibbank/decisioning/internal/infrastructure/codec"
)

const keyPrefix = "decisioning:record:"

// Compile-time interface check.
var _ port.DecisionCache = (*DecisionCache)(nil)

// Store is the subset of redis.Cmdable the cache uses.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// DecisionCache stores records under a hash of (profile, oracle version, raw features).
type DecisionCache struct {
	client Store
	ttl    time.Duration
}

// NewDecisionCache wraps a go-redis client. A non-positive ttl keeps entries until evicted.
func NewDecisionCache(client Store, ttl time.Duration) *DecisionCache {
	if ttl < 0 {
		ttl = 0
	}
	return &DecisionCache{client: client, ttl: ttl}
}

func (c *DecisionCache) Get(ctx context.Context, key port.CacheKey) (model.DecisionRecord, bool, error) {
	k, err := Key(key)
	if err != nil {
		return model.DecisionRecord{}, false, err
	}
	data, err := c.client.Get(ctx, k).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.DecisionRecord{}, false, nil
	}
	if err != nil {
		return model.DecisionRecord{}, false, fmt.Errorf("redis get: %w", err)
	}
	record, err := codec.DecodeRecord(data)
	if err != nil {
		return model.DecisionRecord{}, false, err
	}
	return record, true, nil
}

func (c *DecisionCache) Set(ctx context.Context, key port.CacheKey, record model.DecisionRecord) error {
	k, err := Key(key)
	if err != nil {
		return err
	}
	data, err := codec.EncodeRecord(record)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, k, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Key derives the Redis key. encoding/json writes map keys in sorted order,
// so equal feature maps always hash alike.
func Key(key port.CacheKey) (string, error) {
	features, err := json.Marshal(key.Features)
	if err != nil {
		return "", fmt.Errorf("hash features: %w", err)
	}
	d := xxhash.New()
	_, _ = d.WriteString(key.Profile.Key())
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(key.OracleVersion)
	_, _ = d.Write([]byte{0})
	_, _ = d.Write(features)
	return keyPrefix + key.Profile.Key() + ":" + strconv.FormatUint(d.Sum64(), 16), nil
}
