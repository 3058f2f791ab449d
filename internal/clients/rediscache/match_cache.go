package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/careerpilot/careerpilot-backend/internal/platform/logger"
	"github.com/careerpilot/careerpilot-backend/internal/scoring"
)

// MatchCache keeps the most recent ranked recommendations per user in redis.
// It is a read-through convenience on top of the relational cache table:
// concurrent writers for the same user race and the last writer wins. The
// key must be invalidated whenever the user's recorded skills change, so a
// cached entry is never stale relative to the scoring inputs.
type MatchCache interface {
	Get(ctx context.Context, userID string) ([]scoring.MatchResult, bool)
	Set(ctx context.Context, userID string, results []scoring.MatchResult)
	Invalidate(ctx context.Context, userID string)
	Close() error
}

type matchCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewMatchCache(log *logger.Logger) (MatchCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &matchCache{
		log: log.With("client", "RedisMatchCache"),
		rdb: rdb,
		ttl: 15 * time.Minute,
	}, nil
}

func key(userID string) string { return "recommendations:" + userID }

func (c *matchCache) Get(ctx context.Context, userID string) ([]scoring.MatchResult, bool) {
	raw, err := c.rdb.Get(ctx, key(userID)).Bytes()
	if err != nil {
		if err != goredis.Nil {
			c.log.Warn("Redis get failed", "error", err)
		}
		return nil, false
	}
	var results []scoring.MatchResult
	if err := json.Unmarshal(raw, &results); err != nil {
		c.log.Warn("Redis payload unmarshal failed", "error", err)
		return nil, false
	}
	return results, true
}

func (c *matchCache) Set(ctx context.Context, userID string, results []scoring.MatchResult) {
	raw, err := json.Marshal(results)
	if err != nil {
		c.log.Warn("Redis payload marshal failed", "error", err)
		return
	}
	if err := c.rdb.Set(ctx, key(userID), raw, c.ttl).Err(); err != nil {
		c.log.Warn("Redis set failed", "error", err)
	}
}

func (c *matchCache) Invalidate(ctx context.Context, userID string) {
	if err := c.rdb.Del(ctx, key(userID)).Err(); err != nil {
		c.log.Warn("Redis del failed", "error", err)
	}
}

func (c *matchCache) Close() error {
	return c.rdb.Close()
}
