package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jordanhope/matchengine/internal/types"
)

// DefaultReportCacheTTL is how long a hot-cached report stays valid. The
// postgres record remains the source of truth; Redis only saves a round trip.
const DefaultReportCacheTTL = 6 * time.Hour

// NewRedisClient creates and verifies a Redis client connection.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}

// ReportCache is a Redis-backed hot cache for match reports, keyed per
// (job, candidate) pair.
type ReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewReportCache wraps a Redis client. A non-positive TTL uses the default.
func NewReportCache(rdb *redis.Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = DefaultReportCacheTTL
	}
	return &ReportCache{rdb: rdb, ttl: ttl}
}

func reportCacheKey(jobID, candidateID uuid.UUID) string {
	return fmt.Sprintf("match:report:%s:%s", jobID, candidateID)
}

// Get returns the cached report for a pair, or (nil, nil) on a miss.
func (c *ReportCache) Get(ctx context.Context, jobID, candidateID uuid.UUID) (*types.MatchReport, error) {
	raw, err := c.rdb.Get(ctx, reportCacheKey(jobID, candidateID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var report types.MatchReport
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("decode cached report: %w", err)
	}
	return &report, nil
}

// Set stores a report under its pair key.
func (c *ReportCache) Set(ctx context.Context, report *types.MatchReport) error {
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	if err := c.rdb.Set(ctx, reportCacheKey(report.JobID, report.CandidateID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
