package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Juggernaut7/Task-Tidy/config"
	"github.com/Juggernaut7/Task-Tidy/models"
)

const analyticsTTL = 5 * time.Minute

func analyticsKey(owner string, periodDays int) string {
	return fmt.Sprintf("analytics:%s:%d", owner, periodDays)
}

// CachedAnalytics looks up a cached summary. Cache misses and Redis errors
// both come back as a miss; the caller recomputes.
func CachedAnalytics(ctx context.Context, owner string, periodDays int) (models.AnalyticsResponse, bool) {
	var resp models.AnalyticsResponse
	if config.RedisClient == nil {
		return resp, false
	}

	data, err := config.RedisClient.Get(ctx, analyticsKey(owner, periodDays)).Bytes()
	if err != nil {
		return resp, false
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return resp, false
	}
	return resp, true
}

// StoreAnalytics writes a summary into the cache, best effort.
func StoreAnalytics(ctx context.Context, owner string, periodDays int, resp models.AnalyticsResponse) {
	if config.RedisClient == nil {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := config.RedisClient.Set(ctx, analyticsKey(owner, periodDays), data, analyticsTTL).Err(); err != nil {
		config.Logger.Warnw("analytics cache store failed", "error", err, "owner", owner)
	}
}

// InvalidateAnalytics drops every cached period for the owner. Called after
// any task mutation; best effort.
func InvalidateAnalytics(ctx context.Context, owner string) {
	if config.RedisClient == nil {
		return
	}

	keys, err := config.RedisClient.Keys(ctx, fmt.Sprintf("analytics:%s:*", owner)).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := config.RedisClient.Del(ctx, keys...).Err(); err != nil {
		config.Logger.Warnw("analytics cache invalidation failed", "error", err, "owner", owner)
	}
}
