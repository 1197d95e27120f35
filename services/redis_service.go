package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keys per resource; writes invalidate, reads repopulate
const packageListKey = "packages:all"

func PackageDetailKey(packageID string) string {
	return fmt.Sprintf("packages:detail:%s", packageID)
}

func PackageReviewsKey(packageID string) string {
	return fmt.Sprintf("reviews:package:%s", packageID)
}

// GetFromRedis loads a cached value into target. A miss leaves target
// untouched and returns nil.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return err
	}
	return nil
}

// SetToRedis stores value as JSON with a TTL
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := rdb.Set(ctx, key, dataJSON, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// DeleteFromRedis drops one cache key
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	if err := rdb.Del(ctx, key).Err(); err != nil {
		return err
	}
	return nil
}

// InvalidatePackageCache drops every cached view of a package after a
// write that touched it or one of its children
func InvalidatePackageCache(ctx context.Context, rdb *redis.Client, packageID string) {
	if rdb == nil {
		return
	}
	_ = DeleteFromRedis(ctx, rdb, packageListKey)
	if packageID != "" {
		_ = DeleteFromRedis(ctx, rdb, PackageDetailKey(packageID))
		_ = DeleteFromRedis(ctx, rdb, PackageReviewsKey(packageID))
	}
}
