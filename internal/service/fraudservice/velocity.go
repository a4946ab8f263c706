package fraudservice

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisVelocityWindow keeps one sorted set of reward timestamps per user,
// trimmed to the trailing window. This is a sliding window, not a bucket
// reset.
type RedisVelocityWindow struct {
	rdb    *redis.Client
	window time.Duration
}

func NewRedisVelocityWindow(rdb *redis.Client, window time.Duration) *RedisVelocityWindow {
	return &RedisVelocityWindow{
		rdb:    rdb,
		window: window,
	}
}

func velocityKey(userID string) string {
	return fmt.Sprintf("fraud:velocity:%s", userID)
}

func (w *RedisVelocityWindow) Count(ctx context.Context, userID string) (int, error) {
	key := velocityKey(userID)
	cutoff := time.Now().Add(-w.window).UnixNano()

	pipe := w.rdb.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(cutoff, 10))
	card := pipe.ZCard(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return int(card.Val()), nil
}

func (w *RedisVelocityWindow) Record(ctx context.Context, userID string) error {
	key := velocityKey(userID)

	pipe := w.rdb.Pipeline()
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(time.Now().UnixNano()),
		Member: uuid.NewString(),
	})
	pipe.Expire(ctx, key, w.window)
	_, err := pipe.Exec(ctx)
	return err
}
