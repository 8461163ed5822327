package ratelimit

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"turf-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares limits across instances with a fixed window: burst
// requests per window, where the window is how long the bucket takes to refill.
type RedisStore struct {
	rdb    redis.Cmdable
	prefix string
	limit  int64
	window time.Duration
	now    func() time.Time
}

func NewRedisStore(rdb redis.Cmdable, prefix string, rps float64, burst int) *RedisStore {
	window := time.Second
	if rps > 0 && burst > 0 {
		window = time.Duration(math.Ceil(float64(burst) / rps * float64(time.Second)))
	}
	return &RedisStore{
		rdb:    rdb,
		prefix: strings.Trim(prefix, ":"),
		limit:  int64(burst),
		window: window,
		now:    time.Now,
	}
}

func (s *RedisStore) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	slot := s.now().UnixNano() / int64(s.window)
	redisKey := fmt.Sprintf("%s:%s:%d", s.prefix, key, slot)

	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, s.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, errs.Wrap(err, "rate limit counter")
	}

	if incr.Val() <= s.limit {
		return true, 0, nil
	}
	windowEnd := time.Unix(0, (slot+1)*int64(s.window))
	return false, windowEnd.Sub(s.now()), nil
}
