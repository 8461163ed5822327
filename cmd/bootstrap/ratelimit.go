package bootstrap

import (
	"context"
	"time"

	"turf-booking/internal/handler/middleware"
	"turf-booking/internal/infra/ratelimit"
	"turf-booking/internal/pkg/config"
	"turf-booking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const redisKeyPrefix = "turf-booking:ratelimit:"

var RateLimitModule = fx.Module("ratelimit",
	fx.Provide(
		NewRateLimiter,
	),
)

func NewRateLimiter(lc fx.Lifecycle, cfg config.Config) (middleware.RateLimiter, error) {
	rl := cfg.RateLimit
	switch rl.Store {
	case "", "memory":
		store := ratelimit.NewMemoryStore(rl.RPS, rl.Burst, rl.IdleTTL)
		ctx, cancel := context.WithCancel(context.Background())
		lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				store.StartJanitor(ctx)
				return nil
			},
			OnStop: func(_ context.Context) error {
				cancel()
				return nil
			},
		})
		return store, nil

	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
				defer cancel()
				if err := rdb.Ping(ctx).Err(); err != nil {
					return errs.Wrap(err, "failed to ping redis")
				}
				return nil
			},
			OnStop: func(_ context.Context) error {
				return rdb.Close()
			},
		})
		return ratelimit.NewRedisStore(rdb, redisKeyPrefix, rl.RPS, rl.Burst), nil

	default:
		return nil, errs.Newf("unknown RATE_LIMIT_STORE %q", rl.Store)
	}
}
