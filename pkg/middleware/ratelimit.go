package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"maintenance-system/internal/repositories"
)

// RateLimiter ограничивает число запросов с одного IP в заданном окне.
// Счётчики живут в Redis (INCR + EXPIRE), поэтому лимит общий для всех
// экземпляров приложения.
type RateLimiter struct {
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
	window    time.Duration
	max       int
	keyPrefix string
}

func NewRateLimiter(cacheRepo repositories.CacheRepositoryInterface, logger *zap.Logger, window time.Duration, max int, keyPrefix string) *RateLimiter {
	return &RateLimiter{
		cacheRepo: cacheRepo,
		logger:    logger,
		window:    window,
		max:       max,
		keyPrefix: keyPrefix,
	}
}

func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		key := fmt.Sprintf("%s:%s", rl.keyPrefix, c.RealIP())

		count, err := rl.cacheRepo.Incr(ctx, key)
		if err != nil {
			// Недоступный Redis не должен ронять запросы.
			rl.logger.Warn("RateLimiter: не удалось увеличить счётчик", zap.Error(err))
			return next(c)
		}

		if count == 1 {
			if _, err := rl.cacheRepo.Expire(ctx, key, rl.window); err != nil {
				rl.logger.Warn("RateLimiter: не удалось установить TTL счётчика", zap.Error(err))
			}
		}

		if count > int64(rl.max) {
			rl.logger.Warn("RateLimiter: превышен лимит запросов",
				zap.String("ip", c.RealIP()),
				zap.Int64("count", count),
			)
			return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
				"status":  false,
				"message": "Слишком много запросов, попробуйте позже",
			})
		}

		return next(c)
	}
}
