package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// LoginLimiter throttles failed login attempts per email using a Redis
// counter with a rolling window. Without a Redis address it permits
// everything.
type LoginLimiter struct {
	client   *redis.Client
	maxTries int
	window   time.Duration
	logger   *logrus.Logger
}

func NewLoginLimiter(redisAddr string, maxTries int, window time.Duration, logger *logrus.Logger) *LoginLimiter {
	l := &LoginLimiter{maxTries: maxTries, window: window, logger: logger}
	if redisAddr == "" {
		logger.Info("Login rate limiting disabled, no Redis address configured")
		return l
	}
	l.client = redis.NewClient(&redis.Options{Addr: redisAddr})
	return l
}

// Allow reports whether another login attempt for email may proceed.
func (l *LoginLimiter) Allow(ctx context.Context, email string) bool {
	if l.client == nil {
		return true
	}
	n, err := l.client.Get(ctx, l.key(email)).Int()
	if err != nil && err != redis.Nil {
		l.logger.WithError(err).Warn("Rate limiter unavailable, allowing attempt")
		return true
	}
	return n < l.maxTries
}

// RecordFailure counts one failed attempt for email.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) {
	if l.client == nil {
		return
	}
	key := l.key(email)
	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		l.logger.WithError(err).Warn("Failed to record login attempt")
		return
	}
	if int(incr.Val()) == l.maxTries {
		l.logger.WithField("email", email).Warn("Login attempt limit reached")
	}
}

// Reset clears the failure counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) {
	if l.client == nil {
		return
	}
	if err := l.client.Del(ctx, l.key(email)).Err(); err != nil {
		l.logger.WithError(err).Warn("Failed to reset login attempts")
	}
}

func (l *LoginLimiter) key(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}
