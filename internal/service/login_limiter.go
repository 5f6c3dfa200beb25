package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"vaccination-management/config"
	"vaccination-management/internal/domain/apperror"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrTooManyLoginAttempts = apperror.New(apperror.KindTooManyRequests, "too many failed login attempts, try again later")

const loginFailureKeyPrefix = "login:failures:"

// LoginLimiter counts failed logins per email in Redis. Once MaxAttempts failures
// fall inside Window, further attempts are refused until the counter expires.
// A nil limiter allows everything.
type LoginLimiter struct {
	client      *redis.Client
	log         *logrus.Logger
	maxAttempts int
	window      time.Duration
}

func NewLoginLimiter(client *redis.Client, log *logrus.Logger, cfg config.LoginConfig) *LoginLimiter {
	if client == nil || cfg.MaxAttempts <= 0 {
		return nil
	}
	return &LoginLimiter{
		client:      client,
		log:         log,
		maxAttempts: cfg.MaxAttempts,
		window:      cfg.Window,
	}
}

func loginFailureKey(email string) string {
	return loginFailureKeyPrefix + strings.ToLower(strings.TrimSpace(email))
}

// Check fails with ErrTooManyLoginAttempts while email is locked out.
// Redis being unavailable never blocks a login.
func (l *LoginLimiter) Check(ctx context.Context, email string) error {
	if l == nil {
		return nil
	}

	count, err := l.client.Get(ctx, loginFailureKey(email)).Int()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		l.log.Warnf("Failed to read login failures: %+v", err)
		return nil
	}
	if count >= l.maxAttempts {
		return ErrTooManyLoginAttempts
	}
	return nil
}

// RecordFailure increments the counter; the window starts at the first failure.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) {
	if l == nil {
		return
	}

	key := loginFailureKey(email)
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		l.log.Warnf("Failed to record login failure: %+v", err)
		return
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			l.log.Warnf("Failed to set login failure window: %+v", err)
		}
	}
}

// Reset clears the counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) {
	if l == nil {
		return
	}
	if err := l.client.Del(ctx, loginFailureKey(email)).Err(); err != nil {
		l.log.Warnf("Failed to reset login failures: %+v", err)
	}
}
