package services

import (
	"context"
	"sync"
	"time"

	"github.com/microcuotas/app-solicitudes/internal/logging"
	"go.uber.org/zap"
)

// RateLimiter implements a token bucket rate limiter
type RateLimiter struct {
	tokens     int
	maxTokens  int
	refillRate time.Duration
	lastRefill time.Time
	mutex      sync.Mutex
	logger     *logging.SafeLogger
}

// NewRateLimiter creates a bucket of maxTokens that regains one token every refillRate
func NewRateLimiter(maxTokens int, refillRate time.Duration, logger *logging.SafeLogger) *RateLimiter {
	if maxTokens < 1 {
		maxTokens = 1
	}
	if refillRate <= 0 {
		refillRate = time.Second
	}
	return &RateLimiter{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		lastRefill: time.Now(),
		logger:     logger,
	}
}

// refill must be called with the mutex held
func (rl *RateLimiter) refill(now time.Time, operation string) {
	tokensToAdd := int(now.Sub(rl.lastRefill) / rl.refillRate)
	if tokensToAdd <= 0 {
		return
	}
	rl.tokens += tokensToAdd
	if rl.tokens >= rl.maxTokens {
		rl.tokens = rl.maxTokens
		rl.lastRefill = now
	} else {
		// keep the partial interval so slow callers are not penalized
		rl.lastRefill = rl.lastRefill.Add(time.Duration(tokensToAdd) * rl.refillRate)
	}

	rl.logger.Debug("rate limiter tokens refilled",
		zap.String("operation", operation),
		zap.Int("tokens_added", tokensToAdd),
		zap.Int("current_tokens", rl.tokens))
}

// Allow takes a token if one is available
func (rl *RateLimiter) Allow(ctx context.Context, operation string) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	rl.refill(time.Now(), operation)

	if rl.tokens > 0 {
		rl.tokens--
		return true
	}

	rl.logger.Warn("rate limiter rejected request",
		zap.String("operation", operation),
		zap.Int("max_tokens", rl.maxTokens))
	return false
}

// Wait blocks until a token is available or ctx is done
func (rl *RateLimiter) Wait(ctx context.Context, operation string) error {
	for {
		rl.mutex.Lock()
		now := time.Now()
		rl.refill(now, operation)
		if rl.tokens > 0 {
			rl.tokens--
			rl.mutex.Unlock()
			return nil
		}
		delay := rl.refillRate - now.Sub(rl.lastRefill)
		rl.mutex.Unlock()

		if delay <= 0 {
			delay = time.Millisecond
		}
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// GetStatus returns the available and maximum tokens
func (rl *RateLimiter) GetStatus() (int, int) {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()
	return rl.tokens, rl.maxTokens
}
