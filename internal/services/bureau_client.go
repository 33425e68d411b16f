package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/microcuotas/app-solicitudes/internal/logging"
	"github.com/microcuotas/app-solicitudes/internal/models"
	"github.com/microcuotas/app-solicitudes/internal/observability"
	"github.com/microcuotas/app-solicitudes/internal/redisclient"
	"github.com/microcuotas/app-solicitudes/internal/utils"
	"github.com/microcuotas/app-solicitudes/internal/utils/httpclient"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// BureauLookup fetches an applicant's debtor record by CUIL
type BureauLookup interface {
	Lookup(ctx context.Context, cuil string) (*models.BureauRecord, error)
}

// RetryConfig defines retry behavior for remote calls
type RetryConfig struct {
	MaxRetries    int
	BaseDelay     time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig returns the retry policy used for the bureau
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    2,
		BaseDelay:     200 * time.Millisecond,
		MaxDelay:      2 * time.Second,
		BackoffFactor: 2.0,
	}
}

// BureauClientConfig configures a BureauClient
type BureauClientConfig struct {
	BaseURL      string
	Timeout      time.Duration
	CacheTTL     time.Duration
	RateLimit    int
	RateInterval time.Duration
	Retry        RetryConfig
}

// BureauClient queries the BCRA Central de Deudores API
type BureauClient struct {
	baseURL  string
	client   *http.Client
	cache    *redisclient.Client
	cacheTTL time.Duration
	limiter  *RateLimiter
	retry    RetryConfig
	logger   *logging.SafeLogger
}

// NewBureauClient creates a client. cache may be nil to disable caching.
func NewBureauClient(cfg BureauClientConfig, cache *redisclient.Client, logger *logging.SafeLogger) *BureauClient {
	logger = logger.Named("bureau")
	return &BureauClient{
		baseURL:  cfg.BaseURL,
		client:   httpclient.New(cfg.Timeout),
		cache:    cache,
		cacheTTL: cfg.CacheTTL,
		limiter:  NewRateLimiter(cfg.RateLimit, cfg.RateInterval, logger),
		retry:    cfg.Retry,
		logger:   logger,
	}
}

// bureauStatusError is a non-200 answer from the bureau
type bureauStatusError struct {
	StatusCode int
}

func (e *bureauStatusError) Error() string {
	return fmt.Sprintf("bureau responded with status %d", e.StatusCode)
}

func bureauCacheKey(cuil string) string {
	return "bcra:cuil:" + cuil
}

// Lookup returns the record for cuil. A CUIL unknown to the bureau yields
// models.ErrBureauNotFound; any other failure yields models.ErrBureauUnavailable.
func (c *BureauClient) Lookup(ctx context.Context, cuil string) (*models.BureauRecord, error) {
	cuil = utils.NormalizeCUIL(cuil)
	if !utils.IsValidCUILFormat(cuil) {
		return nil, fmt.Errorf("%w: cuil must have 11 digits", models.ErrValidation)
	}

	ctx, span := utils.TraceExternalService(ctx, "bcra", "deudas")
	defer span.End()

	if record, ok := c.fromCache(ctx, cuil); ok {
		observability.BureauLookups.WithLabelValues("cache_hit").Inc()
		utils.AddSpanAttribute(span, "bureau.cache_hit", true)
		return record, nil
	}

	if err := c.limiter.Wait(ctx, "bcra_lookup"); err != nil {
		return nil, err
	}

	var body []byte
	start := time.Now()
	err := c.withRetry(ctx, func() error {
		var fetchErr error
		body, fetchErr = c.fetch(ctx, cuil)
		return fetchErr
	})
	observability.BureauLookupDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var statusErr *bureauStatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			observability.BureauLookups.WithLabelValues("not_found").Inc()
			return nil, models.ErrBureauNotFound
		}
		observability.BureauLookups.WithLabelValues("error").Inc()
		utils.RecordErrorInSpan(span, err, map[string]interface{}{"bureau.cuil": observability.MaskCUIL(cuil)})
		c.logger.Warn("bureau lookup failed",
			zap.String("cuil", observability.MaskCUIL(cuil)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", models.ErrBureauUnavailable, err)
	}

	record, err := decodeBureauRecord(body)
	if err != nil {
		observability.BureauLookups.WithLabelValues("malformed").Inc()
		c.logger.Warn("bureau returned a malformed body",
			zap.String("cuil", observability.MaskCUIL(cuil)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", models.ErrBureauUnavailable, err)
	}

	observability.BureauLookups.WithLabelValues("success").Inc()
	c.toCache(ctx, cuil, body)
	return record, nil
}

func (c *BureauClient) fetch(ctx context.Context, cuil string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/Deudas/"+cuil, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("failed to create bureau request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		return nil, fmt.Errorf("bureau request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read bureau response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		statusErr := &bureauStatusError{StatusCode: resp.StatusCode}
		if isRetryableStatus(resp.StatusCode) {
			return nil, statusErr
		}
		return nil, backoff.Permanent(statusErr)
	}
	return body, nil
}

// withRetry runs fn with exponential backoff. Errors wrapped with
// backoff.Permanent stop the loop immediately.
func (c *BureauClient) withRetry(ctx context.Context, fn func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retry.BaseDelay
	policy.MaxInterval = c.retry.MaxDelay
	policy.Multiplier = c.retry.BackoffFactor
	policy.MaxElapsedTime = 0
	if policy.InitialInterval <= 0 {
		policy.InitialInterval = backoff.DefaultInitialInterval
	}
	if policy.Multiplier < 1 {
		policy.Multiplier = backoff.DefaultMultiplier
	}
	if policy.MaxInterval < policy.InitialInterval {
		policy.MaxInterval = policy.InitialInterval
	}

	retries := c.retry.MaxRetries
	if retries < 0 {
		retries = 0
	}
	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(retries)), ctx)

	return backoff.RetryNotify(fn, b, func(err error, delay time.Duration) {
		c.logger.Debug("retrying bureau lookup",
			zap.Duration("delay", delay),
			zap.Error(err))
	})
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func decodeBureauRecord(body []byte) (*models.BureauRecord, error) {
	var envelope models.BureauResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("invalid bureau JSON: %w", err)
	}
	if envelope.Results == nil {
		return nil, errors.New("bureau response has no results")
	}
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("invalid bureau JSON: %w", err)
	}
	record := envelope.Results
	record.Raw = raw
	return record, nil
}

func (c *BureauClient) fromCache(ctx context.Context, cuil string) (*models.BureauRecord, bool) {
	if c.cache == nil {
		return nil, false
	}
	key := bureauCacheKey(cuil)
	ctx, span := utils.TraceCacheGet(ctx, key)
	defer span.End()

	cached, err := c.cache.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debug("bureau cache read failed", zap.Error(err))
		}
		observability.CacheHits.WithLabelValues("bcra", "miss").Inc()
		return nil, false
	}

	record, err := decodeBureauRecord([]byte(cached))
	if err != nil {
		observability.CacheHits.WithLabelValues("bcra", "miss").Inc()
		return nil, false
	}
	observability.CacheHits.WithLabelValues("bcra", "hit").Inc()
	return record, true
}

func (c *BureauClient) toCache(ctx context.Context, cuil string, body []byte) {
	if c.cache == nil || c.cacheTTL <= 0 {
		return
	}
	key := bureauCacheKey(cuil)
	ctx, span := utils.TraceCacheSet(ctx, key, c.cacheTTL)
	defer span.End()

	if err := c.cache.Set(ctx, key, string(body), c.cacheTTL).Err(); err != nil {
		c.logger.Debug("bureau cache write failed", zap.Error(err))
	}
}
