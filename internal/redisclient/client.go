package redisclient

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Client wraps a Redis client with OpenTelemetry tracing
type Client struct {
	cmdable redis.Cmdable
}

// NewClient creates a new traced Redis client for single Redis instance
func NewClient(client *redis.Client) *Client {
	return &Client{cmdable: client}
}

// NewClusterClient creates a new traced Redis client for Redis cluster
func NewClusterClient(client *redis.ClusterClient) *Client {
	return &Client{cmdable: client}
}

// startSpan opens a redis.<operation> span; the returned func records the
// outcome and ends it. redis.Nil is a miss, not an error.
func startSpan(ctx context.Context, operation string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	start := time.Now()
	attrs = append(attrs,
		attribute.String("redis.operation", operation),
		attribute.String("redis.client", "app-solicitudes"),
	)
	ctx, span := otel.Tracer("redis").Start(ctx, "redis."+operation, trace.WithAttributes(attrs...))

	return ctx, func(err error) {
		duration := time.Since(start)
		span.SetAttributes(
			attribute.Int64("redis.duration_ms", duration.Milliseconds()),
			attribute.String("redis.duration", duration.String()),
		)
		switch {
		case err == redis.Nil:
			span.SetAttributes(attribute.Bool("redis.hit", false))
			span.SetStatus(codes.Ok, "miss")
		case err != nil:
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.SetAttributes(attribute.String("redis.error", err.Error()))
		default:
			span.SetStatus(codes.Ok, "success")
		}
		span.End()
	}
}

// Get wraps Redis Get with tracing
func (c *Client) Get(ctx context.Context, key string) *redis.StringCmd {
	ctx, done := startSpan(ctx, "get", attribute.String("redis.key", key))
	cmd := c.cmdable.Get(ctx, key)
	done(cmd.Err())
	return cmd
}

// Set wraps Redis Set with tracing
func (c *Client) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	ctx, done := startSpan(ctx, "set",
		attribute.String("redis.key", key),
		attribute.String("redis.expiration", expiration.String()),
	)
	cmd := c.cmdable.Set(ctx, key, value, expiration)
	done(cmd.Err())
	return cmd
}

// Del wraps Redis Del with tracing
func (c *Client) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	ctx, done := startSpan(ctx, "del", attribute.StringSlice("redis.keys", keys))
	cmd := c.cmdable.Del(ctx, keys...)
	done(cmd.Err())
	return cmd
}

// Exists wraps Redis Exists with tracing
func (c *Client) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	ctx, done := startSpan(ctx, "exists", attribute.StringSlice("redis.keys", keys))
	cmd := c.cmdable.Exists(ctx, keys...)
	done(cmd.Err())
	return cmd
}

// TTL wraps Redis TTL with tracing
func (c *Client) TTL(ctx context.Context, key string) *redis.DurationCmd {
	ctx, done := startSpan(ctx, "ttl", attribute.String("redis.key", key))
	cmd := c.cmdable.TTL(ctx, key)
	done(cmd.Err())
	return cmd
}

// Ping wraps Redis Ping with tracing
func (c *Client) Ping(ctx context.Context) *redis.StatusCmd {
	ctx, done := startSpan(ctx, "ping")
	cmd := c.cmdable.Ping(ctx)
	done(cmd.Err())
	return cmd
}

// PoolStats returns pool statistics for single or cluster clients
func (c *Client) PoolStats() *redis.PoolStats {
	if singleClient, ok := c.cmdable.(*redis.Client); ok {
		return singleClient.PoolStats()
	}
	if clusterClient, ok := c.cmdable.(*redis.ClusterClient); ok {
		return clusterClient.PoolStats()
	}
	return &redis.PoolStats{}
}

// Close releases the underlying connections
func (c *Client) Close() error {
	if closer, ok := c.cmdable.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
