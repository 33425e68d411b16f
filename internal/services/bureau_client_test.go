package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/microcuotas/app-solicitudes/internal/logging"
	"github.com/microcuotas/app-solicitudes/internal/models"
	"github.com/microcuotas/app-solicitudes/internal/redisclient"
	"github.com/microcuotas/app-solicitudes/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bureauBody = `{
  "status": 200,
  "results": {
    "identificacion": 20303948091,
    "denominacion": "PEREZ ANA MARIA",
    "periodos": [
      {"periodo": "202404", "entidades": [{"entidad": "BANCO A", "situacion": 1, "monto": 120.5}]},
      {"periodo": "202405", "entidades": [{"entidad": "BANCO B", "situacion": 1, "monto": 10}]}
    ]
  }
}`

func newTestBureauClient(baseURL string, cache *redisclient.Client) *BureauClient {
	return NewBureauClient(BureauClientConfig{
		BaseURL:      baseURL,
		Timeout:      2 * time.Second,
		CacheTTL:     time.Hour,
		RateLimit:    100,
		RateInterval: time.Millisecond,
		Retry: RetryConfig{
			MaxRetries:    2,
			BaseDelay:     time.Millisecond,
			MaxDelay:      5 * time.Millisecond,
			BackoffFactor: 2,
		},
	}, cache, logging.NewNop())
}

func TestBureauClient_Lookup_Success(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(bureauBody))
	}))
	defer server.Close()

	client := newTestBureauClient(server.URL, nil)
	record, err := client.Lookup(context.Background(), "20-30394809-1")
	require.NoError(t, err)

	assert.Equal(t, "/Deudas/20303948091", path)
	assert.Equal(t, "PEREZ ANA MARIA", record.Denominacion)
	assert.Equal(t, int64(20303948091), record.Identificacion)
	require.Len(t, record.Periodos, 2)
	assert.Equal(t, "BANCO A", record.Periodos[0].Entidades[0].Entidad)
	assert.NotNil(t, record.Raw["results"])
}

func TestBureauClient_Lookup_NotFound(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestBureauClient(server.URL, nil).Lookup(context.Background(), "20303948091")
	assert.ErrorIs(t, err, models.ErrBureauNotFound)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "404 is not retried")
}

func TestBureauClient_Lookup_RetriesTransientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(bureauBody))
	}))
	defer server.Close()

	record, err := newTestBureauClient(server.URL, nil).Lookup(context.Background(), "20303948091")
	require.NoError(t, err)
	assert.Equal(t, "PEREZ ANA MARIA", record.Denominacion)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestBureauClient_Lookup_Unavailable(t *testing.T) {
	tests := []struct {
		name          string
		handler       http.HandlerFunc
		expectedCalls int32
	}{
		{
			name: "persistent 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			expectedCalls: 3,
		},
		{
			name: "client error is not retried",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			},
			expectedCalls: 1,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"status": 200, "results": [`))
			},
			expectedCalls: 1,
		},
		{name: "empty object", handler: writeBody(`{}`), expectedCalls: 1},
		{name: "null body", handler: writeBody(`null`), expectedCalls: 1},
		{name: "status without results", handler: writeBody(`{"status": 200}`), expectedCalls: 1},
		{name: "null results", handler: writeBody(`{"status": 200, "results": null}`), expectedCalls: 1},
		{name: "error messages only", handler: writeBody(`{"status": 200, "errorMessages": ["servicio no disponible"]}`), expectedCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				tt.handler(w, r)
			}))
			defer server.Close()

			_, err := newTestBureauClient(server.URL, nil).Lookup(context.Background(), "20303948091")
			assert.ErrorIs(t, err, models.ErrBureauUnavailable)
			assert.Equal(t, tt.expectedCalls, atomic.LoadInt32(&calls))
		})
	}
}

func writeBody(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}
}

func TestBureauClient_Lookup_EmptyBodyNotCached(t *testing.T) {
	cache := redisclient.NewClient(testutil.StartRedis(t))

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			_, _ = w.Write([]byte(`{"status": 200}`))
			return
		}
		_, _ = w.Write([]byte(bureauBody))
	}))
	defer server.Close()

	client := newTestBureauClient(server.URL, cache)
	ctx := context.Background()

	_, err := client.Lookup(ctx, "20303948091")
	require.ErrorIs(t, err, models.ErrBureauUnavailable)

	exists, err := cache.Exists(ctx, "bcra:cuil:20303948091").Result()
	require.NoError(t, err)
	assert.Zero(t, exists)

	record, err := client.Lookup(ctx, "20303948091")
	require.NoError(t, err)
	assert.Equal(t, "PEREZ ANA MARIA", record.Denominacion)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestBureauClient_Lookup_IgnoresCachedEmptyBody(t *testing.T) {
	cache := redisclient.NewClient(testutil.StartRedis(t))
	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, "bcra:cuil:20303948091", `{}`, time.Minute).Err())

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(bureauBody))
	}))
	defer server.Close()

	record, err := newTestBureauClient(server.URL, cache).Lookup(ctx, "20303948091")
	require.NoError(t, err)
	assert.Len(t, record.Periodos, 2)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestBureauClient_Lookup_InvalidCUIL(t *testing.T) {
	client := newTestBureauClient("http://127.0.0.1:1", nil)
	_, err := client.Lookup(context.Background(), "123")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestBureauClient_Lookup_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(bureauBody))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := newTestBureauClient(server.URL, nil).Lookup(ctx, "20303948091")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBureauClient_Lookup_UsesRedisCache(t *testing.T) {
	cache := redisclient.NewClient(testutil.StartRedis(t))

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		_, _ = w.Write([]byte(bureauBody))
	}))
	defer server.Close()

	client := newTestBureauClient(server.URL, cache)
	ctx := context.Background()

	first, err := client.Lookup(ctx, "20303948091")
	require.NoError(t, err)
	second, err := client.Lookup(ctx, "20303948091")
	require.NoError(t, err)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, first.Denominacion, second.Denominacion)

	ttl, err := cache.TTL(ctx, "bcra:cuil:20303948091").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}
