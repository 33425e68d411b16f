package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/microcuotas/app-solicitudes/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger_DifferentStatusCodes(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogger())

	router.GET("/200", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{}) })
	router.GET("/400", func(c *gin.Context) { c.JSON(http.StatusBadRequest, gin.H{}) })
	router.GET("/500", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
		c.JSON(http.StatusInternalServerError, gin.H{})
	})

	tests := []struct {
		path   string
		status int
	}{
		{"/200", http.StatusOK},
		{"/400", http.StatusBadRequest},
		{"/500", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		req, _ := http.NewRequest(http.MethodGet, tt.path+"?cuil=20303948091", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, tt.status, w.Code)
	}
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("generated", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		id := w.Header().Get("X-Request-ID")
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 20; i++ {
			req, _ := http.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			id := w.Header().Get("X-Request-ID")
			assert.False(t, seen[id])
			seen[id] = true
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestRequestTracker(t *testing.T) {
	before := testutil.ToFloat64(observability.ActiveConnections)

	var during float64
	router := gin.New()
	router.Use(RequestTracker())
	router.GET("/test", func(c *gin.Context) {
		during = testutil.ToFloat64(observability.ActiveConnections)
		c.Status(http.StatusOK)
	})

	req, _ := http.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, before+1, during)
	assert.Equal(t, before, testutil.ToFloat64(observability.ActiveConnections))
}
