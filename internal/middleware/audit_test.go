package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/microcuotas/app-solicitudes/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestAuditMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(withClaims(claimsWithRoles("op", "report")), AuditMiddleware())
	router.DELETE("/v1/reportes/solicitudes/:id", func(c *gin.Context) {
		if c.Param("id") == "missing" {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusNoContent)
	})
	router.PUT("/v1/simulacion/parametros", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/v1/reportes/solicitudes", func(c *gin.Context) { c.Status(http.StatusOK) })

	deletes := observability.AuditEvents.WithLabelValues(AuditActionDelete, "solicitud")
	updates := observability.AuditEvents.WithLabelValues(AuditActionUpdate, "simulation_params")
	deletesBefore := testutil.ToFloat64(deletes)
	updatesBefore := testutil.ToFloat64(updates)

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/v1/reportes/solicitudes/abc"},
		{http.MethodDelete, "/v1/reportes/solicitudes/missing"},
		{http.MethodPut, "/v1/simulacion/parametros"},
		{http.MethodGet, "/v1/reportes/solicitudes"},
	}
	for _, r := range requests {
		req, _ := http.NewRequest(r.method, r.path, nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	// failed deletes and reads are not audited
	assert.Equal(t, deletesBefore+1, testutil.ToFloat64(deletes))
	assert.Equal(t, updatesBefore+1, testutil.ToFloat64(updates))
}

func TestAuditResource(t *testing.T) {
	tests := map[string]string{
		"/v1/reportes/solicitudes/:id": "solicitud",
		"/v1/simulacion/parametros":    "simulation_params",
		"/v1/solicitudes":              "solicitudes",
		"":                             "unknown",
	}
	for route, expected := range tests {
		assert.Equal(t, expected, auditResource(route), route)
	}
}
