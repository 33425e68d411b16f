package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcuotas/app-solicitudes/internal/observability"
	"go.uber.org/zap"
)

// Audit actions
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// AuditMiddleware records successful write operations of back-office users.
// Request bodies are not recorded.
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		action, ok := auditAction(c.Request.Method)
		if !ok {
			c.Next()
			return
		}

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		resource := auditResource(c.FullPath())
		user := ""
		if claims, err := GetClaims(c); err == nil {
			user = claims.PreferredUsername
		}

		observability.AuditEvents.WithLabelValues(action, resource).Inc()
		observability.Logger().Info("audit",
			zap.String("action", action),
			zap.String("resource", resource),
			zap.String("resource_id", c.Param("id")),
			zap.String("user", user),
			zap.String("request_id", c.GetString(RequestIDKey)),
			zap.String("ip_address", c.ClientIP()),
			zap.Int("status", status),
		)
	}
}

func auditAction(method string) (string, bool) {
	switch method {
	case http.MethodPost:
		return AuditActionCreate, true
	case http.MethodPut, http.MethodPatch:
		return AuditActionUpdate, true
	case http.MethodDelete:
		return AuditActionDelete, true
	}
	return "", false
}

// auditResource maps a route to the audited resource
func auditResource(route string) string {
	route = strings.TrimPrefix(route, "/v1/")
	switch {
	case strings.HasPrefix(route, "reportes/solicitudes"):
		return "solicitud"
	case strings.HasPrefix(route, "simulacion/parametros"):
		return "simulation_params"
	case route == "":
		return "unknown"
	}
	return strings.SplitN(route, "/", 2)[0]
}
