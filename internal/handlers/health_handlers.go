package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcuotas/app-solicitudes/internal/logging"
	"github.com/microcuotas/app-solicitudes/internal/utils"
	"go.uber.org/zap"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

const healthCheckTimeout = 2 * time.Second

// HealthResponse reports the API status and each dependency
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Services  map[string]string `json:"services"`
}

// DependencyCheck pings one dependency. A failing critical dependency marks
// the API unhealthy; any other failure only degrades it.
type DependencyCheck struct {
	Name     string
	Critical bool
	Ping     func(ctx context.Context) error
}

type HealthHandlers struct {
	logger *logging.SafeLogger
	checks []DependencyCheck
}

func NewHealthHandlers(logger *logging.SafeLogger, checks ...DependencyCheck) *HealthHandlers {
	return &HealthHandlers{logger: logger, checks: checks}
}

// HealthCheck godoc
// @Summary Estado del servicio
// @Description Verifica el estado de la API y sus dependencias
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Servicio operativo"
// @Failure 503 {object} HealthResponse "Una dependencia crítica no responde"
// @Router /health [get]
func (h *HealthHandlers) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	health := HealthResponse{
		Status:    statusHealthy,
		Timestamp: time.Now().UTC(),
		Services:  make(map[string]string, len(h.checks)),
	}

	for _, check := range h.checks {
		_, span := utils.TraceExternalService(ctx, check.Name, "ping")
		err := check.Ping(ctx)
		if err == nil {
			health.Services[check.Name] = statusHealthy
			span.End()
			continue
		}

		utils.RecordErrorInSpan(span, err, map[string]interface{}{"service.name": check.Name})
		span.End()
		h.logger.Warn("dependency check failed", zap.String("service", check.Name), zap.Error(err))

		health.Services[check.Name] = statusUnhealthy
		if check.Critical {
			health.Status = statusUnhealthy
		} else if health.Status == statusHealthy {
			health.Status = statusDegraded
		}
	}

	if health.Status == statusUnhealthy {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}
	c.JSON(http.StatusOK, health)
}
