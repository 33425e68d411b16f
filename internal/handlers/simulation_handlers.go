package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcuotas/app-solicitudes/internal/logging"
	"github.com/microcuotas/app-solicitudes/internal/models"
	"github.com/microcuotas/app-solicitudes/internal/services"
)

const mensajeErrorParametros = "No se pudieron obtener los parámetros de simulación."

// SimulationHandlers exposes the simulation parameters
type SimulationHandlers struct {
	logger *logging.SafeLogger
	params *services.SimulationParamsService
}

func NewSimulationHandlers(logger *logging.SafeLogger, params *services.SimulationParamsService) *SimulationHandlers {
	return &SimulationHandlers{logger: logger, params: params}
}

// GetParams godoc
// @Summary Parámetros de simulación
// @Description Rango de cuotas y montos permitidos y el interés por cantidad de cuotas
// @Tags simulacion
// @Produce json
// @Success 200 {object} models.SimulationParams
// @Failure 500 {object} ErrorResponse
// @Router /simulacion/parametros [get]
func (h *SimulationHandlers) GetParams(c *gin.Context) {
	params, err := h.params.Get(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err, mensajeErrorParametros)
		return
	}
	c.JSON(http.StatusOK, params)
}

// UpdateParams godoc
// @Summary Actualizar parámetros de simulación
// @Description Reemplaza los parámetros de simulación (solo administradores)
// @Tags simulacion
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param parametros body models.SimulationParams true "Parámetros"
// @Success 200 {object} models.SimulationParams
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /simulacion/parametros [put]
func (h *SimulationHandlers) UpdateParams(c *gin.Context) {
	var req models.SimulationParams
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.UpdatedAt = nil

	params, err := h.params.Update(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err, mensajeErrorParametros)
		return
	}
	c.JSON(http.StatusOK, params)
}
