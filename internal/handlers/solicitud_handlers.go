package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcuotas/app-solicitudes/internal/logging"
	"github.com/microcuotas/app-solicitudes/internal/models"
	"github.com/microcuotas/app-solicitudes/internal/services"
	"github.com/microcuotas/app-solicitudes/internal/utils"
)

// SolicitudHandlers serves the applicant-facing wizard
type SolicitudHandlers struct {
	logger *logging.SafeLogger
	wizard *services.WizardService
}

// NewSolicitudHandlers creates the wizard handlers
func NewSolicitudHandlers(logger *logging.SafeLogger, wizard *services.WizardService) *SolicitudHandlers {
	return &SolicitudHandlers{
		logger: logger,
		wizard: wizard,
	}
}

// Simular godoc
// @Summary Simular préstamo
// @Description Valida cuotas y monto contra los parámetros vigentes y devuelve el valor de cada cuota
// @Tags solicitudes
// @Accept json
// @Produce json
// @Param simulacion body models.SimulacionRequest true "Cuotas y monto"
// @Success 200 {object} models.SimulacionResponse
// @Failure 400 {object} ErrorResponse
// @Router /solicitudes/simulacion [post]
func (h *SolicitudHandlers) Simular(c *gin.Context) {
	var req models.SimulacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.wizard.Simular(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err, models.MensajeErrorRegistro)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EvaluarEdad godoc
// @Summary Verificar edad
// @Description Rechaza a quienes no alcanzan los 18 años y 6 meses. El rechazo queda registrado.
// @Tags solicitudes
// @Accept json
// @Produce json
// @Param edad body models.EdadRequest true "Fecha de nacimiento"
// @Success 200 {object} models.EdadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} RejectionResponse
// @Router /solicitudes/edad [post]
func (h *SolicitudHandlers) EvaluarEdad(c *gin.Context) {
	var req models.EdadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.wizard.EvaluarEdad(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err, models.MensajeErrorRegistro)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerificarCuil godoc
// @Summary Verificar CUIL
// @Description Valida el formato del CUIL y que no tenga una solicitud en los últimos 30 días
// @Tags solicitudes
// @Accept json
// @Produce json
// @Param cuil body models.CuilRequest true "CUIL"
// @Success 200 {object} models.CuilResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /solicitudes/cuil [post]
func (h *SolicitudHandlers) VerificarCuil(c *gin.Context) {
	var req models.CuilRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.wizard.VerificarCuil(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err, models.MensajeErrorVerificacion)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VerificarIdentidad godoc
// @Summary Consultar situación crediticia
// @Description Consulta el CUIL en la central de deudores y evalúa la elegibilidad. Si la central no responde se pide cargar el nombre manualmente.
// @Tags solicitudes
// @Accept json
// @Produce json
// @Param identidad body models.IdentidadRequest true "CUIL y datos de la simulación"
// @Success 200 {object} models.IdentidadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} RejectionResponse
// @Router /solicitudes/identidad [post]
func (h *SolicitudHandlers) VerificarIdentidad(c *gin.Context) {
	var req models.IdentidadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx, span := utils.TraceInputValidation(c.Request.Context(), "identidad", "cuil")
	defer span.End()

	resp, err := h.wizard.VerificarIdentidad(ctx, req)
	if err != nil {
		utils.RecordErrorInSpan(span, err, nil)
		writeError(c, h.logger, err, models.MensajeErrorVerificacion)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RechazarIdentidad godoc
// @Summary Identidad no confirmada
// @Description Registra que el solicitante no reconoció el nombre informado para su CUIL
// @Tags solicitudes
// @Accept json
// @Produce json
// @Param rechazo body models.IdentidadRechazoRequest true "Datos mostrados al solicitante"
// @Success 201 {object} models.SolicitudResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /solicitudes/identidad/rechazo [post]
func (h *SolicitudHandlers) RechazarIdentidad(c *gin.Context) {
	var req models.IdentidadRechazoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.wizard.RechazarIdentidad(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err, models.MensajeErrorRegistro)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// EnviarSolicitud godoc
// @Summary Enviar solicitud
// @Description Valida los datos de contacto, verifica duplicados y registra la solicitud aceptada
// @Tags solicitudes
// @Accept json
// @Produce json
// @Param solicitud body models.SolicitudRequest true "Datos de la solicitud"
// @Success 201 {object} models.SolicitudResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /solicitudes [post]
func (h *SolicitudHandlers) EnviarSolicitud(c *gin.Context) {
	var req models.SolicitudRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	resp, err := h.wizard.EnviarSolicitud(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err, models.MensajeErrorRegistro)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
