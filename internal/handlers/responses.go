package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcuotas/app-solicitudes/internal/logging"
	"github.com/microcuotas/app-solicitudes/internal/models"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error  string                   `json:"error"`
	Code   string                   `json:"code,omitempty"`
	Fields []models.ValidationError `json:"fields,omitempty"`
}

// RejectionResponse reports an applicant rejected by a wizard step
type RejectionResponse struct {
	Error       string                      `json:"error"`
	Code        string                      `json:"code"`
	Resultado   *models.ResultadoEvaluacion `json:"resultado,omitempty"`
	SolicitudID string                      `json:"solicitudId,omitempty"`
}

// writeError maps a service error onto its status code and body. fallback is
// the message shown for unexpected failures.
func writeError(c *gin.Context, logger *logging.SafeLogger, err error, fallback string) {
	var (
		rejection  *models.RejectionError
		validation models.ValidationErrors
		duplicates *models.DuplicateFieldsError
		recency    *models.RecencyError
	)

	switch {
	case errors.As(err, &rejection):
		c.JSON(http.StatusUnprocessableEntity, RejectionResponse{
			Error:       rejection.Descripcion,
			Code:        string(rejection.Motivo),
			Resultado:   rejection.Resultado,
			SolicitudID: rejection.SolicitudID,
		})
	case errors.As(err, &validation):
		message := "Datos inválidos"
		if len(validation) > 0 {
			message = validation[0].Message
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: message, Code: "validation_error", Fields: validation})
	case errors.As(err, &duplicates):
		fields := make([]models.ValidationError, 0, len(duplicates.Fields))
		for _, f := range duplicates.Fields {
			fields = append(fields, models.ValidationError{
				Field:   f,
				Code:    "duplicate",
				Message: models.MensajeDuplicados([]string{f}),
			})
		}
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:  models.MensajeDuplicados(duplicates.Fields),
			Code:   duplicates.Code,
			Fields: fields,
		})
	case errors.As(err, &recency):
		message := recency.Message
		if message == "" {
			message = models.MensajeCuilReciente
		}
		c.JSON(http.StatusConflict, ErrorResponse{Error: message, Code: models.ErrRecentApplication.Error()})
	case errors.Is(err, models.ErrSolicitudNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Solicitud no encontrada", Code: "not_found"})
	case errors.Is(err, models.ErrInvalidSolicitudID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "ID de solicitud inválido", Code: "invalid_id"})
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("request timed out", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusGatewayTimeout, ErrorResponse{Error: fallback, Code: "timeout"})
	default:
		logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback, Code: "internal_error"})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Datos inválidos: " + err.Error(), Code: "invalid_request"})
}
