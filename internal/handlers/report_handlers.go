package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcuotas/app-solicitudes/internal/logging"
	"github.com/microcuotas/app-solicitudes/internal/models"
	"github.com/microcuotas/app-solicitudes/internal/services"
	"go.uber.org/zap"
)

const reportFilename = "solicitudes.csv"

const mensajeErrorReporte = "No se pudo obtener el reporte. Intentá nuevamente."

// ReportHandlers serves the back-office application report
type ReportHandlers struct {
	logger *logging.SafeLogger
	report *services.ReportService
}

// NewReportHandlers creates the report handlers
func NewReportHandlers(logger *logging.SafeLogger, report *services.ReportService) *ReportHandlers {
	return &ReportHandlers{
		logger: logger,
		report: report,
	}
}

// List godoc
// @Summary Listar solicitudes
// @Description Lista paginada de solicitudes con filtros por fecha, estado, motivo, columnas y búsqueda libre
// @Tags reportes
// @Produce json
// @Security BearerAuth
// @Param desde query string false "Fecha inicial (YYYY-MM-DD)"
// @Param hasta query string false "Fecha final (YYYY-MM-DD)"
// @Param estado query string false "todos, aceptada o rechazada"
// @Param motivo query string false "Código o descripción del motivo"
// @Param cuil query string false "CUIL exacto"
// @Param nombre query string false "Nombre exacto"
// @Param apellido query string false "Apellido exacto"
// @Param telefono query string false "Teléfono exacto"
// @Param fecha query string false "Fecha exacta, tal como se muestra"
// @Param q query string false "Búsqueda libre"
// @Param sort query string false "cuil, nombre, apellido, telefono, fecha_asc o fecha_desc"
// @Param page query int false "Página" default(1)
// @Param per_page query int false "Filas por página" default(20)
// @Success 200 {object} models.ReportPage
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /reportes/solicitudes [get]
func (h *ReportHandlers) List(c *gin.Context) {
	var q models.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	page, err := h.report.List(c.Request.Context(), q)
	if err != nil {
		writeError(c, h.logger, err, mensajeErrorReporte)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Export godoc
// @Summary Exportar solicitudes
// @Description Descarga en CSV todas las solicitudes que cumplen los filtros
// @Tags reportes
// @Produce text/csv
// @Security BearerAuth
// @Param desde query string false "Fecha inicial (YYYY-MM-DD)"
// @Param hasta query string false "Fecha final (YYYY-MM-DD)"
// @Param estado query string false "todos, aceptada o rechazada"
// @Param motivo query string false "Código o descripción del motivo"
// @Param q query string false "Búsqueda libre"
// @Param sort query string false "Orden"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /reportes/solicitudes/export [get]
func (h *ReportHandlers) Export(c *gin.Context) {
	var q models.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	// buffered so a failure can still be reported as JSON
	var buf bytes.Buffer
	count, err := h.report.ExportCSV(c.Request.Context(), q, &buf)
	if err != nil {
		writeError(c, h.logger, err, mensajeErrorReporte)
		return
	}

	h.logger.Debug("sending report export", zap.Int("rows", count), zap.Int("bytes", buf.Len()))
	c.Header("Content-Disposition", `attachment; filename="`+reportFilename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Delete godoc
// @Summary Eliminar solicitud
// @Description Elimina una solicitud del registro
// @Tags reportes
// @Security BearerAuth
// @Param id path string true "ID de la solicitud"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reportes/solicitudes/{id} [delete]
func (h *ReportHandlers) Delete(c *gin.Context) {
	if err := h.report.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err, "No se pudo eliminar la solicitud. Intentá nuevamente.")
		return
	}
	c.Status(http.StatusNoContent)
}
