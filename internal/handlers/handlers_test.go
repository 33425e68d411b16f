package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcuotas/app-solicitudes/internal/logging"
	"github.com/microcuotas/app-solicitudes/internal/models"
	"github.com/microcuotas/app-solicitudes/internal/services"
	"github.com/stretchr/testify/require"
)

const testCUIL = "20303948091"

func init() {
	gin.SetMode(gin.TestMode)
}

type stubBureau struct {
	record *models.BureauRecord
	err    error
}

func (b *stubBureau) Lookup(ctx context.Context, cuil string) (*models.BureauRecord, error) {
	return b.record, b.err
}

type fixture struct {
	router *gin.Engine
	store  *services.MemorySolicitudStore
	bureau *stubBureau
}

// newFixture mounts the public and back-office routes without auth
func newFixture() *fixture {
	logger := logging.NewNop()
	store := services.NewMemorySolicitudStore()
	guard := services.NewSolicitudGuard(store, logger)
	params := services.NewSimulationParamsService(services.NewMemorySimulationParamsStore(), nil, 0, logger)
	bureau := &stubBureau{}
	wizard := services.NewWizardService(guard, bureau, params, services.WizardConfig{
		RecencyWindowDays: 30,
		TestCUIL:          testCUIL,
		Location:          time.UTC,
	}, logger)
	report := services.NewReportService(store, time.UTC, logger)

	solicitudes := NewSolicitudHandlers(logger, wizard)
	reportes := NewReportHandlers(logger, report)
	simulacion := NewSimulationHandlers(logger, params)

	router := gin.New()
	v1 := router.Group("/v1")
	v1.GET("/simulacion/parametros", simulacion.GetParams)
	v1.PUT("/simulacion/parametros", simulacion.UpdateParams)
	v1.POST("/solicitudes/simulacion", solicitudes.Simular)
	v1.POST("/solicitudes/edad", solicitudes.EvaluarEdad)
	v1.POST("/solicitudes/cuil", solicitudes.VerificarCuil)
	v1.POST("/solicitudes/identidad", solicitudes.VerificarIdentidad)
	v1.POST("/solicitudes/identidad/rechazo", solicitudes.RechazarIdentidad)
	v1.POST("/solicitudes", solicitudes.EnviarSolicitud)
	v1.GET("/reportes/solicitudes", reportes.List)
	v1.GET("/reportes/solicitudes/export", reportes.Export)
	v1.DELETE("/reportes/solicitudes/:id", reportes.Delete)

	return &fixture{router: router, store: store, bureau: bureau}
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func birthdate(yearsAgo int) string {
	return time.Now().UTC().AddDate(-yearsAgo, 0, 0).Format("2006-01-02")
}
