package handlers

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/microcuotas/app-solicitudes/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestSimular(t *testing.T) {
	f := newFixture()

	t.Run("preview", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/v1/solicitudes/simulacion", models.SimulacionRequest{Cuotas: 3, Monto: 100000})
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[models.SimulacionResponse](t, w)
		assert.Equal(t, "33333.33", resp.ValorCuota)
	})

	t.Run("out of range", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/v1/solicitudes/simulacion", models.SimulacionRequest{Cuotas: 40, Monto: 1})
		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[ErrorResponse](t, w)
		assert.Equal(t, "validation_error", resp.Code)
		assert.Len(t, resp.Fields, 2)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/v1/solicitudes/simulacion", `{"cuotas":`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid_request", decode[ErrorResponse](t, w).Code)
	})
}

func TestEvaluarEdad(t *testing.T) {
	t.Run("adult", func(t *testing.T) {
		f := newFixture()
		w := f.do(t, http.MethodPost, "/v1/solicitudes/edad", models.EdadRequest{FechaNacimiento: birthdate(30)})
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decode[models.EdadResponse](t, w).Aprobado)
		assert.Equal(t, 0, f.store.Len())
	})

	t.Run("underage is rejected and recorded", func(t *testing.T) {
		f := newFixture()
		w := f.do(t, http.MethodPost, "/v1/solicitudes/edad", models.EdadRequest{
			FechaNacimiento: birthdate(17), Cuotas: 3, Monto: 100000,
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		resp := decode[RejectionResponse](t, w)
		assert.Equal(t, string(models.MotivoMenor21), resp.Code)
		assert.Equal(t, models.MensajeMenorDeEdad, resp.Error)
		assert.NotEmpty(t, resp.SolicitudID)
		assert.Equal(t, 1, f.store.Len())
	})

	t.Run("missing date", func(t *testing.T) {
		f := newFixture()
		w := f.do(t, http.MethodPost, "/v1/solicitudes/edad", models.EdadRequest{})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, models.MensajeFechaVacia, decode[ErrorResponse](t, w).Error)
	})
}

func TestVerificarCuil(t *testing.T) {
	f := newFixture()
	f.store.Seed("recent", bson.M{"cuil": "27111111112", "estado": "aceptada", "timestamp": time.Now().AddDate(0, 0, -3)})

	tests := []struct {
		name   string
		cuil   string
		status int
		code   string
	}{
		{"free", "20-22222222-3", http.StatusOK, ""},
		{"recent", "27111111112", http.StatusConflict, "cuil_reciente"},
		{"bad format", "123", http.StatusBadRequest, "validation_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(t, http.MethodPost, "/v1/solicitudes/cuil", models.CuilRequest{CUIL: tt.cuil})
			require.Equal(t, tt.status, w.Code, w.Body.String())
			if tt.code != "" {
				assert.Equal(t, tt.code, decode[ErrorResponse](t, w).Code)
			}
		})
	}
}

func TestVerificarIdentidad(t *testing.T) {
	approved := &models.BureauRecord{
		Denominacion: "PEREZ ANA",
		Periodos: []models.BureauPeriodo{
			{Periodo: "202505", Entidades: []models.BureauEntidad{{Entidad: "BANCO A", Situacion: 1}}},
		},
	}

	t.Run("approved", func(t *testing.T) {
		f := newFixture()
		f.bureau.record = approved
		w := f.do(t, http.MethodPost, "/v1/solicitudes/identidad", models.IdentidadRequest{
			CUIL: "27111111112", FechaNacimiento: birthdate(30),
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decode[models.IdentidadResponse](t, w)
		assert.Equal(t, "PEREZ ANA", resp.Nombre)
		assert.False(t, resp.ManualOverride)
	})

	t.Run("not in bureau", func(t *testing.T) {
		f := newFixture()
		f.bureau.err = models.ErrBureauNotFound
		w := f.do(t, http.MethodPost, "/v1/solicitudes/identidad", models.IdentidadRequest{
			CUIL: "27111111112", FechaNacimiento: birthdate(30),
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, string(models.MotivoSinProductos), decode[RejectionResponse](t, w).Code)
	})

	t.Run("bureau down", func(t *testing.T) {
		f := newFixture()
		f.bureau.err = errors.New("connection refused")
		w := f.do(t, http.MethodPost, "/v1/solicitudes/identidad", models.IdentidadRequest{CUIL: "27111111112"})
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, decode[models.IdentidadResponse](t, w).ManualOverride)
	})
}

func TestRechazarIdentidad(t *testing.T) {
	f := newFixture()
	w := f.do(t, http.MethodPost, "/v1/solicitudes/identidad/rechazo", models.IdentidadRechazoRequest{
		CUIL: "27111111112", Nombre: "PEREZ ANA",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decode[models.SolicitudResponse](t, w)
	assert.Equal(t, models.EstadoRechazada, resp.Estado)
	assert.Equal(t, models.MotivoIdentidadNoConfirmada, resp.Motivo)
	assert.Equal(t, 1, f.store.Len())
}

func TestEnviarSolicitud(t *testing.T) {
	valid := func() models.SolicitudRequest {
		return models.SolicitudRequest{
			CUIL:            "27111111112",
			Nombre:          "Ana Perez",
			Telefono:        "11 4268-1704",
			Email:           "ana@mail.com",
			Cuotas:          3,
			Monto:           100000,
			FechaNacimiento: birthdate(30),
		}
	}

	t.Run("created", func(t *testing.T) {
		f := newFixture()
		w := f.do(t, http.MethodPost, "/v1/solicitudes", valid())
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := decode[models.SolicitudResponse](t, w)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, models.EstadoAceptada, resp.Estado)
	})

	t.Run("duplicate phone", func(t *testing.T) {
		f := newFixture()
		f.store.Seed("other", bson.M{"telefono": "1142681704", "estado": "aceptada"})
		w := f.do(t, http.MethodPost, "/v1/solicitudes", valid())
		require.Equal(t, http.StatusConflict, w.Code)
		resp := decode[ErrorResponse](t, w)
		assert.Equal(t, "duplicate_fields", resp.Code)
		assert.Equal(t, models.MensajeTelefonoDuplicado, resp.Error)
		require.Len(t, resp.Fields, 1)
		assert.Equal(t, "telefono", resp.Fields[0].Field)
	})

	t.Run("recent cuil", func(t *testing.T) {
		f := newFixture()
		f.store.Seed("old", bson.M{"cuil": "27111111112", "estado": "rechazada", "timestamp": time.Now().AddDate(0, 0, -1)})
		w := f.do(t, http.MethodPost, "/v1/solicitudes", valid())
		require.Equal(t, http.StatusConflict, w.Code)
		resp := decode[ErrorResponse](t, w)
		assert.Equal(t, "cuil_reciente", resp.Code)
		assert.Equal(t, models.MensajeCuilReciente, resp.Error)
	})

	t.Run("short phone", func(t *testing.T) {
		f := newFixture()
		req := valid()
		req.Telefono = "114268"
		w := f.do(t, http.MethodPost, "/v1/solicitudes", req)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, models.MensajeTelefonoCorto, decode[ErrorResponse](t, w).Error)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture()
		req := valid()
		req.CUIL = testCUIL
		f.store.SetError(errors.New("mongo down"))
		w := f.do(t, http.MethodPost, "/v1/solicitudes", req)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, models.MensajeErrorRegistro, decode[ErrorResponse](t, w).Error)
	})
}
