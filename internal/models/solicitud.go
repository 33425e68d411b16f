package models

import (
	"strings"
	"time"
)

// Estado is the lifecycle status of an application
type Estado string

const (
	EstadoPendiente Estado = "pendiente"
	EstadoAceptada  Estado = "aceptada"
	EstadoRechazada Estado = "rechazada"
)

// IsValid reports whether e is a known status
func (e Estado) IsValid() bool {
	switch e {
	case EstadoPendiente, EstadoAceptada, EstadoRechazada:
		return true
	}
	return false
}

// ParseEstado matches a status case-insensitively
func ParseEstado(s string) (Estado, bool) {
	e := Estado(strings.ToLower(strings.TrimSpace(s)))
	return e, e.IsValid()
}

// Solicitud is a persisted loan application (collection "clientes").
// cuil, telefono and email are nil when not provided.
type Solicitud struct {
	ID                             string                 `json:"id,omitempty" bson:"-"`
	Nombre                         string                 `json:"nombre,omitempty" bson:"nombre,omitempty"`
	Apellido                       string                 `json:"apellido,omitempty" bson:"apellido,omitempty"`
	NombreCompleto                 string                 `json:"nombreCompleto,omitempty" bson:"nombreCompleto,omitempty"`
	CUIL                           *string                `json:"cuil" bson:"cuil"`
	Telefono                       *string                `json:"telefono" bson:"telefono"`
	Email                          *string                `json:"email" bson:"email"`
	Monto                          int64                  `json:"monto,omitempty" bson:"monto,omitempty"`
	Cuotas                         int                    `json:"cuotas,omitempty" bson:"cuotas,omitempty"`
	IngresoMensual                 *float64               `json:"ingresoMensual,omitempty" bson:"ingresoMensual,omitempty"`
	FechaIngreso                   string                 `json:"fechaIngreso,omitempty" bson:"fechaIngreso,omitempty"`
	FechaNacimiento                string                 `json:"fechaNacimiento,omitempty" bson:"fechaNacimiento,omitempty"`
	FechaSolicitud                 string                 `json:"fechaSolicitud,omitempty" bson:"fechaSolicitud,omitempty"`
	Estado                         Estado                 `json:"estado" bson:"estado"`
	MotivoRechazo                  *string                `json:"motivoRechazo" bson:"motivoRechazo"`
	MotivoRechazoCodigo            *MotivoRechazo         `json:"motivoRechazoCodigo" bson:"motivoRechazoCodigo"`
	ResultadoEvaluacionCodigo      *int                   `json:"resultadoEvaluacionCodigo" bson:"resultadoEvaluacionCodigo"`
	ResultadoEvaluacionDescripcion *string                `json:"resultadoEvaluacionDescripcion" bson:"resultadoEvaluacionDescripcion"`
	Timestamp                      *time.Time             `json:"timestamp,omitempty" bson:"timestamp,omitempty"`
	BCRA                           map[string]interface{} `json:"bcra,omitempty" bson:"bcra,omitempty"`
	Owner                          string                 `json:"owner,omitempty" bson:"owner,omitempty"`
	Origen                         string                 `json:"origen,omitempty" bson:"origen,omitempty"`
}

// SetResultado records an evaluation result
func (s *Solicitud) SetResultado(r ResultadoEvaluacion) {
	codigo := r.Codigo
	descripcion := r.Descripcion
	s.ResultadoEvaluacionCodigo = &codigo
	s.ResultadoEvaluacionDescripcion = &descripcion
}

// ClearResultado removes any evaluation result
func (s *Solicitud) ClearResultado() {
	s.ResultadoEvaluacionCodigo = nil
	s.ResultadoEvaluacionDescripcion = nil
}

// StringPtr returns nil for an empty string
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue dereferences p, returning "" for nil
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// RechazoInput carries the fields of a rejection to persist.
// Estado and the motivo/resultado fields of Solicitud are overwritten.
type RechazoInput struct {
	Solicitud           Solicitud
	MotivoRechazo       string
	MotivoRechazoCodigo MotivoRechazo
	// Resultado, when set, takes precedence over the result mapped from the code
	Resultado *ResultadoEvaluacion
}

// AceptadaInput carries the fields of an accepted application to persist.
type AceptadaInput struct {
	Solicitud Solicitud
	// Resultado defaults to APROBADO
	Resultado *ResultadoEvaluacion
}
