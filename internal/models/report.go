package models

import "time"

// Sort orders accepted by the report listing
const (
	SortCUIL      = "cuil"
	SortNombre    = "nombre"
	SortApellido  = "apellido"
	SortTelefono  = "telefono"
	SortFechaAsc  = "fecha_asc"
	SortFechaDesc = "fecha_desc"
)

// FiltroTodos disables a filter
const FiltroTodos = "todos"

// ReportQuery filters the back-office application listing. Desde/Hasta are YYYY-MM-DD
// and cover the whole day; column filters match exactly.
type ReportQuery struct {
	Desde    string `form:"desde"`
	Hasta    string `form:"hasta"`
	Estado   string `form:"estado"`
	Motivo   string `form:"motivo"`
	CUIL     string `form:"cuil"`
	Nombre   string `form:"nombre"`
	Apellido string `form:"apellido"`
	Telefono string `form:"telefono"`
	Fecha    string `form:"fecha"`
	Search   string `form:"q"`
	Sort     string `form:"sort"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}

// ReportRow is a stored application with the derived fields used for display and filtering
type ReportRow struct {
	ID                             string     `json:"id"`
	Nombre                         string     `json:"nombre"`
	Apellido                       string     `json:"apellido"`
	CUIL                           string     `json:"cuil"`
	Telefono                       string     `json:"telefono"`
	Email                          string     `json:"email"`
	Monto                          string     `json:"monto"`
	Cuotas                         string     `json:"cuotas"`
	Estado                         string     `json:"estado"`
	MotivoRechazo                  string     `json:"motivoRechazo"`
	MotivoRechazoCodigo            string     `json:"motivoRechazoCodigo"`
	ResultadoEvaluacionCodigo      string     `json:"resultadoEvaluacionCodigo"`
	ResultadoEvaluacionDescripcion string     `json:"resultadoEvaluacionDescripcion"`
	IngresoMensual                 string     `json:"ingresoMensual"`
	FechaIngreso                   string     `json:"fechaIngreso"`
	FechaSolicitud                 string     `json:"fechaSolicitud"`
	Timestamp                      *time.Time `json:"timestamp,omitempty"`
	FechaLabel                     string     `json:"fechaLabel"`
	MotivoResuelto                 string     `json:"motivoResuelto"`
	MotivoOpcion                   string     `json:"motivoOpcion"`

	EstadoNormalizado string `json:"-"`
	SearchableText    string `json:"-"`
}

// MotivoOption is one entry of the reason filter
type MotivoOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ReportFacets are the distinct values offered by the column filters
type ReportFacets struct {
	CUIL     []string       `json:"cuil"`
	Nombre   []string       `json:"nombre"`
	Apellido []string       `json:"apellido"`
	Telefono []string       `json:"telefono"`
	Fecha    []string       `json:"fecha"`
	Motivos  []MotivoOption `json:"motivos"`
}

// ReportPage is one page of the filtered listing
type ReportPage struct {
	Data       []ReportRow `json:"data"`
	Pagination struct {
		Page       int `json:"page"`
		PerPage    int `json:"per_page"`
		Total      int `json:"total"`
		TotalPages int `json:"total_pages"`
	} `json:"pagination"`
	Facets ReportFacets `json:"facets"`
}
