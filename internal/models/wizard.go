package models

// SimulacionRequest is the first wizard step: installments and amount
type SimulacionRequest struct {
	Cuotas int   `json:"cuotas"`
	Monto  int64 `json:"monto"`
}

// SimulacionResponse previews the installment value for the request
type SimulacionResponse struct {
	Cuotas            int     `json:"cuotas"`
	Monto             int64   `json:"monto"`
	InteresPorcentaje float64 `json:"interesPorcentaje"`
	MontoTotal        string  `json:"montoTotal"`
	ValorCuota        string  `json:"valorCuota"`
}

// EdadRequest carries the birthdate as YYYY-MM-DD
type EdadRequest struct {
	FechaNacimiento string `json:"fechaNacimiento"`
	Cuotas          int    `json:"cuotas"`
	Monto           int64  `json:"monto"`
}

type EdadResponse struct {
	Aprobado  bool `json:"aprobado"`
	EdadMeses int  `json:"edadMeses"`
}

type CuilRequest struct {
	CUIL string `json:"cuil"`
}

type CuilResponse struct {
	CUIL        string `json:"cuil"`
	CanRegister bool   `json:"canRegister"`
	// Verified is false when the recency check could not reach the store
	Verified bool `json:"verified"`
}

// IdentidadRequest runs the bureau lookup and evaluation for a CUIL
type IdentidadRequest struct {
	CUIL            string `json:"cuil"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Cuotas          int    `json:"cuotas"`
	Monto           int64  `json:"monto"`
}

// IdentidadResponse asks the applicant to confirm the registered name.
// ManualOverride is set when the bureau could not be reached and the name must be typed in.
type IdentidadResponse struct {
	CUIL           string                 `json:"cuil"`
	Nombre         string                 `json:"nombre,omitempty"`
	ManualOverride bool                   `json:"manualOverride"`
	Resultado      *ResultadoEvaluacion   `json:"resultado,omitempty"`
	BCRA           map[string]interface{} `json:"bcra,omitempty"`
}

// IdentidadRechazoRequest records that the applicant did not recognize the name shown
type IdentidadRechazoRequest struct {
	CUIL            string `json:"cuil"`
	Nombre          string `json:"nombre"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Cuotas          int    `json:"cuotas"`
	Monto           int64  `json:"monto"`
}

// SolicitudRequest is the final wizard step
type SolicitudRequest struct {
	CUIL            string                 `json:"cuil"`
	Nombre          string                 `json:"nombre"`
	Telefono        string                 `json:"telefono"`
	Email           string                 `json:"email"`
	Cuotas          int                    `json:"cuotas"`
	Monto           int64                  `json:"monto"`
	FechaNacimiento string                 `json:"fechaNacimiento"`
	IngresoMensual  *float64               `json:"ingresoMensual,omitempty"`
	FechaIngreso    string                 `json:"fechaIngreso,omitempty"`
	BCRA            map[string]interface{} `json:"bcra,omitempty"`
	Owner           string                 `json:"owner,omitempty"`
}

// SolicitudResponse identifies a persisted application
type SolicitudResponse struct {
	ID        string               `json:"id"`
	Estado    Estado               `json:"estado"`
	Motivo    MotivoRechazo        `json:"motivo,omitempty"`
	Resultado *ResultadoEvaluacion `json:"resultado,omitempty"`
}
