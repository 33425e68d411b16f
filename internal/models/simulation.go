package models

import (
	"strconv"
	"time"
)

// SimulationParamsID is the document id of the parameters in the config collection
const SimulationParamsID = "simulationParams"

// SimulationParams bounds the installment count and amount an applicant can request.
// InteresesPorCuota maps an installment count ("3") to its interest percentage.
type SimulationParams struct {
	MinCuotas         int                `json:"minCuotas" bson:"minCuotas"`
	MaxCuotas         int                `json:"maxCuotas" bson:"maxCuotas"`
	MinMonto          int64              `json:"minMonto" bson:"minMonto"`
	MaxMonto          int64              `json:"maxMonto" bson:"maxMonto"`
	InteresesPorCuota map[string]float64 `json:"interesesPorCuota" bson:"interesesPorCuota"`
	UpdatedAt         *time.Time         `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// DefaultSimulationParams are used when no parameters were stored
func DefaultSimulationParams() SimulationParams {
	return SimulationParams{
		MinCuotas:         2,
		MaxCuotas:         12,
		MinMonto:          100000,
		MaxMonto:          500000,
		InteresesPorCuota: map[string]float64{},
	}
}

// InteresPara returns the interest percentage for n installments, 0 when unset
func (p SimulationParams) InteresPara(cuotas int) float64 {
	if p.InteresesPorCuota == nil {
		return 0
	}
	return p.InteresesPorCuota[strconv.Itoa(cuotas)]
}

// Validate checks the bounds are coherent
func (p SimulationParams) Validate() error {
	var errs ValidationErrors
	if p.MinCuotas < 1 {
		errs.Add("minCuotas", "out_of_range", "debe ser al menos 1")
	}
	if p.MaxCuotas < p.MinCuotas {
		errs.Add("maxCuotas", "out_of_range", "debe ser mayor o igual a minCuotas")
	}
	if p.MinMonto <= 0 {
		errs.Add("minMonto", "out_of_range", "debe ser positivo")
	}
	if p.MaxMonto < p.MinMonto {
		errs.Add("maxMonto", "out_of_range", "debe ser mayor o igual a minMonto")
	}
	for k, v := range p.InteresesPorCuota {
		n, err := strconv.Atoi(k)
		if err != nil || n < 1 {
			errs.Add("interesesPorCuota", "invalid_key", "clave de cuotas inválida: "+k)
			continue
		}
		if v < 0 {
			errs.Add("interesesPorCuota", "out_of_range", "el interés no puede ser negativo")
		}
	}
	return errs.Err()
}
