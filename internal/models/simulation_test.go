package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSimulationParams(t *testing.T) {
	p := DefaultSimulationParams()

	assert.Equal(t, 2, p.MinCuotas)
	assert.Equal(t, 12, p.MaxCuotas)
	assert.Equal(t, int64(100000), p.MinMonto)
	assert.Equal(t, int64(500000), p.MaxMonto)
	assert.NotNil(t, p.InteresesPorCuota)
	assert.NoError(t, p.Validate())
}

func TestSimulationParams_InteresPara(t *testing.T) {
	p := SimulationParams{InteresesPorCuota: map[string]float64{"3": 15, "6": 32.5}}

	assert.Equal(t, 15.0, p.InteresPara(3))
	assert.Equal(t, 32.5, p.InteresPara(6))
	assert.Equal(t, 0.0, p.InteresPara(12))

	assert.Equal(t, 0.0, SimulationParams{}.InteresPara(3))
}

func TestSimulationParams_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SimulationParams)
		fields []string
	}{
		{"min cuotas below one", func(p *SimulationParams) { p.MinCuotas = 0 }, []string{"minCuotas"}},
		{"max below min cuotas", func(p *SimulationParams) { p.MaxCuotas = 1 }, []string{"maxCuotas"}},
		{"non positive monto", func(p *SimulationParams) { p.MinMonto = 0 }, []string{"minMonto"}},
		{"max below min monto", func(p *SimulationParams) { p.MaxMonto = 10 }, []string{"maxMonto"}},
		{"bad interest key", func(p *SimulationParams) { p.InteresesPorCuota["x"] = 1 }, []string{"interesesPorCuota"}},
		{"negative interest", func(p *SimulationParams) { p.InteresesPorCuota["3"] = -1 }, []string{"interesesPorCuota"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultSimulationParams()
			tt.mutate(&p)

			err := p.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			var verrs ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.fields, verrs.Fields())
		})
	}
}
