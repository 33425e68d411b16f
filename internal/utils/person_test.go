package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFullName(t *testing.T) {
	tests := []struct {
		in       string
		nombre   string
		apellido string
	}{
		{"", "", ""},
		{"   ", "", ""},
		{"PEREZ", "PEREZ", ""},
		{"JUAN PEREZ", "JUAN", "PEREZ"},
		{"  MARIA  JOSE   GOMEZ ", "MARIA JOSE", "GOMEZ"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			nombre, apellido := SplitFullName(tt.in)
			assert.Equal(t, tt.nombre, nombre)
			assert.Equal(t, tt.apellido, apellido)
		})
	}
}
