package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCUIL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"20-30394809-1", "20303948091"},
		{" 20 30394809 1 ", "20303948091"},
		{"20303948091", "20303948091"},
		{"abc", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeCUIL(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeCUIL(got), "normalization must be idempotent")
		})
	}
}

func TestIsValidCUILFormat(t *testing.T) {
	assert.True(t, IsValidCUILFormat("20303948091"))
	assert.False(t, IsValidCUILFormat("2030394809"))
	assert.False(t, IsValidCUILFormat("203039480911"))
	assert.False(t, IsValidCUILFormat("20-30394809-1"))
	assert.False(t, IsValidCUILFormat(""))
}
