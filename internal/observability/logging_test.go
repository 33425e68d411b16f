package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	// nil-safe even before InitLogger
	Logger().Info("test message")
}

func TestMaskCUIL(t *testing.T) {
	tests := []struct {
		name     string
		cuil     string
		expected string
	}{
		{"valid cuil", "20303948091", "20-****4809-1"},
		{"another valid cuil", "27123456784", "27-****4567-4"},
		{"too short", "2030394809", "**-********-*"},
		{"too long", "203039480911", "**-********-*"},
		{"empty", "", "**-********-*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MaskCUIL(tt.cuil))
		})
	}
}

func TestMaskPhone(t *testing.T) {
	assert.Equal(t, "******1234", MaskPhone("1140001234"))
	assert.Equal(t, "****", MaskPhone("123"))
	assert.Equal(t, "****", MaskPhone(""))
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "d***@mail.com", MaskEmail("demo@mail.com"))
	assert.Equal(t, "****", MaskEmail("@mail.com"))
	assert.Equal(t, "****", MaskEmail("not-an-email"))
}

func TestMaskSensitiveData(t *testing.T) {
	data := map[string]interface{}{
		"cuil":            "20303948091",
		"telefono":        "1140001234",
		"email":           "demo@mail.com",
		"fechaNacimiento": "1990-01-01",
		"bcra":            map[string]interface{}{"status": 200},
		"monto":           150000,
		"estado":          "aceptada",
	}

	masked := MaskSensitiveData(data)

	assert.Equal(t, "20-****4809-1", masked["cuil"])
	assert.Equal(t, "******1234", masked["telefono"])
	assert.Equal(t, "d***@mail.com", masked["email"])
	assert.Equal(t, "********", masked["fechaNacimiento"])
	assert.Equal(t, "********", masked["bcra"])
	assert.Equal(t, 150000, masked["monto"])
	assert.Equal(t, "aceptada", masked["estado"])

	// input is untouched
	assert.Equal(t, "20303948091", data["cuil"])
}
