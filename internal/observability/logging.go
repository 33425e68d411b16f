package observability

import (
	"strings"

	"github.com/microcuotas/app-solicitudes/internal/logging"
)

// Logger returns the global safe logger instance
func Logger() *logging.SafeLogger {
	return logging.Logger
}

// MaskCUIL keeps the type prefix and check digit of a CUIL for logging
func MaskCUIL(cuil string) string {
	if len(cuil) != 11 {
		return "**-********-*"
	}
	return cuil[:2] + "-****" + cuil[6:10] + "-" + cuil[10:]
}

// MaskPhone keeps the last four digits of a phone number
func MaskPhone(phone string) string {
	if len(phone) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}

// MaskEmail keeps the first character of the local part and the domain
func MaskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "****"
	}
	return email[:1] + "***" + email[at:]
}

// MaskSensitiveData masks sensitive applicant fields in a document
func MaskSensitiveData(data map[string]interface{}) map[string]interface{} {
	masked := make(map[string]interface{}, len(data))

	for k, v := range data {
		s, isString := v.(string)
		switch {
		case k == "cuil" && isString:
			masked[k] = MaskCUIL(s)
		case k == "telefono" && isString:
			masked[k] = MaskPhone(s)
		case k == "email" && isString:
			masked[k] = MaskEmail(s)
		case k == "fechaNacimiento" || k == "bcra":
			masked[k] = "********"
		default:
			masked[k] = v
		}
	}

	return masked
}
