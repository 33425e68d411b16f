package utils

import "regexp"

var (
	nonDigitRegex = regexp.MustCompile(`\D`)
	cuilRegex     = regexp.MustCompile(`^\d{11}$`)
)

// OnlyDigits strips every non-digit character
func OnlyDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// NormalizeCUIL strips separators from a CUIL/CUIT ("20-30394809-1" -> "20303948091")
func NormalizeCUIL(cuil string) string {
	return OnlyDigits(cuil)
}

// IsValidCUILFormat reports whether cuil is exactly 11 digits
func IsValidCUILFormat(cuil string) bool {
	return cuilRegex.MatchString(cuil)
}
