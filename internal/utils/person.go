package utils

import "strings"

// SplitFullName splits a registered name into nombre and apellido: the last
// word is taken as apellido and everything before it as nombre.
func SplitFullName(fullName string) (nombre, apellido string) {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
	}
}
