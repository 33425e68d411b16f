package utils

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// argentinePhonePrefixes are stripped, in this order of preference, from numbers longer than 10 digits
var argentinePhonePrefixes = []string{"549", "54", "15", "0"}

// NormalizeArgentinePhone reduces a phone to its 10-digit national form by
// repeatedly removing a country/trunk/mobile prefix while the number is longer
// than 10 digits and the remainder keeps at least 10.
func NormalizeArgentinePhone(value string) string {
	digits := OnlyDigits(value)

	removed := true
	for len(digits) > 10 && removed {
		removed = false
		for _, prefix := range argentinePhonePrefixes {
			if strings.HasPrefix(digits, prefix) && len(digits)-len(prefix) >= 10 {
				digits = digits[len(prefix):]
				removed = true
				break
			}
		}
	}
	return digits
}

// IsPossibleArgentinePhone checks a normalized 10-digit number against the AR numbering plan
func IsPossibleArgentinePhone(national string) bool {
	if len(national) != 10 {
		return false
	}
	num, err := phonenumbers.Parse(national, "AR")
	if err != nil {
		return false
	}
	return phonenumbers.IsPossibleNumber(num)
}
