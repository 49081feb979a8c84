// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Regular expression for international phone numbers
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

var (
	postalPrefixRe = regexp.MustCompile(`^\d{4}$`)
	postalSuffixRe = regexp.MustCompile(`^\d{3}$`)
)

// ValidatePostalCode checks a postal code split into its 4-digit prefix and
// 3-digit suffix. Both parts must be present.
func ValidatePostalCode(prefix, suffix string) bool {
	return postalPrefixRe.MatchString(strings.TrimSpace(prefix)) &&
		postalSuffixRe.MatchString(strings.TrimSpace(suffix))
}
