package models

import (
	"fmt"
	"regexp"
)

var (
	// Valid CUIT prefixes: 20/23/24/25/26/27 for individuals, 30/33/34 for companies
	cuitPattern     = regexp.MustCompile(`^(20|23|24|25|26|27|30|33|34)\d{9}$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// cuitMultipliers is the weight sequence applied to the 10 payload digits of
// a CUIT when computing its mod-11 check digit.
var cuitMultipliers = [10]int{5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// NormalizeCuit strips every non-digit character from a CUIT string.
func NormalizeCuit(cuit string) string {
	return nonDigitPattern.ReplaceAllString(cuit, "")
}

// IsValidCuit reports whether the given string is a valid Argentine CUIT.
// Formatting characters are ignored; the cleaned value must be 11 digits
// with a known prefix and a matching mod-11 check digit.
func IsValidCuit(cuit string) bool {
	if cuit == "" {
		return false
	}

	clean := NormalizeCuit(cuit)
	if !cuitPattern.MatchString(clean) {
		return false
	}

	sum := 0
	for i := 0; i < len(cuitMultipliers); i++ {
		sum += int(clean[i]-'0') * cuitMultipliers[i]
	}

	checkDigit := 0
	if remainder := sum % 11; remainder != 0 {
		checkDigit = 11 - remainder
	}

	return checkDigit == int(clean[10]-'0')
}

// FormatCuit normalizes a CUIT into the canonical XX-XXXXXXXX-X form.
// Already-formatted input is returned unchanged; input that does not clean
// to 11 digits is returned as-is.
func FormatCuit(cuit string) string {
	clean := NormalizeCuit(cuit)
	if len(clean) != 11 {
		return cuit
	}
	return fmt.Sprintf("%s-%s-%s", clean[0:2], clean[2:10], clean[10:11])
}
