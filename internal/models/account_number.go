package models

import (
	"regexp"
	"strings"
)

// Account numbers are plain numeric strings between 5 and 12 digits.
var accountNumberPattern = regexp.MustCompile(`^\d{5,12}$`)

// IsValidAccountNumber reports whether the account number is numeric and
// between 5 and 12 digits long.
func IsValidAccountNumber(accountNumber string) bool {
	return accountNumberPattern.MatchString(accountNumber)
}

// SanitizeAccountNumber strips every non-digit character from an account number.
func SanitizeAccountNumber(accountNumber string) string {
	return nonDigitPattern.ReplaceAllString(accountNumber, "")
}

// MaskAccountNumber returns the display form of an account number, exposing
// only the last 4 characters. Values of 4 characters or fewer are returned
// unchanged; longer values keep their length with the prefix replaced by '*'.
func MaskAccountNumber(accountNumber string) string {
	if len(accountNumber) <= 4 {
		return accountNumber
	}
	return strings.Repeat("*", len(accountNumber)-4) + accountNumber[len(accountNumber)-4:]
}
