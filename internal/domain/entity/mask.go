package entity

import "strings"

const (
	// MaskChar replaces hidden digits of a national ID.
	MaskChar = 'X'

	visibleDigits = 4
)

// MaskSensitiveID hides every digit except the last four. Non-digit
// characters stay where they are, so the length and positions of the
// input are preserved.
func MaskSensitiveID(value string) string {
	digits := 0
	for _, r := range value {
		if isDigit(r) {
			digits++
		}
	}

	toMask := digits - visibleDigits
	if toMask <= 0 {
		return value
	}

	var masked strings.Builder
	masked.Grow(len(value))

	for _, r := range value {
		if isDigit(r) && toMask > 0 {
			masked.WriteRune(MaskChar)
			toMask--

			continue
		}
		masked.WriteRune(r)
	}

	return masked.String()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
