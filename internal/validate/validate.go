package validate

import (
	"strconv"
	"strings"

	"pricecheck/internal/domain"
)

// Barcode trims the input and rejects empty or oversized values.
func Barcode(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 64 {
		return "", false
	}
	return s, true
}

// Status normalizes to upper case and checks membership in the closed
// status set.
func Status(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	return s, domain.ValidStatus(s)
}

// Limit parses a list page size, defaulting to 50 and clamping to [1,200].
func Limit(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 50
	}
	if n < 1 {
		return 1
	}
	if n > 200 {
		return 200
	}
	return n
}

// Offset parses a list offset, defaulting to 0 and clamping to >= 0.
func Offset(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
