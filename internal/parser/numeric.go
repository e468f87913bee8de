package parser

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNotNumeric is returned when a cell has no parseable number left
// after stripping noise characters.
var ErrNotNumeric = errors.New("not a numeric value")

// ParseLocaleNumber converts free-form numeric text into a float64.
// Handles pt-BR and en-US separator conventions plus stray currency and
// unit symbols: "1.234,56", "1,234.56", "R$ 120" all parse. When both
// separators appear the rightmost one is the decimal point; a lone comma
// is a decimal point. Negative values are returned as-is, callers clamp.
func ParseLocaleNumber(raw string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r == ',' || r == '.' || r == '-':
			return r
		default:
			return -1
		}
	}, raw)

	if cleaned == "" || !strings.ContainsAny(cleaned, "0123456789") {
		return 0, ErrNotNumeric
	}

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			// 1.234,56 -> dots are thousand separators
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.ReplaceAll(cleaned, ",", ".")
		} else {
			// 1,234.56 -> commas are thousand separators
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case lastComma >= 0:
		// 1234,56 -> decimal comma
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrNotNumeric
	}
	return f, nil
}
