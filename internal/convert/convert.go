// Package convert coerces raw CSV text into the typed values the load
// statements bind. The rule for a value is selected by the destination field
// NAME, not the content: fields whose names mention money or counts become
// integers, fields whose names mention dates are normalized to ISO format,
// everything else passes through as text.
package convert

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Keyword sets that select a conversion rule. Matching is case-insensitive
// substring search over the destination field name; the numeric rule is
// checked before the date rule.
var (
	numericKeywords = []string{"revenue", "amount", "number", "probability"}
	dateKeywords    = []string{"date", "created", "closed"}
)

// dateLayouts are tried in order and the first one that parses wins: ISO
// first, then US month-first, then day-first. The month-first-before-
// day-first order decides ambiguous values like 03/04/2024. Unpadded
// components are accepted, so 3/5/2024 parses the same as 03/05/2024.
var dateLayouts = []string{"2006-1-2", "1/2/2006", "2/1/2006"}

const isoDate = "2006-01-02"

// IsNumericField reports whether the destination field name selects the
// integer rule.
func IsNumericField(field string) bool {
	return containsAny(field, numericKeywords)
}

// IsDateField reports whether the destination field name selects the date
// rule.
func IsDateField(field string) bool {
	return containsAny(field, dateKeywords)
}

func containsAny(field string, keywords []string) bool {
	lower := strings.ToLower(field)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Convert maps one raw CSV value to the value bound into the load statement.
// Empty input is nil regardless of field. Numeric fields become int64 or nil
// when unparseable; date fields become an ISO date string, nil when blank,
// or the original text when no layout matches.
func Convert(field, raw string) any {
	if raw == "" {
		return nil
	}
	if IsNumericField(field) {
		return convertNumeric(raw)
	}
	if IsDateField(field) {
		return convertDate(raw)
	}
	return raw
}

// convertNumeric parses a pure digit run as an integer and anything else as
// a decimal truncated toward zero.
func convertNumeric(raw string) any {
	if isDigits(raw) {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil
		}
		return n
	}
	f, err := strconv.ParseFloat(raw, 64)
	// MaxInt64 rounds up to 2^63 as a float64, so reject with >=.
	if err != nil || math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return nil
	}
	return int64(f)
}

// convertDate normalizes to YYYY-MM-DD via the first matching layout.
// Unrecognized values are kept as-is so an odd date format loses precision
// in queries but never drops the row's field.
func convertDate(raw string) any {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(isoDate)
		}
	}
	return raw
}

// isDigits reports whether s is a nonempty run of ASCII digits. A leading
// sign or decimal point falls through to float parsing.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
