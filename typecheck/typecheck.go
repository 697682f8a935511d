// SPDX-License-Identifier: GPL-3.0-or-later

// Package typecheck contains validators checking whether a string argument
// converts to a given type.
package typecheck

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// stripDigitSeparators removes the underscores separating digits.
//
// An underscore is accepted only between two digits, so "1_000" is valid
// while "_1", "1_", and "1__0" are not.
func stripDigitSeparators(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}
	var sb strings.Builder
	for idx := 0; idx < len(s); idx++ {
		if s[idx] != '_' {
			sb.WriteByte(s[idx])
			continue
		}
		if idx == 0 || idx == len(s)-1 || !isDigit(s[idx-1]) || !isDigit(s[idx+1]) {
			return "", false
		}
	}
	return sb.String(), true
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// IsConvertibleToInt returns whether value is a base-10 integer.
//
// Surrounding whitespace, a leading sign, and underscores between digits
// are accepted. There is no range limit.
func IsConvertibleToInt(value string) bool {
	clean, ok := stripDigitSeparators(strings.TrimSpace(value))
	if !ok {
		return false
	}
	_, ok = new(big.Int).SetString(clean, 10)
	return ok
}

// parseFloat parses value like [IsConvertibleToFloat] and returns the
// result. Values out of range become infinities.
func parseFloat(value string) (float64, bool) {
	clean, ok := stripDigitSeparators(strings.TrimSpace(value))
	if !ok || clean == "" {
		return 0, false
	}
	unsigned := clean
	if clean[0] == '+' || clean[0] == '-' {
		unsigned = clean[1:]
	}
	if len(unsigned) >= 2 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0, false
	}
	if strings.EqualFold(unsigned, "nan") {
		return math.NaN(), true
	}
	number, err := strconv.ParseFloat(clean, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return number, true
}

// IsConvertibleToFloat returns whether value is a decimal floating point
// number, including "inf", "infinity", and "nan" in any case and with an
// optional sign.
//
// Surrounding whitespace and underscores between digits are accepted.
// Values out of range are still convertible.
func IsConvertibleToFloat(value string) bool {
	_, ok := parseFloat(value)
	return ok
}

// IsConvertibleToUUID returns whether value is a UUID.
//
// The "urn:" and "uuid:" prefixes, surrounding braces, and hyphens in any
// position are dropped before parsing the remaining 32 hex digits.
func IsConvertibleToUUID(value string) bool {
	_, err := uuid.Parse(normalizeUUID(value))
	return err == nil
}

func normalizeUUID(value string) string {
	value = strings.ReplaceAll(value, "urn:", "")
	value = strings.ReplaceAll(value, "uuid:", "")
	value = strings.Trim(value, "{}")
	value = strings.ReplaceAll(value, "-", "")
	if len(value) != 32 {
		return ""
	}
	return value
}

// IsTruthy returns whether value is truthy.
//
// A value convertible to float is truthy unless it equals zero. Any other
// value is truthy unless it is empty. Hence "0.0" is falsy and "0.0.0" is
// truthy, while "nan" is truthy.
func IsTruthy(value string) bool {
	if number, ok := parseFloat(value); ok {
		return number != 0 || math.IsNaN(number)
	}
	return value != ""
}

// IsFalsy returns whether value is not truthy.
func IsFalsy(value string) bool {
	return !IsTruthy(value)
}
