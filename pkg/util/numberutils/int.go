package numberutils

import (
	"math"
	"strconv"
	"strings"
)

// ToIntWithError converts the given string to an integer and returns any error that occurred during conversion.
// It returns the integer value if successful, or an error if the string cannot be converted.
func ToIntWithError(str string) (int, error) {
	return strconv.Atoi(str)
}

// ToLenientInt converts an integer ("60") or a number written as a decimal ("60.0", "6E1"),
// the way spreadsheets export numeric cells. Decimals are truncated toward zero.
// Surrounding spaces are ignored. ok is false for anything else.
func ToLenientInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

// ClampInt returns num limited to the inclusive range [min, max].
func ClampInt(num, min, max int) int {
	if num < min {
		return min
	}
	if num > max {
		return max
	}
	return num
}

// IsIntInRange checks if the given number is within the specified range (inclusive).
// It returns true if the number is greater than or equal to the minimum and less than or equal to the maximum.
func IsIntInRange(num, min, max int) bool {
	return num >= min && num <= max
}

// IsIntNegative checks if the given number is negative.
// It returns true if the number is less than zero.
func IsIntNegative(number int) bool {
	return number < 0
}
