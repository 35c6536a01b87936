package utils

import (
	"strconv"
	"strings"
)

// Int64ToStr converts an int64 to its string representation.
func Int64ToStr(num int64) string {
	return strconv.FormatInt(num, 10)
}

// StrToInt64 converts a string to an int64.
// Returns 0 and an error if the conversion fails.
func StrToInt64(s string) (int64, error) {
	num, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, err
	}
	return num, nil
}

// StrToFloat converts a draft field string to a float64. Form fields arrive as
// strings and are coerced to numbers only after validation passes.
func StrToFloat(s string) (float64, error) {
	num, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	return num, nil
}

// FloatToStr renders a float64 the way draft fields store it, without
// trailing zeros.
func FloatToStr(num float64) string {
	return strconv.FormatFloat(num, 'f', -1, 64)
}
