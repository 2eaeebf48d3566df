package utils

import (
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// ParseOffset is like ParseInt but allows zero
func ParseOffset(value string) int {
	if value == "" {
		return 0
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < 0 {
		return 0
	}

	return result
}

// ClampLimit caps a page size; the repository layer never enforces one
func ClampLimit(limit, max int) int {
	if limit > max {
		return max
	}
	return limit
}
