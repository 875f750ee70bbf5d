package schema

import (
	"net/url"
	"slices"
	"strings"
)

// Required records an issue when a string value is empty or whitespace.
func Required(is *Issues, path, value string) {
	if strings.TrimSpace(value) == "" {
		is.Add(path, "required")
	}
}

// Enum records an issue when value is not a member of the closed set.
func Enum[T ~string](is *Issues, path string, value T, allowed []T) {
	if !slices.Contains(allowed, value) {
		is.Addf(path, "invalid value %q", string(value))
	}
}

// MinLen records an issue when the slice holds fewer than min elements.
func MinLen[T any](is *Issues, path string, values []T, min int) {
	if len(values) < min {
		is.Addf(path, "requires at least %d entries, got %d", min, len(values))
	}
}

// LenBetween records an issue when the slice length falls outside [min, max].
func LenBetween[T any](is *Issues, path string, values []T, min, max int) {
	if len(values) < min || len(values) > max {
		is.Addf(path, "requires between %d and %d entries, got %d", min, max, len(values))
	}
}

// ExactLen records an issue when the slice length is not exactly n.
func ExactLen[T any](is *Issues, path string, values []T, n int) {
	if len(values) != n {
		is.Addf(path, "requires exactly %d entries, got %d", n, len(values))
	}
}

// IntBetween records an issue when value falls outside [min, max].
func IntBetween(is *Issues, path string, value, min, max int) {
	if value < min || value > max {
		is.Addf(path, "must be between %d and %d, got %d", min, max, value)
	}
}

// ValidURL records an issue when value is not an absolute http(s) URL.
func ValidURL(is *Issues, path, value string) {
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		is.Addf(path, "invalid URL %q", value)
	}
}
