package validation

import (
	"regexp"
	"unicode/utf8"
)

// Rule checks a raw field value and returns "" when it passes or a
// human-readable message when it fails. Rules must be pure.
type Rule func(value string) string

// Required fails when the value is empty after trimming whitespace.
func Required(msg string) Rule {
	return func(value string) string {
		if isBlank(value) {
			return msg
		}
		return ""
	}
}

// Present fails only on the empty string; whitespace counts as a value.
// Select inputs use it since their option values are never padded.
func Present(msg string) Rule {
	return func(value string) string {
		if value == "" {
			return msg
		}
		return ""
	}
}

// Matches fails when the raw value does not match pattern.
// It panics if pattern does not compile, like regexp.MustCompile.
func Matches(pattern, msg string) Rule {
	re := regexp.MustCompile(pattern)
	return func(value string) string {
		if !re.MatchString(value) {
			return msg
		}
		return ""
	}
}

// Between fails when the raw value's length in characters is outside
// [min, max], both ends inclusive.
func Between(min, max int, msg string) Rule {
	return func(value string) string {
		l := utf8.RuneCountInString(value)
		if l < min || l > max {
			return msg
		}
		return ""
	}
}
