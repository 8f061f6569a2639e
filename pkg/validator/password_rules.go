package validator

import (
	"regexp"
	"strings"
)

// SpecialChars is the set of characters accepted by ContainsSpecial.
const SpecialChars = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?~`"

var (
	letterRegex = regexp.MustCompile(`[A-Za-z]`)
	digitRegex  = regexp.MustCompile(`[0-9]`)
)

// ContainsLetter validates that value has at least one ASCII letter.
func ContainsLetter(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return letterRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain at least one letter",
			TranslationKey: "validation.contains_letter",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ContainsDigit validates that value has at least one ASCII digit.
func ContainsDigit(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return digitRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain at least one digit",
			TranslationKey: "validation.contains_digit",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ContainsSpecial validates that value has at least one character from SpecialChars.
func ContainsSpecial(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.ContainsAny(value, SpecialChars)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain at least one special character",
			TranslationKey: "validation.contains_special",
			TranslationValues: map[string]any{
				"field":         field,
				"special_chars": SpecialChars,
			},
		},
	}
}
