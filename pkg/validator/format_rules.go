package validator

import (
	"net/mail"
	"strings"
)

// ValidEmail validates that a string is a bare email address: it must parse
// under RFC 5322, carry no display name, have a non-empty local part, and a
// dotted domain without empty labels.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			// "Name <a@b.c>" parses, but is not what a form field should hold
			if addr.Name != "" || addr.Address != value {
				return false
			}

			localPart, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || localPart == "" {
				return false
			}

			if !strings.Contains(domain, ".") {
				return false
			}

			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
