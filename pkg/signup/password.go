package signup

import "github.com/dmitrymomot/whitebox/pkg/validator"

// MinPasswordLength is the shortest password ValidatePassword accepts.
const MinPasswordLength = 8

// ValidatePassword reports whether s is at least MinPasswordLength characters long
// and mixes a letter, a digit and one of validator.SpecialChars.
func ValidatePassword(s string) bool {
	return validator.Valid(passwordRules(s)...)
}

// CheckPassword is ValidatePassword that names every unmet requirement.
func CheckPassword(s string) error {
	return validator.Apply(passwordRules(s)...)
}

func passwordRules(s string) []validator.Rule {
	return []validator.Rule{
		validator.MinLen("password", s, MinPasswordLength),
		validator.ContainsDigit("password", s),
		validator.ContainsLetter("password", s),
		validator.ContainsSpecial("password", s),
	}
}
