package signup

import "github.com/dmitrymomot/whitebox/pkg/validator"

// EmailResult is the outcome of an email check.
type EmailResult string

const (
	ValidEmail   EmailResult = "Valid Email"
	InvalidEmail EmailResult = "Invalid Email"
)

// EmailPolicy bounds the character count of an email address, inclusive.
type EmailPolicy struct {
	MinLength int `env:"MIN_LENGTH"`
	MaxLength int `env:"MAX_LENGTH"`
}

func DefaultEmailPolicy() EmailPolicy {
	return EmailPolicy{MinLength: 5, MaxLength: 30}
}

// ValidateBounds rejects a negative minimum and a minimum above the maximum.
func (p EmailPolicy) ValidateBounds() error {
	return validator.Apply(
		validator.NonNegative("min_length", p.MinLength),
		validator.Min("max_length", p.MaxLength, p.MinLength),
	)
}

// Check returns validator.ValidationErrors when email is out of bounds or
// not a bare address with exactly one "@".
func (p EmailPolicy) Check(email string) error {
	return validator.Apply(p.rules(email)...)
}

func (p EmailPolicy) Validate(email string) EmailResult {
	if !validator.Valid(p.rules(email)...) {
		return InvalidEmail
	}
	return ValidEmail
}

func (p EmailPolicy) rules(email string) []validator.Rule {
	return []validator.Rule{
		validator.LenBetween("email", email, p.MinLength, p.MaxLength),
		validator.CountString("email", email, "@", 1),
		validator.ValidEmail("email", email),
	}
}

// ValidateEmail checks email against DefaultEmailPolicy.
func ValidateEmail(email string) EmailResult {
	return DefaultEmailPolicy().Validate(email)
}
