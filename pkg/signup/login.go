package signup

import "github.com/dmitrymomot/whitebox/pkg/validator"

// LoginResult is the outcome of a login field check.
type LoginResult string

const (
	LoginSuccessful LoginResult = "Login Successful"
	LoginFailed     LoginResult = "Login Failed"
)

// LoginPolicy bounds the character count of the username and password fields.
// Both bounds are inclusive. Fields without a value in the environment keep
// whatever the struct held before parsing, so start from DefaultLoginPolicy.
type LoginPolicy struct {
	UsernameMin int `env:"USERNAME_MIN"`
	UsernameMax int `env:"USERNAME_MAX"`
	PasswordMin int `env:"PASSWORD_MIN"`
	PasswordMax int `env:"PASSWORD_MAX"`
}

func DefaultLoginPolicy() LoginPolicy {
	return LoginPolicy{
		UsernameMin: 5,
		UsernameMax: 20,
		PasswordMin: 8,
		PasswordMax: 15,
	}
}

// ValidateBounds rejects negative minimums and a minimum above its maximum.
func (p LoginPolicy) ValidateBounds() error {
	return validator.Apply(
		validator.NonNegative("username_min", p.UsernameMin),
		validator.Min("username_max", p.UsernameMax, p.UsernameMin),
		validator.NonNegative("password_min", p.PasswordMin),
		validator.Min("password_max", p.PasswordMax, p.PasswordMin),
	)
}

// Check returns validator.ValidationErrors for every field out of bounds.
func (p LoginPolicy) Check(username, password string) error {
	return validator.Apply(p.rules(username, password)...)
}

func (p LoginPolicy) Validate(username, password string) LoginResult {
	if !validator.Valid(p.rules(username, password)...) {
		return LoginFailed
	}
	return LoginSuccessful
}

func (p LoginPolicy) rules(username, password string) []validator.Rule {
	return []validator.Rule{
		validator.LenBetween("username", username, p.UsernameMin, p.UsernameMax),
		validator.LenBetween("password", password, p.PasswordMin, p.PasswordMax),
	}
}

// ValidateLogin checks the fields against DefaultLoginPolicy.
func ValidateLogin(username, password string) LoginResult {
	return DefaultLoginPolicy().Validate(username, password)
}
