// Package signup holds the account checks run before a user is let in:
// password strength, login field lengths, age eligibility and email shape.
//
// Every check is built from pkg/validator rules. The boolean and result-string
// helpers (ValidatePassword, ValidateLogin, VerifyAge, ValidateEmail) cover the
// common case; the policy types expose the same rules as validator.ValidationErrors
// so callers can report every failed field at once.
//
// Basic usage:
//
//	if signup.ValidateLogin(user, pass) != signup.LoginSuccessful {
//		// reject
//	}
//
// Bounds can be overridden from the environment through the env tags on
// LoginPolicy and EmailPolicy:
//
//	type Config struct {
//		Login signup.LoginPolicy `envPrefix:"LOGIN_"`
//		Email signup.EmailPolicy `envPrefix:"EMAIL_"`
//	}
package signup
