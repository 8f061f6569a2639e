package signup

import "github.com/dmitrymomot/whitebox/pkg/validator"

// Eligibility is the outcome of an age check.
type Eligibility string

const (
	Eligible    Eligibility = "Eligible"
	NotEligible Eligibility = "Not Eligible"
)

const (
	MinAge = 18
	MaxAge = 65
)

// VerifyAge reports whether age falls within [MinAge, MaxAge].
func VerifyAge(age int) Eligibility {
	if !validator.Valid(validator.Range("age", age, MinAge, MaxAge)) {
		return NotEligible
	}
	return Eligible
}
