// Package validator provides a small set of composable, type-safe validation
// rules for strings, numbers and slices.
//
// Every exported helper returns a Rule: a Check closure paired with
// translation-friendly error metadata. Rules are evaluated either with Apply,
// which collects every failure into a ValidationErrors value that satisfies
// the error interface, or with Valid, which short-circuits and returns a
// plain bool for callers that only need a verdict.
//
// # Architecture
//
// Each source file groups a family of rules (`string_rules.go`,
// `numeric_rules.go`, `password_rules.go`, `format_rules.go`,
// `collection_rules.go`). There is no global state; the package is
// goroutine-safe.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.LenBetween("username", username, 5, 20),
//	    validator.ContainsDigit("password", password),
//	    validator.ValidEmail("email", email),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // ...
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed under errors.Is, and can be
// recovered with errors.As or ExtractValidationErrors. Field-level messages
// are available through Has, Get and Fields.
package validator
