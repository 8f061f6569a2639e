package validator

import "fmt"

func RequiredSlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func LenSlice[T any](field string, value []T, exact int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) == exact
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must have exactly %d items", exact),
			TranslationKey: "validation.exact_items",
			TranslationValues: map[string]any{
				"field":  field,
				"length": exact,
			},
		},
	}
}

// AscendingSlice validates that every element is strictly greater than the one before it.
func AscendingSlice[T Numeric](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			for i := 1; i < len(value); i++ {
				if value[i] <= value[i-1] {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be in strictly ascending order",
			TranslationKey: "validation.ascending",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
