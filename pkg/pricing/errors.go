package pricing

import "errors"

var (
	ErrInvalidShippingMethod = errors.New("pricing: invalid shipping method")
	ErrInvalidRules          = errors.New("pricing: invalid rules")
)
