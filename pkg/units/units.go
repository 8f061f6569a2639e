// Package units converts between temperature scales within a supported range.
package units

import (
	"errors"
	"strconv"
)

var ErrInvalidTemperature = errors.New("units: temperature out of range")

const (
	MinCelsius = -100.0
	MaxCelsius = 100.0

	// InvalidTemperature is how an out-of-range result renders.
	InvalidTemperature = "Invalid Temperature"
)

// Fahrenheit is the result of a conversion. The zero value is invalid.
type Fahrenheit struct {
	value float64
	valid bool
}

// CelsiusToFahrenheit converts c when MinCelsius <= c <= MaxCelsius.
// Readings outside that range yield an invalid result.
func CelsiusToFahrenheit(c float64) Fahrenheit {
	if c < MinCelsius || c > MaxCelsius {
		return Fahrenheit{}
	}
	return Fahrenheit{value: c*9/5 + 32, valid: true}
}

// Value returns the temperature and whether the conversion succeeded.
func (f Fahrenheit) Value() (float64, bool) {
	return f.value, f.valid
}

func (f Fahrenheit) Valid() bool {
	return f.valid
}

// Err returns ErrInvalidTemperature for an invalid result.
func (f Fahrenheit) Err() error {
	if !f.valid {
		return ErrInvalidTemperature
	}
	return nil
}

func (f Fahrenheit) String() string {
	if !f.valid {
		return InvalidTemperature
	}
	return strconv.FormatFloat(f.value, 'f', -1, 64)
}
