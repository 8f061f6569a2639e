package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/whitebox/pkg/validator"
)

func TestRequiredSlice(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.RequiredSlice("items", []int{1}).Check())
	assert.False(t, validator.RequiredSlice("items", []int{}).Check())
	assert.False(t, validator.RequiredSlice[int]("items", nil).Check())
}

func TestLenSlice(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.LenSlice("rates", []float64{10, 15, 20}, 3).Check())
	assert.False(t, validator.LenSlice("rates", []float64{10, 15}, 3).Check())

	rule := validator.LenSlice("rates", []float64{}, 3)
	assert.Equal(t, "must have exactly 3 items", rule.Error.Message)
	assert.Equal(t, map[string]any{"field": "rates", "length": 3}, rule.Error.TranslationValues)
}

func TestAscendingSlice(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.AscendingSlice("limits", []float64{5, 10}).Check())
	assert.True(t, validator.AscendingSlice("limits", []float64{}).Check())
	assert.True(t, validator.AscendingSlice("limits", []int{1}).Check())
	assert.False(t, validator.AscendingSlice("limits", []float64{10, 5}).Check())
	assert.False(t, validator.AscendingSlice("limits", []float64{5, 5}).Check())
}
