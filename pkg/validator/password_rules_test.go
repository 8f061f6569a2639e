package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/whitebox/pkg/validator"
)

func TestContainsLetter(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.ContainsLetter("password", "1234a678").Check())
	assert.True(t, validator.ContainsLetter("password", "Z").Check())
	assert.False(t, validator.ContainsLetter("password", "12345678").Check())
	assert.False(t, validator.ContainsLetter("password", "#@!$%&%$!@#").Check())
	assert.False(t, validator.ContainsLetter("password", "ñ").Check(), "only ASCII letters count")
	assert.Equal(t, "validation.contains_letter", validator.ContainsLetter("password", "").Error.TranslationKey)
}

func TestContainsDigit(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.ContainsDigit("password", "Ab#deFg123").Check())
	assert.False(t, validator.ContainsDigit("password", "Ab#deFg").Check())
	assert.False(t, validator.ContainsDigit("password", "").Check())
}

func TestContainsSpecial(t *testing.T) {
	t.Parallel()

	t.Run("every listed character counts", func(t *testing.T) {
		t.Parallel()
		for _, r := range validator.SpecialChars {
			assert.True(t, validator.ContainsSpecial("password", "abc"+string(r)).Check(), "char %q", r)
		}
	})

	t.Run("letters digits and spaces do not count", func(t *testing.T) {
		t.Parallel()
		assert.False(t, validator.ContainsSpecial("password", "Abc 123").Check())
		assert.False(t, validator.ContainsSpecial("password", "").Check())
	})

	t.Run("error metadata lists the set", func(t *testing.T) {
		t.Parallel()
		rule := validator.ContainsSpecial("password", "")
		assert.Equal(t, "must contain at least one special character", rule.Error.Message)
		assert.Equal(t, validator.SpecialChars, rule.Error.TranslationValues["special_chars"])
	})
}
