package signup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/whitebox/pkg/signup"
	"github.com/dmitrymomot/whitebox/pkg/validator"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"empty", "", false},
		{"digits only", "12345678", false},
		{"letter digit special", "Ab#deFg123", true},
		{"specials only", "#@!$%&%$!@#", false},
		{"too short", "Ab#1", false},
		{"exactly eight", "abc1234!", true},
		{"no special", "abcd1234", false},
		{"no digit", "abcdefg!", false},
		{"backtick counts", "abc1234`", true},
		{"dash counts", "abc-1234", true},
		{"space is not special", "abc 1234", false},
		{"six multibyte characters", "ééé1!a", false},
		{"eight multibyte characters", "ééééé1!a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, signup.ValidatePassword(tt.password))
		})
	}
}

func TestCheckPassword(t *testing.T) {
	t.Parallel()

	t.Run("strong password", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, signup.CheckPassword("Ab#deFg123"))
	})

	t.Run("reports every failure", func(t *testing.T) {
		t.Parallel()
		err := signup.CheckPassword("#@!")
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		errs := validator.ExtractValidationErrors(err)
		assert.Len(t, errs, 3)
		assert.Equal(t, []string{"password"}, errs.Fields())
		assert.Contains(t, errs.Get("password"), "must contain at least one digit")
		assert.Contains(t, errs.Get("password"), "must contain at least one letter")
	})
}
