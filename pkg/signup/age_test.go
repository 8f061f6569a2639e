package signup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/whitebox/pkg/signup"
)

func TestVerifyAge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		age  int
		want signup.Eligibility
	}{
		{30, signup.Eligible},
		{17, signup.NotEligible},
		{66, signup.NotEligible},
		{18, signup.Eligible},
		{65, signup.Eligible},
		{0, signup.NotEligible},
		{-1, signup.NotEligible},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, signup.VerifyAge(tt.age), "age %d", tt.age)
	}

	assert.Equal(t, "Not Eligible", string(signup.VerifyAge(17)))
}
