package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/whitebox/pkg/sanitizer"
)

func TestTrimToLower(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "express", sanitizer.TrimToLower("  Express\t"))
	assert.Equal(t, "", sanitizer.TrimToLower("   "))
}

func TestMaskEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		want  string
	}{
		{"Jaime@iteso.mx", "J****@iteso.mx"},
		{" j@iteso.mx ", "j@iteso.mx"},
		{"@iteso.mx", "@iteso.mx"},
		{"Jaimeiteso.mx", "Jaimeiteso.mx"},
		{"a@b@c.mx", "a@b@c.mx"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizer.MaskEmail(tt.email), "email %q", tt.email)
	}
}
