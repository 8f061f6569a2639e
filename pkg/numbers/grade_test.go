package numbers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/whitebox/pkg/numbers"
)

func TestGetGrade(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score float64
		want  numbers.Grade
	}{
		{"A", 95, numbers.GradeA},
		{"B", 85, numbers.GradeB},
		{"C", 75, numbers.GradeC},
		{"F", 65, numbers.GradeF},
		{"A lower bound", 90, numbers.GradeA},
		{"B upper edge", 89.99, numbers.GradeB},
		{"B lower bound", 80, numbers.GradeB},
		{"C lower bound", 70, numbers.GradeC},
		{"F upper edge", 69.99, numbers.GradeF},
		{"perfect", 100, numbers.GradeA},
		{"above scale", 120, numbers.GradeA},
		{"negative", -5, numbers.GradeF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, numbers.GetGrade(tt.score))
		})
	}
}
