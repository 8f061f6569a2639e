package numbers

// Grade is a letter grade.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeF Grade = "F"
)

// gradeFloors lists the lowest passing score for each letter, best first.
var gradeFloors = []struct {
	min   float64
	grade Grade
}{
	{90, GradeA},
	{80, GradeB},
	{70, GradeC},
}

// GetGrade maps a score to a letter: 90 and above is A, 80 is B, 70 is C,
// anything lower is F.
func GetGrade(score float64) Grade {
	for _, f := range gradeFloors {
		if score >= f.min {
			return f.grade
		}
	}
	return GradeF
}
