package util

// Color tokens for grade banding. NO_GRADE_COLOR is the neutral token used
// whenever a course, assignment, period or week has no usable score (-1).
const (
	COLOR_A        = "#4caf50"
	COLOR_B        = "#8bc34a"
	COLOR_C        = "#ffc107"
	COLOR_D        = "#ff9800"
	COLOR_F        = "#f44336"
	NO_GRADE_COLOR = "#9e9e9e"
)

// GetColor maps a percent score to its banding color token. -1 (and any
// other negative sentinel) maps to the neutral no-grade color.
func GetColor(percent float64) string {
	switch {
	case percent < 0:
		return NO_GRADE_COLOR
	case percent >= 90:
		return COLOR_A
	case percent >= 80:
		return COLOR_B
	case percent >= 70:
		return COLOR_C
	case percent >= 60:
		return COLOR_D
	default:
		return COLOR_F
	}
}

// fourPointScale maps 4.0-scale cut points to percent equivalents,
// descending. A raw value picks the highest cut point it reaches.
var fourPointScale = []struct {
	GPA     float64
	Percent float64
}{
	{4.0, 100.0},
	{3.7, 92.5},
	{3.3, 89.5},
	{3.0, 86.0},
	{2.7, 82.5},
	{2.3, 79.5},
	{2.0, 76.0},
	{1.7, 72.5},
	{1.3, 69.5},
	{1.0, 66.0},
	{0.7, 62.5},
}

// FourToPercent converts a 4.0-scale grade to its percent equivalent.
// Values below the lowest cut point map to the bottom of the D- band.
func FourToPercent(gpa float64) float64 {
	for _, entry := range fourPointScale {
		if gpa >= entry.GPA {
			return entry.Percent
		}
	}
	return 60.0
}
