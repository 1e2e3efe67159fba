package grades

import (
	"time"
)

// Test collaborators: a linear 4.0-scale table (3.7 -> 92.5), a banding
// function that only distinguishes "no grade", and a frozen clock.

func testFourToPercent(gpa float64) float64 {
	return gpa * 25
}

func testColorOf(percent float64) string {
	if percent < 0 {
		return "gray"
	}
	return "green"
}

// testNow is Wednesday, December 10th 2025, mid-afternoon local time.
var testNow = time.Date(2025, time.December, 10, 15, 0, 0, 0, time.Local)

func newTestBuilder() *Builder {
	return NewBuilder(testFourToPercent, testColorOf, func() time.Time { return testNow })
}
