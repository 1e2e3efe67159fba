package grades

import (
	"strconv"
	"strings"

	"gradebook-server/models/gradebook"
)

// NoScore is the sentinel percent for "no usable value". It is never a
// legitimate grade.
const NoScore = -1.0

const notForGrading = "not for grading"

// normalizeMark fills a course's derived score fields from its active mark.
// "N/A" marks and unparseable raw scores degrade to the -1/"-" sentinel. A
// raw score in (0, 4] whose letter is not "F" is a 4.0-scale grade and is
// mapped onto the percent scale for cross-course comparison.
func (b *Builder) normalizeMark(course *gradebook.Course) {
	mark := &course.Marks.Mark
	course.FourPoint = false

	raw, parseErr := strconv.ParseFloat(mark.CalculatedScoreRaw, 64)

	switch {
	case mark.CalculatedScoreString == "N/A" || parseErr != nil:
		course.ScorePercent = NoScore
		course.Score = "-"
	case raw > 0 && raw <= 4.0 && mark.CalculatedScoreString != "F":
		course.ScorePercent = b.FourToPercent(raw)
		course.Score = strconv.FormatFloat(raw, 'f', 1, 64)
		course.FourPoint = true
	default:
		course.ScorePercent = raw
		course.Score = strconv.FormatFloat(raw, 'f', 1, 64) + "%"
	}

	course.Color = b.ColorOf(course.ScorePercent)
	course.Style = "color: " + course.Color + ";"
}

// assignmentScore is the parsed numeric form of one assignment's Points.
type assignmentScore struct {
	value float64
	total float64
	// graded: Points had the "x / y" shape with numeric halves.
	graded bool
	// excluded: present but kept out of every accumulator (0/0 or a
	// "not for grading" note).
	excluded bool
}

// normalizeAssignment fills an assignment's derived display fields and
// returns its parsed score. Assignments without a numeric "x / y" Points
// value stay at the -1/"Not Graded" sentinel.
func (b *Builder) normalizeAssignment(a *gradebook.Assignment) assignmentScore {
	a.Style = ""
	a.ScorePercent = NoScore
	a.Percent = "?"
	a.Score = "Not Graded"

	if !strings.Contains(a.Points, " / ") {
		return assignmentScore{}
	}

	parts := strings.SplitN(a.Points, " / ", 2)
	value, errValue := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	total, errTotal := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errValue != nil || errTotal != nil {
		return assignmentScore{}
	}

	a.Score = formatPoints(value) + " / " + formatPoints(total)

	if (value == 0 && total == 0) || strings.Contains(strings.ToLower(a.Notes), notForGrading) {
		a.ScorePercent = 0
		a.Percent = "-"
		return assignmentScore{value: value, total: total, graded: true, excluded: true}
	}

	if total == 0 {
		// Nonzero points over zero possible has no percent; degrade to
		// the ungraded sentinel instead of dividing.
		a.Score = "Not Graded"
		return assignmentScore{}
	}

	a.ScorePercent = 100 * value / total
	if a.ScorePercent == 0 {
		// An earned zero still renders as a value, not as "missing".
		a.Percent = "0.0%"
	} else {
		a.Percent = strconv.FormatFloat(a.ScorePercent, 'f', 1, 64) + "%"
	}
	a.Style = "color: " + b.ColorOf(a.ScorePercent) + ";"

	return assignmentScore{value: value, total: total, graded: true}
}

// formatPoints renders a points value without trailing zeros ("85", "8.5").
func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
