package grades

import (
	"gradebook-server/models/gradebook"
)

// replayCourse walks one course's assignments oldest-first, folding each
// qualifying one into the category accumulators and rebuilding the chart
// trajectory. Every assignment, qualifying or not, is annotated with its
// owning course and normalized score fields; the replay-ordered slice is
// returned for the period's flat list.
//
// The raw list arrives newest-first; the replay runs over a reversed copy
// so the source ordering is never aliased with the period ordering.
func (b *Builder) replayCourse(course *gradebook.Course, index int) []*gradebook.Assignment {
	course.ChartData = nil

	raw := course.Marks.Mark.Assignments.Assignment
	if len(raw) == 0 {
		return nil
	}

	replay := make([]*gradebook.Assignment, len(raw))
	for i, a := range raw {
		replay[len(raw)-1-i] = a
	}

	st := newScoreTypes(course.Marks.Mark.GradeCalculationSummary.AssignmentGradeCalc)

	for _, a := range replay {
		a.Course = course.Title
		a.CourseIndex = index

		score := b.normalizeAssignment(a)
		if !score.graded || score.excluded {
			continue
		}

		st.add(a.Type, score.value, score.total)

		grade, ok := st.runningGrade(course.FourPoint)
		if !ok {
			continue
		}

		date := a.DueDateTime()
		if n := len(course.ChartData); n > 0 && course.ChartData[n-1].Date.Equal(date) {
			// A later assignment on the same due date moves the point,
			// it never adds a second one.
			course.ChartData[n-1].Grade = grade
		} else {
			course.ChartData = append(course.ChartData, gradebook.ChartPoint{Date: date, Grade: grade})
		}
	}

	return replay
}
