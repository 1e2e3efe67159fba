package grades

import (
	"math"
	"testing"

	"gradebook-server/models/gradebook"
)

func courseWithAssignments(assignments ...*gradebook.Assignment) *gradebook.Course {
	return &gradebook.Course{
		Title: "History",
		Marks: gradebook.Marks{Mark: gradebook.Mark{
			CalculatedScoreRaw: "90",
			Assignments:        gradebook.Assignments{Assignment: assignments},
		}},
	}
}

func TestReplayCourse_ChronologicalPoints(t *testing.T) {
	// Setup: the raw list arrives newest-first.
	b := newTestBuilder()
	course := courseWithAssignments(
		&gradebook.Assignment{Measure: "Quiz 2", DueDate: "12/5/2025", Points: "8 / 10"},
		&gradebook.Assignment{Measure: "Quiz 1", DueDate: "11/21/2025", Points: "10 / 10"},
	)

	// Act
	replayed := b.replayCourse(course, 0)

	// Assert: the replay is oldest-first and the chart follows it.
	if len(replayed) != 2 {
		t.Fatalf("Expected 2 replayed assignments, got %d", len(replayed))
	}
	if replayed[0].Measure != "Quiz 1" || replayed[1].Measure != "Quiz 2" {
		t.Errorf("Expected chronological replay, got %q then %q", replayed[0].Measure, replayed[1].Measure)
	}

	if len(course.ChartData) != 2 {
		t.Fatalf("Expected 2 chart points, got %d", len(course.ChartData))
	}
	if !course.ChartData[0].Date.Before(course.ChartData[1].Date) {
		t.Error("Expected chart points in ascending date order")
	}
	if math.Abs(course.ChartData[0].Grade-100) > 1e-9 {
		t.Errorf("Expected first running grade 100, got %v", course.ChartData[0].Grade)
	}
	if math.Abs(course.ChartData[1].Grade-90) > 1e-9 {
		t.Errorf("Expected second running grade 90, got %v", course.ChartData[1].Grade)
	}
}

func TestReplayCourse_SameDateOverwritesPoint(t *testing.T) {
	// Setup: two graded assignments share a due date.
	b := newTestBuilder()
	course := courseWithAssignments(
		&gradebook.Assignment{Measure: "Essay", DueDate: "12/5/2025", Points: "85 / 100"},
		&gradebook.Assignment{Measure: "Quiz", DueDate: "12/5/2025", Points: "10 / 10"},
	)

	// Act
	b.replayCourse(course, 0)

	// Assert: one point, carrying the grade as of the later-replayed item.
	if len(course.ChartData) != 1 {
		t.Fatalf("Expected 1 chart point, got %d", len(course.ChartData))
	}
	expected := (10.0 + 85.0) / (10.0 + 100.0) * 100
	if math.Abs(course.ChartData[0].Grade-expected) > 1e-9 {
		t.Errorf("Expected overwritten grade %v, got %v", expected, course.ChartData[0].Grade)
	}
}

func TestReplayCourse_NonQualifyingEmitsNoPoint(t *testing.T) {
	// Setup: an ungraded and an excluded assignment around a graded one.
	b := newTestBuilder()
	course := courseWithAssignments(
		&gradebook.Assignment{Measure: "Project", DueDate: "12/8/2025", Points: "Missing"},
		&gradebook.Assignment{Measure: "Survey", DueDate: "12/3/2025", Points: "0 / 0"},
		&gradebook.Assignment{Measure: "Quiz", DueDate: "11/21/2025", Points: "9 / 10"},
	)

	// Act
	replayed := b.replayCourse(course, 0)

	// Assert
	if len(replayed) != 3 {
		t.Fatalf("Expected all 3 assignments collected, got %d", len(replayed))
	}
	if len(course.ChartData) != 1 {
		t.Fatalf("Expected 1 chart point, got %d", len(course.ChartData))
	}
	if math.Abs(course.ChartData[0].Grade-90) > 1e-9 {
		t.Errorf("Expected grade 90, got %v", course.ChartData[0].Grade)
	}
}

func TestReplayCourse_ZeroTotalNotAccumulated(t *testing.T) {
	// Setup: a zero-total assignment after a graded one.
	b := newTestBuilder()
	course := courseWithAssignments(
		&gradebook.Assignment{Measure: "Retake", DueDate: "12/8/2025", Points: "5 / 0"},
		&gradebook.Assignment{Measure: "Quiz", DueDate: "11/21/2025", Points: "9 / 10"},
	)

	// Act
	b.replayCourse(course, 0)

	// Assert: it emits no point and the running grade stays finite.
	if len(course.ChartData) != 1 {
		t.Fatalf("Expected 1 chart point, got %d", len(course.ChartData))
	}
	if math.Abs(course.ChartData[0].Grade-90) > 1e-9 {
		t.Errorf("Expected grade 90, got %v", course.ChartData[0].Grade)
	}
}

func TestReplayCourse_AnnotatesEveryAssignment(t *testing.T) {
	// Setup
	b := newTestBuilder()
	course := courseWithAssignments(
		&gradebook.Assignment{Measure: "Worksheet", DueDate: "12/5/2025", Points: "Missing"},
	)

	// Act
	replayed := b.replayCourse(course, 3)

	// Assert: even a non-qualifying assignment carries its back-reference.
	if replayed[0].Course != "History" {
		t.Errorf("Expected course annotation \"History\", got %q", replayed[0].Course)
	}
	if replayed[0].CourseIndex != 3 {
		t.Errorf("Expected courseIndex 3, got %d", replayed[0].CourseIndex)
	}
}

func TestReplayCourse_SourceOrderUntouched(t *testing.T) {
	// Setup
	b := newTestBuilder()
	first := &gradebook.Assignment{Measure: "Newest", DueDate: "12/5/2025", Points: "8 / 10"}
	second := &gradebook.Assignment{Measure: "Oldest", DueDate: "11/21/2025", Points: "10 / 10"}
	course := courseWithAssignments(first, second)

	// Act
	b.replayCourse(course, 0)

	// Assert: the raw list still reads newest-first.
	raw := course.Marks.Mark.Assignments.Assignment
	if raw[0] != first || raw[1] != second {
		t.Error("Expected the raw assignment order to be left alone")
	}
}

func TestReplayCourse_FourPointTrajectory(t *testing.T) {
	// Setup
	b := newTestBuilder()
	course := courseWithAssignments(
		&gradebook.Assignment{Measure: "Presentation", DueDate: "12/10/2025", Points: "85 / 100"},
	)
	course.Marks.Mark.CalculatedScoreString = "A-"
	course.Marks.Mark.CalculatedScoreRaw = "3.7"
	b.normalizeMark(course)

	// Act
	b.replayCourse(course, 0)

	// Assert: a four-point course charts on the 4.0 scale.
	if len(course.ChartData) != 1 {
		t.Fatalf("Expected 1 chart point, got %d", len(course.ChartData))
	}
	if math.Abs(course.ChartData[0].Grade-3.4) > 1e-9 {
		t.Errorf("Expected grade 3.4, got %v", course.ChartData[0].Grade)
	}
}
