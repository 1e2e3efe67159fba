package grades

import (
	"encoding/json"
	"testing"

	"gradebook-server/models"
	"gradebook-server/models/gradebook"
)

func rawRecord() *models.GradebookResponse {
	return &models.GradebookResponse{
		Student:       json.RawMessage(`{"FormattedName":"Avery Johnson"}`),
		CurrentPeriod: 0,
		Periods: []*gradebook.Period{
			{
				ReportingPeriod: gradebook.ReportingPeriod{
					GradePeriod: "Quarter 2",
					EndDate:     "1/16/2026",
				},
				Courses: gradebook.Courses{Course: []*gradebook.Course{
					{
						Title: "Algebra II (Room 204)",
						Marks: gradebook.Marks{Mark: gradebook.Mark{
							CalculatedScoreString: "A-",
							CalculatedScoreRaw:    "90",
							Assignments: gradebook.Assignments{Assignment: gradebook.AssignmentList{
								{Measure: "Unit 3 Test", Type: "Tests", DueDate: "12/9/2025", Points: "54 / 60"},
								{Measure: "Worksheet", Type: "Homework", DueDate: "11/21/2025", Points: "9 / 10"},
							}},
						}},
					},
					{
						Title: "English 10",
						Marks: gradebook.Marks{Mark: gradebook.Mark{
							CalculatedScoreString: "B",
							CalculatedScoreRaw:    "80",
							Assignments: gradebook.Assignments{Assignment: gradebook.AssignmentList{
								{Measure: "Essay", Type: "Essays", DueDate: "12/8/2025", Points: "40 / 50"},
							}},
						}},
					},
					{
						Title: "Chemistry",
						Marks: gradebook.Marks{Mark: gradebook.Mark{
							CalculatedScoreString: "N/A",
							CalculatedScoreRaw:    "N/A",
						}},
					},
				}},
			},
		},
	}
}

func TestBuild_PeriodAverageSkipsUngradedCourses(t *testing.T) {
	// Setup: courses at 90, 80 and N/A; the N/A one must leave the
	// denominator, not drag the mean down.
	b := newTestBuilder()

	// Act
	view := b.Build(rawRecord())

	// Assert
	period := view.Periods[0]
	if period.Average != "85.0%" {
		t.Errorf("Expected period average \"85.0%%\", got %q", period.Average)
	}
}

func TestBuild_StripsTitleSuffix(t *testing.T) {
	// Setup
	b := newTestBuilder()

	// Act
	view := b.Build(rawRecord())

	// Assert
	if title := view.Periods[0].Courses.Course[0].Title; title != "Algebra II" {
		t.Errorf("Expected stripped title \"Algebra II\", got %q", title)
	}
}

func TestBuild_FlatAssignmentsSortedNewestFirst(t *testing.T) {
	// Setup
	b := newTestBuilder()

	// Act
	view := b.Build(rawRecord())

	// Assert
	assignments := view.Periods[0].Assignments
	if len(assignments) != 3 {
		t.Fatalf("Expected 3 flattened assignments, got %d", len(assignments))
	}
	for i := 1; i < len(assignments); i++ {
		if assignments[i].DueDateTime().After(assignments[i-1].DueDateTime()) {
			t.Fatalf("Expected newest-first order, got %q before %q",
				assignments[i-1].Measure, assignments[i].Measure)
		}
	}
	if assignments[0].Measure != "Unit 3 Test" {
		t.Errorf("Expected \"Unit 3 Test\" first, got %q", assignments[0].Measure)
	}
	if assignments[0].Course != "Algebra II" {
		t.Errorf("Expected back-reference to the stripped title, got %q", assignments[0].Course)
	}
}

func TestBuild_SelectedAliasesCurrentPeriod(t *testing.T) {
	// Setup
	b := newTestBuilder()

	// Act
	view := b.Build(rawRecord())

	// Assert
	if view.SelectedPeriod != view.CurrentPeriod {
		t.Errorf("Expected selectedPeriod %d, got %d", view.CurrentPeriod, view.SelectedPeriod)
	}
	if view.Selected != view.Periods[view.CurrentPeriod] {
		t.Error("Expected selected to alias the current period")
	}
	if view.Gradebook != view.Selected {
		t.Error("Expected gradebook to alias the selected period")
	}
}

func TestBuild_OutOfRangeCurrentPeriod(t *testing.T) {
	// Setup
	b := newTestBuilder()
	raw := rawRecord()
	raw.CurrentPeriod = 5

	// Act
	view := b.Build(raw)

	// Assert: degrade, never panic.
	if view.Selected != nil || view.Gradebook != nil {
		t.Error("Expected no selected period for an out-of-range index")
	}
}

func TestBuild_Idempotent(t *testing.T) {
	// Setup: with the clock held fixed, rebuilding the same record must
	// produce byte-identical derived fields.
	b := newTestBuilder()
	raw := rawRecord()

	// Act
	first, err := json.Marshal(b.Build(raw))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := json.Marshal(b.Build(raw))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Assert
	if string(first) != string(second) {
		t.Error("Expected repeated builds to be byte-identical")
	}
}

func TestMergeSession(t *testing.T) {
	// Setup
	b := newTestBuilder()
	view := b.Build(rawRecord())
	session := map[string]interface{}{
		"token":    "abc123",
		"selected": "stale",
	}

	// Act
	merged := MergeSession(session, view)

	// Assert: pre-existing keys survive, derived keys win on conflict.
	if merged["token"] != "abc123" {
		t.Errorf("Expected session token preserved, got %v", merged["token"])
	}
	if merged["selected"] != view.Selected {
		t.Error("Expected derived selected period to win over the stale one")
	}
	if merged["gradebook"] != view.Gradebook {
		t.Error("Expected gradebook in the merged session")
	}
	if _, stale := session["student"]; stale {
		t.Error("Expected the input session map to be left alone")
	}
}
