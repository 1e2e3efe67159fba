package grades

import (
	"regexp"
	"sort"
	"time"

	"gradebook-server/models"
	"gradebook-server/models/gradebook"
)

// titleSuffix matches the parenthetical section/room suffixes the upstream
// API appends to course titles, e.g. "Algebra II (Room 204)".
var titleSuffix = regexp.MustCompile(` \([\s\S]*?\)`)

// Builder derives the display-ready gradebook view from a raw record. The
// 4.0-scale conversion, color banding and clock are injected so the
// derivation is deterministic under a fixed clock and never reads globals.
type Builder struct {
	FourToPercent func(float64) float64
	ColorOf       func(float64) string
	Now           func() time.Time
}

// NewBuilder wires a Builder with its external collaborators.
func NewBuilder(
	fourToPercent func(float64) float64,
	colorOf func(float64) string,
	now func() time.Time) *Builder {

	return &Builder{
		FourToPercent: fourToPercent,
		ColorOf:       colorOf,
		Now:           now,
	}
}

// Build enriches every period of the raw record in place and assembles the
// view model. Re-running on the same record with the clock held fixed
// produces identical derived fields.
func (b *Builder) Build(raw *models.GradebookResponse) *models.GradebookView {
	now := b.Now()

	for _, period := range raw.Periods {
		b.buildPeriod(period, now)
	}

	view := &models.GradebookView{
		Student:        raw.Student,
		Periods:        raw.Periods,
		CurrentPeriod:  raw.CurrentPeriod,
		SelectedPeriod: raw.CurrentPeriod,
	}
	if raw.CurrentPeriod >= 0 && raw.CurrentPeriod < len(raw.Periods) {
		view.Selected = raw.Periods[raw.CurrentPeriod]
		view.Gradebook = raw.Periods[raw.CurrentPeriod]
	}
	return view
}

// buildPeriod normalizes every course mark, then derives the period average,
// the flat replayed assignment list and the weekly window.
func (b *Builder) buildPeriod(period *gradebook.Period, now time.Time) {
	var courseGrades []float64
	for _, course := range period.Courses.Course {
		course.Title = titleSuffix.ReplaceAllString(course.Title, "")
		b.normalizeMark(course)
		if course.ScorePercent >= 0 {
			courseGrades = append(courseGrades, course.ScorePercent)
		}
	}

	b.summarizePeriod(period, courseGrades, now)
	period.Assignments = b.collectAssignments(period)
	period.Week = b.buildWeek(period.Assignments, now)
}

// collectAssignments replays every course and flattens the annotated
// assignments into one list sorted newest-first by due date. The sort is
// stable so equal-date assignments keep their replay order between runs.
func (b *Builder) collectAssignments(period *gradebook.Period) []*gradebook.Assignment {
	var all []*gradebook.Assignment
	for i, course := range period.Courses.Course {
		all = append(all, b.replayCourse(course, i)...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].DueDateTime().After(all[j].DueDateTime())
	})
	return all
}

// MergeSession overlays the view's top-level fields on a pre-existing
// session map without mutating it.
func MergeSession(session map[string]interface{}, view *models.GradebookView) map[string]interface{} {
	merged := make(map[string]interface{}, len(session)+6)
	for k, v := range session {
		merged[k] = v
	}
	merged["student"] = view.Student
	merged["periods"] = view.Periods
	merged["currentPeriod"] = view.CurrentPeriod
	merged["selectedPeriod"] = view.SelectedPeriod
	merged["selected"] = view.Selected
	merged["gradebook"] = view.Gradebook
	return merged
}
