package gradebook

import "time"

// ChartPoint is one (due date, running grade) sample of a course trajectory.
type ChartPoint struct {
	Date  time.Time `json:"x"`
	Grade float64   `json:"y"`
}

// Course is one course inside a period. Derived fields: ScorePercent is -1
// when the course has no usable grade; ChartData is chronological and unique
// by date.
type Course struct {
	Title string `json:"Title"`
	Marks Marks  `json:"Marks"`

	ScorePercent float64      `json:"scorePercent"`
	Score        string       `json:"score,omitempty"`
	FourPoint    bool         `json:"fourPoint"`
	Color        string       `json:"color,omitempty"`
	Style        string       `json:"style,omitempty"`
	ChartData    []ChartPoint `json:"chartData,omitempty"`
}
