package gradebook

import (
	"encoding/json"
	"time"
)

// dueDateLayouts covers the formats the upstream API has been seen using.
var dueDateLayouts = []string{
	"1/2/2006",
	"01/02/2006",
	"2006-01-02",
}

// Assignment is one graded item inside a course. Points is either
// "score / total" or freeform text meaning ungraded. The lower-case-tagged
// fields are derived during enrichment; ScorePercent is -1 for
// ungraded/excluded assignments.
type Assignment struct {
	GradebookID string `json:"GradebookID,omitempty"`
	Measure     string `json:"Measure"`
	Type        string `json:"Type"`
	DueDate     string `json:"DueDate"`
	Points      string `json:"Points"`
	Notes       string `json:"Notes"`

	ScorePercent float64 `json:"scorePercent"`
	Percent      string  `json:"percent,omitempty"`
	Score        string  `json:"score,omitempty"`
	Style        string  `json:"style,omitempty"`
	Course       string  `json:"course,omitempty"`
	CourseIndex  int     `json:"courseIndex"`
}

// DueDateTime parses the assignment's due date, degrading to the zero time
// when the value matches none of the known layouts.
func (a *Assignment) DueDateTime() time.Time {
	return ParseDate(a.DueDate)
}

// ParseDate parses an upstream date string, degrading to the zero time when
// the value matches none of the known layouts.
func ParseDate(s string) time.Time {
	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

// AssignmentList tolerates the upstream quirk of serializing a single
// assignment as a bare object instead of a one-element array.
type AssignmentList []*Assignment

// UnmarshalJSON decodes either a JSON array or a single object into the list.
func (l *AssignmentList) UnmarshalJSON(data []byte) error {
	var many []*Assignment
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}

	var one Assignment
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = AssignmentList{&one}
	return nil
}

// Assignments wraps the assignment list the way the upstream record nests it.
type Assignments struct {
	Assignment AssignmentList `json:"Assignment"`
}
