package models

import (
	"encoding/json"

	"gradebook-server/models/gradebook"
)

// GradebookResponse is the top-level record returned by the Synergy API for
// one student: an opaque profile blob plus all grading periods.
type GradebookResponse struct {
	Student       json.RawMessage     `json:"student"`
	Periods       []*gradebook.Period `json:"periods"`
	CurrentPeriod int                 `json:"currentPeriod"`
}

// GradebookView is the enriched view model produced from a GradebookResponse.
// Selected and Gradebook both alias Periods[SelectedPeriod].
type GradebookView struct {
	Student        json.RawMessage     `json:"student"`
	Periods        []*gradebook.Period `json:"periods"`
	CurrentPeriod  int                 `json:"currentPeriod"`
	SelectedPeriod int                 `json:"selectedPeriod"`
	Selected       *gradebook.Period   `json:"selected"`
	Gradebook      *gradebook.Period   `json:"gradebook"`
}
