package gradebook

// Marks wraps the single active mark the way the upstream record nests it.
type Marks struct {
	Mark Mark `json:"Mark"`
}

// GradeCalc is one category weight rule, e.g. {Type: "Tests", Weight: "60"}.
// Weight arrives as a string and may carry a decimal suffix ("60.0").
type GradeCalc struct {
	Type           string `json:"Type"`
	Weight         string `json:"Weight"`
	Points         string `json:"Points,omitempty"`
	PointsPossible string `json:"PointsPossible,omitempty"`
	CalculatedMark string `json:"CalculatedMark,omitempty"`
	WeightedPct    string `json:"WeightedPct,omitempty"`
}

// GradeCalculationSummary carries zero or more category weight rules. A nil
// or empty rule set means the course is graded on straight points.
type GradeCalculationSummary struct {
	AssignmentGradeCalc []GradeCalc `json:"AssignmentGradeCalc"`
}

// Mark is a course's current overall grade snapshot for the active period.
// CalculatedScoreRaw is a numeric string or "N/A"; CalculatedScoreString may
// literally be "F" or "N/A".
type Mark struct {
	CalculatedScoreString   string                  `json:"CalculatedScoreString"`
	CalculatedScoreRaw      string                  `json:"CalculatedScoreRaw"`
	GradeCalculationSummary GradeCalculationSummary `json:"GradeCalculationSummary"`
	Assignments             Assignments             `json:"Assignments"`
}
