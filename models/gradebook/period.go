package gradebook

import "time"

// ReportingPeriod describes the term window; EndDate is the closing date of
// the period in the upstream M/D/YYYY format.
type ReportingPeriod struct {
	Index       int    `json:"Index"`
	GradePeriod string `json:"GradePeriod"`
	StartDate   string `json:"StartDate"`
	EndDate     string `json:"EndDate"`
}

// Courses wraps the course list the way the upstream record nests it.
type Courses struct {
	Course []*Course `json:"Course"`
}

// WeekSummary is the rolling this-week aggregate over a period's assignments.
type WeekSummary struct {
	Average      string `json:"average"`
	AverageStyle string `json:"averageStyle"`
	Length       int    `json:"length"`
}

// Period is one grading term. The upper-case fields arrive from the API; the
// lower-case-tagged fields are derived during enrichment and are left zero
// until then.
type Period struct {
	ReportingPeriod ReportingPeriod `json:"ReportingPeriod"`
	Courses         Courses         `json:"Courses"`

	Average      string        `json:"average,omitempty"`
	AverageStyle string        `json:"averageStyle,omitempty"`
	Days         int           `json:"days"`
	Assignments  []*Assignment `json:"assignments,omitempty"`
	Week         *WeekSummary  `json:"week,omitempty"`
}

// EndDateTime parses the period's closing date, zero time when unparseable.
func (p *Period) EndDateTime() time.Time {
	return ParseDate(p.ReportingPeriod.EndDate)
}
