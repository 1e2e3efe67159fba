package grades

import (
	"math"
	"strconv"
	"time"

	"gradebook-server/models/gradebook"
)

const hoursPerDay = 24

// summarizePeriod fills the period's cross-course average, average style and
// days-remaining fields. courseGrades holds every graded course's percent;
// an empty slice degrades the average to the "-" sentinel. now is the
// injected invocation time, so closed periods come out negative.
func (b *Builder) summarizePeriod(period *gradebook.Period, courseGrades []float64, now time.Time) {
	average := NoScore
	if len(courseGrades) > 0 {
		var sum float64
		for _, g := range courseGrades {
			sum += g
		}
		average = sum / float64(len(courseGrades))
	}

	period.AverageStyle = "color: " + b.ColorOf(average) + ";"
	if average >= 0 {
		period.Average = strconv.FormatFloat(average, 'f', 1, 64) + "%"
	} else {
		period.Average = "-"
	}

	period.Days = int(math.Round(period.EndDateTime().Sub(now).Hours() / hoursPerDay))
}

// buildWeek filters the period's flat assignment list to those due strictly
// after the most recent Sunday midnight and carrying a usable score, and
// averages their percents. An empty window degrades to "-" with the neutral
// color.
func (b *Builder) buildWeek(assignments []*gradebook.Assignment, now time.Time) *gradebook.WeekSummary {
	boundary := lastSundayMidnight(now)

	var count int
	var sum float64
	for _, a := range assignments {
		if a.DueDateTime().After(boundary) && a.ScorePercent >= 0 {
			count++
			sum += a.ScorePercent
		}
	}

	average := NoScore
	if count > 0 {
		average = sum / float64(count)
	}

	week := &gradebook.WeekSummary{
		Length:       count,
		AverageStyle: "color: " + b.ColorOf(average) + ";",
	}
	if average >= 0 {
		week.Average = strconv.FormatFloat(average, 'f', 1, 64) + "%"
	} else {
		week.Average = "-"
	}
	return week
}

// lastSundayMidnight returns the most recent Sunday at local midnight; when
// now already falls on a Sunday, that is today's midnight.
func lastSundayMidnight(now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -int(today.Weekday()))
}
