package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"gradebook-server/models/gradebook"
)

// RenderCourseTrajectory renders a course's chartData as a line chart into w.
func RenderCourseTrajectory(course *gradebook.Course, w io.Writer) error {
	dates := make([]string, 0, len(course.ChartData))
	grades := make([]opts.LineData, 0, len(course.ChartData))
	for _, point := range course.ChartData {
		dates = append(dates, point.Date.Format("Jan 2"))
		grades = append(grades, opts.LineData{Value: point.Grade})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: course.Title + " Grade Trajectory",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    course.Title,
			Subtitle: "Running grade by due date",
		}),
	)

	line.SetXAxis(dates).AddSeries("Grade", grades,
		charts.WithLineChartOpts(opts.LineChart{
			Smooth: opts.Bool(true),
		}),
		charts.WithLabelOpts(opts.Label{
			Show: opts.Bool(true),
		}),
	)

	return line.Render(w)
}
