package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/ethanolliesCODE/aim-warmup/internal/model"
)

const sparkChars = " .:-=+*#%@"

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		out[i] = sum / float64(min(i+1, window))
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi-lo < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	last := len(sparkChars) - 1
	for _, v := range values {
		idx := int(math.Round((v - lo) / (hi - lo) * float64(last)))
		b.WriteByte(sparkChars[max(0, min(last, idx))])
	}
	return b.String()
}

// RenderSummary prints the graded results table for a report.
func RenderSummary(w io.Writer, report Report) error {
	if len(report.Entries) == 0 {
		_, err := fmt.Fprintln(w, "No drills completed.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Warmup Summary (%d min session)\n", report.DurationMinutes); err != nil {
		return err
	}
	tbl := newTextTable("Drill", "Grade", "Stats")
	for _, e := range report.Entries {
		parts := make([]string, 0, 4)
		for _, s := range StatLines(e.Result) {
			parts = append(parts, strings.ToLower(s.Label)+" "+s.Value)
		}
		tbl.add(e.Kind.Title(), e.GradeLabel(), strings.Join(parts, " · "))
	}
	if err := tbl.write(w); err != nil {
		return err
	}
	if times := report.ReactionTimes(); len(times) > 1 {
		if _, err := fmt.Fprintf(w, "Reaction trend: [%s]\n", Sparkline(intsToFloats(times))); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderSamples plots reaction and hit times sized to a given total width.
func RenderSamples(w io.Writer, report Report, totalWidth, height int, useColor bool) error {
	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	if times := report.ReactionTimes(); len(times) > 0 {
		if err := PlotSeriesWithColor(w, "Reaction times (ms)", []Series{
			{Name: "Reaction", Values: intsToFloats(times)},
			{Name: "Avg(3)", Values: MovingAverage(intsToFloats(times), 3)},
		}, width, height, useColor); err != nil {
			return err
		}
	}
	if times := report.HitTimes(); len(times) > 0 {
		if err := PlotSeriesWithColor(w, "Hit times (ms)", []Series{
			{Name: "Hit", Values: intsToFloats(times)},
		}, width, height, useColor); err != nil {
			return err
		}
	}
	return nil
}

// RenderGradeScale prints the grading thresholds of every drill.
func RenderGradeScale(w io.Writer) error {
	titles := []string{"Drill", "Metric"}
	for _, g := range Grades {
		titles = append(titles, string(g))
	}
	tbl := newTextTable(titles...).alignRight(2, 3, 4, 5, 6)
	for _, row := range GradeScale() {
		tbl.add(append([]string{row.Kind.Title(), row.Metric}, row.Bounds...)...)
	}
	return tbl.write(w)
}

// RenderPlan prints drill lengths for each session choice.
func RenderPlan(w io.Writer, choices []int, plan func(int) []int) error {
	titles := []string{"Session"}
	for _, kind := range model.DrillOrder {
		titles = append(titles, kind.Title())
	}
	tbl := newTextTable(titles...).alignRight(1, 2, 3)
	for _, minutes := range choices {
		row := []string{fmt.Sprintf("%d min", minutes)}
		for _, secs := range plan(minutes) {
			row = append(row, fmt.Sprintf("%ds", secs))
		}
		tbl.add(row...)
	}
	return tbl.write(w)
}
