// Package stats contains grading, statistics, and reporting.
package stats

import (
	"fmt"

	"github.com/ethanolliesCODE/aim-warmup/internal/model"
)

// Grade is an ordinal score, S best and D worst.
type Grade string

// Grades from best to worst.
const (
	GradeS Grade = "S"
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// Grades lists every grade from best to worst.
var Grades = []Grade{GradeS, GradeA, GradeB, GradeC, GradeD}

type threshold struct {
	grade Grade
	limit float64
}

// Reaction thresholds apply to avg ms (value < limit); the others apply to
// percentages (value > limit). Anything past the last entry is a D.
var (
	reactionScale = []threshold{{GradeS, 200}, {GradeA, 250}, {GradeB, 300}, {GradeC, 400}}
	accuracyScale = []threshold{{GradeS, 95}, {GradeA, 85}, {GradeB, 70}, {GradeC, 50}}
	trackingScale = []threshold{{GradeS, 80}, {GradeA, 60}, {GradeB, 40}, {GradeC, 20}}
)

// GradeReaction grades an average reaction time in ms; lower is better.
func GradeReaction(avgMs int) Grade {
	for _, t := range reactionScale {
		if float64(avgMs) < t.limit {
			return t.grade
		}
	}
	return GradeD
}

// GradeAccuracy grades a click accuracy percentage; higher is better.
func GradeAccuracy(pct float64) Grade {
	return gradeAbove(accuracyScale, pct)
}

// GradeTracking grades a percent-on-target; higher is better.
func GradeTracking(pct int) Grade {
	return gradeAbove(trackingScale, float64(pct))
}

func gradeAbove(scale []threshold, v float64) Grade {
	for _, t := range scale {
		if v > t.limit {
			return t.grade
		}
	}
	return GradeD
}

// ClickAccuracy returns hits/(hits+misses) as a percentage, 0 with no clicks.
func ClickAccuracy(hits, misses int) float64 {
	total := hits + misses
	if total <= 0 {
		return 0
	}
	return float64(hits) / float64(total) * 100
}

// GradeResult grades any drill result by its kind.
func GradeResult(res model.DrillResult) Grade {
	switch {
	case res.Kind == model.DrillReaction && res.Reaction != nil:
		return GradeReaction(res.Reaction.AvgMs)
	case res.Kind == model.DrillClick && res.Click != nil:
		return GradeAccuracy(ClickAccuracy(res.Click.Hits, res.Click.Misses))
	case res.Kind == model.DrillTracking && res.Tracking != nil:
		return GradeTracking(res.Tracking.PercentOnTarget)
	default:
		return GradeD
	}
}

// ScaleRow describes the thresholds of one drill for display.
type ScaleRow struct {
	Kind   model.DrillKind
	Metric string
	Bounds []string
}

// GradeScale returns the grading thresholds of every drill in drill order.
func GradeScale() []ScaleRow {
	return []ScaleRow{
		{Kind: model.DrillReaction, Metric: "avg reaction (ms)", Bounds: scaleBounds(reactionScale, "<", ">=")},
		{Kind: model.DrillClick, Metric: "accuracy (%)", Bounds: scaleBounds(accuracyScale, ">", "<=")},
		{Kind: model.DrillTracking, Metric: "on target (%)", Bounds: scaleBounds(trackingScale, ">", "<=")},
	}
}

func scaleBounds(scale []threshold, op, lastOp string) []string {
	out := make([]string, 0, len(scale)+1)
	for _, t := range scale {
		out = append(out, fmt.Sprintf("%s%g", op, t.limit))
	}
	return append(out, fmt.Sprintf("%s%g", lastOp, scale[len(scale)-1].limit))
}
