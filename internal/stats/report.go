package stats

import (
	"fmt"
	"math"

	"github.com/ethanolliesCODE/aim-warmup/internal/model"
)

// Entry pairs a drill result with its grade. Note is set when the drill
// recorded nothing, so its grade says nothing about the player.
type Entry struct {
	Kind   model.DrillKind
	Grade  Grade
	Note   string
	Result model.DrillResult
}

// Stat is one labelled statistic of a drill result.
type Stat struct {
	Label string
	Value string
}

// Report contains precomputed data for results rendering.
type Report struct {
	SessionID       string
	DurationMinutes int
	Entries         []Entry
}

// BuildReport grades every result of a session.
func BuildReport(session model.Session) Report {
	entries := make([]Entry, 0, len(session.Results))
	for _, res := range session.Results {
		entries = append(entries, Entry{
			Kind:   res.Kind,
			Grade:  GradeResult(res),
			Note:   EmptyNote(res),
			Result: res,
		})
	}
	return Report{
		SessionID:       session.ID,
		DurationMinutes: session.DurationMinutes,
		Entries:         entries,
	}
}

// Entry returns the entry for kind.
func (r Report) Entry(kind model.DrillKind) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Kind == kind {
			return e, true
		}
	}
	return Entry{}, false
}

// ReactionTimes returns the reaction samples, if any.
func (r Report) ReactionTimes() []int {
	if e, ok := r.Entry(model.DrillReaction); ok && e.Result.Reaction != nil {
		return e.Result.Reaction.TimesMs
	}
	return nil
}

// HitTimes returns the click-drill hit samples, if any.
func (r Report) HitTimes() []int {
	if e, ok := r.Entry(model.DrillClick); ok && e.Result.Click != nil {
		return e.Result.Click.HitTimesMs
	}
	return nil
}

// EmptyNote names what a result is missing, or returns "" when it holds data.
func EmptyNote(res model.DrillResult) string {
	switch {
	case res.Reaction != nil && res.Reaction.Rounds == 0:
		return "no rounds"
	case res.Click != nil && res.Click.Hits+res.Click.Misses == 0:
		return "no clicks"
	case res.Tracking != nil && res.Tracking.Samples == 0:
		return "no samples"
	default:
		return ""
	}
}

// GradeLabel returns the grade letter with the empty note appended.
func (e Entry) GradeLabel() string {
	if e.Note == "" {
		return string(e.Grade)
	}
	return fmt.Sprintf("%s (%s)", e.Grade, e.Note)
}

// StatLines returns the raw statistics of a result in display order.
func StatLines(res model.DrillResult) []Stat {
	switch {
	case res.Reaction != nil:
		r := res.Reaction
		return []Stat{
			{Label: "Avg", Value: fmt.Sprintf("%d ms", r.AvgMs)},
			{Label: "Best", Value: fmt.Sprintf("%d ms", r.BestMs)},
			{Label: "Rounds", Value: fmt.Sprintf("%d", r.Rounds)},
			{Label: "False clicks", Value: fmt.Sprintf("%d", r.FalseClicks)},
		}
	case res.Click != nil:
		c := res.Click
		acc := int(math.Round(ClickAccuracy(c.Hits, c.Misses)))
		return []Stat{
			{Label: "Hits", Value: fmt.Sprintf("%d", c.Hits)},
			{Label: "Misses", Value: fmt.Sprintf("%d", c.Misses)},
			{Label: "Avg time", Value: fmt.Sprintf("%d ms", c.AvgHitMs)},
			{Label: "Accuracy", Value: fmt.Sprintf("%d%%", acc)},
		}
	case res.Tracking != nil:
		tr := res.Tracking
		return []Stat{
			{Label: "On target", Value: fmt.Sprintf("%d%%", tr.PercentOnTarget)},
			{Label: "Avg distance", Value: fmt.Sprintf("%d u", tr.AvgDistance)},
			{Label: "Samples", Value: fmt.Sprintf("%d", tr.Samples)},
		}
	default:
		return nil
	}
}

func intsToFloats(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
