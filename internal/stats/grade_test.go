package stats

import (
	"testing"

	"github.com/ethanolliesCODE/aim-warmup/internal/model"
)

func TestGradeReaction(t *testing.T) {
	cases := []struct {
		ms   int
		want Grade
	}{
		{180, GradeS},
		{199, GradeS},
		{200, GradeA},
		{249, GradeA},
		{250, GradeB},
		{299, GradeB},
		{300, GradeC},
		{399, GradeC},
		{400, GradeD},
		{0, GradeS},
	}
	for _, tc := range cases {
		if got := GradeReaction(tc.ms); got != tc.want {
			t.Fatalf("GradeReaction(%d) = %s, want %s", tc.ms, got, tc.want)
		}
	}
}

func TestGradeAccuracy(t *testing.T) {
	cases := []struct {
		pct  float64
		want Grade
	}{
		{100, GradeS},
		{95.5, GradeS},
		{95, GradeA},
		{90, GradeA},
		{85, GradeB},
		{70.1, GradeB},
		{70, GradeC},
		{50, GradeD},
		{0, GradeD},
	}
	for _, tc := range cases {
		if got := GradeAccuracy(tc.pct); got != tc.want {
			t.Fatalf("GradeAccuracy(%v) = %s, want %s", tc.pct, got, tc.want)
		}
	}
}

func TestGradeTracking(t *testing.T) {
	cases := []struct {
		pct  int
		want Grade
	}{
		{81, GradeS},
		{80, GradeA},
		{61, GradeA},
		{50, GradeB},
		{40, GradeC},
		{21, GradeC},
		{20, GradeD},
	}
	for _, tc := range cases {
		if got := GradeTracking(tc.pct); got != tc.want {
			t.Fatalf("GradeTracking(%d) = %s, want %s", tc.pct, got, tc.want)
		}
	}
}

func TestClickAccuracy(t *testing.T) {
	if got := ClickAccuracy(9, 1); got != 90 {
		t.Fatalf("expected 90%%, got %v", got)
	}
	if got := ClickAccuracy(0, 0); got != 0 {
		t.Fatalf("expected 0 with no clicks, got %v", got)
	}
}

func TestGradeResult(t *testing.T) {
	cases := []struct {
		res  model.DrillResult
		want Grade
	}{
		{model.DrillResult{Kind: model.DrillReaction, Reaction: &model.ReactionResult{AvgMs: 180}}, GradeS},
		{model.DrillResult{Kind: model.DrillClick, Click: &model.ClickResult{Hits: 9, Misses: 1}}, GradeA},
		{model.DrillResult{Kind: model.DrillTracking, Tracking: &model.TrackingResult{PercentOnTarget: 50}}, GradeB},
		{model.DrillResult{Kind: model.DrillClick}, GradeD},
	}
	for _, tc := range cases {
		if got := GradeResult(tc.res); got != tc.want {
			t.Fatalf("GradeResult(%s) = %s, want %s", tc.res.Kind, got, tc.want)
		}
	}
}

func TestGradeScale(t *testing.T) {
	rows := GradeScale()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	want := []string{"<200", "<250", "<300", "<400", ">=400"}
	for i, b := range rows[0].Bounds {
		if b != want[i] {
			t.Fatalf("unexpected reaction bounds: %v", rows[0].Bounds)
		}
	}
	if got := rows[1].Bounds[len(rows[1].Bounds)-1]; got != "<=50" {
		t.Fatalf("unexpected last click bound: %s", got)
	}
}
