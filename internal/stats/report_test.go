package stats

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ethanolliesCODE/aim-warmup/internal/model"
)

func sampleSession() model.Session {
	return model.Session{
		ID:              "session-1",
		DurationMinutes: 5,
		Results: []model.DrillResult{
			{Kind: model.DrillReaction, Reaction: &model.ReactionResult{AvgMs: 180, BestMs: 150, Rounds: 4, FalseClicks: 1, TimesMs: []int{150, 190, 200, 180}}},
			{Kind: model.DrillClick, Click: &model.ClickResult{Hits: 9, Misses: 1, AvgHitMs: 640, HitTimesMs: []int{500, 700, 720}}},
			{Kind: model.DrillTracking, Tracking: &model.TrackingResult{PercentOnTarget: 50, AvgDistance: 3, Samples: 2400}},
		},
	}
}

func TestBuildReport(t *testing.T) {
	report := BuildReport(sampleSession())
	if len(report.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(report.Entries))
	}
	want := map[model.DrillKind]Grade{
		model.DrillReaction: GradeS,
		model.DrillClick:    GradeA,
		model.DrillTracking: GradeB,
	}
	for kind, grade := range want {
		e, ok := report.Entry(kind)
		if !ok {
			t.Fatalf("missing entry for %s", kind)
		}
		if e.Grade != grade {
			t.Fatalf("expected %s for %s, got %s", grade, kind, e.Grade)
		}
	}
	if len(report.ReactionTimes()) != 4 || len(report.HitTimes()) != 3 {
		t.Fatalf("unexpected sample accessors")
	}
}

func TestStatLines(t *testing.T) {
	report := BuildReport(sampleSession())
	click, _ := report.Entry(model.DrillClick)
	lines := StatLines(click.Result)
	if len(lines) != 4 || lines[3].Value != "90%" {
		t.Fatalf("unexpected click stats: %+v", lines)
	}
	if StatLines(model.DrillResult{}) != nil {
		t.Fatalf("expected nil stats for empty result")
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, BuildReport(sampleSession())); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	out := buf.String()
	for _, needle := range []string{"Warmup Summary (5 min session)", "REACTION", "avg 180 ms", "CLICK", "accuracy 90%", "TRACKING", "on target 50%", "Reaction trend:"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("summary missing %q:\n%s", needle, out)
		}
	}
}

func TestEmptyDrillsAreMarked(t *testing.T) {
	report := BuildReport(model.Session{
		DurationMinutes: 5,
		Results: []model.DrillResult{
			{Kind: model.DrillReaction, Reaction: &model.ReactionResult{}},
			{Kind: model.DrillClick, Click: &model.ClickResult{}},
			{Kind: model.DrillTracking, Tracking: &model.TrackingResult{}},
		},
	})
	want := map[model.DrillKind]string{
		model.DrillReaction: "S (no rounds)",
		model.DrillClick:    "D (no clicks)",
		model.DrillTracking: "D (no samples)",
	}
	for kind, label := range want {
		e, _ := report.Entry(kind)
		if got := e.GradeLabel(); got != label {
			t.Fatalf("expected %q for %s, got %q", label, kind, got)
		}
	}

	full := BuildReport(sampleSession())
	for _, e := range full.Entries {
		if e.Note != "" || e.GradeLabel() != string(e.Grade) {
			t.Fatalf("unexpected note %q on %s", e.Note, e.Kind)
		}
	}

	var buf bytes.Buffer
	if err := RenderSummary(&buf, report); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if !strings.Contains(buf.String(), "S (no rounds)") {
		t.Fatalf("summary missing empty marker:\n%s", buf.String())
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, Report{}); err != nil {
		t.Fatalf("render summary: %v", err)
	}
	if !strings.Contains(buf.String(), "No drills completed.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestRenderGradeScale(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderGradeScale(&buf); err != nil {
		t.Fatalf("render grade scale: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[1], "<200") || !strings.Contains(lines[3], ">80") {
		t.Fatalf("unexpected scale output:\n%s", buf.String())
	}
}

func TestRenderPlan(t *testing.T) {
	var buf bytes.Buffer
	plan := func(minutes int) []int {
		if minutes == 10 {
			return []int{30, 150, 150}
		}
		return []int{30, 80, 80}
	}
	if err := RenderPlan(&buf, []int{5, 10}, plan); err != nil {
		t.Fatalf("render plan: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "5 min") || !strings.Contains(out, "150s") {
		t.Fatalf("unexpected plan output:\n%s", out)
	}
}
