package stats

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	if got := Sparkline([]float64{4, 4, 4}); got != "+++" {
		t.Fatalf("expected flat sparkline, got %q", got)
	}
	got := Sparkline([]float64{0, 10})
	if got[0] != ' ' || got[1] != '@' {
		t.Fatalf("expected extremes mapped to ends, got %q", got)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{3, 6, 9, 12}, 2)
	want := []float64{3, 4.5, 7.5, 10.5}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MovingAverage = %v, want %v", got, want)
		}
	}
	same := MovingAverage([]float64{1, 2}, 1)
	if same[0] != 1 || same[1] != 2 {
		t.Fatalf("expected window 1 to copy values, got %v", same)
	}
}

func TestPlotSeries(t *testing.T) {
	var buf bytes.Buffer
	err := PlotSeries(&buf, "Reaction times (ms)", []Series{
		{Name: "Reaction", Values: []float64{210, 190, 240, 180, 205}},
		{Name: "Avg(3)", Values: []float64{210, 200, 213, 203, 208}},
	}, 12, 4)
	if err != nil {
		t.Fatalf("PlotSeries failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Reaction times (ms)") || !strings.Contains(out, "Legend:") {
		t.Fatalf("expected title and legend in output:\n%s", out)
	}
	if !strings.Contains(out, "240") || !strings.Contains(out, "180") {
		t.Fatalf("expected axis labels with min and max:\n%s", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1+4+1 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}
}

func TestPlotSeriesSkipsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotSeries(&buf, "Empty", []Series{{Name: "none"}}, 10, 4); err != nil {
		t.Fatalf("PlotSeries failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for empty series")
	}
}

func TestPlotWidthFor(t *testing.T) {
	axisWidth := axisLabelWidth + utf8.RuneCountInString(axisSeparator)
	if got := PlotWidthFor(80); got != 80-axisWidth {
		t.Fatalf("expected width %d, got %d", 80-axisWidth, got)
	}
	if got := PlotWidthFor(0); got != minPlotWidth {
		t.Fatalf("expected min width %d, got %d", minPlotWidth, got)
	}
}

func TestResampleSeries(t *testing.T) {
	grown := resampleSeries([]float64{0, 10}, 3)
	if len(grown) != 3 || grown[1] != 5 {
		t.Fatalf("unexpected interpolation: %v", grown)
	}
	shrunk := resampleSeries([]float64{1, 3, 5, 7}, 2)
	if shrunk[0] != 2 || shrunk[1] != 6 {
		t.Fatalf("unexpected bucket averages: %v", shrunk)
	}
}
