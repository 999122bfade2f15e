// Package model defines shared data structures.
package model

import (
	"math"
	"time"
)

// Config defines game settings.
type Config struct {
	DurationMinutes int
	FPS             int
	Seed            int64
	Summary         bool
}

// DrillKind identifies one of the three drills.
type DrillKind string

// Drill kinds.
const (
	DrillReaction DrillKind = "reaction"
	DrillClick    DrillKind = "click"
	DrillTracking DrillKind = "tracking"
)

// DrillOrder is the fixed order drills run in.
var DrillOrder = []DrillKind{DrillReaction, DrillClick, DrillTracking}

// Title returns the display name of the drill.
func (k DrillKind) Title() string {
	switch k {
	case DrillReaction:
		return "REACTION"
	case DrillClick:
		return "CLICK"
	case DrillTracking:
		return "TRACKING"
	default:
		return string(k)
	}
}

// Session captures one warmup run.
type Session struct {
	ID              string
	DurationMinutes int
	DrillIndex      int
	Results         []DrillResult
	StartedAt       time.Time
}

// DrillResult is the output of a finished drill. Exactly one payload is set,
// matching Kind.
type DrillResult struct {
	Kind     DrillKind
	Reaction *ReactionResult
	Click    *ClickResult
	Tracking *TrackingResult
}

// ReactionResult summarizes the reaction drill.
type ReactionResult struct {
	AvgMs       int
	BestMs      int
	Rounds      int
	FalseClicks int
	TimesMs     []int
}

// ClickResult summarizes the click-target drill.
type ClickResult struct {
	Hits       int
	Misses     int
	AvgHitMs   int
	HitTimesMs []int
}

// TrackingResult summarizes the tracking drill.
type TrackingResult struct {
	PercentOnTarget int
	AvgDistance     int
	Samples         int
}

// Point is a position in play-area units.
type Point struct {
	X float64
	Y float64
}

// Vec is a velocity in play-area units per frame.
type Vec struct {
	X float64
	Y float64
}

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Add returns p moved by v.
func (p Point) Add(v Vec) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Bounds is the size of the play area in units.
type Bounds struct {
	Width  float64
	Height float64
}

// Empty reports whether the bounds are unusable.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Target is a click-drill target.
type Target struct {
	ID     int
	Center Point
	Hit    bool
}

// Dot is the tracking-drill target.
type Dot struct {
	Pos Point
	Vel Vec
}
