package drill

import (
	"math"
	"time"

	"github.com/ethanolliesCODE/aim-warmup/internal/model"
	"github.com/ethanolliesCODE/aim-warmup/internal/sampler"
)

// baselineFPS is the frame rate the default tracking speeds are tuned for.
const baselineFPS = 30

// TrackingOptions tunes the dot physics. Speeds are in units per frame.
type TrackingOptions struct {
	Radius     float64
	MaxSpeed   float64
	Jitter     float64
	InitialVel model.Vec
}

// DefaultTrackingOptions returns physics tuned for the given frame rate.
func DefaultTrackingOptions(fps int) TrackingOptions {
	if fps <= 0 {
		fps = baselineFPS
	}
	scale := float64(baselineFPS) / float64(fps)
	return TrackingOptions{
		Radius:     2,
		MaxSpeed:   0.7 * scale,
		Jitter:     0.02 * scale,
		InitialVel: model.Vec{X: 0.42 * scale, Y: 0.3 * scale},
	}
}

// Tracking samples the pointer's distance to a wandering dot every frame.
type Tracking struct {
	countdown
	opts    TrackingOptions
	sampler *sampler.Sampler

	bounds  model.Bounds
	placed  bool
	dot     model.Dot
	pointer model.Point

	samples  int
	onTarget int
	distSum  float64
	lastDist float64
}

var _ Drill = (*Tracking)(nil)

// NewTracking constructs a tracking drill lasting the given seconds.
func NewTracking(seconds int, opts TrackingOptions, s *sampler.Sampler, onComplete CompleteFunc) *Tracking {
	return &Tracking{
		countdown: newCountdown(seconds, onComplete),
		opts:      opts,
		sampler:   s,
		dot:       model.Dot{Vel: opts.InitialVel},
	}
}

// Kind implements Drill.
func (t *Tracking) Kind() model.DrillKind { return model.DrillTracking }

// Start implements Drill.
func (t *Tracking) Start(time.Time) []Timer {
	t.start()
	return nil
}

// SetBounds updates the play area. The dot starts at its centre.
func (t *Tracking) SetBounds(b model.Bounds) {
	t.bounds = b
	if !t.placed && !b.Empty() {
		t.dot.Pos = model.Point{X: b.Width / 2, Y: b.Height / 2}
		t.placed = true
	}
}

// SetPointer records the latest pointer position.
func (t *Tracking) SetPointer(p model.Point) { t.pointer = p }

// Pointer returns the latest pointer position.
func (t *Tracking) Pointer() model.Point { return t.pointer }

// Dot returns the dot state.
func (t *Tracking) Dot() model.Dot { return t.dot }

// Radius returns the dot radius.
func (t *Tracking) Radius() float64 { return t.opts.Radius }

// LastDistance returns the distance sampled on the latest frame.
func (t *Tracking) LastDistance() float64 { return t.lastDist }

// OnTarget reports whether the latest sample was on target.
func (t *Tracking) OnTarget() bool { return t.samples > 0 && t.lastDist <= t.opts.Radius }

// Samples returns the number of frames sampled.
func (t *Tracking) Samples() int { return t.samples }

// Frame advances the physics by one animation frame and samples the pointer.
func (t *Tracking) Frame() {
	if !t.running || !t.placed {
		return
	}
	t.move()
	dist := t.pointer.Dist(t.dot.Pos)
	t.lastDist = dist
	t.samples++
	t.distSum += dist
	if dist <= t.opts.Radius {
		t.onTarget++
	}
}

func (t *Tracking) move() {
	r := t.opts.Radius
	next := t.dot.Pos.Add(t.dot.Vel)
	vel := t.dot.Vel
	maxX := max(t.bounds.Width-r, r)
	maxY := max(t.bounds.Height-r, r)
	if next.X < r || next.X > maxX {
		vel.X = -vel.X
		next.X = sampler.Clamp(next.X, r, maxX)
	}
	if next.Y < r || next.Y > maxY {
		vel.Y = -vel.Y
		next.Y = sampler.Clamp(next.Y, r, maxY)
	}
	j := t.opts.Jitter
	vel.X = sampler.Clamp(vel.X+t.sampler.Between(-j, j), -t.opts.MaxSpeed, t.opts.MaxSpeed)
	vel.Y = sampler.Clamp(vel.Y+t.sampler.Between(-j, j), -t.opts.MaxSpeed, t.opts.MaxSpeed)
	t.dot = model.Dot{Pos: next, Vel: vel}
}

// Fire implements Drill. Tracking schedules no timers.
func (t *Tracking) Fire(uint64, time.Time) []Timer { return nil }

// Tick implements Drill.
func (t *Tracking) Tick() {
	if t.step() {
		t.finish(t.Result())
	}
}

// Stop implements Drill.
func (t *Tracking) Stop() {
	t.running = false
}

// Result implements Drill.
func (t *Tracking) Result() model.DrillResult {
	res := &model.TrackingResult{Samples: t.samples}
	if t.samples > 0 {
		res.PercentOnTarget = int(math.Round(100 * float64(t.onTarget) / float64(t.samples)))
		res.AvgDistance = int(math.Round(t.distSum / float64(t.samples)))
	}
	return model.DrillResult{Kind: model.DrillTracking, Tracking: res}
}
