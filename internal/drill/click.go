package drill

import (
	"time"

	"github.com/ethanolliesCODE/aim-warmup/internal/model"
	"github.com/ethanolliesCODE/aim-warmup/internal/sampler"
)

// TargetCount is the number of targets per wave.
const TargetCount = 10

// ClickOptions tunes target geometry and the respawn pause.
type ClickOptions struct {
	Radius       float64
	Gap          float64
	Padding      float64
	Attempts     int
	RespawnPause time.Duration
}

// DefaultClickOptions returns the standard click drill geometry.
func DefaultClickOptions() ClickOptions {
	return ClickOptions{
		Radius:       2.5,
		Gap:          1,
		Padding:      1,
		Attempts:     50,
		RespawnPause: 300 * time.Millisecond,
	}
}

// Click spawns waves of targets and records how fast they are cleared.
type Click struct {
	countdown
	opts    ClickOptions
	sampler *sampler.Sampler
	timers  timerSeq

	bounds    model.Bounds
	targets   []model.Target
	spawnedAt time.Time
	waves     int

	hits     int
	misses   int
	hitTimes []int
}

var _ Drill = (*Click)(nil)

// NewClick constructs a click-target drill lasting the given seconds.
func NewClick(seconds int, opts ClickOptions, s *sampler.Sampler, onComplete CompleteFunc) *Click {
	return &Click{
		countdown: newCountdown(seconds, onComplete),
		opts:      opts,
		sampler:   s,
	}
}

// Kind implements Drill.
func (c *Click) Kind() model.DrillKind { return model.DrillClick }

// Start implements Drill. It starts the countdown and spawns the first wave.
func (c *Click) Start(now time.Time) []Timer {
	if !c.start() {
		return nil
	}
	c.spawn(now)
	return nil
}

// SetBounds updates the play area. A started drill that could not spawn yet
// spawns its wave now. Unhit targets left outside a smaller area are moved
// back inside it and keep their spawn time.
func (c *Click) SetBounds(b model.Bounds, now time.Time) {
	c.bounds = b
	if c.running && len(c.targets) == 0 && c.timers.pending == 0 {
		c.spawn(now)
		return
	}
	c.refit()
}

// Targets returns the current wave.
func (c *Click) Targets() []model.Target { return c.targets }

// Radius returns the target radius.
func (c *Click) Radius() float64 { return c.opts.Radius }

// Hits returns the number of targets hit.
func (c *Click) Hits() int { return c.hits }

// Misses returns the number of clicks on empty space.
func (c *Click) Misses() int { return c.misses }

// Waves returns the number of waves spawned so far.
func (c *Click) Waves() int { return c.waves }

// ClickAt registers a click at p.
func (c *Click) ClickAt(p model.Point, now time.Time) []Timer {
	if !c.running {
		return nil
	}
	idx := c.targetAt(p)
	if idx < 0 {
		c.misses++
		return nil
	}
	target := &c.targets[idx]
	if target.Hit {
		return nil
	}
	target.Hit = true
	c.hits++
	c.hitTimes = append(c.hitTimes, roundedMs(now.Sub(c.spawnedAt)))
	if !c.allHit() {
		return nil
	}
	return []Timer{c.timers.schedule(c.opts.RespawnPause)}
}

// Fire implements Drill.
func (c *Click) Fire(id uint64, now time.Time) []Timer {
	if !c.running || !c.timers.take(id) {
		return nil
	}
	c.spawn(now)
	return nil
}

// Tick implements Drill.
func (c *Click) Tick() {
	if c.step() {
		c.timers.cancel()
		c.finish(c.Result())
	}
}

// Stop implements Drill.
func (c *Click) Stop() {
	c.timers.cancel()
	c.running = false
}

// Result implements Drill.
func (c *Click) Result() model.DrillResult {
	times := append([]int(nil), c.hitTimes...)
	return model.DrillResult{
		Kind: model.DrillClick,
		Click: &model.ClickResult{
			Hits:       c.hits,
			Misses:     c.misses,
			AvgHitMs:   meanInts(times),
			HitTimesMs: times,
		},
	}
}

// targetAt prefers an unhit target when targets overlap.
func (c *Click) targetAt(p model.Point) int {
	found := -1
	for i, t := range c.targets {
		if t.Center.Dist(p) > c.opts.Radius {
			continue
		}
		if !t.Hit {
			return i
		}
		if found < 0 {
			found = i
		}
	}
	return found
}

func (c *Click) allHit() bool {
	for _, t := range c.targets {
		if !t.Hit {
			return false
		}
	}
	return len(c.targets) > 0
}

// spawnArea returns the box target centres may occupy.
func (c *Click) spawnArea() (minX, maxX, minY, maxY float64) {
	minX = c.opts.Padding + c.opts.Radius
	maxX = c.bounds.Width - c.opts.Padding - c.opts.Radius
	minY = c.opts.Padding + c.opts.Radius
	maxY = c.bounds.Height - c.opts.Padding - c.opts.Radius
	return minX, maxX, minY, maxY
}

// refit clamps unhit targets into the current area. An area narrower than a
// target collapses onto its middle line so the target stays clickable.
func (c *Click) refit() {
	if c.bounds.Empty() {
		return
	}
	minX, maxX, minY, maxY := c.spawnArea()
	if maxX < minX {
		minX, maxX = c.bounds.Width/2, c.bounds.Width/2
	}
	if maxY < minY {
		minY, maxY = c.bounds.Height/2, c.bounds.Height/2
	}
	for i := range c.targets {
		t := &c.targets[i]
		if t.Hit {
			continue
		}
		t.Center = model.Point{
			X: sampler.Clamp(t.Center.X, minX, maxX),
			Y: sampler.Clamp(t.Center.Y, minY, maxY),
		}
	}
}

func (c *Click) spawn(now time.Time) {
	minX, maxX, minY, maxY := c.spawnArea()
	if c.bounds.Empty() || maxX < minX || maxY < minY {
		c.targets = nil
		return
	}
	minDist := 2*c.opts.Radius + c.opts.Gap
	attempts := max(c.opts.Attempts, 1)
	targets := make([]model.Target, 0, TargetCount)
	for i := 0; i < TargetCount; i++ {
		var p model.Point
		for try := 0; try < attempts; try++ {
			p = model.Point{X: c.sampler.Between(minX, maxX), Y: c.sampler.Between(minY, maxY)}
			if !overlaps(targets, p, minDist) {
				break
			}
		}
		targets = append(targets, model.Target{ID: i, Center: p})
	}
	c.targets = targets
	c.spawnedAt = now
	c.waves++
}

func overlaps(targets []model.Target, p model.Point, minDist float64) bool {
	for _, t := range targets {
		if t.Center.Dist(p) < minDist {
			return true
		}
	}
	return false
}
