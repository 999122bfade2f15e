// Package drill implements the timed drill state machines.
//
// Drills never start goroutines or wall-clock timers. Deferred transitions are
// returned as Timer requests; the caller delivers each one back through Fire
// once its delay has elapsed. A drill ignores timer IDs it no longer expects,
// which is how pending transitions are cancelled.
package drill

import (
	"math"
	"time"

	"github.com/ethanolliesCODE/aim-warmup/internal/model"
)

// Timer is a deferred transition requested by a drill.
type Timer struct {
	ID    uint64
	After time.Duration
}

// CompleteFunc receives the result of a finished drill.
type CompleteFunc func(model.DrillResult)

// Drill is implemented by every drill machine.
type Drill interface {
	Kind() model.DrillKind
	// Start begins the countdown. Calling it again is a no-op.
	Start(now time.Time) []Timer
	Started() bool
	// Tick advances the 1 Hz countdown by one second.
	Tick()
	// Fire delivers a timer previously returned by the drill.
	Fire(id uint64, now time.Time) []Timer
	// Stop cancels pending timers and freezes the drill without completing it.
	Stop()
	Remaining() int
	Total() int
	Done() bool
	Result() model.DrillResult
}

// countdown is the 1 Hz session clock and completion guard shared by drills.
type countdown struct {
	total      int
	remaining  int
	started    bool
	running    bool
	done       bool
	onComplete CompleteFunc
}

func newCountdown(seconds int, onComplete CompleteFunc) countdown {
	if seconds < 0 {
		seconds = 0
	}
	return countdown{total: seconds, remaining: seconds, onComplete: onComplete}
}

// start runs the clock and reports whether this call started it.
func (c *countdown) start() bool {
	if c.started || c.done {
		return false
	}
	c.started = true
	c.running = true
	return true
}

// Started reports whether the countdown has begun.
func (c *countdown) Started() bool { return c.started }

// step decrements the clock and reports whether it just reached zero.
func (c *countdown) step() bool {
	if !c.running || c.done {
		return false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	return c.remaining == 0
}

// finish fires the completion callback at most once.
func (c *countdown) finish(result model.DrillResult) {
	if c.done {
		return
	}
	c.done = true
	c.running = false
	c.remaining = 0
	if c.onComplete != nil {
		c.onComplete(result)
	}
}

// Remaining returns the seconds left on the countdown.
func (c *countdown) Remaining() int { return c.remaining }

// Total returns the configured drill length in seconds.
func (c *countdown) Total() int { return c.total }

// Done reports whether the drill has completed.
func (c *countdown) Done() bool { return c.done }

// timerSeq hands out timer IDs and remembers the one currently pending.
type timerSeq struct {
	next    uint64
	pending uint64
}

func (s *timerSeq) schedule(after time.Duration) Timer {
	s.next++
	s.pending = s.next
	return Timer{ID: s.pending, After: after}
}

// take consumes the pending timer if id matches it.
func (s *timerSeq) take(id uint64) bool {
	if id == 0 || id != s.pending {
		return false
	}
	s.pending = 0
	return true
}

func (s *timerSeq) cancel() {
	s.pending = 0
}

func roundedMs(d time.Duration) int {
	return int(math.Round(float64(d) / float64(time.Millisecond)))
}

func meanInts(values []int) int {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return int(math.Round(float64(sum) / float64(len(values))))
}

func minInt(values []int) int {
	if len(values) == 0 {
		return 0
	}
	best := values[0]
	for _, v := range values[1:] {
		if v < best {
			best = v
		}
	}
	return best
}
