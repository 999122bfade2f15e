package drill

import (
	"time"

	"github.com/ethanolliesCODE/aim-warmup/internal/model"
	"github.com/ethanolliesCODE/aim-warmup/internal/sampler"
)

// ReactionPhase is the current state of a reaction round.
type ReactionPhase int

// Reaction phases.
const (
	PhaseWaiting ReactionPhase = iota
	PhaseRed
	PhaseGreen
	PhaseTooSoon
	PhaseResult
)

func (p ReactionPhase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseRed:
		return "red"
	case PhaseGreen:
		return "green"
	case PhaseTooSoon:
		return "tooSoon"
	case PhaseResult:
		return "result"
	default:
		return "unknown"
	}
}

// ReactionOptions tunes reaction drill pauses.
type ReactionOptions struct {
	MinDelay     time.Duration
	MaxDelay     time.Duration
	TooSoonPause time.Duration
	ResultPause  time.Duration
}

// DefaultReactionOptions returns the standard reaction timings.
func DefaultReactionOptions() ReactionOptions {
	return ReactionOptions{
		MinDelay:     1500 * time.Millisecond,
		MaxDelay:     4000 * time.Millisecond,
		TooSoonPause: 1200 * time.Millisecond,
		ResultPause:  1500 * time.Millisecond,
	}
}

// Reaction measures time from the green signal to the click.
type Reaction struct {
	countdown
	opts    ReactionOptions
	sampler *sampler.Sampler
	timers  timerSeq

	phase       ReactionPhase
	greenAt     time.Time
	times       []int
	falseClicks int
	lastMs      int
}

var _ Drill = (*Reaction)(nil)

// NewReaction constructs a reaction drill lasting the given seconds.
func NewReaction(seconds int, opts ReactionOptions, s *sampler.Sampler, onComplete CompleteFunc) *Reaction {
	return &Reaction{
		countdown: newCountdown(seconds, onComplete),
		opts:      opts,
		sampler:   s,
		phase:     PhaseWaiting,
	}
}

// Kind implements Drill.
func (r *Reaction) Kind() model.DrillKind { return model.DrillReaction }

// Start implements Drill. The reaction countdown runs from mount.
func (r *Reaction) Start(time.Time) []Timer {
	r.start()
	return nil
}

// Phase returns the current round phase.
func (r *Reaction) Phase() ReactionPhase { return r.phase }

// Rounds returns the number of recorded reactions.
func (r *Reaction) Rounds() int { return len(r.times) }

// LastMs returns the most recent reaction time.
func (r *Reaction) LastMs() int { return r.lastMs }

// AvgMs returns the running mean reaction time.
func (r *Reaction) AvgMs() int { return meanInts(r.times) }

// FalseClicks returns the number of clicks made during the red phase.
func (r *Reaction) FalseClicks() int { return r.falseClicks }

// Click handles a pointer click at now.
func (r *Reaction) Click(now time.Time) []Timer {
	if !r.running {
		return nil
	}
	switch r.phase {
	case PhaseWaiting:
		r.phase = PhaseRed
		delay := r.sampler.Duration(r.opts.MinDelay, r.opts.MaxDelay)
		return []Timer{r.timers.schedule(delay)}
	case PhaseRed:
		r.falseClicks++
		r.phase = PhaseTooSoon
		return []Timer{r.timers.schedule(r.opts.TooSoonPause)}
	case PhaseGreen:
		ms := roundedMs(now.Sub(r.greenAt))
		r.lastMs = ms
		r.times = append(r.times, ms)
		r.phase = PhaseResult
		return []Timer{r.timers.schedule(r.opts.ResultPause)}
	default:
		return nil
	}
}

// Fire implements Drill.
func (r *Reaction) Fire(id uint64, now time.Time) []Timer {
	if !r.running || !r.timers.take(id) {
		return nil
	}
	switch r.phase {
	case PhaseRed:
		r.phase = PhaseGreen
		r.greenAt = now
	case PhaseTooSoon, PhaseResult:
		r.phase = PhaseWaiting
	}
	return nil
}

// Tick implements Drill.
func (r *Reaction) Tick() {
	if r.step() {
		r.timers.cancel()
		r.finish(r.Result())
	}
}

// Stop implements Drill.
func (r *Reaction) Stop() {
	r.timers.cancel()
	r.running = false
}

// Result implements Drill.
func (r *Reaction) Result() model.DrillResult {
	times := append([]int(nil), r.times...)
	return model.DrillResult{
		Kind: model.DrillReaction,
		Reaction: &model.ReactionResult{
			AvgMs:       meanInts(times),
			BestMs:      minInt(times),
			Rounds:      len(times),
			FalseClicks: r.falseClicks,
			TimesMs:     times,
		},
	}
}
