package drill

import (
	"testing"
	"time"

	"github.com/ethanolliesCODE/aim-warmup/internal/model"
	"github.com/ethanolliesCODE/aim-warmup/internal/sampler"
)

var epoch = time.Unix(1700000000, 0)

type recorder struct {
	results []model.DrillResult
}

func (r *recorder) complete(res model.DrillResult) {
	r.results = append(r.results, res)
}

func newTestReaction(seconds int, rec *recorder) *Reaction {
	r := NewReaction(seconds, DefaultReactionOptions(), sampler.New(1), rec.complete)
	r.Start(epoch)
	return r
}

// playRound runs one clean round with the given reaction time and returns the
// time at which the result pause ended.
func playRound(t *testing.T, r *Reaction, at time.Time, reaction time.Duration) time.Time {
	t.Helper()
	timers := r.Click(at)
	if len(timers) != 1 || r.Phase() != PhaseRed {
		t.Fatalf("expected red phase with one timer, got %s and %d timers", r.Phase(), len(timers))
	}
	greenAt := at.Add(timers[0].After)
	r.Fire(timers[0].ID, greenAt)
	if r.Phase() != PhaseGreen {
		t.Fatalf("expected green phase, got %s", r.Phase())
	}
	timers = r.Click(greenAt.Add(reaction))
	if len(timers) != 1 || r.Phase() != PhaseResult {
		t.Fatalf("expected result phase, got %s", r.Phase())
	}
	end := greenAt.Add(reaction).Add(timers[0].After)
	r.Fire(timers[0].ID, end)
	if r.Phase() != PhaseWaiting {
		t.Fatalf("expected waiting phase after result pause, got %s", r.Phase())
	}
	return end
}

func tickN(d Drill, n int) {
	for i := 0; i < n; i++ {
		d.Tick()
	}
}

func TestReactionDelayWithinRange(t *testing.T) {
	rec := &recorder{}
	r := newTestReaction(30, rec)
	timers := r.Click(epoch)
	if len(timers) != 1 {
		t.Fatalf("expected one timer, got %d", len(timers))
	}
	if d := timers[0].After; d < 1500*time.Millisecond || d >= 4000*time.Millisecond {
		t.Fatalf("green delay out of range: %s", d)
	}
}

func TestReactionAverageAndBest(t *testing.T) {
	rec := &recorder{}
	r := newTestReaction(10, rec)
	at := playRound(t, r, epoch, 183*time.Millisecond)
	at = playRound(t, r, at, 241*time.Millisecond)
	playRound(t, r, at, 250400*time.Microsecond)

	tickN(r, 10)
	if len(rec.results) != 1 {
		t.Fatalf("expected one completion, got %d", len(rec.results))
	}
	res := rec.results[0].Reaction
	if res == nil {
		t.Fatalf("expected reaction payload")
	}
	if res.Rounds != 3 {
		t.Fatalf("expected 3 rounds, got %d", res.Rounds)
	}
	// (183 + 241 + 250) / 3 = 224.67
	if res.AvgMs != 225 {
		t.Fatalf("expected avg 225, got %d", res.AvgMs)
	}
	if res.BestMs != 183 {
		t.Fatalf("expected best 183, got %d", res.BestMs)
	}
	if len(res.TimesMs) != 3 || res.TimesMs[2] != 250 {
		t.Fatalf("unexpected samples: %v", res.TimesMs)
	}
}

func TestReactionNoRoundsYieldsZero(t *testing.T) {
	rec := &recorder{}
	r := newTestReaction(2, rec)
	tickN(r, 2)
	if len(rec.results) != 1 {
		t.Fatalf("expected one completion, got %d", len(rec.results))
	}
	res := rec.results[0].Reaction
	if res.AvgMs != 0 || res.BestMs != 0 || res.Rounds != 0 {
		t.Fatalf("expected zero stats, got %+v", res)
	}
}

func TestReactionFalseStart(t *testing.T) {
	rec := &recorder{}
	r := newTestReaction(30, rec)
	green := r.Click(epoch)
	tooSoon := r.Click(epoch.Add(500 * time.Millisecond))
	if r.Phase() != PhaseTooSoon {
		t.Fatalf("expected tooSoon phase, got %s", r.Phase())
	}
	if r.FalseClicks() != 1 || r.Rounds() != 0 {
		t.Fatalf("expected 1 false click and no rounds, got %d/%d", r.FalseClicks(), r.Rounds())
	}
	if len(tooSoon) != 1 || tooSoon[0].After != 1200*time.Millisecond {
		t.Fatalf("expected 1200ms pause, got %+v", tooSoon)
	}

	// The cancelled green transition must not fire.
	r.Fire(green[0].ID, epoch.Add(green[0].After))
	if r.Phase() != PhaseTooSoon {
		t.Fatalf("stale green timer changed phase to %s", r.Phase())
	}
	// Clicks during the pause are ignored.
	if timers := r.Click(epoch.Add(time.Second)); timers != nil {
		t.Fatalf("expected click during tooSoon to be ignored")
	}
	r.Fire(tooSoon[0].ID, epoch.Add(1700*time.Millisecond))
	if r.Phase() != PhaseWaiting {
		t.Fatalf("expected waiting after pause, got %s", r.Phase())
	}

	tickN(r, 30)
	res := rec.results[0].Reaction
	if res.FalseClicks != 1 || len(res.TimesMs) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestReactionCompletesOnceWithPendingTimers(t *testing.T) {
	rec := &recorder{}
	r := newTestReaction(3, rec)
	at := playRound(t, r, epoch, 200*time.Millisecond)
	timers := r.Click(at)
	tickN(r, 10)
	r.Fire(timers[0].ID, at.Add(timers[0].After))
	r.Click(at.Add(5 * time.Second))
	tickN(r, 3)

	if len(rec.results) != 1 {
		t.Fatalf("expected exactly one completion, got %d", len(rec.results))
	}
	if !r.Done() || r.Remaining() != 0 {
		t.Fatalf("expected done drill with 0 remaining")
	}
	// The round in flight at expiry is not counted.
	if got := rec.results[0].Reaction.Rounds; got != 1 {
		t.Fatalf("expected 1 round, got %d", got)
	}
	if r.Phase() != PhaseRed {
		t.Fatalf("expected phase frozen at red, got %s", r.Phase())
	}
}

func TestReactionIgnoresClicksBeforeStart(t *testing.T) {
	r := NewReaction(30, DefaultReactionOptions(), sampler.New(1), nil)
	if timers := r.Click(epoch); timers != nil {
		t.Fatalf("expected click before start to be ignored")
	}
	if r.Phase() != PhaseWaiting {
		t.Fatalf("expected waiting phase")
	}
}

func TestReactionStopCancelsTimers(t *testing.T) {
	rec := &recorder{}
	r := newTestReaction(30, rec)
	timers := r.Click(epoch)
	r.Stop()
	r.Fire(timers[0].ID, epoch.Add(timers[0].After))
	tickN(r, 40)
	if r.Phase() != PhaseRed {
		t.Fatalf("expected stopped drill to stay red, got %s", r.Phase())
	}
	if len(rec.results) != 0 {
		t.Fatalf("expected stopped drill to never complete")
	}
}
