package flow

import (
	"fmt"

	"github.com/ethanolliesCODE/aim-warmup/internal/drill"
	"github.com/ethanolliesCODE/aim-warmup/internal/model"
	"github.com/ethanolliesCODE/aim-warmup/internal/sampler"
)

// Session lengths offered on the duration screen.
const (
	ShortSession = 5
	LongSession  = 10
)

// SessionChoices lists the selectable session lengths in minutes.
var SessionChoices = []int{ShortSession, LongSession}

const (
	reactionSeconds   = 30
	shortDrillSeconds = 80
	longDrillSeconds  = 150
)

// ValidDuration reports whether minutes is a selectable session length.
func ValidDuration(minutes int) bool {
	return minutes == ShortSession || minutes == LongSession
}

// DrillSeconds returns how long a drill runs for a session length. The
// reaction drill is fixed; the other drills use a short-form budget per
// session length rather than the literal session minutes.
func DrillSeconds(kind model.DrillKind, minutes int) int {
	if kind == model.DrillReaction {
		return reactionSeconds
	}
	if minutes == LongSession {
		return longDrillSeconds
	}
	return shortDrillSeconds
}

// Plan returns the drill lengths in seconds, in drill order.
func Plan(minutes int) []int {
	out := make([]int, 0, len(model.DrillOrder))
	for _, kind := range model.DrillOrder {
		out = append(out, DrillSeconds(kind, minutes))
	}
	return out
}

// MountOptions carries the knobs used to build drill machines.
type MountOptions struct {
	FPS      int
	Sampler  *sampler.Sampler
	Reaction drill.ReactionOptions
	Click    drill.ClickOptions
	Tracking drill.TrackingOptions
}

// DefaultMountOptions returns standard drill options for the frame rate.
func DefaultMountOptions(fps int, s *sampler.Sampler) MountOptions {
	return MountOptions{
		FPS:      fps,
		Sampler:  s,
		Reaction: drill.DefaultReactionOptions(),
		Click:    drill.DefaultClickOptions(),
		Tracking: drill.DefaultTrackingOptions(fps),
	}
}

// Mount builds the drill machine for kind.
func Mount(kind model.DrillKind, minutes int, opts MountOptions, onComplete drill.CompleteFunc) (drill.Drill, error) {
	if opts.Sampler == nil {
		opts.Sampler = sampler.New(0)
	}
	seconds := DrillSeconds(kind, minutes)
	switch kind {
	case model.DrillReaction:
		return drill.NewReaction(seconds, opts.Reaction, opts.Sampler, onComplete), nil
	case model.DrillClick:
		return drill.NewClick(seconds, opts.Click, opts.Sampler, onComplete), nil
	case model.DrillTracking:
		return drill.NewTracking(seconds, opts.Tracking, opts.Sampler, onComplete), nil
	default:
		return nil, fmt.Errorf("unknown drill %q", kind)
	}
}
