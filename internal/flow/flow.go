// Package flow sequences the warmup screens and collects drill results.
package flow

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ethanolliesCODE/aim-warmup/internal/model"
)

// Screen is a top-level state of the warmup flow.
type Screen int

// Screens in flow order.
const (
	ScreenHome Screen = iota
	ScreenDurationSelect
	ScreenDrill
	ScreenResults
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenDurationSelect:
		return "durationSelect"
	case ScreenDrill:
		return "drill"
	case ScreenResults:
		return "results"
	default:
		return "unknown"
	}
}

var (
	// ErrInvalidState is returned when an operation does not apply to the current screen.
	ErrInvalidState = errors.New("invalid flow state")
	// ErrInvalidDuration is returned for session lengths other than 5 or 10 minutes.
	ErrInvalidDuration = errors.New("invalid session duration")
	// ErrUnexpectedResult is returned when a result does not belong to the active drill.
	ErrUnexpectedResult = errors.New("unexpected drill result")
)

// Controller is the top-level screen state machine.
type Controller struct {
	screen  Screen
	session model.Session
	now     func() time.Time
}

// New returns a controller on the home screen.
func New() *Controller {
	return &Controller{now: time.Now}
}

// Screen returns the current screen.
func (c *Controller) Screen() Screen { return c.screen }

// Session returns the current session.
func (c *Controller) Session() model.Session { return c.session }

// DrillIndex returns the index of the active drill.
func (c *Controller) DrillIndex() int { return c.session.DrillIndex }

// Results returns the results collected so far.
func (c *Controller) Results() []model.DrillResult { return c.session.Results }

// Duration returns the selected session length in minutes.
func (c *Controller) Duration() int { return c.session.DurationMinutes }

// CurrentDrill returns the active drill kind.
func (c *Controller) CurrentDrill() model.DrillKind {
	return model.DrillOrder[c.session.DrillIndex]
}

// CurrentDrillSeconds returns the active drill's length.
func (c *Controller) CurrentDrillSeconds() int {
	return DrillSeconds(c.CurrentDrill(), c.session.DurationMinutes)
}

// Begin moves from home to duration selection.
func (c *Controller) Begin() error {
	if c.screen != ScreenHome {
		return fmt.Errorf("begin from %s: %w", c.screen, ErrInvalidState)
	}
	c.screen = ScreenDurationSelect
	return nil
}

// SelectDuration creates a session and enters the first drill.
func (c *Controller) SelectDuration(minutes int) error {
	if c.screen != ScreenDurationSelect {
		return fmt.Errorf("select duration from %s: %w", c.screen, ErrInvalidState)
	}
	if !ValidDuration(minutes) {
		return fmt.Errorf("%d minutes: %w", minutes, ErrInvalidDuration)
	}
	c.session = model.Session{
		ID:              uuid.NewString(),
		DurationMinutes: minutes,
		StartedAt:       c.now(),
	}
	c.screen = ScreenDrill
	return nil
}

// Complete records the active drill's result and advances the flow.
func (c *Controller) Complete(result model.DrillResult) error {
	if c.screen != ScreenDrill {
		return fmt.Errorf("complete drill from %s: %w", c.screen, ErrInvalidState)
	}
	if want := c.CurrentDrill(); result.Kind != want {
		return fmt.Errorf("got %s while %s is active: %w", result.Kind, want, ErrUnexpectedResult)
	}
	c.session.Results = append(c.session.Results, result)
	if c.session.DrillIndex < len(model.DrillOrder)-1 {
		c.session.DrillIndex++
		return nil
	}
	c.screen = ScreenResults
	return nil
}

// Restart discards the session and returns home.
func (c *Controller) Restart() {
	c.session = model.Session{}
	c.screen = ScreenHome
}
