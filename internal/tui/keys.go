package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/ethanolliesCODE/aim-warmup/internal/flow"
)

type keyMap struct {
	Quit    key.Binding
	Begin   key.Binding
	Short   key.Binding
	Long    key.Binding
	Prev    key.Binding
	Next    key.Binding
	Select  key.Binding
	Click   key.Binding
	Restart key.Binding
	TabPrev key.Binding
	TabNext key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Begin:   key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "start")),
		Short:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "5 min")),
		Long:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "10 min")),
		Prev:    key.NewBinding(key.WithKeys("left", "up", "h", "k"), key.WithHelp("←/→", "choose")),
		Next:    key.NewBinding(key.WithKeys("right", "down", "l", "j")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Click:   key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "click")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		TabPrev: key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←/→", "tabs")),
		TabNext: key.NewBinding(key.WithKeys("right", "tab")),
	}
}

// bindingsFor returns the help line bindings of a screen.
func (k keyMap) bindingsFor(screen flow.Screen, reaction bool) []key.Binding {
	switch screen {
	case flow.ScreenHome:
		return []key.Binding{k.Begin, k.Quit}
	case flow.ScreenDurationSelect:
		return []key.Binding{k.Short, k.Long, k.Prev, k.Select, k.Quit}
	case flow.ScreenDrill:
		if reaction {
			return []key.Binding{k.Click, k.Quit}
		}
		return []key.Binding{k.Quit}
	case flow.ScreenResults:
		return []key.Binding{k.TabPrev, k.Restart, k.Quit}
	default:
		return []key.Binding{k.Quit}
	}
}
