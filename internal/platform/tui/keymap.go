package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sinkhole/internal/core"
)

// KeyMap holds the in-game key bindings.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Drop       key.Binding
	Fire       key.Binding
	Choose1    key.Binding
	Choose2    key.Binding
	Choose3    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Drop, k.Fire, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump, k.Drop, k.Fire},
		{k.Choose1, k.Choose2, k.Choose3},
		{k.Pause, k.Restart, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "w", "up"),
			key.WithHelp("space/w", "jump"),
		),
		Drop: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "drop"),
		),
		Fire: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f/click", "fire"),
		),
		Choose1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "upgrade 1"),
		),
		Choose2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "upgrade 2"),
		),
		Choose3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "upgrade 3"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action, or ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Drop):
		return core.ActionDrop
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.Choose1):
		return core.ActionChoose1
	case key.Matches(msg, k.Choose2):
		return core.ActionChoose2
	case key.Matches(msg, k.Choose3):
		return core.ActionChoose3
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// holdable actions stay down between key repeats.
var holdable = map[core.Action]bool{
	core.ActionLeft:  true,
	core.ActionRight: true,
	core.ActionJump:  true,
	core.ActionDrop:  true,
	core.ActionFire:  true,
}

// opposite releases a direction as soon as the other one is pressed.
var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
}

// HeldKeys approximates key state for terminals, which only report presses
// and auto-repeats. A press keeps its action held for a fixed number of
// ticks; each repeat refreshes the countdown.
type HeldKeys struct {
	ticks     int
	remaining map[core.Action]int
}

// NewHeldKeys returns a tracker that holds each press for ticks ticks.
func NewHeldKeys(ticks int) *HeldKeys {
	return &HeldKeys{
		ticks:     max(ticks, 1),
		remaining: make(map[core.Action]int),
	}
}

// Press records a key press. Non-holdable actions are ignored.
func (h *HeldKeys) Press(a core.Action) {
	if !holdable[a] {
		return
	}
	if o, ok := opposite[a]; ok {
		delete(h.remaining, o)
	}
	h.remaining[a] = h.ticks
}

// Apply marks every live action as held in frame and ages the countdowns.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Hold(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Reset releases everything.
func (h *HeldKeys) Reset() {
	clear(h.remaining)
}
