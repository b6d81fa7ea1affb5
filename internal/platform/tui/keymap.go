package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starcatch/internal/core"
)

// defaultHoldWindow is how long a movement key counts as held after its last
// key event. Terminals only report presses and auto-repeat, never releases.
const defaultHoldWindow = 150 * time.Millisecond

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Pause     key.Binding
	Start     key.Binding
	Menu      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Menu, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Pause, k.Menu, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("up/w", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("down/s", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "move right"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/run"),
		),
		Start: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "start"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game input.
// Movement keys stay held for a short window after each key event; trigger
// keys are reported as just-pressed on the next frame only.
type KeyMapper struct {
	keys       KeyMap
	holdWindow time.Duration
	lastSeen   map[core.Action]time.Time
	pending    map[core.Action]bool
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{
		keys:       keys,
		holdWindow: defaultHoldWindow,
		lastSeen:   make(map[core.Action]time.Time),
		pending:    make(map[core.Action]bool),
	}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.keys.Up):
		return core.ActionMoveUp
	case key.Matches(msg, km.keys.Down):
		return core.ActionMoveDown
	case key.Matches(msg, km.keys.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, km.keys.Right):
		return core.ActionMoveRight
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause
	case key.Matches(msg, km.keys.Start):
		return core.ActionStart
	case key.Matches(msg, km.keys.Menu):
		return core.ActionMenu
	case key.Matches(msg, km.keys.Quit), key.Matches(msg, km.keys.ForceQuit):
		return core.ActionQuit
	}
	return core.ActionNone
}

// opposite returns the movement action that cancels a.
func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionMoveUp:
		return core.ActionMoveDown
	case core.ActionMoveDown:
		return core.ActionMoveUp
	case core.ActionMoveLeft:
		return core.ActionMoveRight
	case core.ActionMoveRight:
		return core.ActionMoveLeft
	}
	return core.ActionNone
}

func isMovement(a core.Action) bool {
	return opposite(a) != core.ActionNone
}

// HandleKey records a key event seen at now.
func (km *KeyMapper) HandleKey(msg tea.KeyMsg, now time.Time) core.Action {
	action := km.MapKey(msg)
	switch {
	case action == core.ActionNone:
	case isMovement(action):
		km.lastSeen[action] = now
		// Reversing direction releases the other key immediately.
		delete(km.lastSeen, opposite(action))
	default:
		km.pending[action] = true
	}
	return action
}

// Frame builds the input for a tick at now and consumes pending triggers.
func (km *KeyMapper) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, seen := range km.lastSeen {
		if now.Sub(seen) <= km.holdWindow {
			in.Hold(a)
		} else {
			delete(km.lastSeen, a)
		}
	}
	for a := range km.pending {
		in.Press(a)
		delete(km.pending, a)
	}
	return in
}

// Reset releases every key.
func (km *KeyMapper) Reset() {
	clear(km.lastSeen)
	clear(km.pending)
}
