package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flag-quiz/internal/core"
)

// GameKeyMap defines the key bindings while a quiz is running.
type GameKeyMap struct {
	Choose     key.Binding
	Letter     key.Binding
	Confirm    key.Binding
	Back       key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Choose, k.Confirm, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Choose, k.Letter},
		{k.Confirm, k.Back, k.Restart},
		{k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Choose: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "choose"),
		),
		Letter: key.NewBinding(
			key.WithKeys("a", "b", "c", "d", "e", "f", "g", "h", "i"),
			key.WithHelp("a-i", "choose"),
		),
		Confirm: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "confirm / new game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit prompt"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys GameKeyMap
	Menu MenuKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		Keys: DefaultGameKeyMap(),
		Menu: DefaultMenuKeyMap(),
	}
}

// MapKey translates a key message to an action. For ActionSelect, choice is
// the zero-based option index; otherwise it is core.NoChoice.
// isQuit reports a hard quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, choice int, isQuit bool) {
	k := msg.String()

	switch {
	case key.Matches(msg, km.Keys.Quit):
		return core.ActionQuit, core.NoChoice, true
	case key.Matches(msg, km.Keys.Choose):
		return core.ActionSelect, int(k[0] - '1'), false
	case key.Matches(msg, km.Keys.Letter):
		return core.ActionSelect, int(k[0] - 'a'), false
	case key.Matches(msg, km.Keys.Confirm):
		return core.ActionConfirm, core.NoChoice, false
	case key.Matches(msg, km.Keys.Back):
		return core.ActionBack, core.NoChoice, false
	case key.Matches(msg, km.Keys.Restart):
		return core.ActionRestart, core.NoChoice, false
	}

	return core.ActionNone, core.NoChoice, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, choice, isQuit := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionSelect:
		frame.Select(choice)
	default:
		frame.Set(action)
	}
	return isQuit
}

// MenuKeyMap defines the key bindings of the variant picker.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Browse key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Browse, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Browse, k.Quit}}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Browse: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "catalog"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBrowse
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, km.Menu.Quit):
		return MenuActionQuit
	case key.Matches(msg, km.Menu.Up):
		return MenuActionUp
	case key.Matches(msg, km.Menu.Down):
		return MenuActionDown
	case key.Matches(msg, km.Menu.Select):
		return MenuActionSelect
	case key.Matches(msg, km.Menu.Browse):
		return MenuActionBrowse
	}

	return MenuActionNone
}
