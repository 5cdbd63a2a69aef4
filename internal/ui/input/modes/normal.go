package modes

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"storyviewer/internal/ui/input/types"
)

// KeyBindings is the subset of the key map normal mode reacts to
type KeyBindings struct {
	Previous, Next, First, Last key.Binding
	Jump, Cancel, Reload        key.Binding
	Help, Pager, Quit           key.Binding
}

type NormalMode struct {
	keys KeyBindings
}

func NewNormalMode(keys KeyBindings) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, m.keys.Cancel):
		// Esc only means something while dragging
		if ctx.Dragging() {
			return []types.Action{types.CancelDragAction{}}, true
		}
		return nil, false

	case key.Matches(msg, m.keys.Previous):
		return []types.Action{types.NavigateAction{Direction: types.DirectionPrevious}}, true

	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.NavigateAction{Direction: types.DirectionNext}}, true

	case key.Matches(msg, m.keys.First):
		return []types.Action{types.NavigateAction{Direction: types.DirectionFirst}}, true

	case key.Matches(msg, m.keys.Last):
		return []types.Action{types.NavigateAction{Direction: types.DirectionLast}}, true

	case key.Matches(msg, m.keys.Jump):
		n, err := strconv.Atoi(msg.String())
		if err != nil || n < 1 {
			return nil, false
		}
		// Numbers past the end land on the last panel
		return []types.Action{types.JumpAction{Index: n - 1}}, true

	case key.Matches(msg, m.keys.Reload):
		return []types.Action{types.ReloadDeckAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true

	case key.Matches(msg, m.keys.Pager):
		return []types.Action{types.OpenHelpPagerAction{}}, true
	}

	return nil, false
}
