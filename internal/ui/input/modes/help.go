package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"storyviewer/internal/ui/input/types"
)

// HelpMode shows the expanded help bar. Navigation keeps working; the
// help key or esc closes it.
type HelpMode struct {
	normal *NormalMode
}

func NewHelpMode(normal *NormalMode) *HelpMode {
	return &HelpMode{normal: normal}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.SetHelpAction{Show: true}}
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return []types.Action{types.SetHelpAction{Show: false}}
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "esc", "?":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}
	return m.normal.HandleKey(msg, ctx)
}
