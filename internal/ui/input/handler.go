package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"storyviewer/internal/ui/input/modes"
	"storyviewer/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        KeyMap
}

func New(keys KeyMap) *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	normal := modes.NewNormalMode(modes.KeyBindings{
		Previous: keys.Previous,
		Next:     keys.Next,
		First:    keys.First,
		Last:     keys.Last,
		Jump:     keys.Jump,
		Cancel:   keys.Cancel,
		Reload:   keys.Reload,
		Help:     keys.Help,
		Pager:    keys.Pager,
		Quit:     keys.Quit,
	})

	// Register all mode handlers
	h.modes[types.ModeNormal] = normal
	h.modes[types.ModeHelp] = modes.NewHelpMode(normal)

	return h
}

// HandleKey routes a key to the current mode. Mode changes are applied
// here; the remaining actions are returned for the model to execute.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}

	var allActions []types.Action
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.changeMode(changeMode.Mode, ctx)...)
		} else {
			allActions = append(allActions, action)
		}
	}

	return allActions
}

func (h *Handler) changeMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}

	var actions []types.Action
	if current := h.modes[h.currentMode]; current != nil {
		actions = append(actions, current.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

// CurrentMode returns the active input mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// ModeName returns the display name of the active mode
func (h *Handler) ModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return ""
}

// Keys returns the key map the handler was built with
func (h *Handler) Keys() KeyMap {
	return h.keys
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) Reset(ctx types.Context) []types.Action {
	return h.changeMode(types.ModeNormal, ctx)
}
