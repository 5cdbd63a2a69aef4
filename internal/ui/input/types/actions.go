package types

// Navigation directions
const (
	DirectionPrevious = "previous"
	DirectionNext     = "next"
	DirectionFirst    = "first"
	DirectionLast     = "last"
)

// NavigateAction moves relative to the active panel
type NavigateAction struct {
	Direction string
}

func (a NavigateAction) Type() string { return "navigate" }

// JumpAction makes a panel active directly
type JumpAction struct {
	Index int
}

func (a JumpAction) Type() string { return "jump" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// CancelDragAction abandons a pan in progress and snaps back
type CancelDragAction struct{}

func (a CancelDragAction) Type() string { return "cancel_drag" }

// SetHelpAction expands or collapses the help bar
type SetHelpAction struct {
	Show bool
}

func (a SetHelpAction) Type() string { return "set_help" }

// OpenHelpPagerAction shows the full help in the pager
type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

// ReloadDeckAction re-reads the deck file
type ReloadDeckAction struct{}

func (a ReloadDeckAction) Type() string { return "reload_deck" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
