package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPanelEntered     EventType = "PanelEntered"
	EventPanelExited      EventType = "PanelExited"
	EventDeckLoaded       EventType = "DeckLoaded"
	EventDeckReloadFailed EventType = "DeckReloadFailed"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PanelEnteredEvent is emitted when a panel becomes the active one
type PanelEnteredEvent struct {
	Index int
	Title string
}

func (e PanelEnteredEvent) Type() EventType { return EventPanelEntered }

// PanelExitedEvent is emitted when the active panel is left
type PanelExitedEvent struct {
	Index int
	Title string
}

func (e PanelExitedEvent) Type() EventType { return EventPanelExited }

// DeckLoadedEvent is emitted when a deck file was (re)loaded
type DeckLoadedEvent struct {
	Path    string
	Title   string
	Stories []Story
}

func (e DeckLoadedEvent) Type() EventType { return EventDeckLoaded }

// DeckReloadFailedEvent is emitted when a changed deck file could not be loaded
type DeckReloadFailedEvent struct {
	Path string
	Err  error
}

func (e DeckReloadFailedEvent) Type() EventType { return EventDeckReloadFailed }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	DeckPath string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
