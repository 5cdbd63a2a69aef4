package ui

import (
	"time"

	"storyviewer/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// tickMsg is sent on a timer to advance playback clocks
type tickMsg time.Time

// helpPagerMsg contains the result of showing the help pager
type helpPagerMsg struct {
	err error
}
