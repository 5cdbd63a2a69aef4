package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"storyviewer/internal/deck"
	"storyviewer/internal/eventbus"
)

// deckEvent turns the result of reading a deck into the event the model
// handles
func deckEvent(path string, u deck.Update) eventbus.DomainEvent {
	if u.Err != nil {
		return eventbus.DeckReloadFailedEvent{Path: path, Err: u.Err}
	}
	return eventbus.DeckLoadedEvent{Path: path, Title: u.Deck.Title, Stories: u.Deck.Stories}
}

// ForwardDeckUpdates hands every watcher update to send, in the order the
// watcher produced them, until updates is closed. The bus does not keep
// delivery order, so it only gets a copy for observers; the model must be
// fed through send.
func ForwardDeckUpdates(updates <-chan deck.Update, path string, send func(tea.Msg), bus eventbus.EventBus) {
	for u := range updates {
		event := deckEvent(path, u)
		send(EventMsg{Event: event})
		if bus != nil {
			bus.Publish(event)
		}
	}
}
