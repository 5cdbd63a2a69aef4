package ui

import (
	"time"

	"github.com/rs/zerolog"

	"storyviewer/internal/carousel"
	"storyviewer/internal/domain"
	"storyviewer/internal/eventbus"
)

// StoryPanel is one story card. It owns its playback clock: entering
// restarts it, exiting pauses it.
type StoryPanel struct {
	Story     domain.Story
	Transform carousel.Transform

	state     domain.PlaybackState
	elapsed   time.Duration
	startedAt time.Time
}

// NewStoryPanel creates a paused panel for a story
func NewStoryPanel(story domain.Story) *StoryPanel {
	return &StoryPanel{Story: story, Transform: carousel.Transform{Scale: 1}}
}

// Enter restarts playback from zero
func (p *StoryPanel) Enter(now time.Time) {
	p.state = domain.Playing
	p.elapsed = 0
	p.startedAt = now
}

// Exit pauses playback, keeping the elapsed time
func (p *StoryPanel) Exit(now time.Time) {
	if p.state != domain.Playing {
		return
	}
	p.elapsed += now.Sub(p.startedAt)
	p.state = domain.Paused
}

// State returns whether the panel is playing
func (p *StoryPanel) State() domain.PlaybackState {
	return p.state
}

// Elapsed returns how long the story has been played
func (p *StoryPanel) Elapsed(now time.Time) time.Duration {
	if p.state == domain.Playing {
		return p.elapsed + now.Sub(p.startedAt)
	}
	return p.elapsed
}

// panelHost adapts the story panels to carousel.Host
type panelHost struct {
	panels []*StoryPanel
	width  float64
	bus    eventbus.EventBus
	now    func() time.Time
	log    zerolog.Logger
}

func newPanelHost(stories []domain.Story, bus eventbus.EventBus, now func() time.Time, log zerolog.Logger) *panelHost {
	h := &panelHost{bus: bus, now: now, log: log}
	h.setStories(stories)
	return h
}

func (h *panelHost) setStories(stories []domain.Story) {
	panels := make([]*StoryPanel, len(stories))
	for i, s := range stories {
		panels[i] = NewStoryPanel(s)
	}
	h.panels = panels
}

func (h *panelHost) Len() int {
	return len(h.panels)
}

func (h *panelHost) Width() float64 {
	return h.width
}

func (h *panelHost) Notify(i int, n carousel.Notification) {
	p := h.panels[i]
	switch n {
	case carousel.Entered:
		p.Enter(h.now())
		h.publish(eventbus.PanelEnteredEvent{Index: i, Title: p.Story.Title})
	case carousel.Exited:
		p.Exit(h.now())
		h.publish(eventbus.PanelExitedEvent{Index: i, Title: p.Story.Title})
	}
	h.log.Debug().Int("panel", i).Str("notification", n.String()).Msg("panel notified")
}

func (h *panelHost) Apply(t carousel.Transform) {
	h.panels[t.Index].Transform = t
}

func (h *panelHost) publish(e eventbus.DomainEvent) {
	if h.bus != nil {
		h.bus.Publish(e)
	}
}
