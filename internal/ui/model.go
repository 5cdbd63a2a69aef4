package ui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"storyviewer/internal/carousel"
	"storyviewer/internal/config"
	"storyviewer/internal/deck"
	"storyviewer/internal/eventbus"
	"storyviewer/internal/logging"
	"storyviewer/internal/ui/gesture"
	"storyviewer/internal/ui/input"
	inputtypes "storyviewer/internal/ui/input/types"
	"storyviewer/internal/ui/views"
)

// tickInterval drives the playback clocks shown on the panels
const tickInterval = 250 * time.Millisecond

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	log    zerolog.Logger

	// Deck
	deckPath  string
	deckTitle string

	// Carousel and its inputs
	host       *panelHost
	carousel   *carousel.Carousel
	sampler    *carousel.Sampler
	recognizer *gesture.Recognizer
	frame      carousel.Frame

	// UI-specific state
	width         int
	height        int
	layout        views.Layout
	help          help.Model
	statusMessage string
	statusIsError bool

	// Handlers
	renderer     *views.Renderer
	inputHandler *input.Handler

	now func() time.Time

	// Program reference for terminal management
	program *tea.Program
}

// Option customizes a Model
type Option func(*Model)

// WithClock replaces the wall clock used for playback times
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// NewModel creates a new UI model showing d. deckPath is the file d was
// loaded from, or "" for the built-in deck.
func NewModel(bus eventbus.EventBus, cfg *config.Config, d *deck.Deck, deckPath string, opts ...Option) *Model {
	if d == nil {
		d = deck.Sample()
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		log:          logging.WithComponent("ui"),
		deckPath:     deckPath,
		deckTitle:    d.Title,
		sampler:      carousel.NewSampler(),
		recognizer:   gesture.NewRecognizer(cfg.UISettings.DragDeadZone),
		width:        80,
		height:       24,
		help:         help.New(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(input.DefaultKeyMap()),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	m.host = newPanelHost(d.Stories, bus, m.now, logging.WithComponent("panels"))
	m.host.width = float64(m.width)
	m.carousel = carousel.New(m.host)
	m.relayout()
	m.reconcile(carousel.TriggerResize, m.sampler.Latest())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Index returns the active panel
func (m *Model) Index() int {
	return m.carousel.Index()
}

// Frame returns the result of the last reconciliation cycle
func (m *Model) Frame() carousel.Frame {
	return m.frame
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.host.width = float64(msg.Width)
		m.relayout()
		m.reconcile(carousel.TriggerResize, m.sampler.Latest())
		return m, nil

	case tea.KeyMsg:
		ctx := m.inputContext()
		return m, m.executeActions(m.inputHandler.HandleKey(msg, ctx))

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tickMsg:
		return m, tick()

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.setError("help: " + msg.err.Error())
		}
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	now := m.now()
	panels := make([]views.PanelView, len(m.host.panels))
	for i, p := range m.host.panels {
		panels[i] = views.PanelView{
			Story:     p.Story,
			State:     p.State(),
			Elapsed:   p.Elapsed(now),
			Transform: p.Transform,
		}
	}

	return m.renderer.Render(views.ViewState{
		Layout:        m.layout,
		DeckTitle:     m.deckTitle,
		Panels:        panels,
		Active:        m.frame.Active,
		Watched:       m.frame.Watched,
		StatusMessage: m.statusMessage,
		StatusIsError: m.statusIsError,
		Dragging:      m.recognizer.Panning(),
		HelpView:      m.help.View(m.inputHandler.Keys()),
	})
}

// reconcile runs one carousel cycle
func (m *Model) reconcile(trigger carousel.Trigger, sample carousel.GestureSample) {
	before := m.carousel.Index()
	m.frame = m.carousel.Reconcile(trigger, sample)
	if m.frame.Committed {
		m.log.Info().
			Int("from", before).
			Int("to", m.frame.Active).
			Float64("delta_x", sample.DeltaX).
			Msg("gesture committed")
	}
}

func (m *Model) relayout() {
	m.layout = views.NewLayout(
		m.width,
		m.height,
		m.host.Len(),
		m.config.UISettings.ShowControls,
		m.config.UISettings.ShowProgress,
		m.config.UISettings.ShowHelp,
	)
	// The expanded help is shown even when the help bar is turned off
	if m.help.ShowAll {
		m.layout = m.layout.WithHelpHeight(lipgloss.Height(m.help.View(m.inputHandler.Keys())))
	}
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		Index:     m.carousel.Index(),
		Total:     m.host.Len(),
		IsDragged: m.recognizer.Panning(),
	}
}

// handleMouse routes wheel steps and clicks to navigation and pans to the
// gesture sampler
func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action == tea.MouseActionPress {
		switch msg.Button {
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			m.navigate(inputtypes.DirectionNext)
			return
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			m.navigate(inputtypes.DirectionPrevious)
			return
		}
	}

	res := m.recognizer.Handle(msg)
	switch res.Kind {
	case gesture.Pan:
		m.reconcile(carousel.TriggerGesture, m.sampler.OnPanEvent(res.Pan))

	case gesture.Click:
		hit := m.layout.HitTest(res.X, res.Y)
		switch hit.Kind {
		case views.HitPrevious:
			m.navigate(inputtypes.DirectionPrevious)
		case views.HitNext:
			m.navigate(inputtypes.DirectionNext)
		case views.HitMarker:
			m.jump(hit.Index)
		}
	}
}

// navigate moves relative to the active panel. A pan in progress is
// abandoned first so the new panel is not drawn with a stale offset.
func (m *Model) navigate(direction string) {
	m.cancelDrag()
	switch direction {
	case inputtypes.DirectionPrevious:
		m.carousel.Previous()
	case inputtypes.DirectionNext:
		m.carousel.Next()
	case inputtypes.DirectionFirst:
		m.carousel.JumpTo(0)
	case inputtypes.DirectionLast:
		m.carousel.JumpTo(m.host.Len() - 1)
	}
	m.reconcile(carousel.TriggerIndexCommit, m.sampler.Latest())
}

func (m *Model) jump(index int) {
	m.cancelDrag()
	m.carousel.JumpTo(index)
	m.reconcile(carousel.TriggerIndexCommit, m.sampler.Latest())
}

func (m *Model) cancelDrag() {
	m.recognizer.Cancel()
	m.sampler.Reset()
}

// executeActions runs the actions produced by the input handler
func (m *Model) executeActions(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		switch a := action.(type) {
		case inputtypes.NavigateAction:
			m.navigate(a.Direction)

		case inputtypes.JumpAction:
			m.jump(a.Index)

		case inputtypes.CancelDragAction:
			m.cancelDrag()
			m.reconcile(carousel.TriggerRefresh, m.sampler.Latest())

		case inputtypes.SetHelpAction:
			m.help.ShowAll = a.Show
			m.relayout()

		case inputtypes.OpenHelpPagerAction:
			cmds = append(cmds, m.openHelpPager())

		case inputtypes.ReloadDeckAction:
			cmds = append(cmds, m.reloadDeck())

		case inputtypes.QuitAction:
			return tea.Quit
		}
	}

	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

func (m *Model) openHelpPager() tea.Cmd {
	ops := NewHelpOps(m.program)
	content := NewHelpRenderer().RenderHelpContent(m.inputHandler.Keys())
	return func() tea.Msg {
		return helpPagerMsg{err: ops.ShowHelpInPager(content)}
	}
}

// reloadDeck reads the deck file again and reports the result as a
// domain event, the same way the file watcher does
func (m *Model) reloadDeck() tea.Cmd {
	path := m.deckPath
	if path == "" {
		m.setStatus("built-in deck")
		return nil
	}
	return func() tea.Msg {
		d, err := deck.Load(path)
		return EventMsg{Event: deckEvent(path, deck.Update{Deck: d, Err: err})}
	}
}

func (m *Model) handleEvent(e eventbus.DomainEvent) {
	switch event := e.(type) {
	case eventbus.DeckLoadedEvent:
		if len(event.Stories) == 0 {
			m.setError(deck.ErrEmptyDeck.Error())
			return
		}
		m.replaceDeck(event)

	case eventbus.DeckReloadFailedEvent:
		msg := "deck reload failed"
		if errors.Is(event.Err, deck.ErrEmptyDeck) {
			msg = "deck has no stories"
		}
		m.log.Warn().Err(event.Err).Str("path", event.Path).Msg("keeping previous deck")
		m.setError(msg)

	case eventbus.ErrorEvent:
		m.setError(event.Message)
	}
}

// replaceDeck swaps in new stories, keeping the active position when it
// still exists
func (m *Model) replaceDeck(event eventbus.DeckLoadedEvent) {
	// The outgoing panel exits before Refit enters the new one
	m.host.Notify(m.carousel.Index(), carousel.Exited)

	m.deckTitle = event.Title
	m.host.setStories(event.Stories)
	m.carousel.Refit()
	m.cancelDrag()
	m.relayout()
	m.reconcile(carousel.TriggerRefresh, m.sampler.Latest())

	m.setStatus("deck reloaded")
	m.log.Info().Str("path", event.Path).Int("stories", len(event.Stories)).Msg("deck replaced")
}

func (m *Model) setStatus(msg string) {
	m.statusMessage = msg
	m.statusIsError = false
}

func (m *Model) setError(msg string) {
	m.statusMessage = msg
	m.statusIsError = true
}
