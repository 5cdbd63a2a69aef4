// Package gesture turns terminal mouse reports into pan gestures and clicks.
package gesture

import (
	tea "github.com/charmbracelet/bubbletea"

	"storyviewer/internal/carousel"
)

// Kind of result produced for a mouse report
type Kind int

const (
	None Kind = iota
	Click
	Pan
)

// Result is what a mouse report amounted to
type Result struct {
	Kind Kind
	X, Y int             // pointer position, for clicks
	Pan  carousel.RawPan // set when Kind is Pan
}

// Recognizer tracks one left-button press at a time. Motion beyond the
// dead zone turns the press into a pan; a release without such motion is
// a click.
type Recognizer struct {
	deadZone int

	pressed bool
	panning bool
	startX  int
	startY  int
}

// NewRecognizer creates a recognizer with the given dead zone in cells
func NewRecognizer(deadZone int) *Recognizer {
	if deadZone < 0 {
		deadZone = 0
	}
	return &Recognizer{deadZone: deadZone}
}

// Panning reports whether a pan is in progress
func (r *Recognizer) Panning() bool {
	return r.panning
}

// Handle feeds one mouse report to the recognizer
func (r *Recognizer) Handle(msg tea.MouseMsg) Result {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return Result{}
		}
		// A press while a pan is open means its release was lost. The
		// new press continues from the same origin.
		if r.panning {
			return r.pan(msg.X, false)
		}
		r.pressed = true
		r.startX, r.startY = msg.X, msg.Y
		return Result{}

	case tea.MouseActionMotion:
		if !r.pressed {
			return Result{}
		}
		dx := msg.X - r.startX
		if !r.panning && abs(dx) <= r.deadZone {
			return Result{}
		}
		r.panning = true
		return r.pan(msg.X, false)

	case tea.MouseActionRelease:
		if !r.pressed {
			return Result{}
		}
		r.pressed = false
		if r.panning {
			r.panning = false
			return r.pan(msg.X, true)
		}
		return Result{Kind: Click, X: msg.X, Y: msg.Y}
	}

	return Result{}
}

// Cancel drops any press in progress without reporting it
func (r *Recognizer) Cancel() {
	r.pressed = false
	r.panning = false
}

func (r *Recognizer) pan(x int, final bool) Result {
	return Result{
		Kind: Pan,
		X:    x,
		Y:    r.startY,
		Pan:  carousel.Pan(float64(x-r.startX), final),
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
