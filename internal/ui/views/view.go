package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Layout        Layout
	DeckTitle     string
	Panels        []PanelView
	Active        int
	Watched       []bool
	StatusMessage string
	StatusIsError bool
	Dragging      bool
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	stage  *StageRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		stage:  NewStageRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	l := state.Layout
	width := l.Width
	if width <= 0 {
		width = 80
	}

	rows := make([]string, 0, l.Height)
	rows = append(rows, r.renderTitle(state, width))

	stage := r.stage.Render(state.Panels, state.Active, width, l.StageHeight)
	if l.ShowControls && len(stage) > 0 {
		mid := l.ControlRow() - l.StageTop
		stage[mid] = r.overlayControls(stage[mid], state, width)
	}
	rows = append(rows, stage...)

	if l.ProgressRow >= 0 {
		rows = append(rows, r.renderProgress(state, width))
	}
	if l.HelpRow >= 0 {
		rows = append(rows, r.renderHelp(state.HelpView, width, l.HelpHeight)...)
	}

	return strings.Join(rows, "\n")
}

// renderTitle draws the logo and deck title on the left, status and
// position on the right
func (r *Renderer) renderTitle(state ViewState, width int) string {
	left := r.styles.Title.Render("storyviewer")
	if state.DeckTitle != "" {
		left += r.styles.Dim.Render(" · ") + r.styles.DeckTitle.Render(state.DeckTitle)
	}

	var right []string
	if state.StatusMessage != "" {
		if state.StatusIsError {
			right = append(right, r.styles.StatusError.Render(state.StatusMessage))
		} else {
			right = append(right, r.styles.Status.Render(state.StatusMessage))
		}
	}
	if state.Dragging {
		right = append(right, r.styles.Dim.Render("dragging"))
	}
	if n := len(state.Panels); n > 0 {
		right = append(right, r.styles.Counter.Render(fmt.Sprintf("%d/%d", state.Active+1, n)))
	}
	rightContent := strings.Join(right, "  ")

	paddingWidth := width - lipgloss.Width(left) - lipgloss.Width(rightContent)
	if paddingWidth < 1 {
		// If not enough space, keep the right side and trim the left
		paddingWidth = 1
	}
	line := left + strings.Repeat(" ", paddingWidth) + rightContent
	return ansi.Truncate(line, width, "")
}

// overlayControls draws the previous/next affordances over a stage row
func (r *Renderer) overlayControls(row string, state ViewState, width int) string {
	prev := r.styles.Control.Render("‹")
	if state.Active <= 0 {
		prev = r.styles.ControlOff.Render("‹")
	}
	next := r.styles.Control.Render("›")
	if state.Active >= len(state.Panels)-1 {
		next = r.styles.ControlOff.Render("›")
	}
	return prev + " " + ansi.Cut(row, controlWidth, width-controlWidth) + " " + next
}

// renderProgress draws one marker per panel; watched markers are lit
func (r *Renderer) renderProgress(state ViewState, width int) string {
	var b strings.Builder
	col := 0
	for i, span := range state.Layout.Markers {
		if span.Start >= width {
			break
		}
		if span.Start > col {
			b.WriteString(strings.Repeat(" ", span.Start-col))
		}
		end := min(span.End, width)
		bar := strings.Repeat("━", end-span.Start)

		style := r.styles.MarkerPending
		if i < len(state.Watched) && state.Watched[i] {
			style = r.styles.MarkerWatched
		}
		if i == state.Active {
			style = r.styles.MarkerActive
		}
		b.WriteString(style.Render(bar))
		col = end
	}
	if col < width {
		b.WriteString(strings.Repeat(" ", width-col))
	}
	return b.String()
}

// renderHelp returns exactly height help rows
func (r *Renderer) renderHelp(help string, width, height int) []string {
	lines := strings.Split(help, "\n")
	rows := make([]string, height)
	for i := range rows {
		if i < len(lines) {
			rows[i] = ansi.Truncate(r.styles.Help.Render(lines[i]), width, "…")
		}
	}
	return rows
}
