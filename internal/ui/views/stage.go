package views

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"storyviewer/internal/carousel"
	"storyviewer/internal/domain"
)

// PanelView is everything needed to draw one story panel
type PanelView struct {
	Story     domain.Story
	State     domain.PlaybackState
	Elapsed   time.Duration
	Transform carousel.Transform
}

// StageRenderer draws the panels at their transforms
type StageRenderer struct {
	styles *Styles
}

// NewStageRenderer creates a new stage renderer
func NewStageRenderer(styles *Styles) *StageRenderer {
	return &StageRenderer{styles: styles}
}

// Render returns exactly height lines, each width cells wide. Panels sit
// in slots one viewport wide at their translated column; only slots
// overlapping the viewport are drawn.
func (sr *StageRenderer) Render(panels []PanelView, active, width, height int) []string {
	blank := strings.Repeat(" ", max(width, 0))
	rows := make([]string, height)
	for i := range rows {
		rows[i] = blank
	}
	if width <= 0 || height <= 0 {
		return rows
	}

	// Visible slots are consecutive, so their rows can be joined and cut.
	first := 0
	var slots [][]string
	for _, p := range panels {
		x := int(math.Round(p.Transform.X))
		if x <= -width || x >= width {
			continue
		}
		if slots == nil {
			first = x
		}
		slot := sr.renderSlot(p, p.Transform.Index == active, width, height)
		slots = append(slots, strings.Split(slot, "\n"))
	}
	if len(slots) == 0 {
		return rows
	}

	lead := ""
	if first > 0 {
		lead = strings.Repeat(" ", first)
	}
	left := max(-first, 0)

	for r := 0; r < height; r++ {
		var b strings.Builder
		b.WriteString(lead)
		for _, slot := range slots {
			line := blank
			if r < len(slot) {
				line = slot[r]
			}
			b.WriteString(line)
		}
		row := ansi.Cut(b.String(), left, left+width)
		if w := ansi.StringWidth(row); w < width {
			row += strings.Repeat(" ", width-w)
		}
		rows[r] = row
	}

	return rows
}

// renderSlot draws a panel scaled around the center of a width x height slot
func (sr *StageRenderer) renderSlot(p PanelView, active bool, width, height int) string {
	bw := int(math.Round(float64(width) * p.Transform.Scale))
	bh := int(math.Round(float64(height) * p.Transform.Scale))
	bw = min(bw, width)
	bh = min(bh, height)

	box := ""
	if bw >= 2 && bh >= 2 {
		box = sr.renderBox(p, active, bw, bh)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderBox draws a bordered story card of exactly w x h cells
func (sr *StageRenderer) renderBox(p PanelView, active bool, w, h int) string {
	color := PanelColor(p.Story.Color, p.Transform.Index)
	innerW := w - 4 // border and horizontal padding
	innerH := h - 2

	content := ""
	if innerW > 0 && innerH > 0 {
		content = sr.renderContent(p, innerW, innerH)
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1).
		Width(max(w-2, 0)).
		Height(max(h-2, 0))
	if !active {
		style = style.Inherit(sr.styles.PanelInactive)
	}
	if innerW <= 0 {
		style = style.Padding(0)
	}
	return style.Render(content)
}

func (sr *StageRenderer) renderContent(p PanelView, w, h int) string {
	color := PanelColor(p.Story.Color, p.Transform.Index)

	var lines []string
	lines = append(lines, ansi.Truncate(sr.styles.PanelTitle.Foreground(color).Render(p.Story.Title), w, "…"))

	meta := sr.playback(p)
	if p.Story.Author != "" {
		meta += sr.styles.PanelMeta.Render(" · by " + p.Story.Author)
	}
	lines = append(lines, ansi.Truncate(meta, w, "…"))

	if p.Story.Body != "" {
		lines = append(lines, "")
		body := sr.styles.PanelBody.Width(w).Render(p.Story.Body)
		lines = append(lines, strings.Split(body, "\n")...)
	}

	if len(lines) > h {
		lines = lines[:h]
	}
	return strings.Join(lines, "\n")
}

func (sr *StageRenderer) playback(p PanelView) string {
	elapsed := p.Elapsed.Truncate(time.Second)
	clock := fmt.Sprintf("%d:%02d", int(elapsed.Minutes()), int(elapsed.Seconds())%60)
	if p.State == domain.Playing {
		return sr.styles.Playing.Render("▶ " + clock)
	}
	return sr.styles.PausedPlayback.Render("⏸ " + clock)
}
