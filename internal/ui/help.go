package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"storyviewer/internal/ui/input"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates the full help with colors for the pager
func (r *HelpRenderer) RenderHelpContent(keys input.KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	line := func(b key.Binding) {
		help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render(b.Help().Key), descStyle.Render(b.Help().Desc)))
	}

	help.WriteString(titleStyle.Render("storyviewer help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Keyboard"))
	help.WriteString("\n")
	for _, b := range []key.Binding{keys.Previous, keys.Next, keys.First, keys.Last, keys.Jump, keys.Cancel, keys.Reload} {
		line(b)
	}
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Mouse"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("drag"), descStyle.Render("Pull a story aside; let go to move to the neighbour it reveals")))
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("‹ / ›"), descStyle.Render("Click the side arrows to step back or forward")))
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("━━"), descStyle.Render("Click a progress bar to jump to that story")))
	help.WriteString(fmt.Sprintf("  %s%s\n", keyStyle.Render("wheel"), descStyle.Render("Scroll to step through stories")))
	help.WriteString("\n")

	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("  Lit progress bars mark the stories up to the current one."))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	for _, b := range []key.Binding{keys.Help, keys.Pager, keys.Quit} {
		line(b)
	}

	return help.String()
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("release terminal: %w", err)
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
