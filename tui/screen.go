package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// FooterKey describes a single keybinding hint shown in the footer.
type FooterKey struct {
	Key  string // display text for the key, e.g. "tab"
	Desc string // description, e.g. "next widget"
}

// Screen is implemented by each widget screen of the demo.
type Screen interface {
	// Update handles input and custom messages. Returning a different Screen
	// switches the active screen.
	Update(msg tea.Msg, w *Window) (Screen, tea.Cmd)

	// View renders the content area between header and footer.
	View(w *Window) string

	// FooterKeys returns keybinding hints shown before the base keys.
	FooterKeys(w *Window) []FooterKey

	// FooterStatus returns an optional left-side indicator. Return "" for none.
	FooterStatus(w *Window) string
}

// LineStyle returns the style and leading marker for a list row.
func LineStyle(highlighted bool) (lipgloss.Style, string) {
	if highlighted {
		marker := lipgloss.NewStyle().Foreground(ColorCyan).Background(ColorHighlight).Render("▸") +
			lipgloss.NewStyle().Background(ColorHighlight).Render(" ")
		return lipgloss.NewStyle().Background(ColorHighlight), marker
	}
	return lipgloss.NewStyle(), "  "
}
