package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	stdoutRenderer = lipgloss.NewRenderer(os.Stdout)
	stderrRenderer = lipgloss.NewRenderer(os.Stderr)

	statusStyle = stdoutRenderer.NewStyle().Bold(true).Foreground(ColorCyan)
	errorStyle  = stderrRenderer.NewStyle().Bold(true).Foreground(ColorOrange)
	debugStyle  = stderrRenderer.NewStyle().Bold(true).Foreground(ColorPurple)
	adviceStyle = stdoutRenderer.NewStyle().Bold(true).Foreground(ColorPurple)

	debugEnabled bool
)

func writeStatus(w io.Writer, verb string, style lipgloss.Style, format string, args ...any) {
	padded := fmt.Sprintf("%12s", verb)
	styled := style.Render(padded)
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(w, "%s %s\n", styled, msg)
}

// SetDebug turns Debug output on or off.
func SetDebug(on bool) { debugEnabled = on }

// Status prints a right-aligned bold cyan verb followed by a message to stdout.
func Status(verb string, format string, args ...any) {
	StatusTo(os.Stdout, verb, format, args...)
}

// StatusTo is Status writing to w.
func StatusTo(w io.Writer, verb string, format string, args ...any) {
	writeStatus(w, verb, statusStyle, format, args...)
}

// Advice prints an accessibility advisory. Advisories are diagnostics, not
// errors.
func Advice(format string, args ...any) {
	AdviceTo(os.Stdout, format, args...)
}

// AdviceTo is Advice writing to w.
func AdviceTo(w io.Writer, format string, args ...any) {
	writeStatus(w, "advice", adviceStyle, format, args...)
}

// Error prints a right-aligned bold orange "error" followed by a message to stderr.
func Error(format string, args ...any) {
	writeStatus(os.Stderr, "error", errorStyle, format, args...)
}

// Debug prints a right-aligned bold purple "debug" line to stderr when
// debug output is enabled.
func Debug(format string, args ...any) {
	if !debugEnabled {
		return
	}
	writeStatus(os.Stderr, "debug", debugStyle, format, args...)
}
