package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// Theme colors
var (
	ColorCyan      = lipgloss.Color("#00d4ff")
	ColorPurple    = lipgloss.Color("#8b5cf6")
	ColorOrange    = lipgloss.Color("#f97316")
	ColorField     = lipgloss.Color("#0099cc")
	ColorError     = ColorPurple
	ColorHighlight = lipgloss.Color("#1e2d3d")
)

const (
	wordmark = "ARIABOX"
	tagline  = "KEYS IN, SEMANTICS OUT"
)

// letterGlyph holds the three rows of a block-art character.
type letterGlyph struct {
	Top string
	Mid string
	Bot string
}

var glyphs = map[rune]letterGlyph{
	'A': {Top: `▄▀▀▄`, Mid: `█▄▄█`, Bot: `█  █`},
	'R': {Top: `█▀▀▄`, Mid: `█▄▄▀`, Bot: `█  █`},
	'I': {Top: `▀█▀`, Mid: ` █ `, Bot: `▄█▄`},
	'B': {Top: `█▀▀▄`, Mid: `█▄▄▀`, Bot: `█▄▄▀`},
	'O': {Top: `▄▀▀▄`, Mid: `█  █`, Bot: `▀▄▄▀`},
	'X': {Top: `▀▄ ▄▀`, Mid: `  █  `, Bot: `▄▀ ▀▄`},
}

// buildWordmark assembles the 3-row block text for a given word.
func buildWordmark(word string) [3]string {
	var rows [3]string
	for i, ch := range word {
		g, ok := glyphs[ch]
		if !ok {
			continue
		}
		if i > 0 {
			rows[0] += " "
			rows[1] += " "
			rows[2] += " "
		}
		rows[0] += "  " + g.Top
		rows[1] += "  " + g.Mid
		rows[2] += "  " + g.Bot
	}
	return rows
}

// applyGradient colors a string with a linear gradient from colorA to colorB.
func applyGradient(s string, colorA, colorB lipgloss.Color) string {
	runes := []rune(s)
	n := len(runes)
	if n == 0 {
		return s
	}

	aR, aG, aB, _ := colorA.RGBA()
	bR, bG, bB, _ := colorB.RGBA()

	var out strings.Builder
	for i, r := range runes {
		if r == ' ' {
			out.WriteRune(r)
			continue
		}
		t := float64(i) / float64(max(n-1, 1))
		cr := uint8(float64(aR>>8)*(1-t) + float64(bR>>8)*t)
		cg := uint8(float64(aG>>8)*(1-t) + float64(bG>>8)*t)
		cb := uint8(float64(aB>>8)*(1-t) + float64(bB>>8)*t)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", cr, cg, cb)))
		out.WriteString(style.Render(string(r)))
	}
	return out.String()
}

// CompactHeaderThreshold is the terminal height below which the header
// collapses to a single line.
const CompactHeaderThreshold = 15

const defaultBannerWidth = 80

// HeaderInfo names what the window is showing: the definitions file and the
// widget in focus.
type HeaderInfo struct {
	Source string
	Widget string
}

// SourceWithHome replaces the home directory in Source with "$HOME".
func (info HeaderInfo) SourceWithHome() string {
	home := os.Getenv("HOME")
	if home != "" && strings.HasPrefix(info.Source, home) {
		return fmt.Sprintf("$HOME%s", strings.TrimPrefix(info.Source, home))
	}
	return info.Source
}

func (info *HeaderInfo) describe() string {
	if info == nil {
		return ""
	}
	return lipgloss.NewStyle().Foreground(ColorField).Render(
		fmt.Sprintf("%s ╱╱ %s", info.SourceWithHome(), info.Widget))
}

// renderCompact produces a single line: field, gradient wordmark, tagline,
// field fill, optional right-hand info, field.
func renderCompact(width int, right string) string {
	fieldChar := lipgloss.NewStyle().Foreground(ColorField).Render("╱")
	name := applyGradient(wordmark, ColorCyan, ColorPurple)
	tag := lipgloss.NewStyle().Foreground(ColorOrange).Italic(true).Render(tagline)

	fixed := 3 + 1 + ansi.StringWidth(wordmark) + 2 + ansi.StringWidth(tagline) + 1 + 3
	if right != "" {
		fixed += ansi.StringWidth(right) + 2
		right = " " + right + " "
	}
	fill := max(width-fixed, 1)

	return strings.Repeat(fieldChar, 3) + " " + name + "  " + tag + " " +
		strings.Repeat(fieldChar, fill) + right + strings.Repeat(fieldChar, 3)
}

// renderFull produces the 3-row block-art wordmark over a tagline row that
// carries right, right-aligned.
func renderFull(width int, right string) string {
	rows := buildWordmark(wordmark)
	wordmarkWidth := ansi.StringWidth(rows[0])

	tag := lipgloss.NewStyle().Foreground(ColorOrange).Italic(true).Render(tagline)
	fieldChar := lipgloss.NewStyle().Foreground(ColorField).Render("╱")
	leftFieldCharLen := 3
	leftPadLen := leftFieldCharLen + 2

	var lines []string
	for i := 0; i < 3; i++ {
		coloredRow := applyGradient(rows[i], ColorCyan, ColorPurple)
		remaining := max(width-wordmarkWidth-leftPadLen, 0)
		lines = append(lines, strings.Repeat(fieldChar, leftFieldCharLen)+coloredRow+"  "+strings.Repeat(fieldChar, remaining))
	}

	last := strings.Repeat(" ", leftPadLen) + tag
	if right != "" {
		gap := max(width-leftPadLen-ansi.StringWidth(tag)-ansi.StringWidth(right), 2)
		last += strings.Repeat(" ", gap) + right
	}
	lines = append(lines, last)

	return strings.Join(lines, "\n")
}

// PrintHeader prints a branding header (wordmark + tagline) to stdout.
// It detects terminal size and uses the compact layout on short terminals.
func PrintHeader() {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	width, height = normalizeBannerSize(width, height, err)
	writeBanner(os.Stdout, width, height)
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func writeBanner(w io.Writer, width, height int) {
	fmt.Fprintln(w, RenderBanner(width, height))
	fmt.Fprintln(w)
}

func normalizeBannerSize(width int, height int, err error) (int, int) {
	if err != nil || width <= 0 {
		width = defaultBannerWidth
	}
	if err != nil || height <= 0 {
		height = 0
	}
	return width, height
}

// RenderBanner produces a branding-only header string. It uses the compact
// layout when height < CompactHeaderThreshold.
func RenderBanner(width, height int) string {
	width = max(width, 40)
	if height > 0 && height < CompactHeaderThreshold {
		return renderCompact(width, "")
	}
	return renderFull(width, "")
}

// RenderHeader produces the window header: the banner plus the source file
// and widget being shown.
func RenderHeader(info *HeaderInfo, width int, height int) string {
	width = max(width, 40)
	if height > 0 && height < CompactHeaderThreshold {
		return renderCompact(width, info.describe())
	}
	return renderFull(width, info.describe())
}
