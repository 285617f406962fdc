package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ladder/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ToneStyle maps a presentation tone to its text style.
func ToneStyle(tone domain.Tone) lipgloss.Style {
	switch tone {
	case domain.ToneSuccess:
		return StyleGreen
	case domain.ToneInfo:
		return StyleBlue
	case domain.ToneWarning:
		return StyleYellow
	case domain.ToneDanger:
		return StyleRed
	default:
		return StyleDim
	}
}

// toneGlyph is the bullet shown in front of a badge label.
func toneGlyph(tone domain.Tone) string {
	switch tone {
	case domain.ToneSuccess:
		return "●"
	case domain.ToneInfo:
		return "◐"
	case domain.ToneWarning:
		return "○"
	case domain.ToneDanger:
		return "✖"
	default:
		return "·"
	}
}

// Labeled is any enum value with a display label and tone.
type Labeled interface {
	Label() string
	Tone() domain.Tone
}

// Badge renders a labeled enum value as a colored pill, e.g. "● Completed".
func Badge(v Labeled) string {
	return ToneStyle(v.Tone()).Render(toneGlyph(v.Tone()) + " " + v.Label())
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len([]rune(upper)))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
