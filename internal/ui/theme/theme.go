// Package theme holds the colour palette and shared lipgloss styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is a set of named colours.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
	Leaf      color.Color
	Spark     color.Color
}

// Garden is the default palette: soft greens and warm accents.
var Garden = Palette{
	Primary:   lipgloss.Color("#22C55E"), // Leaf green
	Secondary: lipgloss.Color("#38BDF8"), // Sky
	Accent:    lipgloss.Color("#F97316"), // Orange
	Success:   lipgloss.Color("#4ADE80"),
	Error:     lipgloss.Color("#F43F5E"),
	Text:      lipgloss.Color("#F8FAFC"),
	TextDim:   lipgloss.Color("#94A3B8"),
	BgDark:    lipgloss.Color("#0F172A"),
	BgCard:    lipgloss.Color("#1E293B"),
	Border:    lipgloss.Color("#334155"),
	Leaf:      lipgloss.Color("#84CC16"),
	Spark:     lipgloss.Color("#FACC15"),
}

// HighContrast trades the garden tones for pure, widely separated colours.
var HighContrast = Palette{
	Primary:   lipgloss.Color("#FFFF00"),
	Secondary: lipgloss.Color("#00FFFF"),
	Accent:    lipgloss.Color("#FF8800"),
	Success:   lipgloss.Color("#00FF00"),
	Error:     lipgloss.Color("#FF0000"),
	Text:      lipgloss.Color("#FFFFFF"),
	TextDim:   lipgloss.Color("#DDDDDD"),
	BgDark:    lipgloss.Color("#000000"),
	BgCard:    lipgloss.Color("#000000"),
	Border:    lipgloss.Color("#FFFFFF"),
	Leaf:      lipgloss.Color("#00FF00"),
	Spark:     lipgloss.Color("#FFFF00"),
}

// Active colours. Use UsePalette to switch.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
	Leaf      color.Color
	Spark     color.Color
)

// Styles built from the active palette.
var (
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Body      lipgloss.Style
	Hint      lipgloss.Style
	Card      lipgloss.Style
	Selected  lipgloss.Style
	Correct   lipgloss.Style
	Incorrect lipgloss.Style
)

func init() {
	UsePalette(Garden)
}

// UsePalette makes p the active palette and rebuilds the shared styles.
// Call it only from the update loop.
func UsePalette(p Palette) {
	Primary, Secondary, Accent = p.Primary, p.Secondary, p.Accent
	Success, Error = p.Success, p.Error
	Text, TextDim = p.Text, p.TextDim
	BgDark, BgCard, Border = p.BgDark, p.BgCard, p.Border
	Leaf, Spark = p.Leaf, p.Spark

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
}

// For returns the palette matching the high-contrast setting.
func For(highContrast bool) Palette {
	if highContrast {
		return HighContrast
	}
	return Garden
}
