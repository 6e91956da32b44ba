package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorAccent    = lipgloss.Color("#007BFF") // Back button blue
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorDim       = lipgloss.Color("#6B7280")
	colorError     = lipgloss.Color("#EF4444")
	colorLink      = lipgloss.Color("#3B82F6")
	colorSeparator = lipgloss.Color("#4B5563")
	colorCard      = lipgloss.Color("#CCCCCC")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	// Selected event card
	SelectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent).
				Padding(0, 1)

	// Unselected event card
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCard).
			Padding(0, 1)

	EventNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	DimmedStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	LabelStyle = lipgloss.NewStyle().
			Bold(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(colorLink).
			Underline(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	KeyStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(colorSeparator)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

const defaultWidth = 60

// Cursor returns the selection cursor
func Cursor() string {
	return lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true).
		Render("› ")
}

// NoCursor returns spacing for non-selected items
func NoCursor() string {
	return "  "
}

// RenderSeparator returns a horizontal separator line
func RenderSeparator(width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	return SeparatorStyle.Render(repeatChar("─", width))
}

// RenderKeyBinding formats a key binding with highlighted key
func RenderKeyBinding(key, description string) string {
	return KeyStyle.Render(key) + " " + DimmedStyle.Render(description)
}

func repeatChar(char string, n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, 0, n*len(char))
	for i := 0; i < n; i++ {
		b = append(b, char...)
	}
	return string(b)
}
