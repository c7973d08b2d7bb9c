package tui

import "github.com/charmbracelet/lipgloss"

// Dashboard palette.
var (
	ColorNavy   = lipgloss.Color("#10141F")
	ColorAccent = lipgloss.Color("#6EE7B7")
	ColorSky    = lipgloss.Color("#7DD3FC")
	ColorAmber  = lipgloss.Color("#FBBF24")
	ColorRed    = lipgloss.Color("#F87171")
	ColorDim    = lipgloss.Color("244")
	ColorWhite  = lipgloss.Color("#D8DEE9")
)

var (
	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim).
			Padding(0, 1)

	activeSectionStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorAccent).
				Padding(0, 1)

	pageTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	tabStyle = lipgloss.NewStyle().
			Foreground(ColorDim).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(ColorNavy).
			Background(ColorAccent).
			Bold(true).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Foreground(ColorDim)
	valueStyle = lipgloss.NewStyle().Foreground(ColorSky)
	unitStyle  = lipgloss.NewStyle().Foreground(ColorDim)

	helpStyle = lipgloss.NewStyle().Foreground(ColorDim)

	statusBarStyle = lipgloss.NewStyle().
			Background(ColorNavy).
			Foreground(ColorWhite)

	qualityGoodStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	qualityFairStyle = lipgloss.NewStyle().Foreground(ColorAmber).Bold(true)
	qualityPoorStyle = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
)

// qualityStyle picks the style for a signal-quality label.
func qualityStyle(label string) lipgloss.Style {
	switch label {
	case "GOOD":
		return qualityGoodStyle
	case "FAIR":
		return qualityFairStyle
	default:
		return qualityPoorStyle
	}
}
