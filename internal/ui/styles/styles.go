package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Color palette
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#10B981") // Green
	ColorAccent    = lipgloss.Color("#F59E0B") // Orange
	ColorDanger    = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorWarning   = lipgloss.Color("#F59E0B") // Orange
	ColorInfo      = lipgloss.Color("#3B82F6") // Blue

	// Text styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	// Component styles
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorPrimary).
			Padding(0, 1)

	// Dismissible error banner
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(ColorDanger).
			Padding(0, 1)

	// Persistent banner when docker cannot be reached
	UnavailableStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000")).
				Background(ColorWarning).
				Bold(true).
				Padding(0, 1)

	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	FilterInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	// Network kinds
	SystemStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	LoadingStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	// Borders and containers
	DrawerStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2).
			Background(lipgloss.Color("#1F2937"))

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(12)

	FocusedLabelStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true).
				Width(12)

	// Key binding hints
	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	DescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			SetString(" • ")

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)
)

// TableStyles returns the table styles shared by the networks table and the drawer
func TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(ColorPrimary).
		Bold(false)
	return s
}

// FlagStyle colors a yes/no/- cell
func FlagStyle(value string) lipgloss.Style {
	switch value {
	case "yes":
		return SuccessStyle
	case "no":
		return SubtitleStyle
	default:
		return LoadingStyle
	}
}
