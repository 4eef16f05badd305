package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary = lipgloss.Color("#FF6B9D")
	Success = lipgloss.Color("#C3E88D")
	Warning = lipgloss.Color("#FFCB6B")
	Error   = lipgloss.Color("#F07178")
	Info    = lipgloss.Color("#82AAFF")
	Muted   = lipgloss.Color("#546E7A")
)

var (
	// Title style for the catalog header
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// StatusStyle colors a manga publication status.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "ONGOING":
		return lipgloss.NewStyle().Foreground(Info).Bold(true)
	case "END":
		return SuccessStyle
	case "HIATUS":
		return WarningStyle
	default:
		return MutedStyle
	}
}
