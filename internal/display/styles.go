package display

import "github.com/charmbracelet/lipgloss"

// palette groups every color the UI uses so the dark/light toggle is a
// single swap.
type palette struct {
	title     lipgloss.Style
	banner    lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	focused   lipgloss.Style
	primary   lipgloss.Style
	secondary lipgloss.Style
	accent    lipgloss.Style
	cursor    lipgloss.Style
	favorite  lipgloss.Style
	errBanner lipgloss.Style
	infoBox   lipgloss.Style
	help      lipgloss.Style
}

func darkPalette() palette {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#52525b")).
		Padding(1, 2)

	return palette{
		title:     lipgloss.NewStyle().Foreground(lipgloss.Color("#bae6fd")).Bold(true),
		banner:    lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("#a1a1aa")),
		value:     lipgloss.NewStyle().Foreground(lipgloss.Color("#d4d4d8")),
		focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("#fde68a")).Bold(true),
		primary:   lipgloss.NewStyle().Foreground(lipgloss.Color("#d4d4d8")),
		secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("#71717a")),
		accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("#bbf7d0")),
		cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("#bae6fd")).Bold(true),
		favorite:  lipgloss.NewStyle().Foreground(lipgloss.Color("#fde68a")),
		errBanner: lipgloss.NewStyle().Foreground(lipgloss.Color("#fca5a5")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#fca5a5")).Padding(0, 1),
		infoBox:   box,
		help:      lipgloss.NewStyle().Foreground(lipgloss.Color("#52525b")),
	}
}

func lightPalette() palette {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#a1a1aa")).
		Padding(1, 2)

	return palette{
		title:     lipgloss.NewStyle().Foreground(lipgloss.Color("#1d4ed8")).Bold(true),
		banner:    lipgloss.NewStyle().Foreground(lipgloss.Color("#475569")),
		label:     lipgloss.NewStyle().Foreground(lipgloss.Color("#52525b")),
		value:     lipgloss.NewStyle().Foreground(lipgloss.Color("#18181b")),
		focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("#b45309")).Bold(true),
		primary:   lipgloss.NewStyle().Foreground(lipgloss.Color("#18181b")),
		secondary: lipgloss.NewStyle().Foreground(lipgloss.Color("#71717a")),
		accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("#15803d")),
		cursor:    lipgloss.NewStyle().Foreground(lipgloss.Color("#1d4ed8")).Bold(true),
		favorite:  lipgloss.NewStyle().Foreground(lipgloss.Color("#b45309")),
		errBanner: lipgloss.NewStyle().Foreground(lipgloss.Color("#b91c1c")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#b91c1c")).Padding(0, 1),
		infoBox:   box,
		help:      lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")),
	}
}
