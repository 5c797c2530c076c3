package ui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by Render.
type Styles struct {
	Title       lipgloss.Style
	Checkbox    lipgloss.Style
	Task        lipgloss.Style
	Done        lipgloss.Style
	Cursor      lipgloss.Style
	Remove      lipgloss.Style
	Count       lipgloss.Style
	FilterOn    lipgloss.Style
	FilterOff   lipgloss.Style
	Clear       lipgloss.Style
	Help        lipgloss.Style
	Placeholder lipgloss.Style
}

// DefaultStyles returns the colored terminal styles.
func DefaultStyles() Styles {
	subtle := lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	accent := lipgloss.AdaptiveColor{Light: "#AF2F2F", Dark: "#E06C75"}

	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		Checkbox:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Task:        lipgloss.NewStyle(),
		Done:        lipgloss.NewStyle().Strikethrough(true).Foreground(subtle),
		Cursor:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		Remove:      lipgloss.NewStyle().Foreground(accent),
		Count:       lipgloss.NewStyle().Foreground(subtle),
		FilterOn:    lipgloss.NewStyle().Bold(true).Underline(true),
		FilterOff:   lipgloss.NewStyle().Foreground(subtle),
		Clear:       lipgloss.NewStyle().Foreground(subtle),
		Help:        lipgloss.NewStyle().Foreground(subtle),
		Placeholder: lipgloss.NewStyle().Foreground(subtle),
	}
}

// PlainStyles returns styles that leave text untouched.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:       plain,
		Checkbox:    plain,
		Task:        plain,
		Done:        plain,
		Cursor:      plain,
		Remove:      plain,
		Count:       plain,
		FilterOn:    plain,
		FilterOff:   plain,
		Clear:       plain,
		Help:        plain,
		Placeholder: plain,
	}
}
