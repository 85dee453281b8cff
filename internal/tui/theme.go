package tui

import "github.com/charmbracelet/lipgloss"

// Theme groups the lipgloss styles used by the terminal viewer.
type Theme struct {
	Name        string
	Base        lipgloss.Style
	Header      lipgloss.Style
	Card        lipgloss.Style
	FocusedCard lipgloss.Style
	Title       lipgloss.Style
	Subtitle    lipgloss.Style // foreground at roughly 62%
	Chevron     lipgloss.Style
	Body        lipgloss.Style
	Fading      lipgloss.Style
	Selected    lipgloss.Style
	Dim         lipgloss.Style
	Panic       lipgloss.Style
	Error       lipgloss.Style
	Status      lipgloss.Style
}

// DefaultTheme is used unless the caller picks another.
var DefaultTheme = Theme{
	Name:        "Default",
	Base:        lipgloss.NewStyle().Margin(0, 1),
	Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	Card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	FocusedCard: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1),
	Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true),
	Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
	Chevron:     lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
	Body:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	Fading:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	Selected:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
	Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	Panic:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
}
