package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles used around the play field.
type Theme struct {
	// HUD styles
	HUDTitle    lipgloss.Style
	HUDValue    lipgloss.Style
	HUDControls lipgloss.Style

	// End-of-session panel
	PanelBorder lipgloss.Style
	PanelTitle  lipgloss.Style
	PanelText   lipgloss.Style
	PanelRecord lipgloss.Style

	// Level picker styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style

	// Scoreboard table
	TableHeader   lipgloss.Style
	TableSelected lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HUDTitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDControls: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		PanelBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2),
		PanelTitle:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		PanelText:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		PanelRecord: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		TableHeader: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true).
			Padding(0, 1),
		TableSelected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")),
	}
}

// MonochromeTheme returns a grayscale theme for terminals without color.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.HUDTitle = lipgloss.NewStyle().Bold(true)
	theme.PanelTitle = lipgloss.NewStyle().Bold(true)
	theme.PanelRecord = lipgloss.NewStyle().Underline(true)
	theme.MenuTitle = lipgloss.NewStyle().Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Bold(true).Reverse(true)
	theme.TableSelected = lipgloss.NewStyle().Reverse(true)
	return theme
}
