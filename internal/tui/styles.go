// Package tui holds the interactive report preview.
package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
//
//nolint:gochecknoglobals // Lip Gloss colors are shared across views.
var (
	ColorHeader = lipgloss.Color("39")
	ColorLabel  = lipgloss.Color("245")
	ColorValue  = lipgloss.Color("255")
	ColorMuted  = lipgloss.Color("240")
	ColorWarn   = lipgloss.Color("214")
)

// Shared styles.
//
//nolint:gochecknoglobals // Lip Gloss styles are shared across views.
var (
	HeaderStyle        = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle         = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle         = lipgloss.NewStyle().Bold(true).Foreground(ColorValue)
	HelpStyle          = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	WarnStyle          = lipgloss.NewStyle().Foreground(ColorWarn)
	TableHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader).Padding(0, 1)
	TableSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
)
