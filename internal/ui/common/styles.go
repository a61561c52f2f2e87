package common

import (
	"github.com/charmbracelet/lipgloss"
)

// Card frame pieces
const (
	CardBack          = "▒▒"
	TopBorderStart    = "┌──"
	TopBorderEnd      = "┌──┐"
	SideBorder        = "│"
	BottomBorderStart = "└──"
	BottomBorderEnd   = "└──┘"
	HeartMark         = "♥"
	CurrentMark       = "▶"
)

// Lipgloss Styles
var (
	DocStyle      = lipgloss.NewStyle().Margin(1, 2)
	RedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	BlackStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	GrayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	FreshStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFF5C0")).Bold(true)
	CursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	CurrentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	MutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	TitleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	OverlayStyle  = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("228")).Padding(1, 2)
	FatalStyle    = OverlayStyle.BorderForeground(lipgloss.Color("9"))
	PromptStyle   = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	ButtonStyle   = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 2).Bold(true)
	DisabledStyle = ButtonStyle.Foreground(lipgloss.Color("240")).BorderForeground(lipgloss.Color("240")).Bold(false)
)
