package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// lifeOS theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconTask     = "📋"
	IconDone     = "✅"
	IconSkip     = "⏭️"
	IconPending  = "⬜"
	IconStreak   = "🔥"
	IconCalendar = "📅"
	IconNote     = "📝"
	IconMoney    = "💰"
	IconDrop     = "💧"
	IconSleep    = "😴"
	IconPin      = "📍"
	IconInfo     = "ℹ️"
	IconWarn     = "⚠️"
	IconError    = "🧨"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

func StatusText(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "completed":
		return Good.Render("completed")
	case "skipped":
		return Muted.Render("skipped")
	case "pending":
		return Warn.Render("pending")
	default:
		return Muted.Render(status)
	}
}

func StatusIcon(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "completed":
		return IconDone
	case "skipped":
		return IconSkip
	default:
		return IconPending
	}
}
