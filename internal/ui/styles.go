// Package ui holds the lipgloss styles for the terminal startup output.
package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Colors
var (
	Cyan   = lipgloss.Color("#00D9FF")
	Green  = lipgloss.Color("#00FF88")
	Yellow = lipgloss.Color("#FECA57")
	Red    = lipgloss.Color("#FF6B6B")
)

var (
	ruleStyle  = lipgloss.NewStyle().Foreground(Cyan)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(Cyan)
	okStyle    = lipgloss.NewStyle().Foreground(Green)
	warnStyle  = lipgloss.NewStyle().Foreground(Yellow)
	failStyle  = lipgloss.NewStyle().Foreground(Red)
	boldStyle  = lipgloss.NewStyle().Bold(true)
)

// Banner renders the startup header: a cyan rule above and below the title.
func Banner(title string) string {
	rule := ruleStyle.Render(strings.Repeat("=", 60))
	return rule + "\n" + titleStyle.Render("  "+title) + "\n" + rule
}

func OK(s string) string   { return okStyle.Render(s) }
func Warn(s string) string { return warnStyle.Render(s) }
func Fail(s string) string { return failStyle.Render(s) }
func Bold(s string) string { return boldStyle.Render(s) }
