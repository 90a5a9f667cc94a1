package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(left, hints string, width int) string {
	if left != "" {
		left = " " + left
	}
	right := " " + hints + " "

	// statusBarStyle pads one cell on each side
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}

func renderHeader(title, right string, width int) string {
	l := headerStyle.Render(title)
	r := headerRightStyle.Render(right)
	gap := width - lipgloss.Width(l) - lipgloss.Width(r)
	if gap < 0 {
		gap = 0
	}
	return l + fmt.Sprintf("%*s", gap, "") + r
}
