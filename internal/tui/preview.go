package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SuperMag99/FootPrintX/internal/dork"
	"github.com/SuperMag99/FootPrintX/internal/operator"
)

// renderPreview is the detail card for the selected dork.
func renderPreview(d dork.Dork, cat dork.Category, url string, width, height int) string {
	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := previewTitleStyle.Width(contentWidth).Render(d.Title)
	badge := engineStyle(string(d.Engine)).Render(string(d.Engine)) + "  " + itemMetaStyle.Render(d.ID)
	query := previewQueryStyle.Width(contentWidth).Render(wrapText(d.Query, contentWidth-2))
	desc := previewBodyStyle.Width(contentWidth).Render(wrapText(d.Description, contentWidth))
	ops := itemMetaStyle.Render("operators: " + operator.Analyze(d.Query).Summary())

	parts := []string{title, badge, "", query, "", desc, ops}
	for _, p := range operator.Problems(d.Query) {
		parts = append(parts, errorStyle.Render("! "+p))
	}
	if cat.Explanation != "" {
		parts = append(parts, "", categoryTitleStyle.Render(cat.Title),
			previewBodyStyle.Width(contentWidth).Render(wrapText(cat.Explanation, contentWidth)))
	}
	parts = append(parts, "", previewLinkStyle.Width(contentWidth).Render(truncateStr(url, contentWidth*2)))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)

	lines := strings.Split(content, "\n")
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}

// wrapParagraphs wraps each line of s on its own, keeping line breaks.
func wrapParagraphs(s string, width int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, l := range lines {
		lines[i] = wrapText(l, width)
	}
	return strings.Join(lines, "\n")
}
