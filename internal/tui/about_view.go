package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SuperMag99/FootPrintX/internal/dork"
	"github.com/SuperMag99/FootPrintX/internal/render"
)

func renderAbout(width, height int) string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("About FootprintX")
	w := cardWidth(width)

	var kinds []string
	for _, k := range dork.Kinds() {
		kinds = append(kinds, k.Label())
	}
	var engines []string
	for _, e := range dork.AllEngines() {
		engines = append(engines, string(e))
	}

	body := title + "\n\n" +
		wrapText("FootprintX is a passive OSINT tool. It builds search-engine queries from the "+
			"usernames, names and email addresses you type, and everything happens locally. "+
			"Nothing is sent anywhere until you open a query in your browser.", w) + "\n\n" +
		dimStyle.Render("Modules") + "\n  " + strings.Join(kinds, ", ") + "\n\n" +
		dimStyle.Render("Engines") + "\n  " + strings.Join(engines, ", ") + "\n\n" +
		dimStyle.Render("Maintainer") + "\n  Mohammad Ghanem\n  https://github.com/SuperMag99\n\n" +
		dimStyle.Render("Feedback") + "\n  " +
		wrapText("Have an idea for a new dork module or found a bug? Open an issue on GitHub.", w-2)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, cardStyle.Width(w).Render(body))
}

func renderCopyright(width, height int) string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("License & Legal")
	w := cardWidth(width)

	body := title + "\n\n" +
		dimStyle.Render("MIT License") + "\n" +
		wrapText("Copyright (c) 2025 Mohammad Ghanem. Permission is hereby granted, free of charge, "+
			"to any person obtaining a copy of this software to deal in it without restriction, "+
			"subject to the conditions of the MIT License.", w) + "\n\n" +
		warningTitleStyle.Render(render.DisclaimerTitle) + "\n" +
		wrapText(render.Disclaimer, w) + "\n\n" +
		warningTitleStyle.Render("Usage Policy") + "\n" +
		wrapText("This tool generates search queries only. Users are responsible for compliance "+
			"with all applicable laws and Terms of Service.", w)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, cardStyle.Width(w).Render(body))
}

func cardWidth(width int) int {
	w := width - 12
	if w > 76 {
		w = 76
	}
	if w < 30 {
		w = 30
	}
	return w
}
