package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SuperMag99/FootPrintX/internal/dork"
)

var asciiLogo = []string{
	` _____           _              _       _  __  __`,
	`|  ___|__   ___ | |_ _ __  _ __(_)_ __ | |_\ \/ /`,
	"| |_ / _ \\ / _ \\| __| '_ \\| '__| | '_ \\| __|\\  / ",
	`|  _| (_) | (_) | |_| |_) | |  | | | | | |_ /  \ `,
	`|_|  \___/ \___/ \__| .__/|_|  |_|_| |_|\__/_/\_\`,
	`                    |_|                          `,
}

// menuEntry binds a home-screen key to a view.
type menuEntry struct {
	key   string
	label string
	hint  string
	to    view
}

func homeMenu() []menuEntry {
	var out []menuEntry
	hints := map[dork.Kind]string{
		dork.KindInstagram: "profiles, mentions, tagged media",
		dork.KindPerson:    "identity, socials, documents",
		dork.KindX:         "tweets, replies, archives",
		dork.KindLinkedIn:  "profiles, employment, resumes",
		dork.KindEmail:     "exposure, breaches, pivots",
	}
	for i, k := range dork.Kinds() {
		out = append(out, menuEntry{
			key:   fmt.Sprint(i + 1),
			label: k.Label(),
			hint:  hints[k],
			to:    viewFor(k),
		})
	}
	return append(out,
		menuEntry{key: "s", label: "Smart Assistant", hint: "help refining queries", to: viewHome},
		menuEntry{key: "a", label: "About", to: viewAbout},
		menuEntry{key: "l", label: "License & Legal", to: viewCopyright},
	)
}

func renderHomeScreen(width, height int, updateVersion, updateURL string) string {
	logoStyle := lipgloss.NewStyle().Foreground(colorGreen)
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(colorText)

	var lines []string

	for _, l := range asciiLogo {
		lines = append(lines, logoStyle.Render(l))
	}
	lines = append(lines, dimStyle.Render("        passive OSINT dork generator"), "", "")

	for _, e := range homeMenu() {
		line := "   " + keyStyle.Render("["+e.key+"]") + "  " + textStyle.Render(fmt.Sprintf("%-16s", e.label))
		if e.hint != "" {
			line += dimStyle.Render(e.hint)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", "   "+keyStyle.Render("[q]")+"  "+textStyle.Render("Quit"))

	lines = append(lines, "", "   "+warningTitleStyle.Render("Legal: ")+
		warningStyle.Render("for educational and lawful security research only."))

	if updateVersion != "" {
		msg := "Update available: v" + updateVersion
		if updateURL != "" {
			msg += " → " + updateURL
		}
		lines = append(lines, "", "   "+logoStyle.Render(msg))
	}

	content := strings.Join(lines, "\n")
	contentHeight := strings.Count(content, "\n") + 1

	topPad := (height - contentHeight) / 3
	if topPad < 0 {
		topPad = 0
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top,
		strings.Repeat("\n", topPad)+content)
}
