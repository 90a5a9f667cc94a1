package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/SuperMag99/FootPrintX/internal/dork"
)

// filterBar narrows the result list to selected categories.
type filterBar struct {
	ids          []string
	titles       map[string]string
	active       map[string]bool
	filterMode   bool
	filterCursor int
}

func newFilterBar(cats []dork.Category) filterBar {
	f := filterBar{
		titles: make(map[string]string, len(cats)),
		active: make(map[string]bool),
	}
	for _, c := range cats {
		f.ids = append(f.ids, c.ID)
		f.titles[c.ID] = c.Title
	}
	return f
}

func (f *filterBar) toggle(id string) {
	if f.active[id] {
		delete(f.active, id)
	} else {
		f.active[id] = true
	}
}

func (f *filterBar) toggleCurrent() {
	if f.filterCursor < len(f.ids) {
		f.toggle(f.ids[f.filterCursor])
	}
}

func (f *filterBar) activeIDs() []string {
	if len(f.active) == 0 {
		return nil // nil = all categories
	}
	var out []string
	for _, id := range f.ids {
		if f.active[id] {
			out = append(out, id)
		}
	}
	return out
}

func (f *filterBar) apply(cats []dork.Category) []dork.Category {
	return dork.Filter(cats, f.activeIDs()...)
}

func (f *filterBar) render(width int) string {
	sep := dimStyle.Render(" · ")
	var parts []string

	if len(f.active) == 0 {
		parts = append(parts, tabActiveStyle.Render("All"))
	} else {
		parts = append(parts, tabInactiveStyle.Render("All"))
	}

	for i, id := range f.ids {
		style := tabInactiveStyle
		if f.active[id] {
			style = tabActiveStyle
		}
		label := f.titles[id]
		if f.filterMode && i == f.filterCursor {
			label = "[" + label + "]"
		}
		parts = append(parts, style.Render(label))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	return lipgloss.NewStyle().Width(width).PaddingLeft(1).Render(row)
}
