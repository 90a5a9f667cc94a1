package tui

import (
	"strings"

	"github.com/SuperMag99/FootPrintX/internal/dork"
)

// results is the generated output of one form, flattened for cursor movement.
type results struct {
	cats   []dork.Category
	dorks  []dork.Dork
	catOf  []int // category index of each dork
	cursor int
}

func newResults(cats []dork.Category) results {
	r := results{cats: cats}
	for ci, c := range cats {
		for _, d := range c.Dorks {
			r.dorks = append(r.dorks, d)
			r.catOf = append(r.catOf, ci)
		}
	}
	return r
}

func (r *results) empty() bool {
	return len(r.dorks) == 0
}

func (r *results) down() {
	if r.cursor < len(r.dorks)-1 {
		r.cursor++
	}
}

func (r *results) up() {
	if r.cursor > 0 {
		r.cursor--
	}
}

// nextCategory jumps to the first dork of the following category.
func (r *results) nextCategory() {
	if r.empty() {
		return
	}
	cur := r.catOf[r.cursor]
	for i := r.cursor + 1; i < len(r.dorks); i++ {
		if r.catOf[i] != cur {
			r.cursor = i
			return
		}
	}
}

func (r *results) selected() (dork.Dork, dork.Category, bool) {
	if r.empty() || r.cursor >= len(r.dorks) {
		return dork.Dork{}, dork.Category{}, false
	}
	return r.dorks[r.cursor], r.cats[r.catOf[r.cursor]], true
}

func truncateStr(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// renderList draws category headers and dork titles, scrolled so the cursor
// stays visible.
func renderList(r results, height, width int) string {
	if r.empty() {
		return lipglossCenter("Fill in the form and press enter", width, height)
	}
	if width < 10 {
		width = 30
	}

	var lines []string
	selLine := 0
	for i, d := range r.dorks {
		if i == 0 || r.catOf[i] != r.catOf[i-1] {
			if i > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, categoryTitleStyle.Render(truncateStr(r.cats[r.catOf[i]].Title, width)))
		}
		label := truncateStr(d.ID+"  "+d.Title, width-4)
		if i == r.cursor {
			selLine = len(lines)
			lines = append(lines, itemSelectedStyle.Render("> "+label))
		} else {
			lines = append(lines, itemTitleStyle.Render("  "+label))
		}
	}

	if height < 1 {
		height = 1
	}
	start := 0
	if selLine >= height {
		start = selLine - height + 1
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[start:end], "\n")
}

func lipglossCenter(s string, width, height int) string {
	pad := (width - len(s)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat("\n", height/3) + strings.Repeat(" ", pad) + s
}
