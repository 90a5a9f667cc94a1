package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SuperMag99/FootPrintX/internal/dork"
	"github.com/SuperMag99/FootPrintX/internal/validate"
)

type field struct {
	label string
	input textinput.Model
	check func(string) error // nil for optional fields
	state validate.Field
}

type toggle struct {
	label string
	on    bool
}

// form collects the input for one identity kind. focus walks the text fields
// first, then the toggles.
type form struct {
	kind    dork.Kind
	fields  []field
	toggles []toggle
	focus   int
}

func newField(label, placeholder string, limit int, check func(string) error) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = promptStyle.Render("> ")
	ti.CharLimit = limit
	return field{label: label, input: ti, check: check}
}

func newForm(kind dork.Kind, defaults dork.PersonOptions) form {
	f := form{kind: kind}
	switch kind {
	case dork.KindInstagram:
		f.fields = []field{newField("Instagram username", "@username", 31, validate.Handle)}
	case dork.KindX:
		f.fields = []field{newField("X username", "@handle", 31, validate.Handle)}
	case dork.KindPerson:
		f.fields = []field{
			newField("First name", "John", 50, validate.Name),
			newField("Last name", "Doe", 50, validate.Name),
		}
		f.toggles = []toggle{
			{label: "Name variations", on: defaults.Variations},
			{label: "Transliteration", on: defaults.Transliterate},
		}
	case dork.KindLinkedIn:
		f.fields = []field{
			newField("Full name", "Jane Smith", 50, validate.Name),
			newField("Company (optional)", "Acme Corp", 80, nil),
			newField("Country (optional)", "Germany", 60, nil),
		}
	case dork.KindEmail:
		f.fields = []field{newField("Email address", "user@example.com", 254, validate.Email)}
	}
	f.setFocus(0)
	return f
}

func (f *form) size() int {
	return len(f.fields) + len(f.toggles)
}

func (f *form) setFocus(i int) tea.Cmd {
	n := f.size()
	if n == 0 {
		return nil
	}
	f.focus = (i%n + n) % n
	var cmd tea.Cmd
	for j := range f.fields {
		if j == f.focus {
			cmd = f.fields[j].input.Focus()
		} else {
			f.fields[j].input.Blur()
		}
	}
	return cmd
}

func (f *form) next() tea.Cmd { return f.setFocus(f.focus + 1) }
func (f *form) prev() tea.Cmd { return f.setFocus(f.focus - 1) }

func (f *form) onToggle() bool {
	return f.focus >= len(f.fields)
}

func (f *form) flip() {
	if f.onToggle() {
		t := &f.toggles[f.focus-len(f.fields)]
		t.on = !t.on
	}
}

// update feeds a key to the focused input and revalidates it.
func (f *form) update(msg tea.Msg) tea.Cmd {
	if f.onToggle() {
		return nil
	}
	fd := &f.fields[f.focus]
	var cmd tea.Cmd
	fd.input, cmd = fd.input.Update(msg)
	fd.revalidate(false)
	return cmd
}

func (fd *field) revalidate(force bool) {
	if fd.check == nil {
		return
	}
	st := validate.Check(fd.input.Value(), fd.check)
	st.Dirty = st.Dirty || fd.state.Dirty || force
	fd.state = st
}

func (f *form) value(i int) string {
	if i >= len(f.fields) {
		return ""
	}
	return f.fields[i].input.Value()
}

func (f *form) toggled(i int) bool {
	return i < len(f.toggles) && f.toggles[i].on
}

// submit validates every field and returns the builder input when all pass.
func (f *form) submit() (dork.Input, bool) {
	ok := true
	for i := range f.fields {
		f.fields[i].revalidate(true)
		if !f.fields[i].state.Valid() {
			ok = false
		}
	}
	if !ok {
		return dork.Input{}, false
	}

	in := dork.Input{}
	switch f.kind {
	case dork.KindInstagram, dork.KindX:
		in.Handle = f.value(0)
	case dork.KindPerson:
		in.FirstName = f.value(0)
		in.LastName = f.value(1)
		in.Person = dork.PersonOptions{Variations: f.toggled(0), Transliterate: f.toggled(1)}
	case dork.KindLinkedIn:
		in.Name = f.value(0)
		in.LinkedIn = dork.LinkedInOptions{Company: f.value(1), Country: f.value(2)}
	case dork.KindEmail:
		in.Email = f.value(0)
	}
	return in, true
}

func (f *form) view(active bool) string {
	var b strings.Builder
	for i, fd := range f.fields {
		ls := labelStyle
		if active && i == f.focus {
			ls = labelFocusedStyle
		}
		b.WriteString("  " + ls.Render(fd.label) + "\n")
		b.WriteString("  " + fd.input.View() + "\n")
		if msg := fd.state.Message(); msg != "" {
			b.WriteString("  " + errorStyle.Render("! "+msg) + "\n")
		}
	}
	for i, t := range f.toggles {
		box := "[ ]"
		if t.on {
			box = "[x]"
		}
		ls := labelStyle
		if active && len(f.fields)+i == f.focus {
			ls = labelFocusedStyle
		}
		b.WriteString("  " + ls.Render(box+" "+t.label) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
