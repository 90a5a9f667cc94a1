package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/SuperMag99/FootPrintX/internal/ai"
	"github.com/SuperMag99/FootPrintX/internal/render"
)

const askTimeout = 30 * time.Second

const notConfiguredHint = "The assistant is not configured. Add an ai section with a provider and " +
	"api_key to your config, or set FOOTPRINTX_AI_KEY."

// assistantPanel is the overlay for free-text questions.
type assistantPanel struct {
	open     bool
	input    textinput.Model
	spinner  spinner.Model
	answer   viewport.Model
	asking   bool
	question string
	text     string
	mdStyle  string
}

func newAssistantPanel(mdStyle string) assistantPanel {
	ti := textinput.New()
	ti.Placeholder = "e.g. how do I find PDFs mentioning a company?"
	ti.Prompt = promptStyle.Render("? ")
	ti.CharLimit = 500

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return assistantPanel{input: ti, spinner: sp, answer: viewport.New(60, 10), mdStyle: mdStyle}
}

func (p *assistantPanel) show() tea.Cmd {
	p.open = true
	return p.input.Focus()
}

func (p *assistantPanel) hide() {
	p.open = false
	p.input.Blur()
}

// resize fits the answer viewport inside the card for a terminal of the
// given size and re-renders the current answer.
func (p *assistantPanel) resize(width, height int) {
	p.answer.Width = cardWidth(width) - 4
	h := height - 16
	if h < 3 {
		h = 3
	}
	p.answer.Height = h
	p.setAnswer(p.text)
}

func (p *assistantPanel) setAnswer(text string) {
	p.text = text
	if text == "" {
		p.answer.SetContent("")
		return
	}
	p.answer.SetContent(render.Markdown(text, p.mdStyle, p.answer.Width))
	p.answer.GotoTop()
}

// askCmd captures the assistant and question into the closure.
func askCmd(a ai.Assistant, question string, logger *zap.Logger) tea.Cmd {
	if a == nil {
		return func() tea.Msg { return answerMsg{text: notConfiguredHint} }
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
		defer cancel()
		return answerMsg{text: ai.Consult(ctx, a, question, logger)}
	}
}

func (p *assistantPanel) view(width int) string {
	w := cardWidth(width)
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("Smart Assistant")

	var b strings.Builder
	b.WriteString(title + "\n\n")
	b.WriteString(p.input.View() + "\n")
	switch {
	case p.asking:
		b.WriteString("\n" + p.spinner.View() + dimStyle.Render(" thinking..."))
	case p.text != "":
		b.WriteString("\n" + dimStyle.Render("Q: "+truncateStr(p.question, w-3)) + "\n\n")
		b.WriteString(p.answer.View())
		if !p.answer.AtBottom() {
			b.WriteString("\n" + dimStyle.Render("↓ more (pgdn)"))
		}
	}
	return cardStyle.Width(w).Render(b.String())
}
