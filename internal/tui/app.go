package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/SuperMag99/FootPrintX/internal/ai"
	"github.com/SuperMag99/FootPrintX/internal/browser"
	"github.com/SuperMag99/FootPrintX/internal/clipboard"
	"github.com/SuperMag99/FootPrintX/internal/config"
	"github.com/SuperMag99/FootPrintX/internal/dork"
	"github.com/SuperMag99/FootPrintX/internal/render"
	"github.com/SuperMag99/FootPrintX/internal/searchurl"
	"github.com/SuperMag99/FootPrintX/internal/update"
)

type view int

const (
	viewHome view = iota
	viewInstagram
	viewPerson
	viewX
	viewLinkedIn
	viewEmail
	viewAbout
	viewCopyright
)

var viewKinds = map[view]dork.Kind{
	viewInstagram: dork.KindInstagram,
	viewPerson:    dork.KindPerson,
	viewX:         dork.KindX,
	viewLinkedIn:  dork.KindLinkedIn,
	viewEmail:     dork.KindEmail,
}

func viewFor(k dork.Kind) view {
	for v, vk := range viewKinds {
		if vk == k {
			return v
		}
	}
	return viewHome
}

func (v view) kind() (dork.Kind, bool) {
	k, ok := viewKinds[v]
	return k, ok
}

type focusPane int

const (
	focusForm focusPane = iota
	focusResults
)

// generator is the state of one generator view. It is rebuilt every time the
// view is entered, so nothing typed outlives the view.
type generator struct {
	form    form
	all     []dork.Category
	results results
	filter  filterBar
	focus   focusPane
	done    bool
}

type App struct {
	cfg       *config.Config
	assistant ai.Assistant
	logger    *zap.Logger
	version   string
	templates searchurl.Templates

	view view
	gen  *generator
	ask  assistantPanel

	width  int
	height int

	notice        string
	err           error
	updateVersion string
	updateURL     string

	copyFn      func(string) error
	openFn      func(string) error
	checkUpdate func(context.Context, string) *update.Result
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Cfg       *config.Config
	Assistant ai.Assistant
	Logger    *zap.Logger
	Version   string
}

func NewApp(opts RunOpts) *App {
	cfg := opts.Cfg
	if cfg == nil {
		cfg = &config.Config{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		cfg:         cfg,
		assistant:   opts.Assistant,
		logger:      logger,
		version:     opts.Version,
		templates:   cfg.SearchTemplates(),
		view:        viewHome,
		ask:         newAssistantPanel(markdownStyle()),
		copyFn:      clipboard.Copy,
		openFn:      browser.Open,
		checkUpdate: update.Check,
	}
}

func (a *App) Init() tea.Cmd {
	if !a.cfg.CheckUpdates {
		return nil
	}
	check := a.checkUpdate
	version := a.version
	return func() tea.Msg {
		return updateMsg{result: check(context.Background(), version)}
	}
}

func copyCmd(copyFn func(string) error, d dork.Dork) tea.Cmd {
	return func() tea.Msg {
		if err := copyFn(d.Query); err != nil {
			return errMsg{err: err}
		}
		return noticeMsg{text: "Copied " + d.ID + " to clipboard"}
	}
}

func openBrowserCmd(openFn func(string) error, url string, engine dork.Engine) tea.Cmd {
	return func() tea.Msg {
		if err := openFn(url); err != nil {
			return errMsg{err: err}
		}
		return noticeMsg{text: "Opened in " + engine.String()}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ask.resize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Clear sticky status on any keypress
		a.err = nil
		a.notice = ""
		return a.handleKey(msg)

	case answerMsg:
		a.ask.asking = false
		a.ask.setAnswer(msg.text)
		return a, nil

	case updateMsg:
		if msg.result != nil {
			a.updateVersion = msg.result.LatestVersion
			a.updateURL = msg.result.URL
		}
		return a, nil

	case noticeMsg:
		a.notice = msg.text
		return a, nil

	case errMsg:
		a.err = msg.err
		a.logger.Warn("action failed", zap.Error(msg.err))
		return a, nil

	case spinner.TickMsg:
		if a.ask.asking {
			var cmd tea.Cmd
			a.ask.spinner, cmd = a.ask.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// cursor blink and friends
	var cmds []tea.Cmd
	if a.ask.open {
		var cmd tea.Cmd
		a.ask.input, cmd = a.ask.input.Update(msg)
		cmds = append(cmds, cmd)
	} else if a.gen != nil && a.gen.focus == focusForm {
		cmds = append(cmds, a.gen.form.update(msg))
	}
	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	switch msg.String() {
	case "ctrl+c":
		return a, tea.Quit
	case "ctrl+t":
		if a.ask.open {
			a.ask.hide()
			return a, nil
		}
		return a, a.ask.show()
	}

	if a.ask.open {
		return a.handleAssistantKey(msg)
	}

	switch a.view {
	case viewHome:
		return a.handleHomeKey(msg)
	case viewAbout, viewCopyright:
		switch msg.String() {
		case "esc", "h", "backspace":
			return a, a.navigate(viewHome)
		case "q":
			return a, tea.Quit
		}
		return a, nil
	}
	return a.handleGeneratorKey(msg)
}

func (a *App) navigate(v view) tea.Cmd {
	a.view = v
	a.gen = nil
	k, ok := v.kind()
	if !ok {
		return nil
	}
	a.gen = &generator{form: newForm(k, a.cfg.PersonOptions())}
	return textinput.Blink
}

func (a *App) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "q" {
		return a, tea.Quit
	}
	for _, e := range homeMenu() {
		if e.key != key {
			continue
		}
		if key == "s" {
			return a, a.ask.show()
		}
		return a, a.navigate(e.to)
	}
	return a, nil
}

func (a *App) handleAssistantKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.ask.hide()
		return a, nil
	case "enter":
		q := strings.TrimSpace(a.ask.input.Value())
		if q == "" || a.ask.asking {
			return a, nil
		}
		a.ask.asking = true
		a.ask.question = q
		a.ask.setAnswer("")
		a.ask.input.SetValue("")
		return a, tea.Batch(askCmd(a.assistant, q, a.logger), a.ask.spinner.Tick)
	case "up", "down", "pgup", "pgdown":
		var cmd tea.Cmd
		a.ask.answer, cmd = a.ask.answer.Update(msg)
		return a, cmd
	}
	var cmd tea.Cmd
	a.ask.input, cmd = a.ask.input.Update(msg)
	return a, cmd
}

func (a *App) handleGeneratorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := a.gen
	if g == nil {
		return a, a.navigate(viewHome)
	}
	if g.filter.filterMode {
		return a.handleFilterKey(msg)
	}

	if g.focus == focusForm {
		switch msg.String() {
		case "esc":
			return a, a.navigate(viewHome)
		case "tab", "down":
			return a, g.form.next()
		case "shift+tab", "up":
			return a, g.form.prev()
		case " ":
			if g.form.onToggle() {
				g.form.flip()
				return a, nil
			}
		case "enter":
			return a, a.generate()
		}
		return a, g.form.update(msg)
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "esc", "h":
		return a, a.navigate(viewHome)
	case "j", "down":
		g.results.down()
	case "k", "up":
		g.results.up()
	case "n", "]":
		g.results.nextCategory()
	case "c", "y":
		if d, _, ok := g.results.selected(); ok {
			return a, copyCmd(a.copyFn, d)
		}
	case "o", "enter":
		if d, _, ok := g.results.selected(); ok {
			return a, openBrowserCmd(a.openFn, a.templates.For(d), d.Engine)
		}
	case "e", "i", "tab":
		g.focus = focusForm
		return a, g.form.setFocus(g.form.focus)
	case "f":
		g.filter.filterMode = true
	case "s":
		return a, a.ask.show()
	}
	return a, nil
}

func (a *App) generate() tea.Cmd {
	g := a.gen
	in, ok := g.form.submit()
	if !ok {
		return nil
	}
	cats, err := dork.Generate(g.form.kind, in)
	if err != nil {
		a.err = err
		return nil
	}
	// counts only; identity input is never logged
	a.logger.Debug("generated dorks",
		zap.String("kind", string(g.form.kind)),
		zap.Int("categories", len(cats)),
		zap.Int("dorks", dork.Count(cats)),
	)

	g.all = cats
	g.filter = newFilterBar(cats)
	g.results = newResults(cats)
	g.done = true
	if g.results.empty() {
		a.notice = "No dorks for this input"
		return nil
	}
	g.focus = focusResults
	for i := range g.form.fields {
		g.form.fields[i].input.Blur()
	}
	return nil
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := a.gen
	f := &g.filter
	switch msg.String() {
	case "esc", "f":
		f.filterMode = false
		return a, nil
	case "left", "h":
		if f.filterCursor > 0 {
			f.filterCursor--
		}
		return a, nil
	case "right", "l":
		if f.filterCursor < len(f.ids)-1 {
			f.filterCursor++
		}
		return a, nil
	case " ", "enter":
		f.toggleCurrent()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(msg.String()[0] - '1')
		if idx >= len(f.ids) {
			return a, nil
		}
		f.toggle(f.ids[idx])
	default:
		return a, nil
	}
	g.results = newResults(f.apply(g.all))
	return a, nil
}

func (a *App) withBottomBar(content string, hints string) string {
	left := a.notice
	if a.err != nil {
		left = errorStyle.Render(a.err.Error())
	}
	bar := renderStatusBar(left, hints, a.width)
	if a.height <= 1 {
		return bar
	}
	lines := strings.Split(content, "\n")
	for len(lines) < a.height-1 {
		lines = append(lines, "")
	}
	if len(lines) >= a.height {
		lines = lines[:a.height-1]
	}
	lines = append(lines, bar)
	return strings.Join(lines, "\n")
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  footprintx")
	}

	if a.ask.open {
		panel := lipgloss.Place(a.width, a.height-1, lipgloss.Center, lipgloss.Center, a.ask.view(a.width))
		return a.withBottomBar(panel, "enter ask  pgup/pgdn scroll  esc close  ctrl+c quit")
	}

	switch a.view {
	case viewHome:
		return a.withBottomBar(renderHomeScreen(a.width, a.height-1, a.updateVersion, a.updateURL),
			"1-5 generate  s assistant  a about  l license  q quit")
	case viewAbout:
		return a.withBottomBar(renderAbout(a.width, a.height-1), "esc home  q quit")
	case viewCopyright:
		return a.withBottomBar(renderCopyright(a.width, a.height-1), "esc home  q quit")
	}
	return a.generatorView()
}

func (a *App) generatorView() string {
	g := a.gen
	if g == nil {
		return ""
	}

	count := ""
	if g.done {
		count = fmt.Sprintf("%d dorks", len(g.results.dorks))
	}
	header := renderHeader("FootprintX · "+g.form.kind.Label(), count, a.width)
	formBlock := g.form.view(g.focus == focusForm)

	disclaimer := warningTitleStyle.Render(render.DisclaimerTitle+": ") +
		warningStyle.Render(truncateStr(render.Disclaimer, a.width-len(render.DisclaimerTitle)-4))

	sections := []string{header, "", formBlock, ""}
	used := lipgloss.Height(header) + lipgloss.Height(formBlock) + 2

	if g.done {
		filter := g.filter.render(a.width)
		sections = append(sections, filter)
		used += lipgloss.Height(filter)
	}

	// disclaimer + status bar + pane borders
	contentHeight := a.height - used - 1 - 1 - 2
	if contentHeight < 3 {
		contentHeight = 3
	}

	listWidth := int(float64(a.width) * 0.4)
	previewWidth := a.width - listWidth - 1

	listPane := paneStyle
	previewPane := paneStyle
	if g.focus == focusResults {
		listPane = paneActiveStyle
	}

	listContent := renderList(g.results, contentHeight, listWidth-4)
	previewContent := lipglossCenter("No dork selected", previewWidth-4, contentHeight)
	if d, cat, ok := g.results.selected(); ok {
		previewContent = renderPreview(d, cat, a.templates.For(d), previewWidth-4, contentHeight)
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		listPane.Width(listWidth-2).Height(contentHeight).Render(listContent),
		" ",
		previewPane.Width(previewWidth-2).Height(contentHeight).Render(previewContent),
	)
	sections = append(sections, panes, disclaimer)

	hints := "tab next  space toggle  enter generate  ctrl+t assistant  esc home"
	switch {
	case g.filter.filterMode:
		hints = "←/→ move  space toggle  1-9 pick  esc done"
	case g.focus == focusResults:
		hints = "j/k move  c copy  o open  f filter  e edit  s assistant  esc home"
	}

	return a.withBottomBar(lipgloss.JoinVertical(lipgloss.Left, sections...), hints)
}

// markdownStyle picks the glamour style for assistant answers once, before
// the program owns the terminal.
func markdownStyle() string {
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
