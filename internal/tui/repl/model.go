// ============================================================================
// Tiny-Interpreter - Kaleidoscope front end
// ============================================================================
//
// Package:     repl
// Description: Main Bubbletea model for the interactive REPL
// Author:      Survive2
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package repl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	tinyerror "github.com/Survive2/Tiny-Interpreter/foundation/core/error"
	tinylog "github.com/Survive2/Tiny-Interpreter/foundation/core/log"
	"github.com/Survive2/Tiny-Interpreter/foundation/tiny"
	"github.com/Survive2/Tiny-Interpreter/foundation/tiny/ast"
	"github.com/Survive2/Tiny-Interpreter/foundation/tiny/parser"
	"github.com/Survive2/Tiny-Interpreter/foundation/utils/stringx"
	"github.com/Survive2/Tiny-Interpreter/pkg/core/version"
)

// Config holds REPL configuration
type Config struct {
	Prompt       string
	Precedence   *parser.PrecedenceTable
	NumberPolicy parser.NumberPolicy
	ShowTree     bool
	MaxHistory   int

	// Logger for parse sessions (default: discard, the alternate screen owns
	// the terminal)
	Logger *tinylog.Logger
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Prompt:     tiny.DefaultPrompt,
		Precedence: parser.DefaultPrecedence(),
		MaxHistory: 100,
	}
}

// Model is the Bubbletea model for the REPL
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	parsing  bool
	showTree bool

	// Components
	textarea textarea.Model
	viewport viewport.Model

	// Transcript
	entries []Entry
	stats   tiny.Stats

	// Input history
	history    []string
	historyPos int
	draft      string

	cfg Config
}

// New creates a new REPL model
func New(cfg Config) Model {
	defaults := DefaultConfig()
	if cfg.Prompt == "" {
		cfg.Prompt = defaults.Prompt
	}
	if cfg.Precedence == nil {
		cfg.Precedence = defaults.Precedence
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = defaults.MaxHistory
	}
	if cfg.Logger == nil {
		cfg.Logger = tinylog.Discard()
	}

	ta := textarea.New()
	ta.Placeholder = "def foo(a b) a*a + b;"
	ta.Focus()
	ta.CharLimit = 4000
	ta.SetWidth(80)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.KeyMap.InsertNewline.SetEnabled(false)

	return Model{
		textarea: ta,
		showTree: cfg.ShowTree,
		entries: []Entry{
			{Kind: EntryInfo, Text: "Enter definitions, externs or expressions. Operators: " + cfg.Precedence.String()},
		},
		cfg: cfg,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2 // Title + stats
		footerHeight := 6 // Input box + status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight - 2
		if viewportHeight < 3 {
			viewportHeight = 3
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.textarea.SetWidth(msg.Width - 6)
		m.updateViewportContent()

	case parsedMsg:
		m.parsing = false
		m.appendResults(msg)
		m.updateViewportContent()
		m.viewport.GotoBottom()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		return m.submit()

	case tea.KeyUp:
		m.historyPrev()
		return m, nil

	case tea.KeyDown:
		m.historyNext()
		return m, nil

	case tea.KeyCtrlL:
		m.entries = nil
		m.updateViewportContent()
		return m, nil

	case tea.KeyCtrlT:
		m.showTree = !m.showTree
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// submit records the input line and starts parsing it
func (m Model) submit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textarea.Value())
	if input == "" || m.parsing {
		return m, nil
	}

	m.entries = append(m.entries, Entry{Kind: EntryInput, Text: input})
	m.pushHistory(input)
	m.textarea.Reset()
	m.parsing = true
	m.updateViewportContent()

	return m, m.parse(input)
}

// parse runs a fresh session over one submitted line
func (m Model) parse(input string) tea.Cmd {
	opts := tiny.Options{
		Logger:       m.cfg.Logger,
		Precedence:   m.cfg.Precedence,
		NumberPolicy: m.cfg.NumberPolicy,
	}
	return func() tea.Msg {
		results, err := tiny.ParseString(input, opts)
		return parsedMsg{input: input, results: results, err: err}
	}
}

// appendResults turns parse results into transcript entries
func (m *Model) appendResults(msg parsedMsg) {
	if len(msg.results) == 0 && msg.err == nil {
		m.entries = append(m.entries, Entry{Kind: EntryInfo, Text: "(nothing to parse)"})
	}

	for _, r := range msg.results {
		switch r.Kind {
		case tiny.ResultError:
			m.stats.Errors++
			m.entries = append(m.entries, Entry{Kind: EntryError, Text: r.String()})
			continue
		case tiny.ResultDefinition:
			m.stats.Definitions++
		case tiny.ResultExtern:
			m.stats.Externs++
		case tiny.ResultTopLevel:
			m.stats.TopLevel++
		}

		m.entries = append(m.entries, Entry{Kind: EntryBanner, Text: r.Kind.Banner()})
		text := r.String()
		if m.showTree {
			text = strings.TrimRight(ast.TreeString(r.Node()), "\n")
		}
		m.entries = append(m.entries, Entry{Kind: EntryAST, Text: text})
	}

	if msg.err != nil {
		m.cfg.Logger.WarnWithErr("input stopped", msg.err, tinylog.Fields{
			"input":      stringx.Truncate(stringx.FirstLine(msg.input), 40),
			"error_code": tinyerror.GetCode(msg.err).String(),
		})
		label := "Error: "
		if tinyerror.GetSeverity(msg.err).IsFatal() {
			label = "Fatal: "
		}
		m.entries = append(m.entries, Entry{Kind: EntryError, Text: label + msg.err.Error()})
	}
}

// pushHistory appends input unless it repeats the last entry
func (m *Model) pushHistory(input string) {
	if n := len(m.history); n == 0 || m.history[n-1] != input {
		m.history = append(m.history, input)
	}
	if over := len(m.history) - m.cfg.MaxHistory; over > 0 {
		m.history = m.history[over:]
	}
	m.historyPos = len(m.history)
	m.draft = ""
}

// historyPrev recalls the previous input, saving the current draft first
func (m *Model) historyPrev() {
	if m.historyPos == 0 {
		return
	}
	if m.historyPos == len(m.history) {
		m.draft = m.textarea.Value()
	}
	m.historyPos--
	m.textarea.SetValue(m.history[m.historyPos])
}

// historyNext moves forward in history, ending at the saved draft
func (m *Model) historyNext() {
	if m.historyPos >= len(m.history) {
		return
	}
	m.historyPos++
	if m.historyPos == len(m.history) {
		m.textarea.SetValue(m.draft)
		return
	}
	m.textarea.SetValue(m.history[m.historyPos])
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(TranscriptStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(InputStyle.Width(m.width - 2).Render(m.textarea.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the title and counters
func (m Model) renderHeader() string {
	title := TitleStyle.Render("Tiny REPL") + " " + SubtitleStyle.Render("v"+version.TUI)
	counts := SubtitleStyle.Render(fmt.Sprintf("definitions %d  externs %d  expressions %d  errors %d",
		m.stats.Definitions, m.stats.Externs, m.stats.TopLevel, m.stats.Errors))
	return title + "\n" + counts
}

// renderStatusBar renders the mode and parse state
func (m Model) renderStatusBar() string {
	mode := "s-expr"
	if m.showTree {
		mode = "tree"
	}
	state := "ready"
	if m.parsing {
		state = "parsing..."
	}
	return StatusBarStyle.Width(m.width - 2).Render(
		fmt.Sprintf("%s| view: %s | history: %d | %s", m.cfg.Prompt, mode, len(m.history), state))
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "Parse"),
		RenderKeyHint("Up/Down", "History"),
		RenderKeyHint("Ctrl+T", "Tree"),
		RenderKeyHint("Ctrl+L", "Clear"),
		RenderKeyHint("Esc", "Quit"),
	}
	return strings.Join(items, "  ")
}

// updateViewportContent renders the transcript into the viewport
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		lines = append(lines, renderEntry(m.cfg.Prompt, e))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// Run starts the REPL TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
