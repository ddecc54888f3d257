package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/depcheck/pkg/deps"
	"github.com/matzehuels/depcheck/pkg/errors"
	"github.com/matzehuels/depcheck/pkg/pipeline"
)

var (
	tuiDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	tuiValueStyle = lipgloss.NewStyle().Foreground(colorWhite)
)

// =============================================================================
// Messages
// =============================================================================

// runStartedMsg reports a run accepted by the runner.
type runStartedMsg struct {
	run *pipeline.Run
}

// snapshotMsg carries one snapshot of run.
type snapshotMsg struct {
	run    *pipeline.Run
	result deps.Result
}

// runFailedMsg reports a run that could not start.
type runFailedMsg struct {
	err error
}

// =============================================================================
// CheckModel - Interactive version check
// =============================================================================

// CheckModel is the bubbletea model for an interactive version check.
//
// The model is the only consumer of run snapshots. Snapshots whose run is
// no longer the latest one are ignored, so pressing r while a check is in
// flight never shows results of the replaced run.
type CheckModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	source string
	load   func() (string, error)

	runID    string
	declared []deps.Library
	progress string
	checked  int
	result   *deps.Result
	empty    bool
	err      error
}

// NewCheckModel creates a model that checks the script returned by load.
// load is called again on every re-run.
func NewCheckModel(ctx context.Context, runner *pipeline.Runner, source string, load func() (string, error)) CheckModel {
	return CheckModel{ctx: ctx, runner: runner, source: source, load: load}
}

func (m CheckModel) Init() tea.Cmd {
	return m.start()
}

// start returns a command that starts a new run on the runner.
func (m CheckModel) start() tea.Cmd {
	ctx, runner, source, load := m.ctx, m.runner, m.source, m.load
	return func() tea.Msg {
		text, err := load()
		if err != nil {
			return runFailedMsg{err: err}
		}
		run, err := runner.Start(ctx, source, text)
		if err != nil {
			return runFailedMsg{err: err}
		}
		return runStartedMsg{run: run}
	}
}

// waitSnapshot returns a command that reads the next snapshot of run.
func waitSnapshot(run *pipeline.Run) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-run.Snapshots
		if !ok {
			return nil
		}
		return snapshotMsg{run: run, result: res}
	}
}

func (m CheckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.runner.Cancel()
			return m, tea.Quit
		case "r":
			m.reset()
			return m, m.start()
		}

	case runStartedMsg:
		if !m.runner.Current(msg.run.ID) {
			return m, nil
		}
		m.reset()
		m.runID = msg.run.ID
		m.declared = msg.run.Declared
		return m, waitSnapshot(msg.run)

	case runFailedMsg:
		m.reset()
		if errors.Is(msg.err, errors.ErrCodeNoDeclarations) {
			m.empty = true
		} else {
			m.err = msg.err
		}
		return m, nil

	case snapshotMsg:
		if msg.run.ID != m.runID || !m.runner.Current(msg.run.ID) {
			return m, nil
		}
		if msg.result.Terminal() {
			res := msg.result
			m.result = &res
			m.progress = ""
			return m, nil
		}
		m.progress = msg.result.Progress
		m.checked++
		return m, waitSnapshot(msg.run)
	}
	return m, nil
}

func (m *CheckModel) reset() {
	m.runID = ""
	m.declared = nil
	m.progress = ""
	m.checked = 0
	m.result = nil
	m.empty = false
	m.err = nil
}

func (m CheckModel) View() string {
	var b strings.Builder

	title := appName
	if m.source != "" && m.source != "-" {
		title += " " + m.source
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(styleIconError.Render(iconError) + " " + errors.UserMessage(m.err))
	case m.empty:
		b.WriteString(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(noLibraryText))
	case m.result != nil:
		b.WriteString(renderResultTable(m.result.Declared, m.result.Resolved))
		b.WriteString("\n")
		if n := countOutdated(m.result.Declared, m.result.Resolved); n > 0 {
			b.WriteString(tuiValueStyle.Render(fmt.Sprintf("%d of %d libraries have a newer release", n, len(m.result.Declared))))
			b.WriteString("\n")
		}
		b.WriteString(styleIconSuccess.Render(iconSuccess) + " " + finishedMessage)
	case m.runID != "":
		b.WriteString(tuiValueStyle.Render(fmt.Sprintf("%d/%d", m.checked, len(m.declared))))
		if m.progress != "" {
			b.WriteString("  " + tuiDimStyle.Render(m.progress))
		}
	default:
		b.WriteString(tuiDimStyle.Render("Starting..."))
	}

	b.WriteString("\n\n")
	b.WriteString(tuiDimStyle.Render("r re-run  q quit"))
	b.WriteString("\n")
	return b.String()
}

// runInteractive runs the bubbletea check view until the user quits.
func (c *CLI) runInteractive(ctx context.Context, runner *pipeline.Runner, source string, load func() (string, error)) error {
	// Logs would corrupt the full-screen view.
	level := c.Logger.GetLevel()
	c.SetLogLevel(LogError)
	defer c.SetLogLevel(level)

	p := tea.NewProgram(NewCheckModel(ctx, runner, source, load), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	return nil
}
