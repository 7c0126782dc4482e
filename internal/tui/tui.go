// Package tui provides a Bubble Tea terminal user interface for imgur-grabber.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/imgur-grabber/internal/config"
	"github.com/handiism/imgur-grabber/internal/grab"
	"github.com/handiism/imgur-grabber/internal/imgur"
	ioutils "github.com/handiism/imgur-grabber/internal/io"
	"github.com/handiism/imgur-grabber/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1BB76E")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	linkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// maxLogs is the number of progress events kept in the log pane.
const maxLogs = 10

// maxShownLinks bounds the links listed in the results box.
const maxShownLinks = 20

// State represents the current UI state.
type State int

const (
	StateMode State = iota
	StateInput
	StateWorking
	StateComplete
	StateError
)

// Mode is the operation picked on the first screen.
type Mode int

const (
	ModeFetch Mode = iota
	ModeAmend
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   grab.ProgressLevel
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	mode      Mode
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	validator *imgur.Validator
	logs      []LogEntry
	inputErr  string
	err       error

	// Work context
	ctx    context.Context
	cancel context.CancelFunc
	events chan tea.Msg

	// Results
	albums      []*model.Album
	amendResult *model.AmendResult
	total       int
	finished    int

	verbose bool

	width  int
	height int
}

// NewModel creates a new TUI model using settings.
func NewModel(settings *config.Settings) Model {
	if settings == nil {
		settings = config.DefaultSettings()
	}

	ti := textinput.New()
	ti.CharLimit = 2000
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#1BB76E"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateMode,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		validator: imgur.NewValidator(settings.ToValidatorConfig()),
		logs:      make([]LogEntry, 0),
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// ProgressMsg carries one event reported by the grab manager.
	ProgressMsg struct {
		Event grab.ProgressEvent
	}

	// FetchDoneMsg is sent when every album has been fetched.
	FetchDoneMsg struct {
		Albums []*model.Album
		Err    error
	}

	// AmendDoneMsg is sent when the amended file has been written.
	AmendDoneMsg struct {
		Result *model.AmendResult
		Err    error
	}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			switch m.state {
			case StateMode:
				return m, tea.Quit
			case StateInput:
				m.state = StateMode
				m.inputErr = ""
				m.textInput.Blur()
				return m, nil
			case StateWorking:
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
				return m, nil
			}

		case "enter":
			if m.state == StateInput {
				return m.submit()
			}

		case "f", "a":
			if m.state == StateMode {
				m.mode = ModeFetch
				if msg.String() == "a" {
					m.mode = ModeAmend
				}
				m.enterInput()
				return m, textinput.Blink
			}

		case "v":
			if m.state == StateMode {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateMode || m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.reset()
				return m, nil
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case ProgressMsg:
		if m.state != StateWorking {
			return m, nil
		}
		cmds = append(cmds, waitForEvent(m.events))
		if msg.Event.Level == grab.LevelSuccess || msg.Event.Level == grab.LevelError {
			m.finished++
			if m.mode == ModeFetch && m.total > 0 {
				cmds = append(cmds, m.progress.SetPercent(float64(m.finished)/float64(m.total)))
			}
		}
		if msg.Event.Level == grab.LevelVerbose && !m.verbose {
			break
		}
		m.logs = append(m.logs, LogEntry{
			Message: msg.Event.Message,
			Level:   msg.Event.Level,
		})
		if len(m.logs) > maxLogs {
			m.logs = m.logs[len(m.logs)-maxLogs:]
		}

	case FetchDoneMsg:
		if m.state != StateWorking {
			return m, nil
		}
		m.albums = msg.Albums
		if msg.Err != nil && len(msg.Albums) == 0 {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
			m.err = msg.Err
		}

	case AmendDoneMsg:
		if m.state != StateWorking {
			return m, nil
		}
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.state = StateComplete
			m.amendResult = msg.Result
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// enterInput shows the prompt for the current mode.
func (m *Model) enterInput() {
	m.state = StateInput
	m.inputErr = ""
	m.textInput.SetValue("")
	if m.mode == ModeFetch {
		m.textInput.Placeholder = m.settings.AlbumPrefix + "XXXXXXX"
	} else {
		m.textInput.Placeholder = "links.txt"
	}
	m.textInput.Focus()
}

// reset returns to the mode screen for a new run.
func (m *Model) reset() {
	m.state = StateMode
	m.logs = nil
	m.albums = nil
	m.amendResult = nil
	m.err = nil
	m.inputErr = ""
	m.total = 0
	m.finished = 0
	m.events = nil
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.progress.SetPercent(0)
	m.textInput.SetValue("")
	m.textInput.Blur()
}

// submit validates the prompt and starts the work, or re-prompts with an
// explanation.
func (m Model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.textInput.Value())

	switch m.mode {
	case ModeFetch:
		urls := grab.NewManager(m.settings, nil).ParseInputURLs(value)
		if len(urls) == 0 {
			m.inputErr = "Enter at least one album link."
			return m, nil
		}
		for _, u := range urls {
			if !m.validator.Validate(u, imgur.ModeAlbum) {
				m.inputErr = fmt.Sprintf("Not an album link: %s (expected %s...)", u, m.settings.AlbumPrefix)
				m.textInput.SetValue("")
				return m, nil
			}
		}
		m.total = len(urls)
		m.startWork()
		return m, tea.Batch(m.fetch(urls), waitForEvent(m.events), m.spinner.Tick, m.progress.SetPercent(0))

	default:
		if err := ioutils.CheckReadable(value); err != nil {
			m.inputErr = fmt.Sprintf("Cannot read %q: %v", value, err)
			m.textInput.SetValue("")
			return m, nil
		}
		m.total = 1
		m.startWork()
		return m, tea.Batch(m.amend(value), waitForEvent(m.events), m.spinner.Tick)
	}
}

func (m *Model) startWork() {
	m.state = StateWorking
	m.inputErr = ""
	m.finished = 0
	m.logs = nil
	m.events = make(chan tea.Msg)
	m.textInput.Blur()
}

// newManager creates a manager whose events are delivered to the UI.
func (m Model) newManager() *grab.Manager {
	ctx, events := m.ctx, m.events
	return grab.NewManager(m.settings, func(event grab.ProgressEvent) {
		select {
		case events <- ProgressMsg{Event: event}:
		case <-ctx.Done():
		}
	})
}

// fetch fetches every album in the background.
func (m Model) fetch(urls []string) tea.Cmd {
	manager := m.newManager()
	ctx, events := m.ctx, m.events
	return func() tea.Msg {
		albums, err := manager.FetchAll(ctx, urls)
		close(events)
		return FetchDoneMsg{Albums: albums, Err: err}
	}
}

// amend amends the file in the background.
func (m Model) amend(source string) tea.Cmd {
	manager := m.newManager()
	ctx, events := m.ctx, m.events
	return func() tea.Msg {
		result, err := manager.Amend(ctx, source)
		close(events)
		return AmendDoneMsg{Result: result, Err: err}
	}
}

// waitForEvent blocks until the next progress event arrives. It yields no
// message once the work is done and events is closed.
func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Imgur Grabber"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Collect direct image links from imgur albums"))
	b.WriteString("\n\n")

	switch m.state {
	case StateMode:
		b.WriteString(m.viewMode())
	case StateInput:
		b.WriteString(m.viewInput())
	case StateWorking:
		b.WriteString(m.viewWorking())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewMode() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("What do you want to do?"))
	b.WriteString("\n\n")
	b.WriteString("  (f) Fetch image links from album(s)\n")
	b.WriteString(fmt.Sprintf("  (a) Amend a link file with %q\n", m.settings.AmendSuffix))
	b.WriteString("\n")

	verboseCheck := "[ ]"
	if m.verbose {
		verboseCheck = "[x]"
	}
	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Verbose output (v)\n", verboseCheck))

	return b.String()
}

func (m Model) viewInput() string {
	var b strings.Builder

	if m.mode == ModeFetch {
		b.WriteString(subtitleStyle.Render("Enter album link(s):"))
	} else {
		b.WriteString(subtitleStyle.Render("Enter the name of the file to amend:"))
	}
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	if m.inputErr != "" {
		b.WriteString(errorStyle.Render(m.inputErr))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewWorking() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	if m.mode == ModeFetch {
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("Fetching %d album(s)...", m.total)))
		b.WriteString("\n\n")
		b.WriteString(m.progress.View())
		b.WriteString("\n")
		b.WriteString(infoStyle.Render(fmt.Sprintf("Albums: %d/%d", m.finished, m.total)))
	} else {
		b.WriteString(subtitleStyle.Render("Amending..."))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	if m.mode == ModeAmend {
		if m.amendResult != nil {
			b.WriteString(boxStyle.Render(m.amendResult.Summary()))
		}
		return b.String()
	}

	var body strings.Builder
	for i, album := range m.albums {
		if i > 0 {
			body.WriteString("\n\n")
		}
		body.WriteString(successStyle.Render(fmt.Sprintf("%s: %s", album.ID, album.Summary())))
		for j, link := range album.Images {
			if j == maxShownLinks {
				body.WriteString(dimStyle.Render(fmt.Sprintf("\n  ... %d more", album.Count()-maxShownLinks)))
				break
			}
			body.WriteString("\n")
			body.WriteString(linkStyle.Render("  " + link))
		}
	}
	b.WriteString(boxStyle.Render(body.String()))

	if m.err != nil {
		b.WriteString("\n\n")
		b.WriteString(warningStyle.Render("Some albums failed:"))
		b.WriteString("\n")
		b.WriteString(m.err.Error())
	}

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "-"
		switch log.Level {
		case grab.LevelError:
			style = errorStyle
			prefix = "x"
		case grab.LevelWarning:
			style = warningStyle
			prefix = "!"
		case grab.LevelSuccess:
			style = successStyle
			prefix = "+"
		case grab.LevelInfo:
			style = infoStyle
			prefix = ">"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateMode:
		return "f: fetch • a: amend • v: verbose • q: quit"
	case StateInput:
		return "enter: start • esc: back"
	case StateWorking:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: start over • q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings) error {
	p := tea.NewProgram(NewModel(settings), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
