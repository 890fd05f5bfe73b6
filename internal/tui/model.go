package tui

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mosamy007/TrendyRepo/internal/model"
	"github.com/mosamy007/TrendyRepo/internal/timewindow"
)

// inputMode represents which text input, if any, currently has focus.
type inputMode int

const (
	modeList     inputMode = iota
	modeFilter             // "/" incremental filter
	modeLanguage           // "l" language qualifier
	modeToken              // "t" credential form
)

// fetchResultMsg carries a finished cycle back into the update loop.
// Generation is the value of m.generation when the cycle started; stale
// results are discarded.
type fetchResultMsg struct {
	generation int
	result     *model.TrendingResult
	err        error
}

// Model is the Bubble Tea model for the trending browser.
type Model struct {
	app App

	window   timewindow.Window
	language string

	mode       inputMode
	loading    bool
	generation int
	result     *model.TrendingResult
	fetchErr   error

	cursor int
	filter string

	input textinput.Model
	spin  spinner.Model

	windowWidth  int
	windowHeight int
	statusMsg    string
	quitting     bool
}

// NewModel creates a model for the given app wiring.
func NewModel(app App) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	ti := textinput.New()
	ti.CharLimit = 80

	return Model{
		app:          app,
		window:       app.Window,
		language:     app.Language,
		spin:         sp,
		input:        ti,
		windowWidth:  80,
		windowHeight: 24,
		generation:   1,
		loading:      true,
	}
}

// Init implements tea.Model. The first cycle is already marked loading by
// NewModel; Init only issues its command.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.fetchCmd())
}

// fetchCmd returns a command running a cycle for the current window and
// language. The closure captures the generation so a superseded cycle's
// result can be recognized.
func (m Model) fetchCmd() tea.Cmd {
	gen := m.generation
	fetch := m.app.Fetch
	window := m.window
	language := m.language

	return func() tea.Msg {
		result, err := fetch(context.Background(), window, language)
		return fetchResultMsg{generation: gen, result: result, err: err}
	}
}

// startFetch begins a new cycle, superseding any cycle still in flight.
func (m *Model) startFetch() tea.Cmd {
	m.generation++
	m.loading = true
	return m.fetchCmd()
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode != modeList {
			return m.handleInputKey(msg)
		}
		return m.handleListKey(msg)

	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil

	case fetchResultMsg:
		// A newer cycle is already running; this result no longer matters.
		if msg.generation != m.generation {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			// Keep the previous result set visible alongside the error.
			m.fetchErr = msg.err
			return m, nil
		}
		m.fetchErr = nil
		m.result = msg.result
		m.clampCursor()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case clearStatusMsg:
		m.statusMsg = ""
		return m, nil
	}

	return m, nil
}

// handleListKey processes keyboard input in list mode.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		if m.filter != "" {
			m.filter = ""
			m.clampCursor()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.visibleRepos())-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "g", "home":
		m.cursor = 0
		return m, nil

	case "G", "end":
		if n := len(m.visibleRepos()); n > 0 {
			m.cursor = n - 1
		}
		return m, nil

	case "1":
		return m.setWindow(timewindow.Daily)

	case "2":
		return m.setWindow(timewindow.Weekly)

	case "3":
		return m.setWindow(timewindow.Monthly)

	case "r":
		cmd := m.startFetch()
		return m, cmd

	case "/":
		m.mode = modeFilter
		m.input.Placeholder = "filter repositories"
		m.input.EchoMode = textinput.EchoNormal
		m.input.SetValue(m.filter)
		m.input.Focus()
		return m, textinput.Blink

	case "l":
		m.mode = modeLanguage
		m.input.Placeholder = "language (empty = all)"
		m.input.EchoMode = textinput.EchoNormal
		m.input.SetValue(m.language)
		m.input.Focus()
		return m, textinput.Blink

	case "t":
		m.mode = modeToken
		m.input.Placeholder = "GitHub token (empty = anonymous)"
		m.input.EchoMode = textinput.EchoPassword
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink

	case "enter":
		return m.openInBrowser()
	}

	return m, nil
}

// handleInputKey processes keyboard input while a text input has focus.
func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		mode := m.mode
		m.mode = modeList
		m.input.Blur()
		return m.commitInput(mode, value)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// The filter applies as you type.
	if m.mode == modeFilter {
		m.filter = m.input.Value()
		m.clampCursor()
	}

	return m, cmd
}

// commitInput applies a submitted input value.
func (m Model) commitInput(mode inputMode, value string) (tea.Model, tea.Cmd) {
	switch mode {
	case modeFilter:
		m.filter = value
		m.clampCursor()
		return m, nil

	case modeLanguage:
		if value == m.language {
			return m, nil
		}
		m.language = value
		cmd := m.startFetch()
		return m, cmd

	case modeToken:
		if m.app.SetToken != nil {
			m.app.SetToken(value)
		}
		if value == "" {
			m.statusMsg = "Using anonymous requests"
		} else {
			m.statusMsg = "Token installed"
		}
		cmd := m.startFetch()
		return m, tea.Batch(cmd, clearStatusAfter(2*time.Second))
	}

	return m, nil
}

// setWindow switches the time window and starts a new cycle.
func (m Model) setWindow(w timewindow.Window) (tea.Model, tea.Cmd) {
	m.window = w
	cmd := m.startFetch()
	return m, cmd
}

// visibleRepos returns the repositories matching the current filter, capped
// at the configured display limit.
func (m *Model) visibleRepos() []model.Repository {
	if m.result == nil {
		return nil
	}

	repos := m.result.Repositories
	if m.app.Limit > 0 && len(repos) > m.app.Limit {
		repos = repos[:m.app.Limit]
	}
	if m.filter == "" {
		return repos
	}

	needle := strings.ToLower(m.filter)
	var out []model.Repository
	for _, repo := range repos {
		if strings.Contains(strings.ToLower(repo.FullName), needle) ||
			strings.Contains(strings.ToLower(repo.Description), needle) ||
			strings.Contains(strings.ToLower(repo.Language), needle) {
			out = append(out, repo)
		}
	}
	return out
}

// clampCursor keeps the cursor inside the visible list.
func (m *Model) clampCursor() {
	n := len(m.visibleRepos())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
}

// openInBrowser opens the selected repository in the default browser.
func (m Model) openInBrowser() (tea.Model, tea.Cmd) {
	repos := m.visibleRepos()
	if len(repos) == 0 || m.cursor >= len(repos) {
		return m, nil
	}

	url := repos[m.cursor].HTMLURL
	if url == "" {
		m.statusMsg = "No URL available"
		return m, clearStatusAfter(2 * time.Second)
	}

	return m, openURL(url)
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	return renderView(m)
}

// clearStatusMsg is a message to clear the status
type clearStatusMsg struct{}

// clearStatusAfter returns a command that clears the status after a delay
func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// openURL opens a URL in the default browser
func openURL(url string) tea.Cmd {
	return func() tea.Msg {
		var cmd *exec.Cmd

		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "linux":
			cmd = exec.Command("xdg-open", url)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
		default:
			return nil
		}

		_ = cmd.Start()
		return nil
	}
}
