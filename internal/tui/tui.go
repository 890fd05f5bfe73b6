// Package tui implements the interactive trending browser.
package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mosamy007/TrendyRepo/internal/model"
	"github.com/mosamy007/TrendyRepo/internal/timewindow"
)

// App wires the UI to the rest of the application. The UI never constructs
// clients or caches itself.
type App struct {
	// Fetch runs one trending cycle for the given window and language.
	Fetch func(ctx context.Context, window timewindow.Window, language string) (*model.TrendingResult, error)
	// SetToken installs a new credential for subsequent cycles.
	SetToken func(token string)
	// Authenticated reports whether a credential is currently installed.
	Authenticated func() bool

	Window   timewindow.Window
	Language string
	Limit    int
}

// Run starts the TUI and blocks until it completes.
func Run(app App) error {
	m := NewModel(app)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ShouldUseTUI returns true if the TUI should be used based on environment.
func ShouldUseTUI() bool {
	// Check if stdout is a TTY
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}

	// Check for CI environment variables
	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"JENKINS_URL",
		"TRAVIS",
		"CIRCLECI",
		"GITLAB_CI",
		"BUILDKITE",
	}

	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return false
		}
	}

	return true
}
