// Package tui provides the Bubble Tea frontend: the game screen, the start
// menu and the high-score table.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/platform/palette"
	"github.com/vovakirdan/term2048/internal/platform/session"
	"github.com/vovakirdan/term2048/internal/storage"
)

// Options configures a game session.
type Options struct {
	Seed    int64 // 0 = random based on time
	Width   int
	Height  int
	Store   *storage.Store // nil disables the score ledger
	Palette *palette.Palette
	Logger  *log.Logger
}

// Model is the Bubble Tea model for a run of 2048 games.
// The game is turn-based, so the model only reacts to key and resize messages.
type Model struct {
	session  *session.Session
	screen   *core.Screen
	palette  *palette.Palette
	keys     GameKeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a game model and loads the best recorded score.
func NewModel(opts Options) Model {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = core.MinScreenW, core.MinScreenH
	}
	if opts.Palette == nil {
		opts.Palette = palette.New(config.Default(), nil)
	}

	m := Model{
		session: session.New(opts.Seed, opts.Store, opts.Logger),
		screen:  core.NewScreen(opts.Width, opts.Height),
		palette: opts.Palette,
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
	}
	m.resize(opts.Width, opts.Height)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey applies one action to the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionNone {
		return m, nil
	}

	if ev := m.session.Apply(action); ev.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// resize fits the screen to the window, keeping one line for the help bar
// when there is room.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	screenH := height
	if m.showHelpBar() {
		screenH = core.MinScreenH
	}
	m.screen.Resize(width, screenH)
}

func (m Model) showHelpBar() bool {
	return m.height > core.MinScreenH
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Game().Render(m.screen)
	out := RenderScreen(m.screen, m.palette)
	if m.showHelpBar() {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// Snapshot returns the state of the game the model is running.
func (m Model) Snapshot() game.Snapshot {
	return m.session.Snapshot()
}

// Run plays one session in the alternate screen and returns its final state.
func Run(opts Options) (game.Snapshot, error) {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return model.Snapshot(), err
	}
	if m, ok := final.(Model); ok {
		return m.Snapshot(), nil
	}
	return model.Snapshot(), nil
}
