package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sinkhole/internal/core"
	"github.com/vovakirdan/sinkhole/internal/games/sinkhole"
	"github.com/vovakirdan/sinkhole/internal/registry"
	"github.com/vovakirdan/sinkhole/internal/storage"
)

// holdDuration is how long a key press counts as held without a repeat.
const holdDuration = 300 * time.Millisecond

// footerHeight is the number of rows reserved for the help line.
const footerHeight = 1

// summarizer is implemented by games that can describe a run for storage.
type summarizer interface {
	Summary() sinkhole.Summary
}

// resizer is implemented by games that survive a terminal resize.
type resizer interface {
	Resize(width, height int)
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	player    string
	keys      KeyMap
	help      help.Model
	held      *HeldKeys
	input     core.InputFrame
	mouseDown bool
	gameState core.GameState
	quitting  bool
	saved     bool // run of the current defeat already stored

	// embedded models hand control back to a session instead of quitting.
	embedded   bool
	backToMenu bool
}

// NewModel creates a model for game. store may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:  store,
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "sinkhole"}),
		config: cfg,
		player: "local",
		keys:   DefaultKeyMap(),
		help:   help.New(),
		held:   NewHeldKeys(int(holdDuration.Seconds() * float64(cfg.TickRate))),
		input:  core.NewInputFrame(),
	}
}

// WithPlayer sets the name stored with finished runs.
func (m Model) WithPlayer(name string) Model {
	m.player = name
	return m
}

// WithLogger replaces the model's logger.
func (m Model) WithLogger(l *log.Logger) Model {
	m.logger = l
	return m
}

func playHeight(h int) int {
	if h > footerHeight+1 {
		return h - footerHeight
	}
	return h
}

// gameConfig is the runtime config as seen by the game: the screen minus
// the footer.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = playHeight(cfg.ScreenH)
	return cfg
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		if m.embedded && msg.String() != "ctrl+c" {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	m.input.Set(action)
	m.held.Press(action)
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.input.SetPointer(msg.X, msg.Y)

	if msg.Button == tea.MouseButtonLeft {
		switch msg.Action {
		case tea.MouseActionPress:
			m.mouseDown = true
			m.input.Set(core.ActionFire)
		case tea.MouseActionRelease:
			m.mouseDown = false
		}
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, playHeight(msg.Height))
	} else if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.Apply(&m.input)
	if m.mouseDown {
		m.input.Hold(core.ActionFire)
	}

	result := m.game.Step(m.input)

	// Keys held into an upgrade choice must not carry over into play.
	if result.State.Choosing && !m.gameState.Choosing {
		m.held.Reset()
	}
	m.gameState = result.State

	if m.gameState.GameOver && !m.saved {
		m.saveRun()
		m.saved = true
		m.held.Reset()
	}
	if !m.gameState.GameOver {
		m.saved = false
	}

	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished run and its score. Failures are logged and
// the session continues.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}

	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
		m.logger.Warn("could not save score", "error", err)
	}

	s, ok := m.game.(summarizer)
	if !ok {
		return
	}
	id, err := m.store.SaveRun(s.Summary().Record(m.player))
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Debug("run saved", "id", id, "score", m.gameState.Score)
}

// saveScreenshot writes the current screen as text under ~/.sinkhole.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".sinkhole", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the game screen and the help footer.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.config.ScreenH > footerHeight+1 {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// BackToMenu reports whether an embedded model was left with the quit key.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the user asked to end the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts a local Bubble Tea program for game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
