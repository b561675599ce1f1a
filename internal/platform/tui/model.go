package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// recorder is implemented by games that keep their input history.
type recorder interface {
	Frames() []core.Key
	Summary() platformer.Summary
}

// Options configures a play or watch session.
type Options struct {
	Store     *storage.Store // optional; nil disables score and replay saving
	Runtime   core.RuntimeConfig
	HoldTicks int        // ticks a key press stays down; 0 selects DefaultHoldTicks
	Playback  []core.Key // when set, the session replays these frames instead of reading keys
	Logger    *log.Logger
}

// Model is the Bubble Tea model for playing or watching a level.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      *KeyMapper
	hold      *HoldInput
	help      help.Model
	log       *log.Logger
	playback  []core.Key
	cursor    int
	gameState core.GameState
	quitting  bool
	saved     bool // run already stored for the current attempt
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	l := opts.Logger
	if l == nil {
		l = log.New(io.Discard)
	}
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		store:    opts.Store,
		config:   cfg,
		keys:     NewKeyMapper(),
		hold:     NewHoldInput(opts.HoldTicks),
		help:     h,
		log:      l.WithPrefix("tui"),
		playback: opts.Playback,
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// watching reports whether the session is a replay.
func (m Model) watching() bool {
	return m.playback != nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()
	switch {
	case key.Matches(msg, keys.Quit):
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case m.watching():
		return m, nil
	case key.Matches(msg, keys.Restart):
		m.saveRun()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.hold.Clear()
		m.saved = false
		return m, nil
	}

	k, _ := m.keys.MapKey(msg)
	m.hold.Press(k)
	return m, nil
}

// handleResize processes window resize events. The level keeps running;
// the renderer centres the playfield in whatever space is available.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var in core.InputFrame
	if m.watching() {
		if m.cursor >= len(m.playback) {
			return m, tickCmd(m.config.TickRate)
		}
		in.Keys = m.playback[m.cursor]
		m.cursor++
	} else {
		in = m.hold.Frame()
	}

	result := m.game.Step(in)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the score and recording of the current attempt once.
func (m *Model) saveRun() {
	if m.saved || m.watching() || m.store == nil {
		return
	}
	rec, ok := m.game.(recorder)
	if !ok {
		return
	}
	sum := rec.Summary()
	if sum.Ticks == 0 {
		return
	}
	m.saved = true

	_, err := m.store.SaveScore(storage.ScoreEntry{
		LevelID: sum.Level,
		Score:   int(sum.Score),
		Ticks:   int(sum.Ticks),
		Coins:   int(sum.Coins),
		Cleared: sum.Cleared,
	})
	if err != nil {
		m.log.Warn("saving score", "level", sum.Level, "err", err)
	}

	frames := rec.Frames()
	id, err := m.store.SaveReplay(storage.ReplayRecord{
		LevelID:    sum.Level,
		Frames:     platformer.EncodeFrames(frames),
		FrameCount: len(frames),
		Score:      int(sum.Score),
		Ticks:      int(sum.Ticks),
		Digest:     sum.Digest,
	})
	if err != nil {
		m.log.Warn("saving replay", "level", sum.Level, "err", err)
		return
	}
	m.log.Info("run saved", "level", sum.Level, "score", sum.Score, "replay", id)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys.Keys())
	if m.watching() {
		footer = fmt.Sprintf("replay %d/%d  q quit", m.cursor, len(m.playback))
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
