// Package platformer wires the runtime core into a playable session: it owns
// the video memory, camera, level stream, player, effects and HUD, and runs
// them in a fixed order every tick.
package platformer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/camera"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/effects"
	"github.com/vovakirdan/tui-platformer/internal/hud"
	"github.com/vovakirdan/tui-platformer/internal/level"
	"github.com/vovakirdan/tui-platformer/internal/player"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/stream"
	"github.com/vovakirdan/tui-platformer/internal/video"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset = config.DifficultyNormal

// logger receives diagnostics from games created by the registry.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to
// normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// SetLogger sets the logger handed to games created by the registry.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Options select the level and tuning of a session.
type Options struct {
	Level *level.Level

	// Config overrides the config search when set.
	Config *config.PlatformerConfig

	Logger *log.Logger
}

// Game implements registry.Game for one level.
type Game struct {
	opts Options
	lvl  *level.Level
	cfg  config.PlatformerConfig
	base *log.Logger
	log  *log.Logger

	mem      *video.Memory
	cam      *camera.Camera
	renderer *stream.Renderer
	player   *player.Player
	effects  *effects.Manager
	hud      *hud.TopBar
	keys     core.KeyLatch

	runtime  core.RuntimeConfig
	tick     uint32
	paused   bool
	cleared  bool
	deaths   int
	goalX    int

	frames []core.Key
	digest digest
}

// New creates a game for opts.Level, or World 1-1 when it is nil. Components
// are built by Reset.
func New(opts Options) *Game {
	lvl := opts.Level
	if lvl == nil {
		lvl = level.World11
	}
	l := opts.Logger
	if l == nil {
		l = logger
	}
	return &Game{
		opts: opts,
		lvl:  lvl,
		base: l,
		log:  l.WithPrefix("game"),
	}
}

// ready builds the session on first use for callers that skip Reset.
func (g *Game) ready() {
	if g.mem == nil {
		g.Reset(core.DefaultConfig())
	}
}

// ID returns the level id.
func (g *Game) ID() string {
	return g.lvl.ID
}

// Title returns the level name.
func (g *Game) Title() string {
	if g.lvl.Name == "" {
		return g.lvl.ID
	}
	return g.lvl.Name
}

// Level returns the level being played.
func (g *Game) Level() *level.Level {
	return g.lvl
}

// Reset builds every component from scratch and starts the level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()

	streamCfg := g.cfg.Stream()
	streamCfg.Logger = g.base

	g.mem = video.NewMemory()
	g.cam = camera.New()
	g.renderer = stream.New(g.mem, g.lvl, streamCfg)
	g.effects = effects.New(g.mem, g.base)
	g.hud = hud.New(g.mem, g.lvl.ID, g.cfg.Timer())
	g.player = player.New(g.cfg.Player(), player.Deps{
		Collider: g.renderer,
		Tiles:    g.mem,
		Effects:  g.effects,
		Score:    g.hud,
		Camera:   g.cam,
		Logger:   g.base,
	})
	g.keys.Reset()

	g.tick = 0
	g.paused = false
	g.cleared = false
	g.deaths = 0
	g.goalX = (g.lvl.Length() + g.cfg.Goal.ExtraColumns) * 16
	g.frames = nil
	g.digest = newDigest()

	g.hud.Flush()
}

func (g *Game) loadConfig() config.PlatformerConfig {
	if g.opts.Config != nil {
		return *g.opts.Config
	}
	cfg, err := ResolveConfig()
	if err != nil {
		g.log.Warn("using default config", "err", err)
	}
	return cfg
}

// ResolveConfig loads the config that registry-created games play with: the
// file set by SetConfigPath (or the usual search) adjusted by the difficulty
// preset. On error the defaults are returned with the preset applied.
func ResolveConfig() (config.PlatformerConfig, error) {
	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	return cfg, err
}

// restartLevel rebuilds the level from its first column after a death. The
// committed score is carried over.
func (g *Game) restartLevel() {
	g.deaths++
	score := g.hud.Score()
	g.log.Info("restarting level", "level", g.lvl.ID, "deaths", g.deaths, "score", score)

	g.mem.Reset()
	g.cam.Reset()
	g.renderer.Reset(g.lvl)
	g.effects.Reset()
	g.hud.Reset(score)
	g.player.Reset()
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ready()
	g.frames = append(g.frames, in.Keys)
	keys := g.keys.Latch(in)

	if g.cleared {
		return core.StepResult{State: g.State(), Tick: g.tick}
	}
	if keys.IsJustPressed(core.KeyStart) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State(), Tick: g.tick}
	}

	g.tick++
	ctx := core.TickContext{Tick: g.tick, Keys: keys}

	g.renderer.Tick(g.cam.Info())

	g.player.Tick(ctx)
	if g.player.Respawned() {
		g.restartLevel()
	}

	g.hud.Tick()
	if g.hud.Expired() {
		g.player.Kill()
	}

	g.effects.Tick(ctx.Tick)
	g.cam.Commit(g.mem)
	view := g.cam.Info()
	g.effects.PostTick(ctx.Tick, view)
	g.player.PostTick(g.mem, view)
	g.hud.Flush()

	g.checkGoal()
	g.digest.add(g.tick, g.player.State(), g.hud.Score())

	return core.StepResult{State: g.State(), Tick: g.tick}
}

// checkGoal finishes the level once the player walks past its last column.
// Remaining time is converted into points.
func (g *Game) checkGoal() {
	st := g.player.State()
	if st.Anim == player.Die || st.X.Int() < g.goalX {
		return
	}
	g.cleared = true
	bonus := uint32(g.hud.Time()) * g.cfg.Goal.TimeBonus
	g.hud.AddToScore(bonus)
	// No further ticks run, so commit the bonus here.
	g.hud.Tick()
	g.hud.Flush()
	g.log.Info("level cleared", "level", g.lvl.ID, "tick", g.tick, "bonus", bonus, "score", g.hud.Score())
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	g.ready()
	return core.GameState{
		Score:    int(g.hud.Score()),
		GameOver: g.cleared,
		Paused:   g.paused,
	}
}

// Cleared reports whether the player reached the end of the level.
func (g *Game) Cleared() bool {
	return g.cleared
}

// Ticks returns the number of simulated ticks.
func (g *Game) Ticks() uint32 {
	return g.tick
}

// Frames returns the recorded input, one button word per Step call.
func (g *Game) Frames() []core.Key {
	return g.frames
}

// Memory exposes the video memory for inspection.
func (g *Game) Memory() *video.Memory {
	g.ready()
	return g.mem
}

// RegisterLevel makes a loaded level playable through the registry.
func RegisterLevel(lvl *level.Level) error {
	if err := lvl.Validate(); err != nil {
		return err
	}
	if registry.Exists(lvl.ID) {
		return fmt.Errorf("platformer: level %q already registered", lvl.ID)
	}
	registry.Register(lvl.ID, func() registry.Game {
		return New(Options{Level: lvl})
	})
	return nil
}

// Register the built-in levels with the registry
func init() {
	for _, id := range level.BuiltinIDs() {
		lvl, err := level.Builtin(id)
		if err != nil {
			panic(err)
		}
		if err := RegisterLevel(lvl); err != nil {
			panic(err)
		}
	}
}
