// Package app assembles a playable game: it builds the world from
// configuration, wires input, rendering, audio, score persistence and the
// optional Dear ImGui overlay, and drives everything through ebiten.
package app

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/snek/audio"
	"github.com/plus3/snek/config"
	"github.com/plus3/snek/ecs"
	"github.com/plus3/snek/ecs/debugui"
	debugui_ebiten "github.com/plus3/snek/ecs/debugui/ebiten"
	"github.com/plus3/snek/game"
	"github.com/plus3/snek/render"
	"github.com/plus3/snek/scores"
)

// Options selects per-run behavior on top of the loaded configuration.
type Options struct {
	Seed  uint64 // food RNG seed, 0 draws a random one
	Debug bool   // enable the Dear ImGui overlay, F3 toggles visibility
	Mute  bool   // disable audio output
}

// Game owns the world, its schedulers and the platform resources for one
// session, and implements ebiten.Game.
type Game struct {
	logger *log.Logger
	config config.Config

	storage *ecs.Storage
	sim     *ecs.Scheduler
	draw    *ecs.Scheduler
	overlay *ecs.Scheduler
	screen  *ecs.Singleton[render.Screen]

	backend        *debugui_ebiten.ImguiBackend
	overlayVisible bool

	speaker *audio.Speaker
	store   *scores.Store
}

// New builds a ready-to-run game from configuration.
func New(cfg config.Config, opts Options, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.Default()
	}

	settings, err := cfg.Settings()
	if err != nil {
		return nil, err
	}

	g := &Game{logger: logger, config: cfg}

	var extra []func(*ecs.ComponentRegistry)
	if opts.Debug {
		extra = append(extra, debugui.RegisterComponents)
	}
	g.storage = game.NewWorld(settings, extra...)
	ecs.NewSingleton(g.storage, render.Window{Width: cfg.Window.Width, Height: cfg.Window.Height})
	g.screen = ecs.NewSingleton(g.storage, render.Screen{})

	chime := g.initAudio(opts.Mute)
	sink := g.initScores()

	var rng *rand.Rand
	if opts.Seed != 0 {
		rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	}

	g.sim = ecs.NewScheduler(g.storage)
	g.sim.RegisterStartup(&game.SetupSystem{})
	g.sim.Register(&InputSystem{})
	g.sim.Register(&game.OccupancySystem{})
	g.sim.Register(&game.DirectionSystem{}, ecs.Before(&game.MovementSystem{}))
	g.sim.Register(&game.MovementSystem{})
	g.sim.Register(&game.GrowthSystem{})
	g.sim.Register(&game.FoodSpawnSystem{Rand: rng})
	g.sim.Register(&game.StateSystem{Chime: chime, Runs: sink})
	g.sim.RegisterPostUpdate(&render.SizeScalingSystem{})
	g.sim.RegisterPostUpdate(&render.PositionTranslationSystem{})

	g.draw = ecs.NewScheduler(g.storage)
	g.draw.Register(&render.DrawSystem{})

	if opts.Debug {
		g.initOverlay()
	}

	return g, nil
}

// initAudio returns the chime implementation for this run. Audio failures
// leave the game silent, never broken.
func (g *Game) initAudio(mute bool) game.Chime {
	if mute {
		return game.NopChime{}
	}
	speaker, err := audio.NewSpeaker()
	if err != nil {
		g.logger.Warn("audio unavailable", "error", err)
	}
	g.speaker = speaker
	return speaker
}

// initScores opens the run store. When the database cannot be opened the game
// continues without persistence.
func (g *Game) initScores() game.RunSink {
	store, err := scores.Open(g.config.DatabasePath())
	if err != nil {
		g.logger.Warn("could not open scores database", "error", err)
		return game.NopRunSink{}
	}
	g.store = store
	return &storeSink{store: store, logger: g.logger}
}

// initOverlay creates the imgui backend, the overlay scheduler and the debug
// windows. The overlay starts visible.
func (g *Game) initOverlay() {
	backend := debugui_ebiten.NewBackend(g.config.Window.Title, g.config.Window.Width, g.config.Window.Height)
	g.backend = &backend
	g.overlayVisible = true

	ecs.NewSingleton(g.storage, debugui.ImguiInputState{})

	g.overlay = ecs.NewScheduler(g.storage)
	g.overlay.Register(&debugui.ImguiSystem{})

	spawnDebugWindows(g.storage, g.sim)
}

// Run opens the window and blocks until the player quits.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.config.Window.Width, g.config.Window.Height)
	ebiten.SetWindowTitle(g.config.Window.Title)
	return ebiten.RunGame(g)
}

// Close releases the audio device and the score store.
func (g *Game) Close() {
	if g.speaker != nil {
		g.speaker.Close()
	}
	if g.store != nil {
		if err := g.store.Close(); err != nil {
			g.logger.Error("could not close scores database", "error", err)
		}
	}
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.backend != nil && inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.overlayVisible = !g.overlayVisible
	}

	g.sim.Once(1.0 / 60.0)

	if g.overlayActive() {
		g.backend.BeginFrame()
		g.overlay.Once(0)
		g.backend.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.MustGet().Image = screen
	g.draw.Once(0)

	if g.overlayActive() {
		g.backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
	}
	return g.config.Window.Width, g.config.Window.Height
}

func (g *Game) overlayActive() bool {
	return g.backend != nil && g.overlayVisible
}

// storeSink forwards finished runs to the SQLite store.
type storeSink struct {
	store  *scores.Store
	logger *log.Logger
}

func (s *storeSink) RecordRun(run game.RunSummary) {
	entry, err := s.store.Save(run.Points, run.Length, run.Duration)
	if err != nil {
		s.logger.Error("could not save run", "error", err)
		return
	}
	s.logger.Info("run recorded",
		"id", entry.ID,
		"points", entry.Points,
		"length", entry.Length,
		"duration", entry.Duration,
	)
}
