// Package magi implements Flappy Magi: a Magi flapping through an endless
// stream of pipe pairs over a scrolling day/night landscape.
//
// All simulation runs in a 500x600 pixel world. Pixels are mapped to
// terminal cells only when rendering.
package magi

import (
	"fmt"
	"time"

	"github.com/vovakirdan/flappy-magi/internal/config"
	"github.com/vovakirdan/flappy-magi/internal/core"
)

// World dimensions in pixels.
const (
	WorldW = 500
	WorldH = 600
)

// StartPosition is where the Magi spawns on every (re)start.
var StartPosition = core.Vec2{X: 100, Y: 100}

// State is the top-level game state.
type State int

const (
	StateInGame State = iota
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateInGame:
		return "InGame"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Textures is the lookup the game draws from.
type Textures interface {
	Texture(name string) (*core.Sprite, error)
	Font(name string) (*core.Font, error)
}

// Game implements the Flappy Magi game logic.
type Game struct {
	cfg *config.Config
	tex Textures

	background *Background
	wave       *PipeWave
	magi       *Magi

	state     State
	paused    bool
	runtime   core.RuntimeConfig
	tickCount int
}

// New creates a game. Sprite sizes are taken from tex, so every texture the
// entities are sized by must be present.
func New(cfg *config.Config, tex Textures) (*Game, error) {
	magiSprite, err := tex.Texture(MagiTextureKey(FacingLevel, 0))
	if err != nil {
		return nil, fmt.Errorf("magi: cannot size player: %w", err)
	}
	top, err := tex.Texture(PipeTextureKey(RoleTop))
	if err != nil {
		return nil, fmt.Errorf("magi: cannot size pipes: %w", err)
	}
	bottom, err := tex.Texture(PipeTextureKey(RoleBottom))
	if err != nil {
		return nil, fmt.Errorf("magi: cannot size pipes: %w", err)
	}
	tile, err := tex.Texture(BackgroundTextureKey(PhaseDay))
	if err != nil {
		return nil, fmt.Errorf("magi: cannot size background: %w", err)
	}

	runtime := core.DefaultConfig()
	return &Game{
		cfg:        cfg,
		tex:        tex,
		background: NewBackground(cfg, tile.W),
		wave:       NewPipeWave(cfg, runtime.Seed, top.W, bottom.W),
		magi:       NewMagi(cfg, magiSprite.W, magiSprite.H, StartPosition, core.Vec2{}),
		runtime:    runtime,
	}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "magi"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Magi"
}

// Reset reseeds pipe placement and starts a new round.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.wave.Seed(rc.Seed)
	g.restart()
}

func (g *Game) restart() {
	g.background.Reset()
	g.wave.Reset()
	g.magi.Reset(StartPosition, core.Vec2{})
	g.state = StateInGame
	g.paused = false
	g.tickCount = 0
}

// TickDuration is the simulated time of one Step.
func (g *Game) TickDuration() time.Duration {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.state {
	case StateInGame:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}
		if g.magi.IsOnGround() {
			g.state = StateGameOver
			break
		}
		g.update(g.TickDuration(), in.Has(core.ActionJump))

	case StateGameOver:
		if in.Has(core.ActionRestart) {
			g.restart()
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) update(dt time.Duration, flap bool) {
	g.tickCount++

	g.background.Update(dt)
	g.wave.Update(dt)
	g.magi.Update(dt, flap)

	bound := g.magi.Bound()
	if g.wave.Collide(bound) {
		g.magi.Die()
	}
	g.wave.JudgeScore(bound)
}

// Current returns the top-level state.
func (g *Game) Current() State {
	return g.state
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.wave.Score(),
		GameOver: g.state == StateGameOver,
		Paused:   g.paused,
		Dead:     g.magi.IsDead(),
	}
}

// Magi returns the player entity.
func (g *Game) Magi() *Magi {
	return g.magi
}

// Wave returns the pipe stream.
func (g *Game) Wave() *PipeWave {
	return g.wave
}

// Background returns the scrolling background.
func (g *Game) Background() *Background {
	return g.background
}
