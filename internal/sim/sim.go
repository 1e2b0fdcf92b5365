// Package sim implements the Cubefall simulation core: a fixed-timestep
// vertical platform-jumper with procedural world generation, landing
// physics and the cosmetic effect state machines. The package is pure game
// logic with no external dependencies; the platform layer owns timing,
// input mapping, rendering, audio and persistence.
package sim

import (
	"math/rand"

	"github.com/vovakirdan/cubefall/internal/config"
	"github.com/vovakirdan/cubefall/internal/core"
)

// Game is the single owned simulation context. All mutable state lives here
// and is mutated only inside Step, so independent instances can coexist.
type Game struct {
	cfg config.Config
	rt  core.RuntimeConfig
	rng Rand

	dt        float64 // fixed seconds per tick
	halfWidth float64 // horizontal view half-extent derived from the camera

	phase  core.Phase
	paused bool
	tick   uint64 // simulation-owned monotonic tick counter

	player Player

	platforms     []*Platform
	nextPlatformY float64
	nextIndex     uint64 // never reset: creation indices are never reused

	worldOffset float64
	score       int
	highScore   int

	glitch     Glitch
	spin       Spin
	camera     CameraIntro
	explosions []BurstParticle
	field      []FieldParticle

	introTicks int

	events []Event // per-tick scratch, reused between Steps
}

// New creates a game with the given tuning. Reset must be called before the
// first Step.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg}
}

// Reset initializes the simulation for the given runtime environment.
// Called once at startup; a game over resets the world in place instead.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	g.rt = rt
	g.dt = 1.0 / float64(rt.TickRate)
	g.halfWidth = core.HalfViewWidth(g.cfg.Camera.FOVDegrees, g.cfg.Camera.Aspect, g.cfg.Camera.Distance)

	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(rt.Seed))
	}

	g.tick = 0
	g.glitch.Duration = g.cfg.Effects.GlitchDuration
	g.spin.Speed = g.cfg.Effects.SpinSpeed
	g.camera.Duration = g.cfg.Camera.IntroTime
	g.player.Radius = g.cfg.Physics.PlayerRadius

	g.initField()
	g.resetWorld()
	g.phase = core.PhaseNotStarted
}

// SetRand replaces the random source. Call before Reset; tests use it to
// supply scripted sequences.
func (g *Game) SetRand(r Rand) {
	g.rng = r
}

// SetHighScore seeds the best score loaded from durable storage.
func (g *Game) SetHighScore(hs int) {
	if hs > g.highScore {
		g.highScore = hs
	}
}

// State returns the platform-facing summary of the simulation.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:     g.phase,
		Score:     g.score,
		HighScore: g.highScore,
		Paused:    g.paused,
	}
}

// Step advances the simulation by exactly one fixed tick.
//
// Order per tick: ambient field; the phase-specific update (input, player
// physics, platform movement, collision resolution, world generation and
// pruning, fall-out check); then the effect machines and the world-offset
// low-pass, which advance in every phase.
func (g *Game) Step(in core.InputFrame) StepResult {
	g.events = g.events[:0]
	g.tick++

	g.stepField()

	switch g.phase {
	case core.PhaseNotStarted:
		if in.Has(core.ActionStart) || in.Has(core.ActionJump) {
			g.beginRun()
		}
	case core.PhaseIntroFalling:
		g.stepIntro()
	case core.PhasePlaying:
		g.stepPlaying(in)
	}

	g.glitch.Step(g.dt)
	g.spin.Step()
	g.camera.Step(g.dt)
	g.stepExplosions()

	// The world offset chases -player.y so the player appears fixed while
	// the world scrolls. A low-pass with rate < 1 never overshoots.
	g.worldOffset += (-g.player.Pos.Y - g.worldOffset) * g.cfg.World.FollowRate

	return StepResult{State: g.State(), Events: g.events}
}

// Tick returns the simulation-owned monotonic tick counter.
func (g *Game) Tick() uint64 {
	return g.tick
}

// HalfWidth returns the horizontal view half-extent in world units.
func (g *Game) HalfWidth() float64 {
	return g.halfWidth
}

// beginRun transitions NotStarted -> IntroFalling and kicks off the camera
// vantage blend, which runs concurrently with the intro free-fall.
func (g *Game) beginRun() {
	g.phase = core.PhaseIntroFalling
	g.introTicks = 0
	g.player.Pos = core.Vec2{X: 0, Y: g.cfg.Intro.StartHeight}
	g.player.Vel = core.Vec2{}
	g.player.Grounded = false
	g.player.DoubleJump = true
	g.camera.Trigger()
	g.emit(Event{Kind: EventRunStarted})
}

// stepIntro plays the one-shot intro free-fall: an optional freeze delay,
// then a gravity-driven fall that exits early on the first platform
// collision (scored as a normal landing) or when the intro window elapses.
func (g *Game) stepIntro() {
	g.introTicks++
	if g.introTicks <= g.ticksFor(g.cfg.Intro.Delay) {
		return
	}

	p := &g.player
	p.Vel.Y -= g.gravity() * g.dt
	p.Pos = p.Pos.Add(p.Vel.Scale(g.dt))

	if g.resolveCollisions() {
		g.phase = core.PhasePlaying
		return
	}
	if g.introTicks >= g.ticksFor(g.cfg.Intro.Duration) {
		g.phase = core.PhasePlaying
	}
}

// stepPlaying runs the full gameplay tick.
func (g *Game) stepPlaying(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}

	g.stepPlayer(in)
	for _, pl := range g.platforms {
		pl.step(g.dt, g.cfg.World.SegmentGravity)
	}
	g.resolveCollisions()
	g.pruneBehind()
	g.ensureAhead()

	if g.player.Pos.Y+g.worldOffset < g.cfg.World.FalloutY {
		g.finishRun()
	}
}

// finishRun ends the run: records the high score, emits the game-over event
// and synchronously resets all mutable state back to NotStarted.
func (g *Game) finishRun() {
	final := g.score
	if final > g.highScore {
		g.highScore = final
	}
	g.emit(Event{Kind: EventGameOver, Score: final, HighScore: g.highScore})
	g.resetWorld()
	g.phase = core.PhaseNotStarted
}

// resetWorld restores every run-scoped value to its initial state and
// regenerates the starting platform set. The platform creation counter is
// deliberately not reset.
func (g *Game) resetWorld() {
	g.player.Pos = core.Vec2{}
	g.player.Vel = core.Vec2{}
	g.player.Grounded = false
	g.player.DoubleJump = true

	g.score = 0
	g.worldOffset = 0
	g.introTicks = 0
	g.paused = false

	g.glitch.reset()
	g.spin.reset()
	g.camera.reset()
	g.explosions = g.explosions[:0]

	// Every live platform is reported removed so adapters can release any
	// per-entity render state they key by creation index.
	for _, pl := range g.platforms {
		g.emit(Event{Kind: EventPlatformRemoved, PlatformIndex: pl.Index})
	}
	g.platforms = g.platforms[:0]
	g.spawnStartPlatform()
	g.nextPlatformY = Spacing(0)
	g.ensureAhead()
}

// effectiveScore maps the raw score through the difficulty preset before the
// curves see it. With progression disabled the difficulty is pinned at the
// configured bias.
func (g *Game) effectiveScore() int {
	d := g.cfg.Difficulty
	if !d.Enabled {
		return d.ScoreBias
	}
	return int(float64(g.score)*d.ScoreScale) + d.ScoreBias
}

// ticksFor converts a duration in seconds to whole ticks at the fixed step.
func (g *Game) ticksFor(seconds float64) int {
	return int(seconds/g.dt + 0.5)
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}
