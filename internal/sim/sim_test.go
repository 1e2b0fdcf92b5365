package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/cubefall/internal/config"
	"github.com/vovakirdan/cubefall/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New(config.Default())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func findEvent(events []Event, kind EventKind) (Event, bool) {
	for _, e := range events {
		if e.Kind == kind {
			return e, true
		}
	}
	return Event{}, false
}

func TestResetSpawnsWorld(t *testing.T) {
	g := newTestGame(t)

	if g.State().Phase != core.PhaseNotStarted {
		t.Fatalf("fresh game phase = %v, expected NotStarted", g.State().Phase)
	}
	if len(g.platforms) != g.cfg.World.Lookahead {
		t.Fatalf("platform count = %d, expected lookahead %d", len(g.platforms), g.cfg.World.Lookahead)
	}

	start := g.platforms[0]
	if start.X != 0 || start.Y != 0 {
		t.Errorf("start platform at (%f, %f), expected origin", start.X, start.Y)
	}
	if len(start.Segments) != g.cfg.World.StartSegments {
		t.Errorf("start platform has %d segments, expected %d", len(start.Segments), g.cfg.World.StartSegments)
	}
	if g.player.Pos != (core.Vec2{}) {
		t.Errorf("player spawned at %v, expected origin", g.player.Pos)
	}
}

func TestStartRunEntersIntro(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(frame(core.ActionStart))

	if res.State.Phase != core.PhaseIntroFalling {
		t.Fatalf("phase after start = %v, expected IntroFalling", res.State.Phase)
	}
	if _, ok := findEvent(res.Events, EventRunStarted); !ok {
		t.Error("expected a RunStarted event")
	}
	if g.player.Pos.X != 0 || g.player.Pos.Y != g.cfg.Intro.StartHeight {
		t.Errorf("intro spawn at %v, expected (0, %f)", g.player.Pos, g.cfg.Intro.StartHeight)
	}
	if g.player.Vel != (core.Vec2{}) {
		t.Errorf("intro spawn velocity = %v, expected zero", g.player.Vel)
	}
	if !g.player.DoubleJump {
		t.Error("double jump charge should be available at run start")
	}
	if !g.camera.Active {
		t.Error("camera intro blend should be running")
	}
}

func TestIntroDelayFreezesPlayer(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionStart))

	empty := core.NewInputFrame()
	freezeTicks := g.ticksFor(g.cfg.Intro.Delay)
	for i := 0; i < freezeTicks; i++ {
		g.Step(empty)
		if g.player.Pos.Y != g.cfg.Intro.StartHeight {
			t.Fatalf("player moved during intro delay at tick %d: y = %f", i+1, g.player.Pos.Y)
		}
	}

	g.Step(empty)
	if g.player.Pos.Y >= g.cfg.Intro.StartHeight {
		t.Errorf("player should fall after the intro delay, y = %f", g.player.Pos.Y)
	}
}

func TestIntroEndsOnFirstLanding(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionStart))

	empty := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		res := g.Step(empty)
		if ev, ok := findEvent(res.Events, EventLanded); ok {
			if res.State.Phase != core.PhasePlaying {
				t.Fatalf("phase on landing = %v, expected Playing", res.State.Phase)
			}
			if ev.Score != 1 {
				t.Errorf("first landing score = %d, expected 1", ev.Score)
			}
			if g.player.Vel.Y != g.cfg.Physics.JumpVelocity {
				t.Errorf("landing bounce velocity = %f, expected %f", g.player.Vel.Y, g.cfg.Physics.JumpVelocity)
			}
			if !g.player.DoubleJump {
				t.Error("landing should restore the double jump charge")
			}
			return
		}
	}
	t.Fatal("intro fall never landed")
}

func TestSegmentRewardsOnlyOnce(t *testing.T) {
	g := newTestGame(t)
	g.phase = core.PhasePlaying
	g.platforms = g.platforms[:0]
	g.nextPlatformY = 1000 // keep generated platforms out of the way
	seg := Segment{Offset: 0, Y: 0, Color: core.ColorBrightCyan}
	g.platforms = append(g.platforms, &Platform{Index: 99, Segments: []Segment{seg}})

	g.player.Pos = core.Vec2{X: 0, Y: 1}
	g.player.Vel = core.Vec2{}

	empty := core.NewInputFrame()
	landed := false
	for i := 0; i < 120 && !landed; i++ {
		res := g.Step(empty)
		_, landed = findEvent(res.Events, EventLanded)
	}
	if !landed {
		t.Fatal("player never landed on the test segment")
	}
	hit := &g.platforms[0].Segments[0]
	if !hit.Hit || !hit.Falling {
		t.Fatalf("landed segment Hit=%v Falling=%v, expected both true", hit.Hit, hit.Falling)
	}
	if g.score != 1 {
		t.Fatalf("score = %d after one landing, expected 1", g.score)
	}

	// Drop through the same segment again: no second reward.
	g.player.Pos = core.Vec2{X: 0, Y: 1}
	g.player.Vel = core.Vec2{}
	for i := 0; i < 300 && g.player.Pos.Y > -2; i++ {
		res := g.Step(empty)
		if _, ok := findEvent(res.Events, EventLanded); ok {
			t.Fatal("hit segment granted a second landing")
		}
	}
	if g.score != 1 {
		t.Errorf("score = %d, expected to stay 1", g.score)
	}
}

func TestLandedEventPitch(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionStart))

	empty := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		res := g.Step(empty)
		if ev, ok := findEvent(res.Events, EventLanded); ok {
			want := 1 + math.Min(float64(ev.Score)*0.01, 1)
			if math.Abs(ev.Pitch-want) > 1e-9 {
				t.Errorf("landing pitch = %f, expected %f", ev.Pitch, want)
			}
			return
		}
	}
	t.Fatal("no landing observed")
}

func TestDoubleJumpConsumesCharge(t *testing.T) {
	g := newTestGame(t)
	g.phase = core.PhasePlaying
	g.platforms = g.platforms[:0]
	g.nextPlatformY = 1000
	g.player.Pos = core.Vec2{X: 0, Y: 30}
	g.player.Vel = core.Vec2{}

	res := g.Step(frame(core.ActionJump))

	if _, ok := findEvent(res.Events, EventDoubleJumped); !ok {
		t.Fatal("expected a DoubleJumped event")
	}
	want := g.cfg.Physics.DoubleJumpVelocity - g.gravity()*g.dt
	if math.Abs(g.player.Vel.Y-want) > 1e-9 {
		t.Errorf("velocity after double jump = %f, expected %f", g.player.Vel.Y, want)
	}
	if g.player.DoubleJump {
		t.Error("double jump charge should be consumed")
	}
	if !g.spin.Active {
		t.Error("double jump should trigger a spin")
	}

	// A second press while airborne does nothing.
	res = g.Step(frame(core.ActionJump))
	if _, ok := findEvent(res.Events, EventDoubleJumped); ok {
		t.Error("double jump fired twice without a landing")
	}
}

func TestHorizontalWrap(t *testing.T) {
	g := newTestGame(t)
	g.phase = core.PhasePlaying
	g.platforms = g.platforms[:0]
	g.nextPlatformY = 1000
	g.player.Pos = core.Vec2{X: g.halfWidth - 0.01, Y: 30}

	g.Step(frame(core.ActionRight))

	if g.player.Pos.X > 0 {
		t.Errorf("player x = %f, expected wrap to the left edge", g.player.Pos.X)
	}
	if g.player.Pos.X < -g.halfWidth {
		t.Errorf("player x = %f wrapped past -%f", g.player.Pos.X, g.halfWidth)
	}
}

func TestFreeFallGravityIsConstantPerTick(t *testing.T) {
	g := newTestGame(t)
	g.phase = core.PhasePlaying
	g.platforms = g.platforms[:0]
	g.nextPlatformY = 1000
	g.player.Pos = core.Vec2{X: 0, Y: 30}
	g.player.Vel = core.Vec2{}

	empty := core.NewInputFrame()
	prevVY := g.player.Vel.Y
	for i := 0; i < 10; i++ {
		g.Step(empty)
		delta := g.player.Vel.Y - prevVY
		want := -g.cfg.Physics.Gravity * g.dt
		if math.Abs(delta-want) > 1e-9 {
			t.Fatalf("tick %d velocity delta = %f, expected %f", i+1, delta, want)
		}
		prevVY = g.player.Vel.Y
	}
}

func TestWorldOffsetConvergesWithoutOvershoot(t *testing.T) {
	g := newTestGame(t)
	g.player.Pos.Y = 5 // NotStarted: physics never moves the player

	empty := core.NewInputFrame()
	prev := g.worldOffset
	for i := 0; i < 300; i++ {
		g.Step(empty)
		if g.worldOffset >= prev {
			t.Fatalf("world offset stalled at tick %d: %f -> %f", i+1, prev, g.worldOffset)
		}
		if g.worldOffset < -5 {
			t.Fatalf("world offset overshot target at tick %d: %f", i+1, g.worldOffset)
		}
		prev = g.worldOffset
	}
	if math.Abs(g.worldOffset+5) > 1e-5 {
		t.Errorf("world offset = %f, expected convergence to -5", g.worldOffset)
	}
}

func TestFalloutEndsRunAndResets(t *testing.T) {
	g := newTestGame(t)
	g.phase = core.PhasePlaying
	g.platforms = g.platforms[:0]
	g.nextPlatformY = 1000
	g.score = 3

	empty := core.NewInputFrame()
	var over Event
	found := false
	for i := 0; i < 1200 && !found; i++ {
		res := g.Step(empty)
		over, found = findEvent(res.Events, EventGameOver)
	}
	if !found {
		t.Fatal("falling out of the world never ended the run")
	}

	if over.Score != 3 || over.HighScore != 3 {
		t.Errorf("game over event score=%d high=%d, expected 3/3", over.Score, over.HighScore)
	}
	st := g.State()
	if st.Phase != core.PhaseNotStarted {
		t.Errorf("phase after game over = %v, expected NotStarted", st.Phase)
	}
	if st.Score != 0 {
		t.Errorf("score after reset = %d, expected 0", st.Score)
	}
	if st.HighScore != 3 {
		t.Errorf("high score after reset = %d, expected 3", st.HighScore)
	}
	if len(g.explosions) != 0 {
		t.Errorf("%d explosion particles survived the reset", len(g.explosions))
	}
	if g.worldOffset != 0 {
		t.Errorf("world offset after reset = %f, expected 0", g.worldOffset)
	}
	if g.player.Pos != (core.Vec2{}) {
		t.Errorf("player after reset at %v, expected origin", g.player.Pos)
	}
	start := g.platforms[0]
	if start.X != 0 || start.Y != 0 || len(start.Segments) != g.cfg.World.StartSegments {
		t.Error("reset should respawn the canonical start platform at the origin")
	}
}

func TestHighScoreKeepsMaximum(t *testing.T) {
	g := newTestGame(t)
	g.SetHighScore(10)

	g.phase = core.PhasePlaying
	g.score = 4
	g.finishRun()
	if g.State().HighScore != 10 {
		t.Errorf("high score = %d after a worse run, expected 10", g.State().HighScore)
	}

	g.phase = core.PhasePlaying
	g.score = 15
	g.finishRun()
	if g.State().HighScore != 15 {
		t.Errorf("high score = %d after a better run, expected 15", g.State().HighScore)
	}

	g.SetHighScore(2) // loading a stale persisted value never lowers it
	if g.State().HighScore != 15 {
		t.Errorf("SetHighScore lowered the high score to %d", g.State().HighScore)
	}
}

func TestPauseFreezesPlay(t *testing.T) {
	g := newTestGame(t)
	g.phase = core.PhasePlaying
	g.player.Pos = core.Vec2{X: 0, Y: 30}

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("pause action did not pause the game")
	}
	pos := g.player.Pos

	empty := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(empty)
	}
	if g.player.Pos != pos {
		t.Errorf("player moved while paused: %v -> %v", pos, g.player.Pos)
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Fatal("second pause action did not resume")
	}
	if g.player.Pos == pos {
		t.Error("player did not move after resuming")
	}
}

func TestTickCounterAlwaysAdvances(t *testing.T) {
	g := newTestGame(t)
	empty := core.NewInputFrame()

	if g.Tick() != 0 {
		t.Fatalf("fresh tick = %d, expected 0", g.Tick())
	}
	g.Step(empty)
	g.Step(frame(core.ActionStart))
	g.Step(empty)
	if g.Tick() != 3 {
		t.Errorf("tick = %d after 3 steps, expected 3", g.Tick())
	}

	g.phase = core.PhasePlaying
	g.Step(frame(core.ActionPause))
	before := g.Tick()
	g.Step(empty)
	if g.Tick() != before+1 {
		t.Error("tick counter should advance while paused")
	}
}

func TestSameSeedReplaysIdentically(t *testing.T) {
	script := func(tick int) core.InputFrame {
		switch {
		case tick == 0:
			return frame(core.ActionStart)
		case tick >= 40 && tick < 70:
			return frame(core.ActionLeft)
		case tick == 90 || tick == 200:
			return frame(core.ActionJump)
		case tick >= 240 && tick < 260:
			return frame(core.ActionRight)
		default:
			return core.NewInputFrame()
		}
	}

	run := func() *Game {
		g := New(config.Default())
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99})
		return g
	}

	a, b := run(), run()
	for tick := 0; tick < 600; tick++ {
		ra := a.Step(script(tick))
		rb := b.Step(script(tick))
		if ra.State != rb.State {
			t.Fatalf("state diverged at tick %d: %+v vs %+v", tick, ra.State, rb.State)
		}
		if a.player.Pos != b.player.Pos {
			t.Fatalf("player position diverged at tick %d: %v vs %v", tick, a.player.Pos, b.player.Pos)
		}
		if len(a.platforms) != len(b.platforms) {
			t.Fatalf("platform count diverged at tick %d", tick)
		}
	}
}

func TestSnapshotMirrorsWorld(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionStart))
	empty := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		g.Step(empty)
	}

	snap := g.Snapshot()
	if snap.Phase != g.State().Phase {
		t.Errorf("snapshot phase %v != game phase %v", snap.Phase, g.State().Phase)
	}
	if snap.PlayerX != g.player.Pos.X || snap.PlayerY != g.player.Pos.Y {
		t.Error("snapshot player position does not match the world")
	}
	if len(snap.Platforms) != len(g.platforms) {
		t.Errorf("snapshot has %d platforms, world has %d", len(snap.Platforms), len(g.platforms))
	}
	for i, pv := range snap.Platforms {
		pl := g.platforms[i]
		if pv.Index != pl.Index {
			t.Fatalf("platform %d index mismatch", i)
		}
		for j, sv := range pv.Segments {
			if sv.X != pl.SegmentX(j) {
				t.Fatalf("platform %d segment %d x mismatch", i, j)
			}
		}
	}
	if len(snap.Field) != g.cfg.Effects.FieldCount {
		t.Errorf("snapshot field has %d particles, expected %d", len(snap.Field), g.cfg.Effects.FieldCount)
	}
	if snap.HalfWidth != g.halfWidth {
		t.Error("snapshot half width mismatch")
	}
}
