package sim

import (
	"math"

	"github.com/vovakirdan/cubefall/internal/core"
)

// Player is the bouncing cube. Owned exclusively by the simulation driver
// and mutated only inside a tick.
type Player struct {
	Pos        core.Vec2
	Vel        core.Vec2
	Radius     float64
	Grounded   bool
	DoubleJump bool // one airborne jump charge, restored per landing
}

// gravity returns the current downward acceleration magnitude: the base
// gravity softened by the score-dependent delta, never below half the base.
func (g *Game) gravity() float64 {
	base := g.cfg.Physics.Gravity
	grav := base - GravityDelta(g.effectiveScore())
	if grav < base/2 {
		grav = base / 2
	}
	return grav
}

// stepPlayer runs one physics tick for the player: horizontal input or
// friction decay, the airborne double jump, gravity, integration and the
// horizontal wrap across viewport edges.
func (g *Game) stepPlayer(in core.InputFrame) {
	p := &g.player

	switch {
	case in.Has(core.ActionLeft):
		p.Vel.X = -g.cfg.Physics.MoveSpeed
	case in.Has(core.ActionRight):
		p.Vel.X = g.cfg.Physics.MoveSpeed
	default:
		p.Vel.X *= g.cfg.Physics.Friction
	}

	if in.Has(core.ActionJump) && !p.Grounded && p.DoubleJump {
		p.Vel.Y = g.cfg.Physics.DoubleJumpVelocity
		p.DoubleJump = false
		g.spin.Trigger(g.rng)
		g.emit(Event{Kind: EventDoubleJumped})
	}

	p.Vel.Y -= g.gravity() * g.dt
	p.Pos = p.Pos.Add(p.Vel.Scale(g.dt))

	// Teleport across the horizontal edges, no bounce.
	p.Pos.X = core.WrapF(p.Pos.X, -g.halfWidth, g.halfWidth)

	p.Grounded = false
}

// resolveCollisions scans live platform segments in creation order and
// resolves the first landing, if any. Only falling or stationary players can
// land; hit segments are never collision targets again. Returns whether a
// landing occurred this tick.
func (g *Game) resolveCollisions() bool {
	p := &g.player
	if p.Vel.Y > 0 {
		return false
	}

	edge := p.Pos.Y - p.Radius
	for _, pl := range g.platforms {
		for i := range pl.Segments {
			seg := &pl.Segments[i]
			if seg.Hit {
				continue
			}
			sx := pl.SegmentX(i)
			if math.Abs(p.Pos.X-sx) > segmentHalf+p.Radius {
				continue
			}
			top := seg.Y + segmentHalf
			bottom := seg.Y - segmentHalf
			if edge > top || edge < bottom {
				continue
			}
			g.land(pl, seg, sx)
			return true
		}
	}
	return false
}

// land resolves a landing on an unhit segment: snaps the player to the
// segment top, restores the bounce and the double-jump charge, marks the
// segment hit (permanently), starts its fall-away, scores the landing and
// emits the effect-triggering event.
func (g *Game) land(pl *Platform, seg *Segment, sx float64) {
	p := &g.player
	p.Pos.Y = seg.Y + segmentHalf + p.Radius
	p.Vel.Y = g.cfg.Physics.JumpVelocity
	p.Grounded = true
	p.DoubleJump = true

	seg.Hit = true
	seg.Falling = true
	seg.FallVel = 0

	g.score++
	g.spawnExplosion(sx, seg.Y+segmentHalf, seg.Color)
	g.glitch.Trigger(g.rng)
	if g.rng.Float64() < g.cfg.Effects.TrickChance {
		g.spin.Trigger(g.rng)
	}

	pitch := 1 + math.Min(float64(g.score)*0.01, 1)
	g.emit(Event{
		Kind:          EventLanded,
		Score:         g.score,
		Pitch:         pitch,
		PlatformIndex: pl.Index,
	})
}
