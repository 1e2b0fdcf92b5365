package sim

import (
	"math"

	"github.com/vovakirdan/cubefall/internal/core"
)

// BurstParticle is one fragment of a landing explosion. Particles live in
// world space and inherit the color of the segment they burst from.
type BurstParticle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Color   core.Color
}

// Alpha returns the remaining-life fraction in [0, 1]; opacity and size fade
// linearly with it.
func (p BurstParticle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return core.ClampF(1-p.Life/p.MaxLife, 0, 1)
}

// spawnExplosion emits a fixed-count particle burst radiating from the
// impact point within a narrow upward cone.
func (g *Game) spawnExplosion(x, y float64, col core.Color) {
	n := g.cfg.Effects.ExplosionCount
	for i := 0; i < n; i++ {
		ang := math.Pi/2 + (g.rng.Float64()*2-1)*0.95
		speed := 2 + g.rng.Float64()*3
		g.explosions = append(g.explosions, BurstParticle{
			X:       x,
			Y:       y,
			VX:      math.Cos(ang) * speed,
			VY:      math.Sin(ang) * speed,
			MaxLife: g.cfg.Effects.ExplosionLife,
			Color:   col,
		})
	}
}

// stepExplosions applies per-axis drag and constant downward gravity,
// integrates positions and prunes expired particles, preserving order.
func (g *Game) stepExplosions() {
	drag := g.cfg.Effects.ExplosionDrag
	gravity := g.cfg.Effects.ExplosionGravity

	alive := g.explosions[:0]
	for _, p := range g.explosions {
		p.Life += g.dt
		if p.Life >= p.MaxLife {
			continue
		}
		p.VX *= drag
		p.VY *= drag
		p.VY -= gravity * g.dt
		p.X += p.VX * g.dt
		p.Y += p.VY * g.dt
		alive = append(alive, p)
	}
	g.explosions = alive
}
