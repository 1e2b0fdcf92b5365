package sim

// FieldParticle is one ambient background mote. Positions live in a
// normalized [0, 1) box the presentation adapter scales to the screen.
// The field animates in every phase so the title screen stays alive.
type FieldParticle struct {
	X, Y   float64
	VX, VY float64
}

func (g *Game) initField() {
	n := g.cfg.Effects.FieldCount
	g.field = make([]FieldParticle, n)
	for i := range g.field {
		g.field[i] = FieldParticle{
			X:  g.rng.Float64(),
			Y:  g.rng.Float64(),
			VX: (g.rng.Float64() - 0.5) * 0.04,
			VY: 0.02 + g.rng.Float64()*0.06,
		}
	}
}

func (g *Game) stepField() {
	for i := range g.field {
		f := &g.field[i]
		f.X = wrap01(f.X + f.VX*g.dt)
		f.Y = wrap01(f.Y + f.VY*g.dt)
	}
}

func wrap01(v float64) float64 {
	if v < 0 {
		return v + 1
	}
	if v >= 1 {
		return v - 1
	}
	return v
}
