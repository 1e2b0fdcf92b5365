package sim

import "github.com/vovakirdan/cubefall/internal/core"

// SegmentView is a render-ready segment: world position, visual state and
// the spawn-assigned color.
type SegmentView struct {
	X, Y    float64
	Hit     bool
	Falling bool
	Color   core.Color
}

// PlatformView groups the segments of one platform under its stable index,
// which the adapter uses to key per-entity render state.
type PlatformView struct {
	Index    uint64
	Segments []SegmentView
}

// ParticleView is a render-ready particle. Alpha is the remaining life
// fraction in [0, 1] for burst particles, and 1 for ambient field motes.
type ParticleView struct {
	X, Y  float64
	Alpha float64
	Color core.Color
}

// GlitchView carries the normalized glitch intensities consumed by the
// post-processing pass.
type GlitchView struct {
	Amount float64
	Noise  float64
	Shift  float64
}

// Snapshot is the per-tick contract between the simulation and the
// presentation adapter. All world y-positions are raw; the adapter applies
// WorldOffset uniformly to platforms, burst particles and the player.
type Snapshot struct {
	Phase     core.Phase
	Paused    bool
	Score     int
	HighScore int

	PlayerX, PlayerY float64
	SpinActive       bool
	SpinAngle        float64 // radians about SpinAxis
	SpinAxis         [3]float64

	WorldOffset float64
	CameraBlend float64 // 0 = title vantage, 1 = gameplay vantage
	HalfWidth   float64

	Platforms  []PlatformView
	Explosions []ParticleView
	Field      []ParticleView // normalized [0,1) coordinates

	Glitch GlitchView
}

// Snapshot builds the render view for the current tick.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:       g.phase,
		Paused:      g.paused,
		Score:       g.score,
		HighScore:   g.highScore,
		PlayerX:     g.player.Pos.X,
		PlayerY:     g.player.Pos.Y,
		SpinActive:  g.spin.Active,
		SpinAngle:   g.spin.Angle(),
		SpinAxis:    g.spin.Axis,
		WorldOffset: g.worldOffset,
		CameraBlend: g.camera.Blend(),
		HalfWidth:   g.halfWidth,
		Glitch: GlitchView{
			Amount: g.glitch.Amount,
			Noise:  g.glitch.Noise,
			Shift:  g.glitch.Shift,
		},
	}

	snap.Platforms = make([]PlatformView, 0, len(g.platforms))
	for _, pl := range g.platforms {
		pv := PlatformView{Index: pl.Index, Segments: make([]SegmentView, 0, len(pl.Segments))}
		for i := range pl.Segments {
			seg := &pl.Segments[i]
			pv.Segments = append(pv.Segments, SegmentView{
				X:       pl.SegmentX(i),
				Y:       seg.Y,
				Hit:     seg.Hit,
				Falling: seg.Falling,
				Color:   seg.Color,
			})
		}
		snap.Platforms = append(snap.Platforms, pv)
	}

	snap.Explosions = make([]ParticleView, 0, len(g.explosions))
	for _, p := range g.explosions {
		snap.Explosions = append(snap.Explosions, ParticleView{
			X:     p.X,
			Y:     p.Y,
			Alpha: p.Alpha(),
			Color: p.Color,
		})
	}

	snap.Field = make([]ParticleView, 0, len(g.field))
	for _, f := range g.field {
		snap.Field = append(snap.Field, ParticleView{X: f.X, Y: f.Y, Alpha: 1, Color: core.ColorGray})
	}

	return snap
}
