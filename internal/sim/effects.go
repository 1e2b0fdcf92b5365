package sim

import (
	"math"

	"github.com/vovakirdan/cubefall/internal/core"
)

// Glitch is the transient screen-corruption envelope triggered on landings.
// States: idle (Active false, magnitudes zero) and decaying.
type Glitch struct {
	Active   bool
	Elapsed  float64
	Duration float64

	// Peak magnitudes chosen randomly per trigger.
	PeakAmount float64
	PeakNoise  float64
	PeakShift  float64

	// Current magnitudes exposed to the presentation adapter, all in [0, 1].
	Amount float64
	Noise  float64
	Shift  float64
}

// Trigger starts a decay cycle with fresh random peaks.
func (gl *Glitch) Trigger(rng Rand) {
	gl.Active = true
	gl.Elapsed = 0
	gl.PeakAmount = 0.3 + rng.Float64()*0.5
	gl.PeakNoise = 0.2 + rng.Float64()*0.4
	gl.PeakShift = 0.2 + rng.Float64()*0.5
	gl.apply(1)
}

// Step advances the envelope by one tick. At the end of the window all
// magnitudes are exactly zero and the machine is idle.
func (gl *Glitch) Step(dt float64) {
	if !gl.Active {
		return
	}
	gl.Elapsed += dt
	if gl.Elapsed >= gl.Duration {
		gl.Active = false
		gl.Amount, gl.Noise, gl.Shift = 0, 0, 0
		return
	}
	p := gl.Elapsed / gl.Duration
	ease := (1 - math.Pow(p, 1.8)) * (0.9 + 0.1*math.Sin(20*p))
	gl.apply(ease)
}

func (gl *Glitch) apply(ease float64) {
	gl.Amount = gl.PeakAmount * ease
	gl.Noise = gl.PeakNoise * ease
	gl.Shift = gl.PeakShift * ease
}

// reset zeroes the envelope back to idle.
func (gl *Glitch) reset() {
	gl.Active = false
	gl.Elapsed = 0
	gl.Amount, gl.Noise, gl.Shift = 0, 0, 0
}

// Spin is the cosmetic one-shot trick rotation. States: idle and spinning.
type Spin struct {
	Active   bool
	Axis     [3]float64 // unit rotation axis chosen per trigger
	Progress float64    // in [0, 1], advanced by a fixed amount per tick
	Speed    float64
}

// Trigger starts a spin about a fresh random unit axis.
func (s *Spin) Trigger(rng Rand) {
	s.Active = true
	s.Progress = 0
	z := rng.Float64()*2 - 1
	theta := rng.Float64() * 2 * math.Pi
	r := math.Sqrt(1 - z*z)
	s.Axis = [3]float64{r * math.Cos(theta), r * math.Sin(theta), z}
}

// Step advances the spin by its fixed per-tick speed. On completion the
// orientation returns to identity.
func (s *Spin) Step() {
	if !s.Active {
		return
	}
	s.Progress += s.Speed
	if s.Progress >= 1 {
		s.reset()
	}
}

// Angle returns the eased rotation about Axis, in radians.
func (s *Spin) Angle() float64 {
	if !s.Active {
		return 0
	}
	return core.SmoothStep(s.Progress) * 2 * math.Pi
}

func (s *Spin) reset() {
	s.Active = false
	s.Progress = 0
	s.Axis = [3]float64{}
}

// CameraIntro is the one-shot blend from the title vantage to the gameplay
// vantage, played when a run begins. It is independent of the player's intro
// free-fall.
type CameraIntro struct {
	Active   bool
	Elapsed  float64
	Duration float64
	done     bool
}

// Trigger starts the blend from the beginning.
func (c *CameraIntro) Trigger() {
	c.Active = true
	c.Elapsed = 0
	c.done = false
}

// Step advances the blend by one tick.
func (c *CameraIntro) Step(dt float64) {
	if !c.Active {
		return
	}
	c.Elapsed += dt
	if c.Elapsed >= c.Duration {
		c.Active = false
		c.done = true
	}
}

// Blend returns 0 at the title vantage, 1 at the gameplay vantage, with a
// cubic ease-in-out in between.
func (c *CameraIntro) Blend() float64 {
	if c.done {
		return 1
	}
	if !c.Active {
		return 0
	}
	return core.EaseInOutCubic(c.Elapsed / c.Duration)
}

func (c *CameraIntro) reset() {
	c.Active = false
	c.Elapsed = 0
	c.done = false
}
