// Package audio synthesizes all game sound at runtime with gopxl/beep.
// There are no audio assets; every cue is built from oscillators and
// envelopes, so the binary stays self-contained.
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed duration.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator streamer.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps a streamer in a simple attack/sustain/release envelope.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a streamer safely. math.Log2(0) is -Inf, so zero volume
// becomes a silent streamer instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// fader multiplies a stream by a gain that ramps linearly toward a target.
// Used for music fade-in/out; mutate gainTarget only under speaker.Lock.
type fader struct {
	streamer   beep.Streamer
	gain       float64
	gainTarget float64
	step       float64 // gain change per sample
}

func (f *fader) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if f.gain < f.gainTarget {
			f.gain = math.Min(f.gain+f.step, f.gainTarget)
		} else if f.gain > f.gainTarget {
			f.gain = math.Max(f.gain-f.step, f.gainTarget)
		}
		samples[i][0] *= f.gain
		samples[i][1] *= f.gain
	}
	return n, ok
}

func (f *fader) Err() error { return f.streamer.Err() }

// musicNote is one step of the looping background pattern.
type musicNote struct {
	freq float64
	dur  time.Duration
}

// musicLoop streams an endless arpeggio pattern. Each note gets a short
// percussive decay so the loop stays unobtrusive under the game.
type musicLoop struct {
	rate    beep.SampleRate
	pattern []musicNote
	note    int
	noteLen int
	pos     int
	phase   float64
}

// newMusicLoop builds the infinite background track streamer.
func newMusicLoop(rate beep.SampleRate) *musicLoop {
	// A minor arpeggio with a passing seventh, eight steps per bar.
	pattern := []musicNote{
		{220.00, 250 * time.Millisecond},
		{261.63, 250 * time.Millisecond},
		{329.63, 250 * time.Millisecond},
		{440.00, 250 * time.Millisecond},
		{392.00, 250 * time.Millisecond},
		{329.63, 250 * time.Millisecond},
		{261.63, 250 * time.Millisecond},
		{196.00, 250 * time.Millisecond},
	}
	m := &musicLoop{rate: rate, pattern: pattern}
	m.noteLen = rate.N(pattern[0].dur)
	return m
}

func (m *musicLoop) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		note := m.pattern[m.note]

		// Percussive decay over the note length.
		decay := 1 - float64(m.pos)/float64(m.noteLen)
		val := math.Sin(2*math.Pi*m.phase) * decay * decay

		samples[i][0] = val
		samples[i][1] = val

		m.phase += note.freq / float64(m.rate)
		m.phase = m.phase - math.Floor(m.phase)
		m.pos++
		if m.pos >= m.noteLen {
			m.pos = 0
			m.phase = 0
			m.note = (m.note + 1) % len(m.pattern)
			m.noteLen = m.rate.N(m.pattern[m.note].dur)
		}
	}
	return len(samples), true
}

func (m *musicLoop) Err() error { return nil }
