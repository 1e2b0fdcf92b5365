package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/cubefall/internal/config"
)

// Engine owns the speaker and mixes all game cues. Every method is safe to
// call on a disabled or failed engine; it simply does nothing, so the game
// never depends on working audio hardware.
type Engine struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	master      *fader
	music       *fader
	musicOn     bool
	muted       bool
	initialized bool
}

// New creates an engine from config. Call Init before playing anything.
func New(cfg config.AudioConfig) *Engine {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}
	return &Engine{
		cfg:   cfg,
		rate:  beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
}

// Init opens the speaker and starts the mixer. A failure leaves the engine
// in silent mode and is reported to the caller for logging only.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized || !e.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(e.rate, e.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	e.master = &fader{
		streamer:   e.mixer,
		gain:       e.cfg.MasterVolume,
		gainTarget: e.cfg.MasterVolume,
		step:       1, // mute toggles take effect immediately
	}
	speaker.Play(e.master)
	e.initialized = true
	return nil
}

// Close silences and releases the mixer. The speaker itself has no close;
// clearing the mixer is enough to stop all audio.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Clear()
	speaker.Unlock()
	e.initialized = false
}

// ToggleMute flips the mute state and returns the new value.
func (e *Engine) ToggleMute() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.muted = !e.muted
	if e.initialized {
		speaker.Lock()
		if e.muted {
			e.master.gainTarget = 0
		} else {
			e.master.gainTarget = e.cfg.MasterVolume
		}
		speaker.Unlock()
	}
	return e.muted
}

// Muted reports the current mute state.
func (e *Engine) Muted() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// play adds a finite streamer to the mixer.
func (e *Engine) play(s beep.Streamer) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// PlayStart plays the run-start chirp, a quick upward square sweep.
func (e *Engine) PlayStart() {
	e.play(e.chord(
		voice{freq: 330, wave: WaveSquare, dur: 90 * time.Millisecond, vol: 0.25},
		voice{freq: 440, wave: WaveSquare, dur: 90 * time.Millisecond, vol: 0.25, delay: 80 * time.Millisecond},
		voice{freq: 660, wave: WaveSquare, dur: 140 * time.Millisecond, vol: 0.3, delay: 160 * time.Millisecond},
	))
}

// PlayLand plays the landing bell. Pitch scales the fundamental so the cue
// climbs with the score.
func (e *Engine) PlayLand(pitch float64) {
	if pitch <= 0 {
		pitch = 1
	}
	e.play(e.chord(
		voice{freq: 660 * pitch, wave: WaveSine, dur: 180 * time.Millisecond, vol: 0.5},
		voice{freq: 1320 * pitch, wave: WaveSine, dur: 140 * time.Millisecond, vol: 0.2},
	))
}

// PlayDoubleJump plays the mid-air boost whoosh.
func (e *Engine) PlayDoubleJump() {
	e.play(e.chord(
		voice{freq: 0, wave: WaveNoise, dur: 120 * time.Millisecond, vol: 0.2},
		voice{freq: 523.25, wave: WaveSine, dur: 120 * time.Millisecond, vol: 0.3},
	))
}

// PlayGameOver plays the fall-out buzz, a low descending saw.
func (e *Engine) PlayGameOver() {
	e.play(e.chord(
		voice{freq: 160, wave: WaveSaw, dur: 250 * time.Millisecond, vol: 0.35},
		voice{freq: 110, wave: WaveSaw, dur: 300 * time.Millisecond, vol: 0.35, delay: 200 * time.Millisecond},
	))
}

// StartMusic fades the background loop in. Idempotent.
func (e *Engine) StartMusic() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	if e.music == nil {
		fadeIn := e.cfg.MusicFadeIn
		if fadeIn <= 0 {
			fadeIn = 0.01
		}
		e.music = &fader{
			streamer: newVolume(newMusicLoop(e.rate), 0.35),
			step:     1 / (fadeIn * float64(e.rate)),
		}
		speaker.Lock()
		e.mixer.Add(e.music)
		speaker.Unlock()
	}
	if e.musicOn {
		return
	}
	e.musicOn = true
	speaker.Lock()
	e.music.gainTarget = 1
	speaker.Unlock()
	log.Debug("music fading in", "seconds", e.cfg.MusicFadeIn)
}

// StopMusic fades the background loop out. The streamer keeps running at
// zero gain so a later StartMusic resumes from the same place.
func (e *Engine) StopMusic() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized || e.music == nil || !e.musicOn {
		return
	}
	e.musicOn = false
	fadeOut := e.cfg.MusicFadeOut
	if fadeOut <= 0 {
		fadeOut = 0.01
	}
	speaker.Lock()
	e.music.step = 1 / (fadeOut * float64(e.rate))
	e.music.gainTarget = 0
	speaker.Unlock()
}

// voice is one component of a synthesized cue.
type voice struct {
	freq  float64
	wave  WaveType
	dur   time.Duration
	vol   float64
	delay time.Duration
}

// chord mixes several enveloped voices into one streamer.
func (e *Engine) chord(voices ...voice) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(voices))
	for _, v := range voices {
		osc := NewOscillator(v.freq, v.dur, v.wave, e.rate)
		shaped := NewEnvelope(osc, v.dur, 5*time.Millisecond, v.dur/2, e.rate)
		s := newVolume(shaped, v.vol)
		if v.delay > 0 {
			s = beep.Seq(beep.Silence(e.rate.N(v.delay)), s)
		}
		parts = append(parts, s)
	}
	return beep.Mix(parts...)
}
