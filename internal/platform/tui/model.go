package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cubefall/internal/audio"
	"github.com/vovakirdan/cubefall/internal/config"
	"github.com/vovakirdan/cubefall/internal/core"
	"github.com/vovakirdan/cubefall/internal/sim"
	"github.com/vovakirdan/cubefall/internal/storage"
)

// holdTicks is how many simulation ticks a single left/right key press keeps
// the direction asserted. Terminals report repeats but never key releases, so
// holds are emulated with a short decay refreshed by autorepeat.
const holdTicks = 7

// Model is the Bubble Tea model driving one game session.
type Model struct {
	game   *sim.Game
	cfg    config.Config
	rt     core.RuntimeConfig
	store  *storage.Store
	sound  *audio.Engine
	screen *core.Screen
	keys   KeyMap

	pending   core.InputFrame // edge actions gathered since the last tick
	holdLeft  int
	holdRight int

	state core.GameState
	snap  sim.Snapshot

	// platGlyphs caches the body rune per platform, released when the
	// simulation reports the platform removed.
	platGlyphs map[uint64]rune

	noise    *rand.Rand // presentation-only randomness for the glitch pass
	quitting bool
}

// NewModel creates a model for the given simulation and runtime config.
// store and sound may be nil; persistence and audio are then skipped.
func NewModel(cfg config.Config, rt core.RuntimeConfig, store *storage.Store, sound *audio.Engine) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	game := sim.New(cfg)
	game.Reset(rt)

	if store != nil {
		if hs, err := store.HighScore(); err != nil {
			log.Warn("could not load high score", "error", err)
		} else {
			game.SetHighScore(hs)
		}
	}

	return Model{
		game:       game,
		cfg:        cfg,
		rt:         rt,
		store:      store,
		sound:      sound,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		keys:       DefaultKeyMap(),
		pending:    core.NewInputFrame(),
		snap:       game.Snapshot(),
		platGlyphs: make(map[uint64]rune),
		noise:      rand.New(rand.NewSource(rt.Seed ^ 0x5DEECE66D)),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.rt.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.sound != nil {
			m.sound.Close()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionLeft:
		m.holdLeft = holdTicks
		m.holdRight = 0
	case core.ActionRight:
		m.holdRight = holdTicks
		m.holdLeft = 0
	case core.ActionJump:
		m.pending.Set(core.ActionJump)
	case core.ActionStart:
		m.pending.Set(core.ActionStart)
	case core.ActionPause:
		m.pending.Set(core.ActionPause)
	case core.ActionMute:
		if m.sound != nil {
			muted := m.sound.ToggleMute()
			log.Debug("mute toggled", "muted", muted)
		}
	}

	return m, nil
}

// handleResize adjusts the screen buffer. The simulation's world bounds come
// from its camera, not the terminal, so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.rt.ScreenW = msg.Width
	m.rt.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := core.NewInputFrame()
	for a := range m.pending.Actions {
		frame.Set(a)
	}
	if m.holdLeft > 0 {
		frame.Set(core.ActionLeft)
		m.holdLeft--
	}
	if m.holdRight > 0 {
		frame.Set(core.ActionRight)
		m.holdRight--
	}

	result := m.game.Step(frame)
	m.state = result.State
	m.handleEvents(result.Events)
	m.snap = m.game.Snapshot()
	m.pending.Clear()

	return m, tickCmd(m.rt.TickRate)
}

// handleEvents reacts to simulation events: audio cues, persistence and
// render-state release.
func (m Model) handleEvents(events []sim.Event) {
	for _, e := range events {
		switch e.Kind {
		case sim.EventRunStarted:
			if m.sound != nil {
				m.sound.PlayStart()
				m.sound.StartMusic()
			}

		case sim.EventLanded:
			if m.sound != nil {
				m.sound.PlayLand(e.Pitch)
			}

		case sim.EventDoubleJumped:
			if m.sound != nil {
				m.sound.PlayDoubleJump()
			}

		case sim.EventPlatformRemoved:
			delete(m.platGlyphs, e.PlatformIndex)

		case sim.EventGameOver:
			if m.sound != nil {
				m.sound.PlayGameOver()
				m.sound.StopMusic()
			}
			if m.store != nil && e.Score > 0 {
				if _, err := m.store.SaveScore(e.Score, m.rt.Seed); err != nil {
					log.Warn("could not save score", "error", err)
				}
			}
		}
	}
}

// saveScreenshot dumps the current screen buffer to a text file.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn("could not resolve home for screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".cubefall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("cubefall_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("could not save screenshot", "error", err)
	}
}

// View renders the latest snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderFrame()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(cfg config.Config, rt core.RuntimeConfig, store *storage.Store, sound *audio.Engine) error {
	model := NewModel(cfg, rt, store, sound)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
