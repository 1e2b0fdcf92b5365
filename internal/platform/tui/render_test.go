package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cubefall/internal/config"
	"github.com/vovakirdan/cubefall/internal/core"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5}
	return NewModel(config.Default(), rt, nil, nil)
}

func stepModel(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestViewShowsTitleBeforeStart(t *testing.T) {
	m := newTestModel(t)
	m = stepModel(m, TickMsg{})

	view := m.View()
	if !strings.Contains(view, "C U B E F A L L") {
		t.Error("title screen missing game name")
	}
	if !strings.Contains(view, "SCORE 0") {
		t.Error("HUD missing score line")
	}
}

func TestStartKeyBeginsRun(t *testing.T) {
	m := newTestModel(t)
	m = stepModel(m, keyMsg("enter"))
	m = stepModel(m, TickMsg{})

	if m.state.Phase != core.PhaseIntroFalling {
		t.Errorf("phase after enter+tick = %v, expected IntroFalling", m.state.Phase)
	}

	view := m.View()
	if strings.Contains(view, "press space or enter") {
		t.Error("start prompt still visible after the run began")
	}
}

func TestHoldDecayReleasesDirection(t *testing.T) {
	m := newTestModel(t)
	m = stepModel(m, keyMsg("left"))

	if m.holdLeft != holdTicks {
		t.Fatalf("holdLeft = %d after press, expected %d", m.holdLeft, holdTicks)
	}

	for i := 0; i < holdTicks; i++ {
		m = stepModel(m, TickMsg{})
	}
	if m.holdLeft != 0 {
		t.Errorf("holdLeft = %d after decay, expected 0", m.holdLeft)
	}
}

func TestOppositeDirectionCancelsHold(t *testing.T) {
	m := newTestModel(t)
	m = stepModel(m, keyMsg("left"))
	m = stepModel(m, keyMsg("right"))

	if m.holdLeft != 0 {
		t.Error("pressing right should cancel the left hold")
	}
	if m.holdRight != holdTicks {
		t.Error("pressing right should start the right hold")
	}
}

func TestResizeKeepsSimulationRunning(t *testing.T) {
	m := newTestModel(t)
	m = stepModel(m, keyMsg("enter"))
	m = stepModel(m, TickMsg{})
	phase := m.state.Phase

	m = stepModel(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	m = stepModel(m, TickMsg{})

	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen is %dx%d after resize, expected 120x40", m.screen.Width(), m.screen.Height())
	}
	if m.state.Phase == core.PhaseNotStarted && phase != core.PhaseNotStarted {
		t.Error("resize reset the running game")
	}
}

func TestPlatformGlyphCacheEvicted(t *testing.T) {
	m := newTestModel(t)
	m.View() // populates the cache from the initial snapshot

	if len(m.platGlyphs) == 0 {
		t.Fatal("rendering should populate the platform glyph cache")
	}

	// Simulate the player climbing far enough that everything is pruned.
	m = stepModel(m, keyMsg("enter"))
	for i := 0; i < 1200; i++ {
		m = stepModel(m, TickMsg{})
		m.View()
	}

	for idx := range m.platGlyphs {
		found := false
		for _, pl := range m.snap.Platforms {
			if pl.Index == idx {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("glyph cache retains removed platform %d", idx)
		}
	}
}

func TestRenderScreenPlainDimensions(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "hello")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	if !strings.Contains(lines[0], "hello") {
		t.Error("rendered output missing drawn text")
	}
}
