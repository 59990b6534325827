package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dungeon/internal/core"
	"github.com/vovakirdan/tui-dungeon/internal/storage"
)

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"w moves up", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, core.ActionMoveUp, false},
		{"d moves right", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, core.ActionMoveRight, false},
		{"left arrow shoots left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionShootLeft, false},
		{"k shoots down", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, core.ActionShootDown, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r restarts", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart, false},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"x is unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = (%s, %v), expected (%s, %v)", action, quit, tt.action, tt.quit)
			}
		})
	}
}

// fakeGame is a registry.Game whose run ends after a fixed number of steps.
type fakeGame struct {
	steps    int
	endAt    int
	resets   int
	lastIn   core.InputFrame
	state    core.GameState
	rendered bool
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.state = core.GameState{Room: 0}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.lastIn = in.Clone()
	if !g.state.GameOver {
		g.steps++
		g.state.Score = g.steps * 10
		g.state.Kills = g.steps
		g.state.GameOver = g.steps >= g.endAt
	}
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	g.rendered = true
	dst.DrawText(0, 0, "fake arena")
}

func (g *fakeGame) State() core.GameState { return g.state }

func TestModelRecordsRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	game := &fakeGame{endAt: 3}
	var m tea.Model = NewModel(game, store, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 7})

	for range 6 {
		m, _ = m.Update(TickMsg{})
	}

	runs, err := store.TopRuns("fake", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 {
		t.Fatalf("recorded %d runs, expected 1", len(runs))
	}
	if runs[0].Score != 30 || runs[0].Kills != 3 || runs[0].Seed != 7 || runs[0].Ticks != 3 {
		t.Errorf("recorded run = %+v", runs[0])
	}
}

func TestModelInputReachesGame(t *testing.T) {
	game := &fakeGame{endAt: 100}
	var m tea.Model = NewModel(game, nil, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m, _ = m.Update(TickMsg{})

	if !game.lastIn.Has(core.ActionMoveLeft) || !game.lastIn.Has(core.ActionShootUp) {
		t.Errorf("game saw %v", game.lastIn.Actions)
	}

	m, _ = m.Update(TickMsg{})
	if len(game.lastIn.Actions) != 0 {
		t.Errorf("input should clear between ticks, got %v", game.lastIn.Actions)
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &fakeGame{endAt: 1}
	var m tea.Model = NewModel(game, nil, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})

	m, _ = m.Update(TickMsg{})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m, _ = m.Update(TickMsg{})

	if game.resets != 2 {
		t.Errorf("Reset called %d times, expected 2", game.resets)
	}
}

func TestModelView(t *testing.T) {
	game := &fakeGame{endAt: 100}
	var m tea.Model = NewModel(game, nil, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 12})

	view := m.View()
	if !game.rendered || !strings.Contains(view, "fake arena") {
		t.Error("view should contain the rendered game")
	}
	if !strings.Contains(view, "move") || !strings.Contains(view, "shoot") {
		t.Error("view should include the help line")
	}
	if lines := strings.Count(view, "\n") + 1; lines != 12 {
		t.Errorf("view has %d lines, expected the window height 12", lines)
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 1, '#', core.ColorRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "#") {
		t.Errorf("RenderScreen() = %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected two rows, got %q", out)
	}
}
