package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tilephys/internal/config"
	"github.com/vovakirdan/tilephys/internal/core"
	"github.com/vovakirdan/tilephys/internal/games/platformer"
)

type fakeScores struct {
	saved []int
	err   error
}

func (f *fakeScores) SaveScore(gameID string, score int) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.saved = append(f.saved, score)
	return int64(len(f.saved)), nil
}

// newExitModel builds a model whose level is cleared by one step right.
func newExitModel(t *testing.T, scores ScoreSaver) GameModel {
	t.Helper()
	cfg := config.DefaultPlatformerConfig()
	cfg.Level.Rows = []string{
		"######",
		"#@E..#",
		"######",
	}
	m := NewGameModel(platformer.NewWithConfig(cfg), scores, core.DefaultConfig(), nil)
	m.Init()
	return m
}

func send(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func tick(t *testing.T, m GameModel) GameModel {
	return send(t, m, TickMsg(time.Now()))
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	scores := &fakeScores{}
	m := newExitModel(t, scores)

	m = send(t, m, runeKey('d'))
	m = tick(t, m)

	if !m.State().GameOver {
		t.Fatal("one step right should clear the level")
	}
	m = tick(t, m)
	m = tick(t, m)

	if len(scores.saved) != 1 {
		t.Fatalf("score should be saved exactly once, got %v", scores.saved)
	}
	if want := config.DefaultPlatformerConfig().Scoring.ParTicks - 1; scores.saved[0] != want {
		t.Errorf("saved score %d, expected %d", scores.saved[0], want)
	}
}

func TestGameModelSaveErrorDoesNotStopGame(t *testing.T) {
	scores := &fakeScores{err: errors.New("disk full")}
	m := newExitModel(t, scores)

	m = send(t, m, runeKey('d'))
	m = tick(t, m)

	if !m.State().GameOver || m.IsQuitting() {
		t.Error("a failed save should leave the finished game on screen")
	}
}

func TestGameModelRestart(t *testing.T) {
	m := newExitModel(t, nil)

	m = send(t, m, runeKey('d'))
	m = tick(t, m)
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}

	m = send(t, m, runeKey('r'))
	m = tick(t, m)

	if m.State().GameOver {
		t.Error("restart should start a fresh run")
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newExitModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Error("quit should return a command")
	}
	gm := next.(GameModel)
	if !gm.IsQuitting() {
		t.Error("model should be quitting")
	}
	if gm.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelView(t *testing.T) {
	m := newExitModel(t, nil)
	m = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 10 {
		t.Errorf("view should have 10 rows after resize, got %d", len(lines))
	}
	if !strings.ContainsRune(view, platformer.PlayerChar) {
		t.Error("view should contain the player")
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hello")
	s.DrawText(0, 1, "world")

	if got := RenderScreen(s); got != "hello\nworld" {
		t.Errorf("RenderScreen() = %q", got)
	}
}
