package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-evasion/internal/storage"
)

type fakeRuns struct {
	runs    []storage.Run
	queried []string
}

func (f *fakeRuns) TopRuns(difficulty string, limit int) ([]storage.Run, error) {
	f.queried = append(f.queried, difficulty)
	var out []storage.Run
	for _, r := range f.runs {
		if difficulty == "" || r.Difficulty == difficulty {
			out = append(out, r)
		}
	}
	return out[:min(len(out), limit)], nil
}

func (f *fakeRuns) StatsByDifficulty() (map[string]*storage.Stats, error) {
	stats := make(map[string]*storage.Stats)
	for _, r := range f.runs {
		st, ok := stats[r.Difficulty]
		if !ok {
			st = &storage.Stats{Difficulty: r.Difficulty}
			stats[r.Difficulty] = st
		}
		st.Runs++
		st.HighScore = max(st.HighScore, r.Score)
		st.LongestRun = max(st.LongestRun, r.Ticks)
	}
	return stats, nil
}

func TestScoreboardTabs(t *testing.T) {
	src := &fakeRuns{runs: []storage.Run{
		{Difficulty: "easy", Score: 110, Ticks: 3600},
		{Difficulty: "hard", Score: 550, Ticks: 600},
	}}
	m := NewScoreboardModel(src, "hard", 10, 100, 30)
	if len(m.runs) != 1 || m.runs[0].Score != 550 {
		t.Fatalf("runs = %+v, expected the hard run", m.runs)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if got := m.tabs[m.cursor]; got != "insane" {
		t.Errorf("tab after hard = %q, expected insane", got)
	}
	if len(m.runs) != 0 || !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("insane should show the empty message")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if got := m.tabs[m.cursor]; got != "" {
		t.Errorf("tabs should wrap to all, got %q", got)
	}
	if len(m.runs) != 2 {
		t.Errorf("all tab shows %d runs, expected 2", len(m.runs))
	}
	if stats := m.renderStats(); !strings.Contains(stats, "Runs     2") || !strings.Contains(stats, "1:00") {
		t.Errorf("renderStats() = %q", stats)
	}

	want := []string{"hard", "insane", ""}
	if strings.Join(src.queried, ",") != strings.Join(want, ",") {
		t.Errorf("queried %q, expected %q", src.queried, want)
	}
}

func TestScoreboardNarrowLayout(t *testing.T) {
	m := NewScoreboardModel(&fakeRuns{}, "", 10, 40, 20)
	if m.showSidebar {
		t.Fatal("narrow window should hide the sidebar")
	}
	if !strings.Contains(m.View(), "HIGH SCORES - All") {
		t.Error("View() should title the all tab")
	}
}

func TestFormatTicks(t *testing.T) {
	tests := []struct {
		ticks uint64
		want  string
	}{
		{0, "0:00"},
		{59, "0:00"},
		{600, "0:10"},
		{3660, "1:01"},
	}
	for _, tt := range tests {
		if got := formatTicks(tt.ticks); got != tt.want {
			t.Errorf("formatTicks(%d) = %q, expected %q", tt.ticks, got, tt.want)
		}
	}
}
