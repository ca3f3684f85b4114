package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sinkhole/internal/storage"
)

func TestRunsViewerTabs(t *testing.T) {
	store := openStore(t)
	store.SaveRun(storage.RunRecord{Player: "ada", Score: 900, Depth: 3000, Duration: 75})
	store.SaveRun(storage.RunRecord{Player: "bob", Score: 100, Depth: 800, Duration: 12})

	m := NewRunsModel(store, 100, 30)
	if len(m.runs) != 2 || m.runs[0].Score != 900 {
		t.Fatalf("best runs = %+v", m.runs)
	}

	view := m.View()
	for _, want := range []string{"RUNS - BEST", "ada", "1:15", "2 runs"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(RunsModel)
	if m.tab != TabRecent || m.runs[0].Player != "bob" {
		t.Errorf("after tab: tab=%v first=%+v", m.tab, m.runs[0])
	}
}

func TestRunsViewerEmptyAndBack(t *testing.T) {
	m := NewRunsModel(nil, 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty viewer should say so")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(RunsModel)
	if !m.IsGoingBack() || cmd != nil {
		t.Error("esc should go back without quitting the session")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := map[float64]string{0: "0:00", 59.9: "0:59", 61: "1:01", 3600: "60:00"}
	for in, want := range tests {
		if got := formatDuration(in); got != want {
			t.Errorf("formatDuration(%v) = %q, expected %q", in, got, want)
		}
	}
}
