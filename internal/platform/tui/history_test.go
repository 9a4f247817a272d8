package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/storage"
)

func TestHistoryModelTabs(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.SaveRun(storage.RunRecord{SeedMode: "random", GridSize: 100, Generations: 12, FinalPopulation: 900}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	g, _ := life.NewEmpty(10)
	snapID, err := store.SaveSnapshot(g, 7, "empty")
	if err != nil {
		t.Fatalf("SaveSnapshot() failed: %v", err)
	}

	m := NewHistoryModel(store, 100, 30)
	if len(m.runs) != 1 || len(m.snapshots) != 1 {
		t.Fatalf("loaded %d runs and %d snapshots", len(m.runs), len(m.snapshots))
	}

	// Enter does nothing on the runs tab
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(HistoryModel)
	if m.Selected() != 0 {
		t.Error("enter on runs tab should not select")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.tab != tabSnapshots {
		t.Fatalf("tab = %v, expected Snapshots", m.tab)
	}
	if !strings.Contains(m.View(), "Snapshots") {
		t.Error("view should show the tab title")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(HistoryModel)
	if m.Selected() != snapID {
		t.Errorf("Selected() = %d, expected %d", m.Selected(), snapID)
	}
	if !isQuit(cmd) {
		t.Error("resuming a snapshot should close the browser")
	}
}

func TestHistoryModelWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("view should explain the missing database")
	}
}

func TestHistoryModelDeleteSnapshot(t *testing.T) {
	store := newTestStore(t)
	g, _ := life.NewEmpty(10)
	var ids []int64
	for gen := uint64(1); gen <= 3; gen++ {
		id, err := store.SaveSnapshot(g, gen, "empty")
		if err != nil {
			t.Fatalf("SaveSnapshot() failed: %v", err)
		}
		ids = append(ids, id)
	}

	m := NewHistoryModel(store, 100, 30)

	// Delete does nothing on the runs tab
	next, _ := m.Update(runeKey('d'))
	m = next.(HistoryModel)
	if len(m.snapshots) != 3 {
		t.Fatalf("runs tab delete removed a snapshot: %d left", len(m.snapshots))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	next, _ = m.Update(runeKey('d'))
	m = next.(HistoryModel)

	// Newest first, so the top row is the last snapshot saved
	deleted := ids[2]
	if len(m.snapshots) != 2 {
		t.Fatalf("expected 2 snapshots after delete, got %d", len(m.snapshots))
	}
	for _, s := range m.snapshots {
		if s.ID == deleted {
			t.Errorf("snapshot %d still listed", deleted)
		}
	}
	if len(m.table.Rows()) != 2 {
		t.Errorf("table shows %d rows, expected 2", len(m.table.Rows()))
	}
	if _, _, err := store.LoadSnapshot(deleted); !errors.Is(err, storage.ErrSnapshotNotFound) {
		t.Errorf("LoadSnapshot() error = %v, expected ErrSnapshotNotFound", err)
	}
	if !strings.Contains(m.View(), "deleted") {
		t.Error("view should confirm the delete")
	}
}
