package builder

import (
	"testing"

	"insurance-leadgen-backend/internal/models"
)

func forestOf(ids ...string) models.TemplateSections {
	forest := models.TemplateSections{}
	for _, id := range ids {
		forest = append(forest, leaf(id))
	}
	return forest
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory()
	h.Commit(forestOf("a"))
	h.Commit(forestOf("a", "b"))

	forest, ok := h.Undo()
	if !ok {
		t.Fatalf("undo failed")
	}
	if len(forest) != 1 {
		t.Errorf("expected first snapshot, got %d roots", len(forest))
	}

	forest, ok = h.Redo()
	if !ok {
		t.Fatalf("redo failed")
	}
	if len(forest) != 2 {
		t.Errorf("expected second snapshot, got %d roots", len(forest))
	}
}

func TestHistoryBounds(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Undo(); ok {
		t.Errorf("undo on empty history succeeded")
	}
	if _, ok := h.Redo(); ok {
		t.Errorf("redo on empty history succeeded")
	}

	h.Commit(forestOf("a"))
	if _, ok := h.Undo(); ok {
		t.Errorf("undo at oldest snapshot succeeded")
	}
	if _, ok := h.Redo(); ok {
		t.Errorf("redo at newest snapshot succeeded")
	}
}

func TestHistoryCommitTruncatesRedoBranch(t *testing.T) {
	h := NewHistory()
	h.Commit(forestOf("a"))
	h.Commit(forestOf("a", "b"))
	h.Commit(forestOf("a", "b", "c"))

	h.Undo()
	h.Undo()
	h.Commit(forestOf("a", "d"))

	if h.Len() != 2 {
		t.Fatalf("expected 2 snapshots after truncating commit, got %d", h.Len())
	}
	if h.CanRedo() {
		t.Errorf("redo branch survived a commit")
	}

	forest, ok := h.Undo()
	if !ok || len(forest) != 1 || forest[0].ID != "a" {
		t.Errorf("oldest snapshot corrupted")
	}
}

func TestHistorySnapshotsAreIsolated(t *testing.T) {
	h := NewHistory()
	forest := forestOf("a")
	h.Commit(forest)
	h.Commit(forestOf("a", "b"))

	// Mutating the live forest after a commit must not bleed into the
	// stored snapshot.
	forest[0].Styles.Desktop["color"] = "red"

	snapshot, ok := h.Undo()
	if !ok {
		t.Fatalf("undo failed")
	}
	if snapshot[0].Styles.Desktop["color"] == "red" {
		t.Errorf("snapshot shares state with the live forest")
	}

	// Mutating a returned snapshot must not corrupt the history either.
	snapshot[0].ID = "mutated"
	h.Redo()
	restored, ok := h.Undo()
	if !ok {
		t.Fatalf("undo failed")
	}
	if restored[0].ID != "a" {
		t.Errorf("history corrupted by mutating a returned snapshot")
	}
}
