package builder

import (
	"insurance-leadgen-backend/internal/models"
)

// History is a linear undo stack of forest snapshots. Committing after an
// undo truncates the redo branch permanently; there is no tree undo.
type History struct {
	snapshots []models.TemplateSections
	index     int
}

// NewHistory starts an empty history with the cursor before the first
// snapshot.
func NewHistory() *History {
	return &History{index: -1}
}

// Commit deep-copies the forest, drops any redoable future and appends the
// snapshot, moving the cursor to it.
func (h *History) Commit(forest models.TemplateSections) {
	h.snapshots = append(h.snapshots[:h.index+1], CloneForest(forest))
	h.index = len(h.snapshots) - 1
}

// Undo steps the cursor back and returns that snapshot. At the oldest
// snapshot it is a no-op and returns ok=false.
func (h *History) Undo() (models.TemplateSections, bool) {
	if h.index <= 0 {
		return nil, false
	}
	h.index--
	return CloneForest(h.snapshots[h.index]), true
}

// Redo steps the cursor forward and returns that snapshot. At the newest
// snapshot it is a no-op and returns ok=false.
func (h *History) Redo() (models.TemplateSections, bool) {
	if h.index >= len(h.snapshots)-1 {
		return nil, false
	}
	h.index++
	return CloneForest(h.snapshots[h.index]), true
}

// CanUndo reports whether an older snapshot exists.
func (h *History) CanUndo() bool { return h.index > 0 }

// CanRedo reports whether a newer snapshot exists.
func (h *History) CanRedo() bool { return h.index < len(h.snapshots)-1 }

// Len reports the number of stored snapshots.
func (h *History) Len() int { return len(h.snapshots) }

// Index reports the cursor position, -1 when empty.
func (h *History) Index() int { return h.index }
