package builder

import (
	"insurance-leadgen-backend/internal/models"
	"insurance-leadgen-backend/pkg/logger"
)

// Command is a keyboard-surface action bound in the editor (Ctrl/Cmd+Z,
// Shift+Z, D, Delete). Save is handled at the HTTP boundary.
type Command string

const (
	CommandUndo      Command = "undo"
	CommandRedo      Command = "redo"
	CommandDelete    Command = "delete"
	CommandDuplicate Command = "duplicate"
)

// Session is one in-memory editing session over a template: it owns the
// working forest, selection and hover state, the undo history and the
// device tier the canvas renders at. All mutations are synchronous and run
// to completion; the session is not safe for concurrent use and is not
// meant to be (one user, one tab, one forest).
type Session struct {
	template *models.Template
	history  *History
	ids      IDGenerator

	selectedID string
	hoveredID  string
	device     models.Device

	saving bool
}

// NewSession normalizes the template's forest and seeds history with the
// loaded snapshot, so the first undo after an edit returns to the pristine
// state even for a brand-new empty template.
func NewSession(template *models.Template, ids IDGenerator) *Session {
	if ids == nil {
		ids = UUIDGenerator{}
	}

	template.Sections = NormalizeForest(template.Sections)

	s := &Session{
		template: template,
		history:  NewHistory(),
		ids:      ids,
		device:   models.DeviceDesktop,
	}
	s.history.Commit(template.Sections)
	return s
}

// Template exposes the session's template, including the current forest.
func (s *Session) Template() *models.Template { return s.template }

// Forest returns the current sections forest.
func (s *Session) Forest() models.TemplateSections { return s.template.Sections }

// Device returns the active canvas tier.
func (s *Session) Device() models.Device { return s.device }

// SetDevice switches the canvas tier. Unknown devices are ignored.
func (s *Session) SetDevice(d models.Device) {
	if models.ValidDevice(d) {
		s.device = d
	}
}

// Select marks an element as selected. An empty id clears the selection.
func (s *Session) Select(id string) { s.selectedID = id }

// Hover marks an element as hovered. Visual-only, independent of selection.
func (s *Session) Hover(id string) { s.hoveredID = id }

// SelectedID returns the selected element id, empty when none.
func (s *Session) SelectedID() string { return s.selectedID }

// SelectedElement resolves the current selection, nil when none or stale.
func (s *Session) SelectedElement() *models.BuilderElement {
	if s.selectedID == "" {
		return nil
	}
	return Find(s.template.Sections, s.selectedID)
}

// AddElement creates a new element of the given palette type and inserts it
// under parentID (root when empty) at position (append when negative). The
// new element becomes the selection. Structural change: commits history.
func (s *Session) AddElement(paletteType, parentID string, position int) *models.BuilderElement {
	if !KnownPaletteType(paletteType) {
		logger.Debug("Ignoring unknown palette type", map[string]interface{}{"type": paletteType})
		return nil
	}

	el := NewElement(paletteType, s.ids)
	s.template.Sections = Insert(s.template.Sections, el, parentID, position)
	s.history.Commit(s.template.Sections)
	s.selectedID = el.ID
	return Find(s.template.Sections, el.ID)
}

// HandleDrop accepts a palette drag payload dropped on targetID. Only
// layout elements accept drops; dropping on a leaf is a normal user miss
// and is silently rejected. An empty targetID drops at the root.
func (s *Session) HandleDrop(elementType, targetID string) bool {
	if targetID != "" {
		target := Find(s.template.Sections, targetID)
		if target == nil || !models.IsLayoutType(target.Type) {
			return false
		}
	}
	return s.AddElement(elementType, targetID, -1) != nil
}

// UpdateElement patches element fields. Field edits do not commit history;
// only structural operations do, so undo granularity stays at "structural
// change" rather than per keystroke.
func (s *Session) UpdateElement(id string, patch ElementPatch) {
	s.template.Sections = Update(s.template.Sections, id, patch)
}

// UpdateElementStyle merges style properties into one device tier of an
// element. No history commit, matching UpdateElement.
func (s *Session) UpdateElementStyle(id string, device models.Device, styles models.StyleMap) {
	if !models.ValidDevice(device) {
		return
	}
	s.template.Sections = UpdateStyle(s.template.Sections, id, device, styles)
}

// ToggleVisibility flips an element's isHidden flag.
func (s *Session) ToggleVisibility(id string) {
	el := Find(s.template.Sections, id)
	if el == nil {
		return
	}
	hidden := !el.IsHidden
	s.UpdateElement(id, ElementPatch{IsHidden: &hidden})
}

// DeleteElement removes an element and its subtree. Clears the selection
// when it pointed at the removed element. Commits history.
func (s *Session) DeleteElement(id string) {
	s.template.Sections = Remove(s.template.Sections, id)
	s.history.Commit(s.template.Sections)
	if s.selectedID == id {
		s.selectedID = ""
	}
}

// DuplicateElement clones an element's subtree with fresh ids, inserting
// the clone after the original. Commits history.
func (s *Session) DuplicateElement(id string) {
	s.template.Sections = Duplicate(s.template.Sections, id, s.ids)
	s.history.Commit(s.template.Sections)
}

// MoveElement swaps an element with its previous or next sibling. Commits
// history.
func (s *Session) MoveElement(id string, direction MoveDirection) {
	s.template.Sections = Move(s.template.Sections, id, direction)
	s.history.Commit(s.template.Sections)
}

// ApplyTheme merges a theme preset over the whole forest. Commits history.
// Unknown keys are ignored without a commit.
func (s *Session) ApplyTheme(key string) bool {
	preset := ThemePresetByKey(key)
	if preset == nil {
		return false
	}
	s.template.Sections = ApplyTheme(s.template.Sections, *preset)
	s.history.Commit(s.template.Sections)
	return true
}

// Undo steps back one snapshot. No-op at the oldest.
func (s *Session) Undo() bool {
	forest, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.template.Sections = forest
	return true
}

// Redo steps forward one snapshot. No-op at the newest.
func (s *Session) Redo() bool {
	forest, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.template.Sections = forest
	return true
}

// History exposes the undo stack for inspection.
func (s *Session) History() *History { return s.history }

// HandleCommand dispatches a keyboard-surface command. Delete and duplicate
// act on the current selection and are no-ops without one.
func (s *Session) HandleCommand(cmd Command) {
	switch cmd {
	case CommandUndo:
		s.Undo()
	case CommandRedo:
		s.Redo()
	case CommandDelete:
		if s.selectedID != "" {
			s.DeleteElement(s.selectedID)
		}
	case CommandDuplicate:
		if s.selectedID != "" {
			s.DuplicateElement(s.selectedID)
		}
	}
}

// BeginSave marks a save in flight. Returns false when one already is, so
// the caller rejects the second request instead of interleaving two writes
// of divergent forests.
func (s *Session) BeginSave() bool {
	if s.saving {
		return false
	}
	s.saving = true
	return true
}

// EndSave clears the in-flight flag. A failed save leaves the in-memory
// forest untouched; retry is just saving again.
func (s *Session) EndSave() { s.saving = false }
