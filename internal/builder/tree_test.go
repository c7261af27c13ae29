package builder

import (
	"fmt"
	"testing"

	"insurance-leadgen-backend/internal/models"
)

type seqIDGenerator struct {
	n int
}

func (g *seqIDGenerator) Next() string {
	g.n++
	return fmt.Sprintf("el-%d", g.n)
}

func leaf(id string) models.BuilderElement {
	return NormalizeElement(models.BuilderElement{
		ID:      id,
		Type:    models.ElementTypeLeaf,
		Content: &models.ElementContent{Type: models.ContentText, Value: id},
	})
}

func section(id string, children ...models.BuilderElement) models.BuilderElement {
	return NormalizeElement(models.BuilderElement{
		ID:       id,
		Type:     models.ElementTypeSection,
		Children: children,
	})
}

func TestInsertAtRoot(t *testing.T) {
	forest := models.TemplateSections{section("s1")}

	next := Insert(forest, leaf("a"), "", -1)
	if len(next) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(next))
	}
	if next[1].ID != "a" {
		t.Errorf("expected appended element at the end, got %q", next[1].ID)
	}
	if len(forest) != 1 {
		t.Errorf("input forest mutated: %d roots", len(forest))
	}
}

func TestInsertIntoParentAtPosition(t *testing.T) {
	forest := models.TemplateSections{section("s1", leaf("a"), leaf("b"))}

	next := Insert(forest, leaf("x"), "s1", 1)
	children := next[0].Children
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	if children[0].ID != "a" || children[1].ID != "x" || children[2].ID != "b" {
		t.Errorf("unexpected order: %s %s %s", children[0].ID, children[1].ID, children[2].ID)
	}
}

func TestInsertUnknownParentIsNoOp(t *testing.T) {
	forest := models.TemplateSections{section("s1", leaf("a"))}

	next := Insert(forest, leaf("x"), "missing", -1)
	if CountElements(next) != CountElements(forest) {
		t.Errorf("expected unchanged forest, got %d elements", CountElements(next))
	}
}

func TestInsertPositionClamped(t *testing.T) {
	forest := models.TemplateSections{section("s1", leaf("a"))}

	next := Insert(forest, leaf("x"), "s1", 99)
	children := next[0].Children
	if children[len(children)-1].ID != "x" {
		t.Errorf("out-of-range position should append, got order %v", childIDs(children))
	}
}

func TestRemoveNestedAndRoundTrip(t *testing.T) {
	forest := models.TemplateSections{section("s1", section("c1", leaf("a"), leaf("b")))}

	removed := Remove(forest, "a")
	if Find(removed, "a") != nil {
		t.Fatalf("element still present after remove")
	}
	if CountElements(removed) != CountElements(forest)-1 {
		t.Errorf("expected one fewer element")
	}

	restored := Insert(removed, leaf("a"), "c1", 0)
	if CountElements(restored) != CountElements(forest) {
		t.Errorf("insert after remove did not restore the count")
	}
}

func TestRemoveMissingIsNoOp(t *testing.T) {
	forest := models.TemplateSections{section("s1", leaf("a"))}

	next := Remove(forest, "missing")
	if CountElements(next) != 2 {
		t.Errorf("expected unchanged forest, got %d elements", CountElements(next))
	}
}

func TestDuplicateAssignsFreshIDs(t *testing.T) {
	ids := &seqIDGenerator{}
	forest := models.TemplateSections{section("s1", leaf("a"), leaf("b"))}

	next := Duplicate(forest, "s1", ids)
	if len(next) != 2 {
		t.Fatalf("expected duplicate as sibling, got %d roots", len(next))
	}
	if next[1].ID == "s1" {
		t.Errorf("duplicate kept the original id")
	}

	seen := map[string]bool{}
	var walk func(list []models.BuilderElement)
	var dupes []string
	walk = func(list []models.BuilderElement) {
		for i := range list {
			if seen[list[i].ID] {
				dupes = append(dupes, list[i].ID)
			}
			seen[list[i].ID] = true
			walk(list[i].Children)
		}
	}
	walk(next)
	if len(dupes) != 0 {
		t.Errorf("duplicate ids in forest: %v", dupes)
	}

	if next[1].Children[0].Content.Value != "a" {
		t.Errorf("duplicate subtree lost content")
	}
}

func TestDuplicateInsertsAfterOriginal(t *testing.T) {
	ids := &seqIDGenerator{}
	forest := models.TemplateSections{section("s1", leaf("a"), leaf("b"))}

	next := Duplicate(forest, "a", ids)
	children := next[0].Children
	if len(children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(children))
	}
	if children[0].ID != "a" || children[2].ID != "b" {
		t.Errorf("duplicate not placed right after original: %v", childIDs(children))
	}
}

func TestMoveSwapsSiblings(t *testing.T) {
	forest := models.TemplateSections{section("s1", leaf("a"), leaf("b"), leaf("c"))}

	next := Move(forest, "b", MoveUp)
	if ids := childIDs(next[0].Children); ids[0] != "b" || ids[1] != "a" {
		t.Errorf("move up failed: %v", ids)
	}

	next = Move(forest, "b", MoveDown)
	if ids := childIDs(next[0].Children); ids[1] != "c" || ids[2] != "b" {
		t.Errorf("move down failed: %v", ids)
	}
}

func TestMoveBoundaryIsNoOp(t *testing.T) {
	forest := models.TemplateSections{section("s1", leaf("a"), leaf("b"))}

	next := Move(forest, "a", MoveUp)
	if ids := childIDs(next[0].Children); ids[0] != "a" {
		t.Errorf("moving first child up changed order: %v", ids)
	}

	next = Move(forest, "b", MoveDown)
	if ids := childIDs(next[0].Children); ids[1] != "b" {
		t.Errorf("moving last child down changed order: %v", ids)
	}
}

func TestFindPreOrderFirstMatch(t *testing.T) {
	forest := models.TemplateSections{
		section("s1", leaf("x")),
		section("s2", leaf("y")),
	}

	if Find(forest, "y") == nil {
		t.Fatalf("nested element not found")
	}
	if Find(forest, "missing") != nil {
		t.Errorf("found element that does not exist")
	}

	// Two elements sharing an id: pre-order first wins.
	dup := models.TemplateSections{
		section("s1", leaf("d")),
		section("s2", leaf("d")),
	}
	dup[0].Children[0].Name = "first"
	dup[1].Children[0].Name = "second"
	if found := Find(dup, "d"); found.Name != "first" {
		t.Errorf("expected first pre-order match, got %q", found.Name)
	}
}

func TestUpdatePatchesFields(t *testing.T) {
	forest := models.TemplateSections{section("s1", leaf("a"))}

	name := "Renamed"
	hidden := true
	next := Update(forest, "a", ElementPatch{Name: &name, IsHidden: &hidden})

	el := Find(next, "a")
	if el.Name != "Renamed" || !el.IsHidden {
		t.Errorf("patch not applied: name=%q hidden=%v", el.Name, el.IsHidden)
	}
	if orig := Find(forest, "a"); orig.Name == "Renamed" {
		t.Errorf("input forest mutated")
	}
}

func TestUpdateMissingIsNoOp(t *testing.T) {
	forest := models.TemplateSections{section("s1", leaf("a"))}
	name := "Renamed"

	next := Update(forest, "missing", ElementPatch{Name: &name})
	if CountElements(next) != CountElements(forest) {
		t.Errorf("forest changed on missing id")
	}
}

func TestUpdateStyleMergesOneTier(t *testing.T) {
	forest := models.TemplateSections{section("s1", leaf("a"))}
	forest = UpdateStyle(forest, "a", models.DeviceDesktop, models.StyleMap{"color": "red", "fontSize": "10px"})

	next := UpdateStyle(forest, "a", models.DeviceDesktop, models.StyleMap{"color": "blue"})
	el := Find(next, "a")
	if el.Styles.Desktop["color"] != "blue" {
		t.Errorf("property not overwritten: %q", el.Styles.Desktop["color"])
	}
	if el.Styles.Desktop["fontSize"] != "10px" {
		t.Errorf("untouched property lost: %q", el.Styles.Desktop["fontSize"])
	}
	if len(el.Styles.Tablet) != 0 || len(el.Styles.Mobile) != 0 {
		t.Errorf("other tiers modified")
	}
}

func TestCloneForestIsolation(t *testing.T) {
	forest := models.TemplateSections{section("s1", leaf("a"))}
	forest[0].Children[0].Styles.Desktop["color"] = "red"

	cloned := CloneForest(forest)
	cloned[0].Children[0].Styles.Desktop["color"] = "blue"
	cloned[0].Children[0].Content.Value = "changed"

	if forest[0].Children[0].Styles.Desktop["color"] != "red" {
		t.Errorf("clone shares style map with source")
	}
	if forest[0].Children[0].Content.Value != "a" {
		t.Errorf("clone shares content with source")
	}
}

func TestReassignIDs(t *testing.T) {
	ids := &seqIDGenerator{}
	forest := models.TemplateSections{section("s1", leaf("a"))}

	next := ReassignIDs(forest, ids)
	if next[0].ID == "s1" || next[0].Children[0].ID == "a" {
		t.Errorf("ids not reassigned: %s %s", next[0].ID, next[0].Children[0].ID)
	}
	if forest[0].ID != "s1" {
		t.Errorf("input forest mutated")
	}
}

func childIDs(list []models.BuilderElement) []string {
	out := make([]string, len(list))
	for i := range list {
		out[i] = list[i].ID
	}
	return out
}
