package builder

import (
	"github.com/google/uuid"

	"insurance-leadgen-backend/internal/models"
)

// IDGenerator supplies ids for new and duplicated elements. Injected so
// tests can use a deterministic sequence.
type IDGenerator interface {
	Next() string
}

// UUIDGenerator issues random uuid ids, prefixed the way the builder UI
// labels elements.
type UUIDGenerator struct{}

func (UUIDGenerator) Next() string {
	return "el-" + uuid.New().String()
}

// CloneElement makes a structural deep copy of an element and its subtree.
// No map or slice is shared with the source, so a clone can be mutated
// without touching history snapshots.
func CloneElement(el models.BuilderElement) models.BuilderElement {
	cloned := el

	cloned.Styles = models.ResponsiveStyles{
		Desktop: cloneStyleMap(el.Styles.Desktop),
		Tablet:  cloneStyleMap(el.Styles.Tablet),
		Mobile:  cloneStyleMap(el.Styles.Mobile),
	}

	if el.Content != nil {
		content := *el.Content
		if el.Content.Settings != nil {
			content.Settings = make(map[string]interface{}, len(el.Content.Settings))
			for k, v := range el.Content.Settings {
				content.Settings[k] = v
			}
		}
		cloned.Content = &content
	}

	if el.Animation != nil {
		animation := *el.Animation
		cloned.Animation = &animation
	}

	if el.Conditions != nil {
		cloned.Conditions = make([]models.DisplayCondition, len(el.Conditions))
		copy(cloned.Conditions, el.Conditions)
	}

	if el.Attributes != nil {
		cloned.Attributes = make(map[string]string, len(el.Attributes))
		for k, v := range el.Attributes {
			cloned.Attributes[k] = v
		}
	}

	if el.Children != nil {
		cloned.Children = make([]models.BuilderElement, 0, len(el.Children))
		for _, child := range el.Children {
			cloned.Children = append(cloned.Children, CloneElement(child))
		}
	}

	return cloned
}

// CloneForest deep-copies a whole sections forest.
func CloneForest(forest models.TemplateSections) models.TemplateSections {
	cloned := make(models.TemplateSections, 0, len(forest))
	for _, el := range forest {
		cloned = append(cloned, CloneElement(el))
	}
	return cloned
}

func cloneStyleMap(m models.StyleMap) models.StyleMap {
	cloned := make(models.StyleMap, len(m))
	for k, v := range m {
		cloned[k] = v
	}
	return cloned
}

// Insert returns a new forest with el added under parentID, or at the root
// when parentID is empty. A negative position appends; otherwise el is
// spliced at the given index (clamped to the list length). An unknown
// parentID leaves the (cloned) forest unchanged.
func Insert(forest models.TemplateSections, el models.BuilderElement, parentID string, position int) models.TemplateSections {
	next := CloneForest(forest)

	if parentID == "" {
		list := []models.BuilderElement(next)
		return models.TemplateSections(spliceElement(list, el, position))
	}

	if parent := findInList(next, parentID); parent != nil {
		if parent.Children == nil {
			parent.Children = []models.BuilderElement{}
		}
		parent.Children = spliceElement(parent.Children, el, position)
	}

	return next
}

func spliceElement(list []models.BuilderElement, el models.BuilderElement, position int) []models.BuilderElement {
	if position < 0 || position >= len(list) {
		return append(list, el)
	}
	list = append(list, models.BuilderElement{})
	copy(list[position+1:], list[position:])
	list[position] = el
	return list
}

// ElementPatch carries the optional fields of an Update call. Styles and
// Children replace wholesale when set, matching the builder UI's
// object-spread merge; per-device style merges go through UpdateStyle.
type ElementPatch struct {
	Name       *string
	Content    *models.ElementContent
	Styles     *models.ResponsiveStyles
	Animation  *models.AnimationSettings
	Conditions *[]models.DisplayCondition
	Attributes *map[string]string
	IsLocked   *bool
	IsHidden   *bool
}

// Update returns a new forest with the patch shallow-merged onto the first
// element matching id, or an unchanged clone when the id is absent.
func Update(forest models.TemplateSections, id string, patch ElementPatch) models.TemplateSections {
	next := CloneForest(forest)

	el := findInList(next, id)
	if el == nil {
		return next
	}

	if patch.Name != nil {
		el.Name = *patch.Name
	}
	if patch.Content != nil {
		el.Content = patch.Content
	}
	if patch.Styles != nil {
		el.Styles = *patch.Styles
	}
	if patch.Animation != nil {
		el.Animation = patch.Animation
	}
	if patch.Conditions != nil {
		el.Conditions = *patch.Conditions
	}
	if patch.Attributes != nil {
		el.Attributes = *patch.Attributes
	}
	if patch.IsLocked != nil {
		el.IsLocked = *patch.IsLocked
	}
	if patch.IsHidden != nil {
		el.IsHidden = *patch.IsHidden
	}

	return next
}

// UpdateStyle returns a new forest with the given properties merged into the
// element's style map for one device tier. Other tiers are untouched.
func UpdateStyle(forest models.TemplateSections, id string, device models.Device, styles models.StyleMap) models.TemplateSections {
	next := CloneForest(forest)

	el := findInList(next, id)
	if el == nil {
		return next
	}

	merged := el.Styles.ForDevice(device)
	if merged == nil {
		merged = models.StyleMap{}
	}
	for k, v := range styles {
		merged[k] = v
	}
	el.Styles.SetForDevice(device, merged)

	return next
}

// Remove returns a new forest with the first element matching id spliced
// out of its containing list.
func Remove(forest models.TemplateSections, id string) models.TemplateSections {
	next := CloneForest(forest)
	list, _ := removeFromList(next, id)
	return models.TemplateSections(list)
}

func removeFromList(list []models.BuilderElement, id string) ([]models.BuilderElement, bool) {
	for i := range list {
		if list[i].ID == id {
			return append(list[:i], list[i+1:]...), true
		}
		if len(list[i].Children) > 0 {
			if children, ok := removeFromList(list[i].Children, id); ok {
				list[i].Children = children
				return list, true
			}
		}
	}
	return list, false
}

// Duplicate returns a new forest where the subtree of the first element
// matching id is deep-copied with fresh ids throughout and inserted right
// after the original in the same sibling list.
func Duplicate(forest models.TemplateSections, id string, ids IDGenerator) models.TemplateSections {
	next := CloneForest(forest)
	list, _ := duplicateInList(next, id, ids)
	return models.TemplateSections(list)
}

func duplicateInList(list []models.BuilderElement, id string, ids IDGenerator) ([]models.BuilderElement, bool) {
	for i := range list {
		if list[i].ID == id {
			copied := reassignIDs(CloneElement(list[i]), ids)
			out := make([]models.BuilderElement, 0, len(list)+1)
			out = append(out, list[:i+1]...)
			out = append(out, copied)
			out = append(out, list[i+1:]...)
			return out, true
		}
		if len(list[i].Children) > 0 {
			if children, ok := duplicateInList(list[i].Children, id, ids); ok {
				list[i].Children = children
				return list, true
			}
		}
	}
	return list, false
}

func reassignIDs(el models.BuilderElement, ids IDGenerator) models.BuilderElement {
	el.ID = ids.Next()
	for i := range el.Children {
		el.Children[i] = reassignIDs(el.Children[i], ids)
	}
	return el
}

// ReassignIDs deep-copies a forest with every element id replaced by a
// fresh one. Used when a whole document is duplicated.
func ReassignIDs(forest models.TemplateSections, ids IDGenerator) models.TemplateSections {
	next := CloneForest(forest)
	for i := range next {
		next[i] = reassignIDs(next[i], ids)
	}
	return next
}

// MoveDirection is a sibling-order move in the layers panel.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// Move returns a new forest with the first element matching id swapped with
// its neighbouring sibling. Moving the first sibling up or the last down is
// a no-op. Elements never change parents through Move.
func Move(forest models.TemplateSections, id string, direction MoveDirection) models.TemplateSections {
	next := CloneForest(forest)
	moveInList(next, id, direction)
	return next
}

func moveInList(list []models.BuilderElement, id string, direction MoveDirection) bool {
	for i := range list {
		if list[i].ID == id {
			j := i - 1
			if direction == MoveDown {
				j = i + 1
			}
			if j >= 0 && j < len(list) {
				list[i], list[j] = list[j], list[i]
			}
			return true
		}
		if len(list[i].Children) > 0 && moveInList(list[i].Children, id, direction) {
			return true
		}
	}
	return false
}

// Find returns the first element matching id in pre-order, or nil. The
// returned pointer aliases the forest; callers must not hold it across
// mutations.
func Find(forest models.TemplateSections, id string) *models.BuilderElement {
	return findInList(forest, id)
}

func findInList(list []models.BuilderElement, id string) *models.BuilderElement {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
		if found := findInList(list[i].Children, id); found != nil {
			return found
		}
	}
	return nil
}

// CountElements reports the total number of nodes in a forest.
func CountElements(forest models.TemplateSections) int {
	total := 0
	for i := range forest {
		total += 1 + CountElements(forest[i].Children)
	}
	return total
}
