package builder

import (
	"reflect"
	"testing"

	"insurance-leadgen-backend/internal/models"
)

func TestNormalizeElementDefaults(t *testing.T) {
	el := NormalizeElement(models.BuilderElement{
		ID:   "a",
		Type: models.ElementTypeSection,
		Children: []models.BuilderElement{
			{ID: "b", Type: models.ElementTypeLeaf},
		},
	})

	if el.Styles.Desktop == nil || el.Styles.Tablet == nil || el.Styles.Mobile == nil {
		t.Fatalf("style maps not defaulted")
	}
	child := el.Children[0]
	if child.Styles.Desktop == nil || child.Children == nil {
		t.Errorf("children not normalized recursively")
	}
}

func TestNormalizeElementIdempotent(t *testing.T) {
	el := NormalizeElement(models.BuilderElement{
		ID:   "a",
		Type: models.ElementTypeSection,
		Styles: models.ResponsiveStyles{
			Desktop: models.StyleMap{"color": "red"},
		},
		Children: []models.BuilderElement{{ID: "b", Type: models.ElementTypeLeaf}},
	})

	again := NormalizeElement(CloneElement(el))
	if !reflect.DeepEqual(el, again) {
		t.Errorf("normalizing a normalized element changed it")
	}
	if again.Styles.Desktop["color"] != "red" {
		t.Errorf("existing styles lost during normalization")
	}
}

func TestNormalizeForestNil(t *testing.T) {
	forest := NormalizeForest(nil)
	if forest == nil || len(forest) != 0 {
		t.Errorf("nil forest should normalize to an empty one")
	}
}
