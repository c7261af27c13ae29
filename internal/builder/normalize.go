package builder

import (
	"insurance-leadgen-backend/internal/models"
)

// NormalizeElement returns an equivalent element whose three device style
// maps and children slice are guaranteed non-nil, recursively. Persisted
// trees may predate schema fields or come from an external generator with
// partial data; missing fields are defaulted silently, never reported.
// Idempotent: normalizing a normalized element is a no-op.
func NormalizeElement(el models.BuilderElement) models.BuilderElement {
	if el.Styles.Desktop == nil {
		el.Styles.Desktop = models.StyleMap{}
	}
	if el.Styles.Tablet == nil {
		el.Styles.Tablet = models.StyleMap{}
	}
	if el.Styles.Mobile == nil {
		el.Styles.Mobile = models.StyleMap{}
	}

	if el.Children == nil {
		el.Children = []models.BuilderElement{}
	} else {
		for i := range el.Children {
			el.Children[i] = NormalizeElement(el.Children[i])
		}
	}

	return el
}

// NormalizeForest normalizes every root element of a sections forest. A nil
// forest becomes an empty one.
func NormalizeForest(forest models.TemplateSections) models.TemplateSections {
	normalized := make(models.TemplateSections, 0, len(forest))
	for _, el := range forest {
		normalized = append(normalized, NormalizeElement(el))
	}
	return normalized
}
