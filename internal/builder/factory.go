package builder

import (
	"strings"

	"insurance-leadgen-backend/internal/models"
)

// PaletteItem describes one draggable entry of the element library.
type PaletteItem struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// PaletteCategory groups palette items the way the builder sidebar shows
// them.
type PaletteCategory struct {
	Category string        `json:"category"`
	Items    []PaletteItem `json:"items"`
}

// ElementLibrary returns the creatable element palette. The drag payload of
// an item is its Type string only; no other data crosses the palette/canvas
// boundary.
func ElementLibrary() []PaletteCategory {
	return []PaletteCategory{
		{
			Category: "Layout",
			Items: []PaletteItem{
				{Type: "section", Name: "Section", Icon: "rect", Description: "Full-width section container"},
				{Type: "container", Name: "Container", Icon: "box", Description: "Centered content container"},
				{Type: "row", Name: "Row", Icon: "rows", Description: "Horizontal row with columns"},
				{Type: "column", Name: "Column", Icon: "col", Description: "Vertical column"},
			},
		},
		{
			Category: "Basic",
			Items: []PaletteItem{
				{Type: "heading", Name: "Heading", Icon: "h", Description: "H1-H6 heading text"},
				{Type: "text", Name: "Text", Icon: "t", Description: "Paragraph text"},
				{Type: "image", Name: "Image", Icon: "img", Description: "Image with options"},
				{Type: "button", Name: "Button", Icon: "btn", Description: "Call-to-action button"},
				{Type: "icon", Name: "Icon", Icon: "star", Description: "Icon element"},
				{Type: "divider", Name: "Divider", Icon: "hr", Description: "Horizontal divider"},
				{Type: "spacer", Name: "Spacer", Icon: "sp", Description: "Vertical spacing"},
			},
		},
		{
			Category: "Media",
			Items: []PaletteItem{
				{Type: "video", Name: "Video", Icon: "play", Description: "Video embed"},
				{Type: "map", Name: "Map", Icon: "pin", Description: "Maps embed"},
			},
		},
		{
			Category: "Forms",
			Items: []PaletteItem{
				{Type: "form", Name: "Form", Icon: "form", Description: "Contact/lead form"},
			},
		},
		{
			Category: "Dynamic",
			Items: []PaletteItem{
				{Type: "variable", Name: "Variable", Icon: "var", Description: "Dynamic variable"},
				{Type: "code", Name: "Code", Icon: "code", Description: "Raw HTML snippet"},
			},
		},
		{
			Category: "Insurance",
			Items: []PaletteItem{
				{Type: "quote-form", Name: "Quote Form", Icon: "quote", Description: "Insurance quote form"},
				{Type: "carrier-logos", Name: "Carrier Logos", Icon: "carriers", Description: "Insurance carriers"},
				{Type: "comparison-table", Name: "Comparison", Icon: "scale", Description: "Rate comparison"},
				{Type: "testimonials", Name: "Testimonials", Icon: "chat", Description: "Customer reviews"},
				{Type: "faq", Name: "FAQ", Icon: "faq", Description: "FAQ accordion"},
				{Type: "trust-badges", Name: "Trust Badges", Icon: "badge", Description: "Trust indicators"},
			},
		},
	}
}

// KnownPaletteType reports whether a drag payload names a creatable type.
func KnownPaletteType(t string) bool {
	for _, category := range ElementLibrary() {
		for _, item := range category.Items {
			if item.Type == t {
				return true
			}
		}
	}
	return false
}

// NewElement builds a fresh element of the given palette type, seeded with
// the default desktop styles and content for that type. Layout palette
// types become layout nodes; everything else is a leaf element.
func NewElement(paletteType string, ids IDGenerator) models.BuilderElement {
	structural := models.ElementTypeLeaf
	if models.IsLayoutType(paletteType) {
		structural = paletteType
	}

	el := models.BuilderElement{
		ID:   ids.Next(),
		Type: structural,
		Name: capitalize(paletteType),
		Styles: models.ResponsiveStyles{
			Desktop: models.StyleMap{},
			Tablet:  models.StyleMap{},
			Mobile:  models.StyleMap{},
		},
		Children: []models.BuilderElement{},
	}

	switch paletteType {
	case "section":
		el.Styles.Desktop = models.StyleMap{
			"width":         "100%",
			"paddingTop":    "60px",
			"paddingBottom": "60px",
			"paddingLeft":   "20px",
			"paddingRight":  "20px",
		}
	case "container":
		el.Styles.Desktop = models.StyleMap{
			"maxWidth":    "1200px",
			"marginLeft":  "auto",
			"marginRight": "auto",
			"width":       "100%",
		}
	case "row":
		el.Styles.Desktop = models.StyleMap{
			"display":  "flex",
			"flexWrap": "wrap",
			"gap":      "20px",
		}
	case "column":
		el.Styles.Desktop = models.StyleMap{
			"flex":     "1",
			"minWidth": "0",
		}
	case "heading":
		el.Content = &models.ElementContent{Type: models.ContentText, Value: "Heading Text"}
		el.Styles.Desktop = models.StyleMap{
			"fontSize":     "36px",
			"fontWeight":   "700",
			"lineHeight":   "1.2",
			"marginBottom": "20px",
		}
	case "text":
		el.Content = &models.ElementContent{Type: models.ContentText, Value: "Lorem ipsum dolor sit amet, consectetur adipiscing elit."}
		el.Styles.Desktop = models.StyleMap{
			"fontSize":     "16px",
			"lineHeight":   "1.6",
			"marginBottom": "16px",
		}
	case "button":
		el.Content = &models.ElementContent{
			Type:     models.ContentButton,
			Value:    "Get My Free Quote",
			Settings: map[string]interface{}{"url": "#", "target": "_self"},
		}
		el.Styles.Desktop = models.StyleMap{
			"display":         "inline-block",
			"paddingTop":      "12px",
			"paddingBottom":   "12px",
			"paddingLeft":     "24px",
			"paddingRight":    "24px",
			"backgroundColor": "#2563eb",
			"color":           "#ffffff",
			"borderRadius":    "8px",
			"fontWeight":      "600",
			"textAlign":       "center",
		}
	case "image":
		el.Content = &models.ElementContent{
			Type:     models.ContentImage,
			Value:    "/placeholder.jpg",
			Settings: map[string]interface{}{"alt": "", "width": "100%", "height": "auto"},
		}
		el.Styles.Desktop = models.StyleMap{
			"maxWidth": "100%",
			"height":   "auto",
		}
	case "divider":
		el.Content = &models.ElementContent{Type: models.ContentDivider}
		el.Styles.Desktop = models.StyleMap{
			"borderTopWidth": "1px",
			"borderTopStyle": "solid",
			"borderTopColor": "#e5e7eb",
			"marginTop":      "20px",
			"marginBottom":   "20px",
		}
	case "spacer":
		el.Content = &models.ElementContent{Type: models.ContentSpacer}
		el.Styles.Desktop = models.StyleMap{"height": "40px"}
	case "variable":
		el.Content = &models.ElementContent{
			Type:     models.ContentVariable,
			Variable: "page_title",
			Fallback: "Default Value",
		}
	case "code":
		el.Content = &models.ElementContent{Type: models.ContentCode, Value: ""}
	case "video":
		el.Content = &models.ElementContent{Type: models.ContentVideo, Settings: map[string]interface{}{"url": ""}}
	case "map":
		el.Content = &models.ElementContent{Type: models.ContentMap, Settings: map[string]interface{}{"embed": ""}}
	case "form", "quote-form":
		el.Content = &models.ElementContent{
			Type:     models.ContentForm,
			Settings: map[string]interface{}{"kind": paletteType, "submitLabel": "Compare Rates"},
		}
	default:
		if structural == models.ElementTypeLeaf && el.Content == nil {
			el.Content = &models.ElementContent{Type: models.ContentText, Value: ""}
		}
	}

	return el
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ThemePreset carries per-role desktop style overrides applied across a
// whole forest at once.
type ThemePreset struct {
	Key    string                     `json:"key"`
	Name   string                     `json:"name"`
	Styles map[string]models.StyleMap `json:"styles"`
}

// ThemePresets returns the built-in themes of the builder toolbar.
func ThemePresets() []ThemePreset {
	return []ThemePreset{
		{
			Key:  "minimal",
			Name: "Minimal (Light)",
			Styles: map[string]models.StyleMap{
				"section":   {"backgroundColor": "#ffffff", "color": "#111827"},
				"heading":   {"color": "#000000", "fontFamily": "Inter, sans-serif"},
				"text":      {"color": "#374151", "fontFamily": "Inter, sans-serif"},
				"button":    {"backgroundColor": "#000000", "color": "#ffffff", "borderRadius": "0px"},
				"container": {"maxWidth": "1200px"},
			},
		},
		{
			Key:  "modern",
			Name: "Modern (Blue)",
			Styles: map[string]models.StyleMap{
				"section":   {"backgroundColor": "#f3f4f6", "color": "#1f2937"},
				"heading":   {"color": "#1e3a8a", "fontFamily": "Plus Jakarta Sans, sans-serif"},
				"text":      {"color": "#4b5563", "fontFamily": "Plus Jakarta Sans, sans-serif"},
				"button":    {"backgroundColor": "#3b82f6", "color": "#ffffff", "borderRadius": "12px", "boxShadow": "0 4px 6px -1px rgba(59, 130, 246, 0.5)"},
				"container": {"maxWidth": "1280px"},
			},
		},
		{
			Key:  "dark",
			Name: "Dark Mode",
			Styles: map[string]models.StyleMap{
				"section":   {"backgroundColor": "#111827", "color": "#f3f4f6"},
				"heading":   {"color": "#ffffff", "fontFamily": "Inter, sans-serif"},
				"text":      {"color": "#d1d5db", "fontFamily": "Inter, sans-serif"},
				"button":    {"backgroundColor": "#6366f1", "color": "#ffffff", "borderRadius": "8px"},
				"container": {"maxWidth": "1200px"},
			},
		},
	}
}

// ThemePresetByKey finds a preset, or nil.
func ThemePresetByKey(key string) *ThemePreset {
	for _, preset := range ThemePresets() {
		if preset.Key == key {
			return &preset
		}
	}
	return nil
}

// ApplyTheme returns a new forest with the preset's desktop styles merged
// onto matching elements: sections and containers by structural type,
// headings/text/buttons by their palette name.
func ApplyTheme(forest models.TemplateSections, preset ThemePreset) models.TemplateSections {
	next := CloneForest(forest)
	applyThemeToList(next, preset)
	return next
}

func applyThemeToList(list []models.BuilderElement, preset ThemePreset) {
	for i := range list {
		el := &list[i]
		if el.Styles.Desktop == nil {
			el.Styles.Desktop = models.StyleMap{}
		}

		var overrides models.StyleMap
		switch {
		case el.Type == models.ElementTypeSection:
			overrides = preset.Styles["section"]
		case el.Type == models.ElementTypeContainer:
			overrides = preset.Styles["container"]
		case el.Name == "Heading":
			overrides = preset.Styles["heading"]
		case el.Name == "Text":
			overrides = preset.Styles["text"]
		case el.Name == "Button":
			overrides = preset.Styles["button"]
		}

		for k, v := range overrides {
			el.Styles.Desktop[k] = v
		}

		applyThemeToList(el.Children, preset)
	}
}

// SampleVariables is the stand-in variable map the preview uses when no live
// page context supplies one.
func SampleVariables() map[string]string {
	return map[string]string{
		"page_title":          "Car Insurance in Los Angeles, California",
		"page_subtitle":       "Compare the best car insurance rates and save up to $500/year",
		"insurance_type":      "Car Insurance",
		"insurance_type_slug": "car-insurance",
		"country":             "United States",
		"country_code":        "US",
		"state":               "California",
		"state_code":          "CA",
		"state_slug":          "california",
		"city":                "Los Angeles",
		"city_slug":           "los-angeles",
		"location":            "Los Angeles",
		"avg_premium":         "$150",
		"avg_savings":         "$500",
		"population":          "3,900,000",
		"site_name":           "MyInsuranceBuddies",
		"site_url":            "https://myinsurancebuddies.com",
	}
}
