package builder

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"insurance-leadgen-backend/internal/models"
)

// CanvasRenderer produces the edit-mode HTML of a forest: selection and
// hover outlines, placeholder badges for variables, drop hints for empty
// layout elements. Hidden subtrees produce no output at all.
type CanvasRenderer struct {
	sanitizer    *bluemonday.Policy
	ShowOutlines bool
}

func NewCanvasRenderer() *CanvasRenderer {
	return &CanvasRenderer{
		sanitizer:    bluemonday.UGCPolicy(),
		ShowOutlines: true,
	}
}

// Render walks the forest at the given device tier. selectedID/hoveredID
// control outline classes only; they never touch the document model.
func (r *CanvasRenderer) Render(forest models.TemplateSections, device models.Device, selectedID, hoveredID string) string {
	var sb strings.Builder
	for i := range forest {
		r.renderElement(&sb, &forest[i], device, selectedID, hoveredID)
	}
	return sb.String()
}

func (r *CanvasRenderer) renderElement(sb *strings.Builder, el *models.BuilderElement, device models.Device, selectedID, hoveredID string) {
	if el.IsHidden {
		return
	}

	classes := []string{"builder-el"}
	if r.ShowOutlines {
		switch el.ID {
		case selectedID:
			classes = append(classes, "builder-el--selected")
		case hoveredID:
			classes = append(classes, "builder-el--hovered")
		}
	}
	if el.IsLocked {
		classes = append(classes, "builder-el--locked")
	}
	if class, ok := el.Attributes["class"]; ok && class != "" {
		classes = append(classes, class)
	}

	styles := ComputedStyle(el, device)

	sb.WriteString(`<div class="` + template.HTMLEscapeString(strings.Join(classes, " ")) + `"`)
	sb.WriteString(` data-element-id="` + template.HTMLEscapeString(el.ID) + `"`)
	sb.WriteString(` data-element-type="` + template.HTMLEscapeString(el.Type) + `"`)
	if models.IsLayoutType(el.Type) {
		sb.WriteString(` data-droppable="true"`)
	}
	if style := InlineStyle(styles); style != "" {
		sb.WriteString(` style="` + template.HTMLEscapeString(style) + `"`)
	}
	sb.WriteString(`>`)

	switch {
	case el.Content != nil:
		r.renderContent(sb, el, styles)
	case len(el.Children) > 0:
		for i := range el.Children {
			r.renderElement(sb, &el.Children[i], device, selectedID, hoveredID)
		}
	case models.IsLayoutType(el.Type):
		sb.WriteString(`<div class="builder-el__dropzone">Drop elements here</div>`)
	}

	sb.WriteString(`</div>`)
}

func (r *CanvasRenderer) renderContent(sb *strings.Builder, el *models.BuilderElement, styles models.StyleMap) {
	content := el.Content

	switch content.Type {
	case models.ContentText:
		sb.WriteString(`<span>` + template.HTMLEscapeString(content.Value) + `</span>`)
	case models.ContentHTML, models.ContentCode:
		sb.WriteString(r.sanitizer.Sanitize(content.Value))
	case models.ContentImage:
		src := content.Value
		if src == "" {
			src = "/placeholder.jpg"
		}
		alt, _ := content.Settings["alt"].(string)
		sb.WriteString(`<img src="` + template.HTMLEscapeString(src) + `" alt="` + template.HTMLEscapeString(alt) + `" style="max-width:100%;height:auto" />`)
	case models.ContentButton:
		url, _ := content.Settings["url"].(string)
		if url == "" {
			url = "#"
		}
		sb.WriteString(`<a href="` + template.HTMLEscapeString(url) + `">` + template.HTMLEscapeString(content.Value) + `</a>`)
	case models.ContentVariable:
		// Edit mode shows the token itself, not the substituted value.
		sb.WriteString(`<span class="builder-el__variable">` + template.HTMLEscapeString("{{"+content.Variable+"}}") + `</span>`)
	case models.ContentDivider:
		sb.WriteString(`<hr />`)
	case models.ContentSpacer:
		height := styles["height"]
		if height == "" {
			height = "40px"
		}
		sb.WriteString(`<div style="height:` + template.HTMLEscapeString(height) + `"></div>`)
	case models.ContentForm:
		label, _ := content.Settings["submitLabel"].(string)
		if label == "" {
			label = "Submit"
		}
		sb.WriteString(`<div class="builder-el__form">` + template.HTMLEscapeString(label) + `</div>`)
	default:
		sb.WriteString(template.HTMLEscapeString(content.Value))
	}
}
