package builder

import (
	"html/template"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"insurance-leadgen-backend/internal/models"
)

var variableToken = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// SubstituteVariables replaces every {{key}} token with its value from the
// variable map. Tokens with no matching key are deleted, never left literal
// in the output.
func SubstituteVariables(text string, vars map[string]string) string {
	if text == "" {
		return ""
	}
	return variableToken.ReplaceAllStringFunc(text, func(token string) string {
		key := strings.TrimSpace(token[2 : len(token)-2])
		return vars[key]
	})
}

// PreviewRenderer projects a forest into live-preview HTML for a chosen
// device: variables substituted, the responsive cascade applied as inline
// styles, hidden elements skipped. Pure: the forest is never mutated, so
// the projection can be re-run on every device switch or variable change.
type PreviewRenderer struct {
	sanitizer *bluemonday.Policy
}

func NewPreviewRenderer() *PreviewRenderer {
	return &PreviewRenderer{sanitizer: bluemonday.UGCPolicy()}
}

// Render walks the forest and emits the preview document body.
func (r *PreviewRenderer) Render(forest models.TemplateSections, vars map[string]string, device models.Device) string {
	if vars == nil {
		vars = map[string]string{}
	}

	var sb strings.Builder
	for i := range forest {
		r.renderElement(&sb, &forest[i], vars, device)
	}
	return sb.String()
}

func (r *PreviewRenderer) renderElement(sb *strings.Builder, el *models.BuilderElement, vars map[string]string, device models.Device) {
	if el.IsHidden {
		return
	}

	styles := ComputedStyle(el, device)

	sb.WriteString(`<div`)
	if id, ok := el.Attributes["id"]; ok && id != "" {
		sb.WriteString(` id="` + template.HTMLEscapeString(id) + `"`)
	}
	if class, ok := el.Attributes["class"]; ok && class != "" {
		sb.WriteString(` class="` + template.HTMLEscapeString(class) + `"`)
	}
	if style := InlineStyle(styles); style != "" {
		sb.WriteString(` style="` + template.HTMLEscapeString(style) + `"`)
	}
	sb.WriteString(`>`)

	if el.Content != nil {
		r.renderContent(sb, el.Content, vars, styles)
	}

	for i := range el.Children {
		r.renderElement(sb, &el.Children[i], vars, device)
	}

	sb.WriteString(`</div>`)
}

func (r *PreviewRenderer) renderContent(sb *strings.Builder, content *models.ElementContent, vars map[string]string, styles models.StyleMap) {
	switch content.Type {
	case models.ContentText:
		sb.WriteString(`<span>` + template.HTMLEscapeString(SubstituteVariables(content.Value, vars)) + `</span>`)
	case models.ContentHTML, models.ContentCode:
		sb.WriteString(r.sanitizer.Sanitize(SubstituteVariables(content.Value, vars)))
	case models.ContentVariable:
		value, ok := vars[content.Variable]
		if !ok {
			value = content.Fallback
		}
		sb.WriteString(`<span>` + template.HTMLEscapeString(value) + `</span>`)
	case models.ContentImage:
		if content.Value == "" {
			return
		}
		alt, _ := content.Settings["alt"].(string)
		sb.WriteString(`<img src="` + template.HTMLEscapeString(SubstituteVariables(content.Value, vars)) + `" alt="` + template.HTMLEscapeString(SubstituteVariables(alt, vars)) + `" style="max-width:100%;height:auto" />`)
	case models.ContentButton:
		url, _ := content.Settings["url"].(string)
		if url == "" {
			url = "#"
		}
		sb.WriteString(`<a href="` + template.HTMLEscapeString(SubstituteVariables(url, vars)) + `">` + template.HTMLEscapeString(SubstituteVariables(content.Value, vars)) + `</a>`)
	case models.ContentDivider:
		sb.WriteString(`<hr />`)
	case models.ContentSpacer:
		height := styles["height"]
		if height == "" {
			height = "40px"
		}
		sb.WriteString(`<div style="height:` + template.HTMLEscapeString(height) + `"></div>`)
	default:
		sb.WriteString(template.HTMLEscapeString(SubstituteVariables(content.Value, vars)))
	}
}
