package builder

import (
	"strings"
	"testing"

	"insurance-leadgen-backend/internal/models"
)

func TestSubstituteVariables(t *testing.T) {
	vars := map[string]string{"name": "Ana"}

	got := SubstituteVariables("Hello {{name}}, visit {{missing}}", vars)
	if got != "Hello Ana, visit " {
		t.Errorf("SubstituteVariables = %q", got)
	}

	if SubstituteVariables("", vars) != "" {
		t.Errorf("empty input should stay empty")
	}
	if SubstituteVariables("no tokens", vars) != "no tokens" {
		t.Errorf("token-free text changed")
	}
}

func TestSubstituteVariablesTrimsTokenWhitespace(t *testing.T) {
	vars := map[string]string{"city": "Austin"}
	if got := SubstituteVariables("{{ city }}", vars); got != "Austin" {
		t.Errorf("whitespace inside token not tolerated: %q", got)
	}
}

func TestPreviewRenderSubstitutesText(t *testing.T) {
	r := NewPreviewRenderer()
	forest := models.TemplateSections{NormalizeElement(models.BuilderElement{
		ID:      "a",
		Type:    models.ElementTypeLeaf,
		Content: &models.ElementContent{Type: models.ContentText, Value: "Rates in {{city}}"},
	})}

	html := r.Render(forest, map[string]string{"city": "Denver"}, models.DeviceDesktop)
	if !strings.Contains(html, "Rates in Denver") {
		t.Errorf("variable not substituted: %q", html)
	}
}

func TestPreviewRenderSkipsHiddenSubtree(t *testing.T) {
	r := NewPreviewRenderer()
	hidden := section("s1", leaf("a"))
	hidden.IsHidden = true
	forest := models.TemplateSections{hidden}

	if html := r.Render(forest, nil, models.DeviceDesktop); html != "" {
		t.Errorf("hidden subtree produced output: %q", html)
	}
}

func TestPreviewRenderVariableFallback(t *testing.T) {
	r := NewPreviewRenderer()
	forest := models.TemplateSections{NormalizeElement(models.BuilderElement{
		ID:   "v",
		Type: models.ElementTypeLeaf,
		Content: &models.ElementContent{
			Type:     models.ContentVariable,
			Variable: "headline",
			Fallback: "Default Headline",
		},
	})}

	html := r.Render(forest, nil, models.DeviceDesktop)
	if !strings.Contains(html, "Default Headline") {
		t.Errorf("fallback not rendered: %q", html)
	}

	html = r.Render(forest, map[string]string{"headline": "Save Big"}, models.DeviceDesktop)
	if !strings.Contains(html, "Save Big") || strings.Contains(html, "Default Headline") {
		t.Errorf("variable value not preferred over fallback: %q", html)
	}
}

func TestPreviewRenderAppliesDeviceStyles(t *testing.T) {
	r := NewPreviewRenderer()
	el := leaf("a")
	el.Styles.Desktop["fontSize"] = "16px"
	el.Styles.Mobile["fontSize"] = "12px"
	forest := models.TemplateSections{el}

	desktop := r.Render(forest, nil, models.DeviceDesktop)
	if !strings.Contains(desktop, "font-size:16px") {
		t.Errorf("desktop style missing: %q", desktop)
	}

	mobile := r.Render(forest, nil, models.DeviceMobile)
	if !strings.Contains(mobile, "font-size:12px") {
		t.Errorf("mobile override missing: %q", mobile)
	}
}

func TestPreviewRenderEscapesText(t *testing.T) {
	r := NewPreviewRenderer()
	forest := models.TemplateSections{NormalizeElement(models.BuilderElement{
		ID:      "a",
		Type:    models.ElementTypeLeaf,
		Content: &models.ElementContent{Type: models.ContentText, Value: "<script>alert(1)</script>"},
	})}

	html := r.Render(forest, nil, models.DeviceDesktop)
	if strings.Contains(html, "<script>") {
		t.Errorf("text content not escaped: %q", html)
	}
}
