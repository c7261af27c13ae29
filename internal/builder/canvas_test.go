package builder

import (
	"strings"
	"testing"

	"insurance-leadgen-backend/internal/models"
)

func TestCanvasRenderSelectionAndHover(t *testing.T) {
	r := NewCanvasRenderer()
	forest := models.TemplateSections{section("s1", leaf("a"), leaf("b"))}

	html := r.Render(forest, models.DeviceDesktop, "a", "b")
	if !strings.Contains(html, "builder-el--selected") {
		t.Errorf("selected outline missing")
	}
	if !strings.Contains(html, "builder-el--hovered") {
		t.Errorf("hovered outline missing")
	}

	plain := r.Render(forest, models.DeviceDesktop, "", "")
	if strings.Contains(plain, "builder-el--selected") || strings.Contains(plain, "builder-el--hovered") {
		t.Errorf("outlines rendered without selection or hover")
	}
}

func TestCanvasRenderHiddenSubtree(t *testing.T) {
	r := NewCanvasRenderer()
	hidden := section("s1", leaf("a"))
	hidden.IsHidden = true

	if html := r.Render(models.TemplateSections{hidden}, models.DeviceDesktop, "", ""); html != "" {
		t.Errorf("hidden subtree produced canvas output: %q", html)
	}
}

func TestCanvasRenderVariableShowsToken(t *testing.T) {
	r := NewCanvasRenderer()
	forest := models.TemplateSections{NormalizeElement(models.BuilderElement{
		ID:   "v",
		Type: models.ElementTypeLeaf,
		Content: &models.ElementContent{
			Type:     models.ContentVariable,
			Variable: "page_title",
			Fallback: "ignored on canvas",
		},
	})}

	html := r.Render(forest, models.DeviceDesktop, "", "")
	if !strings.Contains(html, "{{page_title}}") {
		t.Errorf("canvas should show the variable token, got %q", html)
	}
	if strings.Contains(html, "ignored on canvas") {
		t.Errorf("canvas rendered the fallback value")
	}
}

func TestCanvasRenderDroppableMarkers(t *testing.T) {
	r := NewCanvasRenderer()
	forest := models.TemplateSections{section("s1"), leaf("a")}

	html := r.Render(forest, models.DeviceDesktop, "", "")
	if !strings.Contains(html, `data-droppable="true"`) {
		t.Errorf("layout element missing droppable marker")
	}
	if !strings.Contains(html, "builder-el__dropzone") {
		t.Errorf("empty layout element missing dropzone hint")
	}
	if strings.Count(html, `data-droppable="true"`) != 1 {
		t.Errorf("leaf element marked droppable")
	}
}

func TestCanvasRenderLockedClass(t *testing.T) {
	r := NewCanvasRenderer()
	locked := leaf("a")
	locked.IsLocked = true

	html := r.Render(models.TemplateSections{locked}, models.DeviceDesktop, "", "")
	if !strings.Contains(html, "builder-el--locked") {
		t.Errorf("locked class missing")
	}
}
