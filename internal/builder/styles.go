package builder

import (
	"sort"
	"strings"

	"insurance-leadgen-backend/internal/models"
)

// ComputedStyle resolves the effective style map of an element for one
// device tier. Desktop is the base. Tablet overlays desktop. Mobile overlays
// tablet which overlays desktop, so a tablet override carries down to mobile
// unless mobile sets the property itself. Desktop never receives overlays.
func ComputedStyle(el *models.BuilderElement, device models.Device) models.StyleMap {
	computed := models.StyleMap{}

	for k, v := range el.Styles.Desktop {
		computed[k] = v
	}

	switch device {
	case models.DeviceTablet:
		for k, v := range el.Styles.Tablet {
			computed[k] = v
		}
	case models.DeviceMobile:
		for k, v := range el.Styles.Tablet {
			computed[k] = v
		}
		for k, v := range el.Styles.Mobile {
			computed[k] = v
		}
	}

	return computed
}

// InlineStyle renders a style map as an HTML style attribute value with
// stable property ordering. Property names arrive in camelCase from the
// builder UI and are emitted as CSS kebab-case.
func InlineStyle(styles models.StyleMap) string {
	if len(styles) == 0 {
		return ""
	}

	keys := make([]string, 0, len(styles))
	for k := range styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		if sb.Len() > 0 {
			sb.WriteString(";")
		}
		sb.WriteString(cssProperty(k))
		sb.WriteString(":")
		sb.WriteString(styles[k])
	}
	return sb.String()
}

func cssProperty(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte('-')
			sb.WriteRune(r + ('a' - 'A'))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
