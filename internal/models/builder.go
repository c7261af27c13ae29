package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Device is a responsive tier of the builder canvas.
type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceTablet  Device = "tablet"
	DeviceMobile  Device = "mobile"
)

func ValidDevice(d Device) bool {
	return d == DeviceDesktop || d == DeviceTablet || d == DeviceMobile
}

// Structural element types. Layout types may hold children and accept
// drops; everything else is a leaf.
const (
	ElementTypeSection   = "section"
	ElementTypeContainer = "container"
	ElementTypeRow       = "row"
	ElementTypeColumn    = "column"
	ElementTypeLeaf      = "element"
)

func IsLayoutType(t string) bool {
	switch t {
	case ElementTypeSection, ElementTypeContainer, ElementTypeRow, ElementTypeColumn:
		return true
	}
	return false
}

// StyleMap holds CSS properties in camelCase, the form the builder UI
// edits them in.
type StyleMap map[string]string

// ResponsiveStyles carries the per-tier style overrides of an element.
// Desktop is the base tier; tablet and mobile hold overrides only.
type ResponsiveStyles struct {
	Desktop StyleMap `json:"desktop"`
	Tablet  StyleMap `json:"tablet"`
	Mobile  StyleMap `json:"mobile"`
}

func (s *ResponsiveStyles) ForDevice(d Device) StyleMap {
	switch d {
	case DeviceTablet:
		return s.Tablet
	case DeviceMobile:
		return s.Mobile
	default:
		return s.Desktop
	}
}

func (s *ResponsiveStyles) SetForDevice(d Device, m StyleMap) {
	switch d {
	case DeviceTablet:
		s.Tablet = m
	case DeviceMobile:
		s.Mobile = m
	default:
		s.Desktop = m
	}
}

// Content kinds an element can carry.
const (
	ContentText     = "text"
	ContentHTML     = "html"
	ContentVariable = "variable"
	ContentImage    = "image"
	ContentIcon     = "icon"
	ContentButton   = "button"
	ContentForm     = "form"
	ContentVideo    = "video"
	ContentMap      = "map"
	ContentCode     = "code"
	ContentDivider  = "divider"
	ContentSpacer   = "spacer"
)

// ElementContent is the payload of a leaf element. Variable elements carry
// the variable name and a fallback shown when the page context has no
// value for it.
type ElementContent struct {
	Type     string                 `json:"type"`
	Value    string                 `json:"value,omitempty"`
	Variable string                 `json:"variable,omitempty"`
	Fallback string                 `json:"fallback,omitempty"`
	Settings map[string]interface{} `json:"settings,omitempty"`
}

type AnimationSettings struct {
	Type            string `json:"type"`
	Duration        int    `json:"duration,omitempty"`
	Delay           int    `json:"delay,omitempty"`
	Easing          string `json:"easing,omitempty"`
	Direction       string `json:"direction,omitempty"`
	CustomKeyframes string `json:"customKeyframes,omitempty"`
}

// DisplayCondition gates rendering on a page-context field. Evaluation
// happens at publish time, outside the builder.
type DisplayCondition struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    string `json:"value,omitempty"`
}

// BuilderElement is one node of the template document tree.
type BuilderElement struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name,omitempty"`

	Content    *ElementContent    `json:"content,omitempty"`
	Styles     ResponsiveStyles   `json:"styles"`
	Animation  *AnimationSettings `json:"animation,omitempty"`
	Conditions []DisplayCondition `json:"conditions,omitempty"`
	Attributes map[string]string  `json:"attributes,omitempty"`

	Children []BuilderElement `json:"children"`

	IsLocked bool `json:"isLocked,omitempty"`
	IsHidden bool `json:"isHidden,omitempty"`
}

// TemplateSections is the root forest of a template, stored as a single
// JSONB column.
type TemplateSections []BuilderElement

func (s TemplateSections) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	return json.Marshal(s)
}

func (s *TemplateSections) Scan(value interface{}) error {
	if value == nil {
		*s = TemplateSections{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("failed to scan TemplateSections: unsupported type")
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, s)
}

// CustomVariables are template-local variable defaults layered under the
// page context at render time.
type CustomVariables map[string]string

func (v CustomVariables) Value() (driver.Value, error) {
	if v == nil {
		return "{}", nil
	}
	return json.Marshal(v)
}

func (v *CustomVariables) Scan(value interface{}) error {
	if value == nil {
		*v = CustomVariables{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("failed to scan CustomVariables: unsupported type")
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, v)
}
