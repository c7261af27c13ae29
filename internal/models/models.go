package models

import (
	"time"

	"gorm.io/gorm"
)

// Template is a page template built in the visual builder. Sections holds
// the whole element forest as JSONB; the builder core is the only writer.
type Template struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`

	Sections        TemplateSections `gorm:"type:jsonb" json:"sections"`
	GlobalStyles    string           `gorm:"type:text" json:"globalStyles"`
	CustomVariables CustomVariables  `gorm:"type:jsonb" json:"customVariables"`

	SEOTitleTemplate string `json:"seoTitleTemplate"`
	SEODescTemplate  string `json:"seoDescTemplate"`

	InsuranceType string `gorm:"index" json:"insurance_type"`
	Published     bool   `gorm:"default:false" json:"published"`
}

type CreateTemplateRequest struct {
	Name             string           `json:"name" binding:"required"`
	Slug             string           `json:"slug"`
	Sections         TemplateSections `json:"sections"`
	GlobalStyles     string           `json:"globalStyles"`
	CustomVariables  CustomVariables  `json:"customVariables"`
	SEOTitleTemplate string           `json:"seoTitleTemplate"`
	SEODescTemplate  string           `json:"seoDescTemplate"`
	InsuranceType    string           `json:"insurance_type"`
	Published        bool             `json:"published"`
}

type UpdateTemplateRequest struct {
	Name             *string           `json:"name"`
	Slug             *string           `json:"slug"`
	Sections         *TemplateSections `json:"sections"`
	GlobalStyles     *string           `json:"globalStyles"`
	CustomVariables  *CustomVariables  `json:"customVariables"`
	SEOTitleTemplate *string           `json:"seoTitleTemplate"`
	SEODescTemplate  *string           `json:"seoDescTemplate"`
	InsuranceType    *string           `json:"insurance_type"`
	Published        *bool             `json:"published"`
}

// Lead is a captured quote request from a landing page form.
type Lead struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	InsuranceType string `gorm:"index;not null" json:"insurance_type"`
	ZipCode       string `gorm:"not null" json:"zip_code"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`

	SourcePage string `json:"source_page"`
	Campaign   string `json:"campaign"`

	Forwarded   bool       `gorm:"default:false" json:"forwarded"`
	ForwardedAt *time.Time `json:"forwarded_at,omitempty"`
	RedirectURL string     `json:"redirect_url"`
}

type CreateLeadRequest struct {
	InsuranceType string `json:"insurance_type" binding:"required"`
	ZipCode       string `json:"zip_code" binding:"required"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	SourcePage    string `json:"source_page"`
	Campaign      string `json:"campaign"`
}

// Popup trigger kinds.
const (
	PopupTriggerScroll     = "scroll"
	PopupTriggerExitIntent = "exit_intent"
	PopupTriggerTimed      = "timed"
)

// PopupConfig is the configuration shape of an engagement popup. Trigger
// evaluation runs client-side; the backend only stores and serves the shape,
// and the builder preview consumes it.
type PopupConfig struct {
	ID              string `json:"id"`
	Trigger         string `json:"trigger"`
	Enabled         bool   `json:"enabled"`
	DelaySeconds    int    `json:"delay_seconds,omitempty"`
	ScrollThreshold int    `json:"scroll_threshold,omitempty"`
	FrequencyHours  int    `json:"frequency_hours"`
	TemplateID      uint   `json:"template_id,omitempty"`
	Headline        string `json:"headline"`
	BodyHTML        string `json:"body_html"`
	CTALabel        string `json:"cta_label"`
	CTAURL          string `json:"cta_url"`
}

type UpdatePopupsRequest struct {
	Popups []PopupConfig `json:"popups" binding:"required"`
}

// AnalyticsEvent is a single client-side engagement event pushed onto the
// event queue.
type AnalyticsEvent struct {
	Name      string                 `json:"name" binding:"required"`
	Page      string                 `json:"page"`
	Payload   map[string]interface{} `json:"payload,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

type Setting struct {
	Key       string    `gorm:"primaryKey;size:191" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
