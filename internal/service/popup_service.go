package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"insurance-leadgen-backend/internal/models"
	"insurance-leadgen-backend/internal/repository"
	"insurance-leadgen-backend/pkg/validator"
)

const popupsSettingKey = "popups"

// PopupService stores the engagement popup configuration as a single JSON
// document in the settings table. Trigger evaluation is a client concern.
type PopupService struct {
	settingRepo repository.SettingRepository
}

func NewPopupService(settingRepo repository.SettingRepository) *PopupService {
	return &PopupService{settingRepo: settingRepo}
}

// GetAll returns the stored popup configs, or an empty list when none have
// been saved yet.
func (s *PopupService) GetAll() ([]models.PopupConfig, error) {
	setting, err := s.settingRepo.Get(popupsSettingKey)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.PopupConfig{}, nil
		}
		return nil, fmt.Errorf("failed to load popup settings: %w", err)
	}

	var popups []models.PopupConfig
	if err := json.Unmarshal([]byte(setting.Value), &popups); err != nil {
		return nil, fmt.Errorf("failed to decode popup settings: %w", err)
	}
	return popups, nil
}

// GetEnabled filters the stored configs down to the ones a public page
// should receive.
func (s *PopupService) GetEnabled() ([]models.PopupConfig, error) {
	popups, err := s.GetAll()
	if err != nil {
		return nil, err
	}

	enabled := make([]models.PopupConfig, 0, len(popups))
	for _, p := range popups {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	return enabled, nil
}

// Update validates and replaces the whole popup list.
func (s *PopupService) Update(popups []models.PopupConfig) ([]models.PopupConfig, error) {
	for i := range popups {
		if err := validatePopup(&popups[i]); err != nil {
			return nil, err
		}
	}

	data, err := json.Marshal(popups)
	if err != nil {
		return nil, fmt.Errorf("failed to encode popup settings: %w", err)
	}
	if err := s.settingRepo.Set(popupsSettingKey, string(data)); err != nil {
		return nil, fmt.Errorf("failed to save popup settings: %w", err)
	}
	return popups, nil
}

func validatePopup(p *models.PopupConfig) error {
	switch p.Trigger {
	case models.PopupTriggerScroll:
		if p.ScrollThreshold <= 0 || p.ScrollThreshold > 100 {
			return fmt.Errorf("popup %q: scroll threshold must be 1-100", p.ID)
		}
	case models.PopupTriggerTimed:
		if p.DelaySeconds <= 0 {
			return fmt.Errorf("popup %q: delay must be positive", p.ID)
		}
	case models.PopupTriggerExitIntent:
	default:
		return fmt.Errorf("popup %q: unknown trigger %q", p.ID, p.Trigger)
	}

	if p.FrequencyHours < 0 {
		return fmt.Errorf("popup %q: frequency cannot be negative", p.ID)
	}
	if p.CTAURL != "" && !validator.ValidateURL(p.CTAURL) {
		return fmt.Errorf("popup %q: invalid cta url", p.ID)
	}

	p.Headline = strings.TrimSpace(validator.SanitizeString(p.Headline))
	p.BodyHTML = validator.SanitizeHTML(p.BodyHTML)
	return nil
}
