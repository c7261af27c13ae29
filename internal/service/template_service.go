package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"insurance-leadgen-backend/internal/builder"
	"insurance-leadgen-backend/internal/models"
	"insurance-leadgen-backend/internal/repository"
	"insurance-leadgen-backend/pkg/cache"
	"insurance-leadgen-backend/pkg/logger"
	"insurance-leadgen-backend/pkg/utils"
)

// TemplateService owns the persistence boundary of the builder: every
// forest read from storage passes through normalization before any code
// touches it, and every save writes the whole document atomically.
type TemplateService struct {
	templateRepo repository.TemplateRepository
	cache        *cache.Cache
	ids          builder.IDGenerator
}

func NewTemplateService(templateRepo repository.TemplateRepository, cacheService *cache.Cache) *TemplateService {
	return &TemplateService{
		templateRepo: templateRepo,
		cache:        cacheService,
		ids:          builder.UUIDGenerator{},
	}
}

func (s *TemplateService) cacheTemplate(tmpl *models.Template) {
	if s == nil || s.cache == nil || tmpl == nil {
		return
	}

	s.cache.CacheTemplate(tmpl.ID, tmpl)
	if tmpl.Slug != "" {
		s.cache.CacheTemplateBySlug(tmpl.Slug, tmpl)
	}
}

// GetByID loads a template and normalizes its sections. A load failure is
// fatal to an edit session; callers surface it.
func (s *TemplateService) GetByID(id uint) (*models.Template, error) {
	if s.cache != nil {
		var cached models.Template
		if err := s.cache.GetCachedTemplate(id, &cached); err == nil {
			cached.Sections = builder.NormalizeForest(cached.Sections)
			return &cached, nil
		}
	}

	tmpl, err := s.templateRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load template %d: %w", id, err)
	}

	tmpl.Sections = builder.NormalizeForest(tmpl.Sections)
	s.cacheTemplate(tmpl)
	return tmpl, nil
}

// GetBySlug loads a published-or-not template by slug, normalized.
func (s *TemplateService) GetBySlug(slug string) (*models.Template, error) {
	tmpl, err := s.templateRepo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to load template %q: %w", slug, err)
	}

	tmpl.Sections = builder.NormalizeForest(tmpl.Sections)
	return tmpl, nil
}

// GetAll lists templates with normalized sections.
func (s *TemplateService) GetAll() ([]models.Template, error) {
	templates, err := s.templateRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range templates {
		templates[i].Sections = builder.NormalizeForest(templates[i].Sections)
	}
	return templates, nil
}

// Create persists a new template. Slug falls back to the name; sections
// are normalized before the write so partial external data never lands in
// storage.
func (s *TemplateService) Create(req models.CreateTemplateRequest) (*models.Template, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.New("template name is required")
	}

	var slug string
	if strings.TrimSpace(req.Slug) != "" {
		slug = utils.GenerateSlug(req.Slug)
	} else {
		slug = utils.GenerateSlug(req.Name)
	}
	if slug == "" {
		return nil, errors.New("template slug is required")
	}

	exists, err := s.templateRepo.ExistsBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check template existence: %w", err)
	}
	if exists {
		return nil, errors.New("template with this slug already exists")
	}

	tmpl := &models.Template{
		Name:             strings.TrimSpace(req.Name),
		Slug:             slug,
		Sections:         builder.NormalizeForest(req.Sections),
		GlobalStyles:     req.GlobalStyles,
		CustomVariables:  req.CustomVariables,
		SEOTitleTemplate: req.SEOTitleTemplate,
		SEODescTemplate:  req.SEODescTemplate,
		InsuranceType:    req.InsuranceType,
		Published:        req.Published,
	}

	if err := s.templateRepo.Create(tmpl); err != nil {
		return nil, fmt.Errorf("failed to create template: %w", err)
	}

	s.cacheTemplate(tmpl)
	return tmpl, nil
}

// Update patches a template. The whole sections forest replaces the stored
// one when present; there is no partial-save state.
func (s *TemplateService) Update(id uint, req models.UpdateTemplateRequest) (*models.Template, error) {
	tmpl, err := s.templateRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load template %d: %w", id, err)
	}

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		tmpl.Name = strings.TrimSpace(*req.Name)
	}
	if req.Slug != nil && strings.TrimSpace(*req.Slug) != "" {
		slug := utils.GenerateSlug(*req.Slug)
		exists, err := s.templateRepo.ExistsBySlugExceptID(slug, id)
		if err != nil {
			return nil, fmt.Errorf("failed to check template existence: %w", err)
		}
		if exists {
			return nil, errors.New("template with this slug already exists")
		}
		tmpl.Slug = slug
	}
	if req.Sections != nil {
		tmpl.Sections = builder.NormalizeForest(*req.Sections)
	}
	if req.GlobalStyles != nil {
		tmpl.GlobalStyles = *req.GlobalStyles
	}
	if req.CustomVariables != nil {
		tmpl.CustomVariables = *req.CustomVariables
	}
	if req.SEOTitleTemplate != nil {
		tmpl.SEOTitleTemplate = *req.SEOTitleTemplate
	}
	if req.SEODescTemplate != nil {
		tmpl.SEODescTemplate = *req.SEODescTemplate
	}
	if req.InsuranceType != nil {
		tmpl.InsuranceType = *req.InsuranceType
	}
	if req.Published != nil {
		tmpl.Published = *req.Published
	}

	if err := s.templateRepo.Update(tmpl); err != nil {
		return nil, fmt.Errorf("failed to update template: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.InvalidateTemplate(id); err != nil {
			logger.Warn("Failed to invalidate template cache", map[string]interface{}{"template_id": id})
		}
	}
	s.cacheTemplate(tmpl)
	return tmpl, nil
}

// Delete removes a template permanently.
func (s *TemplateService) Delete(id uint) error {
	if err := s.templateRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete template: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.InvalidateTemplate(id); err != nil {
			logger.Warn("Failed to invalidate template cache", map[string]interface{}{"template_id": id})
		}
	}
	return nil
}

// Duplicate copies a template under a fresh slug, reassigning every element
// id in the forest so the copy shares nothing with the original.
func (s *TemplateService) Duplicate(id uint) (*models.Template, error) {
	original, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	duplicate := &models.Template{
		Name:             fmt.Sprintf("%s (Copy)", original.Name),
		Slug:             fmt.Sprintf("%s-copy-%d", original.Slug, time.Now().Unix()),
		Sections:         builder.ReassignIDs(original.Sections, s.ids),
		GlobalStyles:     original.GlobalStyles,
		CustomVariables:  original.CustomVariables,
		SEOTitleTemplate: original.SEOTitleTemplate,
		SEODescTemplate:  original.SEODescTemplate,
		InsuranceType:    original.InsuranceType,
		Published:        false,
	}

	if err := s.templateRepo.Create(duplicate); err != nil {
		return nil, fmt.Errorf("failed to duplicate template: %w", err)
	}

	return duplicate, nil
}

// IsSlugAvailable checks whether a slug can be used, optionally excluding
// an existing template.
func (s *TemplateService) IsSlugAvailable(slug string, excludeID *uint) (bool, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return false, errors.New("slug cannot be empty")
	}

	if excludeID != nil {
		exists, err := s.templateRepo.ExistsBySlugExceptID(slug, *excludeID)
		if err != nil {
			return false, err
		}
		return !exists, nil
	}

	exists, err := s.templateRepo.ExistsBySlug(slug)
	if err != nil {
		return false, err
	}
	return !exists, nil
}
