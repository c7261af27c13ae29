package repository

import (
	"insurance-leadgen-backend/internal/models"

	"gorm.io/gorm"
)

type TemplateRepository interface {
	Create(tmpl *models.Template) error
	Update(tmpl *models.Template) error
	Delete(id uint) error
	GetByID(id uint) (*models.Template, error)
	GetBySlug(slug string) (*models.Template, error)
	GetAll() ([]models.Template, error)
	ExistsBySlug(slug string) (bool, error)
	ExistsBySlugExceptID(slug string, excludeID uint) (bool, error)
}

type templateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) Create(tmpl *models.Template) error {
	return r.db.Create(tmpl).Error
}

func (r *templateRepository) Update(tmpl *models.Template) error {
	return r.db.Save(tmpl).Error
}

func (r *templateRepository) Delete(id uint) error {
	return r.db.Unscoped().Delete(&models.Template{}, id).Error
}

func (r *templateRepository) GetByID(id uint) (*models.Template, error) {
	var tmpl models.Template
	if err := r.db.First(&tmpl, id).Error; err != nil {
		return nil, err
	}
	return &tmpl, nil
}

func (r *templateRepository) GetBySlug(slug string) (*models.Template, error) {
	var tmpl models.Template
	if err := r.db.Where("slug = ?", slug).First(&tmpl).Error; err != nil {
		return nil, err
	}
	return &tmpl, nil
}

func (r *templateRepository) GetAll() ([]models.Template, error) {
	var templates []models.Template
	if err := r.db.Order("templates.created_at DESC").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *templateRepository) ExistsBySlug(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Template{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *templateRepository) ExistsBySlugExceptID(slug string, excludeID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Template{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
