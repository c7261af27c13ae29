package repository

import (
	"insurance-leadgen-backend/internal/models"

	"gorm.io/gorm"
)

type LeadRepository interface {
	Create(lead *models.Lead) error
	Update(lead *models.Lead) error
	GetByID(id uint) (*models.Lead, error)
	GetRecent(limit int) ([]models.Lead, error)
	CountByInsuranceType(insuranceType string) (int64, error)
}

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

func (r *leadRepository) Update(lead *models.Lead) error {
	return r.db.Save(lead).Error
}

func (r *leadRepository) GetByID(id uint) (*models.Lead, error) {
	var lead models.Lead
	if err := r.db.First(&lead, id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) GetRecent(limit int) ([]models.Lead, error) {
	if limit <= 0 {
		limit = 50
	}
	var leads []models.Lead
	if err := r.db.Order("leads.created_at DESC").Limit(limit).Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *leadRepository) CountByInsuranceType(insuranceType string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Lead{}).
		Where("insurance_type = ?", insuranceType).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
