package service

import (
	"errors"
	"net/url"
	"testing"

	"gorm.io/gorm"

	"insurance-leadgen-backend/internal/config"
	"insurance-leadgen-backend/internal/models"
)

type fakeLeadRepo struct {
	leads  []*models.Lead
	nextID uint
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{nextID: 1}
}

func (r *fakeLeadRepo) Create(lead *models.Lead) error {
	lead.ID = r.nextID
	r.nextID++
	stored := *lead
	r.leads = append(r.leads, &stored)
	return nil
}

func (r *fakeLeadRepo) Update(lead *models.Lead) error {
	for i, stored := range r.leads {
		if stored.ID == lead.ID {
			copied := *lead
			r.leads[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeLeadRepo) GetByID(id uint) (*models.Lead, error) {
	for _, stored := range r.leads {
		if stored.ID == id {
			copied := *stored
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeLeadRepo) GetRecent(limit int) ([]models.Lead, error) {
	out := make([]models.Lead, 0, len(r.leads))
	for i := len(r.leads) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *r.leads[i])
	}
	return out, nil
}

func (r *fakeLeadRepo) CountByInsuranceType(insuranceType string) (int64, error) {
	var count int64
	for _, stored := range r.leads {
		if stored.InsuranceType == insuranceType {
			count++
		}
	}
	return count, nil
}

func leadTestConfig() *config.Config {
	return &config.Config{
		AffiliateBaseURL:  "https://offers.example-network.com/click",
		AffiliateCampaign: "organic",
	}
}

func TestLeadServiceCapture(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo, leadTestConfig())

	lead, err := svc.Capture(models.CreateLeadRequest{
		InsuranceType: "Car",
		ZipCode:       "90210",
		Email:         "jamie@example.com",
		SourcePage:    "car-insurance/california/los-angeles",
	})
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}

	if lead.InsuranceType != "car" {
		t.Errorf("insurance type not lowercased: %q", lead.InsuranceType)
	}
	if lead.Campaign != "organic" {
		t.Errorf("default campaign not applied: %q", lead.Campaign)
	}
	if len(repo.leads) != 1 {
		t.Errorf("lead not persisted")
	}

	parsed, err := url.Parse(lead.RedirectURL)
	if err != nil {
		t.Fatalf("redirect URL unparseable: %v", err)
	}
	q := parsed.Query()
	if q.Get("vertical") != "car" || q.Get("zip") != "90210" || q.Get("campaign") != "organic" {
		t.Errorf("redirect query wrong: %q", lead.RedirectURL)
	}
	if q.Get("source") != "car-insurance/california/los-angeles" {
		t.Errorf("source missing from redirect: %q", lead.RedirectURL)
	}
}

func TestLeadServiceValidation(t *testing.T) {
	svc := NewLeadService(newFakeLeadRepo(), leadTestConfig())

	cases := []struct {
		name string
		req  models.CreateLeadRequest
	}{
		{"missing type", models.CreateLeadRequest{ZipCode: "90210"}},
		{"bad zip", models.CreateLeadRequest{InsuranceType: "car", ZipCode: "9021"}},
		{"bad email", models.CreateLeadRequest{InsuranceType: "car", ZipCode: "90210", Email: "nope"}},
		{"bad phone", models.CreateLeadRequest{InsuranceType: "car", ZipCode: "90210", Phone: "123"}},
	}

	for _, tc := range cases {
		_, err := svc.Capture(tc.req)
		if err == nil {
			t.Errorf("%s: accepted", tc.name)
			continue
		}
		if !errors.Is(err, ErrInvalidLead) {
			t.Errorf("%s: error not marked invalid: %v", tc.name, err)
		}
	}
}

func TestLeadServiceOptionalContactFields(t *testing.T) {
	svc := NewLeadService(newFakeLeadRepo(), leadTestConfig())

	if _, err := svc.Capture(models.CreateLeadRequest{
		InsuranceType: "home",
		ZipCode:       "30301-1234",
	}); err != nil {
		t.Errorf("lead without contact details rejected: %v", err)
	}

	if _, err := svc.Capture(models.CreateLeadRequest{
		InsuranceType: "home",
		ZipCode:       "30301",
		Phone:         "(404) 555-0123",
	}); err != nil {
		t.Errorf("formatted phone rejected: %v", err)
	}
}
