package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"insurance-leadgen-backend/internal/config"
	"insurance-leadgen-backend/internal/models"
	"insurance-leadgen-backend/internal/repository"
	"insurance-leadgen-backend/pkg/logger"
	"insurance-leadgen-backend/pkg/validator"
)

var ErrInvalidLead = errors.New("invalid lead data")

// LeadService validates and stores quote requests, then builds the
// affiliate redirect the landing page sends the visitor to. Forwarding to
// the network is best effort; a failed forward never loses the lead.
type LeadService struct {
	leadRepo repository.LeadRepository
	cfg      *config.Config
	client   *http.Client
}

func NewLeadService(leadRepo repository.LeadRepository, cfg *config.Config) *LeadService {
	return &LeadService{
		leadRepo: leadRepo,
		cfg:      cfg,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// Capture validates the request, persists the lead and returns it with
// RedirectURL populated.
func (s *LeadService) Capture(req models.CreateLeadRequest) (*models.Lead, error) {
	insuranceType := strings.ToLower(strings.TrimSpace(req.InsuranceType))
	if insuranceType == "" {
		return nil, fmt.Errorf("%w: insurance type is required", ErrInvalidLead)
	}

	zip := strings.TrimSpace(req.ZipCode)
	if !validator.ValidateZipCode(zip) {
		return nil, fmt.Errorf("%w: invalid zip code", ErrInvalidLead)
	}

	email := strings.TrimSpace(req.Email)
	if email != "" && !validator.ValidateEmail(email) {
		return nil, fmt.Errorf("%w: invalid email address", ErrInvalidLead)
	}

	phone := strings.TrimSpace(req.Phone)
	if phone != "" && !validator.ValidatePhone(phone) {
		return nil, fmt.Errorf("%w: invalid phone number", ErrInvalidLead)
	}

	campaign := strings.TrimSpace(req.Campaign)
	if campaign == "" {
		campaign = s.cfg.AffiliateCampaign
	}

	lead := &models.Lead{
		InsuranceType: insuranceType,
		ZipCode:       zip,
		Email:         email,
		Phone:         phone,
		FirstName:     validator.SanitizeString(strings.TrimSpace(req.FirstName)),
		LastName:      validator.SanitizeString(strings.TrimSpace(req.LastName)),
		SourcePage:    strings.TrimSpace(req.SourcePage),
		Campaign:      campaign,
	}
	lead.RedirectURL = s.redirectURL(lead)

	if err := s.leadRepo.Create(lead); err != nil {
		return nil, fmt.Errorf("failed to save lead: %w", err)
	}

	if s.cfg.AffiliateForwarding {
		s.forward(lead)
	}

	return lead, nil
}

// redirectURL builds the affiliate click URL the visitor is sent to after
// submitting a quote form.
func (s *LeadService) redirectURL(lead *models.Lead) string {
	base, err := url.Parse(s.cfg.AffiliateBaseURL)
	if err != nil {
		logger.Error(err, "Invalid affiliate base URL", map[string]interface{}{
			"url": s.cfg.AffiliateBaseURL,
		})
		return ""
	}

	q := base.Query()
	q.Set("vertical", lead.InsuranceType)
	q.Set("zip", lead.ZipCode)
	q.Set("campaign", lead.Campaign)
	if lead.SourcePage != "" {
		q.Set("source", lead.SourcePage)
	}
	base.RawQuery = q.Encode()

	return base.String()
}

// forward POSTs the lead to the affiliate network. Errors are logged and
// swallowed; the stored lead keeps Forwarded false so it can be retried.
func (s *LeadService) forward(lead *models.Lead) {
	payload, err := json.Marshal(lead)
	if err != nil {
		logger.Error(err, "Failed to encode lead for forwarding", nil)
		return
	}

	resp, err := s.client.Post(s.cfg.AffiliateBaseURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		logger.Error(err, "Failed to forward lead", map[string]interface{}{"lead_id": lead.ID})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		logger.Warn("Affiliate network rejected lead", map[string]interface{}{
			"lead_id": lead.ID,
			"status":  resp.StatusCode,
		})
		return
	}

	now := time.Now()
	lead.Forwarded = true
	lead.ForwardedAt = &now
	if err := s.leadRepo.Update(lead); err != nil {
		logger.Error(err, "Failed to mark lead forwarded", map[string]interface{}{"lead_id": lead.ID})
	}
}

// GetRecent lists the latest captured leads for the dashboard.
func (s *LeadService) GetRecent(limit int) ([]models.Lead, error) {
	return s.leadRepo.GetRecent(limit)
}

// CountByInsuranceType reports captured volume for one vertical.
func (s *LeadService) CountByInsuranceType(insuranceType string) (int64, error) {
	return s.leadRepo.CountByInsuranceType(strings.ToLower(strings.TrimSpace(insuranceType)))
}
