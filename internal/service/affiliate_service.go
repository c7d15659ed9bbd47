package service

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/husncart/husncart/internal/constants"
	"github.com/husncart/husncart/internal/logger"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/repository"
)

const (
	affiliateCodeLength   = 8
	affiliateCodeAttempts = 5
)

// affiliate strike thresholds mapped onto a status band
var affiliateStrikeBands = []BandRule[string]{
	{Threshold: 0, Payload: constants.AffiliateStatusActive},
	{Threshold: 2, Payload: constants.AffiliateStatusWarning},
	{Threshold: 4, Payload: constants.AffiliateStatusSuspended},
}

// AffiliateService manages affiliate accounts and referral attribution.
type AffiliateService struct {
	repo           repository.AffiliateRepository
	commissionRepo repository.CommissionRepository
}

// NewAffiliateService creates the affiliate service.
func NewAffiliateService(repo repository.AffiliateRepository, commissionRepo repository.CommissionRepository) *AffiliateService {
	return &AffiliateService{repo: repo, commissionRepo: commissionRepo}
}

// AffiliateCreateInput carries the admin create payload.
type AffiliateCreateInput struct {
	Name    string
	Phone   string
	Email   string
	City    string
	RefCode string
	Notes   string
}

// AffiliateUpdateInput carries the admin update payload.
type AffiliateUpdateInput struct {
	Name  *string
	Phone *string
	Email *string
	City  *string
	Notes *string
}

// AffiliateTrackClickInput carries a referral landing hit.
type AffiliateTrackClickInput struct {
	Code        string
	LandingPath string
	Referrer    string
	ClientIP    string
	UserAgent   string
}

// AffiliateSummary aggregates ledger totals for one affiliate.
type AffiliateSummary struct {
	Affiliate    *models.Affiliate `json:"affiliate"`
	Clicks       int64             `json:"clicks"`
	PendingTotal models.Money      `json:"pending_total"`
	PayableTotal models.Money      `json:"payable_total"`
	PaidTotal    models.Money      `json:"paid_total"`
}

// ResolveReferral maps a raw referral code to an eligible affiliate.
// Any failure to attribute (unknown code, ineligible account, lookup
// error) yields nil so checkout proceeds without commission.
func (s *AffiliateService) ResolveReferral(rawCode string) *models.Affiliate {
	code := strings.ToUpper(strings.TrimSpace(rawCode))
	if code == "" {
		return nil
	}
	affiliate, err := s.repo.GetByCode(code)
	if err != nil {
		logger.Warnw("affiliate_referral_lookup_failed", "ref_code", code, "error", err)
		return nil
	}
	if affiliate == nil {
		logger.Infow("affiliate_referral_unknown", "ref_code", code)
		return nil
	}
	if !affiliate.Eligible() {
		logger.Infow("affiliate_referral_ineligible",
			"ref_code", code,
			"affiliate_id", affiliate.ID,
			"status", affiliate.Status,
		)
		return nil
	}
	return affiliate
}

// TrackClick records a referral landing for an eligible affiliate.
// The click row is best effort and never blocks the redirect.
func (s *AffiliateService) TrackClick(input AffiliateTrackClickInput) *models.Affiliate {
	affiliate := s.ResolveReferral(input.Code)
	if affiliate == nil {
		return nil
	}
	click := &models.AffiliateClick{
		AffiliateID: affiliate.ID,
		LandingPath: input.LandingPath,
		Referrer:    input.Referrer,
		ClientIP:    input.ClientIP,
		UserAgent:   input.UserAgent,
	}
	if err := s.repo.CreateClick(click); err != nil {
		logger.Warnw("affiliate_click_record_failed", "affiliate_id", affiliate.ID, "error", err)
	}
	return affiliate
}

// GetByID returns one affiliate.
func (s *AffiliateService) GetByID(id uint) (*models.Affiliate, error) {
	affiliate, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if affiliate == nil {
		return nil, ErrAffiliateNotFound
	}
	return affiliate, nil
}

// List returns affiliates for the admin console.
func (s *AffiliateService) List(filter repository.AffiliateListFilter) ([]models.Affiliate, int64, error) {
	return s.repo.List(filter)
}

// Create registers a new affiliate, issuing a ref code when none is given.
func (s *AffiliateService) Create(input AffiliateCreateInput) (*models.Affiliate, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrAffiliateInvalid
	}

	affiliate := &models.Affiliate{
		Name:        name,
		Phone:       strings.TrimSpace(input.Phone),
		Email:       strings.TrimSpace(input.Email),
		City:        strings.TrimSpace(input.City),
		Notes:       strings.TrimSpace(input.Notes),
		Active:      true,
		Status:      constants.AffiliateStatusActive,
		StrikeCount: 0,
	}

	if code := strings.ToUpper(strings.TrimSpace(input.RefCode)); code != "" {
		existing, err := s.repo.GetByCode(code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrAffiliateCodeTaken
		}
		affiliate.RefCode = code
		if err := s.repo.Create(affiliate); err != nil {
			if isUniqueViolation(err) {
				return nil, ErrAffiliateCodeTaken
			}
			return nil, err
		}
		return affiliate, nil
	}

	for attempt := 0; attempt < affiliateCodeAttempts; attempt++ {
		code, genErr := generateAffiliateCode()
		if genErr != nil {
			return nil, genErr
		}
		affiliate.RefCode = code
		if err := s.repo.Create(affiliate); err != nil {
			if isUniqueViolation(err) {
				continue
			}
			return nil, err
		}
		return affiliate, nil
	}
	return nil, ErrAffiliateCodeIssue
}

// Update applies partial admin edits.
func (s *AffiliateService) Update(id uint, input AffiliateUpdateInput) (*models.Affiliate, error) {
	affiliate, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		affiliate.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		affiliate.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Email != nil {
		affiliate.Email = strings.TrimSpace(*input.Email)
	}
	if input.City != nil {
		affiliate.City = strings.TrimSpace(*input.City)
	}
	if input.Notes != nil {
		affiliate.Notes = strings.TrimSpace(*input.Notes)
	}
	if err := s.repo.Update(affiliate); err != nil {
		return nil, err
	}
	return affiliate, nil
}

// UpdateStatus sets the affiliate status directly.
func (s *AffiliateService) UpdateStatus(id uint, rawStatus string, active bool) (*models.Affiliate, error) {
	status := strings.TrimSpace(rawStatus)
	switch status {
	case constants.AffiliateStatusActive,
		constants.AffiliateStatusWarning,
		constants.AffiliateStatusSuspended,
		constants.AffiliateStatusRevoked:
	default:
		return nil, ErrAffiliateStatusInvalid
	}
	affiliate, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(id, status, active); err != nil {
		return nil, err
	}
	affiliate.Status = status
	affiliate.Active = active
	return affiliate, nil
}

// AddStrike increments the strike counter and moves the status to the
// band matching the new count. Revoked accounts stay revoked.
func (s *AffiliateService) AddStrike(id uint, note string) (*models.Affiliate, error) {
	affiliate, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	affiliate.StrikeCount++
	if affiliate.Status != constants.AffiliateStatusRevoked {
		if status, ok := ResolveBand(affiliateStrikeBands, affiliate.StrikeCount); ok {
			affiliate.Status = status
		}
	}
	if note = strings.TrimSpace(note); note != "" {
		if affiliate.Notes != "" {
			affiliate.Notes += "\n"
		}
		affiliate.Notes += note
	}
	if err := s.repo.Update(affiliate); err != nil {
		return nil, err
	}
	logger.Infow("affiliate_strike_added",
		"affiliate_id", affiliate.ID,
		"strike_count", affiliate.StrikeCount,
		"status", affiliate.Status,
	)
	return affiliate, nil
}

// Summary aggregates click and ledger totals for the admin detail view.
func (s *AffiliateService) Summary(id uint) (*AffiliateSummary, error) {
	affiliate, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	clicks, err := s.repo.CountClicksByAffiliate(id)
	if err != nil {
		return nil, err
	}
	pending, err := s.commissionRepo.SumByAffiliate(id, []string{constants.CommissionStatusPending})
	if err != nil {
		return nil, err
	}
	payable, err := s.commissionRepo.SumByAffiliate(id, []string{constants.CommissionStatusPayable})
	if err != nil {
		return nil, err
	}
	paid, err := s.commissionRepo.SumByAffiliate(id, []string{constants.CommissionStatusPaid})
	if err != nil {
		return nil, err
	}
	return &AffiliateSummary{
		Affiliate:    affiliate,
		Clicks:       clicks,
		PendingTotal: models.NewMoneyFromDecimal(pending),
		PayableTotal: models.NewMoneyFromDecimal(payable),
		PaidTotal:    models.NewMoneyFromDecimal(paid),
	}, nil
}

func generateAffiliateCode() (string, error) {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	var builder strings.Builder
	builder.Grow(affiliateCodeLength)
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < affiliateCodeLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		builder.WriteByte(alphabet[n.Int64()])
	}
	return builder.String(), nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
