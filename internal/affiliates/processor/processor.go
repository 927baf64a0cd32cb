package processor

import (
	"context"
	"errors"
	"strings"

	authProcessor "storefront-affiliates/internal/auth/processor"
	"storefront-affiliates/internal/balance"
	couponProcessor "storefront-affiliates/internal/coupons/processor"
	"storefront-affiliates/internal/jobs"
	"storefront-affiliates/internal/observability"
	"storefront-affiliates/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
)

var (
	ErrInvalidUsername      = errors.New("username must be 3 to 32 letters or digits")
	ErrInvalidEmail         = errors.New("invalid email address")
	ErrInvalidFullName      = errors.New("full name is required")
	ErrInvalidPassword      = errors.New("password must be at least 8 characters")
	ErrInvalidContactNumber = errors.New("invalid contact number")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrEmailTaken           = errors.New("an affiliate already exists for this email")
	ErrIdentityConflict     = errors.New("email is registered with different credentials")
	ErrAffiliateNotFound    = errors.New("affiliate not found")
	ErrInvalidBankDetails   = errors.New("account name, bank name and account number are required")
	ErrInvalidStatus        = errors.New("invalid affiliate status")
)

var validate = validator.New()

type AffiliateProcessor struct {
	store         AffiliateStore
	identity      IdentityProvider
	balances      BalanceReader
	events        EventPublisher
	jobs          JobEnqueuer
	defaultRegion string
	logger        *observability.Logger
}

func New(
	store AffiliateStore,
	identity IdentityProvider,
	balances BalanceReader,
	events EventPublisher,
	jobs JobEnqueuer,
	defaultRegion string,
	logger *observability.Logger,
) AffiliateProcessor {
	return AffiliateProcessor{
		store:         store,
		identity:      identity,
		balances:      balances,
		events:        events,
		jobs:          jobs,
		defaultRegion: defaultRegion,
		logger:        logger,
	}
}

// CreateAffiliateRequest carries identity, contact and credentials of a new affiliate
type CreateAffiliateRequest struct {
	Username      string
	FullName      string
	Email         string
	ContactNumber string
	Password      string
}

// Profile is what an affiliate sees about themselves
type Profile struct {
	Affiliate        store.Affiliate `json:"affiliate"`
	AvailableBalance int64           `json:"available_balance"`
}

// AffiliateSummary is an admin list row with ledger totals
type AffiliateSummary struct {
	store.AffiliateWithTotals
	AvailableBalance int64 `json:"available_balance"`
}

// ListAffiliatesResponse represents the paginated admin affiliate list
type ListAffiliatesResponse struct {
	Affiliates []AffiliateSummary `json:"affiliates"`
	TotalCount int                `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
}

// NormalizeUsername lowercases and validates a username.
func NormalizeUsername(username string) (string, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if err := validate.Var(username, "required,alphanum,min=3,max=32"); err != nil {
		return "", ErrInvalidUsername
	}
	return username, nil
}

// NormalizeContactNumber returns the number in E.164 form.
func NormalizeContactNumber(number, defaultRegion string) (string, error) {
	parsed, err := phonenumbers.Parse(strings.TrimSpace(number), defaultRegion)
	if err != nil {
		return "", ErrInvalidContactNumber
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return "", ErrInvalidContactNumber
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

func (p *AffiliateProcessor) validateCreate(req CreateAffiliateRequest) (CreateAffiliateRequest, error) {
	username, err := NormalizeUsername(req.Username)
	if err != nil {
		return req, err
	}
	req.Username = username

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Var(req.Email, "required,email"); err != nil {
		return req, ErrInvalidEmail
	}

	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		return req, ErrInvalidFullName
	}

	if len(req.Password) < 8 {
		return req, ErrInvalidPassword
	}

	contact, err := NormalizeContactNumber(req.ContactNumber, p.defaultRegion)
	if err != nil {
		return req, err
	}
	req.ContactNumber = contact
	return req, nil
}

// CreateAffiliate registers an affiliate and binds its coupon. A retry after
// a partial failure reuses the identity and returns the existing affiliate.
func (p *AffiliateProcessor) CreateAffiliate(ctx context.Context, req CreateAffiliateRequest) (store.Affiliate, error) {
	req, err := p.validateCreate(req)
	if err != nil {
		return store.Affiliate{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "affiliate_username", Value: req.Username},
		observability.Field{Key: "email", Value: req.Email},
	)

	if _, err := p.store.GetAffiliateByUsername(ctx, req.Username); err == nil {
		return store.Affiliate{}, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check username", err)
		return store.Affiliate{}, err
	}

	if _, err := p.store.GetAffiliateByEmail(ctx, req.Email); err == nil {
		return store.Affiliate{}, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check email", err)
		return store.Affiliate{}, err
	}

	userID, err := p.provisionIdentity(ctx, req)
	if err != nil {
		return store.Affiliate{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	existing, err := p.store.GetAffiliateByUserID(ctx, userID)
	if err == nil {
		p.logger.Info(ctx, "reusing affiliate for existing identity")
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check affiliate for identity", err)
		return store.Affiliate{}, err
	}

	affiliate, err := p.store.CreateAffiliateWithCoupon(ctx, store.CreateAffiliateParams{
		UserID:        userID,
		Username:      req.Username,
		FullName:      req.FullName,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
	}, couponProcessor.AffiliateCoupon(req.Username))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrAffiliateUsernameExists):
			return store.Affiliate{}, ErrUsernameTaken
		case errors.Is(err, store.ErrAffiliateEmailExists):
			return store.Affiliate{}, ErrEmailTaken
		case errors.Is(err, store.ErrAffiliateUserExists):
			return p.GetAffiliateByUserID(ctx, userID)
		}
		p.logger.Error(ctx, "failed to create affiliate", err)
		return store.Affiliate{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "affiliate_id", Value: affiliate.ID.String()})
	p.logger.Info(ctx, "affiliate created")

	if err := p.events.PublishAffiliateCreated(ctx, affiliate); err != nil {
		p.logger.Error(ctx, "failed to publish affiliate created event", err)
	}
	if err := p.jobs.EnqueueEmailJob(ctx, jobs.EmailJobPayload{
		Kind:        jobs.EmailKindAffiliateWelcome,
		AffiliateID: affiliate.ID,
	}); err != nil {
		p.logger.Error(ctx, "failed to enqueue welcome email", err)
	}

	return affiliate, nil
}

func (p *AffiliateProcessor) provisionIdentity(ctx context.Context, req CreateAffiliateRequest) (uuid.UUID, error) {
	userID, err := p.identity.CreateIdentity(ctx, req.FullName, req.Email, req.Password)
	if err == nil {
		return userID, nil
	}
	if !errors.Is(err, authProcessor.ErrEmailAlreadyExists) {
		p.logger.Error(ctx, "failed to provision identity", err)
		return uuid.UUID{}, err
	}

	userID, err = p.identity.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authProcessor.ErrIncorrectCredentials) {
			return uuid.UUID{}, ErrIdentityConflict
		}
		p.logger.Error(ctx, "failed to re-authenticate identity", err)
		return uuid.UUID{}, err
	}
	return userID, nil
}

func (p *AffiliateProcessor) lookup(ctx context.Context, affiliate store.Affiliate, err error) (store.Affiliate, error) {
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Affiliate{}, ErrAffiliateNotFound
		}
		p.logger.Error(ctx, "failed to get affiliate", err)
		return store.Affiliate{}, err
	}
	return affiliate, nil
}

// LookupByUsername finds an affiliate by username, ignoring case.
func (p *AffiliateProcessor) LookupByUsername(ctx context.Context, username string) (store.Affiliate, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	ctx = observability.WithFields(ctx, observability.Field{Key: "affiliate_username", Value: username})
	affiliate, err := p.store.GetAffiliateByUsername(ctx, username)
	return p.lookup(ctx, affiliate, err)
}

// GetAffiliateByUserID finds the affiliate owned by an external identity.
func (p *AffiliateProcessor) GetAffiliateByUserID(ctx context.Context, userID uuid.UUID) (store.Affiliate, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})
	affiliate, err := p.store.GetAffiliateByUserID(ctx, userID)
	return p.lookup(ctx, affiliate, err)
}

func (p *AffiliateProcessor) GetAffiliateByID(ctx context.Context, affiliateID uuid.UUID) (store.Affiliate, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "affiliate_id", Value: affiliateID.String()})
	affiliate, err := p.store.GetAffiliateByID(ctx, affiliateID)
	return p.lookup(ctx, affiliate, err)
}

// RecordBankDetails replaces the affiliate's payout account.
func (p *AffiliateProcessor) RecordBankDetails(ctx context.Context, affiliateID uuid.UUID, details store.BankDetails) (store.Affiliate, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "affiliate_id", Value: affiliateID.String()})

	details.AccountName = strings.TrimSpace(details.AccountName)
	details.BankName = strings.TrimSpace(details.BankName)
	details.AccountNumber = strings.TrimSpace(details.AccountNumber)
	if details.AccountName == "" || details.BankName == "" || details.AccountNumber == "" {
		return store.Affiliate{}, ErrInvalidBankDetails
	}

	affiliate, err := p.store.UpdateAffiliateBankDetails(ctx, affiliateID, details)
	return p.lookup(ctx, affiliate, err)
}

// GetProfile returns the acting affiliate with their available balance.
func (p *AffiliateProcessor) GetProfile(ctx context.Context, userID uuid.UUID) (Profile, error) {
	affiliate, err := p.GetAffiliateByUserID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "affiliate_id", Value: affiliate.ID.String()})
	available, err := p.balances.CachedAvailableBalance(ctx, affiliate.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to compute available balance", err)
		return Profile{}, err
	}

	return Profile{Affiliate: affiliate, AvailableBalance: available}, nil
}

func isValidStatus(status string) bool {
	switch status {
	case store.AffiliateStatusActive, store.AffiliateStatusSuspended, store.AffiliateStatusPending:
		return true
	}
	return false
}

// SetStatus suspends or reactivates an affiliate.
func (p *AffiliateProcessor) SetStatus(ctx context.Context, affiliateID uuid.UUID, status string) (store.Affiliate, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "affiliate_id", Value: affiliateID.String()},
		observability.Field{Key: "status", Value: status},
	)
	if !isValidStatus(status) {
		return store.Affiliate{}, ErrInvalidStatus
	}

	affiliate, err := p.store.UpdateAffiliateStatus(ctx, affiliateID, status)
	if err != nil {
		return p.lookup(ctx, affiliate, err)
	}
	p.logger.Info(ctx, "affiliate status updated")
	return affiliate, nil
}

// ListAffiliates returns affiliates with totals recomputed from the ledger.
func (p *AffiliateProcessor) ListAffiliates(ctx context.Context, page, limit int) (ListAffiliatesResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	rows, err := p.store.ListAffiliatesWithTotals(ctx, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list affiliates", err)
		return ListAffiliatesResponse{}, err
	}

	totalCount, err := p.store.CountAffiliates(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to count affiliates", err)
		return ListAffiliatesResponse{}, err
	}

	summaries := make([]AffiliateSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, AffiliateSummary{
			AffiliateWithTotals: row,
			AvailableBalance:    balance.Compute(row.CompletedEarnings, row.ReservedAmount),
		})
	}

	return ListAffiliatesResponse{
		Affiliates: summaries,
		TotalCount: totalCount,
		Page:       page,
		Limit:      limit,
	}, nil
}
