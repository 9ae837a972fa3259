package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"hlc_marketplace/internal/domain/entities"
	"hlc_marketplace/internal/domain/promotion"
	"hlc_marketplace/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPromotionTierNotFound = errors.New("promotion tier not found")
	ErrPaymentRecordNotFound = errors.New("payment record not found")
)

const (
	defaultStoreTimeout = 10 * time.Second
	referencePrefix     = "HLC-PROP-"
)

// IPromotionPaymentUseCase is the inbound contract used by dashboards and forms.
type IPromotionPaymentUseCase interface {
	InitializePayment(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentInitialization, error)
	InitializePromotionPayment(ctx context.Context, checkout PromotionCheckout) (entities.PaymentInitialization, error)
	VerifyAndActivate(ctx context.Context, reference string) (entities.VerificationOutcome, error)
	ListTiers(ctx context.Context) ([]entities.PromotionTier, error)
	GetPaymentRecord(ctx context.Context, reference string) (entities.PaymentRecord, error)
}

// PromotionCheckout is what a listing owner picks before paying for a promotion.
// Price and duration always come from the tier catalog.
type PromotionCheckout struct {
	PropertyID  string
	AgentID     string
	TierID      string
	PayerEmail  string
	Reference   string
	CallbackURL string
}

// PromotionPaymentUseCase initializes promotion payments and activates promotions
// once the provider confirms them.
//
// It holds no mutable state between calls. Tier configuration is fetched through
// the catalog on every request.
type PromotionPaymentUseCase struct {
	gateway      interfaces.IPaymentGateway
	listings     interfaces.IListingStore
	tiers        interfaces.IPromotionTierCatalog
	records      interfaces.IPaymentRecordRepository
	now          func() time.Time
	storeTimeout time.Duration
}

var _ IPromotionPaymentUseCase = (*PromotionPaymentUseCase)(nil)

type Option func(*PromotionPaymentUseCase)

// WithClock replaces the clock used for promotedAt.
func WithClock(now func() time.Time) Option {
	return func(u *PromotionPaymentUseCase) { u.now = now }
}

// WithStoreTimeout bounds each listing store write.
func WithStoreTimeout(d time.Duration) Option {
	return func(u *PromotionPaymentUseCase) {
		if d > 0 {
			u.storeTimeout = d
		}
	}
}

// WithPaymentRecords enables the payment attempt audit log.
func WithPaymentRecords(repo interfaces.IPaymentRecordRepository) Option {
	return func(u *PromotionPaymentUseCase) { u.records = repo }
}

func NewPromotionPaymentUseCase(gateway interfaces.IPaymentGateway, listings interfaces.IListingStore, tiers interfaces.IPromotionTierCatalog, opts ...Option) *PromotionPaymentUseCase {
	u := &PromotionPaymentUseCase{
		gateway:      gateway,
		listings:     listings,
		tiers:        tiers,
		now:          time.Now,
		storeTimeout: defaultStoreTimeout,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// InitializePayment validates the intent, records the attempt and asks the provider
// for an authorization URL.
//
// Validation and provider configuration are checked before anything is written.
// When the provider call fails the pending record is released, so the caller can
// retry with the same reference.
func (u *PromotionPaymentUseCase) InitializePayment(ctx context.Context, intent entities.PaymentIntent) (entities.PaymentInitialization, error) {
	log := zap.S()
	intent.Reference = strings.TrimSpace(intent.Reference)
	intent.PayerEmail = strings.TrimSpace(intent.PayerEmail)
	if intent.Metadata.Purpose == "" {
		intent.Metadata.Purpose = entities.PurposePropertyPromotion
	}
	log.Infow("[payment][usecase] initialize start", "reference", intent.Reference, "amount", intent.AmountMinorUnits)

	if u.gateway == nil {
		log.Errorw("[payment][usecase] gateway not configured", "reference", intent.Reference)
		return entities.PaymentInitialization{}, &entities.ConfigurationError{Setting: "payment gateway"}
	}
	if err := promotion.ValidateIntent(intent); err != nil {
		log.Infow("[payment][usecase] invalid intent", "reference", intent.Reference, "err", err)
		return entities.PaymentInitialization{}, err
	}
	if err := u.gateway.Configured(); err != nil {
		log.Errorw("[payment][usecase] gateway credentials missing", "reference", intent.Reference, "provider", u.gateway.Name(), "err", err)
		return entities.PaymentInitialization{}, err
	}

	recorded, err := u.createRecord(ctx, intent)
	if err != nil {
		return entities.PaymentInitialization{}, err
	}

	initialized, err := u.gateway.Initialize(ctx, intent)
	if err != nil {
		log.Errorw("[payment][usecase] gateway initialize failed", "reference", intent.Reference, "provider", u.gateway.Name(), "err", err)
		if recorded {
			u.releaseRecord(ctx, intent.Reference)
		}
		return entities.PaymentInitialization{}, err
	}
	log.Infow("[payment][usecase] initialize success", "reference", initialized.Reference, "provider", u.gateway.Name())
	return initialized, nil
}

// createRecord reports whether a pending row now holds the reference. Storage
// failures other than a duplicate reference are logged and ignored.
func (u *PromotionPaymentUseCase) createRecord(ctx context.Context, intent entities.PaymentIntent) (bool, error) {
	if u.records == nil {
		return false, nil
	}
	now := u.now().UTC()
	rec := entities.PaymentRecord{
		Reference:        intent.Reference,
		PayerEmail:       intent.PayerEmail,
		AmountMinorUnits: intent.AmountMinorUnits,
		PropertyID:       intent.Metadata.PropertyID,
		TierID:           intent.Metadata.TierID,
		Provider:         u.gateway.Name(),
		Status:           entities.VerificationStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := u.records.Create(ctx, rec); err != nil {
		if errors.Is(err, interfaces.ErrPaymentReferenceExists) {
			zap.S().Infow("[payment][usecase] duplicate reference", "reference", intent.Reference)
			return false, entities.NewValidationError("reference", "already used by another payment attempt")
		}
		zap.S().Warnw("[payment][usecase] payment record create failed", "reference", intent.Reference, "err", err)
		return false, nil
	}
	return true, nil
}

func (u *PromotionPaymentUseCase) releaseRecord(ctx context.Context, reference string) {
	relCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.storeTimeout)
	defer cancel()
	if err := u.records.Release(relCtx, reference); err != nil {
		zap.S().Warnw("[payment][usecase] payment record release failed", "reference", reference, "err", err)
	}
}

// InitializePromotionPayment prices a promotion from the tier catalog and initializes
// the payment for it.
func (u *PromotionPaymentUseCase) InitializePromotionPayment(ctx context.Context, checkout PromotionCheckout) (entities.PaymentInitialization, error) {
	if u.tiers == nil {
		return entities.PaymentInitialization{}, &entities.ConfigurationError{Setting: "promotion tier catalog"}
	}
	tierID := strings.TrimSpace(checkout.TierID)
	if tierID == "" {
		return entities.PaymentInitialization{}, entities.NewValidationError("tier_id", "is required")
	}

	tier, err := u.tiers.GetTier(ctx, tierID)
	if err != nil {
		zap.S().Errorw("[payment][usecase] tier lookup failed", "tier_id", tierID, "err", err)
		return entities.PaymentInitialization{}, err
	}
	if tier.ID == "" {
		return entities.PaymentInitialization{}, ErrPromotionTierNotFound
	}

	reference := strings.TrimSpace(checkout.Reference)
	if reference == "" {
		reference = NewPaymentReference()
	}

	intent := entities.PaymentIntent{
		PayerEmail:       checkout.PayerEmail,
		AmountMinorUnits: tier.AmountMinorUnits(),
		Reference:        reference,
		CallbackURL:      strings.TrimSpace(checkout.CallbackURL),
		Metadata: entities.PromotionMetadata{
			PropertyID:        strings.TrimSpace(checkout.PropertyID),
			TierID:            tier.ID,
			TierName:          tier.Name,
			TierFeeMajorUnits: tier.Fee.InexactFloat64(),
			TierDurationDays:  tier.DurationDays,
			AgentID:           strings.TrimSpace(checkout.AgentID),
			Purpose:           entities.PurposePropertyPromotion,
		},
	}
	return u.InitializePayment(ctx, intent)
}

func (u *PromotionPaymentUseCase) ListTiers(ctx context.Context) ([]entities.PromotionTier, error) {
	if u.tiers == nil {
		return nil, &entities.ConfigurationError{Setting: "promotion tier catalog"}
	}
	return u.tiers.ListTiers(ctx)
}

// GetPaymentRecord reads the audit row of a payment attempt.
func (u *PromotionPaymentUseCase) GetPaymentRecord(ctx context.Context, reference string) (entities.PaymentRecord, error) {
	if u.records == nil {
		return entities.PaymentRecord{}, &entities.ConfigurationError{Setting: "payment record repository"}
	}
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return entities.PaymentRecord{}, entities.NewValidationError("reference", "is required")
	}

	rec, err := u.records.GetByReference(ctx, reference)
	if err != nil {
		zap.S().Errorw("[payment][usecase] payment record lookup failed", "reference", reference, "err", err)
		return entities.PaymentRecord{}, err
	}
	if rec.Reference == "" {
		return entities.PaymentRecord{}, ErrPaymentRecordNotFound
	}
	return rec, nil
}

// NewPaymentReference returns a fresh reference such as HLC-PROP-9F3A12BC.
func NewPaymentReference() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return referencePrefix + strings.ToUpper(id[:8])
}
