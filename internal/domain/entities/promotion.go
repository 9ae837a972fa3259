package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurposePropertyPromotion tags provider metadata that should activate a listing promotion.
const PurposePropertyPromotion = "property_promotion"

// PromotionMetadata travels round-trip through the provider as opaque metadata.
//
// TierFeeMajorUnits is informational; the settled amount comes from the provider.
type PromotionMetadata struct {
	PropertyID        string  `json:"property_id"`
	TierID            string  `json:"tier_id"`
	TierName          string  `json:"tier_name"`
	TierFeeMajorUnits float64 `json:"tier_fee"`
	TierDurationDays  int     `json:"tier_duration"`
	AgentID           string  `json:"agent_id"`
	Purpose           string  `json:"purpose"`
}

// ListingPromotionState is the part of a listing record the promotion flow may write.
//
// The expiry is always derived from PromotedAt and DurationDays, so it cannot be set
// independently.
type ListingPromotionState struct {
	IsPromoted   bool      `json:"is_promoted"`
	TierID       string    `json:"promotion_tier_id"`
	TierName     string    `json:"promotion_tier_name"`
	PromotedAt   time.Time `json:"promoted_at"`
	DurationDays int       `json:"-"`
}

// NewListingPromotionState builds the state written for a verified promotion payment.
func NewListingPromotionState(meta PromotionMetadata, promotedAt time.Time) ListingPromotionState {
	return ListingPromotionState{
		IsPromoted:   true,
		TierID:       meta.TierID,
		TierName:     meta.TierName,
		PromotedAt:   promotedAt.UTC(),
		DurationDays: meta.TierDurationDays,
	}
}

func (s ListingPromotionState) ExpiresAt() time.Time {
	return s.PromotedAt.AddDate(0, 0, s.DurationDays)
}

// PromotionTier is a named promotion package configured by platform operators.
type PromotionTier struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Fee          decimal.Decimal `json:"fee"`
	Currency     string          `json:"currency"`
	DurationDays int             `json:"duration_days"`
}

// AmountMinorUnits converts the major-unit fee to the currency's smallest unit.
func (t PromotionTier) AmountMinorUnits() int64 {
	return t.Fee.Shift(2).Round(0).IntPart()
}

// ActivationState is the position reached by one verification call.
type ActivationState string

const (
	ActivationStateUnverified             ActivationState = "unverified"
	ActivationStateGatewayConfirmedPaid   ActivationState = "gateway_confirmed_paid"
	ActivationStateGatewayConfirmedFailed ActivationState = "gateway_confirmed_failed"
	ActivationStatePromotionEligible      ActivationState = "promotion_eligible"
	ActivationStatePromotionApplied       ActivationState = "promotion_applied"
	ActivationStatePromotionSkipped       ActivationState = "promotion_skipped"
)

// VerificationOutcome is the structured result of verifying a payment and
// activating its promotion.
//
// PaymentVerified is never downgraded by a local persistence failure; Warning is
// set instead.
type VerificationOutcome struct {
	Reference        string
	State            ActivationState
	PaymentVerified  bool
	PromotionApplied bool
	PropertyID       string
	Promotion        *ListingPromotionState
	Warning          *PersistenceWarning
	Result           VerificationResult
}
