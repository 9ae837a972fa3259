package response

import (
	"encoding/json"
	"time"

	"hlc_marketplace/internal/domain/entities"
)

type InitializePaymentResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	AuthorizationURL string `json:"authorization_url,omitempty"`
	AccessCode       string `json:"access_code,omitempty"`
	Reference        string `json:"reference,omitempty"`
}

func FromPaymentInitialization(p entities.PaymentInitialization) InitializePaymentResponse {
	return InitializePaymentResponse{
		Success:          true,
		Message:          "Payment initialized",
		AuthorizationURL: p.AuthorizationURL,
		AccessCode:       p.AccessCode,
		Reference:        p.Reference,
	}
}

// VerifyPaymentResponse reports the provider verdict and whether the promotion was
// recorded. Warning is set when the payment is confirmed but the listing write failed.
type VerifyPaymentResponse struct {
	Success           bool                `json:"success"`
	Message           string              `json:"message"`
	PaymentSuccessful bool                `json:"payment_successful"`
	PromotionApplied  bool                `json:"promotion_applied"`
	Warning           string              `json:"warning,omitempty"`
	Data              *VerificationDetail `json:"data,omitempty"`
}

type VerificationDetail struct {
	Reference          string          `json:"reference"`
	Status             string          `json:"status"`
	State              string          `json:"state"`
	AmountMinorUnits   int64           `json:"amount"`
	Currency           string          `json:"currency,omitempty"`
	PaidAt             *time.Time      `json:"paid_at,omitempty"`
	PropertyID         string          `json:"property_id,omitempty"`
	PromotionTierID    string          `json:"promotion_tier_id,omitempty"`
	PromotionTierName  string          `json:"promotion_tier_name,omitempty"`
	PromotedAt         *time.Time      `json:"promoted_at,omitempty"`
	PromotionExpiresAt *time.Time      `json:"promotion_expires_at,omitempty"`
	Provider           json.RawMessage `json:"provider,omitempty" swaggertype:"object"`
}

func FromVerificationOutcome(o entities.VerificationOutcome) VerifyPaymentResponse {
	res := VerifyPaymentResponse{
		Success:           true,
		PaymentSuccessful: o.PaymentVerified,
		PromotionApplied:  o.PromotionApplied,
		Data: &VerificationDetail{
			Reference:        o.Reference,
			Status:           string(o.Result.Status),
			State:            string(o.State),
			AmountMinorUnits: o.Result.AmountMinorUnits,
			Currency:         o.Result.Currency,
			PaidAt:           o.Result.PaidAt,
			PropertyID:       o.PropertyID,
			Provider:         o.Result.Raw,
		},
	}
	if o.Promotion != nil {
		promotedAt, expiresAt := o.Promotion.PromotedAt, o.Promotion.ExpiresAt()
		res.Data.PromotionTierID = o.Promotion.TierID
		res.Data.PromotionTierName = o.Promotion.TierName
		if o.PromotionApplied {
			res.Data.PromotedAt = &promotedAt
			res.Data.PromotionExpiresAt = &expiresAt
		}
	}

	switch {
	case o.Warning != nil:
		res.Message = "Payment verified but the promotion could not be recorded; support has been notified"
		res.Warning = o.Warning.Error()
	case o.PromotionApplied:
		res.Message = "Payment verified and promotion applied"
	case o.PaymentVerified:
		res.Message = "Payment verified"
	default:
		res.Message = "Payment was not successful"
	}
	return res
}

type PromotionTierResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Fee              string `json:"fee" example:"15000.00"`
	AmountMinorUnits int64  `json:"amount"`
	Currency         string `json:"currency,omitempty"`
	DurationDays     int    `json:"duration_days"`
}

func FromPromotionTiers(tiers []entities.PromotionTier) []PromotionTierResponse {
	out := make([]PromotionTierResponse, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, PromotionTierResponse{
			ID:               t.ID,
			Name:             t.Name,
			Fee:              t.Fee.StringFixed(2),
			AmountMinorUnits: t.AmountMinorUnits(),
			Currency:         t.Currency,
			DurationDays:     t.DurationDays,
		})
	}
	return out
}

type PaymentRecordResponse struct {
	Reference        string          `json:"reference"`
	Email            string          `json:"email,omitempty"`
	AmountMinorUnits int64           `json:"amount"`
	PropertyID       string          `json:"property_id,omitempty"`
	TierID           string          `json:"tier_id,omitempty"`
	Provider         string          `json:"provider"`
	Status           string          `json:"status"`
	PromotionApplied bool            `json:"promotion_applied"`
	Warning          string          `json:"warning,omitempty"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	CreatedAt        *time.Time      `json:"created_at,omitempty"`
	UpdatedAt        time.Time       `json:"updated_at"`
	ProviderRaw      json.RawMessage `json:"provider_raw,omitempty" swaggertype:"object"`
}

func FromPaymentRecord(rec entities.PaymentRecord) PaymentRecordResponse {
	res := PaymentRecordResponse{
		Reference:        rec.Reference,
		Email:            rec.PayerEmail,
		AmountMinorUnits: rec.AmountMinorUnits,
		PropertyID:       rec.PropertyID,
		TierID:           rec.TierID,
		Provider:         rec.Provider,
		Status:           string(rec.Status),
		PromotionApplied: rec.PromotionApplied,
		Warning:          rec.Warning,
		PaidAt:           rec.PaidAt,
		UpdatedAt:        rec.UpdatedAt,
		ProviderRaw:      rec.ProviderRaw,
	}
	if !rec.CreatedAt.IsZero() {
		created := rec.CreatedAt
		res.CreatedAt = &created
	}
	return res
}
