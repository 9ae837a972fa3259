package request

import (
	"strings"

	"hlc_marketplace/internal/domain/entities"
	"hlc_marketplace/internal/usecase"
)

// InitializePaymentRequest is the raw payment intent posted by the listing forms.
//
// Field checks beyond JSON shape happen in the use case so every caller gets the
// same ValidationError.
type InitializePaymentRequest struct {
	Email       string                   `json:"email" binding:"required" example:"agent@example.com"`
	Amount      int64                    `json:"amount" binding:"required" example:"1500000"`
	Reference   string                   `json:"reference" binding:"required" example:"HLC-PROP-9F3A"`
	CallbackURL string                   `json:"callback_url,omitempty" example:"https://listings.example.com/payments/callback"`
	Metadata    PromotionMetadataRequest `json:"metadata"`
}

type PromotionMetadataRequest struct {
	PropertyID   string  `json:"property_id" example:"11111111-1111-1111-1111-111111111111"`
	TierID       string  `json:"tier_id" example:"premium"`
	TierName     string  `json:"tier_name" example:"Premium Spotlight"`
	TierFee      float64 `json:"tier_fee" example:"15000"`
	TierDuration int     `json:"tier_duration" example:"14"`
	AgentID      string  `json:"agent_id" example:"22222222-2222-2222-2222-222222222222"`
	Purpose      string  `json:"purpose,omitempty" example:"property_promotion"`
}

func (r InitializePaymentRequest) ToIntent() entities.PaymentIntent {
	return entities.PaymentIntent{
		PayerEmail:       strings.TrimSpace(r.Email),
		AmountMinorUnits: r.Amount,
		Reference:        strings.TrimSpace(r.Reference),
		CallbackURL:      strings.TrimSpace(r.CallbackURL),
		Metadata: entities.PromotionMetadata{
			PropertyID:        strings.TrimSpace(r.Metadata.PropertyID),
			TierID:            strings.TrimSpace(r.Metadata.TierID),
			TierName:          strings.TrimSpace(r.Metadata.TierName),
			TierFeeMajorUnits: r.Metadata.TierFee,
			TierDurationDays:  r.Metadata.TierDuration,
			AgentID:           strings.TrimSpace(r.Metadata.AgentID),
			Purpose:           strings.TrimSpace(r.Metadata.Purpose),
		},
	}
}

// PromotionCheckoutRequest buys a catalog tier for a listing. The amount is never
// taken from the client.
type PromotionCheckoutRequest struct {
	PropertyID  string `json:"property_id" binding:"required,uuid" example:"11111111-1111-1111-1111-111111111111"`
	AgentID     string `json:"agent_id" binding:"required,uuid" example:"22222222-2222-2222-2222-222222222222"`
	TierID      string `json:"tier_id" binding:"required" example:"premium"`
	Email       string `json:"email" binding:"required,email" example:"agent@example.com"`
	Reference   string `json:"reference,omitempty" binding:"omitempty,max=100"`
	CallbackURL string `json:"callback_url,omitempty" binding:"omitempty,url"`
}

func (r PromotionCheckoutRequest) ToCheckout() usecase.PromotionCheckout {
	return usecase.PromotionCheckout{
		PropertyID:  strings.TrimSpace(r.PropertyID),
		AgentID:     strings.TrimSpace(r.AgentID),
		TierID:      strings.TrimSpace(r.TierID),
		PayerEmail:  strings.TrimSpace(r.Email),
		Reference:   strings.TrimSpace(r.Reference),
		CallbackURL: strings.TrimSpace(r.CallbackURL),
	}
}
