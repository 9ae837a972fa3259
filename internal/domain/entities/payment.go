package entities

import (
	"encoding/json"
	"time"
)

// PaymentIntent is a request to collect money through the payment provider.
//
// It is built by the caller before the payer is redirected and is never mutated
// afterwards: the provider owns the transaction state from that point on.
type PaymentIntent struct {
	PayerEmail       string            `json:"email" validate:"required,email"`
	AmountMinorUnits int64             `json:"amount" validate:"gt=0"`
	Reference        string            `json:"reference" validate:"required,max=100"`
	CallbackURL      string            `json:"callback_url,omitempty" validate:"omitempty,url"`
	Metadata         PromotionMetadata `json:"metadata"`
}

// PaymentInitialization is what the provider hands back for a new transaction.
type PaymentInitialization struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// VerificationStatus is the provider's view of a transaction.
type VerificationStatus string

const (
	VerificationStatusSuccess   VerificationStatus = "success"
	VerificationStatusFailed    VerificationStatus = "failed"
	VerificationStatusPending   VerificationStatus = "pending"
	VerificationStatusAbandoned VerificationStatus = "abandoned"
)

// VerificationResult is fetched fresh from the provider on every verification.
//
// Metadata is the provider echo as received; it is only trusted after it went
// through the promotion codec.
type VerificationResult struct {
	Status           VerificationStatus `json:"status"`
	Reference        string             `json:"reference"`
	AmountMinorUnits int64              `json:"amount"`
	Currency         string             `json:"currency"`
	PaidAt           *time.Time         `json:"paid_at,omitempty"`
	Metadata         map[string]any     `json:"metadata,omitempty"`
	Raw              json.RawMessage    `json:"raw,omitempty"`
}

func (r VerificationResult) Succeeded() bool {
	return r.Status == VerificationStatusSuccess
}

// PaymentRecord is the audit row kept per payment attempt.
//
// Storage model (DynamoDB):
//   - PK: reference
//
// ProviderRaw keeps the last provider payload for operator reconciliation.
type PaymentRecord struct {
	Reference        string             `json:"reference"`
	PayerEmail       string             `json:"email"`
	AmountMinorUnits int64              `json:"amount"`
	PropertyID       string             `json:"property_id,omitempty"`
	TierID           string             `json:"tier_id,omitempty"`
	Provider         string             `json:"provider"`
	Status           VerificationStatus `json:"status"`
	PromotionApplied bool               `json:"promotion_applied"`
	Warning          string             `json:"warning,omitempty"`
	PaidAt           *time.Time         `json:"paid_at,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
	ProviderRaw      json.RawMessage    `json:"provider_raw,omitempty"`
}
