package response

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"hlc_marketplace/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromPaymentInitialization(t *testing.T) {
	res := FromPaymentInitialization(entities.PaymentInitialization{
		AuthorizationURL: "https://checkout.paystack.com/abc",
		AccessCode:       "abc",
		Reference:        "HLC-PROP-9F3A",
	})
	if !res.Success || res.AuthorizationURL == "" || res.Reference != "HLC-PROP-9F3A" {
		t.Fatalf("unexpected response: %+v", res)
	}
}

func TestFromVerificationOutcome(t *testing.T) {
	promotedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	state := entities.ListingPromotionState{IsPromoted: true, TierID: "premium", TierName: "Premium Spotlight", PromotedAt: promotedAt, DurationDays: 14}
	base := entities.VerificationOutcome{
		Reference: "HLC-PROP-9F3A",
		Result: entities.VerificationResult{
			Status:           entities.VerificationStatusSuccess,
			AmountMinorUnits: 1500000,
			Currency:         "NGN",
			Raw:              json.RawMessage(`{"status":"success"}`),
		},
	}

	t.Run("applied", func(t *testing.T) {
		o := base
		o.PaymentVerified, o.PromotionApplied = true, true
		o.State = entities.ActivationStatePromotionApplied
		o.Promotion = &state

		res := FromVerificationOutcome(o)
		if !res.PaymentSuccessful || !res.PromotionApplied || res.Warning != "" {
			t.Fatalf("unexpected flags: %+v", res)
		}
		if res.Data.PromotionExpiresAt == nil || !res.Data.PromotionExpiresAt.Equal(promotedAt.AddDate(0, 0, 14)) {
			t.Fatalf("unexpected expiry: %+v", res.Data)
		}
		if res.Data.State != "promotion_applied" {
			t.Fatalf("unexpected state %q", res.Data.State)
		}
	})

	t.Run("warning keeps payment verified", func(t *testing.T) {
		o := base
		o.PaymentVerified = true
		o.State = entities.ActivationStatePromotionEligible
		o.Promotion = &state
		o.Warning = &entities.PersistenceWarning{Reference: "HLC-PROP-9F3A", PropertyID: "p-1", Err: errors.New("timeout")}

		res := FromVerificationOutcome(o)
		if !res.Success || !res.PaymentSuccessful || res.PromotionApplied {
			t.Fatalf("unexpected flags: %+v", res)
		}
		if !strings.Contains(res.Warning, "timeout") {
			t.Fatalf("expected warning text, got %q", res.Warning)
		}
		if res.Data.PromotedAt != nil {
			t.Fatalf("promotion timestamps must be omitted when not applied")
		}
	})

	t.Run("not successful", func(t *testing.T) {
		o := base
		o.Result.Status = entities.VerificationStatusAbandoned
		o.State = entities.ActivationStateGatewayConfirmedFailed

		res := FromVerificationOutcome(o)
		if !res.Success || res.PaymentSuccessful || res.Message != "Payment was not successful" {
			t.Fatalf("unexpected response: %+v", res)
		}
	})
}

func TestFromPromotionTiers(t *testing.T) {
	res := FromPromotionTiers([]entities.PromotionTier{{
		ID: "premium", Name: "Premium Spotlight", Fee: decimal.RequireFromString("15000.5"), Currency: "NGN", DurationDays: 14,
	}})
	if len(res) != 1 || res[0].Fee != "15000.50" || res[0].AmountMinorUnits != 1500050 {
		t.Fatalf("unexpected tiers: %+v", res)
	}
	if empty := FromPromotionTiers(nil); empty == nil || len(empty) != 0 {
		t.Fatalf("expected empty non-nil slice")
	}
}

func TestFromPaymentRecord(t *testing.T) {
	res := FromPaymentRecord(entities.PaymentRecord{Reference: "HLC-PROP-9F3A", Status: entities.VerificationStatusPending})
	if res.CreatedAt != nil || res.Status != "pending" {
		t.Fatalf("unexpected record: %+v", res)
	}
}
