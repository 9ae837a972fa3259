package request

import "testing"

func TestInitializePaymentRequest_ToIntent(t *testing.T) {
	r := InitializePaymentRequest{
		Email:     " agent@example.com ",
		Amount:    1500000,
		Reference: " HLC-PROP-9F3A ",
		Metadata: PromotionMetadataRequest{
			PropertyID:   " 11111111-1111-1111-1111-111111111111",
			TierID:       "premium",
			TierName:     "Premium Spotlight",
			TierFee:      15000,
			TierDuration: 14,
			AgentID:      "22222222-2222-2222-2222-222222222222",
		},
	}

	intent := r.ToIntent()
	if intent.PayerEmail != "agent@example.com" || intent.Reference != "HLC-PROP-9F3A" {
		t.Fatalf("expected trimmed fields, got %+v", intent)
	}
	if intent.AmountMinorUnits != 1500000 || intent.Metadata.TierDurationDays != 14 || intent.Metadata.TierFeeMajorUnits != 15000 {
		t.Fatalf("unexpected amounts: %+v", intent)
	}
	if intent.Metadata.PropertyID != "11111111-1111-1111-1111-111111111111" {
		t.Fatalf("unexpected property id %q", intent.Metadata.PropertyID)
	}
	if intent.Metadata.Purpose != "" {
		t.Fatalf("purpose must be left for the use case to default, got %q", intent.Metadata.Purpose)
	}
}

func TestPromotionCheckoutRequest_ToCheckout(t *testing.T) {
	r := PromotionCheckoutRequest{
		PropertyID: "11111111-1111-1111-1111-111111111111",
		AgentID:    "22222222-2222-2222-2222-222222222222",
		TierID:     " premium ",
		Email:      "agent@example.com ",
	}

	c := r.ToCheckout()
	if c.TierID != "premium" || c.PayerEmail != "agent@example.com" {
		t.Fatalf("unexpected checkout: %+v", c)
	}
	if c.Reference != "" || c.CallbackURL != "" {
		t.Fatalf("optional fields must stay empty: %+v", c)
	}
}
