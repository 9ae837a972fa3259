package usecase

import (
	"context"
	"errors"
	"strings"

	"hlc_marketplace/internal/domain/entities"
	"hlc_marketplace/internal/domain/promotion"

	"go.uber.org/zap"
)

var errListingStoreNotConfigured = errors.New("listing store not configured")

// VerifyAndActivate asks the provider for the state of reference and, when the
// payment succeeded and carries promotion metadata, writes the promotion to the
// listing.
//
// Provider errors are returned unchanged and never retried here. The listing write
// is a plain overwrite keyed by property id, so repeated or concurrent calls for
// the same reference converge on the same record (last write wins on promotedAt).
// A failed write after a confirmed payment is reported through Warning while
// PaymentVerified stays true.
func (u *PromotionPaymentUseCase) VerifyAndActivate(ctx context.Context, reference string) (entities.VerificationOutcome, error) {
	log := zap.S()
	reference = strings.TrimSpace(reference)
	outcome := entities.VerificationOutcome{Reference: reference, State: entities.ActivationStateUnverified}

	if reference == "" {
		return outcome, entities.NewValidationError("reference", "is required")
	}
	if u.gateway == nil {
		log.Errorw("[payment][orchestrator] gateway not configured", "reference", reference)
		return outcome, &entities.ConfigurationError{Setting: "payment gateway"}
	}
	log.Infow("[payment][orchestrator] verify start", "reference", reference, "provider", u.gateway.Name())

	result, err := u.gateway.Verify(ctx, reference)
	if err != nil {
		log.Errorw("[payment][orchestrator] gateway verify failed", "reference", reference, "err", err)
		return outcome, err
	}
	outcome.Result = result

	if !result.Succeeded() {
		outcome.State = entities.ActivationStateGatewayConfirmedFailed
		log.Infow("[payment][orchestrator] payment not successful", "reference", reference, "status", result.Status)
		u.recordVerification(ctx, outcome)
		return outcome, nil
	}
	outcome.PaymentVerified = true
	outcome.State = entities.ActivationStateGatewayConfirmedPaid

	meta, ok := promotion.Decode(result.Metadata)
	if !ok {
		outcome.State = entities.ActivationStatePromotionSkipped
		log.Infow("[payment][orchestrator] no promotion metadata; skipping activation", "reference", reference)
		u.recordVerification(ctx, outcome)
		return outcome, nil
	}
	outcome.State = entities.ActivationStatePromotionEligible
	outcome.PropertyID = meta.PropertyID

	state := entities.NewListingPromotionState(meta, u.now())
	outcome.Promotion = &state

	if err := u.applyPromotion(ctx, meta.PropertyID, state); err != nil {
		outcome.Warning = &entities.PersistenceWarning{Reference: reference, PropertyID: meta.PropertyID, Err: err}
		log.Errorw("[payment][orchestrator] payment verified but promotion not recorded; reconcile manually",
			"reference", reference, "property_id", meta.PropertyID, "tier_id", meta.TierID, "err", err)
		u.recordVerification(ctx, outcome)
		return outcome, nil
	}

	outcome.PromotionApplied = true
	outcome.State = entities.ActivationStatePromotionApplied
	log.Infow("[payment][orchestrator] promotion applied", "reference", reference, "property_id", meta.PropertyID,
		"tier_id", meta.TierID, "expires_at", state.ExpiresAt())
	u.recordVerification(ctx, outcome)
	return outcome, nil
}

// applyPromotion runs on a context detached from caller cancellation: once the
// provider confirmed the payment the write is attempted regardless, bounded by
// storeTimeout.
func (u *PromotionPaymentUseCase) applyPromotion(ctx context.Context, propertyID string, state entities.ListingPromotionState) error {
	if u.listings == nil {
		return errListingStoreNotConfigured
	}
	if ctx.Err() != nil {
		zap.S().Warnw("[payment][orchestrator] caller cancelled after payment confirmation; still applying promotion",
			"property_id", propertyID, "err", ctx.Err())
	}
	storeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.storeTimeout)
	defer cancel()
	return u.listings.ApplyPromotion(storeCtx, propertyID, state)
}

func (u *PromotionPaymentUseCase) recordVerification(ctx context.Context, outcome entities.VerificationOutcome) {
	if u.records == nil {
		return
	}
	rec := entities.PaymentRecord{
		Reference:        outcome.Reference,
		AmountMinorUnits: outcome.Result.AmountMinorUnits,
		PropertyID:       outcome.PropertyID,
		Provider:         u.gateway.Name(),
		Status:           outcome.Result.Status,
		PromotionApplied: outcome.PromotionApplied,
		PaidAt:           outcome.Result.PaidAt,
		UpdatedAt:        u.now().UTC(),
		ProviderRaw:      outcome.Result.Raw,
	}
	if outcome.Promotion != nil {
		rec.TierID = outcome.Promotion.TierID
	}
	if outcome.Warning != nil {
		rec.Warning = outcome.Warning.Error()
	}

	recCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.storeTimeout)
	defer cancel()
	if err := u.records.RecordVerification(recCtx, rec); err != nil {
		zap.S().Warnw("[payment][orchestrator] payment record update failed", "reference", outcome.Reference, "err", err)
	}
}
