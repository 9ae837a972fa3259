package promotion

import (
	"errors"
	"strings"

	"hlc_marketplace/internal/domain/entities"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateIntent checks an intent before anything is sent to the provider.
func ValidateIntent(intent entities.PaymentIntent) error {
	if err := validate.Struct(intent); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return entities.NewValidationError(fe.Field(), "failed "+fe.Tag())
		}
		return entities.NewValidationError("", err.Error())
	}
	return ValidateMetadata(intent.Metadata)
}

// ValidateMetadata checks the fields Decode requires, so that every accepted intent
// decodes back on verification.
func ValidateMetadata(meta entities.PromotionMetadata) error {
	if _, err := uuid.Parse(meta.PropertyID); err != nil {
		return entities.NewValidationError("metadata.property_id", "must be a UUID")
	}
	if _, err := uuid.Parse(meta.AgentID); err != nil {
		return entities.NewValidationError("metadata.agent_id", "must be a UUID")
	}
	if strings.TrimSpace(meta.TierID) == "" {
		return entities.NewValidationError("metadata.tier_id", "is required")
	}
	if strings.TrimSpace(meta.TierName) == "" {
		return entities.NewValidationError("metadata.tier_name", "is required")
	}
	if meta.TierDurationDays <= 0 {
		return entities.NewValidationError("metadata.tier_duration", "must be a positive number of days")
	}
	if meta.TierFeeMajorUnits < 0 {
		return entities.NewValidationError("metadata.tier_fee", "must not be negative")
	}
	if meta.Purpose != "" && meta.Purpose != entities.PurposePropertyPromotion {
		return entities.NewValidationError("metadata.purpose", "unsupported purpose")
	}
	return nil
}
