package interfaces

import (
	"context"

	"hlc_marketplace/internal/domain/entities"
)

// IPromotionTierCatalog fetches operator-configured promotion tiers.
//
// Implementations read the configuration on every call; GetTier returns a zero
// PromotionTier and a nil error when the tier does not exist.
type IPromotionTierCatalog interface {
	ListTiers(ctx context.Context) ([]entities.PromotionTier, error)
	GetTier(ctx context.Context, id string) (entities.PromotionTier, error)
}
