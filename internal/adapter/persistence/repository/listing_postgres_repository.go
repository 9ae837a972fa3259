package repository

import (
	"context"
	"fmt"

	"hlc_marketplace/internal/domain/entities"
	"hlc_marketplace/internal/usecase/interfaces"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ListingPostgresRepository writes promotion columns on the relational listings table.
//
// Expected columns: id (uuid PK), is_promoted, promotion_tier_id,
// promotion_tier_name, promoted_at, promotion_expires_at.
type ListingPostgresRepository struct {
	db        *gorm.DB
	tableName string
}

var _ interfaces.IListingStore = (*ListingPostgresRepository)(nil)

func NewListingPostgresRepository(db *gorm.DB) *ListingPostgresRepository {
	return &ListingPostgresRepository{
		db:        db,
		tableName: getenvDefault("LISTINGS_TABLE", defaultListingsTableName),
	}
}

// ApplyPromotion issues a single UPDATE ... WHERE id = ?. Zero affected rows means
// the listing does not exist.
func (r *ListingPostgresRepository) ApplyPromotion(ctx context.Context, propertyID string, state entities.ListingPromotionState) error {
	res := r.db.WithContext(ctx).
		Table(r.tableName).
		Where("id = ?", propertyID).
		Updates(map[string]any{
			"is_promoted":          state.IsPromoted,
			"promotion_tier_id":    state.TierID,
			"promotion_tier_name":  state.TierName,
			"promoted_at":          state.PromotedAt.UTC(),
			"promotion_expires_at": state.ExpiresAt().UTC(),
		})
	if res.Error != nil {
		zap.S().Errorw("[payment][repository] listing update failed", "property_id", propertyID, "table", r.tableName, "err", res.Error)
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", interfaces.ErrListingNotFound, propertyID)
	}
	zap.S().Infow("[payment][repository] listing promoted", "property_id", propertyID, "tier_id", state.TierID,
		"duration_days", state.DurationDays)
	return nil
}
