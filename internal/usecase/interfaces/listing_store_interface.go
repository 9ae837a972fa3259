package interfaces

import (
	"context"
	"errors"

	"hlc_marketplace/internal/domain/entities"
)

var ErrListingNotFound = errors.New("listing not found")

// IListingStore writes listing promotion fields.
//
// ApplyPromotion must be a single conditional write keyed by propertyID, without a
// prior read. Writing the same state twice must leave the same record.
type IListingStore interface {
	ApplyPromotion(ctx context.Context, propertyID string, state entities.ListingPromotionState) error
}
