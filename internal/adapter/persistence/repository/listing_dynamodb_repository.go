package repository

import (
	"context"
	"fmt"

	"hlc_marketplace/internal/domain/entities"
	"hlc_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const defaultListingsTableName = "listings"

// ListingDynamoRepository writes promotion fields on listing items.
//
// Table requirements:
//   - PK: id (string, the property id)
//
// Only the promotion attributes are touched; the rest of the listing belongs to
// other services.
type ListingDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IListingStore = (*ListingDynamoRepository)(nil)

func NewListingDynamoRepository(ddb DynamoDBAPI) *ListingDynamoRepository {
	return &ListingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LISTINGS_TABLE", defaultListingsTableName),
	}
}

// ApplyPromotion is one conditional UpdateItem. Re-applying the same state leaves
// the same item.
func (r *ListingDynamoRepository) ApplyPromotion(ctx context.Context, propertyID string, state entities.ListingPromotionState) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: propertyID},
		},
		UpdateExpression: aws.String("SET #is_promoted = :is_promoted, #tier_id = :tier_id, #tier_name = :tier_name, " +
			"#promoted_at = :promoted_at, #expires_at = :expires_at"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":          "id",
			"#is_promoted": "is_promoted",
			"#tier_id":     "promotion_tier_id",
			"#tier_name":   "promotion_tier_name",
			"#promoted_at": "promoted_at",
			"#expires_at":  "promotion_expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":is_promoted": &types.AttributeValueMemberBOOL{Value: state.IsPromoted},
			":tier_id":     &types.AttributeValueMemberS{Value: state.TierID},
			":tier_name":   &types.AttributeValueMemberS{Value: state.TierName},
			":promoted_at": &types.AttributeValueMemberS{Value: formatTime(state.PromotedAt)},
			":expires_at":  &types.AttributeValueMemberS{Value: formatTime(state.ExpiresAt())},
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return fmt.Errorf("%w: %s", interfaces.ErrListingNotFound, propertyID)
		}
		zap.S().Errorw("[payment][repository] listing update failed", "property_id", propertyID, "table", r.tableName, "err", err)
		return err
	}
	zap.S().Infow("[payment][repository] listing promoted", "property_id", propertyID, "tier_id", state.TierID,
		"duration_days", state.DurationDays)
	return nil
}
