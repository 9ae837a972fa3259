package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"hlc_marketplace/internal/domain/entities"
	"hlc_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const propertyID = "11111111-1111-1111-1111-111111111111"

func promotedState(at time.Time) entities.ListingPromotionState {
	return entities.ListingPromotionState{
		IsPromoted:   true,
		TierID:       "premium",
		TierName:     "Premium Spotlight",
		PromotedAt:   at,
		DurationDays: 14,
	}
}

func TestListingDynamoRepository_ApplyPromotion(t *testing.T) {
	t.Setenv("LISTINGS_TABLE", "hlc-listings")
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("conditional update keyed by id", func(t *testing.T) {
		ddb := &fakeDynamoDB{}
		repo := NewListingDynamoRepository(ddb)

		require.NoError(t, repo.ApplyPromotion(context.Background(), propertyID, promotedState(at)))
		require.Len(t, ddb.updateInputs, 1)
		assert.Empty(t, ddb.getInputs)
		assert.Empty(t, ddb.putInputs)

		in := ddb.updateInputs[0]
		assert.Equal(t, "hlc-listings", aws.ToString(in.TableName))
		assert.Equal(t, "attribute_exists(#id)", aws.ToString(in.ConditionExpression))
		assert.Equal(t, propertyID, in.Key["id"].(*types.AttributeValueMemberS).Value)
		assert.Equal(t, "promotion_expires_at", in.ExpressionAttributeNames["#expires_at"])
		assert.True(t, in.ExpressionAttributeValues[":is_promoted"].(*types.AttributeValueMemberBOOL).Value)
		assert.Equal(t, "premium", in.ExpressionAttributeValues[":tier_id"].(*types.AttributeValueMemberS).Value)
		assert.Equal(t, "2026-03-01T09:30:00Z", in.ExpressionAttributeValues[":promoted_at"].(*types.AttributeValueMemberS).Value)
		assert.Equal(t, "2026-03-15T09:30:00Z", in.ExpressionAttributeValues[":expires_at"].(*types.AttributeValueMemberS).Value)
	})

	t.Run("same state writes same values", func(t *testing.T) {
		ddb := &fakeDynamoDB{}
		repo := NewListingDynamoRepository(ddb)

		require.NoError(t, repo.ApplyPromotion(context.Background(), propertyID, promotedState(at)))
		require.NoError(t, repo.ApplyPromotion(context.Background(), propertyID, promotedState(at)))
		require.Len(t, ddb.updateInputs, 2)
		assert.Equal(t, ddb.updateInputs[0].ExpressionAttributeValues, ddb.updateInputs[1].ExpressionAttributeValues)
	})

	t.Run("missing listing", func(t *testing.T) {
		ddb := &fakeDynamoDB{updateErr: &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}}
		repo := NewListingDynamoRepository(ddb)

		err := repo.ApplyPromotion(context.Background(), propertyID, promotedState(at))
		assert.ErrorIs(t, err, interfaces.ErrListingNotFound)
	})

	t.Run("store error returned", func(t *testing.T) {
		boom := errors.New("throughput exceeded")
		repo := NewListingDynamoRepository(&fakeDynamoDB{updateErr: boom})

		err := repo.ApplyPromotion(context.Background(), propertyID, promotedState(at))
		assert.ErrorIs(t, err, boom)
	})
}
