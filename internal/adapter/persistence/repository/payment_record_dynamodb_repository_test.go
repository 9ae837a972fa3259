package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"hlc_marketplace/internal/domain/entities"
	"hlc_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentRecordDynamoRepository_Create(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rec := entities.PaymentRecord{
		Reference:        "HLC-PROP-9F3A",
		PayerEmail:       "agent@example.com",
		AmountMinorUnits: 1_500_000,
		PropertyID:       propertyID,
		TierID:           "premium",
		Provider:         "paystack",
		Status:           entities.VerificationStatusPending,
		CreatedAt:        created,
		UpdatedAt:        created,
	}

	t.Run("conditional put", func(t *testing.T) {
		ddb := &fakeDynamoDB{}
		repo := NewPaymentRecordDynamoRepository(ddb)

		require.NoError(t, repo.Create(context.Background(), rec))
		require.Len(t, ddb.putInputs, 1)
		in := ddb.putInputs[0]
		assert.Equal(t, "attribute_not_exists(#reference)", aws.ToString(in.ConditionExpression))

		var it paymentRecordItem
		require.NoError(t, attributevalue.UnmarshalMap(in.Item, &it))
		assert.Equal(t, "HLC-PROP-9F3A", it.Reference)
		assert.Equal(t, "pending", it.Status)
		assert.Equal(t, "2026-03-01T09:00:00Z", it.CreatedAt)
		assert.Empty(t, it.PaidAt)
	})

	t.Run("duplicate reference", func(t *testing.T) {
		ddb := &fakeDynamoDB{putErr: &types.ConditionalCheckFailedException{}}
		repo := NewPaymentRecordDynamoRepository(ddb)

		err := repo.Create(context.Background(), rec)
		assert.ErrorIs(t, err, interfaces.ErrPaymentReferenceExists)
	})
}

func TestPaymentRecordDynamoRepository_Release(t *testing.T) {
	t.Run("conditional delete of a pending row", func(t *testing.T) {
		ddb := &fakeDynamoDB{}
		repo := NewPaymentRecordDynamoRepository(ddb)

		require.NoError(t, repo.Release(context.Background(), "HLC-PROP-9F3A"))
		require.Len(t, ddb.deleteInputs, 1)
		in := ddb.deleteInputs[0]
		assert.Equal(t, "#status = :pending AND #promotion_applied = :false", aws.ToString(in.ConditionExpression))
		assert.Equal(t, &types.AttributeValueMemberS{Value: "HLC-PROP-9F3A"}, in.Key["reference"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "pending"}, in.ExpressionAttributeValues[":pending"])
	})

	t.Run("verified row is kept", func(t *testing.T) {
		ddb := &fakeDynamoDB{deleteErr: &types.ConditionalCheckFailedException{}}
		repo := NewPaymentRecordDynamoRepository(ddb)
		assert.NoError(t, repo.Release(context.Background(), "HLC-PROP-9F3A"))
	})

	t.Run("storage error", func(t *testing.T) {
		ddb := &fakeDynamoDB{deleteErr: assert.AnError}
		repo := NewPaymentRecordDynamoRepository(ddb)
		assert.ErrorIs(t, repo.Release(context.Background(), "HLC-PROP-9F3A"), assert.AnError)
	})
}

func TestPaymentRecordDynamoRepository_RecordVerification(t *testing.T) {
	paid := time.Date(2026, 3, 1, 9, 30, 12, 0, time.UTC)

	t.Run("with warning and paid_at", func(t *testing.T) {
		ddb := &fakeDynamoDB{}
		repo := NewPaymentRecordDynamoRepository(ddb)

		err := repo.RecordVerification(context.Background(), entities.PaymentRecord{
			Reference:        "HLC-PROP-9F3A",
			AmountMinorUnits: 1_500_000,
			PropertyID:       propertyID,
			Provider:         "paystack",
			Status:           entities.VerificationStatusSuccess,
			Warning:          "listing not found",
			PaidAt:           &paid,
			UpdatedAt:        paid,
			ProviderRaw:      json.RawMessage(`{"status":"success"}`),
		})
		require.NoError(t, err)
		require.Len(t, ddb.updateInputs, 1)

		in := ddb.updateInputs[0]
		expr := aws.ToString(in.UpdateExpression)
		assert.Contains(t, expr, "#warning = :warning")
		assert.Contains(t, expr, "#paid_at = :paid_at")
		assert.NotContains(t, expr, "REMOVE")
		assert.Nil(t, in.ConditionExpression)
		assert.Equal(t, "1500000", in.ExpressionAttributeValues[":amount"].(*types.AttributeValueMemberN).Value)
		assert.Equal(t, `{"status":"success"}`, in.ExpressionAttributeValues[":provider_raw"].(*types.AttributeValueMemberS).Value)
		assert.NotContains(t, in.ExpressionAttributeValues, ":tier_id")
	})

	t.Run("clears stale warning", func(t *testing.T) {
		ddb := &fakeDynamoDB{}
		repo := NewPaymentRecordDynamoRepository(ddb)

		err := repo.RecordVerification(context.Background(), entities.PaymentRecord{
			Reference: "HLC-PROP-9F3A",
			Status:    entities.VerificationStatusSuccess,
			UpdatedAt: paid,
		})
		require.NoError(t, err)
		expr := aws.ToString(ddb.updateInputs[0].UpdateExpression)
		assert.Contains(t, expr, "REMOVE #warning")
		assert.NotContains(t, expr, "#paid_at")
	})
}

func TestPaymentRecordDynamoRepository_GetByReference(t *testing.T) {
	t.Run("unknown reference", func(t *testing.T) {
		repo := NewPaymentRecordDynamoRepository(&fakeDynamoDB{})
		rec, err := repo.GetByReference(context.Background(), "NOPE")
		require.NoError(t, err)
		assert.Empty(t, rec.Reference)
	})

	t.Run("found", func(t *testing.T) {
		item, err := attributevalue.MarshalMap(paymentRecordItem{
			Reference:        "HLC-PROP-9F3A",
			AmountMinorUnits: 1_500_000,
			Provider:         "paystack",
			Status:           "success",
			PromotionApplied: true,
			PaidAt:           "2026-03-01T09:30:12Z",
			UpdatedAt:        "2026-03-01T09:31:00Z",
			ProviderRaw:      `{"status":"success"}`,
		})
		require.NoError(t, err)

		ddb := &fakeDynamoDB{getOut: &dynamodb.GetItemOutput{Item: item}}
		repo := NewPaymentRecordDynamoRepository(ddb)

		rec, err := repo.GetByReference(context.Background(), "HLC-PROP-9F3A")
		require.NoError(t, err)
		assert.True(t, aws.ToBool(ddb.getInputs[0].ConsistentRead))
		assert.Equal(t, entities.VerificationStatusSuccess, rec.Status)
		assert.True(t, rec.PromotionApplied)
		require.NotNil(t, rec.PaidAt)
		assert.Equal(t, 30, rec.PaidAt.Minute())
		assert.JSONEq(t, `{"status":"success"}`, string(rec.ProviderRaw))
		assert.True(t, rec.CreatedAt.IsZero())
	})
}
