package repository

import (
	"context"
	"fmt"
	"strings"

	"hlc_marketplace/internal/domain/entities"
	"hlc_marketplace/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentsTableName = "payments"

type paymentRecordItem struct {
	Reference        string `dynamodbav:"reference"`
	PayerEmail       string `dynamodbav:"email,omitempty"`
	AmountMinorUnits int64  `dynamodbav:"amount"`
	PropertyID       string `dynamodbav:"property_id,omitempty"`
	TierID           string `dynamodbav:"tier_id,omitempty"`
	Provider         string `dynamodbav:"provider"`
	Status           string `dynamodbav:"status"`
	PromotionApplied bool   `dynamodbav:"promotion_applied"`
	Warning          string `dynamodbav:"warning,omitempty"`
	PaidAt           string `dynamodbav:"paid_at,omitempty"`
	CreatedAt        string `dynamodbav:"created_at,omitempty"`
	UpdatedAt        string `dynamodbav:"updated_at"`
	ProviderRaw      string `dynamodbav:"provider_raw,omitempty"`
}

// PaymentRecordDynamoRepository keeps the payment attempt audit log in DynamoDB.
//
// Table requirements:
//   - PK: reference (string)
type PaymentRecordDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb DynamoDBAPI) *PaymentRecordDynamoRepository {
	return &PaymentRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentRecordDynamoRepository) Create(ctx context.Context, rec entities.PaymentRecord) error {
	av, err := attributevalue.MarshalMap(toPaymentRecordItem(rec))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#reference)"),
		ExpressionAttributeNames: map[string]string{
			"#reference": "reference",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return fmt.Errorf("%w: %s", interfaces.ErrPaymentReferenceExists, rec.Reference)
		}
		return err
	}
	return nil
}

// Release deletes the row of an attempt that is still pending so its reference can
// be sent again. Rows already touched by a verification are kept.
func (r *PaymentRecordDynamoRepository) Release(ctx context.Context, reference string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		ConditionExpression: aws.String("#status = :pending AND #promotion_applied = :false"),
		ExpressionAttributeNames: map[string]string{
			"#status":            "status",
			"#promotion_applied": "promotion_applied",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.VerificationStatusPending)},
			":false":   &types.AttributeValueMemberBOOL{Value: false},
		},
	})
	if err != nil && !isConditionalCheckFailed(err) {
		return err
	}
	return nil
}

// RecordVerification upserts the verification fields; attempts initialized
// elsewhere still get a row.
func (r *PaymentRecordDynamoRepository) RecordVerification(ctx context.Context, rec entities.PaymentRecord) error {
	sets := []string{
		"#status = :status",
		"#promotion_applied = :promotion_applied",
		"#updated_at = :updated_at",
		"#provider = :provider",
		"#amount = :amount",
	}
	names := map[string]string{
		"#status":            "status",
		"#promotion_applied": "promotion_applied",
		"#updated_at":        "updated_at",
		"#provider":          "provider",
		"#amount":            "amount",
	}
	values := map[string]types.AttributeValue{
		":status":            &types.AttributeValueMemberS{Value: string(rec.Status)},
		":promotion_applied": &types.AttributeValueMemberBOOL{Value: rec.PromotionApplied},
		":updated_at":        &types.AttributeValueMemberS{Value: formatTime(rec.UpdatedAt)},
		":provider":          &types.AttributeValueMemberS{Value: rec.Provider},
		":amount":            &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", rec.AmountMinorUnits)},
	}
	optional := []struct{ attr, value string }{
		{"property_id", rec.PropertyID},
		{"tier_id", rec.TierID},
		{"provider_raw", string(rec.ProviderRaw)},
	}
	if rec.PaidAt != nil {
		optional = append(optional, struct{ attr, value string }{"paid_at", formatTime(*rec.PaidAt)})
	}
	for _, o := range optional {
		if o.value == "" {
			continue
		}
		sets = append(sets, fmt.Sprintf("#%s = :%s", o.attr, o.attr))
		names["#"+o.attr] = o.attr
		values[":"+o.attr] = &types.AttributeValueMemberS{Value: o.value}
	}

	names["#warning"] = "warning"
	if rec.Warning != "" {
		sets = append(sets, "#warning = :warning")
		values[":warning"] = &types.AttributeValueMemberS{Value: rec.Warning}
	}
	expr := "SET " + strings.Join(sets, ", ")
	if rec.Warning == "" {
		expr += " REMOVE #warning"
	}

	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: rec.Reference},
		},
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	})
	return err
}

// GetByReference returns a zero record when the reference is unknown.
func (r *PaymentRecordDynamoRepository) GetByReference(ctx context.Context, reference string) (entities.PaymentRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"reference": &types.AttributeValueMemberS{Value: reference},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentRecord{}, nil
	}

	var it paymentRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentRecord{}, err
	}
	return fromPaymentRecordItem(it), nil
}

func toPaymentRecordItem(rec entities.PaymentRecord) paymentRecordItem {
	it := paymentRecordItem{
		Reference:        rec.Reference,
		PayerEmail:       rec.PayerEmail,
		AmountMinorUnits: rec.AmountMinorUnits,
		PropertyID:       rec.PropertyID,
		TierID:           rec.TierID,
		Provider:         rec.Provider,
		Status:           string(rec.Status),
		PromotionApplied: rec.PromotionApplied,
		Warning:          rec.Warning,
		UpdatedAt:        formatTime(rec.UpdatedAt),
		ProviderRaw:      string(rec.ProviderRaw),
	}
	if !rec.CreatedAt.IsZero() {
		it.CreatedAt = formatTime(rec.CreatedAt)
	}
	if rec.PaidAt != nil {
		it.PaidAt = formatTime(*rec.PaidAt)
	}
	return it
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	rec := entities.PaymentRecord{
		Reference:        it.Reference,
		PayerEmail:       it.PayerEmail,
		AmountMinorUnits: it.AmountMinorUnits,
		PropertyID:       it.PropertyID,
		TierID:           it.TierID,
		Provider:         it.Provider,
		Status:           entities.VerificationStatus(it.Status),
		PromotionApplied: it.PromotionApplied,
		Warning:          it.Warning,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
	if it.PaidAt != "" {
		paid := parseTime(it.PaidAt)
		rec.PaidAt = &paid
	}
	if it.ProviderRaw != "" {
		rec.ProviderRaw = []byte(it.ProviderRaw)
	}
	return rec
}
