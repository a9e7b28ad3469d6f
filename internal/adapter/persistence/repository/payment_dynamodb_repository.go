package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"styledecor/internal/domain/entities"
	"styledecor/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName   = "payments"
	paymentsUserIDIndex        = "user_id-index"
	paymentsTransactionIDIndex = "transaction_id-index"
)

type paymentItem struct {
	ID            string  `dynamodbav:"id"`
	UserID        string  `dynamodbav:"user_id"`
	UserEmail     string  `dynamodbav:"user_email"`
	BookingID     string  `dynamodbav:"booking_id"`
	Amount        float64 `dynamodbav:"amount"`
	TransactionID string  `dynamodbav:"transaction_id"`
	Status        string  `dynamodbav:"status"`
	PaymentMethod string  `dynamodbav:"payment_method"`
	CreatedAt     string  `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//   - GSI: transaction_id-index (PK: transaction_id)
//
// The bookings table name is needed as well: payment confirmation is a
// TransactWriteItems spanning both tables.
type PaymentDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	bookingsTable string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
		bookingsTable: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

// ConfirmBookingPayment inserts the payment record and flips the booking
// to paid/confirmed in one transaction. The booking update is
// conditioned on no payment_intent_id being present yet and on the
// booking not being cancelled; either failure cancels the whole
// transaction and surfaces interfaces.ErrBookingPaymentRecorded.
func (r *PaymentDynamoRepository) ConfirmBookingPayment(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.bookingsTable),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: p.BookingID},
					},
					UpdateExpression:    aws.String("SET payment_status = :paid, #status = :confirmed, payment_intent_id = :intent, updated_at = :updated_at"),
					ConditionExpression: aws.String("attribute_exists(#id) AND attribute_not_exists(payment_intent_id) AND #status <> :cancelled"),
					ExpressionAttributeNames: map[string]string{
						"#id":     "id",
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":paid":       &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPaid)},
						":confirmed":  &types.AttributeValueMemberS{Value: string(entities.BookingStatusConfirmed)},
						":cancelled":  &types.AttributeValueMemberS{Value: string(entities.BookingStatusCancelled)},
						":intent":     &types.AttributeValueMemberS{Value: p.TransactionID},
						":updated_at": &types.AttributeValueMemberS{Value: now},
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && hasConditionalCheckFailure(tce) {
			return entities.Payment{}, interfaces.ErrBookingPaymentRecorded
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func hasConditionalCheckFailure(tce *types.TransactionCanceledException) bool {
	for _, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) GetByTransactionID(ctx context.Context, transactionID string) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsTransactionIDIndex),
		KeyConditionExpression: aws.String("transaction_id = :tid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":tid": &types.AttributeValueMemberS{Value: transactionID},
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(out.Items)
}

func (r *PaymentDynamoRepository) ListAll(ctx context.Context) ([]entities.Payment, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var items []map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return unmarshalPayments(items)
}

func unmarshalPayments(items []map[string]types.AttributeValue) ([]entities.Payment, error) {
	payments := make([]entities.Payment, 0, len(items))
	for _, raw := range items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	// Newest first.
	sort.SliceStable(payments, func(i, j int) bool {
		if !payments[i].CreatedAt.Equal(payments[j].CreatedAt) {
			return payments[i].CreatedAt.After(payments[j].CreatedAt)
		}
		return payments[i].ID < payments[j].ID
	})
	return payments, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:            p.ID,
		UserID:        p.UserID,
		UserEmail:     p.UserEmail,
		BookingID:     p.BookingID,
		Amount:        p.Amount,
		TransactionID: p.TransactionID,
		Status:        string(p.Status),
		PaymentMethod: p.PaymentMethod,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Payment{
		ID:            it.ID,
		UserID:        it.UserID,
		UserEmail:     it.UserEmail,
		BookingID:     it.BookingID,
		Amount:        it.Amount,
		TransactionID: it.TransactionID,
		Status:        entities.TransactionStatus(it.Status),
		PaymentMethod: it.PaymentMethod,
		CreatedAt:     createdAt,
	}
}
