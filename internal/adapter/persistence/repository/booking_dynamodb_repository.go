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
	defaultBookingsTableName    = "bookings"
	bookingsUserEmailIndex      = "user_email-index"
	bookingsDecoratorEmailIndex = "decorator_email-index"
)

type decoratorRefItem struct {
	ID    string `dynamodbav:"id"`
	Name  string `dynamodbav:"name"`
	Email string `dynamodbav:"email"`
}

type bookingItem struct {
	ID              string  `dynamodbav:"id"`
	ServiceID       string  `dynamodbav:"service_id"`
	ServiceName     string  `dynamodbav:"service_name"`
	ServiceCost     float64 `dynamodbav:"service_cost"`
	BookingDate     string  `dynamodbav:"booking_date"`
	Location        string  `dynamodbav:"location"`
	Notes           string  `dynamodbav:"notes"`
	UserID          string  `dynamodbav:"user_id"`
	UserEmail       string  `dynamodbav:"user_email"`
	UserName        string  `dynamodbav:"user_name"`
	Status          string  `dynamodbav:"status"`
	PaymentStatus   string  `dynamodbav:"payment_status"`
	PaymentIntentID string  `dynamodbav:"payment_intent_id,omitempty"`
	ProjectStatus   string  `dynamodbav:"project_status,omitempty"`
	// decorator_email is duplicated top-level to feed the GSI.
	DecoratorEmail    string            `dynamodbav:"decorator_email,omitempty"`
	AssignedDecorator *decoratorRefItem `dynamodbav:"assigned_decorator,omitempty"`
	CreatedAt         string            `dynamodbav:"created_at"`
	UpdatedAt         string            `dynamodbav:"updated_at"`
}

// BookingDynamoRepository persists Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_email-index (PK: user_email)
//   - GSI: decorator_email-index (PK: decorator_email)

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	av, err := attributevalue.MarshalMap(toBookingItem(b))
	if err != nil {
		return entities.Booking{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) ListByUserEmail(ctx context.Context, email string, q interfaces.ListQuery) ([]entities.Booking, int, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsUserEmailIndex),
		KeyConditionExpression: aws.String("user_email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, 0, err
	}

	bookings, err := unmarshalBookings(out.Items)
	if err != nil {
		return nil, 0, err
	}
	sortBookingsDesc(bookings, q.SortKey)
	return paginate(bookings, q.Page, q.Limit), len(bookings), nil
}

func (r *BookingDynamoRepository) List(ctx context.Context, f interfaces.BookingFilter, q interfaces.ListQuery) ([]entities.Booking, int, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	expr := ""
	names := map[string]string{}
	values := map[string]types.AttributeValue{}
	if f.Status != "" {
		expr = "#status = :status"
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: f.Status}
	}
	if f.PaymentStatus != "" {
		if expr != "" {
			expr += " AND "
		}
		expr += "payment_status = :payment_status"
		values[":payment_status"] = &types.AttributeValueMemberS{Value: f.PaymentStatus}
	}
	if expr != "" {
		in.FilterExpression = aws.String(expr)
		in.ExpressionAttributeValues = values
		if len(names) > 0 {
			in.ExpressionAttributeNames = names
		}
	}

	var items []map[string]types.AttributeValue
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, out.Items...)
		if out.LastEvaluatedKey == nil {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}

	bookings, err := unmarshalBookings(items)
	if err != nil {
		return nil, 0, err
	}
	sortBookingsDesc(bookings, q.SortKey)
	return paginate(bookings, q.Page, q.Limit), len(bookings), nil
}

func (r *BookingDynamoRepository) ListByDecoratorEmail(ctx context.Context, email string) ([]entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsDecoratorEmailIndex),
		KeyConditionExpression: aws.String("decorator_email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}

	bookings, err := unmarshalBookings(out.Items)
	if err != nil {
		return nil, err
	}
	sortBookingsDesc(bookings, "bookingDate")
	return bookings, nil
}

func (r *BookingDynamoRepository) UpdateDetails(ctx context.Context, id string, date time.Time, location, notes string) (entities.Booking, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET booking_date = :booking_date, #location = :location, notes = :notes, updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":booking_date": &types.AttributeValueMemberS{Value: date.UTC().Format(time.RFC3339Nano)},
			":location":     &types.AttributeValueMemberS{Value: location},
			":notes":        &types.AttributeValueMemberS{Value: notes},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#location": "location",
		}
		return expr, vals, names
	})
}

func (r *BookingDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status": "status",
		}
		return expr, vals, names
	})
}

func (r *BookingDynamoRepository) AssignDecorator(ctx context.Context, id string, ref entities.DecoratorRef) (entities.Booking, error) {
	refAV, err := attributevalue.Marshal(decoratorRefItem{ID: ref.ID, Name: ref.Name, Email: ref.Email})
	if err != nil {
		return entities.Booking{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET assigned_decorator = :decorator, decorator_email = :decorator_email, project_status = :project_status, #status = :status, updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":decorator":       refAV,
			":decorator_email": &types.AttributeValueMemberS{Value: ref.Email},
			":project_status":  &types.AttributeValueMemberS{Value: string(entities.ProjectStatusAssigned)},
			":status":          &types.AttributeValueMemberS{Value: string(entities.BookingStatusConfirmed)},
			":updated_at":      &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status": "status",
		}
		return expr, vals, names
	})
}

func (r *BookingDynamoRepository) UpdateProjectStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Booking, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET project_status = :project_status, updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":project_status": &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		return expr, vals, nil
	})
}

func (r *BookingDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Booking, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Booking{}, nil
		}
		return entities.Booking{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func unmarshalBookings(items []map[string]types.AttributeValue) ([]entities.Booking, error) {
	bookings := make([]entities.Booking, 0, len(items))
	for _, raw := range items {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		bookings = append(bookings, fromBookingItem(it))
	}
	return bookings, nil
}

// sortBookingsDesc orders newest-first by the given key, falling back
// to id for a deterministic tie-break.
func sortBookingsDesc(bookings []entities.Booking, sortKey string) {
	sort.SliceStable(bookings, func(i, j int) bool {
		ki, kj := bookingSortValue(bookings[i], sortKey), bookingSortValue(bookings[j], sortKey)
		if !ki.Equal(kj) {
			return ki.After(kj)
		}
		return bookings[i].ID < bookings[j].ID
	})
}

func bookingSortValue(b entities.Booking, sortKey string) time.Time {
	switch sortKey {
	case "bookingDate":
		return b.BookingDate
	case "updatedAt":
		return b.UpdatedAt
	default:
		return b.CreatedAt
	}
}

func toBookingItem(b entities.Booking) bookingItem {
	it := bookingItem{
		ID:              b.ID,
		ServiceID:       b.ServiceID,
		ServiceName:     b.ServiceName,
		ServiceCost:     b.ServiceCost,
		BookingDate:     b.BookingDate.UTC().Format(time.RFC3339Nano),
		Location:        b.Location,
		Notes:           b.Notes,
		UserID:          b.UserID,
		UserEmail:       b.UserEmail,
		UserName:        b.UserName,
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		PaymentIntentID: b.PaymentIntentID,
		ProjectStatus:   string(b.ProjectStatus),
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       b.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if b.AssignedDecorator != nil {
		it.DecoratorEmail = b.AssignedDecorator.Email
		it.AssignedDecorator = &decoratorRefItem{
			ID:    b.AssignedDecorator.ID,
			Name:  b.AssignedDecorator.Name,
			Email: b.AssignedDecorator.Email,
		}
	}
	return it
}

func fromBookingItem(it bookingItem) entities.Booking {
	bookingDate, _ := time.Parse(time.RFC3339Nano, it.BookingDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	b := entities.Booking{
		ID:              it.ID,
		ServiceID:       it.ServiceID,
		ServiceName:     it.ServiceName,
		ServiceCost:     it.ServiceCost,
		BookingDate:     bookingDate,
		Location:        it.Location,
		Notes:           it.Notes,
		UserID:          it.UserID,
		UserEmail:       it.UserEmail,
		UserName:        it.UserName,
		Status:          entities.BookingStatus(it.Status),
		PaymentStatus:   entities.PaymentStatus(it.PaymentStatus),
		PaymentIntentID: it.PaymentIntentID,
		ProjectStatus:   entities.ProjectStatus(it.ProjectStatus),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	if it.AssignedDecorator != nil {
		b.AssignedDecorator = &entities.DecoratorRef{
			ID:    it.AssignedDecorator.ID,
			Name:  it.AssignedDecorator.Name,
			Email: it.AssignedDecorator.Email,
		}
	}
	return b
}
