package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"styledecor/internal/domain/entities"
	"styledecor/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultServicesTableName = "services"

type serviceItem struct {
	ID             string  `dynamodbav:"id"`
	Name           string  `dynamodbav:"service_name"`
	Cost           float64 `dynamodbav:"cost"`
	Unit           string  `dynamodbav:"unit"`
	Category       string  `dynamodbav:"service_category"`
	Description    string  `dynamodbav:"description"`
	Image          string  `dynamodbav:"image"`
	CreatedByEmail string  `dynamodbav:"created_by_email"`
	Status         string  `dynamodbav:"status"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

// ServiceDynamoRepository stores the decoration catalog in a single
// DynamoDB table keyed by id. Category and price filters push down as
// scan filter expressions; free-text search matches in memory because
// DynamoDB contains() is case sensitive.
type ServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRepository = (*ServiceDynamoRepository)(nil)

func NewServiceDynamoRepository(ddb *dynamodb.Client) *ServiceDynamoRepository {
	return &ServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SERVICES_TABLE", defaultServicesTableName),
	}
}

func (r *ServiceDynamoRepository) Create(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
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
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Service, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Service{}, err
	}
	if len(out.Item) == 0 {
		return entities.Service{}, nil
	}

	var it serviceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Service{}, err
	}
	return fromServiceItem(it), nil
}

func (r *ServiceDynamoRepository) List(ctx context.Context, f interfaces.ServiceFilter, q interfaces.ListQuery) ([]entities.Service, int, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}

	var exprs []string
	values := map[string]types.AttributeValue{}

	if f.Category != "" {
		exprs = append(exprs, "service_category = :category")
		values[":category"] = &types.AttributeValueMemberS{Value: f.Category}
	}
	if f.MinPrice > 0 {
		exprs = append(exprs, "cost >= :min_price")
		values[":min_price"] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(f.MinPrice, 'f', -1, 64)}
	}
	if f.MaxPrice > 0 {
		exprs = append(exprs, "cost <= :max_price")
		values[":max_price"] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(f.MaxPrice, 'f', -1, 64)}
	}
	if len(exprs) > 0 {
		in.FilterExpression = aws.String(strings.Join(exprs, " AND "))
		in.ExpressionAttributeValues = values
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

	services := make([]entities.Service, 0, len(items))
	search := strings.ToLower(strings.TrimSpace(f.Search))
	for _, raw := range items {
		var it serviceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, 0, err
		}
		s := fromServiceItem(it)
		if search != "" && !matchesServiceSearch(s, search) {
			continue
		}
		services = append(services, s)
	}

	sort.SliceStable(services, func(i, j int) bool {
		if !services[i].CreatedAt.Equal(services[j].CreatedAt) {
			return services[i].CreatedAt.After(services[j].CreatedAt)
		}
		return services[i].ID < services[j].ID
	})

	total := len(services)
	return paginate(services, q.Page, q.Limit), total, nil
}

func matchesServiceSearch(s entities.Service, search string) bool {
	return strings.Contains(strings.ToLower(s.Name), search) ||
		strings.Contains(strings.ToLower(s.Description), search) ||
		strings.Contains(strings.ToLower(s.Category), search)
}

func (r *ServiceDynamoRepository) Update(ctx context.Context, s entities.Service) (entities.Service, error) {
	av, err := attributevalue.MarshalMap(toServiceItem(s))
	if err != nil {
		return entities.Service{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.Service{}, nil
		}
		return entities.Service{}, err
	}
	return s, nil
}

func (r *ServiceDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func (r *ServiceDynamoRepository) Categories(ctx context.Context) ([]string, error) {
	in := &dynamodb.ScanInput{
		TableName:            aws.String(r.tableName),
		ProjectionExpression: aws.String("service_category"),
	}

	seen := map[string]struct{}{}
	var categories []string
	for {
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it struct {
				Category string `dynamodbav:"service_category"`
			}
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			if it.Category == "" {
				continue
			}
			if _, ok := seen[it.Category]; ok {
				continue
			}
			seen[it.Category] = struct{}{}
			categories = append(categories, it.Category)
		}
		if out.LastEvaluatedKey == nil {
			break
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}

	sort.Strings(categories)
	return categories, nil
}

func toServiceItem(s entities.Service) serviceItem {
	return serviceItem{
		ID:             s.ID,
		Name:           s.Name,
		Cost:           s.Cost,
		Unit:           s.Unit,
		Category:       s.Category,
		Description:    s.Description,
		Image:          s.Image,
		CreatedByEmail: s.CreatedByEmail,
		Status:         string(s.Status),
		CreatedAt:      s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceItem(it serviceItem) entities.Service {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Service{
		ID:             it.ID,
		Name:           it.Name,
		Cost:           it.Cost,
		Unit:           it.Unit,
		Category:       it.Category,
		Description:    it.Description,
		Image:          it.Image,
		CreatedByEmail: it.CreatedByEmail,
		Status:         entities.ServiceStatus(it.Status),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
