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
	defaultUsersTableName = "users"
	usersEmailIndex       = "email-index"
)

type decoratorInfoItem struct {
	Specialty     string  `dynamodbav:"specialty"`
	Experience    int     `dynamodbav:"experience"`
	Rating        float64 `dynamodbav:"rating"`
	TotalProjects int     `dynamodbav:"total_projects"`
}

type userItem struct {
	ID            string             `dynamodbav:"id"`
	Name          string             `dynamodbav:"name"`
	Email         string             `dynamodbav:"email"`
	PasswordHash  string             `dynamodbav:"password_hash"`
	PhotoURL      string             `dynamodbav:"photo_url"`
	Role          string             `dynamodbav:"role"`
	Status        string             `dynamodbav:"status"`
	DecoratorInfo *decoratorInfoItem `dynamodbav:"decorator_info,omitempty"`
	CreatedAt     string             `dynamodbav:"created_at"`
	UpdatedAt     string             `dynamodbav:"updated_at"`
}

// UserDynamoRepository persists users in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: email-index (PK: email)
type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	av, err := attributevalue.MarshalMap(toUserItem(u))
	if err != nil {
		return entities.User{}, err
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
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersEmailIndex),
		KeyConditionExpression: aws.String("email = :email"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Items) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) ListAll(ctx context.Context) ([]entities.User, error) {
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

	users, err := unmarshalUsers(items)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		}
		return users[i].ID < users[j].ID
	})
	return users, nil
}

func (r *UserDynamoRepository) MakeDecorator(ctx context.Context, id string, info entities.DecoratorInfo) (entities.User, error) {
	infoAV, err := attributevalue.Marshal(decoratorInfoItem{
		Specialty:     info.Specialty,
		Experience:    info.Experience,
		Rating:        info.Rating,
		TotalProjects: info.TotalProjects,
	})
	if err != nil {
		return entities.User{}, err
	}

	return r.update(ctx, id, func(in *dynamodb.UpdateItemInput) {
		in.UpdateExpression = aws.String("SET #role = :role, decorator_info = :info, updated_at = :updated_at")
		in.ExpressionAttributeNames["#role"] = "role"
		in.ExpressionAttributeValues[":role"] = &types.AttributeValueMemberS{Value: string(entities.RoleDecorator)}
		in.ExpressionAttributeValues[":info"] = infoAV
	})
}

func (r *UserDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.UserStatus) (entities.User, error) {
	return r.update(ctx, id, func(in *dynamodb.UpdateItemInput) {
		in.UpdateExpression = aws.String("SET #status = :status, updated_at = :updated_at")
		in.ExpressionAttributeNames["#status"] = "status"
		in.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	})
}

// ListDecorators returns active decorators sorted by rating, best
// first. A limit of 0 returns them all.
func (r *UserDynamoRepository) ListDecorators(ctx context.Context, limit int) ([]entities.User, error) {
	in := &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#role = :role AND #status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#role":   "role",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":role":   &types.AttributeValueMemberS{Value: string(entities.RoleDecorator)},
			":status": &types.AttributeValueMemberS{Value: string(entities.UserStatusActive)},
		},
	}

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

	decorators, err := unmarshalUsers(items)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(decorators, func(i, j int) bool {
		ri, rj := decoratorRating(decorators[i]), decoratorRating(decorators[j])
		if ri != rj {
			return ri > rj
		}
		return decorators[i].ID < decorators[j].ID
	})
	if limit > 0 && limit < len(decorators) {
		decorators = decorators[:limit]
	}
	return decorators, nil
}

func decoratorRating(u entities.User) float64 {
	if u.DecoratorInfo == nil {
		return 0
	}
	return u.DecoratorInfo.Rating
}

// update runs a conditional UpdateItem against the user's id and
// returns the post-update entity. A failed existence condition maps to
// the zero value, matching the read path's not-found convention.
func (r *UserDynamoRepository) update(ctx context.Context, id string, build func(*dynamodb.UpdateItemInput)) (entities.User, error) {
	in := &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339Nano)},
		},
		ReturnValues: types.ReturnValueAllNew,
	}
	build(in)

	out, err := r.ddb.UpdateItem(ctx, in)
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return entities.User{}, nil
		}
		return entities.User{}, err
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

func unmarshalUsers(items []map[string]types.AttributeValue) ([]entities.User, error) {
	users := make([]entities.User, 0, len(items))
	for _, raw := range items {
		var it userItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		users = append(users, fromUserItem(it))
	}
	return users, nil
}

func toUserItem(u entities.User) userItem {
	it := userItem{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		PhotoURL:     u.PhotoURL,
		Role:         string(u.Role),
		Status:       string(u.Status),
		CreatedAt:    u.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    u.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if u.DecoratorInfo != nil {
		it.DecoratorInfo = &decoratorInfoItem{
			Specialty:     u.DecoratorInfo.Specialty,
			Experience:    u.DecoratorInfo.Experience,
			Rating:        u.DecoratorInfo.Rating,
			TotalProjects: u.DecoratorInfo.TotalProjects,
		}
	}
	return it
}

func fromUserItem(it userItem) entities.User {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	u := entities.User{
		ID:           it.ID,
		Name:         it.Name,
		Email:        it.Email,
		PasswordHash: it.PasswordHash,
		PhotoURL:     it.PhotoURL,
		Role:         entities.Role(it.Role),
		Status:       entities.UserStatus(it.Status),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
	if it.DecoratorInfo != nil {
		u.DecoratorInfo = &entities.DecoratorInfo{
			Specialty:     it.DecoratorInfo.Specialty,
			Experience:    it.DecoratorInfo.Experience,
			Rating:        it.DecoratorInfo.Rating,
			TotalProjects: it.DecoratorInfo.TotalProjects,
		}
	}
	return u
}
