package interfaces

import (
	"context"

	"styledecor/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// Lookups return the zero value (ID == "") when the user is absent.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	ListAll(ctx context.Context) ([]entities.User, error)
	MakeDecorator(ctx context.Context, id string, info entities.DecoratorInfo) (entities.User, error)
	UpdateStatus(ctx context.Context, id string, status entities.UserStatus) (entities.User, error)
	ListDecorators(ctx context.Context, limit int) ([]entities.User, error)
}
