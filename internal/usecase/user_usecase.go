package usecase

import (
	"context"
	"errors"
	"strings"

	"styledecor/internal/domain/entities"
	"styledecor/internal/usecase/interfaces"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidUserID = errors.New("invalid user id")
)

const defaultTopDecorators = 6

// IUserUseCase exposes profile and account-administration operations.

type IUserUseCase interface {
	Profile(ctx context.Context, id string) (entities.User, error)
	ListAll(ctx context.Context) ([]entities.User, error)
	MakeDecorator(ctx context.Context, id string, info entities.DecoratorInfo) (entities.User, error)
	ToggleStatus(ctx context.Context, id string) (entities.User, error)
	ListDecorators(ctx context.Context) ([]entities.User, error)
	TopDecorators(ctx context.Context, limit int) ([]entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (u *UserUseCase) Profile(ctx context.Context, id string) (entities.User, error) {
	return u.load(ctx, id)
}

func (u *UserUseCase) ListAll(ctx context.Context) ([]entities.User, error) {
	return u.repo.ListAll(ctx)
}

func (u *UserUseCase) MakeDecorator(ctx context.Context, id string, info entities.DecoratorInfo) (entities.User, error) {
	if _, err := u.load(ctx, id); err != nil {
		return entities.User{}, err
	}

	if strings.TrimSpace(info.Specialty) == "" {
		info.Specialty = "General Decoration"
	}
	if info.Rating == 0 {
		info.Rating = 5.0
	}
	info.TotalProjects = 0

	promoted, err := u.repo.MakeDecorator(ctx, id, info)
	if err != nil {
		return entities.User{}, err
	}
	// A zero value means the conditional write lost to a concurrent
	// delete.
	if promoted.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return promoted, nil
}

func (u *UserUseCase) ToggleStatus(ctx context.Context, id string) (entities.User, error) {
	user, err := u.load(ctx, id)
	if err != nil {
		return entities.User{}, err
	}

	next := entities.UserStatusActive
	if user.Status == entities.UserStatusActive {
		next = entities.UserStatusDisabled
	}
	toggled, err := u.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return entities.User{}, err
	}
	if toggled.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return toggled, nil
}

func (u *UserUseCase) ListDecorators(ctx context.Context) ([]entities.User, error) {
	return u.repo.ListDecorators(ctx, 0)
}

func (u *UserUseCase) TopDecorators(ctx context.Context, limit int) ([]entities.User, error) {
	if limit < 1 {
		limit = defaultTopDecorators
	}
	return u.repo.ListDecorators(ctx, limit)
}

func (u *UserUseCase) load(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}
