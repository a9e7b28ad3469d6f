package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"styledecor/internal/domain/entities"
	"styledecor/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound    = errors.New("service not found")
	ErrInvalidServiceID   = errors.New("invalid service id")
	ErrInvalidServiceName = errors.New("invalid service name")
	ErrInvalidServiceCost = errors.New("invalid service cost")
)

// ServiceInput carries the admin-editable catalog fields.
type ServiceInput struct {
	Name        string
	Cost        float64
	Unit        string
	Category    string
	Description string
	Image       string
}

// IServiceUseCase exposes the decoration-service catalog.

type IServiceUseCase interface {
	Create(ctx context.Context, createdByEmail string, in ServiceInput) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context, f interfaces.ServiceFilter, q interfaces.ListQuery) ([]entities.Service, int, error)
	Update(ctx context.Context, id string, in ServiceInput) (entities.Service, error)
	Delete(ctx context.Context, id string) error
	Categories(ctx context.Context) ([]string, error)
}

type ServiceUseCase struct {
	repo interfaces.IServiceRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

func (u *ServiceUseCase) Create(ctx context.Context, createdByEmail string, in ServiceInput) (entities.Service, error) {
	if err := validateServiceInput(in); err != nil {
		return entities.Service{}, err
	}

	now := time.Now().UTC()
	s := entities.Service{
		ID:             uuid.NewString(),
		Name:           strings.TrimSpace(in.Name),
		Cost:           in.Cost,
		Unit:           in.Unit,
		Category:       in.Category,
		Description:    in.Description,
		Image:          in.Image,
		CreatedByEmail: createdByEmail,
		Status:         entities.ServiceStatusActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return u.repo.Create(ctx, s)
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) List(ctx context.Context, f interfaces.ServiceFilter, q interfaces.ListQuery) ([]entities.Service, int, error) {
	if f.MaxPrice > 0 && f.MaxPrice < f.MinPrice {
		return nil, 0, ErrInvalidServiceCost
	}
	return u.repo.List(ctx, f, normalizeListQuery(q))
}

func (u *ServiceUseCase) Update(ctx context.Context, id string, in ServiceInput) (entities.Service, error) {
	if err := validateServiceInput(in); err != nil {
		return entities.Service{}, err
	}

	existing, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}

	existing.Name = strings.TrimSpace(in.Name)
	existing.Cost = in.Cost
	existing.Unit = in.Unit
	existing.Category = in.Category
	existing.Description = in.Description
	existing.Image = in.Image
	existing.UpdatedAt = time.Now().UTC()

	return u.repo.Update(ctx, existing)
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrServiceNotFound
	}
	return nil
}

func (u *ServiceUseCase) Categories(ctx context.Context) ([]string, error) {
	return u.repo.Categories(ctx)
}

func validateServiceInput(in ServiceInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrInvalidServiceName
	}
	if in.Cost <= 0 {
		return ErrInvalidServiceCost
	}
	return nil
}
