package usecase

import (
	"context"
	"errors"
	"testing"

	"styledecor/internal/domain/entities"
	mock_interfaces "styledecor/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestUserUseCase_Profile(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.Profile(context.Background(), " ")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.User{}, nil)

		_, err := uc.Profile(context.Background(), "missing")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserUseCase_MakeDecorator_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewUserUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Role: entities.RoleUser}, nil)

	var captured entities.DecoratorInfo
	repo.EXPECT().MakeDecorator(gomock.Any(), "u-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, info entities.DecoratorInfo) (entities.User, error) {
			captured = info
			return entities.User{ID: id, Role: entities.RoleDecorator, DecoratorInfo: &info}, nil
		})

	got, err := uc.MakeDecorator(context.Background(), "u-1", entities.DecoratorInfo{TotalProjects: 42})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Role != entities.RoleDecorator {
		t.Fatalf("expected decorator role, got %q", got.Role)
	}
	if captured.Specialty != "General Decoration" {
		t.Fatalf("expected default specialty, got %q", captured.Specialty)
	}
	if captured.Rating != 5.0 {
		t.Fatalf("expected default rating 5.0, got %v", captured.Rating)
	}
	if captured.TotalProjects != 0 {
		t.Fatalf("expected total projects reset to 0, got %d", captured.TotalProjects)
	}
}

func TestUserUseCase_ToggleStatus(t *testing.T) {
	cases := []struct {
		name    string
		current entities.UserStatus
		want    entities.UserStatus
	}{
		{"active becomes disabled", entities.UserStatusActive, entities.UserStatusDisabled},
		{"disabled becomes active", entities.UserStatusDisabled, entities.UserStatusActive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIUserRepository(ctrl)
			uc := NewUserUseCase(repo)

			repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Status: tc.current}, nil)
			repo.EXPECT().UpdateStatus(gomock.Any(), "u-1", tc.want).Return(entities.User{ID: "u-1", Status: tc.want}, nil)

			got, err := uc.ToggleStatus(context.Background(), "u-1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got.Status)
			}
		})
	}

	t.Run("deleted between load and write maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.User{ID: "u-1", Status: entities.UserStatusActive}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "u-1", entities.UserStatusDisabled).Return(entities.User{}, nil)

		_, err := uc.ToggleStatus(context.Background(), "u-1")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserUseCase_TopDecorators_DefaultsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewUserUseCase(repo)

	repo.EXPECT().ListDecorators(gomock.Any(), defaultTopDecorators).Return(nil, nil)

	if _, err := uc.TopDecorators(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
