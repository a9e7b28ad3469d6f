package usecase

import (
	"context"
	"errors"
	"testing"

	"styledecor/internal/domain/entities"
	"styledecor/internal/usecase/interfaces"
	mock_interfaces "styledecor/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestServiceUseCase_Create(t *testing.T) {
	t.Run("blank name", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		_, err := uc.Create(context.Background(), "admin@example.com", ServiceInput{Name: " ", Cost: 100})
		if !errors.Is(err, ErrInvalidServiceName) {
			t.Fatalf("expected ErrInvalidServiceName, got %v", err)
		}
	})

	t.Run("non-positive cost", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		_, err := uc.Create(context.Background(), "admin@example.com", ServiceInput{Name: "Stage", Cost: 0})
		if !errors.Is(err, ErrInvalidServiceCost) {
			t.Fatalf("expected ErrInvalidServiceCost, got %v", err)
		}
	})

	t.Run("new service starts active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		var captured entities.Service
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				captured = s
				return s, nil
			})

		got, err := uc.Create(context.Background(), "admin@example.com", ServiceInput{
			Name:     "  Wedding Stage  ",
			Cost:     50000,
			Unit:     "event",
			Category: "Wedding",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID == "" {
			t.Fatal("expected generated service id")
		}
		if captured.Name != "Wedding Stage" {
			t.Fatalf("expected trimmed name, got %q", captured.Name)
		}
		if captured.Status != entities.ServiceStatusActive {
			t.Fatalf("expected active status, got %q", captured.Status)
		}
		if captured.CreatedByEmail != "admin@example.com" {
			t.Fatalf("expected creator email, got %q", captured.CreatedByEmail)
		}
	})
}

func TestServiceUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Service{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})
}

func TestServiceUseCase_List_PriceRangeValidation(t *testing.T) {
	uc := NewServiceUseCase(nil)
	_, _, err := uc.List(context.Background(), interfaces.ServiceFilter{MinPrice: 500, MaxPrice: 100}, interfaces.ListQuery{})
	if !errors.Is(err, ErrInvalidServiceCost) {
		t.Fatalf("expected ErrInvalidServiceCost, got %v", err)
	}
}

func TestServiceUseCase_Update_MergesOntoExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIServiceRepository(ctrl)
	uc := NewServiceUseCase(repo)

	existing := entities.Service{
		ID:             "svc-1",
		Name:           "Old Name",
		Cost:           100,
		CreatedByEmail: "admin@example.com",
		Status:         entities.ServiceStatusActive,
	}
	repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(existing, nil)

	var captured entities.Service
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.Service) (entities.Service, error) {
			captured = s
			return s, nil
		})

	_, err := uc.Update(context.Background(), "svc-1", ServiceInput{Name: "New Name", Cost: 200})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.ID != "svc-1" {
		t.Fatalf("expected id preserved, got %q", captured.ID)
	}
	if captured.Name != "New Name" || captured.Cost != 200 {
		t.Fatalf("expected merged fields, got %q/%v", captured.Name, captured.Cost)
	}
	if captured.CreatedByEmail != "admin@example.com" {
		t.Fatalf("expected creator preserved, got %q", captured.CreatedByEmail)
	}
}

func TestServiceUseCase_Delete(t *testing.T) {
	t.Run("deletes existing service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "svc-1").Return(true, nil)

		if err := uc.Delete(context.Background(), "svc-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "missing").Return(false, nil)

		err := uc.Delete(context.Background(), "missing")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})
}
