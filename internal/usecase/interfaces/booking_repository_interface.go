package interfaces

import (
	"context"
	"time"

	"styledecor/internal/domain/entities"
)

// ListQuery carries pagination and sorting for list operations.
// SortKey defaults to creation time; results are ordered descending
// with insertion order as a stable tie-break.
type ListQuery struct {
	Page    int
	Limit   int
	SortKey string
}

// BookingFilter narrows admin booking listings. Empty fields match all.
type BookingFilter struct {
	Status        string
	PaymentStatus string
}

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// Lookups return the zero value (ID == "") when the booking is absent.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByUserEmail(ctx context.Context, email string, q ListQuery) ([]entities.Booking, int, error)
	List(ctx context.Context, f BookingFilter, q ListQuery) ([]entities.Booking, int, error)
	ListByDecoratorEmail(ctx context.Context, email string) ([]entities.Booking, error)
	UpdateDetails(ctx context.Context, id string, date time.Time, location, notes string) (entities.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
	AssignDecorator(ctx context.Context, id string, ref entities.DecoratorRef) (entities.Booking, error)
	UpdateProjectStatus(ctx context.Context, id string, status entities.ProjectStatus) (entities.Booking, error)
}
