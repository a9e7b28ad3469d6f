package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"styledecor/internal/domain/entities"
	"styledecor/internal/domain/policy"
	"styledecor/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound        = errors.New("booking not found")
	ErrInvalidBookingID       = errors.New("invalid booking id")
	ErrBookingAccessDenied    = errors.New("access to booking denied")
	ErrInvalidBookingDate     = errors.New("booking date must be a future timestamp")
	ErrBookingAlreadyPaid     = errors.New("paid booking cannot be cancelled without an administrator refund")
	ErrBookingNotCancellable  = errors.New("booking cannot be cancelled in its current status")
	ErrBookingUnpaid          = errors.New("cannot assign decorator to unpaid booking")
	ErrInvalidDecoratorRef    = errors.New("invalid decorator reference")
	ErrInvalidProjectStatus   = errors.New("invalid project status")
	ErrProjectStatusRollback  = errors.New("project status cannot move backwards")
	ErrBookingNotAssigned     = errors.New("booking has no assigned decorator")
	ErrInvalidBookingFilter   = errors.New("invalid booking filter")
)

// BookingUpdate carries the owner-editable booking fields. Nil fields
// keep the stored value.
type BookingUpdate struct {
	BookingDate *time.Time
	Location    *string
	Notes       *string
}

// IBookingUseCase owns the booking lifecycle: creation, owner edits,
// cancellation, decorator assignment and fulfillment progression.

type IBookingUseCase interface {
	Create(ctx context.Context, actor policy.Actor, serviceID string, date time.Time, location, notes, userName string) (entities.Booking, error)
	UpdateDetails(ctx context.Context, actor policy.Actor, id string, upd BookingUpdate) (entities.Booking, error)
	Cancel(ctx context.Context, actor policy.Actor, id string) (entities.Booking, error)
	AssignDecorator(ctx context.Context, actor policy.Actor, id string, ref entities.DecoratorRef) (entities.Booking, error)
	AdvanceProjectStatus(ctx context.Context, actor policy.Actor, id string, status entities.ProjectStatus) (entities.Booking, error)
	Get(ctx context.Context, actor policy.Actor, id string) (entities.Booking, error)
	ListMine(ctx context.Context, actor policy.Actor, q interfaces.ListQuery) ([]entities.Booking, int, error)
	ListAll(ctx context.Context, f interfaces.BookingFilter, q interfaces.ListQuery) ([]entities.Booking, int, error)
	ListAssigned(ctx context.Context, actor policy.Actor) ([]entities.Booking, error)
}

type BookingUseCase struct {
	repo        interfaces.IBookingRepository
	serviceRepo interfaces.IServiceRepository

	// strictProjectOrder enforces forward-only progression through the
	// project-status sequence. Off by default: decorators may re-set any
	// valid status.
	strictProjectOrder bool
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, serviceRepo interfaces.IServiceRepository, strictProjectOrder bool) *BookingUseCase {
	return &BookingUseCase{repo: repo, serviceRepo: serviceRepo, strictProjectOrder: strictProjectOrder}
}

func (u *BookingUseCase) Create(ctx context.Context, actor policy.Actor, serviceID string, date time.Time, location, notes, userName string) (entities.Booking, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return entities.Booking{}, ErrInvalidServiceID
	}
	if !date.After(time.Now()) {
		return entities.Booking{}, ErrInvalidBookingDate
	}

	// Denormalize name/cost from the catalog instead of trusting the
	// client-supplied copy.
	svc, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return entities.Booking{}, err
	}
	if svc.ID == "" {
		return entities.Booking{}, ErrServiceNotFound
	}

	now := time.Now().UTC()
	b := entities.Booking{
		ID:            uuid.NewString(),
		ServiceID:     svc.ID,
		ServiceName:   svc.Name,
		ServiceCost:   svc.Cost,
		BookingDate:   date.UTC(),
		Location:      strings.TrimSpace(location),
		Notes:         strings.TrimSpace(notes),
		UserID:        actor.ID,
		UserEmail:     actor.Email,
		UserName:      userName,
		Status:        entities.BookingStatusPending,
		PaymentStatus: entities.PaymentStatusUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] created booking_id=%s service_id=%s user=%s", created.ID, svc.ID, actor.Email)
	return created, nil
}

func (u *BookingUseCase) UpdateDetails(ctx context.Context, actor policy.Actor, id string, upd BookingUpdate) (entities.Booking, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if !policy.AllowBooking(actor, policy.ActionUpdateBooking, b) {
		return entities.Booking{}, ErrBookingAccessDenied
	}

	date := b.BookingDate
	if upd.BookingDate != nil {
		date = upd.BookingDate.UTC()
	}
	location := b.Location
	if upd.Location != nil {
		location = strings.TrimSpace(*upd.Location)
	}
	notes := b.Notes
	if upd.Notes != nil {
		notes = strings.TrimSpace(*upd.Notes)
	}

	updated, err := u.repo.UpdateDetails(ctx, b.ID, date, location, notes)
	if err != nil {
		return entities.Booking{}, err
	}
	// A zero value means the conditional write lost to a concurrent
	// delete.
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return updated, nil
}

func (u *BookingUseCase) Cancel(ctx context.Context, actor policy.Actor, id string) (entities.Booking, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if !policy.AllowBooking(actor, policy.ActionCancelBooking, b) {
		return entities.Booking{}, ErrBookingAccessDenied
	}
	if b.PaymentStatus == entities.PaymentStatusPaid {
		return entities.Booking{}, ErrBookingAlreadyPaid
	}
	if !b.Status.CanTransitionTo(entities.BookingStatusCancelled) {
		return entities.Booking{}, ErrBookingNotCancellable
	}

	cancelled, err := u.repo.UpdateStatus(ctx, b.ID, entities.BookingStatusCancelled)
	if err != nil {
		return entities.Booking{}, err
	}
	if cancelled.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	log.Printf("[booking][usecase] cancelled booking_id=%s by=%s", b.ID, actor.Email)
	return cancelled, nil
}

func (u *BookingUseCase) AssignDecorator(ctx context.Context, actor policy.Actor, id string, ref entities.DecoratorRef) (entities.Booking, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if !policy.AllowBooking(actor, policy.ActionAssignDecorator, b) {
		return entities.Booking{}, ErrBookingAccessDenied
	}
	if b.PaymentStatus != entities.PaymentStatusPaid {
		return entities.Booking{}, ErrBookingUnpaid
	}
	if strings.TrimSpace(ref.ID) == "" || strings.TrimSpace(ref.Email) == "" {
		return entities.Booking{}, ErrInvalidDecoratorRef
	}

	assigned, err := u.repo.AssignDecorator(ctx, b.ID, ref)
	if err != nil {
		return entities.Booking{}, err
	}
	if assigned.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	log.Printf("[booking][usecase] decorator assigned booking_id=%s decorator=%s", b.ID, ref.Email)
	return assigned, nil
}

func (u *BookingUseCase) AdvanceProjectStatus(ctx context.Context, actor policy.Actor, id string, status entities.ProjectStatus) (entities.Booking, error) {
	if !status.Valid() {
		return entities.Booking{}, ErrInvalidProjectStatus
	}

	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.AssignedDecorator == nil {
		return entities.Booking{}, ErrBookingNotAssigned
	}
	if !policy.AllowBooking(actor, policy.ActionAdvanceProjectStatus, b) {
		return entities.Booking{}, ErrBookingAccessDenied
	}
	if u.strictProjectOrder && status.Index() < b.ProjectStatus.Index() {
		return entities.Booking{}, ErrProjectStatusRollback
	}

	updated, err := u.repo.UpdateProjectStatus(ctx, b.ID, status)
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return updated, nil
}

func (u *BookingUseCase) Get(ctx context.Context, actor policy.Actor, id string) (entities.Booking, error) {
	b, err := u.load(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if !policy.AllowBooking(actor, policy.ActionViewBooking, b) {
		return entities.Booking{}, ErrBookingAccessDenied
	}
	return b, nil
}

func (u *BookingUseCase) ListMine(ctx context.Context, actor policy.Actor, q interfaces.ListQuery) ([]entities.Booking, int, error) {
	return u.repo.ListByUserEmail(ctx, actor.Email, normalizeListQuery(q))
}

func (u *BookingUseCase) ListAll(ctx context.Context, f interfaces.BookingFilter, q interfaces.ListQuery) ([]entities.Booking, int, error) {
	if f.Status != "" && !entities.BookingStatus(f.Status).Valid() {
		return nil, 0, ErrInvalidBookingFilter
	}
	if f.PaymentStatus != "" &&
		f.PaymentStatus != string(entities.PaymentStatusUnpaid) &&
		f.PaymentStatus != string(entities.PaymentStatusPaid) {
		return nil, 0, ErrInvalidBookingFilter
	}
	return u.repo.List(ctx, f, normalizeListQuery(q))
}

func (u *BookingUseCase) ListAssigned(ctx context.Context, actor policy.Actor) ([]entities.Booking, error) {
	return u.repo.ListByDecoratorEmail(ctx, actor.Email)
}

func (u *BookingUseCase) load(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func normalizeListQuery(q interfaces.ListQuery) interfaces.ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 10
	}
	if q.SortKey == "" {
		q.SortKey = "createdAt"
	}
	return q
}
