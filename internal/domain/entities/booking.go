package entities

import "time"

// BookingStatus is the top-level lifecycle state of a booking.
//
// Transitions are monotonic except for cancellation, which is only
// reachable before payment (paid bookings route through an admin refund).

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// bookingTransitions is the allowed next-state set per current state.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled},
	BookingStatusCancelled: {},
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentStatus is the payment sub-state of a booking.

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// ProjectStatus is the fulfillment-progress state of an assigned booking.
// It is only meaningful once a decorator is assigned; the empty string
// means "not yet assigned".

type ProjectStatus string

const (
	ProjectStatusAssigned          ProjectStatus = "Assigned"
	ProjectStatusPlanningPhase     ProjectStatus = "Planning Phase"
	ProjectStatusMaterialsPrepared ProjectStatus = "Materials Prepared"
	ProjectStatusOnTheWayToVenue   ProjectStatus = "On the Way to Venue"
	ProjectStatusSetupInProgress   ProjectStatus = "Setup in Progress"
	ProjectStatusCompleted         ProjectStatus = "Completed"
)

// ProjectStatusSequence is the ordered fulfillment progression.
var ProjectStatusSequence = []ProjectStatus{
	ProjectStatusAssigned,
	ProjectStatusPlanningPhase,
	ProjectStatusMaterialsPrepared,
	ProjectStatusOnTheWayToVenue,
	ProjectStatusSetupInProgress,
	ProjectStatusCompleted,
}

func (p ProjectStatus) Valid() bool {
	return p.Index() >= 0
}

// Index returns the position of p in ProjectStatusSequence, or -1.
func (p ProjectStatus) Index() int {
	for i, s := range ProjectStatusSequence {
		if s == p {
			return i
		}
	}
	return -1
}

// DecoratorRef is the denormalized reference to the decorator assigned
// to a booking.
type DecoratorRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Booking is a customer's request to perform a decoration service on a
// date/location.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_email-index): user_email
//   - GSI2 (decorator_email-index): decorator_email
//
// Invariants (enforced by the booking usecase):
//   - AssignedDecorator != nil implies PaymentStatus == paid.
//   - ProjectStatus != "" implies AssignedDecorator != nil.
//   - A paid booking cannot be cancelled by its owner.
type Booking struct {
	ID                string        `json:"_id"`
	ServiceID         string        `json:"serviceId"`
	ServiceName       string        `json:"serviceName"`
	ServiceCost       float64       `json:"serviceCost"`
	BookingDate       time.Time     `json:"bookingDate"`
	Location          string        `json:"location"`
	Notes             string        `json:"notes"`
	UserID            string        `json:"userId"`
	UserEmail         string        `json:"userEmail"`
	UserName          string        `json:"userName"`
	Status            BookingStatus `json:"status"`
	PaymentStatus     PaymentStatus `json:"paymentStatus"`
	PaymentIntentID   string        `json:"paymentIntentId,omitempty"`
	ProjectStatus     ProjectStatus `json:"projectStatus,omitempty"`
	AssignedDecorator *DecoratorRef `json:"assignedDecorator,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}
