package policy

import "styledecor/internal/domain/entities"

// Actor is the identity decoded from a bearer credential.
type Actor struct {
	ID    string
	Email string
	Role  entities.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == entities.RoleAdmin
}

func (a Actor) IsDecorator() bool {
	return a.Role == entities.RoleDecorator
}

// Action names a capability checked against a resource.

type Action string

const (
	ActionViewBooking          Action = "booking:view"
	ActionUpdateBooking        Action = "booking:update"
	ActionCancelBooking        Action = "booking:cancel"
	ActionAssignDecorator      Action = "booking:assign-decorator"
	ActionAdvanceProjectStatus Action = "booking:advance-project-status"
	ActionViewPayment          Action = "payment:view"
)

// AllowBooking decides whether actor may perform action on the booking.
// Admins pass every check; otherwise ownership (or assignment, for
// project-status work) is required.
func AllowBooking(actor Actor, action Action, b entities.Booking) bool {
	if actor.IsAdmin() {
		return true
	}

	switch action {
	case ActionViewBooking:
		if b.AssignedDecorator != nil && b.AssignedDecorator.Email == actor.Email {
			return true
		}
		return b.UserEmail == actor.Email
	case ActionUpdateBooking, ActionCancelBooking:
		return b.UserEmail == actor.Email
	case ActionAssignDecorator:
		return false
	case ActionAdvanceProjectStatus:
		return b.AssignedDecorator != nil && b.AssignedDecorator.Email == actor.Email
	}
	return false
}

// AllowPayment decides whether actor may perform action on the payment.
func AllowPayment(actor Actor, action Action, p entities.Payment) bool {
	if actor.IsAdmin() {
		return true
	}
	if action == ActionViewPayment {
		return p.UserID == actor.ID
	}
	return false
}
