package request

import "time"

// BookingCreateRequest is the payload for creating a booking. Service
// name and cost are not accepted from the client; they are denormalized
// from the catalog server-side.
type BookingCreateRequest struct {
	ServiceID   string    `json:"serviceId" binding:"required"`
	BookingDate time.Time `json:"bookingDate" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Notes       string    `json:"notes"`
	UserName    string    `json:"userName"`
}

// BookingUpdateRequest carries the owner-editable fields. Absent fields
// keep their stored value.
type BookingUpdateRequest struct {
	BookingDate *time.Time `json:"bookingDate"`
	Location    *string    `json:"location"`
	Notes       *string    `json:"notes"`
}

// AssignDecoratorRequest names the decorator to put on a booking.
type AssignDecoratorRequest struct {
	DecoratorID    string `json:"decoratorId" binding:"required"`
	DecoratorName  string `json:"decoratorName"`
	DecoratorEmail string `json:"decoratorEmail" binding:"required,email"`
}

// ProjectStatusRequest sets the fulfillment-progress state.
type ProjectStatusRequest struct {
	ProjectStatus string `json:"projectStatus" binding:"required"`
}
