package entities

import "time"

// ServiceStatus marks whether a catalog entry is offered.

type ServiceStatus string

const (
	ServiceStatusActive   ServiceStatus = "active"
	ServiceStatusInactive ServiceStatus = "inactive"
)

// Service is a decoration service offered in the catalog.
//
// Storage model (DynamoDB):
//   - PK: id
type Service struct {
	ID             string        `json:"_id"`
	Name           string        `json:"service_name"`
	Cost           float64       `json:"cost"`
	Unit           string        `json:"unit"`
	Category       string        `json:"service_category"`
	Description    string        `json:"description"`
	Image          string        `json:"image"`
	CreatedByEmail string        `json:"createdByEmail"`
	Status         ServiceStatus `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}
