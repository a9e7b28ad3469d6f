package request

// ServiceRequest is the admin payload for creating or replacing a
// catalog entry.
type ServiceRequest struct {
	Name        string  `json:"service_name" binding:"required"`
	Cost        float64 `json:"cost" binding:"required,gt=0"`
	Unit        string  `json:"unit"`
	Category    string  `json:"service_category"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}
