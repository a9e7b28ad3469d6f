package request

// MakeDecoratorRequest promotes a user to decorator with an optional
// profile. Missing fields get server-side defaults.
type MakeDecoratorRequest struct {
	Specialty  string  `json:"specialty"`
	Experience int     `json:"experience"`
	Rating     float64 `json:"rating"`
}
