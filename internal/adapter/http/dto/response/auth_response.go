package response

import (
	"styledecor/internal/domain/entities"
	"styledecor/internal/usecase"
)

// AuthResponse is the authenticated identity plus its bearer token.
// The password hash never serializes (json:"-" on the entity).
type AuthResponse struct {
	Token string        `json:"token"`
	User  entities.User `json:"user"`
}

func FromAuthResult(r usecase.AuthResult) AuthResponse {
	return AuthResponse{Token: r.Token, User: r.User}
}
