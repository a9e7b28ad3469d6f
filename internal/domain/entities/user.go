package entities

import "time"

// Role is the access-control role carried in a user's token claims.

type Role string

const (
	RoleUser      Role = "user"
	RoleDecorator Role = "decorator"
	RoleAdmin     Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleDecorator, RoleAdmin:
		return true
	}
	return false
}

// UserStatus marks whether an account may authenticate.

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

// DecoratorInfo is the service-provider profile set when a user is
// promoted to decorator.
type DecoratorInfo struct {
	Specialty     string  `json:"specialty"`
	Experience    int     `json:"experience"`
	Rating        float64 `json:"rating"`
	TotalProjects int     `json:"totalProjects"`
}

// User is an identity with a role and, for decorators, a profile.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
type User struct {
	ID            string         `json:"_id"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	PasswordHash  string         `json:"-"`
	PhotoURL      string         `json:"photoURL"`
	Role          Role           `json:"role"`
	Status        UserStatus     `json:"status"`
	DecoratorInfo *DecoratorInfo `json:"decoratorInfo,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
