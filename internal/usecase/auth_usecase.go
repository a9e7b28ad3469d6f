package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"styledecor/internal/domain/entities"
	"styledecor/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidUserInput   = errors.New("name, email and password are required")
)

// AuthResult is a freshly authenticated identity plus its bearer token.
type AuthResult struct {
	User  entities.User
	Token string
}

// IAuthUseCase handles registration and credential/social login.

type IAuthUseCase interface {
	Register(ctx context.Context, name, email, password, photoURL string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	SocialLogin(ctx context.Context, name, email, photoURL string) (AuthResult, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	tokens interfaces.ITokenIssuer
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, tokens interfaces.ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens}
}

func (u *AuthUseCase) Register(ctx context.Context, name, email, password, photoURL string) (AuthResult, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return AuthResult{}, ErrInvalidUserInput
	}

	existing, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if existing.ID != "" {
		return AuthResult{}, ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, err
	}

	now := time.Now().UTC()
	user := entities.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		PhotoURL:     photoURL,
		Role:         entities.RoleUser,
		Status:       entities.UserStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.users.Create(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	log.Printf("[auth][usecase] registered user_id=%s email=%s", created.ID, created.Email)

	return u.issue(created)
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if user.ID == "" {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if user.Status != entities.UserStatusActive {
		return AuthResult{}, ErrAccountDisabled
	}

	return u.issue(user)
}

// SocialLogin upserts an account by email; provider-asserted identities
// carry no local password.
func (u *AuthUseCase) SocialLogin(ctx context.Context, name, email, photoURL string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return AuthResult{}, ErrInvalidUserInput
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if user.ID == "" {
		now := time.Now().UTC()
		user = entities.User{
			ID:        uuid.NewString(),
			Name:      strings.TrimSpace(name),
			Email:     email,
			PhotoURL:  photoURL,
			Role:      entities.RoleUser,
			Status:    entities.UserStatusActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		user, err = u.users.Create(ctx, user)
		if err != nil {
			return AuthResult{}, err
		}
		log.Printf("[auth][usecase] social signup user_id=%s email=%s", user.ID, user.Email)
	}
	if user.Status != entities.UserStatusActive {
		return AuthResult{}, ErrAccountDisabled
	}

	return u.issue(user)
}

func (u *AuthUseCase) issue(user entities.User) (AuthResult, error) {
	token, err := u.tokens.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}
