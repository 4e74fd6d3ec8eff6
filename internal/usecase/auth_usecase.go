package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"procurehub/internal/domain/entities"
	"procurehub/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUserInput   = errors.New("invalid user input")
)

// IAuthUseCase exposes account registration and login.
//
// Login is a plaintext credential comparison returning an opaque token that
// the frontend echoes back; there is no token verification anywhere. This
// preserves the legacy behavior and is explicitly not a security model.
type IAuthUseCase interface {
	Register(ctx context.Context, u entities.User) (entities.User, error)
	Login(ctx context.Context, email, password string) (entities.User, string, error)
}

type AuthUseCase struct {
	users interfaces.IUserRepository
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository) *AuthUseCase {
	return &AuthUseCase{users: users}
}

func (u *AuthUseCase) Register(ctx context.Context, input entities.User) (entities.User, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	if input.Email == "" || input.Name == "" || input.Password == "" {
		return entities.User{}, ErrInvalidUserInput
	}

	input.ID = uuid.NewString()
	input.CreatedAt = time.Now().UTC()
	return u.users.Create(ctx, input)
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (entities.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, "", err
	}
	if user.ID == "" || user.Password != password {
		return entities.User{}, "", ErrInvalidCredentials
	}
	return user, "token_" + user.ID, nil
}
