package response

import (
	"time"

	"procurehub/internal/domain/entities"
)

// UserResponse never carries the stored password, even though the store
// does.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

func FromLogin(u entities.User, token string) LoginResponse {
	return LoginResponse{User: FromUser(u), Token: token}
}
