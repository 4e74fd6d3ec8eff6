package request

import "procurehub/internal/domain/entities"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=admin purchaser approver warehouse finance"`
	Password string `json:"password" binding:"required"`
}

func (r RegisterRequest) ToUser() entities.User {
	return entities.User{
		Email:    r.Email,
		Name:     r.Name,
		Role:     entities.UserRole(r.Role),
		Password: r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
