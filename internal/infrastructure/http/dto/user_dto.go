package dto

import (
	"time"

	"github.com/erickmarcia/To-Do-Tisk/internal/domain/entity"
)

type CreateUserRequest struct {
	Email string `json:"email" binding:"required"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewUserResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID().String(),
		Email:     user.Email().String(),
		CreatedAt: user.CreatedAt(),
		UpdatedAt: user.UpdatedAt(),
	}
}
