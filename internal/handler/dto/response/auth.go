package response

import (
	"fitroom-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
}

type LoginResponse struct {
	User *UserResponse `json:"user"`
}

func FromAuthorizedUserView(view *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:          view.ID,
		Email:       view.Email,
		DisplayName: view.DisplayName,
		Role:        view.Role,
	}
}
