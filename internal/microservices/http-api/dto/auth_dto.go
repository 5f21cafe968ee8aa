package dto

import (
	"time"

	"animehub/internal/microservices/http-api/models"
)

// Data Transfer Objects for authentication and profile requests and responses

// SignupRequest: payload for account creation
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest: payload for password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest: every field is optional, nil leaves the value untouched
type UpdateProfileRequest struct {
	Username       *string `json:"username" validate:"omitempty,min=3,max=50"`
	Bio            *string `json:"bio" validate:"omitempty,max=500"`
	Location       *string `json:"location" validate:"omitempty,max=100"`
	FavoriteAnime  *string `json:"favoriteAnime" validate:"omitempty,max=100"`
	ProfilePicture *string `json:"profilePicture"`
}

// UserResponse: the caller's own profile
type UserResponse struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email,omitempty"`
	Bio            string    `json:"bio"`
	Location       string    `json:"location"`
	FavoriteAnime  string    `json:"favoriteAnime"`
	ProfilePicture string    `json:"profilePicture"`
	CreatedAt      time.Time `json:"createdAt"`
}

// AuthResponse: response payload after signup or login
type AuthResponse struct {
	Message   string       `json:"message"`
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expiresIn"` // seconds
	User      UserResponse `json:"user"`
}

// FromModelToUserResponse converts a User. Public views drop the email.
func FromModelToUserResponse(u *models.User, public bool) UserResponse {
	resp := UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Bio:            u.Bio,
		Location:       u.Location,
		FavoriteAnime:  u.FavoriteAnime,
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt,
	}
	if public {
		resp.Email = ""
	}
	return resp
}
