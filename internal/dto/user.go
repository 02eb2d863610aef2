package dto

import (
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/models"
)

// UserDTO represents a user's public profile in API responses
type UserDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	Initials  string `json:"initials"`
	Color     string `json:"color"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// UserSummaryDTO represents a user in the user list endpoint
type UserSummaryDTO struct {
	ID        uint64 `json:"id"`
	Initials  string `json:"initials"`
	Color     string `json:"color"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ToUserDTO converts a User model to UserDTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Username:  user.Username,
		Initials:  user.Initials,
		Color:     user.Color,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

// ToUserSummaryDTO converts a User model to UserSummaryDTO
func ToUserSummaryDTO(user models.User) UserSummaryDTO {
	return UserSummaryDTO{
		ID:        user.ID,
		Initials:  user.Initials,
		Color:     user.Color,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

// ToUserSummaryDTOs converts a slice of users
func ToUserSummaryDTOs(users []models.User) []UserSummaryDTO {
	summaries := make([]UserSummaryDTO, len(users))
	for i, user := range users {
		summaries[i] = ToUserSummaryDTO(user)
	}
	return summaries
}
