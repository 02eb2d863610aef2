package dto

import (
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/models"
)

// ContactDTO represents a contact in API responses
type ContactDTO struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Initials string `json:"initials"`
	Color    string `json:"color"`
}

// ToContactDTO converts a Contact model to ContactDTO
func ToContactDTO(contact models.Contact) ContactDTO {
	return ContactDTO{
		ID:       contact.ID,
		Name:     contact.Name,
		Email:    contact.Email,
		Phone:    contact.Phone,
		Initials: contact.Initials,
		Color:    contact.Color,
	}
}

// ToContactDTOs converts a slice of contacts
func ToContactDTOs(contacts []models.Contact) []ContactDTO {
	dtos := make([]ContactDTO, len(contacts))
	for i, contact := range contacts {
		dtos[i] = ToContactDTO(contact)
	}
	return dtos
}

// LoginResponse is the body returned by a successful login
type LoginResponse struct {
	Token    string       `json:"token"`
	User     UserDTO      `json:"user"`
	Contacts []ContactDTO `json:"contacts"`
}
