package services

import (
	"errors"
	"fmt"

	"github.com/BayerTobias/join-backend-pythonanywhere/internal/models"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/repository"
	"gorm.io/gorm"
)

var ErrContactNotFound = errors.New("contact not found")

// ContactService handles contact business logic.
type ContactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo repository.ContactRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
	}
}

// ContactInput carries the writable contact fields.
type ContactInput struct {
	Name     string
	Email    string
	Phone    string
	Initials string
	Color    string
}

// CreateContact creates a contact owned by the requesting user. Any owner
// supplied in the payload is ignored.
func (s *ContactService) CreateContact(ownerID uint64, input ContactInput) (*models.Contact, error) {
	contact := &models.Contact{
		UserID:   ownerID,
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Initials: input.Initials,
		Color:    input.Color,
	}

	if err := s.contactRepo.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return contact, nil
}

// UpdateContact replaces the provided fields of a contact. The owner is
// never changed.
func (s *ContactService) UpdateContact(contactID uint64, input ContactInput) (*models.Contact, error) {
	contact, err := s.contactRepo.FindByID(contactID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to find contact: %w", err)
	}

	contact.Name = input.Name
	contact.Email = input.Email
	contact.Phone = input.Phone
	contact.Initials = input.Initials
	contact.Color = input.Color

	if err := s.contactRepo.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return contact, nil
}

// DeleteContact hard-deletes a contact.
func (s *ContactService) DeleteContact(contactID uint64) error {
	if _, err := s.contactRepo.FindByID(contactID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContactNotFound
		}
		return fmt.Errorf("failed to find contact: %w", err)
	}

	if err := s.contactRepo.Delete(contactID); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	return nil
}
