package repository

import (
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/models"
	"gorm.io/gorm"
)

// GormContactRepository is a GORM implementation of ContactRepository
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &GormContactRepository{db: db}
}

// Create creates a new contact
func (r *GormContactRepository) Create(contact *models.Contact) error {
	return r.db.Create(contact).Error
}

// FindByID finds a contact by ID
func (r *GormContactRepository) FindByID(id uint64) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// ListByUserID returns the contacts owned by a user
func (r *GormContactRepository) ListByUserID(userID uint64) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// Update saves a contact
func (r *GormContactRepository) Update(contact *models.Contact) error {
	return r.db.Save(contact).Error
}

// Delete hard-deletes a contact
func (r *GormContactRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Contact{}, id).Error
}
