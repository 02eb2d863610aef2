package repository

import (
	"errors"

	"github.com/BayerTobias/join-backend-pythonanywhere/internal/models"
	"gorm.io/gorm"
)

// GormTokenRepository is a GORM implementation of TokenRepository
type GormTokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &GormTokenRepository{db: db}
}

// GetOrCreate returns the user's existing token, creating one with the
// provided key when none exists. When a concurrent login wins the insert,
// the unique index on user_id rejects ours and the winner's row is read
// back instead, so repeated logins settle on a single key.
func (r *GormTokenRepository) GetOrCreate(userID uint64, key string) (*models.AuthToken, error) {
	var token models.AuthToken

	err := r.db.Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return &token, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	token = models.AuthToken{
		Key:    key,
		UserID: userID,
	}
	createErr := r.db.Create(&token).Error
	if createErr == nil {
		return &token, nil
	}

	if err := r.db.Where("user_id = ?", userID).First(&token).Error; err == nil {
		return &token, nil
	}
	return nil, createErr
}

// FindByKey finds a token by its key. The column is matched via a map
// condition so the dialector quotes it; KEY is reserved in MySQL.
func (r *GormTokenRepository) FindByKey(key string) (*models.AuthToken, error) {
	var token models.AuthToken
	if err := r.db.Where(map[string]interface{}{"key": key}).First(&token).Error; err != nil {
		return nil, err
	}
	return &token, nil
}

// DeleteByKey deletes a token by its key. Deleting a key that does not
// exist reports success, matching the logout contract.
func (r *GormTokenRepository) DeleteByKey(key string) error {
	return r.db.Where(map[string]interface{}{"key": key}).Delete(&models.AuthToken{}).Error
}
