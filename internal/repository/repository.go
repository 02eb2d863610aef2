package repository

import (
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// ExistsByUsername reports whether a user with the username exists
	ExistsByUsername(username string) (bool, error)

	// ExistsByEmail reports whether a user with the email exists
	ExistsByEmail(email string) (bool, error)

	// List returns all users
	List() ([]models.User, error)

	// FilterExistingIDs returns the subset of ids that belong to users
	FilterExistingIDs(ids []uint64) ([]uint64, error)

	// DeleteWithOwnedData removes a user together with their contacts and
	// live token within a single transaction.
	DeleteWithOwnedData(id uint64) error
}

// TokenRepository defines the interface for auth token data access
type TokenRepository interface {
	// GetOrCreate returns the user's existing token, creating one with the
	// provided key when none exists.
	GetOrCreate(userID uint64, key string) (*models.AuthToken, error)

	// FindByKey finds a token by its key
	FindByKey(key string) (*models.AuthToken, error)

	// DeleteByKey deletes a token by its key; deleting an unknown key is
	// not an error.
	DeleteByKey(key string) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a task with its subtasks and assignments
	Create(task *models.Task, assignedUserIDs []uint64) error

	// FindByID finds a task by ID with subtasks and assignments loaded
	FindByID(id uint64) (*models.Task, error)

	// List returns all tasks with subtasks and assignments loaded
	List() ([]models.Task, error)

	// Update saves task fields and, when the pointers are non-nil,
	// replaces the subtask collection and the assignment set.
	Update(task *models.Task, subtasks *[]models.Subtask, assignedUserIDs *[]uint64) error

	// Delete hard-deletes a task with its subtasks and assignments
	Delete(id uint64) error
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	// Create creates a new category
	Create(category *models.Category) error

	// FindByID finds a category by ID
	FindByID(id uint64) (*models.Category, error)

	// List returns all categories
	List() ([]models.Category, error)
}

// ContactRepository defines the interface for contact data access
type ContactRepository interface {
	// Create creates a new contact
	Create(contact *models.Contact) error

	// FindByID finds a contact by ID
	FindByID(id uint64) (*models.Contact, error)

	// ListByUserID returns the contacts owned by a user
	ListByUserID(userID uint64) ([]models.Contact, error)

	// Update saves a contact
	Update(contact *models.Contact) error

	// Delete hard-deletes a contact
	Delete(id uint64) error
}
