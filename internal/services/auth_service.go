package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BayerTobias/join-backend-pythonanywhere/internal/models"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/repository"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken        = errors.New("This username already exists")
	ErrEmailTaken           = errors.New("This email already exists")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToCreateToken  = errors.New("failed to create auth token")
)

// AuthService handles registration, credentials and the session token
// lifecycle.
type AuthService struct {
	userRepo    repository.UserRepository
	tokenRepo   repository.TokenRepository
	contactRepo repository.ContactRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokenRepo repository.TokenRepository, contactRepo repository.ContactRepository) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		contactRepo: contactRepo,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
	Initials  string
	Color     string
}

// Register creates a new user. The username is checked before the email so
// duplicate reporting stays deterministic. No token is issued; the caller
// must log in separately.
func (s *AuthService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)

	taken, err := s.userRepo.ExistsByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	taken, err = s.userRepo.ExistsByEmail(input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Initials:     input.Initials,
		Color:        input.Color,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// LoginResult bundles everything the login response carries.
type LoginResult struct {
	Token    *models.AuthToken
	User     *models.User
	Contacts []models.Contact
}

// Login verifies credentials and returns the live token for the user,
// creating one only when none exists. Repeated logins without a logout
// observe the same token key.
func (s *AuthService) Login(input LoginInput) (*LoginResult, error) {
	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	key, err := utils.GenerateTokenKey()
	if err != nil {
		return nil, ErrFailedToCreateToken
	}

	token, err := s.tokenRepo.GetOrCreate(user.ID, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create token: %w", err)
	}

	contacts, err := s.contactRepo.ListByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return &LoginResult{
		Token:    token,
		User:     user,
		Contacts: contacts,
	}, nil
}

// Logout deletes the token matching the presented key. A key with no
// matching row still logs out successfully.
func (s *AuthService) Logout(key string) error {
	if err := s.tokenRepo.DeleteByKey(key); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// ListUsers returns every active user.
func (s *AuthService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// DeleteAccount removes the user together with their contacts and live
// token. Tasks the user authored stay in place with the author reference
// intact.
func (s *AuthService) DeleteAccount(userID uint64) error {
	if err := s.userRepo.DeleteWithOwnedData(userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
