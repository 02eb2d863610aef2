package handlers

import (
	"errors"
	"net/http"

	"github.com/BayerTobias/join-backend-pythonanywhere/internal/dto"
	apierrors "github.com/BayerTobias/join-backend-pythonanywhere/internal/errors"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/middleware"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler coordinates registration, login and session HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// CreateUser registers a new user. No token is issued here; the client
// logs in afterwards.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	type CreateUserRequest struct {
		Username  string `json:"username" binding:"required,max=150"`
		FirstName string `json:"firstname" binding:"max=150"`
		LastName  string `json:"lastname" binding:"max=150"`
		Email     string `json:"email" binding:"required,max=254"`
		Password  string `json:"password" binding:"required"`
		Initials  string `json:"initials" binding:"max=5"`
		Color     string `json:"color" binding:"max=10"`
	}

	var req CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	_, err := h.authService.Register(services.RegisterInput{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Initials:  req.Initials,
		Color:     req.Color,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
	})
}

// Login authenticates a user and returns the session token together with
// the user's profile and contacts.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(services.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:    result.Token.Key,
		User:     dto.ToUserDTO(*result.User),
		Contacts: dto.ToContactDTOs(result.Contacts),
	})
}

// Logout deletes the presented token.
func (h *AuthHandler) Logout(c *gin.Context) {
	key, exists := middleware.GetTokenKey(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.authService.Logout(key); err != nil {
		apierrors.OperationFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "logout successful",
	})
}

// CheckAuth confirms the token resolved to a user. The middleware already
// rejected everything else.
func (h *AuthHandler) CheckAuth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Authenticated",
	})
}

// DeleteUser removes the authenticated user's account with their contacts
// and live token. Tasks they authored stay on the board.
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.authService.DeleteAccount(userID); err != nil {
		apierrors.OperationFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User deleted successfully",
	})
}

// ListUsers returns a summary of every user for any authenticated caller.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.authService.ListUsers()
	if err != nil {
		apierrors.OperationFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserSummaryDTOs(users))
}

func respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrEmailTaken):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrFailedToHashPassword),
		errors.Is(err, services.ErrFailedToCreateToken):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.OperationFailed(c, err)
	}
}
