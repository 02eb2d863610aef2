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

// ContactRequest carries the writable contact fields. Writes are full
// replacements, so every field must be present; email and phone stay free
// text, the address book never validated their format.
type ContactRequest struct {
	Name     string `json:"name" binding:"required,max=20"`
	Email    string `json:"email" binding:"required,max=50"`
	Phone    string `json:"phone" binding:"required,max=20"`
	Initials string `json:"initials" binding:"required,max=5"`
	Color    string `json:"color" binding:"required,max=100"`
}

// ContactHandler coordinates contact HTTP handlers.
type ContactHandler struct {
	contactService *services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// CreateContact creates a contact owned by the requesting user.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	var req ContactRequest
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.contactService.CreateContact(userID, services.ContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Initials: req.Initials,
		Color:    req.Color,
	})
	if err != nil {
		apierrors.OperationFailed(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToContactDTO(*contact))
}

// UpdateContact replaces the provided fields of a contact. The owner never
// changes.
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	contactID, ok := idParam(c)
	if !ok {
		return
	}

	var req ContactRequest
	if !bindJSON(c, &req) {
		return
	}

	contact, err := h.contactService.UpdateContact(contactID, services.ContactInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Initials: req.Initials,
		Color:    req.Color,
	})
	if err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactDTO(*contact))
}

// DeleteContact hard-deletes a contact and confirms with a message body.
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	contactID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.contactService.DeleteContact(contactID); err != nil {
		respondContactError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Contact deleted successfully",
	})
}

func respondContactError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrContactNotFound) {
		apierrors.NotFound(c, err.Error())
		return
	}
	apierrors.OperationFailed(c, err)
}
