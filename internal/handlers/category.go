package handlers

import (
	"net/http"

	apierrors "github.com/BayerTobias/join-backend-pythonanywhere/internal/errors"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/services"
	"github.com/gin-gonic/gin"
)

// CategoryHandler coordinates category HTTP handlers.
type CategoryHandler struct {
	categoryService *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// ListCategories returns all categories.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		apierrors.OperationFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

// CreateCategory creates a category. Duplicate names are allowed.
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	type CreateCategoryRequest struct {
		Name  string `json:"name" binding:"required,max=100"`
		Color string `json:"color" binding:"max=100"`
	}

	var req CreateCategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.categoryService.CreateCategory(services.CreateCategoryInput{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		apierrors.OperationFailed(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}
