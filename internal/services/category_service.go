package services

import (
	"fmt"

	"github.com/BayerTobias/join-backend-pythonanywhere/internal/models"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/repository"
)

// CategoryService handles category business logic.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
	}
}

// ListCategories returns all categories.
func (s *CategoryService) ListCategories() ([]models.Category, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategoryInput represents input for creating a category.
type CreateCategoryInput struct {
	Name  string
	Color string
}

// CreateCategory creates a category. Names are not required to be unique.
func (s *CategoryService) CreateCategory(input CreateCategoryInput) (*models.Category, error) {
	category := &models.Category{
		Name:  input.Name,
		Color: input.Color,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}
