package services

import (
	"errors"
	"fmt"

	"github.com/BayerTobias/join-backend-pythonanywhere/internal/models"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// TaskService handles task business logic
type TaskService struct {
	taskRepo     repository.TaskRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository, categoryRepo repository.CategoryRepository, userRepo repository.UserRepository) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
	}
}

// SubtaskInput is one checklist item in a task payload.
type SubtaskInput struct {
	Title    string
	Complete bool
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title         string
	Description   string
	CreatedAt     *models.Date
	DueDate       *models.Date
	Status        string
	Priority      string
	CategoryID    uint64
	AssignedUsers []uint64
	Subtasks      []SubtaskInput
	AuthorID      uint64
}

// UpdateTaskInput represents a partial update. Nil fields are left
// untouched.
type UpdateTaskInput struct {
	Title         *string
	Description   *string
	CreatedAt     *models.Date
	DueDate       *models.Date
	Status        *string
	Priority      *string
	CategoryID    *uint64
	AssignedUsers *[]uint64
	Subtasks      *[]SubtaskInput
	ActorID       uint64
}

// ListTasks returns every task in the store. Any authenticated user sees
// all tasks; there is no ownership scoping on the board.
func (s *TaskService) ListTasks() ([]models.Task, error) {
	tasks, err := s.taskRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// CreateTask creates a task. The referenced category must exist; unknown
// assigned user ids are dropped rather than rejected, and the author is
// always the requesting user regardless of the payload.
func (s *TaskService) CreateTask(input CreateTaskInput) (*models.Task, error) {
	if _, err := s.categoryRepo.FindByID(input.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	assignedIDs, err := s.userRepo.FilterExistingIDs(input.AssignedUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve assigned users: %w", err)
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   dateOrToday(input.CreatedAt),
		DueDate:     dateOrToday(input.DueDate),
		Status:      stringOrDefault(input.Status, models.TaskStatusDefault),
		Priority:    stringOrDefault(input.Priority, models.TaskPriorityDefault),
		AuthorID:    input.AuthorID,
		CategoryID:  input.CategoryID,
		Subtasks:    buildSubtasks(input.Subtasks),
	}

	if err := s.taskRepo.Create(task, assignedIDs); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID)
}

// UpdateTask applies a partial update. Only fields present in the payload
// change, except the author, which is reset to the acting user on every
// call.
func (s *TaskService) UpdateTask(taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.CreatedAt != nil {
		task.CreatedAt = *input.CreatedAt
	}
	if input.DueDate != nil {
		task.DueDate = *input.DueDate
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}
	if input.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*input.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
		task.CategoryID = *input.CategoryID
	}

	task.AuthorID = input.ActorID

	var assignedIDs *[]uint64
	if input.AssignedUsers != nil {
		ids, err := s.userRepo.FilterExistingIDs(*input.AssignedUsers)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve assigned users: %w", err)
		}
		assignedIDs = &ids
	}

	var subtasks *[]models.Subtask
	if input.Subtasks != nil {
		rows := buildSubtasks(*input.Subtasks)
		subtasks = &rows
	}

	if err := s.taskRepo.Update(task, subtasks, assignedIDs); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return s.taskRepo.FindByID(task.ID)
}

// DeleteTask hard-deletes a task
func (s *TaskService) DeleteTask(taskID uint64) error {
	if _, err := s.taskRepo.FindByID(taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to find task: %w", err)
	}

	if err := s.taskRepo.Delete(taskID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	return nil
}

func buildSubtasks(inputs []SubtaskInput) []models.Subtask {
	subtasks := make([]models.Subtask, len(inputs))
	for i, in := range inputs {
		subtasks[i] = models.Subtask{
			Position: i,
			Title:    in.Title,
			Complete: in.Complete,
		}
	}
	return subtasks
}

func dateOrToday(d *models.Date) models.Date {
	if d == nil || d.IsZero() {
		return models.Today()
	}
	return *d
}

func stringOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
