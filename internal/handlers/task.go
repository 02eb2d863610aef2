package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/BayerTobias/join-backend-pythonanywhere/internal/dto"
	apierrors "github.com/BayerTobias/join-backend-pythonanywhere/internal/errors"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/middleware"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/models"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/services"
	"github.com/gin-gonic/gin"
)

// SubtaskRequest is one checklist item in a task payload.
type SubtaskRequest struct {
	Title    string `json:"title" binding:"required,max=100"`
	Complete bool   `json:"complete"`
}

// TaskHandler coordinates task HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// ListTasks returns every task on the board.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListTasks()
	if err != nil {
		apierrors.OperationFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// CreateTask creates a new task authored by the requesting user.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTaskRequest struct {
		Title         string           `json:"title" binding:"required,max=100"`
		Description   string           `json:"description" binding:"max=500"`
		CreatedAt     *models.Date     `json:"created_at"`
		DueDate       *models.Date     `json:"due_date"`
		Status        string           `json:"status" binding:"max=20"`
		Priority      string           `json:"priority" binding:"max=20"`
		Category      uint64           `json:"category" binding:"required"`
		AssignedUsers []uint64         `json:"assigned_users"`
		Subtasks      []SubtaskRequest `json:"subtasks" binding:"omitempty,dive"`
	}

	var req CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.CreateTask(services.CreateTaskInput{
		Title:         req.Title,
		Description:   req.Description,
		CreatedAt:     req.CreatedAt,
		DueDate:       req.DueDate,
		Status:        req.Status,
		Priority:      req.Priority,
		CategoryID:    req.Category,
		AssignedUsers: req.AssignedUsers,
		Subtasks:      toSubtaskInputs(req.Subtasks),
		AuthorID:      userID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// UpdateTask applies a partial update to a task. Fields absent from the
// payload are preserved; the author becomes the requesting user.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	taskID, ok := idParam(c)
	if !ok {
		return
	}

	type UpdateTaskRequest struct {
		Title         *string           `json:"title" binding:"omitempty,max=100"`
		Description   *string           `json:"description" binding:"omitempty,max=500"`
		CreatedAt     *models.Date      `json:"created_at"`
		DueDate       *models.Date      `json:"due_date"`
		Status        *string           `json:"status" binding:"omitempty,max=20"`
		Priority      *string           `json:"priority" binding:"omitempty,max=20"`
		Category      *uint64           `json:"category"`
		AssignedUsers *[]uint64         `json:"assigned_users"`
		Subtasks      *[]SubtaskRequest `json:"subtasks" binding:"omitempty,dive"`
	}

	var req UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	input := services.UpdateTaskInput{
		Title:         req.Title,
		Description:   req.Description,
		CreatedAt:     req.CreatedAt,
		DueDate:       req.DueDate,
		Status:        req.Status,
		Priority:      req.Priority,
		CategoryID:    req.Category,
		AssignedUsers: req.AssignedUsers,
		ActorID:       userID,
	}
	if req.Subtasks != nil {
		subtasks := toSubtaskInputs(*req.Subtasks)
		input.Subtasks = &subtasks
	}

	task, err := h.taskService.UpdateTask(taskID, input)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// DeleteTask hard-deletes a task and confirms with a message body.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID, ok := idParam(c)
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
	})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrCategoryNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.OperationFailed(c, err)
	}
}

func toSubtaskInputs(reqs []SubtaskRequest) []services.SubtaskInput {
	inputs := make([]services.SubtaskInput, len(reqs))
	for i, r := range reqs {
		inputs[i] = services.SubtaskInput{
			Title:    r.Title,
			Complete: r.Complete,
		}
	}
	return inputs
}

// idParam parses the :id path segment, answering 400 on garbage.
func idParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}
