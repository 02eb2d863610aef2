package dto

import (
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/models"
)

// SubtaskDTO is one checklist item in a task response
type SubtaskDTO struct {
	Title    string `json:"title"`
	Complete bool   `json:"complete"`
}

// TaskDTO represents a task in API responses. Related entities appear as
// flat ids, matching what the board client consumes.
type TaskDTO struct {
	ID            uint64       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	CreatedAt     models.Date  `json:"created_at"`
	DueDate       models.Date  `json:"due_date"`
	Status        string       `json:"status"`
	Priority      string       `json:"priority"`
	Author        uint64       `json:"author"`
	Category      uint64       `json:"category"`
	AssignedUsers []uint64     `json:"assigned_users"`
	Subtasks      []SubtaskDTO `json:"subtasks"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	subtasks := make([]SubtaskDTO, len(task.Subtasks))
	for i, st := range task.Subtasks {
		subtasks[i] = SubtaskDTO{
			Title:    st.Title,
			Complete: st.Complete,
		}
	}

	return TaskDTO{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		CreatedAt:     task.CreatedAt,
		DueDate:       task.DueDate,
		Status:        task.Status,
		Priority:      task.Priority,
		Author:        task.AuthorID,
		Category:      task.CategoryID,
		AssignedUsers: task.AssignedUserIDs(),
		Subtasks:      subtasks,
	}
}

// ToTaskDTOs converts a slice of tasks
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
