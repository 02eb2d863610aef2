package repository

import (
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a task together with its subtasks and assignments
func (r *GormTaskRepository) Create(task *models.Task, assignedUserIDs []uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(task).Error; err != nil {
			return err
		}

		return createAssignments(tx, task.ID, assignedUserIDs)
	})
}

// FindByID finds a task by ID with subtasks and assignments loaded
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	err := r.db.
		Preload("Subtasks", orderSubtasks).
		Preload("Assignments").
		First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns all tasks with subtasks and assignments loaded
func (r *GormTaskRepository) List() ([]models.Task, error) {
	var tasks []models.Task
	err := r.db.
		Preload("Subtasks", orderSubtasks).
		Preload("Assignments").
		Order("tasks.id").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update saves task fields and replaces the subtask collection and the
// assignment set when the corresponding pointer is non-nil.
func (r *GormTaskRepository) Update(task *models.Task, subtasks *[]models.Subtask, assignedUserIDs *[]uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Subtasks", "Assignments").Save(task).Error; err != nil {
			return err
		}

		if subtasks != nil {
			if err := tx.Where("task_id = ?", task.ID).Delete(&models.Subtask{}).Error; err != nil {
				return err
			}
			if len(*subtasks) > 0 {
				rows := *subtasks
				for i := range rows {
					rows[i].ID = 0
					rows[i].TaskID = task.ID
					rows[i].Position = i
				}
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}

		if assignedUserIDs != nil {
			if err := tx.Where("task_id = ?", task.ID).Delete(&models.TaskAssignment{}).Error; err != nil {
				return err
			}
			if err := createAssignments(tx, task.ID, *assignedUserIDs); err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete hard-deletes a task with its subtasks and assignments
func (r *GormTaskRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&models.Subtask{}).Error; err != nil {
			return err
		}

		if err := tx.Where("task_id = ?", id).Delete(&models.TaskAssignment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Task{}, id).Error
	})
}

func createAssignments(tx *gorm.DB, taskID uint64, userIDs []uint64) error {
	if len(userIDs) == 0 {
		return nil
	}

	assignments := make([]models.TaskAssignment, len(userIDs))
	for i, userID := range userIDs {
		assignments[i] = models.TaskAssignment{
			TaskID: taskID,
			UserID: userID,
		}
	}

	return tx.Create(&assignments).Error
}

func orderSubtasks(db *gorm.DB) *gorm.DB {
	return db.Order("subtasks.position")
}
