package services

import (
	"testing"

	"github.com/BayerTobias/join-backend-pythonanywhere/internal/models"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type taskServiceEnv struct {
	db      *gorm.DB
	service *TaskService
}

func setupTaskServiceEnv(t *testing.T) taskServiceEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Task{},
		&models.Subtask{},
		&models.TaskAssignment{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	service := NewTaskService(
		repository.NewTaskRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewUserRepository(db),
	)

	return taskServiceEnv{db: db, service: service}
}

func (env taskServiceEnv) createUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashedpassword",
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env taskServiceEnv) createCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Color: "#000000"}
	require.NoError(t, env.db.Create(category).Error)
	return category
}

func TestTaskService_CreateTask_UnknownCategory(t *testing.T) {
	env := setupTaskServiceEnv(t)
	author := env.createUser(t, "author")

	_, err := env.service.CreateTask(CreateTaskInput{
		Title:      "dangling",
		CategoryID: 999,
		AuthorID:   author.ID,
	})
	require.ErrorIs(t, err, ErrCategoryNotFound)

	var count int64
	env.db.Model(&models.Task{}).Count(&count)
	require.EqualValues(t, 0, count)
}

func TestTaskService_CreateTask_DropsUnknownAssignees(t *testing.T) {
	env := setupTaskServiceEnv(t)
	author := env.createUser(t, "author")
	helper := env.createUser(t, "helper")
	category := env.createCategory(t, "work")

	task, err := env.service.CreateTask(CreateTaskInput{
		Title:         "dummy task",
		CategoryID:    category.ID,
		AuthorID:      author.ID,
		AssignedUsers: []uint64{helper.ID, 4242},
	})
	require.NoError(t, err)
	require.Equal(t, []uint64{helper.ID}, task.AssignedUserIDs())
}

func TestTaskService_CreateTask_Defaults(t *testing.T) {
	env := setupTaskServiceEnv(t)
	author := env.createUser(t, "author")
	category := env.createCategory(t, "work")

	task, err := env.service.CreateTask(CreateTaskInput{
		Title:      "bare minimum",
		CategoryID: category.ID,
		AuthorID:   author.ID,
	})
	require.NoError(t, err)
	require.Equal(t, models.TaskStatusDefault, task.Status)
	require.Equal(t, models.TaskPriorityDefault, task.Priority)
	require.Equal(t, models.Today().String(), task.CreatedAt.String())
	require.Equal(t, models.Today().String(), task.DueDate.String())
}

func TestTaskService_CreateTask_PersistsSubtasksInOrder(t *testing.T) {
	env := setupTaskServiceEnv(t)
	author := env.createUser(t, "author")
	category := env.createCategory(t, "work")

	task, err := env.service.CreateTask(CreateTaskInput{
		Title:      "with checklist",
		CategoryID: category.ID,
		AuthorID:   author.ID,
		Subtasks: []SubtaskInput{
			{Title: "first", Complete: true},
			{Title: "second"},
			{Title: "third"},
		},
	})
	require.NoError(t, err)
	require.Len(t, task.Subtasks, 3)
	require.Equal(t, "first", task.Subtasks[0].Title)
	require.True(t, task.Subtasks[0].Complete)
	require.Equal(t, "third", task.Subtasks[2].Title)
}

func TestTaskService_UpdateTask_PartialPreservesFields(t *testing.T) {
	env := setupTaskServiceEnv(t)
	author := env.createUser(t, "author")
	editor := env.createUser(t, "editor")
	category := env.createCategory(t, "work")

	task, err := env.service.CreateTask(CreateTaskInput{
		Title:       "dummy task",
		Description: "dummy description",
		Priority:    "high",
		CategoryID:  category.ID,
		AuthorID:    author.ID,
	})
	require.NoError(t, err)

	status := "done"
	updated, err := env.service.UpdateTask(task.ID, UpdateTaskInput{
		Status:  &status,
		ActorID: editor.ID,
	})
	require.NoError(t, err)

	require.Equal(t, "done", updated.Status)
	require.Equal(t, "dummy task", updated.Title)
	require.Equal(t, "dummy description", updated.Description)
	require.Equal(t, "high", updated.Priority)

	// The author always becomes the acting user.
	require.Equal(t, editor.ID, updated.AuthorID)
}

func TestTaskService_UpdateTask_ReplacesSubtasksAndAssignees(t *testing.T) {
	env := setupTaskServiceEnv(t)
	author := env.createUser(t, "author")
	helper := env.createUser(t, "helper")
	category := env.createCategory(t, "work")

	task, err := env.service.CreateTask(CreateTaskInput{
		Title:         "dummy task",
		CategoryID:    category.ID,
		AuthorID:      author.ID,
		AssignedUsers: []uint64{author.ID},
		Subtasks:      []SubtaskInput{{Title: "old"}},
	})
	require.NoError(t, err)

	newSubtasks := []SubtaskInput{{Title: "new one"}, {Title: "new two", Complete: true}}
	newAssignees := []uint64{helper.ID, 4242}
	updated, err := env.service.UpdateTask(task.ID, UpdateTaskInput{
		Subtasks:      &newSubtasks,
		AssignedUsers: &newAssignees,
		ActorID:       author.ID,
	})
	require.NoError(t, err)

	require.Len(t, updated.Subtasks, 2)
	require.Equal(t, "new one", updated.Subtasks[0].Title)
	require.Equal(t, []uint64{helper.ID}, updated.AssignedUserIDs())

	// No orphaned subtask rows remain.
	var count int64
	env.db.Model(&models.Subtask{}).Count(&count)
	require.EqualValues(t, 2, count)
}

func TestTaskService_UpdateTask_UnknownTask(t *testing.T) {
	env := setupTaskServiceEnv(t)
	actor := env.createUser(t, "actor")

	_, err := env.service.UpdateTask(999, UpdateTaskInput{ActorID: actor.ID})
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_DeleteTask(t *testing.T) {
	env := setupTaskServiceEnv(t)
	author := env.createUser(t, "author")
	category := env.createCategory(t, "work")

	task, err := env.service.CreateTask(CreateTaskInput{
		Title:         "doomed",
		CategoryID:    category.ID,
		AuthorID:      author.ID,
		AssignedUsers: []uint64{author.ID},
		Subtasks:      []SubtaskInput{{Title: "doomed too"}},
	})
	require.NoError(t, err)

	require.NoError(t, env.service.DeleteTask(task.ID))
	require.ErrorIs(t, env.service.DeleteTask(task.ID), ErrTaskNotFound)

	var subtasks, assignments int64
	env.db.Model(&models.Subtask{}).Count(&subtasks)
	env.db.Model(&models.TaskAssignment{}).Count(&assignments)
	require.EqualValues(t, 0, subtasks)
	require.EqualValues(t, 0, assignments)
}
