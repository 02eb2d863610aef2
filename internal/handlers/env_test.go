package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/BayerTobias/join-backend-pythonanywhere/internal/database"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/models"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/repository"
	"github.com/BayerTobias/join-backend-pythonanywhere/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type testEnv struct {
	db          *gorm.DB
	router      *gin.Engine
	authService *services.AuthService
}

// setupTestEnv builds an in-memory database and the full route table, so
// tests exercise the same middleware chain as production.
func setupTestEnv(t *testing.T) testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.AuthToken{},
		&models.Category{},
		&models.Contact{},
		&models.Task{},
		&models.Subtask{},
		&models.TaskAssignment{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	contactRepo := repository.NewContactRepository(db)

	authService := services.NewAuthService(userRepo, tokenRepo, contactRepo)
	taskService := services.NewTaskService(taskRepo, categoryRepo, userRepo)
	categoryService := services.NewCategoryService(categoryRepo)
	contactService := services.NewContactService(contactRepo)

	router := gin.New()
	RegisterRoutes(router,
		NewAuthHandler(authService),
		NewTaskHandler(taskService),
		NewCategoryHandler(categoryService),
		NewContactHandler(contactService),
	)

	return testEnv{
		db:          db,
		router:      router,
		authService: authService,
	}
}

// registerAndLogin creates a user through the service and returns its live
// token key.
func (env testEnv) registerAndLogin(t *testing.T, username string) (*models.User, string) {
	t.Helper()

	user, err := env.authService.Register(services.RegisterInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "supersecret",
		Initials: "TU",
		Color:    "#FF0000",
	})
	require.NoError(t, err)

	result, err := env.authService.Login(services.LoginInput{
		Username: username,
		Password: "supersecret",
	})
	require.NoError(t, err)

	return user, result.Token.Key
}

// doJSON performs a request against the router with an optional token and
// JSON body.
func (env testEnv) doJSON(t *testing.T, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "unexpected status, body: %s", w.Body.String())
}
