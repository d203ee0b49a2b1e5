package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/auth"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/middleware"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/models"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/repository"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/services"
)

// testEnv wires a full router against an in-memory database, mirroring the
// wiring in cmd/server.
type testEnv struct {
	db     *gorm.DB
	codec  *auth.TokenCodec
	router *gin.Engine
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Task{})
	require.NoError(t, err)

	codec, err := auth.NewTokenCodec("test-secret", "HS256")
	require.NoError(t, err)

	logger := zap.NewNop()
	authService := services.NewAuthService(repository.NewUserRepository(db), codec, time.Hour)
	taskService := services.NewTaskService(repository.NewTaskRepository(db))
	authHandler := NewAuthHandler(authService, logger)
	taskHandler := NewTaskHandler(taskService, logger)

	r := gin.New()

	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/signin", authHandler.Signin)
		authRoutes.POST("/logout", authHandler.Logout)
	}

	users := r.Group("/users/:uid")
	users.Use(middleware.RequireAuth(codec, logger), middleware.RequireOwner())
	{
		users.GET("/tasks", taskHandler.ListTasks)
		users.POST("/tasks", taskHandler.CreateTask)
		users.GET("/tasks/:tid", taskHandler.GetTask)
		users.PUT("/tasks/:tid", taskHandler.UpdateTask)
		users.DELETE("/tasks/:tid", taskHandler.DeleteTask)
		users.PATCH("/tasks/:tid/complete", taskHandler.ToggleCompletion)
	}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return testEnv{db: db, codec: codec, router: r}
}

// do performs a request and decodes the JSON response body into a map.
func (env testEnv) do(t *testing.T, method, url, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w.Code, response
}

// signup registers an account and returns its token and string user ID.
func (env testEnv) signup(t *testing.T, email, password, name string) (token, userID string) {
	t.Helper()

	code, response := env.do(t, http.MethodPost, "/auth/signup", "", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	})
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, response["success"])

	token = response["token"].(string)
	user := response["user"].(map[string]any)
	return token, user["id"].(string)
}
