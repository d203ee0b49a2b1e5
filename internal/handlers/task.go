package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/auth"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/dto"
	apierrors "github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/errors"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/middleware"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/services"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/utils"
)

// TaskHandler coordinates task CRUD HTTP handlers. The owner ID always comes
// from the authenticated identity, never from the request body.
type TaskHandler struct {
	taskService *services.TaskService
	logger      *zap.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService *services.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// ListTasks returns one page of the authenticated user's tasks, optionally
// filtered by completion status.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	var completed *bool
	if raw := c.Query("completed"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			apierrors.BadRequest(c, "Invalid completed filter")
			return
		}
		completed = &value
	}

	params := utils.GetPaginationParams(c)

	tasks, total, err := h.taskService.List(services.ListTasksInput{
		OwnerID:    ident.UserID,
		Completed:  completed,
		Pagination: params,
	})
	if err != nil {
		h.logger.Error("failed to list tasks", zap.Error(err))
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.TaskListResponse{
		Success: true,
		Tasks:   dto.ToTaskDTOs(tasks),
		Total:   total,
		Limit:   params.Limit,
		Offset:  params.Offset,
	})
}

// CreateTask creates a new task owned by the authenticated user.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateTaskRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Completed   bool   `json:"completed"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Create(services.CreateTaskInput{
		OwnerID:     ident.UserID,
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TaskResponse{
		Success: true,
		Task:    dto.ToTaskDTO(*task),
	})
}

// GetTask returns a single task owned by the authenticated user.
func (h *TaskHandler) GetTask(c *gin.Context) {
	ident, taskID, ok := h.taskParams(c)
	if !ok {
		return
	}

	task, err := h.taskService.Get(ident.UserID, taskID)
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{
		Success: true,
		Task:    dto.ToTaskDTO(*task),
	})
}

// UpdateTask applies a partial update to a task. Only supplied fields change;
// the update timestamp is always refreshed.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	ident, taskID, ok := h.taskParams(c)
	if !ok {
		return
	}

	type UpdateTaskRequest struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Completed   *bool   `json:"completed"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "Invalid request body")
		return
	}

	task, err := h.taskService.Update(ident.UserID, taskID, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{
		Success: true,
		Task:    dto.ToTaskDTO(*task),
	})
}

// DeleteTask removes a task owned by the authenticated user.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	ident, taskID, ok := h.taskParams(c)
	if !ok {
		return
	}

	if err := h.taskService.Delete(ident.UserID, taskID); err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Task deleted successfully",
	})
}

// ToggleCompletion sets a task's completion flag.
func (h *TaskHandler) ToggleCompletion(c *gin.Context) {
	ident, taskID, ok := h.taskParams(c)
	if !ok {
		return
	}

	type ToggleCompletionRequest struct {
		Completed *bool `json:"completed" binding:"required"`
	}

	var req ToggleCompletionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.UnprocessableEntity(c, "'completed' field must be a boolean value")
		return
	}

	task, err := h.taskService.ToggleCompletion(ident.UserID, taskID, *req.Completed)
	if err != nil {
		h.respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{
		Success: true,
		Task:    dto.ToTaskDTO(*task),
	})
}

// taskParams resolves the authenticated identity and the task ID path
// parameter, responding with the appropriate error when either is missing.
func (h *TaskHandler) taskParams(c *gin.Context) (*auth.Identity, uint64, bool) {
	ident, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return nil, 0, false
	}

	taskID, err := strconv.ParseUint(c.Param("tid"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid task ID")
		return nil, 0, false
	}

	return ident, taskID, true
}

func (h *TaskHandler) respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrTitleTooLong),
		errors.Is(err, services.ErrDescriptionTooLong):
		apierrors.UnprocessableEntity(c, err.Error())
	default:
		h.logger.Error("task request failed", zap.Error(err))
		apierrors.InternalError(c, "")
	}
}
