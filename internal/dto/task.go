package dto

import (
	"strconv"
	"time"

	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/models"
)

// TaskDTO represents a task in API responses. Numeric identifiers are
// serialized as strings; timestamps are ISO 8601 or null.
type TaskDTO struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   *time.Time `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
}

// TaskResponse is the success envelope for single-task operations.
type TaskResponse struct {
	Success bool    `json:"success"`
	Task    TaskDTO `json:"task"`
}

// TaskListResponse is the paginated list envelope. Total counts all matching
// tasks, not just the returned page.
type TaskListResponse struct {
	Success bool      `json:"success"`
	Tasks   []TaskDTO `json:"tasks"`
	Total   int64     `json:"total"`
	Limit   int       `json:"limit"`
	Offset  int       `json:"offset"`
}

// ToTaskDTO converts a Task model to TaskDTO
func ToTaskDTO(task models.Task) TaskDTO {
	return TaskDTO{
		ID:          strconv.FormatUint(task.ID, 10),
		UserID:      strconv.FormatUint(task.UserID, 10),
		Title:       task.Title,
		Description: task.Description,
		Completed:   task.Completed,
		CreatedAt:   timePtr(task.CreatedAt),
		UpdatedAt:   timePtr(task.UpdatedAt),
	}
}

// ToTaskDTOs converts a slice of Task models
func ToTaskDTOs(tasks []models.Task) []TaskDTO {
	items := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		items[i] = ToTaskDTO(task)
	}
	return items
}
