package services

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/constants"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/models"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/repository"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/utils"
)

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrTitleRequired      = errors.New("title is required")
	ErrTitleTooLong       = errors.New("title must be at most 255 characters")
	ErrDescriptionTooLong = errors.New("description must be at most 1000 characters")
)

// TaskService handles task business logic. Every operation takes the owner ID
// resolved from the authenticated identity, never from the request body or
// path alone.
type TaskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new TaskService
func NewTaskService(taskRepo repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

// ListTasksInput represents filters for listing an owner's tasks
type ListTasksInput struct {
	OwnerID    uint64
	Completed  *bool
	Pagination utils.PaginationParams
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	OwnerID     uint64
	Title       string
	Description string
	Completed   bool
}

// UpdateTaskInput represents a partial update; only non-nil fields change
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// List returns one page of the owner's tasks in creation order, plus the
// total count of tasks matching the filter.
func (s *TaskService) List(input ListTasksInput) ([]models.Task, int64, error) {
	tasks, total, err := s.taskRepo.List(repository.TaskFilter{
		OwnerID:    input.OwnerID,
		Completed:  input.Completed,
		Pagination: input.Pagination,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, total, nil
}

// Get returns a single task. A task owned by someone else is reported as
// ErrTaskNotFound, never as a permission error, so non-owners cannot confirm
// its existence.
func (s *TaskService) Get(ownerID, taskID uint64) (*models.Task, error) {
	task, err := s.taskRepo.FindByOwnerAndID(ownerID, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return task, nil
}

// Create validates fields and persists a new task for the owner.
func (s *TaskService) Create(input CreateTaskInput) (*models.Task, error) {
	if err := validateTitle(input.Title); err != nil {
		return nil, err
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}

	task := &models.Task{
		UserID:      input.OwnerID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// Update applies the supplied fields to an existing task. The update
// timestamp is refreshed regardless of which fields changed.
func (s *TaskService) Update(ownerID, taskID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.Get(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if err := validateTitle(*input.Title); err != nil {
			return nil, err
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		if err := validateDescription(*input.Description); err != nil {
			return nil, err
		}
		task.Description = *input.Description
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// Delete removes the owner's task.
func (s *TaskService) Delete(ownerID, taskID uint64) error {
	if err := s.taskRepo.Delete(ownerID, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

// ToggleCompletion sets the completion flag and refreshes the update
// timestamp.
func (s *TaskService) ToggleCompletion(ownerID, taskID uint64, completed bool) (*models.Task, error) {
	task, err := s.Get(ownerID, taskID)
	if err != nil {
		return nil, err
	}

	task.Completed = completed

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to toggle completion: %w", err)
	}

	return task, nil
}

// Field limits count characters, not bytes, so multibyte text is not
// penalized.
func validateTitle(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > constants.MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) > constants.MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}
