package repository

import (
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/models"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByEmail finds a user by exact email match
	FindByEmail(email string) (*models.User, error)
}

// TaskFilter holds owner-scoped filtering options for listing tasks. Every
// query is filtered by OwnerID; Completed is optional.
type TaskFilter struct {
	OwnerID    uint64
	Completed  *bool
	Pagination utils.PaginationParams
}

// TaskRepository defines the interface for task data access. All lookups and
// mutations are scoped by the owning user's ID; a task belonging to another
// owner is indistinguishable from a nonexistent one.
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// FindByOwnerAndID finds a task by ID, scoped to its owner
	FindByOwnerAndID(ownerID, taskID uint64) (*models.Task, error)

	// List retrieves the owner's tasks in creation order, with the total
	// count of matching rows before pagination
	List(filter TaskFilter) ([]models.Task, int64, error)

	// Update saves all fields of a task and refreshes its update timestamp
	Update(task *models.Task) error

	// Delete removes a task by ID, scoped to its owner. Returns
	// gorm.ErrRecordNotFound when no matching row exists.
	Delete(ownerID, taskID uint64) error
}
