package repository

import (
	"gorm.io/gorm"

	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/database"
	"github.com/MudassirAli1/Hackathon2-Fullstacktodo-phase2/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// FindByOwnerAndID finds a task by ID, scoped to its owner
func (r *GormTaskRepository) FindByOwnerAndID(ownerID, taskID uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.Where("id = ? AND user_id = ?", taskID, ownerID).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// List retrieves the owner's tasks with optional completion filtering and
// pagination, ordered by creation
func (r *GormTaskRepository) List(filter TaskFilter) ([]models.Task, int64, error) {
	var tasks []models.Task

	query := r.db.Model(&models.Task{}).Where("user_id = ?", filter.OwnerID)
	if filter.Completed != nil {
		query = query.Where("completed = ?", *filter.Completed)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("id ASC").
		Scopes(database.Paginate(filter.Pagination)).
		Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// Update saves all fields of a task; GORM refreshes UpdatedAt on save
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}

// Delete removes a task by ID, scoped to its owner
func (r *GormTaskRepository) Delete(ownerID, taskID uint64) error {
	result := r.db.Where("id = ? AND user_id = ?", taskID, ownerID).
		Delete(&models.Task{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
