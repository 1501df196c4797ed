package repository

import (
	"context"

	"github.com/erickmarcia/To-Do-Tisk/internal/domain/entity"
)

// TaskRepository is the persistence contract for tasks. FindByID and Update
// report an absent task as (nil, nil), never as an error; store failures
// surface as OperationError only.
type TaskRepository interface {
	// Save inserts a new document and returns the task with the
	// store-assigned ID populated.
	Save(ctx context.Context, task *entity.Task) (*entity.Task, error)
	FindByID(ctx context.Context, id entity.TaskID) (*entity.Task, error)
	// FindByUserID returns the user's tasks in unspecified order.
	FindByUserID(ctx context.Context, userID entity.UserID) ([]*entity.Task, error)
	// Update merges only the fields set in patch and always refreshes
	// updatedAt. Returns the refreshed task, or nil if the ID is gone.
	Update(ctx context.Context, id entity.TaskID, patch TaskUpdate) (*entity.Task, error)
	// Delete is idempotent; deleting an absent ID is not an error.
	Delete(ctx context.Context, id entity.TaskID) error
}

// TaskUpdate is a partial-update patch. Nil fields are left untouched.
type TaskUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Priority    *string
	Status      *entity.Status
}
