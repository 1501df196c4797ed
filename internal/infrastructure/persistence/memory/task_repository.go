// Package memory provides map-backed repositories implementing the same
// contracts as the Mongo ones. They serve tests and the "memory" storage
// driver for running without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/erickmarcia/To-Do-Tisk/internal/domain/entity"
	"github.com/erickmarcia/To-Do-Tisk/internal/domain/repository"
)

type taskRepository struct {
	mu    sync.RWMutex
	tasks map[entity.TaskID]*entity.Task
}

// NewTaskRepository creates an in-memory task repository.
func NewTaskRepository() repository.TaskRepository {
	return &taskRepository{
		tasks: make(map[entity.TaskID]*entity.Task),
	}
}

func (r *taskRepository) Save(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.TaskID(uuid.NewString())
	saved := entity.RestoreTask(
		id,
		task.UserID(),
		task.Title(),
		task.Description(),
		task.Category(),
		task.Priority(),
		task.Status(),
		task.CreatedAt(),
		task.UpdatedAt(),
	)
	r.tasks[id] = saved
	return copyTask(saved), nil
}

func (r *taskRepository) FindByID(ctx context.Context, id entity.TaskID) (*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	return copyTask(task), nil
}

func (r *taskRepository) FindByUserID(ctx context.Context, userID entity.UserID) ([]*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tasks []*entity.Task
	for _, task := range r.tasks {
		if task.UserID() == userID {
			tasks = append(tasks, copyTask(task))
		}
	}
	return tasks, nil
}

func (r *taskRepository) Update(ctx context.Context, id entity.TaskID, patch repository.TaskUpdate) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}

	title := existing.Title()
	description := existing.Description()
	category := existing.Category()
	priority := existing.Priority()
	status := existing.Status()

	if patch.Title != nil {
		title = *patch.Title
	}
	if patch.Description != nil {
		description = *patch.Description
	}
	if patch.Category != nil {
		category = *patch.Category
	}
	if patch.Priority != nil {
		priority = *patch.Priority
	}
	if patch.Status != nil {
		status = *patch.Status
	}

	updated := entity.RestoreTask(
		id,
		existing.UserID(),
		title,
		description,
		category,
		priority,
		status,
		existing.CreatedAt(),
		time.Now(),
	)
	r.tasks[id] = updated
	return copyTask(updated), nil
}

func (r *taskRepository) Delete(ctx context.Context, id entity.TaskID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.tasks, id)
	return nil
}

// copyTask returns a detached copy so callers cannot mutate the stored one.
func copyTask(t *entity.Task) *entity.Task {
	return entity.RestoreTask(
		t.ID(),
		t.UserID(),
		t.Title(),
		t.Description(),
		t.Category(),
		t.Priority(),
		t.Status(),
		t.CreatedAt(),
		t.UpdatedAt(),
	)
}
