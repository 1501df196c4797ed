package usecase

import (
	"context"
	"strings"

	"github.com/erickmarcia/To-Do-Tisk/internal/domain/entity"
	domainError "github.com/erickmarcia/To-Do-Tisk/internal/domain/error"
	"github.com/erickmarcia/To-Do-Tisk/internal/domain/repository"
	"github.com/erickmarcia/To-Do-Tisk/pkg/logger"
)

// TaskUseCase orchestrates task operations: input validation first, then
// repository calls, with unexpected failures rewrapped into a stable kind.
type TaskUseCase struct {
	taskRepo repository.TaskRepository
	logger   logger.Logger
}

func NewTaskUseCase(taskRepo repository.TaskRepository, logger logger.Logger) *TaskUseCase {
	return &TaskUseCase{
		taskRepo: taskRepo,
		logger:   logger,
	}
}

// CreateTaskInput carries the create request fields. Description, category
// and priority are free text.
type CreateTaskInput struct {
	UserID      string
	Title       string
	Description string
	Category    string
	Priority    string
}

// UpdateTaskInput is a partial update; nil fields are left untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Category    *string
	Priority    *string
	Status      *string
}

// CreateTask validates the input shape, builds the entity and persists it.
func (uc *TaskUseCase) CreateTask(ctx context.Context, input CreateTaskInput) (*entity.Task, error) {
	userID, err := entity.NewUserID(input.UserID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainError.NewFieldValidationError("title", "task title is required")
	}

	task, err := entity.NewTask(userID, input.Title, input.Description, input.Category, input.Priority)
	if err != nil {
		return nil, err
	}

	saved, err := uc.taskRepo.Save(ctx, task)
	if err != nil {
		return nil, uc.classify(err, "failed to create task")
	}

	uc.logger.Info("task created",
		logger.String("task_id", saved.ID().String()),
		logger.String("user_id", saved.UserID().String()),
	)
	return saved, nil
}

// ListTasks returns every task owned by the given user, unordered.
func (uc *TaskUseCase) ListTasks(ctx context.Context, userID string) ([]*entity.Task, error) {
	uid, err := entity.NewUserID(userID)
	if err != nil {
		return nil, err
	}

	tasks, err := uc.taskRepo.FindByUserID(ctx, uid)
	if err != nil {
		return nil, uc.classify(err, "failed to list tasks")
	}
	return tasks, nil
}

// UpdateTask fetches the task, applies the provided mutations through the
// entity (so title/status invariants hold), then persists the merged patch.
func (uc *TaskUseCase) UpdateTask(ctx context.Context, id string, input UpdateTaskInput) (*entity.Task, error) {
	taskID, err := entity.NewTaskID(id)
	if err != nil {
		return nil, err
	}

	existing, err := uc.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return nil, uc.classify(err, "failed to update task")
	}
	if existing == nil {
		return nil, domainError.NewNotFoundError("task", id)
	}

	patch := repository.TaskUpdate{}

	if input.Title != nil {
		if err := existing.UpdateTitle(*input.Title); err != nil {
			return nil, err
		}
		title := existing.Title()
		patch.Title = &title
	}
	if input.Description != nil {
		existing.UpdateDescription(*input.Description)
		description := existing.Description()
		patch.Description = &description
	}
	if input.Category != nil {
		existing.UpdateCategory(*input.Category)
		category := existing.Category()
		patch.Category = &category
	}
	if input.Priority != nil {
		existing.UpdatePriority(*input.Priority)
		priority := existing.Priority()
		patch.Priority = &priority
	}
	if input.Status != nil {
		status, err := entity.ParseStatus(*input.Status)
		if err != nil {
			return nil, err
		}
		if status == entity.StatusCompleted {
			existing.MarkAsCompleted()
		} else {
			existing.MarkAsPending()
		}
		patch.Status = &status
	}

	updated, err := uc.taskRepo.Update(ctx, taskID, patch)
	if err != nil {
		return nil, uc.classify(err, "failed to update task")
	}
	if updated == nil {
		return nil, domainError.NewNotFoundError("task", id)
	}
	return updated, nil
}

// DeleteTask checks existence first so an absent ID yields NotFound rather
// than a silent no-op.
func (uc *TaskUseCase) DeleteTask(ctx context.Context, id string) error {
	taskID, err := entity.NewTaskID(id)
	if err != nil {
		return err
	}

	existing, err := uc.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		return uc.classify(err, "failed to delete task")
	}
	if existing == nil {
		return domainError.NewNotFoundError("task", id)
	}

	if err := uc.taskRepo.Delete(ctx, taskID); err != nil {
		return uc.classify(err, "failed to delete task")
	}

	uc.logger.Info("task deleted", logger.String("task_id", id))
	return nil
}

// classify lets known domain kinds pass through and wraps everything else,
// keeping the original message for diagnostics.
func (uc *TaskUseCase) classify(err error, message string) error {
	if domainError.IsDomainError(err) {
		return err
	}
	uc.logger.Error(message, logger.Error(err))
	return domainError.NewOperationError(message, err)
}
