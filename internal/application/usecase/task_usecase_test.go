package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erickmarcia/To-Do-Tisk/internal/domain/entity"
	domainError "github.com/erickmarcia/To-Do-Tisk/internal/domain/error"
	"github.com/erickmarcia/To-Do-Tisk/internal/infrastructure/persistence/memory"
	"github.com/erickmarcia/To-Do-Tisk/pkg/logger"
)

func setupTaskUseCase() *TaskUseCase {
	return NewTaskUseCase(memory.NewTaskRepository(), logger.NewNop())
}

func strPtr(s string) *string { return &s }

func TestTaskUseCase_CreateTask(t *testing.T) {
	tests := []struct {
		name           string
		input          CreateTaskInput
		errorAssertion func(t *testing.T, err error)
	}{
		{
			name:  "should create task and assign store ID",
			input: CreateTaskInput{UserID: "u1", Title: "Buy milk", Category: "errands", Priority: "low"},
		},
		{
			name:  "should return validation error for missing user ID",
			input: CreateTaskInput{Title: "Buy milk"},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, domainError.IsValidationError(err))
			},
		},
		{
			name:  "should return validation error for blank title",
			input: CreateTaskInput{UserID: "u1", Title: "   "},
			errorAssertion: func(t *testing.T, err error) {
				assert.True(t, domainError.IsValidationError(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := setupTaskUseCase()

			task, err := uc.CreateTask(context.Background(), tt.input)

			if tt.errorAssertion != nil {
				require.Error(t, err)
				tt.errorAssertion(t, err)
				assert.Nil(t, task)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, task)
			assert.NotEmpty(t, task.ID())
			assert.False(t, task.ID().IsTemporary())
			assert.Equal(t, entity.StatusPending, task.Status())
		})
	}
}

func TestTaskUseCase_ListTasks(t *testing.T) {
	uc := setupTaskUseCase()
	ctx := context.Background()

	_, err := uc.CreateTask(ctx, CreateTaskInput{UserID: "u1", Title: "First"})
	require.NoError(t, err)
	_, err = uc.CreateTask(ctx, CreateTaskInput{UserID: "u1", Title: "Second"})
	require.NoError(t, err)
	_, err = uc.CreateTask(ctx, CreateTaskInput{UserID: "u2", Title: "Other user"})
	require.NoError(t, err)

	tasks, err := uc.ListTasks(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	titles := map[string]bool{}
	for _, task := range tasks {
		titles[task.Title()] = true
		assert.Equal(t, entity.UserID("u1"), task.UserID())
	}
	assert.True(t, titles["First"])
	assert.True(t, titles["Second"])

	_, err = uc.ListTasks(ctx, "")
	require.Error(t, err)
	assert.True(t, domainError.IsValidationError(err))
}

func TestTaskUseCase_UpdateTask(t *testing.T) {
	uc := setupTaskUseCase()
	ctx := context.Background()

	created, err := uc.CreateTask(ctx, CreateTaskInput{
		UserID:      "u1",
		Title:       "Buy milk",
		Description: "two liters",
		Category:    "errands",
		Priority:    "low",
	})
	require.NoError(t, err)

	time.Sleep(time.Millisecond)

	// Partial update touches only title and updatedAt.
	updated, err := uc.UpdateTask(ctx, created.ID().String(), UpdateTaskInput{Title: strPtr("Buy bread")})
	require.NoError(t, err)
	assert.Equal(t, "Buy bread", updated.Title())
	assert.Equal(t, "two liters", updated.Description())
	assert.Equal(t, "errands", updated.Category())
	assert.Equal(t, "low", updated.Priority())
	assert.Equal(t, entity.StatusPending, updated.Status())
	assert.Equal(t, created.CreatedAt(), updated.CreatedAt())
	assert.True(t, updated.UpdatedAt().After(created.UpdatedAt()))

	// Status transition to completed.
	updated, err = uc.UpdateTask(ctx, created.ID().String(), UpdateTaskInput{Status: strPtr("completed")})
	require.NoError(t, err)
	assert.True(t, updated.Completed())

	// Invalid status value.
	_, err = uc.UpdateTask(ctx, created.ID().String(), UpdateTaskInput{Status: strPtr("done")})
	require.Error(t, err)
	assert.True(t, domainError.IsValidationError(err))

	// Blank title is rejected.
	_, err = uc.UpdateTask(ctx, created.ID().String(), UpdateTaskInput{Title: strPtr("  ")})
	require.Error(t, err)
	assert.True(t, domainError.IsValidationError(err))

	// Unknown ID yields not found.
	_, err = uc.UpdateTask(ctx, "missing", UpdateTaskInput{Title: strPtr("X")})
	require.Error(t, err)
	assert.True(t, domainError.IsNotFoundError(err))
}

func TestTaskUseCase_DeleteTask(t *testing.T) {
	uc := setupTaskUseCase()
	ctx := context.Background()

	created, err := uc.CreateTask(ctx, CreateTaskInput{UserID: "u1", Title: "Buy milk"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteTask(ctx, created.ID().String()))

	tasks, err := uc.ListTasks(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, tasks)

	// Deleting again yields not found from the existence check.
	err = uc.DeleteTask(ctx, created.ID().String())
	require.Error(t, err)
	assert.True(t, domainError.IsNotFoundError(err))
}
