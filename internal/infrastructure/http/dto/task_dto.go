package dto

import (
	"time"

	"github.com/erickmarcia/To-Do-Tisk/internal/domain/entity"
)

type CreateTaskRequest struct {
	UserID      string `json:"userId"      binding:"required"`
	Title       string `json:"title"       binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

// UpdateTaskRequest uses pointers so an absent field is distinguishable
// from an explicitly empty one.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Category    *string `json:"category,omitempty"`
	Priority    *string `json:"priority,omitempty"`
}

type TaskResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	Priority    string    `json:"priority,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Completed   bool      `json:"completed"`
}

func NewTaskResponse(task *entity.Task) *TaskResponse {
	return &TaskResponse{
		ID:          task.ID().String(),
		UserID:      task.UserID().String(),
		Title:       task.Title(),
		Description: task.Description(),
		Category:    task.Category(),
		Priority:    task.Priority(),
		Status:      string(task.Status()),
		CreatedAt:   task.CreatedAt(),
		UpdatedAt:   task.UpdatedAt(),
		Completed:   task.Completed(),
	}
}

func NewTaskListResponse(tasks []*entity.Task) []*TaskResponse {
	responses := make([]*TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		responses = append(responses, NewTaskResponse(task))
	}
	return responses
}
