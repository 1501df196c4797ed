package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/erickmarcia/To-Do-Tisk/internal/application/usecase"
	"github.com/erickmarcia/To-Do-Tisk/internal/config"
	domainError "github.com/erickmarcia/To-Do-Tisk/internal/domain/error"
	"github.com/erickmarcia/To-Do-Tisk/internal/infrastructure/http/dto"
	"github.com/erickmarcia/To-Do-Tisk/pkg/logger"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	*BaseHandler
	taskUseCase *usecase.TaskUseCase
}

// NewTaskHandler creates a new TaskHandler instance
func NewTaskHandler(
	logger logger.Logger,
	config *config.Config,
	taskUseCase *usecase.TaskUseCase,
) *TaskHandler {
	return &TaskHandler{
		BaseHandler: NewBaseHandler(logger, config),
		taskUseCase: taskUseCase,
	}
}

// GetTasks handles GET /tasks?userId=<id>
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		h.fail(c, domainError.NewFieldValidationError("userId", "user ID is required"), "Failed to retrieve tasks")
		return
	}

	tasks, err := h.taskUseCase.ListTasks(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err, "Failed to retrieve tasks")
		return
	}

	h.success(c, dto.NewTaskListResponse(tasks), "Tasks retrieved successfully")
}

// CreateTask handles POST /tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := h.bindJSON(c, &req); err != nil {
		h.fail(c, err, "Invalid task creation request")
		return
	}

	task, err := h.taskUseCase.CreateTask(c.Request.Context(), usecase.CreateTaskInput{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
	})
	if err != nil {
		h.fail(c, err, "Failed to create task")
		return
	}

	h.created(c, dto.NewTaskResponse(task), "Task created successfully")
}

// UpdateTask handles PUT /tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateTaskRequest
	if err := h.bindJSON(c, &req); err != nil {
		h.fail(c, err, "Invalid task update request")
		return
	}

	task, err := h.taskUseCase.UpdateTask(c.Request.Context(), id, usecase.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		h.fail(c, err, "Failed to update task")
		return
	}

	h.success(c, dto.NewTaskResponse(task), "Task updated successfully")
}

// DeleteTask handles DELETE /tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id := c.Param("id")

	if err := h.taskUseCase.DeleteTask(c.Request.Context(), id); err != nil {
		h.fail(c, err, "Failed to delete task")
		return
	}

	h.success(c, nil, "Task deleted successfully")
}
