package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/erickmarcia/To-Do-Tisk/internal/application/usecase"
	"github.com/erickmarcia/To-Do-Tisk/internal/config"
	"github.com/erickmarcia/To-Do-Tisk/internal/infrastructure/http/dto"
	"github.com/erickmarcia/To-Do-Tisk/pkg/logger"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	*BaseHandler
	userUseCase *usecase.UserUseCase
}

// NewUserHandler creates a new UserHandler instance
func NewUserHandler(
	logger logger.Logger,
	config *config.Config,
	userUseCase *usecase.UserUseCase,
) *UserHandler {
	return &UserHandler{
		BaseHandler: NewBaseHandler(logger, config),
		userUseCase: userUseCase,
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := h.bindJSON(c, &req); err != nil {
		h.fail(c, err, "Invalid user creation request")
		return
	}

	user, err := h.userUseCase.CreateUser(c.Request.Context(), req.Email)
	if err != nil {
		h.fail(c, err, "Failed to create user")
		return
	}

	h.created(c, dto.NewUserResponse(user), "User created successfully")
}

// GetUserByEmail handles GET /users/:email
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	email := c.Param("email")

	user, err := h.userUseCase.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		h.fail(c, err, "Failed to retrieve user")
		return
	}

	h.success(c, dto.NewUserResponse(user), "User retrieved successfully")
}

// DeleteUser handles DELETE /users/:id. Tasks owned by the user are not
// cascaded.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	if err := h.userUseCase.DeleteUser(c.Request.Context(), id); err != nil {
		h.fail(c, err, "Failed to delete user")
		return
	}

	h.success(c, nil, "User deleted successfully")
}
