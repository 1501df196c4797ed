package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/erickmarcia/To-Do-Tisk/internal/config"
	domainError "github.com/erickmarcia/To-Do-Tisk/internal/domain/error"
	"github.com/erickmarcia/To-Do-Tisk/pkg/logger"
)

// BaseHandler provides common functionality for all handlers
type BaseHandler struct {
	logger logger.Logger
	config *config.Config
}

// NewBaseHandler creates a new BaseHandler instance
func NewBaseHandler(logger logger.Logger, config *config.Config) *BaseHandler {
	return &BaseHandler{
		logger: logger,
		config: config,
	}
}

// Envelope is the uniform response shape. Data and Error are mutually
// exclusive; Details carries the wrapped cause in development mode only.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
	Details string      `json:"details,omitempty"`
}

// success returns a 200 envelope. Data may be nil (e.g. after a delete).
func (h *BaseHandler) success(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// created returns a 201 envelope.
func (h *BaseHandler) created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// fail logs the error and writes the status + envelope the error kind maps to.
func (h *BaseHandler) fail(c *gin.Context, err error, message string) {
	requestID := h.getRequestID(c)

	h.logger.Error("handler error",
		logger.String("request_id", requestID),
		logger.String("method", c.Request.Method),
		logger.String("path", c.Request.URL.Path),
		logger.Error(err),
		logger.String("context", message),
	)

	statusCode := mapErrorToStatus(err)

	envelope := Envelope{
		Success: false,
		Error:   err.Error(),
		Message: message,
	}
	if h.config.IsDevelopment() {
		var opErr *domainError.OperationError
		if errors.As(err, &opErr) && opErr.Cause != nil {
			envelope.Details = opErr.Cause.Error()
		}
	}

	c.JSON(statusCode, envelope)
}

// mapErrorToStatus translates domain error kinds to HTTP status codes.
// Anything unclassified is an internal error.
func mapErrorToStatus(err error) int {
	switch {
	case domainError.IsValidationError(err):
		return http.StatusBadRequest
	case domainError.IsNotFoundError(err):
		return http.StatusNotFound
	case domainError.IsConflictError(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// getRequestID extracts or generates the request ID header.
func (h *BaseHandler) getRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// bindJSON decodes the request body, turning binding failures into the
// validation kind so they map to 400.
func (h *BaseHandler) bindJSON(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return domainError.NewValidationError("invalid request body: " + err.Error())
	}
	return nil
}
