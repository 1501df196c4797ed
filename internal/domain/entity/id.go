package entity

import (
	"strings"

	"github.com/google/uuid"

	domainError "github.com/erickmarcia/To-Do-Tisk/internal/domain/error"
)

// UserID and TaskID are opaque store-assigned identifiers. An empty value
// never passes construction; unsaved tasks carry a temp placeholder instead.

type UserID string

func NewUserID(raw string) (UserID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", domainError.NewFieldValidationError("userId", "user ID is required")
	}
	return UserID(trimmed), nil
}

func (id UserID) String() string {
	return string(id)
}

type TaskID string

func NewTaskID(raw string) (TaskID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", domainError.NewFieldValidationError("id", "task ID is required")
	}
	return TaskID(trimmed), nil
}

func (id TaskID) String() string {
	return string(id)
}

const tempIDPrefix = "temp-"

// newTempTaskID produces a client-side placeholder for a task that has not
// been persisted yet. The store replaces it on save.
func newTempTaskID() TaskID {
	return TaskID(tempIDPrefix + uuid.NewString())
}

// IsTemporary reports whether the ID is a pre-save placeholder.
func (id TaskID) IsTemporary() bool {
	return strings.HasPrefix(string(id), tempIDPrefix)
}
