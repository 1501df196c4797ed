package repository

import (
	"context"

	"github.com/erickmarcia/To-Do-Tisk/internal/domain/entity"
)

// UserRepository is the persistence contract for users. Finders report an
// absent user as (nil, nil); store failures surface as OperationError.
// Save returns ConflictError when the email uniqueness constraint trips.
type UserRepository interface {
	Save(ctx context.Context, user *entity.User) (*entity.User, error)
	FindByID(ctx context.Context, id entity.UserID) (*entity.User, error)
	// FindByEmail returns at most one match; the query is limited to a
	// single document.
	FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error)
	// Update persists the user's email and refreshed updatedAt.
	Update(ctx context.Context, user *entity.User) error
	// Delete is idempotent; deleting an absent ID is not an error.
	Delete(ctx context.Context, id entity.UserID) error
}
