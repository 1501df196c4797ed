package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/erickmarcia/To-Do-Tisk/internal/domain/entity"
	domainError "github.com/erickmarcia/To-Do-Tisk/internal/domain/error"
	"github.com/erickmarcia/To-Do-Tisk/internal/domain/repository"
)

type userRepository struct {
	mu    sync.RWMutex
	users map[entity.UserID]*entity.User
}

// NewUserRepository creates an in-memory user repository. Like the Mongo
// implementation, Save enforces email uniqueness at write time.
func NewUserRepository() repository.UserRepository {
	return &userRepository{
		users: make(map[entity.UserID]*entity.User),
	}
}

func (r *userRepository) Save(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email() == user.Email() {
			return nil, domainError.NewConflictError("user", "email", user.Email().String())
		}
	}

	id := entity.UserID(uuid.NewString())
	saved := entity.RestoreUser(id, user.Email(), user.CreatedAt(), user.UpdatedAt())
	r.users[id] = saved
	return copyUser(saved), nil
}

func (r *userRepository) FindByID(ctx context.Context, id entity.UserID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return copyUser(user), nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Email() == email {
			return copyUser(user), nil
		}
	}
	return nil, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID()]; !ok {
		return nil
	}
	r.users[user.ID()] = copyUser(user)
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id entity.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, id)
	return nil
}

func copyUser(u *entity.User) *entity.User {
	return entity.RestoreUser(u.ID(), u.Email(), u.CreatedAt(), u.UpdatedAt())
}
