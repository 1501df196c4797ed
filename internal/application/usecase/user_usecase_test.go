package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erickmarcia/To-Do-Tisk/internal/domain/entity"
	domainError "github.com/erickmarcia/To-Do-Tisk/internal/domain/error"
	"github.com/erickmarcia/To-Do-Tisk/internal/infrastructure/persistence/memory"
	"github.com/erickmarcia/To-Do-Tisk/pkg/logger"
)

func setupUserUseCase() *UserUseCase {
	return NewUserUseCase(memory.NewUserRepository(), logger.NewNop())
}

func TestUserUseCase_CreateUser(t *testing.T) {
	uc := setupUserUseCase()
	ctx := context.Background()

	user, err := uc.CreateUser(ctx, "Alice@Example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID())
	assert.Equal(t, "alice@example.com", user.Email().String())

	// Second create with the same email (any casing) conflicts and does
	// not add a document.
	_, err = uc.CreateUser(ctx, "ALICE@example.com")
	require.Error(t, err)
	assert.True(t, domainError.IsConflictError(err))

	found, err := uc.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID(), found.ID())
}

func TestUserUseCase_CreateUser_InvalidEmail(t *testing.T) {
	uc := setupUserUseCase()

	_, err := uc.CreateUser(context.Background(), "not-an-email")
	require.Error(t, err)
	assert.True(t, domainError.IsValidationError(err))
}

func TestUserUseCase_GetUserByEmail(t *testing.T) {
	uc := setupUserUseCase()
	ctx := context.Background()

	_, err := uc.GetUserByEmail(ctx, "ghost@example.com")
	require.Error(t, err)
	assert.True(t, domainError.IsNotFoundError(err))
}

// failingUserRepo fails the test if any method is reached. It proves that a
// malformed email never triggers a store call.
type failingUserRepo struct {
	t *testing.T
}

func (r *failingUserRepo) Save(ctx context.Context, user *entity.User) (*entity.User, error) {
	r.t.Fatal("Save should not be called")
	return nil, nil
}

func (r *failingUserRepo) FindByID(ctx context.Context, id entity.UserID) (*entity.User, error) {
	r.t.Fatal("FindByID should not be called")
	return nil, nil
}

func (r *failingUserRepo) FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error) {
	r.t.Fatal("FindByEmail should not be called")
	return nil, nil
}

func (r *failingUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.t.Fatal("Update should not be called")
	return nil
}

func (r *failingUserRepo) Delete(ctx context.Context, id entity.UserID) error {
	r.t.Fatal("Delete should not be called")
	return nil
}

func TestUserUseCase_GetUserByEmail_MalformedSkipsStore(t *testing.T) {
	uc := NewUserUseCase(&failingUserRepo{t: t}, logger.NewNop())

	_, err := uc.GetUserByEmail(context.Background(), "not-an-email")
	require.Error(t, err)
	assert.True(t, domainError.IsValidationError(err))
}

func TestUserUseCase_DeleteUser(t *testing.T) {
	uc := setupUserUseCase()
	ctx := context.Background()

	user, err := uc.CreateUser(ctx, "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, uc.DeleteUser(ctx, user.ID().String()))

	_, err = uc.GetUser(ctx, user.ID().String())
	require.Error(t, err)
	assert.True(t, domainError.IsNotFoundError(err))

	err = uc.DeleteUser(ctx, user.ID().String())
	require.Error(t, err)
	assert.True(t, domainError.IsNotFoundError(err))
}
