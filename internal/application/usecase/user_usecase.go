package usecase

import (
	"context"

	"github.com/erickmarcia/To-Do-Tisk/internal/domain/entity"
	domainError "github.com/erickmarcia/To-Do-Tisk/internal/domain/error"
	"github.com/erickmarcia/To-Do-Tisk/internal/domain/repository"
	"github.com/erickmarcia/To-Do-Tisk/pkg/logger"
)

// UserUseCase handles account operations.
type UserUseCase struct {
	userRepo repository.UserRepository
	logger   logger.Logger
}

func NewUserUseCase(userRepo repository.UserRepository, logger logger.Logger) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUser registers a new account. The pre-check yields the friendly
// conflict; the repository's unique constraint makes the rule race-free.
func (uc *UserUseCase) CreateUser(ctx context.Context, email string) (*entity.User, error) {
	emailVO, err := entity.NewEmail(email)
	if err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.FindByEmail(ctx, emailVO)
	if err != nil {
		return nil, uc.classify(err, "failed to create user")
	}
	if existing != nil {
		return nil, domainError.NewConflictError("user", "email", emailVO.String())
	}

	user, err := entity.NewUser(email)
	if err != nil {
		return nil, err
	}

	saved, err := uc.userRepo.Save(ctx, user)
	if err != nil {
		return nil, uc.classify(err, "failed to create user")
	}

	uc.logger.Info("user created",
		logger.String("user_id", saved.ID().String()),
		logger.String("email", saved.Email().String()),
	)
	return saved, nil
}

// GetUserByEmail validates the email shape before touching the store, so a
// malformed address never triggers a query.
func (uc *UserUseCase) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	emailVO, err := entity.NewEmail(email)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByEmail(ctx, emailVO)
	if err != nil {
		return nil, uc.classify(err, "failed to find user")
	}
	if user == nil {
		return nil, &domainError.NotFoundError{Message: "user not found"}
	}
	return user, nil
}

// GetUser retrieves a user by ID.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	userID, err := entity.NewUserID(id)
	if err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, uc.classify(err, "failed to find user")
	}
	if user == nil {
		return nil, domainError.NewNotFoundError("user", id)
	}
	return user, nil
}

// DeleteUser removes the account only. Tasks owned by the user are left in
// place; removing them would be a multi-document operation.
func (uc *UserUseCase) DeleteUser(ctx context.Context, id string) error {
	userID, err := entity.NewUserID(id)
	if err != nil {
		return err
	}

	existing, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return uc.classify(err, "failed to delete user")
	}
	if existing == nil {
		return domainError.NewNotFoundError("user", id)
	}

	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return uc.classify(err, "failed to delete user")
	}

	uc.logger.Info("user deleted", logger.String("user_id", id))
	return nil
}

func (uc *UserUseCase) classify(err error, message string) error {
	if domainError.IsDomainError(err) {
		return err
	}
	uc.logger.Error(message, logger.Error(err))
	return domainError.NewOperationError(message, err)
}
