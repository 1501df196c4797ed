package persistence

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/erickmarcia/To-Do-Tisk/internal/domain/entity"
	domainError "github.com/erickmarcia/To-Do-Tisk/internal/domain/error"
	"github.com/erickmarcia/To-Do-Tisk/internal/domain/repository"
	"github.com/erickmarcia/To-Do-Tisk/pkg/logger"
)

type mongoUserRepository struct {
	coll   *mongo.Collection
	logger logger.Logger
}

// NewUserRepository creates a Mongo-backed user repository.
func NewUserRepository(coll *mongo.Collection, logger logger.Logger) repository.UserRepository {
	return &mongoUserRepository{coll: coll, logger: logger}
}

func (r *mongoUserRepository) Save(ctx context.Context, user *entity.User) (*entity.User, error) {
	doc := newUserDocument(user)

	res, err := r.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		// The unique email index tripped: a concurrent create won the race.
		return nil, domainError.NewConflictError("user", "email", doc.Email)
	}
	if err != nil {
		r.logger.Error("failed to insert user", logger.Error(err))
		return nil, domainError.NewOperationError("failed to save user", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, domainError.NewOperationError("failed to save user", errors.New("unexpected inserted ID type"))
	}

	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *mongoUserRepository) FindByID(ctx context.Context, id entity.UserID) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id.String())
	if err != nil {
		return nil, nil
	}

	var doc userDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to find user by id", logger.String("user_id", id.String()), logger.Error(err))
		return nil, domainError.NewOperationError("failed to find user", err)
	}

	return doc.toDomain(), nil
}

func (r *mongoUserRepository) FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, bson.M{"email": email.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to find user by email", logger.Error(err))
		return nil, domainError.NewOperationError("failed to find user", err)
	}

	return doc.toDomain(), nil
}

func (r *mongoUserRepository) Update(ctx context.Context, user *entity.User) error {
	oid, err := primitive.ObjectIDFromHex(user.ID().String())
	if err != nil {
		return domainError.NewOperationError("failed to update user", err)
	}

	set := bson.M{
		"email":     user.Email().String(),
		"updatedAt": time.Now(),
	}

	if _, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": set}); err != nil {
		r.logger.Error("failed to update user", logger.String("user_id", user.ID().String()), logger.Error(err))
		return domainError.NewOperationError("failed to update user", err)
	}
	return nil
}

func (r *mongoUserRepository) Delete(ctx context.Context, id entity.UserID) error {
	oid, err := primitive.ObjectIDFromHex(id.String())
	if err != nil {
		return nil
	}

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		r.logger.Error("failed to delete user", logger.String("user_id", id.String()), logger.Error(err))
		return domainError.NewOperationError("failed to delete user", err)
	}
	return nil
}
