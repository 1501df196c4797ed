package persistence

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/erickmarcia/To-Do-Tisk/internal/domain/entity"
	domainError "github.com/erickmarcia/To-Do-Tisk/internal/domain/error"
	"github.com/erickmarcia/To-Do-Tisk/internal/domain/repository"
	"github.com/erickmarcia/To-Do-Tisk/pkg/logger"
)

type mongoTaskRepository struct {
	coll   *mongo.Collection
	logger logger.Logger
}

// NewTaskRepository creates a Mongo-backed task repository.
func NewTaskRepository(coll *mongo.Collection, logger logger.Logger) repository.TaskRepository {
	return &mongoTaskRepository{coll: coll, logger: logger}
}

func (r *mongoTaskRepository) Save(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	doc := newTaskDocument(task)

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		r.logger.Error("failed to insert task", logger.Error(err))
		return nil, domainError.NewOperationError("failed to save task", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, domainError.NewOperationError("failed to save task", errors.New("unexpected inserted ID type"))
	}

	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *mongoTaskRepository) FindByID(ctx context.Context, id entity.TaskID) (*entity.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id.String())
	if err != nil {
		// Not a store-assigned ID, so no document can match.
		return nil, nil
	}

	var doc taskDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to find task by id", logger.String("task_id", id.String()), logger.Error(err))
		return nil, domainError.NewOperationError("failed to find task", err)
	}

	return doc.toDomain(), nil
}

func (r *mongoTaskRepository) FindByUserID(ctx context.Context, userID entity.UserID) ([]*entity.Task, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID.String()})
	if err != nil {
		r.logger.Error("failed to query tasks", logger.String("user_id", userID.String()), logger.Error(err))
		return nil, domainError.NewOperationError("failed to find tasks", err)
	}

	var docs []taskDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.logger.Error("failed to decode tasks", logger.Error(err))
		return nil, domainError.NewOperationError("failed to find tasks", err)
	}

	tasks := make([]*entity.Task, len(docs))
	for i, doc := range docs {
		tasks[i] = doc.toDomain()
	}
	return tasks, nil
}

func (r *mongoTaskRepository) Update(ctx context.Context, id entity.TaskID, patch repository.TaskUpdate) (*entity.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id.String())
	if err != nil {
		return nil, nil
	}

	set := bson.M{"updatedAt": time.Now()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Priority != nil {
		set["priority"] = *patch.Priority
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc taskDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to update task", logger.String("task_id", id.String()), logger.Error(err))
		return nil, domainError.NewOperationError("failed to update task", err)
	}

	return doc.toDomain(), nil
}

func (r *mongoTaskRepository) Delete(ctx context.Context, id entity.TaskID) error {
	oid, err := primitive.ObjectIDFromHex(id.String())
	if err != nil {
		return nil
	}

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		r.logger.Error("failed to delete task", logger.String("task_id", id.String()), logger.Error(err))
		return domainError.NewOperationError("failed to delete task", err)
	}
	// Zero deletions is fine: delete is idempotent.
	return nil
}
