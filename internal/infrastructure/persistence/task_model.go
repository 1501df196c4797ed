package persistence

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/erickmarcia/To-Do-Tisk/internal/domain/entity"
)

// taskDocument is the persisted shape of a task. The document ID lives in
// _id, out of band from the body fields.
type taskDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"userId"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Category    string             `bson:"category"`
	Priority    string             `bson:"priority"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func newTaskDocument(task *entity.Task) taskDocument {
	return taskDocument{
		UserID:      task.UserID().String(),
		Title:       task.Title(),
		Description: task.Description(),
		Category:    task.Category(),
		Priority:    task.Priority(),
		Status:      string(task.Status()),
		CreatedAt:   task.CreatedAt(),
		UpdatedAt:   task.UpdatedAt(),
	}
}

func (d taskDocument) toDomain() *entity.Task {
	return entity.RestoreTask(
		entity.TaskID(d.ID.Hex()),
		entity.UserID(d.UserID),
		d.Title,
		d.Description,
		d.Category,
		d.Priority,
		entity.Status(d.Status),
		d.CreatedAt,
		d.UpdatedAt,
	)
}
