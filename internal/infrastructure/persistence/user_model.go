package persistence

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/erickmarcia/To-Do-Tisk/internal/domain/entity"
)

// userDocument is the persisted shape of a user. Email is stored lowercased
// so the unique index compares normalized values.
type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Email     string             `bson:"email"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func newUserDocument(user *entity.User) userDocument {
	return userDocument{
		Email:     user.Email().String(),
		CreatedAt: user.CreatedAt(),
		UpdatedAt: user.UpdatedAt(),
	}
}

func (d userDocument) toDomain() *entity.User {
	return entity.RestoreUser(
		entity.UserID(d.ID.Hex()),
		entity.Email(d.Email),
		d.CreatedAt,
		d.UpdatedAt,
	)
}
