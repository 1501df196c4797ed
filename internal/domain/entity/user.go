package entity

import (
	"time"

	domainError "github.com/erickmarcia/To-Do-Tisk/internal/domain/error"
)

// User is the account aggregate. The ID is assigned by the store on first
// save and is immutable afterwards.
type User struct {
	id        UserID
	email     Email
	createdAt time.Time
	updatedAt time.Time
}

// NewUser validates and normalizes the email and stamps both timestamps.
// The ID stays empty until the repository persists the user.
func NewUser(email string) (*User, error) {
	emailVO, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &User{
		email:     emailVO,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// RestoreUser rehydrates a user from persistence.
func RestoreUser(id UserID, email Email, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Getters
func (u *User) ID() UserID           { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// AssignID sets the store-assigned identifier. Reassignment is an error.
func (u *User) AssignID(id UserID) error {
	if u.id != "" {
		return domainError.NewValidationError("cannot reassign ID to an already persisted user")
	}
	u.id = id
	return nil
}

// Refresh bumps updatedAt ahead of a persistence write.
func (u *User) Refresh() {
	u.updatedAt = time.Now()
}
