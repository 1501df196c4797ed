package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainError "github.com/erickmarcia/To-Do-Tisk/internal/domain/error"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("Alice@Example.com")
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", user.Email().String())
	assert.Empty(t, user.ID())
	assert.Equal(t, user.CreatedAt(), user.UpdatedAt())

	_, err = NewUser("not-an-email")
	require.Error(t, err)
	assert.True(t, domainError.IsValidationError(err))
}

func TestUser_AssignID(t *testing.T) {
	user, err := NewUser("alice@example.com")
	require.NoError(t, err)

	require.NoError(t, user.AssignID("abc123"))
	assert.Equal(t, UserID("abc123"), user.ID())

	// The ID is immutable once assigned.
	err = user.AssignID("other")
	require.Error(t, err)
	assert.True(t, domainError.IsValidationError(err))
	assert.Equal(t, UserID("abc123"), user.ID())
}
