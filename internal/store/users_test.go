package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	s := newTestStore(t)

	user, err := s.CreateUser("user-1", "jane@x.com", "hash", "Jane")
	require.NoError(t, err)

	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "jane@x.com", user.Email)
	assert.Equal(t, "Jane", user.DisplayName)
	assert.Equal(t, "free", user.SubscriptionTier)
	assert.Equal(t, int64(0), user.Credits)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateUser("user-1", "jane@x.com", "hash", "Jane")
	require.NoError(t, err)

	_, err = s.CreateUser("user-2", "jane@x.com", "hash", "Other Jane")
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestGetUserByEmail(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateUser("user-1", "jane@x.com", "hash", "Jane")
	require.NoError(t, err)

	user, err := s.GetUserByEmail("jane@x.com")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)

	_, err = s.GetUserByEmail("nobody@x.com")
	assert.True(t, errors.Is(err, ErrNotFound))
}
