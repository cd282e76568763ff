package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandLifecycle(t *testing.T) {
	s := newTestStore(t)
	createTestUser(t, s, "user-1", "user1@x.com")

	userID := "user-1"
	command, err := s.CreateCommand(&userID, "status", false)
	require.NoError(t, err)
	assert.Equal(t, "pending", command.Status)
	assert.Equal(t, "", command.Output)
	assert.False(t, command.IsAsync)

	require.NoError(t, s.CompleteCommand(command.ID, "system status: active", "completed"))

	command, err = s.GetCommand(command.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", command.Status)
	assert.Equal(t, "system status: active", command.Output)
}

func TestCompleteCommand_NotFound(t *testing.T) {
	s := newTestStore(t)

	err := s.CompleteCommand(42, "out", "completed")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSystemCounts(t *testing.T) {
	s := newTestStore(t)
	createTestUser(t, s, "user-1", "user1@x.com")

	_, err := s.CreateCustomer("Jane Doe", "jane@x.com", "", "", "active")
	require.NoError(t, err)
	_, err = s.CreateProject("user-1", "app.zip", "/uploads/app.zip", 0, "")
	require.NoError(t, err)

	counts, err := s.SystemCounts()
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts.Customers)
	assert.Equal(t, int64(1), counts.Projects)
	assert.Equal(t, int64(0), counts.Deployments)
}
