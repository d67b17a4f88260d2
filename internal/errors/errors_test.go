package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		assert.True(t, errors.Is(&NotFoundError{Entity: "match"}, ErrMatchNotFound))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrTeamNotFound, ErrMatchNotFound))
	})

	t.Run("wrapped sentinel", func(t *testing.T) {
		err := fmt.Errorf("load match: %w", ErrMatchNotFound)
		assert.True(t, errors.Is(err, ErrMatchNotFound))
		assert.True(t, IsNotFound(err))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrNotificationNotFound))
		assert.False(t, IsNotFound(ErrSignupClosed))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		assert.Equal(t, "team already exists with this name", ErrTeamExists.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(fmt.Errorf("create: %w", ErrTeamExists)))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "opponent", Message: "Modstander må ikke være tom."}
		assert.Equal(t, "validation error: opponent - Modstander må ikke være tom.", err.Error())
	})

	t.Run("constructor sets title", func(t *testing.T) {
		err := NewValidationError("email", "Email mangler")
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, TitleMissing, verr.Title)
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestRemoteError(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	steps := []StepOutcome{
		{Step: "update_match", Status: StepCompensated},
		{Step: "clear_roster", Status: StepFailed, Error: cause.Error()},
		{Step: "insert_roster", Status: StepSkipped},
	}
	err := NewRemoteError("save match", cause, steps)

	assert.Equal(t, "save match: duplicate key value violates unique constraint", err.Error())
	assert.True(t, IsRemote(err))
	assert.True(t, errors.Is(err, cause))

	var rerr *RemoteError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, "clear_roster", rerr.FailedStep())
	assert.Equal(t, cause.Error(), rerr.Message)
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthorization(ErrNotAdmin))
	assert.True(t, IsAuthorization(ErrNotTeamMember))
	assert.False(t, IsAuthorization(ErrUserEmailNotFound))
}
