package service

import (
	"context"
	"errors"
	"testing"

	apperrors "lido-club-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaga_AllStepsSucceed(t *testing.T) {
	var calls []string
	s := &saga{op: "test", steps: []sagaStep{
		{name: "one", run: func(context.Context) error { calls = append(calls, "one"); return nil }},
		{name: "two", skip: true, run: func(context.Context) error { calls = append(calls, "two"); return nil }},
		{name: "three", run: func(context.Context) error { calls = append(calls, "three"); return nil }},
	}}

	outcomes, err := s.run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "three"}, calls)
	assert.Equal(t, []apperrors.StepOutcome{
		{Step: "one", Status: apperrors.StepSucceeded},
		{Step: "two", Status: apperrors.StepSkipped},
		{Step: "three", Status: apperrors.StepSucceeded},
	}, outcomes)
}

func TestSaga_CompensatesInReverse(t *testing.T) {
	var undo []string
	boom := errors.New("insert failed")
	s := &saga{op: "save match", compensate: true, steps: []sagaStep{
		{name: "one", run: func(context.Context) error { return nil }, compensate: func(context.Context) error { undo = append(undo, "one"); return nil }},
		{name: "two", run: func(context.Context) error { return nil }, compensate: func(context.Context) error { undo = append(undo, "two"); return nil }},
		{name: "three", run: func(context.Context) error { return boom }},
		{name: "four", run: func(context.Context) error { t.Fatal("must not run"); return nil }},
	}}

	outcomes, err := s.run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"two", "one"}, undo)

	var remote *apperrors.RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, "three", remote.FailedStep())
	assert.Equal(t, apperrors.StepCompensated, outcomes[0].Status)
	assert.Equal(t, apperrors.StepCompensated, outcomes[1].Status)
	assert.Equal(t, apperrors.StepFailed, outcomes[2].Status)
	assert.Equal(t, "insert failed", outcomes[2].Error)
	assert.Equal(t, apperrors.StepSkipped, outcomes[3].Status)
}

func TestSaga_NoCompensationKeepsCompletedSteps(t *testing.T) {
	compensated := false
	s := &saga{op: "create player", steps: []sagaStep{
		{name: "one", run: func(context.Context) error { return nil }, compensate: func(context.Context) error { compensated = true; return nil }},
		{name: "two", run: func(context.Context) error { return errors.New("denied") }},
	}}

	outcomes, err := s.run(context.Background())
	require.Error(t, err)
	assert.False(t, compensated)
	assert.Equal(t, apperrors.StepSucceeded, outcomes[0].Status)
	assert.Equal(t, apperrors.StepFailed, outcomes[1].Status)
}

func TestSaga_FailedCompensationIsRecorded(t *testing.T) {
	s := &saga{op: "save match", compensate: true, steps: []sagaStep{
		{name: "one", run: func(context.Context) error { return nil }, compensate: func(context.Context) error { return errors.New("still down") }},
		{name: "two", run: func(context.Context) error { return errors.New("down") }},
	}}

	outcomes, err := s.run(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperrors.StepSucceeded, outcomes[0].Status)
}

func TestAddedEmails(t *testing.T) {
	assert.Equal(t, []string{"c@lido.dk"}, addedEmails([]string{"a@lido.dk", "B@lido.dk"}, []string{"b@lido.dk", "c@lido.dk"}))
	assert.Empty(t, addedEmails([]string{"a@lido.dk"}, []string{"a@lido.dk"}))
}
