package service

import (
	"context"

	apperrors "lido-club-backend/internal/errors"
	"lido-club-backend/internal/logger"
)

// sagaStep is one named remote write. compensate is optional.
type sagaStep struct {
	name       string
	skip       bool
	run        func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// saga runs steps in order and records each outcome. It stops at the first failure;
// with compensate set, completed steps are then undone in reverse order.
type saga struct {
	op         string
	steps      []sagaStep
	compensate bool
}

func (s *saga) run(ctx context.Context) ([]apperrors.StepOutcome, error) {
	outcomes := make([]apperrors.StepOutcome, len(s.steps))
	for i, step := range s.steps {
		outcomes[i] = apperrors.StepOutcome{Step: step.name, Status: apperrors.StepSkipped}
	}

	for i, step := range s.steps {
		if step.skip {
			continue
		}
		if err := step.run(ctx); err != nil {
			outcomes[i].Status = apperrors.StepFailed
			outcomes[i].Error = err.Error()
			if s.compensate {
				s.rollback(ctx, outcomes, i)
			}
			return outcomes, apperrors.NewRemoteError(s.op, err, outcomes)
		}
		outcomes[i].Status = apperrors.StepSucceeded
	}
	return outcomes, nil
}

func (s *saga) rollback(ctx context.Context, outcomes []apperrors.StepOutcome, failed int) {
	log := logger.WithContext(ctx).WithField("op", s.op)
	for j := failed - 1; j >= 0; j-- {
		step := s.steps[j]
		if outcomes[j].Status != apperrors.StepSucceeded || step.compensate == nil {
			continue
		}
		if err := step.compensate(ctx); err != nil {
			log.WithField("step", step.name).WithError(err).Error("compensation failed")
			continue
		}
		outcomes[j].Status = apperrors.StepCompensated
	}
}
