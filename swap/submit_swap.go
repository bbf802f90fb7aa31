package swap

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"
)

type SubmitSwapRequest struct {
	IdempotencyKey string `header:"X-Idempotency-Key" json:"-" validate:"required,max=255"`
}

// Validate implements validation for SubmitSwapRequest using go-playground/validator
func (r *SubmitSwapRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

// SubmitSwap validates the session's conversion and hands it to settlement.
// The response shows the session submitting; poll GetSession for the outcome.
//
//encore:api public path=/v1/sessions/:id/submit method=POST tag:idempotency
func (s *Service) SubmitSwap(ctx context.Context, id string, req *SubmitSwapRequest) (*SessionResponse, error) {
	sm, err := s.sessions.get(id)
	if err != nil {
		return nil, err
	}

	if err := sm.Submit(req.IdempotencyKey); err != nil {
		rlog.Error("failed to submit swap", "session_id", id, "error", err)
		return nil, err
	}

	SubmissionsAccepted.Increment()
	return sessionResponse(sm.Snapshot()), nil
}
