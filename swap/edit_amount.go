package swap

import (
	"context"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/pave-swap/swap/model"
)

type EditAmountRequest struct {
	Origin string `json:"origin" validate:"required,oneof=from to"`
	// Value is the raw field text. Empty clears both fields.
	Value string `json:"value" validate:"max=64"`
}

// Validate implements validation for EditAmountRequest using go-playground/validator
func (r *EditAmountRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

// EditAmount applies a keystroke level edit of one amount field. Input that
// is not a positive number is kept and reported in the session's
// validation_error.
//
//encore:api public path=/v1/sessions/:id/amounts method=POST
func (s *Service) EditAmount(ctx context.Context, id string, req *EditAmountRequest) (*SessionResponse, error) {
	sm, err := s.sessions.get(id)
	if err != nil {
		return nil, err
	}

	if err := sm.EditAmount(model.Origin(req.Origin), req.Value); err != nil {
		return nil, err
	}
	return sessionResponse(sm.Snapshot()), nil
}
