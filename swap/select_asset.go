package swap

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/dugiahuy/pave-swap/swap/model"
)

type SelectAssetRequest struct {
	Side   string `json:"side" validate:"required,oneof=from to"`
	Symbol string `json:"symbol" validate:"required,max=32"`
}

// Validate implements validation for SelectAssetRequest using go-playground/validator
func (r *SelectAssetRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

//encore:api public path=/v1/sessions/:id/assets method=POST
func (s *Service) SelectAsset(ctx context.Context, id string, req *SelectAssetRequest) (*SessionResponse, error) {
	sm, err := s.sessions.get(id)
	if err != nil {
		return nil, err
	}

	if err := sm.SelectAsset(model.Origin(req.Side), req.Symbol); err != nil {
		rlog.Error("failed to select asset", "session_id", id, "side", req.Side, "symbol", req.Symbol, "error", err)
		return nil, err
	}
	return sessionResponse(sm.Snapshot()), nil
}
