package swap

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/dugiahuy/pave-swap/swap/model"
)

type ListSettlementsParams struct {
	Limit int32 `query:"limit" validate:"omitempty,min=1,max=200"`
}

// Validate implements validation for ListSettlementsParams using go-playground/validator
func (p *ListSettlementsParams) Validate() error {
	if err := validate.Struct(p); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

type ListSettlementsResponse struct {
	Settlements []model.Settlement `json:"settlements"`
}

// ListSessionSettlements lists the settlements of a live session. Records of
// an evicted session stay readable through GetSettlement.
//
//encore:api public path=/v1/sessions/:id/settlements method=GET
func (s *Service) ListSessionSettlements(ctx context.Context, id string, p *ListSettlementsParams) (*ListSettlementsResponse, error) {
	if _, err := s.sessions.get(id); err != nil {
		return nil, err
	}

	var limit int32
	if p != nil {
		limit = p.Limit
	}

	result, err := s.business.ListSessionSettlements(ctx, id, limit)
	if err != nil {
		rlog.Error("failed to list settlements", "session_id", id, "error", err)
		return nil, err
	}

	return &ListSettlementsResponse{Settlements: result}, nil
}

type SettlementResponse struct {
	Settlement model.Settlement `json:"settlement"`
}

//encore:api public path=/v1/settlements/:id method=GET
func (s *Service) GetSettlement(ctx context.Context, id int64) (*SettlementResponse, error) {
	result, err := s.business.GetSettlement(ctx, id)
	if err != nil {
		rlog.Error("failed to get settlement", "settlement_id", id, "error", err)
		return nil, err
	}

	return &SettlementResponse{Settlement: *result}, nil
}
