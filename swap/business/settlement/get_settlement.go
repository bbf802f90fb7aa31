package settlement

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"github.com/dugiahuy/pave-swap/swap/model"
	"github.com/dugiahuy/pave-swap/swap/store/settlements"
)

func (b *business) GetSettlement(ctx context.Context, id int64) (*model.Settlement, error) {
	dbSettlement, err := b.settlementRepo.GetSettlement(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "settlement not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get settlement"}
	}

	return convertDBSettlementToModel(dbSettlement), nil
}

// ListSessionSettlements returns the newest settlements of a session first.
func (b *business) ListSessionSettlements(ctx context.Context, sessionID string, limit int32) ([]model.Settlement, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	dbSettlements, err := b.settlementRepo.ListSettlementsBySession(ctx, settlements.ListSettlementsBySessionParams{
		SessionID: sessionID,
		Limit:     limit,
	})
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to list settlements"}
	}

	result := make([]model.Settlement, 0, len(dbSettlements))
	for _, dbSettlement := range dbSettlements {
		result = append(result, *convertDBSettlementToModel(dbSettlement))
	}
	return result, nil
}
