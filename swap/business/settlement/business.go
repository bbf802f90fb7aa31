package settlement

import (
	"context"

	"github.com/go-playground/validator/v10"

	"github.com/dugiahuy/pave-swap/swap/model"
	"github.com/dugiahuy/pave-swap/swap/store/settlements"
)

// DefaultListLimit caps ListSessionSettlements when the caller passes no limit.
const DefaultListLimit = 50

type Business interface {
	RecordSettlement(ctx context.Context, req model.SettlementRequest) (*model.Settlement, error)
	GetSettlement(ctx context.Context, id int64) (*model.Settlement, error)
	ListSessionSettlements(ctx context.Context, sessionID string, limit int32) ([]model.Settlement, error)
}

type business struct {
	settlementRepo settlements.Querier
	validate       *validator.Validate
}

// NewSettlementBusiness creates the business layer recording completed swaps
func NewSettlementBusiness(settlementRepo settlements.Querier) Business {
	return &business{
		settlementRepo: settlementRepo,
		validate:       validator.New(),
	}
}

// convertDBSettlementToModel converts a database Settlement to a domain model Settlement
func convertDBSettlementToModel(dbSettlement settlements.Settlement) *model.Settlement {
	return &model.Settlement{
		ID:             dbSettlement.ID,
		SessionID:      dbSettlement.SessionID,
		IdempotencyKey: dbSettlement.IdempotencyKey,
		Pair: model.ConversionPair{
			From: dbSettlement.FromAsset,
			To:   dbSettlement.ToAsset,
		},
		FromAmount: dbSettlement.FromAmount,
		ToAmount:   dbSettlement.ToAmount,
		Rate:       dbSettlement.Rate,
		SettledAt:  dbSettlement.SettledAt.Time,
	}
}
