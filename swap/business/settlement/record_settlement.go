package settlement

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/dugiahuy/pave-swap/swap/business/amount"
	"github.com/dugiahuy/pave-swap/swap/model"
	"github.com/dugiahuy/pave-swap/swap/store/settlements"
)

// RecordSettlement stores a settled swap. Recording the same idempotency key
// twice returns the first record instead of failing.
func (b *business) RecordSettlement(ctx context.Context, req model.SettlementRequest) (*model.Settlement, error) {
	if err := b.validate.Struct(req); err != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	if !req.Pair.Complete() || req.Pair.From == req.Pair.To {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "settlement needs two different assets"}
	}
	if !amount.Positive(req.FromAmount) || !amount.Positive(req.ToAmount) {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "settlement amounts must be positive numbers"}
	}

	dbSettlement, err := b.settlementRepo.CreateSettlement(ctx, settlements.CreateSettlementParams{
		SessionID:      req.SessionID,
		IdempotencyKey: req.IdempotencyKey,
		FromAsset:      req.Pair.From,
		ToAsset:        req.Pair.To,
		FromAmount:     req.FromAmount,
		ToAmount:       req.ToAmount,
		Rate:           req.Rate,
	})
	if err != nil {
		var e *pgconn.PgError
		if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
			return b.existingSettlement(ctx, req)
		}

		rlog.Error("failed to record settlement", "session_id", req.SessionID, "error", err)
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to record settlement"}
	}

	rlog.Info("settlement recorded", "settlement_id", dbSettlement.ID, "session_id", dbSettlement.SessionID)
	return convertDBSettlementToModel(dbSettlement), nil
}

func (b *business) existingSettlement(ctx context.Context, req model.SettlementRequest) (*model.Settlement, error) {
	dbSettlement, err := b.settlementRepo.GetSettlementByIdempotencyKey(ctx, req.IdempotencyKey)
	if err != nil {
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to load duplicated settlement"}
	}
	if dbSettlement.SessionID != req.SessionID {
		return nil, &errs.Error{Code: errs.AlreadyExists, Message: "idempotency key already used by another session"}
	}

	rlog.Info("settlement already recorded", "settlement_id", dbSettlement.ID, "idempotency_key", req.IdempotencyKey)
	return convertDBSettlementToModel(dbSettlement), nil
}
