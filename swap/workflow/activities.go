package workflow

import (
	"context"

	"encore.dev/beta/errs"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	"github.com/dugiahuy/pave-swap/swap/business/settlement"
	"github.com/dugiahuy/pave-swap/swap/model"
)

// ActivityDependencies holds the dependencies needed by activities
type ActivityDependencies struct {
	SettlementBusiness settlement.Business
}

var activityDeps *ActivityDependencies

// SetActivityDependencies sets the dependencies for activities
func SetActivityDependencies(settlementBusiness settlement.Business) {
	activityDeps = &ActivityDependencies{
		SettlementBusiness: settlementBusiness,
	}
}

// RecordSettlementActivity persists a settled swap
func RecordSettlementActivity(ctx context.Context, req model.SettlementRequest) (*model.Settlement, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Processing record settlement activity", "sessionID", req.SessionID, "idempotencyKey", req.IdempotencyKey)

	if activityDeps == nil || activityDeps.SettlementBusiness == nil {
		logger.Error("Activity dependencies not set")
		return nil, temporal.NewApplicationError("activity dependencies not initialized", "DependencyError")
	}

	result, err := activityDeps.SettlementBusiness.RecordSettlement(ctx, req)
	if err != nil {
		logger.Error("Failed to record settlement", "sessionID", req.SessionID, "error", err)
		switch errs.Code(err) {
		case errs.InvalidArgument, errs.AlreadyExists:
			return nil, temporal.NewNonRetryableApplicationError("settlement rejected", "SETTLEMENT_REJECTED", err)
		}
		return nil, err
	}

	logger.Info("Successfully recorded settlement", "settlementID", result.ID, "sessionID", req.SessionID)
	return result, nil
}
