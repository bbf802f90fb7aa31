package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/dugiahuy/pave-swap/swap/model"
)

// DefaultSettlementDelay is how long a submitted swap waits before it is
// recorded as settled.
const DefaultSettlementDelay = 2 * time.Second

// SettleSwapParams contains parameters for starting the settlement workflow
type SettleSwapParams struct {
	Request model.SettlementRequest `json:"request"`
	Delay   time.Duration           `json:"delay"`
}

// SettleSwap waits out the settlement delay on a durable timer and records the
// swap. The workflow result is the recorded settlement.
func SettleSwap(ctx workflow.Context, params SettleSwapParams) (*model.Settlement, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting settle swap workflow", "sessionID", params.Request.SessionID, "from", params.Request.Pair.From, "to", params.Request.Pair.To)

	delay := params.Delay
	if delay <= 0 {
		delay = DefaultSettlementDelay
	}
	if err := workflow.Sleep(ctx, delay); err != nil {
		return nil, err
	}

	settlement, err := recordSettlement(ctx, params.Request)
	if err != nil {
		logger.Error("Failed to settle swap", "sessionID", params.Request.SessionID, "error", err)
		return nil, err
	}

	logger.Info("Settle swap workflow completed", "sessionID", params.Request.SessionID, "settlementID", settlement.ID)
	return settlement, nil
}

// recordSettlement executes the RecordSettlement activity
func recordSettlement(ctx workflow.Context, req model.SettlementRequest) (*model.Settlement, error) {
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		// a cancelled settlement still reports a record the activity managed to write
		WaitForCancellation: true,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    500 * time.Millisecond,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    4,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	var settlement model.Settlement
	if err := workflow.ExecuteActivity(activityCtx, RecordSettlementActivity, req).Get(ctx, &settlement); err != nil {
		return nil, err
	}
	return &settlement, nil
}
