package swap

import (
	"context"
	"fmt"
	"time"

	"encore.dev/rlog"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	"github.com/dugiahuy/pave-swap/swap/domain"
	"github.com/dugiahuy/pave-swap/swap/model"
	"github.com/dugiahuy/pave-swap/swap/workflow"
)

// cancelGrace bounds the cleanup after the caller stopped waiting for a
// settlement.
const cancelGrace = 10 * time.Second

// workflowSettler settles swaps through the SettleSwap workflow and waits for
// its result.
type workflowSettler struct {
	temporal client.Client
	delay    time.Duration
}

var _ domain.Settler = (*workflowSettler)(nil)

func (w *workflowSettler) Settle(ctx context.Context, req model.SettlementRequest) (*model.Settlement, error) {
	workflowID := fmt.Sprintf("settle-%s-%s", req.SessionID, req.IdempotencyKey)

	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: taskQueue,
	}
	params := workflow.SettleSwapParams{
		Request: req,
		Delay:   w.delay,
	}

	run, err := w.temporal.ExecuteWorkflow(ctx, options, workflow.SettleSwap, params)
	if err != nil {
		if !temporal.IsWorkflowExecutionAlreadyStartedError(err) {
			Settlements.With(outcome(err)).Increment()
			return nil, fmt.Errorf("execute workflow %s: %w", workflowID, err)
		}
		rlog.Info("workflow already started, joining it", "session_id", req.SessionID, "workflow_id", workflowID)
		run = w.temporal.GetWorkflow(ctx, workflowID, "")
	}

	var settlement model.Settlement
	err = run.Get(ctx, &settlement)
	if err != nil && ctx.Err() != nil {
		err = w.cancelAndCollect(ctx, workflowID, run, &settlement)
	}
	Settlements.With(outcome(err)).Increment()
	if err != nil {
		return nil, fmt.Errorf("workflow %s: %w", workflowID, err)
	}
	return &settlement, nil
}

// cancelAndCollect cancels a workflow the caller gave up on and reads its final
// result. A settlement recorded before the cancellation took effect is still
// returned, so the session reports it instead of inviting a second submit.
func (w *workflowSettler) cancelAndCollect(ctx context.Context, workflowID string, run client.WorkflowRun, settlement *model.Settlement) error {
	cleanup, cancel := context.WithTimeout(context.WithoutCancel(ctx), cancelGrace)
	defer cancel()

	rlog.Warn("settlement timed out, cancelling workflow", "workflow_id", workflowID)
	if err := w.temporal.CancelWorkflow(cleanup, workflowID, ""); err != nil {
		rlog.Warn("failed to cancel settlement workflow", "workflow_id", workflowID, "error", err)
	}

	if err := run.Get(cleanup, settlement); err != nil {
		return fmt.Errorf("workflow %s cancelled after timeout: %w", workflowID, err)
	}
	rlog.Info("settlement completed before cancellation", "workflow_id", workflowID, "settlement_id", settlement.ID)
	return nil
}

// instrumentedFetcher counts fetch outcomes of the wrapped fetcher.
type instrumentedFetcher struct {
	domain.Fetcher
}

func (f instrumentedFetcher) FetchPrices(ctx context.Context) ([]model.PriceObservation, error) {
	observations, err := f.Fetcher.FetchPrices(ctx)
	FeedFetches.With(outcome(err)).Increment()
	return observations, err
}
