package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/dugiahuy/pave-swap/swap/business/amount"
	"github.com/dugiahuy/pave-swap/swap/business/catalog"
	"github.com/dugiahuy/pave-swap/swap/business/rate"
	"github.com/dugiahuy/pave-swap/swap/model"
)

// Fetcher loads the raw price feed.
type Fetcher interface {
	FetchPrices(ctx context.Context) ([]model.PriceObservation, error)
}

// Settler carries out a validated conversion.
type Settler interface {
	Settle(ctx context.Context, req model.SettlementRequest) (*model.Settlement, error)
}

type Options struct {
	// DefaultFrom and DefaultTo list preferred symbols in order. When none is
	// in the catalog the first catalog entry not selected on the other side
	// is used.
	DefaultFrom []string
	DefaultTo   []string

	FetchTimeout      time.Duration
	SettlementTimeout time.Duration

	// Async runs fetches and settlements. Defaults to SafeAsync.
	Async AsyncRunner
}

// ConversionStateMachine owns one conversion session: the price catalog, the
// selected pair and the two amount fields. Every field is replaced wholesale
// under mu; background fetches and settlements report back through it.
type ConversionStateMachine struct {
	id       string
	fetcher  Fetcher
	settler  Settler
	opts     Options
	runAsync AsyncRunner

	mu             sync.Mutex
	state          model.ConversionState
	failure        string
	catalog        model.Catalog
	pair           model.ConversionPair
	amounts        model.AmountPair
	validation     error
	submission     model.SubmissionState
	lastSettlement *model.Settlement
	// generation identifies the latest fetch; results of older fetches are dropped.
	generation uint64
}

// NewConversionStateMachine creates a session in the loading state. Call Load
// to start fetching prices.
func NewConversionStateMachine(id string, fetcher Fetcher, settler Settler, opts Options) *ConversionStateMachine {
	runAsync := opts.Async
	if runAsync == nil {
		runAsync = SafeAsync
	}

	return &ConversionStateMachine{
		id:         id,
		fetcher:    fetcher,
		settler:    settler,
		opts:       opts,
		runAsync:   runAsync,
		state:      model.ConversionStateLoading,
		submission: model.SubmissionStateIdle,
	}
}

func (sm *ConversionStateMachine) ID() string {
	return sm.id
}

// Load starts the initial price fetch.
func (sm *ConversionStateMachine) Load() {
	sm.mu.Lock()
	gen := sm.beginLoad()
	sm.mu.Unlock()

	sm.startFetch(gen)
}

// Retry starts a new fetch after a failed load.
func (sm *ConversionStateMachine) Retry() error {
	sm.mu.Lock()
	if sm.state != model.ConversionStateFailed {
		sm.mu.Unlock()
		return errNotReady("prices can only be retried after a failed load")
	}
	gen := sm.beginLoad()
	sm.mu.Unlock()

	sm.startFetch(gen)
	return nil
}

// Refresh fetches prices again while the session stays ready. The catalog is
// only replaced once the new one is fully built.
func (sm *ConversionStateMachine) Refresh() error {
	sm.mu.Lock()
	if sm.state != model.ConversionStateReady {
		sm.mu.Unlock()
		return errNotReady("prices are not loaded")
	}
	sm.generation++
	gen := sm.generation
	sm.mu.Unlock()

	sm.startFetch(gen)
	return nil
}

// SelectAsset picks the asset of one side of the conversion.
func (sm *ConversionStateMachine) SelectAsset(side model.Origin, symbol string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if err := sm.requireIdleReady(); err != nil {
		return err
	}
	if !side.Valid() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "side must be from or to"}
	}
	if !sm.catalog.Has(symbol) {
		return errUnknownAsset()
	}

	if side == model.OriginFrom {
		sm.pair.From = symbol
	} else {
		sm.pair.To = symbol
	}
	sm.amounts = amount.Recompute(sm.amounts, sm.currentRate())
	return nil
}

// EditAmount applies a user edit of one amount field. Invalid input does not
// fail the call; it is kept in the field and reported through the validation
// message of the snapshot.
func (sm *ConversionStateMachine) EditAmount(origin model.Origin, raw string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if err := sm.requireIdleReady(); err != nil {
		return err
	}
	if !origin.Valid() {
		return &errs.Error{Code: errs.InvalidArgument, Message: "origin must be from or to"}
	}

	next, err := amount.Apply(model.AmountEdit{Origin: origin, Value: raw}, sm.currentRate())
	sm.amounts = next
	sm.validation = nil
	if errors.Is(err, amount.ErrInvalidNumber) {
		sm.validation = errInvalidAmountEdit()
	}
	return nil
}

// SwapDirection exchanges the selected assets and the two amount fields.
func (sm *ConversionStateMachine) SwapDirection() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if err := sm.requireIdleReady(); err != nil {
		return err
	}

	sm.pair = model.ConversionPair{From: sm.pair.To, To: sm.pair.From}
	sm.amounts = amount.Swap(sm.amounts)
	return nil
}

// Submit validates the current conversion and hands it to the settler. A nil
// error means the session entered the submitting state.
func (sm *ConversionStateMachine) Submit(idempotencyKey string) error {
	sm.mu.Lock()
	if err := sm.requireIdleReady(); err != nil {
		sm.mu.Unlock()
		return err
	}
	if err := sm.guard(); err != nil {
		if KindOf(err) != KindNoRate {
			sm.validation = err
		}
		sm.mu.Unlock()
		return err
	}

	sm.validation = nil
	sm.submission = model.SubmissionStateSubmitting
	req := model.SettlementRequest{
		SessionID:      sm.id,
		IdempotencyKey: idempotencyKey,
		Pair:           sm.pair,
		FromAmount:     sm.amounts.From,
		ToAmount:       sm.amounts.To,
		Rate:           sm.currentRate().Value,
	}
	sm.mu.Unlock()

	rlog.Info("swap submitted", "session_id", sm.id, "from", req.Pair.From, "to", req.Pair.To, "from_amount", req.FromAmount)

	sm.runAsync("settle-swap", sm.opts.SettlementTimeout, func(ctx context.Context) error {
		settlement, err := sm.settler.Settle(ctx, req)
		return sm.completeSettlement(settlement, err)
	})
	return nil
}

// State returns the top level state of the session.
func (sm *ConversionStateMachine) State() model.ConversionState {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.state
}

// Snapshot returns a consistent copy of the session.
func (sm *ConversionStateMachine) Snapshot() model.Conversion {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	conversion := model.Conversion{
		SessionID:  sm.id,
		State:      sm.state,
		Catalog:    sm.catalog.Clone(),
		Pair:       sm.pair,
		Amounts:    sm.amounts,
		Rate:       sm.currentRate(),
		Submission: sm.submission,
	}
	if sm.failure != "" {
		failure := sm.failure
		conversion.Failure = &failure
	}
	if sm.validation != nil {
		message := messageOf(sm.validation)
		kind := string(KindOf(sm.validation))
		conversion.ValidationError = &message
		conversion.ValidationKind = &kind
	}
	if sm.lastSettlement != nil {
		settlement := *sm.lastSettlement
		conversion.LastSettlement = &settlement
	}
	return conversion
}

func (sm *ConversionStateMachine) beginLoad() uint64 {
	sm.transition(model.ConversionStateLoading)
	sm.failure = ""
	sm.generation++
	return sm.generation
}

func (sm *ConversionStateMachine) startFetch(gen uint64) {
	sm.runAsync("fetch-prices", sm.opts.FetchTimeout, func(ctx context.Context) error {
		observations, err := sm.fetcher.FetchPrices(ctx)
		return sm.completeFetch(gen, observations, err)
	})
}

func (sm *ConversionStateMachine) completeFetch(gen uint64, observations []model.PriceObservation, fetchErr error) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if gen != sm.generation {
		rlog.Info("discarding superseded price fetch", "session_id", sm.id, "generation", gen, "current", sm.generation)
		return nil
	}

	if fetchErr != nil {
		if sm.state == model.ConversionStateReady {
			rlog.Warn("price refresh failed, keeping previous catalog", "session_id", sm.id, "error", fetchErr)
			return fmt.Errorf("refresh prices: %w", fetchErr)
		}
		sm.failure = failureMessage(fetchErr)
		sm.transition(model.ConversionStateFailed)
		return fmt.Errorf("load prices: %w", fetchErr)
	}

	sm.catalog = catalog.Build(observations)

	if sm.state == model.ConversionStateReady {
		sm.pair = sm.reconcilePair()
		if sm.submission == model.SubmissionStateIdle {
			sm.amounts = amount.Recompute(sm.amounts, sm.currentRate())
		}
		rlog.Info("price catalog refreshed", "session_id", sm.id, "assets", sm.catalog.Len())
		return nil
	}

	sm.pair = sm.defaultPair()
	sm.transition(model.ConversionStateReady)
	rlog.Info("price catalog loaded", "session_id", sm.id, "assets", sm.catalog.Len(), "from", sm.pair.From, "to", sm.pair.To)
	return nil
}

func (sm *ConversionStateMachine) completeSettlement(settlement *model.Settlement, settleErr error) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.submission = model.SubmissionStateIdle

	if settleErr != nil {
		// the submitted amounts are still in place so the user can retry
		sm.validation = errSettlementFailed()
		return fmt.Errorf("settle swap: %w", settleErr)
	}

	sm.amounts = model.AmountPair{}
	sm.lastSettlement = settlement
	rlog.Info("swap settled", "session_id", sm.id)
	return nil
}

// guard checks a submission in the order the user is expected to fix things.
func (sm *ConversionStateMachine) guard() error {
	if !sm.pair.Complete() {
		return errMissingSelection()
	}
	if !amount.Positive(sm.amounts.From) {
		return errInvalidAmountSubmit()
	}
	if sm.pair.From == sm.pair.To {
		return errSameAsset()
	}
	if sm.amounts.To == "" || !sm.currentRate().Valid {
		return errNoRate()
	}
	// settlement only records positive amounts on both sides
	if !amount.Positive(sm.amounts.To) {
		return errAmountTooSmall()
	}
	return nil
}

func (sm *ConversionStateMachine) requireIdleReady() error {
	switch sm.state {
	case model.ConversionStateLoading:
		return errNotReady("prices are still loading")
	case model.ConversionStateFailed:
		return errFeedUnavailable(sm.failure)
	}
	if sm.submission == model.SubmissionStateSubmitting {
		return errSubmissionInFlight()
	}
	return nil
}

func (sm *ConversionStateMachine) currentRate() model.Rate {
	return rate.Between(sm.catalog, sm.pair.From, sm.pair.To)
}

func (sm *ConversionStateMachine) defaultPair() model.ConversionPair {
	from := pickDefault(sm.catalog, sm.opts.DefaultFrom, "")
	to := pickDefault(sm.catalog, sm.opts.DefaultTo, from)
	return model.ConversionPair{From: from, To: to}
}

// reconcilePair keeps the selection across a refresh, replacing only the
// sides whose asset left the catalog.
func (sm *ConversionStateMachine) reconcilePair() model.ConversionPair {
	pair := sm.pair
	if !sm.catalog.Has(pair.From) {
		pair.From = pickDefault(sm.catalog, sm.opts.DefaultFrom, pair.To)
	}
	if !sm.catalog.Has(pair.To) {
		pair.To = pickDefault(sm.catalog, sm.opts.DefaultTo, pair.From)
	}
	return pair
}

func (sm *ConversionStateMachine) transition(to model.ConversionState) {
	if sm.state != to {
		rlog.Debug("conversion state changed", "session_id", sm.id, "from", sm.state, "to", to)
	}
	sm.state = to
}

func pickDefault(c model.Catalog, preferred []string, exclude string) string {
	for _, symbol := range preferred {
		if symbol != exclude && c.Has(symbol) {
			return symbol
		}
	}
	for _, price := range c.Prices {
		if price.Asset != exclude {
			return price.Asset
		}
	}
	return ""
}

func failureMessage(err error) string {
	if errors.Is(err, model.ErrFeedUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return model.FeedUnavailableMessage
	}
	return err.Error()
}

func messageOf(err error) string {
	var e *errs.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
