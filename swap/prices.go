package swap

import (
	"context"
	"sync/atomic"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/cron"
	"encore.dev/rlog"

	"github.com/dugiahuy/pave-swap/swap/business/catalog"
	"github.com/dugiahuy/pave-swap/swap/domain"
	"github.com/dugiahuy/pave-swap/swap/model"
)

// priceBoard holds the catalog served by the stateless endpoints. It is loaded
// on first use, refreshed by cron, and swapped as a whole.
type priceBoard struct {
	fetcher domain.Fetcher
	timeout time.Duration
	catalog atomic.Pointer[model.Catalog]
}

func newPriceBoard(fetcher domain.Fetcher, timeout time.Duration) *priceBoard {
	return &priceBoard{fetcher: fetcher, timeout: timeout}
}

func (b *priceBoard) current(ctx context.Context) (model.Catalog, error) {
	if c := b.catalog.Load(); c != nil {
		return *c, nil
	}
	return b.refresh(ctx)
}

// refresh fetches the feed and replaces the catalog. On failure the previous
// catalog stays in place.
func (b *priceBoard) refresh(ctx context.Context) (model.Catalog, error) {
	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	observations, err := b.fetcher.FetchPrices(ctx)
	if err != nil {
		rlog.Error("failed to refresh prices", "error", err)
		return model.Catalog{}, &errs.Error{Code: errs.Unavailable, Message: model.FeedUnavailableMessage}
	}

	c := catalog.Build(observations)
	b.catalog.Store(&c)
	rlog.Info("shared price catalog refreshed", "records", len(observations), "assets", c.Len())
	return c, nil
}

// sharedPrices is replaced by initService before any endpoint runs.
var sharedPrices = &priceBoard{}

var _ = cron.NewJob("refresh-prices", cron.JobConfig{
	Title:    "Refresh the shared price catalog",
	Every:    5 * cron.Minute,
	Endpoint: RefreshPrices,
})

// RefreshPrices reloads the shared price catalog.
//
//encore:api private
func RefreshPrices(ctx context.Context) error {
	_, err := sharedPrices.refresh(ctx)
	return err
}
