// Command swapquote prints the current price catalog, or a quote for one pair
// when both assets are given, without running the swap service.
//
//	swapquote                      # catalog
//	swapquote --from ETH --to USDC # rate
//	SWAPQUOTE_AMOUNT=2 swapquote --from ETH --to USDC
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/dugiahuy/pave-swap/swap/business/amount"
	"github.com/dugiahuy/pave-swap/swap/business/catalog"
	"github.com/dugiahuy/pave-swap/swap/business/rate"
	"github.com/dugiahuy/pave-swap/swap/feed"
	"github.com/dugiahuy/pave-swap/swap/model"
)

const (
	feedURLKey = "feed_url"
	fromKey    = "from"
	toKey      = "to"
	amountKey  = "amount"
	timeoutKey = "timeout"
)

var quoteConfig = viper.New()

var errNoRate = errors.New("no rate available")

type options struct {
	FeedURL string
	From    string
	To      string
	Amount  string
	Timeout time.Duration
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := configure(quoteConfig, os.Args[1:]); err != nil {
		logger.Fatal("failed to parse flags", zap.Error(err))
	}
	opts := loadOptions(quoteConfig)

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	client := feed.NewClient(opts.FeedURL, &http.Client{Timeout: opts.Timeout})
	if err := run(ctx, client, opts, os.Stdout); err != nil {
		logger.Fatal("quote failed",
			zap.Error(err),
			zap.String("feed_url", client.URL),
			zap.String("from", opts.From),
			zap.String("to", opts.To))
	}
}

// configure binds flags and SWAPQUOTE_* environment variables to v. Flags win
// over the environment. Symbols are matched case-sensitively against the feed.
func configure(v *viper.Viper, args []string) error {
	v.SetEnvPrefix("SWAPQUOTE")
	v.AutomaticEnv()
	v.SetDefault(feedURLKey, feed.DefaultURL)
	v.SetDefault(timeoutKey, 10*time.Second)

	flags := pflag.NewFlagSet("swapquote", pflag.ContinueOnError)
	flags.String(feedURLKey, feed.DefaultURL, "price feed URL")
	flags.String(fromKey, "", "asset to convert from")
	flags.String(toKey, "", "asset to convert to")
	flags.String(amountKey, "", "amount of the from asset")
	flags.Duration(timeoutKey, 10*time.Second, "feed request timeout")
	if err := flags.Parse(args); err != nil {
		return err
	}
	return v.BindPFlags(flags)
}

func loadOptions(v *viper.Viper) options {
	timeout := v.GetDuration(timeoutKey)
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return options{
		FeedURL: v.GetString(feedURLKey),
		From:    strings.TrimSpace(v.GetString(fromKey)),
		To:      strings.TrimSpace(v.GetString(toKey)),
		Amount:  strings.TrimSpace(v.GetString(amountKey)),
		Timeout: timeout,
	}
}

type priceFetcher interface {
	FetchPrices(ctx context.Context) ([]model.PriceObservation, error)
}

func run(ctx context.Context, fetcher priceFetcher, opts options, out io.Writer) error {
	observations, err := fetcher.FetchPrices(ctx)
	if err != nil {
		return err
	}
	c := catalog.Build(observations)

	if opts.From == "" || opts.To == "" {
		return printCatalog(out, c)
	}
	return printQuote(out, c, opts)
}

func printCatalog(out io.Writer, c model.Catalog) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ASSET\tPRICE\tOBSERVED")
	for _, p := range c.Prices {
		fmt.Fprintf(w, "%s\t%g\t%s\n", p.Asset, p.Price, p.ObservedAt.Format(time.RFC3339))
	}
	return w.Flush()
}

func printQuote(out io.Writer, c model.Catalog, opts options) error {
	r := rate.Between(c, opts.From, opts.To)
	if !r.Valid {
		return fmt.Errorf("%w for %s/%s", errNoRate, opts.From, opts.To)
	}
	fmt.Fprintf(out, "1 %s = %g %s\n", opts.From, r.Value, opts.To)

	if opts.Amount == "" {
		return nil
	}
	pair, err := amount.Apply(model.AmountEdit{Origin: model.OriginFrom, Value: opts.Amount}, r)
	if err != nil {
		return fmt.Errorf("amount %q: %w", opts.Amount, err)
	}
	fmt.Fprintf(out, "%s %s = %s %s\n", pair.From, opts.From, pair.To, opts.To)
	return nil
}
