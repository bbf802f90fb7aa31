package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dugiahuy/pave-swap/swap/model"
)

type staticFetcher struct {
	observations []model.PriceObservation
	err          error
}

func (f staticFetcher) FetchPrices(context.Context) ([]model.PriceObservation, error) {
	return f.observations, f.err
}

func testFeed() staticFetcher {
	t1 := time.Date(2023, 8, 29, 7, 10, 40, 0, time.UTC)
	t2 := t1.Add(time.Minute)
	return staticFetcher{observations: []model.PriceObservation{
		{Asset: "ETH", Price: 3000, ObservedAt: t1},
		{Asset: "ETH", Price: 3100, ObservedAt: t2},
		{Asset: "USDC", Price: 1, ObservedAt: t1},
		{Asset: "bNEO", Price: 7.25, ObservedAt: t1},
	}}
}

func TestRun(t *testing.T) {
	testCases := []struct {
		name          string
		fetcher       staticFetcher
		opts          options
		expected      []string
		expectedError string
	}{
		{
			name:     "catalog_when_pair_missing",
			fetcher:  testFeed(),
			expected: []string{"ASSET", "ETH", "3100", "USDC"},
		},
		{
			name:     "rate_only",
			fetcher:  testFeed(),
			opts:     options{From: "ETH", To: "USDC"},
			expected: []string{"1 ETH = 3100 USDC"},
		},
		{
			name:     "rate_and_amount",
			fetcher:  testFeed(),
			opts:     options{From: "ETH", To: "USDC", Amount: "2"},
			expected: []string{"2 ETH = 6200.000000 USDC"},
		},
		{
			name:     "mixed_case_symbol",
			fetcher:  testFeed(),
			opts:     options{From: "bNEO", To: "USDC", Amount: "2"},
			expected: []string{"1 bNEO = 7.25 USDC", "2 bNEO = 14.500000 USDC"},
		},
		{
			name:          "symbols_are_case_sensitive",
			fetcher:       testFeed(),
			opts:          options{From: "eth", To: "USDC"},
			expectedError: "no rate available for eth/USDC",
		},
		{
			name:          "unknown_asset",
			fetcher:       testFeed(),
			opts:          options{From: "ETH", To: "DOGE"},
			expectedError: "no rate available for ETH/DOGE",
		},
		{
			name:          "invalid_amount",
			fetcher:       testFeed(),
			opts:          options{From: "ETH", To: "USDC", Amount: "-5"},
			expectedError: "invalid positive number",
		},
		{
			name:          "feed_down",
			fetcher:       staticFetcher{err: model.ErrFeedUnavailable},
			expectedError: "price feed unavailable",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer

			err := run(context.Background(), tc.fetcher, tc.opts, &out)

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)
			for _, s := range tc.expected {
				assert.Contains(t, out.String(), s)
			}
		})
	}
}

func TestRun_FeedErrorIsWrapped(t *testing.T) {
	err := run(context.Background(), staticFetcher{err: model.ErrFeedUnavailable}, options{}, &bytes.Buffer{})
	assert.True(t, errors.Is(err, model.ErrFeedUnavailable))
}

func TestConfigure(t *testing.T) {
	t.Setenv("SWAPQUOTE_FROM", "ETH")
	t.Setenv("SWAPQUOTE_TO", "USDC")
	t.Setenv("SWAPQUOTE_AMOUNT", "1")

	v := viper.New()
	require.NoError(t, configure(v, []string{"--amount", "3", "--timeout", "2s"}))
	opts := loadOptions(v)

	assert.Equal(t, "ETH", opts.From, "environment fills unset flags")
	assert.Equal(t, "USDC", opts.To)
	assert.Equal(t, "3", opts.Amount, "flags win over the environment")
	assert.Equal(t, 2*time.Second, opts.Timeout)
	assert.NotEmpty(t, opts.FeedURL)
}

func TestConfigure_KeepsSymbolCase(t *testing.T) {
	v := viper.New()
	require.NoError(t, configure(v, []string{"--from", " bNEO ", "--to", "USDC"}))
	opts := loadOptions(v)

	assert.Equal(t, "bNEO", opts.From)
	assert.Equal(t, "USDC", opts.To)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), testFeed(), opts, &out))
	assert.Contains(t, out.String(), "1 bNEO = 7.25 USDC")
}

func TestConfigure_UnknownFlag(t *testing.T) {
	assert.Error(t, configure(viper.New(), []string{"--bogus"}))
}
