package swap

import (
	"testing"
	"time"

	"encore.dev/beta/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		FeedURL:                 "https://interview.switcheo.com/prices.json",
		FetchTimeoutMillis:      10000,
		SettlementDelayMillis:   2000,
		SettlementTimeoutMillis: 30000,
		DefaultFrom:             []string{"ETH"},
		DefaultTo:               []string{"USDC"},
		MaxSessions:             100,
		TemporalHostPort:        "localhost:7233",
		TemporalNamespace:       "default",
	}
}

func TestLoadSettings(t *testing.T) {
	testCases := []struct {
		name          string
		mutate        func(c *Config)
		expectedError string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad_feed_url", mutate: func(c *Config) { c.FeedURL = "prices" }, expectedError: "FeedURL"},
		{name: "no_fetch_timeout", mutate: func(c *Config) { c.FetchTimeoutMillis = 0 }, expectedError: "FetchTimeout"},
		{name: "timeout_shorter_than_delay", mutate: func(c *Config) { c.SettlementTimeoutMillis = 1000 }, expectedError: "SettlementTimeout"},
		{name: "no_sessions", mutate: func(c *Config) { c.MaxSessions = 0 }, expectedError: "MaxSessions"},
		{name: "empty_default_symbol", mutate: func(c *Config) { c.DefaultTo = []string{""} }, expectedError: "DefaultTo"},
		{name: "bad_temporal_address", mutate: func(c *Config) { c.TemporalHostPort = "localhost" }, expectedError: "TemporalHostPort"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := validConfig()
			tc.mutate(c)

			s, err := loadSettings(c)

			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Equal(t, errs.Internal, errs.Code(err))
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 10*time.Second, s.FetchTimeout)
			assert.Equal(t, 2*time.Second, s.SettlementDelay)
			assert.Equal(t, uint(100), s.MaxSessions)
		})
	}
}
