package swap

import (
	"time"

	"encore.dev/beta/errs"
	"encore.dev/config"
)

// Config is loaded from config.cue.
type Config struct {
	FeedURL                 string
	FetchTimeoutMillis      int
	SettlementDelayMillis   int
	SettlementTimeoutMillis int
	DefaultFrom             []string
	DefaultTo               []string
	MaxSessions             int
	TemporalHostPort        string
	TemporalNamespace       string
}

var cfg = config.Load[*Config]()

// settings is Config converted to the types the service works with.
type settings struct {
	FeedURL           string        `validate:"required,url"`
	FetchTimeout      time.Duration `validate:"gt=0"`
	SettlementDelay   time.Duration `validate:"gte=0"`
	SettlementTimeout time.Duration `validate:"gtfield=SettlementDelay"`
	DefaultFrom       []string      `validate:"dive,required"`
	DefaultTo         []string      `validate:"dive,required"`
	MaxSessions       uint          `validate:"gt=0"`
	TemporalHostPort  string        `validate:"required,hostname_port"`
	TemporalNamespace string        `validate:"required"`
}

func loadSettings(c *Config) (settings, error) {
	s := settings{
		FeedURL:           c.FeedURL,
		FetchTimeout:      time.Duration(c.FetchTimeoutMillis) * time.Millisecond,
		SettlementDelay:   time.Duration(c.SettlementDelayMillis) * time.Millisecond,
		SettlementTimeout: time.Duration(c.SettlementTimeoutMillis) * time.Millisecond,
		DefaultFrom:       c.DefaultFrom,
		DefaultTo:         c.DefaultTo,
		TemporalHostPort:  c.TemporalHostPort,
		TemporalNamespace: c.TemporalNamespace,
	}
	if c.MaxSessions > 0 {
		s.MaxSessions = uint(c.MaxSessions)
	}

	if err := validate.Struct(s); err != nil {
		return settings{}, &errs.Error{Code: errs.Internal, Message: "invalid swap config: " + err.Error()}
	}
	return s, nil
}
