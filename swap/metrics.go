package swap

import (
	"encore.dev/metrics"
)

type outcomeLabels struct {
	Outcome string
}

// FeedFetches counts price feed fetches by outcome.
var FeedFetches = metrics.NewCounterGroup[outcomeLabels, uint64]("swap_feed_fetches", metrics.CounterConfig{})

// SubmissionsAccepted counts swaps that passed validation and went to settlement.
var SubmissionsAccepted = metrics.NewCounter[uint64]("swap_submissions_accepted", metrics.CounterConfig{})

// Settlements counts finished settlements by outcome.
var Settlements = metrics.NewCounterGroup[outcomeLabels, uint64]("swap_settlements", metrics.CounterConfig{})

func outcome(err error) outcomeLabels {
	if err != nil {
		return outcomeLabels{Outcome: "failure"}
	}
	return outcomeLabels{Outcome: "success"}
}
