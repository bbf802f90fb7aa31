package catalog

import (
	"slices"
	"strings"

	"github.com/dugiahuy/pave-swap/swap/model"
)

// Build collapses raw observations into one freshest eligible price per asset,
// ordered by asset symbol. Ineligible observations are dropped silently since
// partial feeds are expected. When two observations share a timestamp the one
// seen first is kept.
func Build(observations []model.PriceObservation) model.Catalog {
	latest := make(map[string]model.PriceObservation, len(observations))
	for _, obs := range observations {
		if !obs.Eligible() {
			continue
		}
		if current, ok := latest[obs.Asset]; ok && !obs.ObservedAt.After(current.ObservedAt) {
			continue
		}
		latest[obs.Asset] = obs
	}

	prices := make([]model.PriceObservation, 0, len(latest))
	for _, obs := range latest {
		prices = append(prices, obs)
	}
	slices.SortFunc(prices, func(a, b model.PriceObservation) int {
		return strings.Compare(a.Asset, b.Asset)
	})

	return model.Catalog{Prices: prices}
}
