package model

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
)

// ErrFeedUnavailable is wrapped by fetchers when the price feed could not be
// reached or answered with a non-success status.
var ErrFeedUnavailable = errors.New("price feed unavailable")

// FeedUnavailableMessage is what a session shows when its feed fetch failed.
const FeedUnavailableMessage = "Failed to fetch prices"

type PriceObservation struct {
	Asset      string    `json:"asset"`
	Price      float64   `json:"price"`
	ObservedAt time.Time `json:"observed_at"`
}

// Eligible reports whether the observation may enter a catalog.
func (o PriceObservation) Eligible() bool {
	return o.Price > 0 && !math.IsInf(o.Price, 1)
}

// Catalog holds one price per asset, sorted by asset symbol.
type Catalog struct {
	Prices []PriceObservation `json:"prices"`
}

// Lookup finds the catalog price of symbol.
func (c Catalog) Lookup(symbol string) (PriceObservation, bool) {
	i, found := slices.BinarySearchFunc(c.Prices, symbol, func(o PriceObservation, s string) int {
		return strings.Compare(o.Asset, s)
	})
	if !found {
		return PriceObservation{}, false
	}
	return c.Prices[i], true
}

func (c Catalog) Has(symbol string) bool {
	_, ok := c.Lookup(symbol)
	return ok
}

func (c Catalog) Len() int {
	return len(c.Prices)
}

// Clone returns a copy whose Prices slice does not alias c.
func (c Catalog) Clone() Catalog {
	return Catalog{Prices: slices.Clone(c.Prices)}
}

// IconPath is where the web client looks for an asset icon.
func IconPath(symbol string) string {
	return fmt.Sprintf("/tokens/%s.svg", symbol)
}

// Glyph is the two letter fallback shown when an asset icon fails to load.
func Glyph(symbol string) string {
	r := []rune(strings.ToUpper(symbol))
	if len(r) > 2 {
		r = r[:2]
	}
	return string(r)
}
