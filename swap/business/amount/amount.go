package amount

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dugiahuy/pave-swap/swap/model"
)

// DerivedPlaces is the number of decimal places of a derived amount.
const DerivedPlaces = 6

var ErrInvalidNumber = errors.New("invalid positive number")

// Apply returns the amount pair after a single edit of one field. The result
// depends only on the edit and the rate: the edited field keeps the raw text
// and the other field is derived from it.
func Apply(edit model.AmountEdit, r model.Rate) (model.AmountPair, error) {
	if edit.Value == "" {
		return model.AmountPair{}, nil
	}

	next := model.AmountPair{Origin: edit.Origin}
	setSide(&next, edit.Origin, edit.Value)

	value, err := Parse(edit.Value)
	if err != nil || value.IsNegative() {
		return next, ErrInvalidNumber
	}

	setSide(&next, edit.Origin.Opposite(), derive(value, edit.Origin, r))
	return next, nil
}

// Swap exchanges the two fields verbatim. The text the user typed moves with
// its field, so the origin flips as well.
func Swap(pair model.AmountPair) model.AmountPair {
	return model.AmountPair{
		From:   pair.To,
		To:     pair.From,
		Origin: pair.Origin.Opposite(),
	}
}

// Recompute derives the non-origin field again, for use after the rate changed.
func Recompute(pair model.AmountPair, r model.Rate) model.AmountPair {
	if !pair.Origin.Valid() {
		return pair
	}
	next, _ := Apply(model.AmountEdit{Origin: pair.Origin, Value: pair.Side(pair.Origin)}, r)
	return next
}

// Parse reads decimal text the way an amount field accepts it: surrounding
// whitespace is ignored and partial input such as "12." or ".5" is a number.
func Parse(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(raw))
}

// Positive reports whether raw parses to a number greater than zero.
func Positive(raw string) bool {
	value, err := Parse(raw)
	return err == nil && value.IsPositive()
}

// Format renders a derived amount.
func Format(value decimal.Decimal) string {
	return value.StringFixed(DerivedPlaces)
}

func derive(value decimal.Decimal, origin model.Origin, r model.Rate) string {
	if !r.Valid {
		return ""
	}
	rate := decimal.NewFromFloat(r.Value)

	switch origin {
	case model.OriginFrom:
		return Format(value.Mul(rate))
	case model.OriginTo:
		if rate.IsZero() {
			return ""
		}
		return Format(value.Div(rate))
	default:
		return ""
	}
}

func setSide(pair *model.AmountPair, o model.Origin, text string) {
	switch o {
	case model.OriginFrom:
		pair.From = text
	case model.OriginTo:
		pair.To = text
	}
}
