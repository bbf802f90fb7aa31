package rate

import (
	"github.com/dugiahuy/pave-swap/swap/model"
)

// Between returns how many units of `to` one unit of `from` buys. Both catalog
// prices share the same reference unit (USD), so the cross rate is their
// quotient. The rate is invalid when either asset is missing or the divisor
// is zero.
func Between(c model.Catalog, from, to string) model.Rate {
	fromPrice, ok := c.Lookup(from)
	if !ok {
		return model.Rate{}
	}
	toPrice, ok := c.Lookup(to)
	if !ok || toPrice.Price == 0 {
		return model.Rate{}
	}

	return model.Rate{
		Value: fromPrice.Price / toPrice.Price,
		Valid: true,
	}
}
