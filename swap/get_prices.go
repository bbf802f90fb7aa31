package swap

import (
	"context"

	"encore.dev/beta/errs"
	"encore.dev/rlog"

	"github.com/dugiahuy/pave-swap/swap/business/amount"
	"github.com/dugiahuy/pave-swap/swap/business/rate"
	"github.com/dugiahuy/pave-swap/swap/model"
)

type PricesResponse struct {
	Assets []AssetView `json:"assets"`
	Count  int         `json:"count"`
}

//encore:api public path=/v1/prices method=GET
func (s *Service) GetPrices(ctx context.Context) (*PricesResponse, error) {
	c, err := s.prices.current(ctx)
	if err != nil {
		return nil, err
	}

	return &PricesResponse{
		Assets: assetViews(c),
		Count:  c.Len(),
	}, nil
}

type GetRateParams struct {
	Amount string `query:"amount" validate:"omitempty,max=64"`
}

// Validate implements validation for GetRateParams using go-playground/validator
func (p *GetRateParams) Validate() error {
	if err := validate.Struct(p); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}

type RateResponse struct {
	Pair      model.ConversionPair `json:"pair"`
	Rate      float64              `json:"rate"`
	Amount    string               `json:"amount,omitempty"`
	Converted string               `json:"converted,omitempty"`
}

// GetRate quotes the exchange rate between two assets of the shared catalog,
// optionally converting an amount of the first one.
//
//encore:api public path=/v1/rates/:from/:to method=GET
func (s *Service) GetRate(ctx context.Context, from, to string, p *GetRateParams) (*RateResponse, error) {
	c, err := s.prices.current(ctx)
	if err != nil {
		return nil, err
	}
	if !c.Has(from) || !c.Has(to) {
		return nil, &errs.Error{Code: errs.NotFound, Message: "asset not in price catalog"}
	}

	r := rate.Between(c, from, to)
	if !r.Valid {
		return nil, &errs.Error{Code: errs.FailedPrecondition, Message: "no exchange rate for the selected assets"}
	}

	resp := &RateResponse{
		Pair: model.ConversionPair{From: from, To: to},
		Rate: r.Value,
	}
	if p == nil || p.Amount == "" {
		return resp, nil
	}

	pair, err := amount.Apply(model.AmountEdit{Origin: model.OriginFrom, Value: p.Amount}, r)
	if err != nil {
		rlog.Debug("rejected rate amount", "amount", p.Amount, "error", err)
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid positive number"}
	}
	resp.Amount = pair.From
	resp.Converted = pair.To
	return resp, nil
}
