package swap

import (
	"time"

	"github.com/dugiahuy/pave-swap/swap/model"
)

type AssetView struct {
	Symbol     string    `json:"symbol"`
	Price      float64   `json:"price"`
	ObservedAt time.Time `json:"observed_at"`
	Icon       string    `json:"icon"`
	Glyph      string    `json:"glyph"`
}

// SessionView is the client facing form of a conversion session.
type SessionView struct {
	ID              string                `json:"id"`
	State           model.ConversionState `json:"state"`
	Failure         *string               `json:"failure,omitempty"`
	Assets          []AssetView           `json:"assets"`
	Pair            model.ConversionPair  `json:"pair"`
	Amounts         model.AmountPair      `json:"amounts"`
	Rate            *float64              `json:"rate,omitempty"`
	ValidationError *string               `json:"validation_error,omitempty"`
	ValidationKind  *string               `json:"validation_kind,omitempty"`
	Submitting      bool                  `json:"submitting"`
	LastSettlement  *model.Settlement     `json:"last_settlement,omitempty"`
}

type SessionResponse struct {
	Session SessionView `json:"session"`
}

func assetViews(c model.Catalog) []AssetView {
	views := make([]AssetView, 0, c.Len())
	for _, p := range c.Prices {
		views = append(views, AssetView{
			Symbol:     p.Asset,
			Price:      p.Price,
			ObservedAt: p.ObservedAt,
			Icon:       model.IconPath(p.Asset),
			Glyph:      model.Glyph(p.Asset),
		})
	}
	return views
}

func toSessionView(c model.Conversion) SessionView {
	view := SessionView{
		ID:              c.SessionID,
		State:           c.State,
		Failure:         c.Failure,
		Assets:          assetViews(c.Catalog),
		Pair:            c.Pair,
		Amounts:         c.Amounts,
		ValidationError: c.ValidationError,
		ValidationKind:  c.ValidationKind,
		Submitting:      c.Submission == model.SubmissionStateSubmitting,
		LastSettlement:  c.LastSettlement,
	}
	if c.Rate.Valid {
		rate := c.Rate.Value
		view.Rate = &rate
	}
	return view
}

func sessionResponse(c model.Conversion) *SessionResponse {
	return &SessionResponse{Session: toSessionView(c)}
}
