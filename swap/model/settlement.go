package model

import (
	"time"
)

type SettlementRequest struct {
	SessionID      string         `json:"session_id" validate:"required"`
	IdempotencyKey string         `json:"idempotency_key" validate:"required,max=255"`
	Pair           ConversionPair `json:"pair"`
	FromAmount     string         `json:"from_amount" validate:"required,max=64"`
	ToAmount       string         `json:"to_amount" validate:"required,max=64"`
	Rate           float64        `json:"rate" validate:"gt=0"`
}

type Settlement struct {
	ID             int64          `json:"id"`
	SessionID      string         `json:"session_id"`
	IdempotencyKey string         `json:"idempotency_key"`
	Pair           ConversionPair `json:"pair"`
	FromAmount     string         `json:"from_amount"`
	ToAmount       string         `json:"to_amount"`
	Rate           float64        `json:"rate"`
	SettledAt      time.Time      `json:"settled_at"`
}
