package settlement

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dugiahuy/pave-swap/swap/mocks/store/settlements_repo"
	"github.com/dugiahuy/pave-swap/swap/model"
	"github.com/dugiahuy/pave-swap/swap/store/settlements"
)

func validRequest() model.SettlementRequest {
	return model.SettlementRequest{
		SessionID:      "session-1",
		IdempotencyKey: "key-1",
		Pair:           model.ConversionPair{From: "ETH", To: "USDC"},
		FromAmount:     "2",
		ToAmount:       "6200.000000",
		Rate:           3100,
	}
}

func dbSettlement(id int64, sessionID string) settlements.Settlement {
	return settlements.Settlement{
		ID:             id,
		SessionID:      sessionID,
		IdempotencyKey: "key-1",
		FromAsset:      "ETH",
		ToAsset:        "USDC",
		FromAmount:     "2",
		ToAmount:       "6200.000000",
		Rate:           3100,
		SettledAt:      pgtype.Timestamptz{Time: time.Date(2023, 8, 29, 7, 10, 30, 0, time.UTC), Valid: true},
	}
}

func TestRecordSettlement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := settlements_repo.NewMockQuerier(ctrl)
	business := &business{settlementRepo: mockRepo, validate: validator.New()}

	testCases := []struct {
		name          string
		input         model.SettlementRequest
		expectCreate  bool
		createReturn  settlements.Settlement
		createError   error
		expectLookup  bool
		lookupReturn  settlements.Settlement
		lookupError   error
		expectedID    int64
		expectedError string
		expectSuccess bool
	}{
		{
			name:          "happy_case",
			input:         validRequest(),
			expectCreate:  true,
			createReturn:  dbSettlement(1, "session-1"),
			expectedID:    1,
			expectSuccess: true,
		},
		{
			name:          "duplicate_returns_existing",
			input:         validRequest(),
			expectCreate:  true,
			createError:   &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			expectLookup:  true,
			lookupReturn:  dbSettlement(9, "session-1"),
			expectedID:    9,
			expectSuccess: true,
		},
		{
			name:          "duplicate_from_other_session",
			input:         validRequest(),
			expectCreate:  true,
			createError:   &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			expectLookup:  true,
			lookupReturn:  dbSettlement(9, "session-2"),
			expectedError: "idempotency key already used",
		},
		{
			name:          "duplicate_lookup_fails",
			input:         validRequest(),
			expectCreate:  true,
			createError:   &pgconn.PgError{Code: pgerrcode.UniqueViolation},
			expectLookup:  true,
			lookupError:   pgx.ErrNoRows,
			expectedError: "failed to load duplicated settlement",
		},
		{
			name:          "general_error",
			input:         validRequest(),
			expectCreate:  true,
			createError:   assert.AnError,
			expectedError: "failed to record settlement",
		},
		{
			name: "missing_idempotency_key",
			input: func() model.SettlementRequest {
				r := validRequest()
				r.IdempotencyKey = ""
				return r
			}(),
			expectedError: "IdempotencyKey",
		},
		{
			name: "zero_rate",
			input: func() model.SettlementRequest {
				r := validRequest()
				r.Rate = 0
				return r
			}(),
			expectedError: "Rate",
		},
		{
			name: "same_asset",
			input: func() model.SettlementRequest {
				r := validRequest()
				r.Pair.To = "ETH"
				return r
			}(),
			expectedError: "two different assets",
		},
		{
			name: "non_positive_amount",
			input: func() model.SettlementRequest {
				r := validRequest()
				r.FromAmount = "-5"
				return r
			}(),
			expectedError: "must be positive",
		},
		{
			name: "derived_amount_rounded_to_zero",
			input: func() model.SettlementRequest {
				r := validRequest()
				r.Pair = model.ConversionPair{From: "USDC", To: "ETH"}
				r.FromAmount = "0.001"
				r.ToAmount = "0.000000"
				return r
			}(),
			expectedError: "must be positive",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.expectCreate {
				mockRepo.EXPECT().
					CreateSettlement(gomock.Any(), settlements.CreateSettlementParams{
						SessionID:      tc.input.SessionID,
						IdempotencyKey: tc.input.IdempotencyKey,
						FromAsset:      tc.input.Pair.From,
						ToAsset:        tc.input.Pair.To,
						FromAmount:     tc.input.FromAmount,
						ToAmount:       tc.input.ToAmount,
						Rate:           tc.input.Rate,
					}).
					Return(tc.createReturn, tc.createError).
					Times(1)
			}
			if tc.expectLookup {
				mockRepo.EXPECT().
					GetSettlementByIdempotencyKey(gomock.Any(), tc.input.IdempotencyKey).
					Return(tc.lookupReturn, tc.lookupError).
					Times(1)
			}

			result, err := business.RecordSettlement(context.Background(), tc.input)

			if tc.expectSuccess {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tc.expectedID, result.ID)
				assert.Equal(t, model.ConversionPair{From: "ETH", To: "USDC"}, result.Pair)
				assert.Equal(t, "6200.000000", result.ToAmount)
			} else {
				assert.Error(t, err)
				assert.Nil(t, result)
				assert.Contains(t, err.Error(), tc.expectedError)
			}
		})
	}
}
