package domain

import (
	"errors"

	"encore.dev/beta/errs"
)

// ErrorKind classifies conversion errors independently of their transport code.
type ErrorKind string

const (
	KindFeedUnavailable    ErrorKind = "feed_unavailable"
	KindInvalidAmount      ErrorKind = "invalid_amount"
	KindMissingSelection   ErrorKind = "missing_selection"
	KindSameAsset          ErrorKind = "same_asset"
	KindNoRate             ErrorKind = "no_rate"
	KindSettlementFailed   ErrorKind = "settlement_failed"
	KindSubmissionInFlight ErrorKind = "submission_in_flight"
	KindNotReady           ErrorKind = "not_ready"
	KindUnknownAsset       ErrorKind = "unknown_asset"
)

const kindMetaKey = "kind"

func newError(kind ErrorKind, code errs.ErrCode, message string) *errs.Error {
	return &errs.Error{
		Code:    code,
		Message: message,
		Meta:    errs.Metadata{kindMetaKey: string(kind)},
	}
}

// KindOf returns the kind carried by err, or "" when err was not produced by
// the conversion state machine.
func KindOf(err error) ErrorKind {
	var e *errs.Error
	if !errors.As(err, &e) {
		return ""
	}
	kind, _ := e.Meta[kindMetaKey].(string)
	return ErrorKind(kind)
}

func errInvalidAmountEdit() error {
	return newError(KindInvalidAmount, errs.InvalidArgument, "invalid positive number")
}

func errInvalidAmountSubmit() error {
	return newError(KindInvalidAmount, errs.InvalidArgument, "please enter a valid amount")
}

func errAmountTooSmall() error {
	return newError(KindInvalidAmount, errs.InvalidArgument, "amount is too small to swap")
}

func errMissingSelection() error {
	return newError(KindMissingSelection, errs.InvalidArgument, "please select both assets")
}

func errSameAsset() error {
	return newError(KindSameAsset, errs.InvalidArgument, "cannot swap the same asset")
}

func errNoRate() error {
	return newError(KindNoRate, errs.FailedPrecondition, "no exchange rate for the selected assets")
}

func errSettlementFailed() error {
	return newError(KindSettlementFailed, errs.Internal, "settlement failed, please try again")
}

func errSubmissionInFlight() error {
	return newError(KindSubmissionInFlight, errs.Aborted, "a swap is already being processed")
}

func errNotReady(message string) error {
	return newError(KindNotReady, errs.FailedPrecondition, message)
}

func errUnknownAsset() error {
	return newError(KindUnknownAsset, errs.NotFound, "asset not in price catalog")
}

func errFeedUnavailable(message string) error {
	return newError(KindFeedUnavailable, errs.Unavailable, message)
}
