// Package idempotency makes swap submissions safe to repeat. A submission is
// keyed by its endpoint path (which carries the session id) and the client's
// X-Idempotency-Key header.
package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"github.com/dugiahuy/pave-swap/swap/model"
)

const (
	Header    = "X-Idempotency-Key"
	maxKeyLen = 255
)

//encore:middleware target=tag:idempotency
func IdempotencyMiddleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := extractIdempotencyKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	sub := submission{
		ctx:         req.Context(),
		key:         model.IdempotencyKey{Resource: req.Data().Path, Key: key},
		fingerprint: fingerprint(req.Data().Payload),
	}

	entry, getErr := entries.Get(sub.ctx, sub.key)
	switch {
	case errors.Is(getErr, cache.Miss):
		return sub.run(req, next)
	case getErr != nil:
		rlog.Error("idempotency lookup failed", "resource", sub.key.Resource, "key", key, "error", getErr)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "Failed to check idempotency"}}
	}

	if err := validateBodyHash(entry, sub.fingerprint); err != nil {
		return middleware.Response{Err: err}
	}

	switch entry.Status {
	case model.IdempotencyStatusProcessing:
		rlog.Info("submission already in progress", "resource", sub.key.Resource, "key", key)
		return middleware.Response{Err: &errs.Error{Code: errs.Aborted, Message: "Request is already being processed."}}
	case model.IdempotencyStatusCompleted:
		if resp, ok := replay(req, entry); ok {
			rlog.Info("replaying submission response", "resource", sub.key.Resource, "key", key)
			return resp
		}
		// unreadable cached payload: run the handler again
		return next(req)
	default:
		rlog.Warn("unknown idempotency status", "key", key, "status", entry.Status)
		return next(req)
	}
}

// submission is one first-seen request moving through claim, handler and
// settle-or-forget.
type submission struct {
	ctx         context.Context
	key         model.IdempotencyKey
	fingerprint string
}

func (s submission) run(req middleware.Request, next middleware.Next) middleware.Response {
	if err := s.claim(); err != nil {
		return middleware.Response{Err: err}
	}

	resp := next(req)
	if resp.Err != nil {
		// a rejected submission may be retried with the same key
		s.forget()
		return resp
	}
	s.settle(resp)
	return resp
}

func (s submission) claim() *errs.Error {
	err := entries.Set(s.ctx, s.key, model.IdempotencyCacheEntry{
		Status:          model.IdempotencyStatusProcessing,
		RequestBodyHash: s.fingerprint,
		CreatedAt:       time.Now(),
	})
	if err != nil {
		rlog.Error("failed to claim idempotency key", "key", s.key.Key, "error", err)
		return &errs.Error{Code: errs.Internal, Message: "Failed to mark request as processing"}
	}
	return nil
}

func (s submission) forget() {
	if _, err := entries.Delete(s.ctx, s.key); err != nil {
		rlog.Error("failed to release idempotency key", "key", s.key.Key, "error", err)
	}
}

func (s submission) settle(resp middleware.Response) {
	now := time.Now()
	entry := model.IdempotencyCacheEntry{
		Status:          model.IdempotencyStatusCompleted,
		RequestBodyHash: s.fingerprint,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if resp.Payload != nil {
		payload, err := json.Marshal(resp.Payload)
		if err != nil {
			rlog.Error("failed to encode submission response", "key", s.key.Key, "error", err)
			return
		}
		entry.Response = payload
	}

	if err := entries.Set(s.ctx, s.key, entry); err != nil {
		rlog.Error("failed to store submission response", "key", s.key.Key, "error", err)
		return
	}
	rlog.Debug("submission response stored", "key", s.key.Key)
}

// replay decodes a cached payload into the endpoint's response type.
func replay(req middleware.Request, entry model.IdempotencyCacheEntry) (middleware.Response, bool) {
	api := req.Data().API
	if len(entry.Response) == 0 || api == nil || api.ResponseType == nil {
		return middleware.Response{}, false
	}

	payload := reflect.New(api.ResponseType.Elem()).Interface()
	if err := json.Unmarshal(entry.Response, payload); err != nil {
		rlog.Error("cached submission response is unreadable", "error", err)
		return middleware.Response{}, false
	}
	return middleware.Response{Payload: payload}, true
}

func extractIdempotencyKey(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(Header))
	}

	switch {
	case key == "":
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	case len(key) > maxKeyLen:
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is too long"}
	}
	return key, nil
}

// validateBodyHash rejects a key reused with a different request body. An
// empty fingerprint on either side matches anything.
func validateBodyHash(entry model.IdempotencyCacheEntry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

func fingerprint(payload any) string {
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to encode submission body", "error", err)
		return ""
	}
	return hashing(body)
}

func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
