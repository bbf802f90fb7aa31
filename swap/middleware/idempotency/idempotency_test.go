package idempotency

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encore.dev"
	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/storage/cache"

	"github.com/dugiahuy/pave-swap/swap/model"
)

type submitResponse struct {
	SessionID string `json:"session_id"`
	State     string `json:"state"`
}

// memoryStore keeps entries in a map so the middleware can be tested without
// a cache cluster.
type memoryStore struct {
	mu     sync.Mutex
	data   map[model.IdempotencyKey]model.IdempotencyCacheEntry
	getErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[model.IdempotencyKey]model.IdempotencyCacheEntry{}}
}

func (m *memoryStore) Get(_ context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return model.IdempotencyCacheEntry{}, m.getErr
	}
	entry, ok := m.data[key]
	if !ok {
		return model.IdempotencyCacheEntry{}, cache.Miss
	}
	return entry, nil
}

func (m *memoryStore) Set(_ context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = val
	return nil
}

func (m *memoryStore) Delete(_ context.Context, keys ...model.IdempotencyKey) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	deleted := 0
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			deleted++
		}
	}
	return deleted, nil
}

func useMemoryStore(t *testing.T) *memoryStore {
	store := newMemoryStore()
	previous := entries
	entries = store
	t.Cleanup(func() { entries = previous })
	return store
}

// createMiddlewareRequest wraps an encore.Request the way the runtime would.
func createMiddlewareRequest(ctx context.Context, path string, headers http.Header, payload interface{}) middleware.Request {
	encoreReq := &encore.Request{
		Path:    path,
		Headers: headers,
		Payload: payload,
		API: &encore.APIDesc{
			ResponseType: reflect.TypeOf(&submitResponse{}),
		},
	}
	return middleware.NewRequest(ctx, encoreReq)
}

func TestExtractIdempotencyKey(t *testing.T) {
	testCases := []struct {
		name          string
		headers       http.Header
		expectedKey   string
		expectedError string
	}{
		{
			name:        "valid_key",
			headers:     http.Header{Header: []string{"test-key-123"}},
			expectedKey: "test-key-123",
		},
		{
			name:        "valid_key_with_special_chars",
			headers:     http.Header{Header: []string{"test-key_123-abc.def"}},
			expectedKey: "test-key_123-abc.def",
		},
		{
			name:          "missing_header",
			headers:       http.Header{},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "empty_header_value",
			headers:       http.Header{Header: []string{""}},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "whitespace_only_header",
			headers:       http.Header{Header: []string{"   "}},
			expectedError: "X-Idempotency-Key header is required",
		},
		{
			name:          "too_long",
			headers:       http.Header{Header: []string{strings.Repeat("k", 256)}},
			expectedError: "too long",
		},
		{
			name:        "multiple_header_values_takes_first",
			headers:     http.Header{Header: []string{"first-key", "second-key"}},
			expectedKey: "first-key",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := createMiddlewareRequest(context.Background(), "/test", tc.headers, nil)

			key, err := extractIdempotencyKey(req)

			if tc.expectedError != "" {
				require.NotNil(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				assert.Empty(t, key)
			} else {
				assert.Nil(t, err)
				assert.Equal(t, tc.expectedKey, key)
			}
		})
	}
}

func TestHashing(t *testing.T) {
	assert.Equal(t, "", hashing(nil))
	assert.Equal(t, "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08", hashing([]byte("test")))
	assert.Equal(t, hashing([]byte(`{"a":1}`)), hashing([]byte(`{"a":1}`)))
	assert.NotEqual(t, hashing([]byte(`{"a":1}`)), hashing([]byte(`{"a":2}`)))
}

func TestValidateBodyHash(t *testing.T) {
	testCases := []struct {
		name          string
		cachedHash    string
		bodyHash      string
		expectedError string
	}{
		{name: "matching_hashes", cachedHash: "abc123", bodyHash: "abc123"},
		{name: "empty_cached_hash_allows_any", cachedHash: "", bodyHash: "abc123"},
		{name: "empty_new_hash_allows_any", cachedHash: "abc123", bodyHash: ""},
		{
			name:          "conflicting_hashes",
			cachedHash:    "abc123",
			bodyHash:      "xyz789",
			expectedError: "idempotency key conflict",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateBodyHash(model.IdempotencyCacheEntry{RequestBodyHash: tc.cachedHash}, tc.bodyHash)

			if tc.expectedError != "" {
				require.NotNil(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}

func TestIdempotencyMiddleware_MissingKey(t *testing.T) {
	useMemoryStore(t)
	req := createMiddlewareRequest(context.Background(), "/v1/sessions/s1/submit", http.Header{}, nil)

	nextCalled := false
	response := IdempotencyMiddleware(req, func(req middleware.Request) middleware.Response {
		nextCalled = true
		return middleware.Response{Payload: &submitResponse{}}
	})

	require.NotNil(t, response.Err)
	assert.Contains(t, response.Err.Error(), "X-Idempotency-Key header is required")
	assert.False(t, nextCalled)
}

func TestIdempotencyMiddleware_ReplaysCompletedResponse(t *testing.T) {
	store := useMemoryStore(t)
	headers := http.Header{Header: []string{"key-1"}}

	calls := 0
	next := func(req middleware.Request) middleware.Response {
		calls++
		return middleware.Response{Payload: &submitResponse{SessionID: "s1", State: "submitting"}}
	}

	first := IdempotencyMiddleware(createMiddlewareRequest(context.Background(), "/v1/sessions/s1/submit", headers, nil), next)
	second := IdempotencyMiddleware(createMiddlewareRequest(context.Background(), "/v1/sessions/s1/submit", headers, nil), next)

	require.Nil(t, first.Err)
	require.Nil(t, second.Err)
	assert.Equal(t, 1, calls, "the handler runs once per key")
	assert.Equal(t, &submitResponse{SessionID: "s1", State: "submitting"}, second.Payload)

	entry := store.data[model.IdempotencyKey{Resource: "/v1/sessions/s1/submit", Key: "key-1"}]
	assert.Equal(t, model.IdempotencyStatusCompleted, entry.Status)
}

func TestIdempotencyMiddleware_FailedRequestCanBeRetried(t *testing.T) {
	store := useMemoryStore(t)
	headers := http.Header{Header: []string{"key-1"}}

	calls := 0
	next := func(req middleware.Request) middleware.Response {
		calls++
		if calls == 1 {
			return middleware.Response{Err: &errs.Error{Code: errs.InvalidArgument, Message: "please enter a valid amount"}}
		}
		return middleware.Response{Payload: &submitResponse{SessionID: "s1", State: "submitting"}}
	}

	first := IdempotencyMiddleware(createMiddlewareRequest(context.Background(), "/v1/sessions/s1/submit", headers, nil), next)
	require.NotNil(t, first.Err)
	assert.Empty(t, store.data)

	second := IdempotencyMiddleware(createMiddlewareRequest(context.Background(), "/v1/sessions/s1/submit", headers, nil), next)
	assert.Nil(t, second.Err)
	assert.Equal(t, 2, calls)
}

func TestIdempotencyMiddleware_ProcessingEntryIsRejected(t *testing.T) {
	store := useMemoryStore(t)
	key := model.IdempotencyKey{Resource: "/v1/sessions/s1/submit", Key: "key-1"}
	store.data[key] = model.IdempotencyCacheEntry{Status: model.IdempotencyStatusProcessing}

	nextCalled := false
	response := IdempotencyMiddleware(
		createMiddlewareRequest(context.Background(), key.Resource, http.Header{Header: []string{"key-1"}}, nil),
		func(req middleware.Request) middleware.Response {
			nextCalled = true
			return middleware.Response{}
		},
	)

	require.NotNil(t, response.Err)
	assert.Equal(t, errs.Aborted, errs.Code(response.Err))
	assert.False(t, nextCalled)
}

func TestIdempotencyMiddleware_BodyConflict(t *testing.T) {
	useMemoryStore(t)
	headers := http.Header{Header: []string{"key-1"}}
	next := func(req middleware.Request) middleware.Response {
		return middleware.Response{Payload: &submitResponse{SessionID: "s1"}}
	}

	first := IdempotencyMiddleware(createMiddlewareRequest(context.Background(), "/v1/sessions/s1/submit", headers, map[string]string{"note": "a"}), next)
	require.Nil(t, first.Err)

	second := IdempotencyMiddleware(createMiddlewareRequest(context.Background(), "/v1/sessions/s1/submit", headers, map[string]string{"note": "b"}), next)
	require.NotNil(t, second.Err)
	assert.Contains(t, second.Err.Error(), "idempotency key conflict")
}

func TestIdempotencyMiddleware_CacheFailure(t *testing.T) {
	store := useMemoryStore(t)
	store.getErr = errors.New("cluster down")

	response := IdempotencyMiddleware(
		createMiddlewareRequest(context.Background(), "/v1/sessions/s1/submit", http.Header{Header: []string{"key-1"}}, nil),
		func(req middleware.Request) middleware.Response { return middleware.Response{} },
	)

	require.NotNil(t, response.Err)
	assert.Equal(t, errs.Internal, errs.Code(response.Err))
}
