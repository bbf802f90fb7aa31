package swap

import (
	"context"

	"encore.dev/rlog"
)

// RetrySession loads prices again after the first load failed.
//
//encore:api public path=/v1/sessions/:id/retry method=POST
func (s *Service) RetrySession(ctx context.Context, id string) (*SessionResponse, error) {
	sm, err := s.sessions.get(id)
	if err != nil {
		return nil, err
	}

	if err := sm.Retry(); err != nil {
		rlog.Error("failed to retry session", "session_id", id, "error", err)
		return nil, err
	}
	return sessionResponse(sm.Snapshot()), nil
}

// RefreshSession fetches fresh prices for a ready session.
//
//encore:api public path=/v1/sessions/:id/refresh method=POST
func (s *Service) RefreshSession(ctx context.Context, id string) (*SessionResponse, error) {
	sm, err := s.sessions.get(id)
	if err != nil {
		return nil, err
	}

	if err := sm.Refresh(); err != nil {
		rlog.Error("failed to refresh session", "session_id", id, "error", err)
		return nil, err
	}
	return sessionResponse(sm.Snapshot()), nil
}
