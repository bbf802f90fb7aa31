package swap

import (
	"context"

	"encore.dev/rlog"
)

// CreateSession opens a conversion session and starts loading its prices.
//
//encore:api public path=/v1/sessions method=POST
func (s *Service) CreateSession(ctx context.Context) (*SessionResponse, error) {
	sm := s.sessions.create()
	sm.Load()

	rlog.Info("session created", "session_id", sm.ID())
	return sessionResponse(sm.Snapshot()), nil
}
