package swap

import (
	"context"
)

//encore:api public path=/v1/sessions/:id/direction method=POST
func (s *Service) SwapDirection(ctx context.Context, id string) (*SessionResponse, error) {
	sm, err := s.sessions.get(id)
	if err != nil {
		return nil, err
	}

	if err := sm.SwapDirection(); err != nil {
		return nil, err
	}
	return sessionResponse(sm.Snapshot()), nil
}
