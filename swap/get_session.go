package swap

import (
	"context"
)

//encore:api public path=/v1/sessions/:id method=GET
func (s *Service) GetSession(ctx context.Context, id string) (*SessionResponse, error) {
	sm, err := s.sessions.get(id)
	if err != nil {
		return nil, err
	}
	return sessionResponse(sm.Snapshot()), nil
}
