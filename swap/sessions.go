package swap

import (
	"sync"

	"encore.dev/beta/errs"
	"github.com/google/uuid"
	"github.com/marstr/collection/v2"

	"github.com/dugiahuy/pave-swap/swap/domain"
)

// sessionRegistry keeps the most recently used conversion sessions. Sessions
// pushed out of the cache are gone; asking for them again is NotFound.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions *collection.LRUCache[string, *domain.ConversionStateMachine]
	factory  func(id string) *domain.ConversionStateMachine
}

func newSessionRegistry(capacity uint, factory func(id string) *domain.ConversionStateMachine) *sessionRegistry {
	return &sessionRegistry{
		sessions: collection.NewLRUCache[string, *domain.ConversionStateMachine](capacity),
		factory:  factory,
	}
}

// create registers a new session. The caller starts its first load.
func (r *sessionRegistry) create() *domain.ConversionStateMachine {
	sm := r.factory(uuid.NewString())

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions.Put(sm.ID(), sm)
	return sm
}

func (r *sessionRegistry) get(id string) (*domain.ConversionStateMachine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sm, ok := r.sessions.Get(id)
	if !ok {
		return nil, &errs.Error{Code: errs.NotFound, Message: "session not found"}
	}
	return sm, nil
}
