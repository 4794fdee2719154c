package admin

import (
	"sync"

	"github.com/google/uuid"
)

// mutationGuard serializes mutations per target account. It is the explicit
// version of the dashboard disabling a row's controls while a request is in
// flight: at most one mutation per account id at a time, rejected (not
// queued) when busy.
type mutationGuard struct {
	mu   sync.Mutex
	held map[uuid.UUID]struct{}
}

func newMutationGuard() *mutationGuard {
	return &mutationGuard{held: make(map[uuid.UUID]struct{})}
}

// tryAcquire takes the lock for id, reporting false if already held
func (g *mutationGuard) tryAcquire(id uuid.UUID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.held[id]; busy {
		return false
	}
	g.held[id] = struct{}{}
	return true
}

// release frees the lock for id
func (g *mutationGuard) release(id uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, id)
}
