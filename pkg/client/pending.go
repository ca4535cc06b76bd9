package client

import (
	"sync"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
)

// pendingSet is the deduplicated, insertion-ordered set of write handles
// staged since the last SyncWrite.
type pendingSet struct {
	mu    sync.Mutex
	order []edgedata.Handle
	seen  map[edgedata.Handle]struct{}
}

func newPendingSet() *pendingSet {
	return &pendingSet{seen: make(map[edgedata.Handle]struct{})}
}

// add inserts h unless already present and returns the set size.
func (p *pendingSet) add(h edgedata.Handle) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.seen[h]; !ok {
		p.seen[h] = struct{}{}
		p.order = append(p.order, h)
	}
	return len(p.order)
}

// snapshot returns a copy of the handles in insertion order.
func (p *pendingSet) snapshot() []edgedata.Handle {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]edgedata.Handle, len(p.order))
	copy(out, p.order)
	return out
}

// drain returns the handles and empties the set in one step.
func (p *pendingSet) drain() []edgedata.Handle {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := p.order
	p.order = nil
	clear(p.seen)
	return out
}

func (p *pendingSet) reset() {
	p.drain()
}

func (p *pendingSet) len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.order)
}
