package client

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/siapp-sdk/edgedata-go/pkg/edgedata"
)

func TestPendingSet(t *testing.T) {
	p := newPendingSet()
	assert.Equal(t, 1, p.add(5))
	assert.Equal(t, 2, p.add(3))
	assert.Equal(t, 2, p.add(5))
	assert.Equal(t, []edgedata.Handle{5, 3}, p.snapshot())

	got := p.drain()
	assert.Equal(t, []edgedata.Handle{5, 3}, got)
	assert.Equal(t, 0, p.len())

	// Re-adding after a drain starts a new order.
	p.add(3)
	p.add(5)
	assert.Equal(t, []edgedata.Handle{3, 5}, p.snapshot())
}

func TestPendingSetConcurrent(t *testing.T) {
	p := newPendingSet()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for h := range 100 {
				p.add(edgedata.Handle(h%10 + i%2))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 11, p.len())
}
