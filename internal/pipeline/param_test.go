package pipeline

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParam_Poll(t *testing.T) {
	p := NewParam(0.5)

	v, changed := p.Poll()
	assert.InDelta(t, 0.5, v, 0)
	assert.False(t, changed)

	p.Store(2)
	v, changed = p.Poll()
	assert.InDelta(t, 2, v, 0)
	assert.True(t, changed)

	_, changed = p.Poll()
	assert.False(t, changed)

	// Storing the same value still counts as a change.
	p.Store(2)
	_, changed = p.Poll()
	assert.True(t, changed)
	assert.InDelta(t, 2, p.Load(), 0)
}

func TestParam_Concurrent(t *testing.T) {
	const writes = 10000
	p := NewParam(0)

	var wg sync.WaitGroup
	wg.Go(func() {
		for i := 1; i <= writes; i++ {
			p.Store(float32(i))
		}
	})

	var last float32
	for last < writes {
		v, changed := p.Poll()
		if changed {
			assert.GreaterOrEqual(t, v, last, "values must not go backwards")
			last = v
		}
	}
	wg.Wait()
	assert.InDelta(t, writes, p.Load(), 0)
}
