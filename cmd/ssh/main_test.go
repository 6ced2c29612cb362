package main

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeTracker(t *testing.T) {
	st := newSizeTracker(80, 24)

	w, h, err := st.getSize()
	assert.NoError(t, err)
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			st.update(100+i, 40)
			_, _, _ = st.getSize()
		}(i)
	}
	wg.Wait()

	st.update(132, 43)
	w, h, _ = st.getSize()
	assert.Equal(t, 132, w)
	assert.Equal(t, 43, h)
}

func TestSessionRandIndependent(t *testing.T) {
	g := &sessionGames{seed: 42}

	a, b := g.sessionRand(1), g.sessionRand(2)
	assert.NotEqual(t, a.Int63(), b.Int63())

	// Same session id and seed reproduce the same sequence.
	assert.Equal(t, g.sessionRand(3).Int63(), g.sessionRand(3).Int63())
}
