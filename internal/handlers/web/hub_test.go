package web

import (
	"io"
	"testing"

	"github.com/KirkDiggler/sylk/internal/services/roulette"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubDropsSlowClients(t *testing.T) {
	h := newHub(log.New(io.Discard))

	fast := &client{send: make(chan roulette.Event, 2)}
	slow := &client{send: make(chan roulette.Event, 1)}
	h.add(fast)
	h.add(slow)

	h.broadcast(roulette.Event{Type: roulette.EventSpinStarted})
	h.broadcast(roulette.Event{Type: roulette.EventSlotsRevealed})

	assert.Equal(t, 1, h.count())
	assert.Equal(t, roulette.EventSpinStarted, (<-fast.send).Type)
	assert.Equal(t, roulette.EventSlotsRevealed, (<-fast.send).Type)

	assert.Equal(t, roulette.EventSpinStarted, (<-slow.send).Type)
	_, open := <-slow.send
	assert.False(t, open)

	h.remove(fast)
	_, open = <-fast.send
	require.False(t, open)
	assert.Zero(t, h.count())

	// removing twice is a no-op
	h.remove(fast)
}
