package network

import (
	"testing"
	"time"

	"github.com/automoto/gggames/shared/messages"
	"github.com/automoto/gggames/shared/netconfig"
	"github.com/stretchr/testify/assert"
)

func TestRequestLogAcknowledge(t *testing.T) {
	log := NewRequestLog()
	start := time.Unix(100, 0)

	log.Store(messages.ActionRequest{Sequence: 1, Action: netconfig.ActionAttack}, start)
	log.Store(messages.ActionRequest{Sequence: 2, Action: netconfig.ActionDefence}, start.Add(10*time.Millisecond))
	assert.Len(t, log.Pending(), 2)

	log.Acknowledge(1, start.Add(40*time.Millisecond))
	assert.Equal(t, 40*time.Millisecond, log.RoundTrip())
	pending := log.Pending()
	assert.Len(t, pending, 1)
	assert.Equal(t, uint32(2), pending[0].Request.Sequence)

	// Stale acknowledgements are ignored.
	log.Acknowledge(1, start.Add(time.Second))
	assert.Equal(t, 40*time.Millisecond, log.RoundTrip())

	log.Acknowledge(2, start.Add(60*time.Millisecond))
	assert.Equal(t, 50*time.Millisecond, log.RoundTrip())
	assert.Empty(t, log.Pending())
}

func TestRequestLogOverwrite(t *testing.T) {
	log := NewRequestLog()
	now := time.Unix(0, 1)
	for seq := uint32(1); seq <= requestLogSize+1; seq++ {
		log.Store(messages.ActionRequest{Sequence: seq}, now)
	}

	_, ok := log.Get(1)
	assert.False(t, ok)
	record, ok := log.Get(requestLogSize + 1)
	assert.True(t, ok)
	assert.Equal(t, uint32(requestLogSize+1), record.Request.Sequence)
	assert.Len(t, log.Pending(), requestLogSize)
}
