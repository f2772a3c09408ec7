package action

import (
	"sync"
	"time"
)

// ManualClock is advanced explicitly. The server advances it once per
// simulation step so every controller in a tick sees the same time.
type ManualClock struct {
	mu  sync.RWMutex
	now float64
}

func (c *ManualClock) Now() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

func (c *ManualClock) Advance(dt float64) {
	c.mu.Lock()
	c.now += dt
	c.mu.Unlock()
}

func (c *ManualClock) Set(now float64) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

// WallClock measures real time since it was created.
type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

func (c *WallClock) Now() float64 {
	return time.Since(c.start).Seconds()
}
