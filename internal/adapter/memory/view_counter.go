package memory

import (
	"context"
	"sync"
)

// ViewCounter implements port.ViewCounter in process memory.
type ViewCounter struct {
	mu     sync.Mutex
	counts map[string]int64
}

// NewViewCounter returns an empty counter.
func NewViewCounter() *ViewCounter {
	return &ViewCounter{counts: make(map[string]int64)}
}

// Set stores n for the device.
func (c *ViewCounter) Set(deviceID string, n int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[deviceID] = n
}

func (c *ViewCounter) Load(_ context.Context, deviceID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[deviceID], nil
}

func (c *ViewCounter) Increment(_ context.Context, deviceID string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[deviceID]++
	return c.counts[deviceID], nil
}
