package audio

import (
	"context"
	"sync"
)

// MockPlayer is a deterministic Player for testing. It records every
// clip it is asked to play and returns canned errors in FIFO order.
type MockPlayer struct {
	mu      sync.Mutex
	errs    []error
	Played  [][]byte
	Volumes []float64
}

// NewMockPlayer creates a MockPlayer that returns the given errors, one
// per Play call. Once the queue is drained Play succeeds.
func NewMockPlayer(errs ...error) *MockPlayer {
	return &MockPlayer{errs: errs}
}

func (m *MockPlayer) Play(ctx context.Context, clip []byte, volume float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	m.Played = append(m.Played, clip)
	m.Volumes = append(m.Volumes, volume)

	if len(m.errs) == 0 {
		return nil
	}
	err := m.errs[0]
	m.errs = m.errs[1:]
	return err
}

// PlayCount returns the number of Play calls made.
func (m *MockPlayer) PlayCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Played)
}
