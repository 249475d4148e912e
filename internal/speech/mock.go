package speech

import (
	"context"
	"sync"
)

// MockEngine is a deterministic Engine for testing. It records every
// utterance and returns canned errors in FIFO order.
type MockEngine struct {
	name string

	mu     sync.Mutex
	errs   []error
	Spoken []string

	// Block, when set, makes Speak wait for context cancellation,
	// simulating a long utterance.
	Block bool
}

// NewMockEngine creates a MockEngine that returns the given errors,
// one per Speak call. Once the queue is drained Speak succeeds.
func NewMockEngine(name string, errs ...error) *MockEngine {
	return &MockEngine{name: name, errs: errs}
}

func (m *MockEngine) Name() string { return m.name }

func (m *MockEngine) Speak(ctx context.Context, text string) error {
	m.mu.Lock()
	m.Spoken = append(m.Spoken, text)
	var err error
	if len(m.errs) > 0 {
		err = m.errs[0]
		m.errs = m.errs[1:]
	}
	block := m.Block
	m.mu.Unlock()

	if err != nil {
		return err
	}
	if block {
		<-ctx.Done()
		return ctx.Err()
	}
	return nil
}

// SpokenTexts returns a copy of everything this engine was asked to
// speak.
func (m *MockEngine) SpokenTexts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Spoken))
	copy(out, m.Spoken)
	return out
}
