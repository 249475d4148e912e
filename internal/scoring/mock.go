package scoring

import (
	"context"
	"sync"
)

// MockResult is a canned result for the MockScorer.
type MockResult struct {
	Feedback *Feedback
	Err      error
}

// MockScorer is a deterministic Scorer for testing. It returns canned results
// in FIFO order and records every call.
type MockScorer struct {
	mu      sync.Mutex
	results []MockResult

	// Calls records the (endpoint, answer) pairs passed to Score.
	Calls [][2]string
}

var _ Scorer = (*MockScorer)(nil)

// NewMockScorer creates a MockScorer with the given canned results.
func NewMockScorer(results ...MockResult) *MockScorer {
	return &MockScorer{results: results}
}

// Score returns the next canned result, or a transport error when the queue
// is empty.
func (m *MockScorer) Score(_ context.Context, endpoint, answer string) (*Feedback, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, [2]string{endpoint, answer})

	if len(m.results) == 0 {
		return nil, &ErrTransport{Err: errNoCannedResult}
	}
	r := m.results[0]
	m.results = m.results[1:]
	if r.Err != nil {
		return nil, r.Err
	}
	return r.Feedback, nil
}

// AddResult appends a canned result to the queue.
func (m *MockScorer) AddResult(r MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
}

type mockErr string

func (e mockErr) Error() string { return string(e) }

const errNoCannedResult = mockErr("mock scorer: no canned result")
