package speech

import "context"

// Engine is a single synthesis backend. Speak blocks until the
// utterance finishes or the context is cancelled.
type Engine interface {
	Speak(ctx context.Context, text string) error

	// Name identifies the backend in logs and events.
	Name() string
}
