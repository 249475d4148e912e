package store

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// SpeechRecorder adapts EventRepo to the speech service's recorder
// hook. Recording failures are logged, never surfaced; losing a speech
// event must not interrupt narration.
type SpeechRecorder struct {
	repo EventRepo
	log  zerolog.Logger
}

// NewSpeechRecorder creates a recorder appending to repo.
func NewSpeechRecorder(repo EventRepo, log zerolog.Logger) *SpeechRecorder {
	return &SpeechRecorder{repo: repo, log: log}
}

func (sr *SpeechRecorder) RecordSpeech(ctx context.Context, backend string, latency time.Duration, success, fallback bool) {
	err := sr.repo.AppendSpeech(ctx, SpeechEventData{
		Backend:   backend,
		LatencyMs: latency.Milliseconds(),
		Success:   success,
		Fallback:  fallback,
	})
	if err != nil {
		sr.log.Warn().Err(err).Msg("recording speech event failed")
	}
}
