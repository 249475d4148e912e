package speech

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/bookworm/internal/audio"
)

// Recorder receives a record of every synthesis attempt. The store
// implements this; tests use a stub.
type Recorder interface {
	RecordSpeech(ctx context.Context, backend string, latency time.Duration, success, fallback bool)
}

// Service speaks feedback text, falling back from the remote voice to
// the local synthesizer. At most one utterance plays at a time: a new
// Speak call cuts off whatever is still playing.
type Service struct {
	engines  []Engine
	log      zerolog.Logger
	recorder Recorder

	mu       sync.Mutex
	cancel   context.CancelFunc
	gen      uint64
	speaking bool
}

// NewService builds a Service for the configured backend. The remote
// engine needs both an API key and an audio player; in "auto" mode a
// missing piece quietly drops that engine rather than failing. A
// Service with no engines is valid and speaks nothing.
func NewService(cfg Config, player audio.Player, log zerolog.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var engines []Engine

	wantRemote := cfg.Backend == "elevenlabs" || cfg.Backend == "auto"
	wantLocal := cfg.Backend == "local" || cfg.Backend == "auto"

	if wantRemote {
		remote, err := NewElevenLabsEngine(cfg.ElevenLabs, cfg.Retry, player)
		switch {
		case err == nil:
			engines = append(engines, remote)
		case cfg.Backend == "elevenlabs":
			return nil, err
		default:
			log.Debug().Err(err).Msg("remote speech unavailable")
		}
	}

	if wantLocal {
		local, err := NewLocalEngine(cfg.Local)
		switch {
		case err == nil:
			engines = append(engines, local)
		case cfg.Backend == "local":
			return nil, err
		default:
			log.Debug().Err(err).Msg("local speech unavailable")
		}
	}

	if len(engines) == 0 && cfg.Backend != "off" {
		log.Warn().Msg("no speech backend available, narration disabled")
	}

	return &Service{engines: engines, log: log}, nil
}

// NewServiceWithEngines builds a Service over explicit engines, in
// fallback order.
func NewServiceWithEngines(log zerolog.Logger, engines ...Engine) *Service {
	return &Service{engines: engines, log: log}
}

// SetRecorder attaches a synthesis event recorder.
func (s *Service) SetRecorder(r Recorder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorder = r
}

// Enabled reports whether any backend is available.
func (s *Service) Enabled() bool {
	return len(s.engines) > 0
}

// IsSpeaking reports whether an utterance is currently playing.
func (s *Service) IsSpeaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking
}

// Stop cuts off the current utterance, if any. Safe to call when
// nothing is playing.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.speaking = false
}

// Speak voices text and blocks until it finishes, is cut off by a
// newer call, or every backend fails. Empty text and a backend-less
// service are both no-ops.
func (s *Service) Speak(ctx context.Context, text string) error {
	if text == "" || len(s.engines) == 0 {
		return nil
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.gen++
	myGen := s.gen
	s.speaking = true
	recorder := s.recorder
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		// A newer utterance may already own the speaking flag.
		if s.gen == myGen {
			s.speaking = false
			s.cancel = nil
		}
		s.mu.Unlock()
		cancel()
	}()

	var lastErr error
	for i, engine := range s.engines {
		start := time.Now()
		err := engine.Speak(ctx, text)
		latency := time.Since(start)

		if recorder != nil {
			recorder.RecordSpeech(ctx, engine.Name(), latency, err == nil, i > 0)
		}

		if err == nil {
			return nil
		}
		if errors.Is(err, context.Canceled) {
			// Cut off, not broken. Nothing to fall back to.
			return err
		}

		lastErr = err
		s.log.Warn().
			Str("engine", engine.Name()).
			Err(err).
			Msg("speech engine failed")
	}
	return lastErr
}
