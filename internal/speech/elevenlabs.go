package speech

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"

	"github.com/abhisek/bookworm/internal/audio"
)

// narrationVolume matches the intro clip level so the voice does not
// jump out louder than the story narration.
const narrationVolume = 0.7

// ElevenLabsEngine synthesizes speech through the ElevenLabs API and
// plays the returned MP3 through an audio player.
type ElevenLabsEngine struct {
	http   *resty.Client
	cfg    ElevenLabsConfig
	retry  RetryConfig
	player audio.Player
}

// NewElevenLabsEngine creates a remote engine. It fails when no API key
// is configured or no audio player is available, so the caller can fall
// back to the local engine up front.
func NewElevenLabsEngine(cfg ElevenLabsConfig, retryCfg RetryConfig, player audio.Player) (*ElevenLabsEngine, error) {
	if cfg.APIKey == "" {
		return nil, &ErrEngineUnavailable{Engine: "elevenlabs", Err: errors.New("no API key")}
	}
	if player == nil {
		return nil, &ErrEngineUnavailable{Engine: "elevenlabs", Err: errors.New("no audio player")}
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("xi-api-key", cfg.APIKey).
		SetHeader("Accept", "audio/mpeg")

	return &ElevenLabsEngine{http: client, cfg: cfg, retry: retryCfg, player: player}, nil
}

func (e *ElevenLabsEngine) Name() string { return "elevenlabs" }

// Speak synthesizes text and plays the result. Synthesis retries once
// on transient failures; playback does not retry.
func (e *ElevenLabsEngine) Speak(ctx context.Context, text string) error {
	clip, err := e.synthesize(ctx, text)
	if err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return e.player.Play(ctx, clip, narrationVolume)
}

type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

func (e *ElevenLabsEngine) synthesize(ctx context.Context, text string) ([]byte, error) {
	body := synthesisRequest{
		Text:    text,
		ModelID: e.cfg.ModelID,
		VoiceSettings: voiceSettings{
			Stability:       e.cfg.Stability,
			SimilarityBoost: e.cfg.SimilarityBoost,
			Style:           e.cfg.Style,
			UseSpeakerBoost: e.cfg.SpeakerBoost,
		},
	}

	var clip []byte
	err := retry.Do(
		func() error {
			resp, err := e.http.R().
				SetContext(ctx).
				SetHeader("Content-Type", "application/json").
				SetBody(body).
				Post(fmt.Sprintf("/v1/text-to-speech/%s", e.cfg.VoiceID))
			if err != nil {
				return &ErrSynthesis{Err: err}
			}
			if resp.IsError() {
				return &ErrSynthesis{
					StatusCode: resp.StatusCode(),
					Err:        fmt.Errorf("unexpected status %s", resp.Status()),
				}
			}
			clip = resp.Body()
			if len(clip) == 0 {
				return &ErrSynthesis{Err: errors.New("empty audio response")}
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(e.retry.MaxAttempts)),
		retry.Delay(e.retry.InitialWait),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
	)
	if err != nil {
		return nil, err
	}
	return clip, nil
}

// isTransient reports whether a synthesis attempt is worth repeating.
// Auth and quota problems will not fix themselves, so they fail fast
// and let the caller fall back.
func isTransient(err error) bool {
	var synth *ErrSynthesis
	if !errors.As(err, &synth) {
		return false
	}
	switch synth.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusPaymentRequired:
		return false
	case 0:
		// Network error without a status.
		return !errors.Is(synth.Err, context.Canceled)
	default:
		return synth.StatusCode >= 500 || synth.StatusCode == http.StatusTooManyRequests
	}
}
