// Package speech turns feedback text into spoken audio.
//
// Two backends exist: a remote neural voice (ElevenLabs) and the host's
// own speech synthesizer. The remote voice sounds far better but needs
// an API key and a network; when it is unconfigured or fails, speech
// falls back to the local synthesizer so the reader always hears
// something.
package speech

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all speech configuration.
type Config struct {
	// Backend selects the synthesis backend.
	// Values: "auto", "elevenlabs", "local", "off".
	// "auto" uses ElevenLabs when an API key is present, local otherwise.
	Backend string

	ElevenLabs ElevenLabsConfig
	Local      LocalConfig
	Retry      RetryConfig
}

// ElevenLabsConfig holds remote synthesis configuration.
type ElevenLabsConfig struct {
	APIKey  string
	BaseURL string // Default: "https://api.elevenlabs.io"
	VoiceID string // Default: a warm female storyteller voice
	ModelID string // Default: "eleven_monolingual_v1"

	// Voice settings, tuned for reading to children: steady, expressive,
	// close to the reference voice.
	Stability       float64
	SimilarityBoost float64
	Style           float64
	SpeakerBoost    bool

	// Timeout is the maximum duration for a single synthesis call.
	Timeout time.Duration
}

// LocalConfig holds host synthesizer configuration.
type LocalConfig struct {
	// Voice names the synthesizer voice. Empty means pick one; see
	// PreferredVoice.
	Voice string

	// Rate scales speaking speed. 1.0 is the synthesizer default;
	// children follow along better slightly under that.
	Rate float64

	// Pitch scales voice pitch. Slightly above default reads friendlier.
	Pitch float64

	// Volume scales loudness, 0.0 to 1.0.
	Volume float64
}

// RetryConfig configures retry behavior for transient remote failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Backend: "auto",
		ElevenLabs: ElevenLabsConfig{
			BaseURL:         "https://api.elevenlabs.io",
			VoiceID:         "pqHfZKP75CvOlQylNhV4",
			ModelID:         "eleven_monolingual_v1",
			Stability:       0.6,
			SimilarityBoost: 0.7,
			Style:           0.3,
			SpeakerBoost:    true,
			Timeout:         15 * time.Second,
		},
		Local: LocalConfig{
			Rate:   0.9,
			Pitch:  1.1,
			Volume: 0.8,
		},
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
		},
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for anything unset.
//
//	ELEVENLABS_API_KEY     remote synthesis API key
//	BOOKWORM_TTS           backend: auto, elevenlabs, local, off
//	BOOKWORM_TTS_URL       override the ElevenLabs base URL
//	BOOKWORM_TTS_VOICE_ID  override the ElevenLabs voice
//	BOOKWORM_TTS_VOICE     local synthesizer voice name
//	BOOKWORM_TTS_RATE      local speaking rate multiplier
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.ElevenLabs.APIKey = os.Getenv("ELEVENLABS_API_KEY")
	if v := os.Getenv("BOOKWORM_TTS"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("BOOKWORM_TTS_URL"); v != "" {
		cfg.ElevenLabs.BaseURL = v
	}
	if v := os.Getenv("BOOKWORM_TTS_VOICE_ID"); v != "" {
		cfg.ElevenLabs.VoiceID = v
	}
	if v := os.Getenv("BOOKWORM_TTS_VOICE"); v != "" {
		cfg.Local.Voice = v
	}
	if v := os.Getenv("BOOKWORM_TTS_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate > 0 {
			cfg.Local.Rate = rate
		}
	}

	return cfg
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	switch c.Backend {
	case "auto", "elevenlabs", "local", "off":
	default:
		return fmt.Errorf("unknown speech backend: %q", c.Backend)
	}
	if c.Backend == "elevenlabs" && c.ElevenLabs.APIKey == "" {
		return fmt.Errorf("speech backend %q requires ELEVENLABS_API_KEY", c.Backend)
	}
	if c.Local.Volume < 0 || c.Local.Volume > 1 {
		return fmt.Errorf("local volume %v out of range [0,1]", c.Local.Volume)
	}
	if c.Local.Rate <= 0 {
		return fmt.Errorf("local rate must be positive, got %v", c.Local.Rate)
	}
	return nil
}
