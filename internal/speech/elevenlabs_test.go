package speech

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/abhisek/bookworm/internal/audio"
)

func testEngine(t *testing.T, url string, player audio.Player) *ElevenLabsEngine {
	t.Helper()
	cfg := DefaultConfig()
	cfg.ElevenLabs.APIKey = "test-key"
	cfg.ElevenLabs.BaseURL = url
	engine, err := NewElevenLabsEngine(cfg.ElevenLabs, cfg.Retry, player)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestElevenLabsRequestShape(t *testing.T) {
	var gotPath, gotKey string
	var gotBody synthesisRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("xi-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	player := audio.NewMockPlayer()
	engine := testEngine(t, srv.URL, player)

	if err := engine.Speak(context.Background(), "Excellent! Well done!"); err != nil {
		t.Fatalf("speak: %v", err)
	}

	if gotPath != "/v1/text-to-speech/pqHfZKP75CvOlQylNhV4" {
		t.Errorf("path = %s", gotPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if gotBody.Text != "Excellent! Well done!" {
		t.Errorf("text = %q", gotBody.Text)
	}
	if gotBody.ModelID != "eleven_monolingual_v1" {
		t.Errorf("model = %q", gotBody.ModelID)
	}
	if gotBody.VoiceSettings.Stability != 0.6 || gotBody.VoiceSettings.SimilarityBoost != 0.7 {
		t.Errorf("voice settings = %+v", gotBody.VoiceSettings)
	}
	if !gotBody.VoiceSettings.UseSpeakerBoost {
		t.Error("speaker boost must be on")
	}
	if player.PlayCount() != 1 {
		t.Fatalf("plays = %d, want 1", player.PlayCount())
	}
	if string(player.Played[0]) != "mp3-bytes" {
		t.Errorf("played clip = %q", player.Played[0])
	}
}

func TestElevenLabsAuthFailureDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	engine := testEngine(t, srv.URL, audio.NewMockPlayer())

	err := engine.Speak(context.Background(), "hello")
	var synth *ErrSynthesis
	if !errors.As(err, &synth) {
		t.Fatalf("expected ErrSynthesis, got %v", err)
	}
	if synth.StatusCode != http.StatusUnauthorized {
		t.Errorf("status = %d", synth.StatusCode)
	}
	if calls.Load() != 1 {
		t.Errorf("calls = %d, auth failures must not retry", calls.Load())
	}
}

func TestElevenLabsRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	player := audio.NewMockPlayer()
	engine := testEngine(t, srv.URL, player)

	if err := engine.Speak(context.Background(), "hello"); err != nil {
		t.Fatalf("speak: %v", err)
	}
	if calls.Load() != 2 {
		t.Errorf("calls = %d, want a retry after 503", calls.Load())
	}
	if player.PlayCount() != 1 {
		t.Error("successful retry must still play")
	}
}

func TestElevenLabsEmptyBodyIsSynthesisError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	engine := testEngine(t, srv.URL, audio.NewMockPlayer())

	err := engine.Speak(context.Background(), "hello")
	var synth *ErrSynthesis
	if !errors.As(err, &synth) {
		t.Fatalf("expected ErrSynthesis, got %v", err)
	}
}

func TestElevenLabsRequiresKeyAndPlayer(t *testing.T) {
	cfg := DefaultConfig()

	_, err := NewElevenLabsEngine(cfg.ElevenLabs, cfg.Retry, audio.NewMockPlayer())
	var unavail *ErrEngineUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrEngineUnavailable without a key, got %v", err)
	}

	cfg.ElevenLabs.APIKey = "k"
	if _, err := NewElevenLabsEngine(cfg.ElevenLabs, cfg.Retry, nil); !errors.As(err, &unavail) {
		t.Fatalf("expected ErrEngineUnavailable without a player, got %v", err)
	}
}
