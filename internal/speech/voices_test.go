package speech

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// stubSay drops a fake say binary into a temp dir and puts only that
// dir on PATH, so NewLocalEngine discovers the stub.
func stubSay(t *testing.T, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stub")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "say"), []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir)
}

func TestLocalEngineAutoSelectsVoice(t *testing.T) {
	stubSay(t, `echo "Karen               en_AU    # Hello, my name is Karen."`+"\n")

	cfg := DefaultConfig().Local
	e, err := NewLocalEngine(cfg)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if e.cfg.Voice != "Karen" {
		t.Errorf("voice = %q, want Karen", e.cfg.Voice)
	}
}

func TestLocalEngineKeepsConfiguredVoice(t *testing.T) {
	stubSay(t, `echo "Karen               en_AU    # Hello, my name is Karen."`+"\n")

	cfg := DefaultConfig().Local
	cfg.Voice = "Daniel"
	e, err := NewLocalEngine(cfg)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if e.cfg.Voice != "Daniel" {
		t.Errorf("voice = %q, want Daniel", e.cfg.Voice)
	}
}

func TestLocalEngineVoiceLookupFailureIsTolerated(t *testing.T) {
	stubSay(t, "exit 1\n")

	cfg := DefaultConfig().Local
	e, err := NewLocalEngine(cfg)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if e.cfg.Voice != "" {
		t.Errorf("voice = %q, want default", e.cfg.Voice)
	}
}

func TestParseSayVoices(t *testing.T) {
	out := []byte(`Alex                en_US    # Most people recognize me by my voice.
Karen               en_AU    # Hello, my name is Karen.
Samantha            en_US    # Hello, my name is Samantha.
`)
	voices := parseSayVoices(out)
	if len(voices) != 3 {
		t.Fatalf("voices = %d, want 3", len(voices))
	}
	if voices[1].Name != "Karen" || voices[1].Language != "en_AU" {
		t.Errorf("voice[1] = %+v", voices[1])
	}
}

func TestParseEspeakVoices(t *testing.T) {
	out := []byte(`Pty Language Age/Gender VoiceName          File          Other Languages
 2  en-gb    M  english              en            (en-uk 2)
 5  en-gb    F  english_rp           other/en-rp
 5  en-us    M  english-us           en-us
`)
	voices := parseEspeakVoices(out)
	if len(voices) != 3 {
		t.Fatalf("voices = %d, want 3", len(voices))
	}
	if voices[1].Name != "english_rp" || voices[1].Gender != "female" || voices[1].Language != "en-gb" {
		t.Errorf("voice[1] = %+v", voices[1])
	}
}

func TestPreferredVoice(t *testing.T) {
	tests := []struct {
		name   string
		voices []Voice
		want   string
	}{
		{
			"karen wins over other females",
			[]Voice{{Name: "Samantha"}, {Name: "Karen"}, {Name: "english_rp", Gender: "female"}},
			"Karen",
		},
		{
			"female beats en-gb male",
			[]Voice{{Name: "english", Language: "en-gb", Gender: "male"}, {Name: "english_rp", Gender: "female"}},
			"english_rp",
		},
		{
			"en-gb as last resort",
			[]Voice{{Name: "english-us", Language: "en-us", Gender: "male"}, {Name: "english", Language: "en-gb", Gender: "male"}},
			"english",
		},
		{
			"nothing stands out",
			[]Voice{{Name: "english-us", Language: "en-us", Gender: "male"}},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PreferredVoice(tt.voices); got != tt.want {
				t.Errorf("PreferredVoice() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("ELEVENLABS_API_KEY", "key-123")
	t.Setenv("BOOKWORM_TTS", "local")
	t.Setenv("BOOKWORM_TTS_VOICE", "Karen")
	t.Setenv("BOOKWORM_TTS_RATE", "0.8")

	cfg := ConfigFromEnv()
	if cfg.ElevenLabs.APIKey != "key-123" {
		t.Errorf("api key = %q", cfg.ElevenLabs.APIKey)
	}
	if cfg.Backend != "local" {
		t.Errorf("backend = %q", cfg.Backend)
	}
	if cfg.Local.Voice != "Karen" {
		t.Errorf("voice = %q", cfg.Local.Voice)
	}
	if cfg.Local.Rate != 0.8 {
		t.Errorf("rate = %v", cfg.Local.Rate)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}

	cfg.Backend = "cloud"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown backend must fail validation")
	}

	cfg = DefaultConfig()
	cfg.Backend = "elevenlabs"
	if err := cfg.Validate(); err == nil {
		t.Error("elevenlabs backend without a key must fail validation")
	}

	cfg = DefaultConfig()
	cfg.Local.Volume = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("out of range volume must fail validation")
	}
}
