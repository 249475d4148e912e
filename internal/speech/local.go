package speech

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"time"
)

// Synthesizer binaries in preference order. say ships with macOS;
// espeak-ng is the maintained espeak fork on Linux.
var localBinaries = []string{"say", "espeak-ng", "espeak"}

// LocalEngine speaks through the host's speech synthesizer binary.
type LocalEngine struct {
	binary string
	cfg    LocalConfig
}

// NewLocalEngine discovers a synthesizer binary on PATH. When no voice
// is configured it asks the synthesizer for its installed voices and
// picks a storytelling one; a failed lookup leaves the default voice.
func NewLocalEngine(cfg LocalConfig) (*LocalEngine, error) {
	for _, name := range localBinaries {
		bin, err := exec.LookPath(name)
		if err != nil {
			continue
		}
		e := &LocalEngine{binary: bin, cfg: cfg}
		if e.cfg.Voice == "" {
			e.pickVoice()
		}
		return e, nil
	}
	return nil, &ErrEngineUnavailable{
		Engine: "local",
		Err:    fmt.Errorf("no synthesizer found (tried %v)", localBinaries),
	}
}

func (e *LocalEngine) Name() string { return "local" }

// pickVoice queries the installed voices and keeps the preferred one.
// Listing can hang on a broken audio setup, so it gets a short deadline.
func (e *LocalEngine) pickVoice() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	voices, err := e.ListVoices(ctx)
	if err != nil {
		return
	}
	e.cfg.Voice = PreferredVoice(voices)
}

// Speak runs the synthesizer and blocks until the utterance finishes.
// Cancelling the context kills the process, which cuts the voice off
// mid-word; that is exactly what replacing an utterance needs.
func (e *LocalEngine) Speak(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, e.binary, e.args(text)...)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s: %w", e.binary, err)
	}
	return nil
}

// args maps the rate/pitch/volume multipliers onto each synthesizer's
// own flag scales.
func (e *LocalEngine) args(text string) []string {
	switch {
	case isSay(e.binary):
		// say speaks at ~175 words per minute by default and takes
		// volume as an inline [[volm]] directive.
		args := []string{"-r", fmt.Sprintf("%d", int(e.cfg.Rate*175))}
		if e.cfg.Voice != "" {
			args = append(args, "-v", e.cfg.Voice)
		}
		return append(args, fmt.Sprintf("[[volm %.2f]] %s", e.cfg.Volume, text))
	default:
		// espeak defaults: speed 175, pitch 50 (0-99), amplitude 100 (0-200).
		args := []string{
			"-s", fmt.Sprintf("%d", int(e.cfg.Rate*175)),
			"-p", fmt.Sprintf("%d", clampInt(int(e.cfg.Pitch*50), 0, 99)),
			"-a", fmt.Sprintf("%d", clampInt(int(e.cfg.Volume*100), 0, 200)),
		}
		if e.cfg.Voice != "" {
			args = append(args, "-v", e.cfg.Voice)
		}
		return append(args, text)
	}
}

func isSay(binary string) bool {
	return filepath.Base(binary) == "say"
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
