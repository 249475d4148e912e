// Package audio plays MP3 clips through an external player binary.
//
// The terminal has no audio device of its own, so playback shells out to
// whatever command line player the host provides. Discovery is ordered by
// how common the player is on each platform; afplay ships with macOS,
// the rest are the usual Linux suspects.
package audio

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Player plays an MP3 clip and blocks until it finishes or the context
// is cancelled.
type Player interface {
	// Play plays the clip at the given volume (0.0 to 1.0). Cancelling
	// the context kills playback.
	Play(ctx context.Context, clip []byte, volume float64) error
}

// ErrNoPlayer indicates no supported player binary was found on PATH.
type ErrNoPlayer struct {
	Tried []string
}

func (e *ErrNoPlayer) Error() string {
	return fmt.Sprintf("no audio player found (tried %v)", e.Tried)
}

// playerCandidate describes one player binary and how to pass it a
// volume and a file path.
type playerCandidate struct {
	name string
	args func(path string, volume float64) []string
}

func candidates() []playerCandidate {
	list := []playerCandidate{
		{
			name: "mpg123",
			args: func(path string, volume float64) []string {
				// mpg123 scales volume 0-32768.
				return []string{"-q", "-f", fmt.Sprintf("%d", int(volume*32768)), path}
			},
		},
		{
			name: "mpv",
			args: func(path string, volume float64) []string {
				return []string{"--no-terminal", fmt.Sprintf("--volume=%d", int(volume*100)), path}
			},
		},
		{
			name: "ffplay",
			args: func(path string, volume float64) []string {
				return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", "-volume", fmt.Sprintf("%d", int(volume*100)), path}
			},
		},
	}
	if runtime.GOOS == "darwin" {
		list = append([]playerCandidate{{
			name: "afplay",
			args: func(path string, volume float64) []string {
				return []string{"-v", fmt.Sprintf("%.2f", volume), path}
			},
		}}, list...)
	}
	return list
}

// ExecPlayer plays clips through an external binary found on PATH.
type ExecPlayer struct {
	binary string
	args   func(path string, volume float64) []string
}

// NewPlayer discovers a player binary on PATH. It returns ErrNoPlayer
// when none of the known players is installed.
func NewPlayer() (*ExecPlayer, error) {
	var tried []string
	for _, c := range candidates() {
		tried = append(tried, c.name)
		bin, err := exec.LookPath(c.name)
		if err != nil {
			continue
		}
		return &ExecPlayer{binary: bin, args: c.args}, nil
	}
	return nil, &ErrNoPlayer{Tried: tried}
}

func (p *ExecPlayer) Play(ctx context.Context, clip []byte, volume float64) error {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}

	f, err := os.CreateTemp("", "bookworm-*.mp3")
	if err != nil {
		return fmt.Errorf("writing audio clip: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.Write(clip); err != nil {
		f.Close()
		return fmt.Errorf("writing audio clip: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing audio clip: %w", err)
	}

	cmd := exec.CommandContext(ctx, p.binary, p.args(f.Name(), volume)...)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s: %w", p.binary, err)
	}
	return nil
}
