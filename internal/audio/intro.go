package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	// IntroDelay is how long a question is on screen before its intro
	// clip starts. Gives the reader a beat to orient first.
	IntroDelay = 800 * time.Millisecond

	// IntroVolume keeps narration clips quieter than system volume so
	// they sit under the room rather than startle.
	IntroVolume = 0.7
)

// IntroPlayer plays per-question narration clips from a clips directory.
// A missing clip or a missing player is a degraded experience, not an
// error the caller has to handle; playback problems are reported so the
// UI can offer a manual play control instead.
type IntroPlayer struct {
	player Player
	dir    string
	log    zerolog.Logger
}

// NewIntroPlayer creates an IntroPlayer reading clips from dir. player
// may be nil when no player binary was found; Play then reports
// ErrNoPlayer immediately.
func NewIntroPlayer(player Player, dir string, log zerolog.Logger) *IntroPlayer {
	return &IntroPlayer{player: player, dir: dir, log: log}
}

// ClipsDir returns the clip directory, preferring $BOOKWORM_CLIPS_DIR
// and falling back to a clips/ directory next to the data dir.
func ClipsDir(dataDir string) string {
	if dir := os.Getenv("BOOKWORM_CLIPS_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(dataDir, "clips")
}

// Play plays the named clip after IntroDelay. It blocks until playback
// finishes or ctx is cancelled. The caller decides whether failure is
// worth surfacing; this player only logs it.
func (ip *IntroPlayer) Play(ctx context.Context, clip string) error {
	if clip == "" {
		return nil
	}
	if ip.player == nil {
		return &ErrNoPlayer{}
	}

	data, err := os.ReadFile(filepath.Join(ip.dir, clip))
	if err != nil {
		ip.log.Warn().Str("clip", clip).Err(err).Msg("intro clip unavailable")
		return fmt.Errorf("reading intro clip %s: %w", clip, err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(IntroDelay):
	}

	if err := ip.player.Play(ctx, data, IntroVolume); err != nil {
		if ctx.Err() == nil {
			ip.log.Warn().Str("clip", clip).Err(err).Msg("intro playback failed")
		}
		return err
	}
	return nil
}

// PlayNow plays the named clip immediately, skipping IntroDelay. Used
// by the manual play control after autoplay fails.
func (ip *IntroPlayer) PlayNow(ctx context.Context, clip string) error {
	if clip == "" {
		return nil
	}
	if ip.player == nil {
		return &ErrNoPlayer{}
	}
	data, err := os.ReadFile(filepath.Join(ip.dir, clip))
	if err != nil {
		return fmt.Errorf("reading intro clip %s: %w", clip, err)
	}
	return ip.player.Play(ctx, data, IntroVolume)
}
