package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func writeClip(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("mp3-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestIntroPlaysAtReducedVolume(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "title.mp3")
	mock := NewMockPlayer()
	ip := NewIntroPlayer(mock, dir, zerolog.Nop())

	if err := ip.PlayNow(context.Background(), "title.mp3"); err != nil {
		t.Fatalf("play: %v", err)
	}
	if mock.PlayCount() != 1 {
		t.Fatalf("plays = %d, want 1", mock.PlayCount())
	}
	if mock.Volumes[0] != IntroVolume {
		t.Errorf("volume = %v, want %v", mock.Volumes[0], IntroVolume)
	}
}

func TestIntroEmptyClipIsNoOp(t *testing.T) {
	mock := NewMockPlayer()
	ip := NewIntroPlayer(mock, t.TempDir(), zerolog.Nop())

	if err := ip.Play(context.Background(), ""); err != nil {
		t.Fatalf("play: %v", err)
	}
	if mock.PlayCount() != 0 {
		t.Error("empty clip must not touch the player")
	}
}

func TestIntroMissingClipFails(t *testing.T) {
	mock := NewMockPlayer()
	ip := NewIntroPlayer(mock, t.TempDir(), zerolog.Nop())

	if err := ip.PlayNow(context.Background(), "nope.mp3"); err == nil {
		t.Fatal("expected an error for a missing clip")
	}
	if mock.PlayCount() != 0 {
		t.Error("missing clip must not reach the player")
	}
}

func TestIntroWithoutPlayerReportsErrNoPlayer(t *testing.T) {
	ip := NewIntroPlayer(nil, t.TempDir(), zerolog.Nop())

	err := ip.PlayNow(context.Background(), "title.mp3")
	var noPlayer *ErrNoPlayer
	if !errors.As(err, &noPlayer) {
		t.Fatalf("expected ErrNoPlayer, got %v", err)
	}
}

func TestIntroDelayCancellable(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "title.mp3")
	mock := NewMockPlayer()
	ip := NewIntroPlayer(mock, dir, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ip.Play(ctx, "title.mp3")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if mock.PlayCount() != 0 {
		t.Error("cancelled intro must never start playback")
	}
}

func TestIntroPlayWaitsForDelay(t *testing.T) {
	dir := t.TempDir()
	writeClip(t, dir, "title.mp3")
	mock := NewMockPlayer()
	ip := NewIntroPlayer(mock, dir, zerolog.Nop())

	start := time.Now()
	if err := ip.Play(context.Background(), "title.mp3"); err != nil {
		t.Fatalf("play: %v", err)
	}
	if elapsed := time.Since(start); elapsed < IntroDelay {
		t.Errorf("playback started after %v, want at least %v", elapsed, IntroDelay)
	}
}
