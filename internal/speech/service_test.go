package speech

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSpeakUsesFirstEngine(t *testing.T) {
	remote := NewMockEngine("remote")
	local := NewMockEngine("local")
	svc := NewServiceWithEngines(zerolog.Nop(), remote, local)

	if err := svc.Speak(context.Background(), "Excellent! Well done!"); err != nil {
		t.Fatalf("speak: %v", err)
	}
	if got := remote.SpokenTexts(); len(got) != 1 || got[0] != "Excellent! Well done!" {
		t.Errorf("remote spoke %v", got)
	}
	if len(local.SpokenTexts()) != 0 {
		t.Error("local engine must not run when remote succeeds")
	}
}

func TestSpeakFallsBackWhenRemoteFails(t *testing.T) {
	remote := NewMockEngine("remote", &ErrSynthesis{StatusCode: 401, Err: errors.New("bad key")})
	local := NewMockEngine("local")
	svc := NewServiceWithEngines(zerolog.Nop(), remote, local)

	if err := svc.Speak(context.Background(), "Not quite right."); err != nil {
		t.Fatalf("speak: %v", err)
	}
	if len(remote.SpokenTexts()) != 1 {
		t.Error("remote must be tried first")
	}
	if got := local.SpokenTexts(); len(got) != 1 || got[0] != "Not quite right." {
		t.Errorf("local spoke %v, want the fallback utterance", got)
	}
}

func TestSpeakReturnsLastErrorWhenAllFail(t *testing.T) {
	remote := NewMockEngine("remote", &ErrSynthesis{StatusCode: 500, Err: errors.New("boom")})
	localErr := errors.New("espeak: exit 1")
	local := NewMockEngine("local", localErr)
	svc := NewServiceWithEngines(zerolog.Nop(), remote, local)

	err := svc.Speak(context.Background(), "hello")
	if !errors.Is(err, localErr) {
		t.Fatalf("err = %v, want the local engine's error", err)
	}
}

func TestSpeakEmptyTextIsNoOp(t *testing.T) {
	remote := NewMockEngine("remote")
	svc := NewServiceWithEngines(zerolog.Nop(), remote)

	if err := svc.Speak(context.Background(), ""); err != nil {
		t.Fatalf("speak: %v", err)
	}
	if len(remote.SpokenTexts()) != 0 {
		t.Error("empty text must not reach an engine")
	}
}

func TestNewSpeakCallCutsOffCurrentUtterance(t *testing.T) {
	engine := NewMockEngine("local")
	engine.Block = true
	svc := NewServiceWithEngines(zerolog.Nop(), engine)

	var wg sync.WaitGroup
	wg.Add(1)
	firstErr := make(chan error, 1)
	go func() {
		defer wg.Done()
		firstErr <- svc.Speak(context.Background(), "first")
	}()

	// Wait for the first utterance to start.
	deadline := time.After(2 * time.Second)
	for len(engine.SpokenTexts()) == 0 {
		select {
		case <-deadline:
			t.Fatal("first utterance never started")
		case <-time.After(5 * time.Millisecond):
		}
	}

	engine.Block = false
	if err := svc.Speak(context.Background(), "second"); err != nil {
		t.Fatalf("second speak: %v", err)
	}

	wg.Wait()
	if err := <-firstErr; !errors.Is(err, context.Canceled) {
		t.Errorf("first utterance err = %v, want context.Canceled", err)
	}
	spoken := engine.SpokenTexts()
	if len(spoken) != 2 || spoken[1] != "second" {
		t.Errorf("spoken = %v", spoken)
	}
	if svc.IsSpeaking() {
		t.Error("service must be idle after the second utterance finishes")
	}
}

func TestStopIsIdempotent(t *testing.T) {
	engine := NewMockEngine("local")
	svc := NewServiceWithEngines(zerolog.Nop(), engine)

	svc.Stop()
	svc.Stop()
	if svc.IsSpeaking() {
		t.Error("stopped service must not report speaking")
	}
}

func TestStopCutsOffUtterance(t *testing.T) {
	engine := NewMockEngine("local")
	engine.Block = true
	svc := NewServiceWithEngines(zerolog.Nop(), engine)

	done := make(chan error, 1)
	go func() { done <- svc.Speak(context.Background(), "long story") }()

	deadline := time.After(2 * time.Second)
	for !svc.IsSpeaking() {
		select {
		case <-deadline:
			t.Fatal("utterance never started")
		case <-time.After(5 * time.Millisecond):
		}
	}

	svc.Stop()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if svc.IsSpeaking() {
		t.Error("service must be idle after Stop")
	}
}

func TestCancelledUtteranceDoesNotFallBack(t *testing.T) {
	remote := NewMockEngine("remote", context.Canceled)
	local := NewMockEngine("local")
	svc := NewServiceWithEngines(zerolog.Nop(), remote, local)

	err := svc.Speak(context.Background(), "hello")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
	if len(local.SpokenTexts()) != 0 {
		t.Error("a cut-off utterance must not restart on the fallback engine")
	}
}

type stubRecorder struct {
	mu      sync.Mutex
	records []struct {
		backend  string
		success  bool
		fallback bool
	}
}

func (r *stubRecorder) RecordSpeech(_ context.Context, backend string, _ time.Duration, success, fallback bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, struct {
		backend  string
		success  bool
		fallback bool
	}{backend, success, fallback})
}

func TestRecorderSeesFallbackChain(t *testing.T) {
	remote := NewMockEngine("remote", &ErrSynthesis{StatusCode: 503, Err: errors.New("down")})
	local := NewMockEngine("local")
	svc := NewServiceWithEngines(zerolog.Nop(), remote, local)
	rec := &stubRecorder{}
	svc.SetRecorder(rec)

	if err := svc.Speak(context.Background(), "hello"); err != nil {
		t.Fatalf("speak: %v", err)
	}

	if len(rec.records) != 2 {
		t.Fatalf("records = %d, want 2", len(rec.records))
	}
	if rec.records[0].backend != "remote" || rec.records[0].success || rec.records[0].fallback {
		t.Errorf("first record = %+v", rec.records[0])
	}
	if rec.records[1].backend != "local" || !rec.records[1].success || !rec.records[1].fallback {
		t.Errorf("second record = %+v", rec.records[1])
	}
}
