package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceSpansEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSession(ctx, SessionEventData{SessionID: "s1", Action: "start", BookID: "goldilocks"}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := repo.AppendAnswer(ctx, answerData("s1", "goldilocks", "goldilocks-1", true)); err != nil {
		t.Fatalf("append answer: %v", err)
	}
	if err := repo.AppendSpeech(ctx, SpeechEventData{Backend: "local", LatencyMs: 120, Success: true}); err != nil {
		t.Fatalf("append speech: %v", err)
	}

	// The three events live in three tables but must share one ordering.
	var sessionSeq, answerSeq, speechSeq int64
	for _, q := range []struct {
		table string
		dst   *int64
	}{
		{"session_events", &sessionSeq},
		{"answer_events", &answerSeq},
		{"speech_events", &speechSeq},
	} {
		if err := s.DB().QueryRow("SELECT sequence FROM " + q.table).Scan(q.dst); err != nil {
			t.Fatalf("read %s: %v", q.table, err)
		}
	}
	if !(sessionSeq < answerSeq && answerSeq < speechSeq) {
		t.Errorf("sequences not ordered: %d, %d, %d", sessionSeq, answerSeq, speechSeq)
	}
}

func answerData(session, book, question string, correct bool) AnswerEventData {
	return AnswerEventData{
		SessionID:     session,
		BookID:        book,
		QuestionID:    question,
		Prompt:        "What is the title?",
		LearnerAnswer: "Goldilocks",
		Correct:       correct,
		Attempt:       1,
		TimeMs:        4200,
		AnswerFormat:  "free_text",
	}
}

func TestBookStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, d := range []AnswerEventData{
		answerData("s1", "goldilocks", "goldilocks-1", true),
		answerData("s1", "goldilocks", "goldilocks-2", false),
		answerData("s1", "peter-rabbit", "peter-rabbit-1", true),
	} {
		if err := repo.AppendAnswer(ctx, d); err != nil {
			t.Fatalf("append answer: %v", err)
		}
	}

	stats, err := repo.BookStats(ctx)
	if err != nil {
		t.Fatalf("book stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats = %d books, want 2", len(stats))
	}
	if stats[0].BookID != "goldilocks" || stats[0].Answered != 2 || stats[0].Correct != 1 {
		t.Errorf("goldilocks stats = %+v", stats[0])
	}
	if stats[1].BookID != "peter-rabbit" || stats[1].Answered != 1 || stats[1].Correct != 1 {
		t.Errorf("peter-rabbit stats = %+v", stats[1])
	}
}

func TestSpeechStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, d := range []SpeechEventData{
		{Backend: "elevenlabs", LatencyMs: 900, Success: false},
		{Backend: "local", LatencyMs: 150, Success: true, Fallback: true},
		{Backend: "local", LatencyMs: 140, Success: true},
	} {
		if err := repo.AppendSpeech(ctx, d); err != nil {
			t.Fatalf("append speech: %v", err)
		}
	}

	stats, err := repo.SpeechStats(ctx)
	if err != nil {
		t.Fatalf("speech stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("stats = %d backends, want 2", len(stats))
	}
	if stats[0].Backend != "elevenlabs" || stats[0].Attempts != 1 || stats[0].Failures != 1 {
		t.Errorf("elevenlabs stats = %+v", stats[0])
	}
	if stats[1].Backend != "local" || stats[1].Attempts != 2 || stats[1].Failures != 0 {
		t.Errorf("local stats = %+v", stats[1])
	}
}

func TestResetClearsEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAnswer(ctx, answerData("s1", "goldilocks", "goldilocks-1", true)); err != nil {
		t.Fatalf("append answer: %v", err)
	}
	if err := repo.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	stats, err := repo.BookStats(ctx)
	if err != nil {
		t.Fatalf("book stats: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("stats after reset = %v", stats)
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Books: map[string]BookProgress{
				"goldilocks": {BookID: "goldilocks", NextQuestion: 4},
			},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected a snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if got := snap.Data.Books["goldilocks"].NextQuestion; got != 4 {
		t.Errorf("next question = %d, want 4", got)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Add(-time.Hour)
	for i := range 5 {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 2); err != nil {
		t.Fatalf("prune: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 4 {
		t.Errorf("latest sequence = %d, want 4", snap.Sequence)
	}

	var count int
	if err := s.DB().QueryRow("SELECT COUNT(*) FROM snapshots").Scan(&count); err != nil {
		t.Fatalf("count snapshots: %v", err)
	}
	if count != 2 {
		t.Errorf("snapshots after prune = %d, want 2", count)
	}
}
