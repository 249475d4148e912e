package quiz

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/abhisek/bookworm/internal/scoring"
)

func testQuestion() *Question {
	return &Question{
		ID:       "goldilocks-3",
		Number:   3,
		Prompt:   "Is this story fiction or non-fiction?",
		Label:    "Genre",
		Kind:     AnswerChoice,
		Choices:  []string{"Fiction", "Non-Fiction"},
		Endpoint: "/api/check-question3/",
	}
}

func newTestWorkflow(mock *scoring.MockScorer) *Workflow {
	return NewWorkflow(mock, zerolog.Nop())
}

func TestCheckPassesEndpointAndAnswer(t *testing.T) {
	mock := scoring.NewMockScorer()
	mock.AddResult(scoring.MockResult{Feedback: &scoring.Feedback{Correct: true, Message: "Well done!"}})
	wf := newTestWorkflow(mock)

	fb := wf.Check(context.Background(), testQuestion(), "Fiction")
	if !fb.Correct {
		t.Error("expected a correct verdict")
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	if mock.Calls[0][0] != "/api/check-question3/" || mock.Calls[0][1] != "Fiction" {
		t.Errorf("call = %v", mock.Calls[0])
	}
}

func TestCheckDegradesOnTransportFailure(t *testing.T) {
	mock := scoring.NewMockScorer()
	mock.AddResult(scoring.MockResult{Err: &scoring.ErrTransport{StatusCode: 0}})
	wf := newTestWorkflow(mock)

	fb := wf.Check(context.Background(), testQuestion(), "Fiction")
	if fb == nil {
		t.Fatal("Check must never return nil feedback")
	}
	if fb.Correct {
		t.Error("transport failure must score as incorrect")
	}
	if fb.Message != connectivityMessage {
		t.Errorf("message = %q, want connectivity message", fb.Message)
	}
	if fb.ShowAnswer || fb.CorrectAnswer != "" {
		t.Error("a failed check must never reveal an answer")
	}
}

func TestCheckDegradesOnTimeout(t *testing.T) {
	mock := scoring.NewMockScorer()
	mock.AddResult(scoring.MockResult{Err: &scoring.ErrTimeout{Err: context.DeadlineExceeded}})
	wf := newTestWorkflow(mock)

	fb := wf.Check(context.Background(), testQuestion(), "Fiction")
	if fb.Correct {
		t.Error("timeout must score as incorrect")
	}
	if fb.Message != timeoutMessage {
		t.Errorf("message = %q, want timeout message", fb.Message)
	}
}

func TestCheckSurfacesServerMessage(t *testing.T) {
	mock := scoring.NewMockScorer()
	mock.AddResult(scoring.MockResult{Err: &scoring.ErrServer{Message: "Answer cannot be empty."}})
	wf := newTestWorkflow(mock)

	fb := wf.Check(context.Background(), testQuestion(), "x")
	if fb.Correct {
		t.Error("server rejection must score as incorrect")
	}
	if fb.Message != "Answer cannot be empty." {
		t.Errorf("message = %q", fb.Message)
	}
}

func TestNarrationText(t *testing.T) {
	tests := []struct {
		name string
		fb   scoring.Feedback
		want string
	}{
		{
			"correct",
			scoring.Feedback{Correct: true, Message: "Well done!"},
			"Excellent! Well done!",
		},
		{
			"incorrect with reveal",
			scoring.Feedback{Correct: false, Message: "Not quite.", CorrectAnswer: "Fiction", ShowAnswer: true},
			"Not quite right. Not quite. The correct answer is: Fiction",
		},
		{
			"incorrect without reveal keeps the answer private",
			scoring.Feedback{Correct: false, Message: "Not quite.", CorrectAnswer: "Fiction", ShowAnswer: false},
			"Not quite right. Not quite.",
		},
		{
			"reveal flag without an answer adds nothing",
			scoring.Feedback{Correct: false, Message: "Not quite.", ShowAnswer: true},
			"Not quite right. Not quite.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NarrationText(&tt.fb); got != tt.want {
				t.Errorf("NarrationText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNarrationNeverLeaksWithoutReveal(t *testing.T) {
	fb := scoring.Feedback{Correct: false, Message: "Try again!", CorrectAnswer: "Mr. McGregor", ShowAnswer: false}
	for _, text := range []string{NarrationText(&fb), ReplayText(&fb)} {
		if strings.Contains(text, "Mr. McGregor") {
			t.Errorf("narration leaked the withheld answer: %q", text)
		}
	}
}

func TestReplayTextHasNoVerdictPrefix(t *testing.T) {
	fb := scoring.Feedback{Correct: false, Message: "Not quite.", CorrectAnswer: "Fiction", ShowAnswer: true}
	want := "Not quite. The correct answer is: Fiction"
	if got := ReplayText(&fb); got != want {
		t.Errorf("ReplayText() = %q, want %q", got, want)
	}
}
