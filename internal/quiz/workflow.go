package quiz

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/bookworm/internal/scoring"
)

// NarrationDelay is how long visual feedback is on screen before narration
// starts. Ordering contract: the child sees the result before hearing it.
const NarrationDelay = 500 * time.Millisecond

// connectivityMessage is the synthesized feedback for transport failures.
const connectivityMessage = "Network error. Please check your connection and try again."

// timeoutMessage is the synthesized feedback when the scoring call times out.
const timeoutMessage = "That took too long to check. Please try again."

// Workflow turns a submitted answer into resolved feedback. Every failure
// mode degrades to an incorrect-style Feedback with no reveal; Check never
// returns an error to the screen.
type Workflow struct {
	scorer scoring.Scorer
	log    zerolog.Logger
}

// NewWorkflow creates a Workflow using the given scorer.
func NewWorkflow(scorer scoring.Scorer, log zerolog.Logger) *Workflow {
	return &Workflow{scorer: scorer, log: log}
}

// Check scores the answer against the question's endpoint. The returned
// Feedback is always non-nil:
//
//   - transport failure or timeout: incorrect, generic connectivity message
//   - payload-level {error}: incorrect, the server's error text
//   - malformed payload: treated as a transport failure
//   - well-formed result: returned as-is, reveal flag verbatim
func (w *Workflow) Check(ctx context.Context, q *Question, answer string) *scoring.Feedback {
	fb, err := w.scorer.Score(ctx, q.Endpoint, answer)
	if err == nil {
		return fb
	}

	w.log.Warn().
		Err(err).
		Str("question", q.ID).
		Msg("scoring call failed")

	var serverErr *scoring.ErrServer
	if errors.As(err, &serverErr) {
		return &scoring.Feedback{Correct: false, Message: serverErr.Message}
	}

	var timeoutErr *scoring.ErrTimeout
	if errors.As(err, &timeoutErr) {
		return &scoring.Feedback{Correct: false, Message: timeoutMessage}
	}

	return &scoring.Feedback{Correct: false, Message: connectivityMessage}
}

// NarrationText composes the spoken version of a feedback result. The
// correct answer is appended only under the reveal flag; this is the same
// no-leakage rule the renderer follows.
func NarrationText(fb *scoring.Feedback) string {
	if fb == nil || fb.Message == "" {
		return ""
	}
	if fb.Correct {
		return "Excellent! " + fb.Message
	}
	text := "Not quite right. " + fb.Message
	if fb.ShowAnswer && fb.CorrectAnswer != "" {
		text += " The correct answer is: " + fb.CorrectAnswer
	}
	return text
}

// ReplayText composes the narration used when the child replays feedback
// from the result card. It repeats the message without the verdict prefix.
func ReplayText(fb *scoring.Feedback) string {
	if fb == nil || fb.Message == "" {
		return ""
	}
	text := fb.Message
	if fb.ShowAnswer && fb.CorrectAnswer != "" {
		text += " The correct answer is: " + fb.CorrectAnswer
	}
	return text
}
