package question

import (
	"time"

	"github.com/abhisek/bookworm/internal/scoring"
)

// checkResultMsg carries the checker's verdict for a submitted answer.
type checkResultMsg struct {
	Answer   string
	Feedback *scoring.Feedback
}

// narrateMsg fires when the pause between showing feedback and speaking
// it ends.
type narrateMsg struct{}

// narrationDoneMsg reports that an utterance finished, failed, or was
// cut off. Informational; the screen never blocks on it.
type narrationDoneMsg struct {
	Err error
}

// introDoneMsg reports that the intro clip finished, failed, or was cut
// off. A failure enables the manual play control.
type introDoneMsg struct {
	Err error
}

// spinnerTickMsg animates the checking indicator.
type spinnerTickMsg time.Time
