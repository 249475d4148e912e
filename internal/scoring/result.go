package scoring

// Feedback is the canonical scoring result for one submitted answer.
// It is normalized at the network boundary: the backend emits both
// `is_correct` and `isCorrect` depending on the endpoint, and a handful of
// optional advisory fields. Everything downstream (state machine, narration,
// rendering) sees only this shape.
type Feedback struct {
	// Correct reports whether the answer was accepted.
	Correct bool

	// Message is the human-readable explanation shown and narrated to the child.
	Message string

	// CorrectAnswer is the canonical answer. It is meaningful only when
	// ShowAnswer is true; callers must not render or speak it otherwise.
	CorrectAnswer string

	// ShowAnswer is the server-controlled reveal flag. Never inferred
	// client-side.
	ShowAnswer bool

	// MisspelledWords lists substrings of the learner's answer flagged for
	// highlighting. Free-text questions only; may be empty.
	MisspelledWords []string

	// Type is the backend's feedback category when supplied
	// ("excellent", "good", "partial", "incorrect", ...). Advisory only.
	Type string
}

// payload mirrors the wire shape of a successful scoring response before
// normalization. Both correctness spellings are accepted.
type payload struct {
	IsCorrectSnake *bool    `json:"is_correct"`
	IsCorrectCamel *bool    `json:"isCorrect"`
	Message        string   `json:"message"`
	Result         string   `json:"result"`
	CorrectAnswer  string   `json:"correct_answer"`
	ShowAnswer     bool     `json:"show_answer"`
	Misspelled     []string `json:"misspelled_words"`
	FeedbackType   string   `json:"feedback_type"`
	Error          string   `json:"error"`
}

// normalize converts a wire payload into the canonical Feedback.
func (p *payload) normalize() *Feedback {
	correct := false
	switch {
	case p.IsCorrectSnake != nil:
		correct = *p.IsCorrectSnake
	case p.IsCorrectCamel != nil:
		correct = *p.IsCorrectCamel
	}

	// Some endpoints put the message under "result".
	msg := p.Message
	if msg == "" {
		msg = p.Result
	}

	return &Feedback{
		Correct:         correct,
		Message:         msg,
		CorrectAnswer:   p.CorrectAnswer,
		ShowAnswer:      p.ShowAnswer,
		MisspelledWords: p.Misspelled,
		Type:            p.FeedbackType,
	}
}
