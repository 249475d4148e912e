package session

import "time"

// Summary holds the data displayed on the summary screen.
type Summary struct {
	BookTitle      string
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	FirstTry       int
	Accuracy       float64
}

// BuildSummary creates a Summary from the session so far.
func (s *Session) BuildSummary() *Summary {
	var accuracy float64
	if s.answered > 0 {
		accuracy = float64(s.firstTry) / float64(s.answered)
	}
	return &Summary{
		BookTitle:      s.Book.Title,
		Duration:       time.Since(s.startTime),
		TotalQuestions: s.answered,
		TotalCorrect:   s.correct,
		FirstTry:       s.firstTry,
		Accuracy:       accuracy,
	}
}
