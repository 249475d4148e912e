// Package quiz holds the question catalog and the per-question lifecycle:
// the answer state machine and the submission workflow that turns a scoring
// result into rendered and narrated feedback.
package quiz

// AnswerKind distinguishes how a question collects its answer.
type AnswerKind string

const (
	// AnswerFreeText is a typed answer checked by the backend.
	AnswerFreeText AnswerKind = "free_text"

	// AnswerChoice is a single selection from a fixed option set.
	AnswerChoice AnswerKind = "choice"
)

// Question is the static metadata driving one question screen.
type Question struct {
	// ID is unique across the catalog, e.g. "peter-3".
	ID string `yaml:"id"`

	// Number is the 1-based position within the book.
	Number int `yaml:"number"`

	// Prompt is the question text shown to the child.
	Prompt string `yaml:"prompt"`

	// Label is the short answer-field label, e.g. "Genre".
	Label string `yaml:"label"`

	// Kind selects the input component.
	Kind AnswerKind `yaml:"kind"`

	// Choices are the options for AnswerChoice questions.
	Choices []string `yaml:"choices,omitempty"`

	// Endpoint is the scoring path for this question, relative to the
	// configured API base URL.
	Endpoint string `yaml:"endpoint"`

	// IntroClip names the pre-recorded audio file played on mount.
	// Empty means no intro audio for this question.
	IntroClip string `yaml:"intro_clip,omitempty"`
}

// Book groups a story's questions in reading order.
type Book struct {
	// ID is the catalog key, e.g. "peter-rabbit".
	ID string `yaml:"id"`

	Title  string `yaml:"title"`
	Author string `yaml:"author"`

	Questions []Question `yaml:"questions"`
}

// QuestionAt returns the question with the given 1-based number, or nil.
func (b *Book) QuestionAt(number int) *Question {
	for i := range b.Questions {
		if b.Questions[i].Number == number {
			return &b.Questions[i]
		}
	}
	return nil
}

// Next returns the question following q in reading order, or nil when q is
// the book's last question.
func (b *Book) Next(q *Question) *Question {
	return b.QuestionAt(q.Number + 1)
}
