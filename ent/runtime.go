// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/bookworm/ent/answerevent"
	"github.com/abhisek/bookworm/ent/schema"
	"github.com/abhisek/bookworm/ent/sessionevent"
	"github.com/abhisek/bookworm/ent/snapshot"
	"github.com/abhisek/bookworm/ent/speechevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescBookID is the schema descriptor for book_id field.
	answereventDescBookID := answereventFields[1].Descriptor()
	// answerevent.BookIDValidator is a validator for the "book_id" field. It is called by the builders before save.
	answerevent.BookIDValidator = answereventDescBookID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescPrompt is the schema descriptor for prompt field.
	answereventDescPrompt := answereventFields[3].Descriptor()
	// answerevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	answerevent.PromptValidator = answereventDescPrompt.Validators[0].(func(string) error)
	// answereventDescLearnerAnswer is the schema descriptor for learner_answer field.
	answereventDescLearnerAnswer := answereventFields[4].Descriptor()
	// answerevent.LearnerAnswerValidator is a validator for the "learner_answer" field. It is called by the builders before save.
	answerevent.LearnerAnswerValidator = answereventDescLearnerAnswer.Validators[0].(func(string) error)
	// answereventDescAnswerShown is the schema descriptor for answer_shown field.
	answereventDescAnswerShown := answereventFields[6].Descriptor()
	// answerevent.DefaultAnswerShown holds the default value on creation for the answer_shown field.
	answerevent.DefaultAnswerShown = answereventDescAnswerShown.Default.(bool)
	// answereventDescAttempt is the schema descriptor for attempt field.
	answereventDescAttempt := answereventFields[7].Descriptor()
	// answerevent.DefaultAttempt holds the default value on creation for the attempt field.
	answerevent.DefaultAttempt = answereventDescAttempt.Default.(int)
	// answereventDescAnswerFormat is the schema descriptor for answer_format field.
	answereventDescAnswerFormat := answereventFields[9].Descriptor()
	// answerevent.AnswerFormatValidator is a validator for the "answer_format" field. It is called by the builders before save.
	answerevent.AnswerFormatValidator = answereventDescAnswerFormat.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescBookID is the schema descriptor for book_id field.
	sessioneventDescBookID := sessioneventFields[2].Descriptor()
	// sessionevent.BookIDValidator is a validator for the "book_id" field. It is called by the builders before save.
	sessionevent.BookIDValidator = sessioneventDescBookID.Validators[0].(func(string) error)
	// sessioneventDescQuestionsAnswered is the schema descriptor for questions_answered field.
	sessioneventDescQuestionsAnswered := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultQuestionsAnswered holds the default value on creation for the questions_answered field.
	sessionevent.DefaultQuestionsAnswered = sessioneventDescQuestionsAnswered.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	speecheventMixin := schema.SpeechEvent{}.Mixin()
	speecheventMixinFields0 := speecheventMixin[0].Fields()
	_ = speecheventMixinFields0
	speecheventFields := schema.SpeechEvent{}.Fields()
	_ = speecheventFields
	// speecheventDescTimestamp is the schema descriptor for timestamp field.
	speecheventDescTimestamp := speecheventMixinFields0[1].Descriptor()
	// speechevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	speechevent.DefaultTimestamp = speecheventDescTimestamp.Default.(func() time.Time)
	// speecheventDescBackend is the schema descriptor for backend field.
	speecheventDescBackend := speecheventFields[0].Descriptor()
	// speechevent.BackendValidator is a validator for the "backend" field. It is called by the builders before save.
	speechevent.BackendValidator = speecheventDescBackend.Validators[0].(func(string) error)
	// speecheventDescFallback is the schema descriptor for fallback field.
	speecheventDescFallback := speecheventFields[3].Descriptor()
	// speechevent.DefaultFallback holds the default value on creation for the fallback field.
	speechevent.DefaultFallback = speecheventDescFallback.Default.(bool)
}
