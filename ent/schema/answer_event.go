package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single checked answer within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("book_id").
			NotEmpty().
			Comment("Book this question belongs to"),
		field.String("question_id").
			NotEmpty().
			Comment("Question within the book"),
		field.String("prompt").
			NotEmpty().
			Comment("The question shown"),
		field.String("learner_answer").
			NotEmpty().
			Comment("What the reader entered"),
		field.Bool("correct").
			Comment("Whether the checker accepted the answer"),
		field.Bool("answer_shown").
			Default(false).
			Comment("Whether the checker revealed the correct answer"),
		field.Int("attempt").
			Default(1).
			Comment("1 for the first try, incremented on each retry"),
		field.Int("time_ms").
			Comment("Milliseconds from question shown to submit"),
		field.String("answer_format").
			NotEmpty().
			Comment("free_text or choice"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("book_id"),
		index.Fields("question_id"),
		index.Fields("correct"),
	}
}
