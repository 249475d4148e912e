package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SpeechEvent records one text-to-speech synthesis attempt, including
// fallbacks from the remote voice to the local synthesizer.
type SpeechEvent struct {
	ent.Schema
}

func (SpeechEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SpeechEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("backend").
			NotEmpty().
			Comment("elevenlabs or local"),
		field.Int64("latency_ms").
			Comment("Synthesis plus playback duration"),
		field.Bool("success").
			Comment("Whether the utterance played"),
		field.Bool("fallback").
			Default(false).
			Comment("Whether this attempt ran because an earlier backend failed"),
	}
}

func (SpeechEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("backend"),
		index.Fields("success"),
	}
}
