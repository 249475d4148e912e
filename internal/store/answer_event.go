package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abhisek/bookworm/ent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	db     *sql.DB
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetBookID(data.BookID).
		SetQuestionID(data.QuestionID).
		SetPrompt(data.Prompt).
		SetLearnerAnswer(data.LearnerAnswer).
		SetCorrect(data.Correct).
		SetAnswerShown(data.AnswerShown).
		SetAttempt(data.Attempt).
		SetTimeMs(data.TimeMs).
		SetAnswerFormat(data.AnswerFormat).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}
