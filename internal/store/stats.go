package store

// Aggregate queries over the event log.
//
// These run as raw SQL against the ent-managed tables. Grouped
// conditional counts are awkward to express through the ent query
// builder, and the store already owns a raw handle for the sequence
// counter.

import (
	"context"
	"fmt"
)

func (r *eventRepo) BookStats(ctx context.Context) ([]BookStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT book_id,
		       COUNT(*),
		       SUM(CASE WHEN correct THEN 1 ELSE 0 END)
		FROM answer_events
		GROUP BY book_id
		ORDER BY book_id`)
	if err != nil {
		return nil, fmt.Errorf("query book stats: %w", err)
	}
	defer rows.Close()

	var stats []BookStats
	for rows.Next() {
		var s BookStats
		if err := rows.Scan(&s.BookID, &s.Answered, &s.Correct); err != nil {
			return nil, fmt.Errorf("scan book stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *eventRepo) SpeechStats(ctx context.Context) ([]SpeechStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT backend,
		       COUNT(*),
		       SUM(CASE WHEN success THEN 0 ELSE 1 END)
		FROM speech_events
		GROUP BY backend
		ORDER BY backend`)
	if err != nil {
		return nil, fmt.Errorf("query speech stats: %w", err)
	}
	defer rows.Close()

	var stats []SpeechStats
	for rows.Next() {
		var s SpeechStats
		if err := rows.Scan(&s.Backend, &s.Attempts, &s.Failures); err != nil {
			return nil, fmt.Errorf("scan speech stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *eventRepo) Reset(ctx context.Context) error {
	if _, err := r.client.AnswerEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("reset answer events: %w", err)
	}
	if _, err := r.client.SessionEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("reset session events: %w", err)
	}
	if _, err := r.client.SpeechEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("reset speech events: %w", err)
	}
	return nil
}
