package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSpeech(ctx context.Context, data SpeechEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SpeechEvent.Create().
		SetSequence(seqNum).
		SetBackend(data.Backend).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetFallback(data.Fallback).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save speech event: %w", err)
	}
	return nil
}
