package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, Timeout: 2 * time.Second})
}

func TestScoreNormalizesSnakeCase(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/check-question3/", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "Fiction", body["answer"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"is_correct": true, "message": "Well done!", "show_answer": false}`))
	})

	fb, err := c.Score(context.Background(), "/api/check-question3/", "Fiction")
	require.NoError(t, err)
	assert.True(t, fb.Correct)
	assert.Equal(t, "Well done!", fb.Message)
	assert.False(t, fb.ShowAnswer)
	assert.Empty(t, fb.CorrectAnswer)
}

func TestScoreNormalizesCamelCase(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"isCorrect": false,
			"message": "Not quite.",
			"correct_answer": "Fiction",
			"show_answer": true,
			"misspelled_words": ["ficton"],
			"feedback_type": "partial"
		}`))
	})

	fb, err := c.Score(context.Background(), "/check", "ficton")
	require.NoError(t, err)
	assert.False(t, fb.Correct)
	assert.Equal(t, "Not quite.", fb.Message)
	assert.Equal(t, "Fiction", fb.CorrectAnswer)
	assert.True(t, fb.ShowAnswer)
	assert.Equal(t, []string{"ficton"}, fb.MisspelledWords)
	assert.Equal(t, "partial", fb.Type)
}

func TestScoreMessageFallsBackToResult(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"is_correct": true, "result": "Great title!"}`))
	})

	fb, err := c.Score(context.Background(), "/check", "The Tale of Peter Rabbit")
	require.NoError(t, err)
	assert.Equal(t, "Great title!", fb.Message)
}

func TestScorePayloadError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "Please enter an answer."}`))
	})

	_, err := c.Score(context.Background(), "/check", "x")
	var serverErr *ErrServer
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "Please enter an answer.", serverErr.Message)
}

func TestScoreNonSuccessStatusIsTransportError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// The backend sends {error} bodies with 4xx/5xx too, but a non-2xx
		// is always a transport failure, never an application error.
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "AI service temporarily unavailable."}`))
	})

	_, err := c.Score(context.Background(), "/check", "x")
	var transportErr *ErrTransport
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.StatusInternalServerError, transportErr.StatusCode)

	var serverErr *ErrServer
	assert.False(t, errors.As(err, &serverErr))
}

func TestScoreConnectionRefused(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://127.0.0.1:1", Timeout: time.Second})

	_, err := c.Score(context.Background(), "/check", "x")
	var transportErr *ErrTransport
	require.ErrorAs(t, err, &transportErr)
	assert.Zero(t, transportErr.StatusCode)
}

func TestScoreTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"is_correct": true, "message": "too late"}`))
	})
	c.http.SetTimeout(50 * time.Millisecond)

	_, err := c.Score(context.Background(), "/check", "x")
	var timeoutErr *ErrTimeout
	require.ErrorAs(t, err, &timeoutErr)
}

func TestScoreMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"missing correctness and error", `{"message": "hello"}`},
		{"wrong types", `{"is_correct": "yes", "message": 3}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			_, err := c.Score(context.Background(), "/check", "x")
			var invalidErr *ErrInvalidPayload
			require.ErrorAs(t, err, &invalidErr)
		})
	}
}
