package home

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/abhisek/bookworm/internal/quiz"
	"github.com/abhisek/bookworm/internal/store"
)

type snapshotStub struct {
	latest *store.Snapshot
}

func (s *snapshotStub) Save(_ context.Context, snap *store.Snapshot) error {
	s.latest = snap
	return nil
}
func (s *snapshotStub) Latest(_ context.Context) (*store.Snapshot, error) { return s.latest, nil }
func (s *snapshotStub) Prune(_ context.Context, _ int) error              { return nil }
func (s *snapshotStub) Reset(_ context.Context) error                     { s.latest = nil; return nil }

func testBook() *quiz.Book {
	return &quiz.Book{
		ID:     "peter-rabbit",
		Title:  "The Tale of Peter Rabbit",
		Author: "Beatrix Potter",
		Questions: []quiz.Question{
			{ID: "peter-1", Number: 1},
			{ID: "peter-2", Number: 2},
			{ID: "peter-3", Number: 3},
		},
	}
}

func snapWith(progress store.BookProgress) *store.Snapshot {
	return &store.Snapshot{
		Data: store.SnapshotData{
			Version: 1,
			Books:   map[string]store.BookProgress{progress.BookID: progress},
		},
	}
}

func TestBookDetail(t *testing.T) {
	book := testBook()

	tests := []struct {
		name string
		snap *store.Snapshot
		want string
	}{
		{
			name: "no snapshot",
			snap: nil,
			want: "by Beatrix Potter",
		},
		{
			name: "unknown book",
			snap: snapWith(store.BookProgress{BookID: "goldilocks", NextQuestion: 2}),
			want: "by Beatrix Potter",
		},
		{
			name: "in progress",
			snap: snapWith(store.BookProgress{BookID: "peter-rabbit", NextQuestion: 2}),
			want: "by Beatrix Potter · continue at question 2 of 3",
		},
		{
			name: "completed",
			snap: snapWith(store.BookProgress{BookID: "peter-rabbit", NextQuestion: 1, Completed: true}),
			want: "by Beatrix Potter · finished, read again!",
		},
		{
			name: "not started",
			snap: snapWith(store.BookProgress{BookID: "peter-rabbit", NextQuestion: 1}),
			want: "by Beatrix Potter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bookDetail(book, tt.snap)
			if got != tt.want {
				t.Errorf("bookDetail = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHomeScreen_MenuEntries(t *testing.T) {
	catalog := &quiz.Catalog{Books: []quiz.Book{*testBook()}}
	h := New(catalog, nil, nil, nil, nil, nil, zerolog.Nop())

	// One entry per book plus stats and exit.
	if len(h.menu.Items) != 3 {
		t.Fatalf("menu items = %d, want 3", len(h.menu.Items))
	}
	if h.menu.Items[0].Label != "The Tale of Peter Rabbit" {
		t.Errorf("first item = %q", h.menu.Items[0].Label)
	}
	if h.menu.Items[1].Label != "Reading Stats" {
		t.Errorf("second item = %q", h.menu.Items[1].Label)
	}
	if h.menu.Items[2].Label != "Exit" {
		t.Errorf("third item = %q", h.menu.Items[2].Label)
	}
}

func TestHomeScreen_InitRefreshesResumeDetail(t *testing.T) {
	catalog := &quiz.Catalog{Books: []quiz.Book{*testBook()}}
	snaps := &snapshotStub{}
	h := New(catalog, nil, nil, nil, nil, snaps, zerolog.Nop())

	if got := h.menu.Items[0].Detail; got != "by Beatrix Potter" {
		t.Fatalf("detail before progress = %q", got)
	}

	// A session saves progress while the home screen is covered; Init
	// runs when the screen is revealed again and must show it.
	snaps.latest = snapWith(store.BookProgress{BookID: "peter-rabbit", NextQuestion: 2})
	h.menu.Selected = 2
	h.Init()

	want := "by Beatrix Potter · continue at question 2 of 3"
	if got := h.menu.Items[0].Detail; got != want {
		t.Errorf("detail after init = %q, want %q", got, want)
	}
	if h.menu.Selected != 2 {
		t.Errorf("cursor after init = %d, want 2", h.menu.Selected)
	}
}

func TestHomeScreen_Title(t *testing.T) {
	catalog := &quiz.Catalog{Books: []quiz.Book{*testBook()}}
	h := New(catalog, nil, nil, nil, nil, nil, zerolog.Nop())
	if h.Title() != "Bookworm" {
		t.Errorf("Title = %q", h.Title())
	}
}
