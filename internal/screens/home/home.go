package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/abhisek/bookworm/internal/audio"
	"github.com/abhisek/bookworm/internal/quiz"
	"github.com/abhisek/bookworm/internal/router"
	"github.com/abhisek/bookworm/internal/screen"
	"github.com/abhisek/bookworm/internal/screens/question"
	"github.com/abhisek/bookworm/internal/screens/stats"
	sess "github.com/abhisek/bookworm/internal/session"
	"github.com/abhisek/bookworm/internal/speech"
	"github.com/abhisek/bookworm/internal/store"
	"github.com/abhisek/bookworm/internal/ui/components"
	"github.com/abhisek/bookworm/internal/ui/theme"
)

// HomeScreen lists the bookshelf and the app-level entries.
type HomeScreen struct {
	catalog   *quiz.Catalog
	workflow  *quiz.Workflow
	speechSvc *speech.Service
	intro     *audio.IntroPlayer
	events    store.EventRepo
	snapshots store.SnapshotRepo
	log       zerolog.Logger

	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New builds the home menu. Book entries resume where the reader left
// off; finished books restart from question one.
func New(catalog *quiz.Catalog, workflow *quiz.Workflow, speechSvc *speech.Service, intro *audio.IntroPlayer, events store.EventRepo, snapshots store.SnapshotRepo, log zerolog.Logger) *HomeScreen {
	h := &HomeScreen{
		catalog:   catalog,
		workflow:  workflow,
		speechSvc: speechSvc,
		intro:     intro,
		events:    events,
		snapshots: snapshots,
		log:       log,
	}
	h.menu = components.NewMenu(h.buildItems())
	return h
}

func (h *HomeScreen) buildItems() []components.MenuItem {
	ctx := context.Background()

	var snap *store.Snapshot
	if h.snapshots != nil {
		snap, _ = h.snapshots.Latest(ctx)
	}

	var items []components.MenuItem
	for i := range h.catalog.Books {
		book := &h.catalog.Books[i]
		items = append(items, components.MenuItem{
			Label:  book.Title,
			Detail: bookDetail(book, snap),
			Action: func() tea.Cmd {
				startAt := sess.ResumePoint(ctx, h.snapshots, book)
				s := sess.New(book, h.events, h.snapshots, h.log)
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: question.New(book, startAt, h.workflow, h.speechSvc, h.intro, s),
					}
				}
			},
		})
	}

	return append(items,
		components.MenuItem{
			Label: "Reading Stats",
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: stats.New(h.events, h.catalog)}
				}
			},
		},
		components.MenuItem{
			Label: "Exit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)
}

// bookDetail summarizes where the reader stands in a book.
func bookDetail(book *quiz.Book, snap *store.Snapshot) string {
	byline := "by " + book.Author
	if snap == nil {
		return byline
	}
	progress, ok := snap.Data.Books[book.ID]
	if !ok {
		return byline
	}
	if progress.Completed {
		return byline + " · finished, read again!"
	}
	if progress.NextQuestion > 1 {
		return fmt.Sprintf("%s · continue at question %d of %d",
			byline, progress.NextQuestion, len(book.Questions))
	}
	return byline
}

// Init rebuilds the bookshelf. The screen is re-shown rather than
// reconstructed when the reader returns from a session, and the resume
// details must reflect the snapshot that session just wrote. The
// cursor position survives the rebuild.
func (h *HomeScreen) Init() tea.Cmd {
	selected := h.menu.Selected
	h.menu = components.NewMenu(h.buildItems())
	if selected < len(h.menu.Items) {
		h.menu.Selected = selected
	}
	return nil
}

func (h *HomeScreen) Title() string {
	return "Bookworm"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Width(width).
		Align(lipgloss.Center).
		Render("Which story did you read?")
	sub := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width).
		Align(lipgloss.Center).
		Render("Answer questions about the story to show what you remember.")

	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(sub)
	b.WriteString("\n\n")

	menu := h.menu.View()
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(menu))

	return b.String()
}
