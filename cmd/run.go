package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abhisek/bookworm/internal/app"
	"github.com/abhisek/bookworm/internal/audio"
	"github.com/abhisek/bookworm/internal/logging"
	"github.com/abhisek/bookworm/internal/quiz"
	"github.com/abhisek/bookworm/internal/scoring"
	"github.com/abhisek/bookworm/internal/speech"
	"github.com/abhisek/bookworm/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	log, closeLog := logging.New()
	defer func() { _ = closeLog() }()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	catalog, err := quiz.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	workflow := quiz.NewWorkflow(scoring.NewClient(scoring.ConfigFromEnv()), log)

	// Audio is best effort. Without a player binary the app still
	// runs; intros and remote narration just stay silent.
	var player audio.Player
	if p, err := audio.NewPlayer(); err == nil {
		player = p
	} else {
		log.Warn().Err(err).Msg("no audio player found")
	}

	speechSvc, err := speech.NewService(speech.ConfigFromEnv(), player, log)
	if err != nil {
		log.Warn().Err(err).Msg("speech unavailable")
		speechSvc = speech.NewServiceWithEngines(log)
	}
	speechSvc.SetRecorder(store.NewSpeechRecorder(st.EventRepo(), log))

	intro := audio.NewIntroPlayer(player, audio.ClipsDir(filepath.Dir(dbPath)), log)

	return app.Run(app.Options{
		Catalog:      catalog,
		Workflow:     workflow,
		Speech:       speechSvc,
		Intro:        intro,
		EventRepo:    st.EventRepo(),
		SnapshotRepo: st.SnapshotRepo(),
		Log:          log,
	})
}
