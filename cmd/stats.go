package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/bookworm/internal/quiz"
	"github.com/abhisek/bookworm/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show reading statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		catalog, _ := quiz.LoadCatalog()

		books, err := st.EventRepo().BookStats(ctx)
		if err != nil {
			return fmt.Errorf("load book stats: %w", err)
		}

		fmt.Println("Books")
		if len(books) == 0 {
			fmt.Println("  no questions answered yet")
		}
		for _, bs := range books {
			title := bs.BookID
			if catalog != nil {
				if b := catalog.BookByID(bs.BookID); b != nil {
					title = b.Title
				}
			}
			pct := 0
			if bs.Answered > 0 {
				pct = bs.Correct * 100 / bs.Answered
			}
			fmt.Printf("  %-32s %3d answered  %3d right  %3d%%\n", title, bs.Answered, bs.Correct, pct)
		}

		speechStats, err := st.EventRepo().SpeechStats(ctx)
		if err != nil {
			return fmt.Errorf("load speech stats: %w", err)
		}

		fmt.Println()
		fmt.Println("Narration")
		if len(speechStats) == 0 {
			fmt.Println("  no narration recorded yet")
		}
		for _, sp := range speechStats {
			fmt.Printf("  %-12s %3d attempts  %3d failed\n", sp.Backend, sp.Attempts, sp.Failures)
		}

		return nil
	},
}
