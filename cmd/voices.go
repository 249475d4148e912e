package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/bookworm/internal/speech"
)

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List local text-to-speech voices",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := speech.NewLocalEngine(speech.DefaultConfig().Local)
		if err != nil {
			return fmt.Errorf("no local speech synthesizer found: %w", err)
		}

		voices, err := engine.ListVoices(cmd.Context())
		if err != nil {
			return fmt.Errorf("list voices: %w", err)
		}
		if len(voices) == 0 {
			fmt.Println("No voices reported.")
			return nil
		}

		preferred := speech.PreferredVoice(voices)
		for _, v := range voices {
			marker := "  "
			if v.Name == preferred {
				marker = "* "
			}
			fmt.Printf("%s%-24s %-10s %s\n", marker, v.Name, v.Language, v.Gender)
		}
		if preferred != "" {
			fmt.Printf("\n* picked by default; override with BOOKWORM_TTS_VOICE\n")
		}
		return nil
	},
}
