package cmd

import (
	"fmt"
	"math/rand"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arcanaland/patience/internal/config"
	"github.com/arcanaland/patience/internal/deck"
	"github.com/arcanaland/patience/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive game of solitaire",
	Long: `Play starts an interactive Klondike game in the terminal.

Without a seed, every run deals a random game. Pass --seed with any phrase
to replay a specific deal, and --draw to override the configured number of
cards turned over per draw.

Examples:
  patience play
  patience play --seed "rainy tuesday"
  patience play --draw 3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		drawCount := cfg.DrawCount
		if cmd.Flags().Changed("draw") {
			drawCount, _ = cmd.Flags().GetInt("draw")
		}
		if drawCount != 1 && drawCount != 3 {
			return fmt.Errorf("draw must be 1 or 3, got %d", drawCount)
		}

		seedFlag, _ := cmd.Flags().GetString("seed")
		seed := rand.Int63()
		if seedFlag != "" {
			seed = deck.SeedFromString(seedFlag)
		}

		model := tui.New(seed, drawCount)
		p := tea.NewProgram(model, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running game: %v", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().StringP("seed", "s", "", "Seed phrase for a reproducible deal")
	playCmd.Flags().IntP("draw", "d", 1, "Cards turned over per draw (1 or 3)")
}
