package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/patience/internal/card"
	"github.com/arcanaland/patience/internal/config"
	"github.com/arcanaland/patience/internal/deck"
	"github.com/arcanaland/patience/internal/engine"
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Deal a game and print the board",
	Long: `Deal shuffles a deck, lays out a Klondike board and prints it.

A sequence of moves can be applied before printing with --moves, using a
compact notation: "d" draws from the stock, "w-t3" moves the waste card onto
tableau 3, "t1:2-t4" moves the top two cards of tableau 1 onto tableau 4, and
"t2-f" sends the top of tableau 2 to its foundation.

Examples:
  patience deal --seed "rainy tuesday"
  patience deal --seed demo --moves d,w-t3,t1-f
  patience deal --legal`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		switch cfg.Color {
		case "always":
			color.NoColor = false
		case "never":
			color.NoColor = true
		}

		drawCount := cfg.DrawCount
		if cmd.Flags().Changed("draw") {
			drawCount, _ = cmd.Flags().GetInt("draw")
		}

		seedFlag, _ := cmd.Flags().GetString("seed")
		seed := rand.Int63()
		if seedFlag != "" {
			seed = deck.SeedFromString(seedFlag)
		}

		d := deck.New()
		deck.Shuffle(d, seed)
		board := engine.Deal(d, drawCount)

		moves, _ := cmd.Flags().GetStringSlice("moves")
		for _, notation := range moves {
			move, err := engine.ParseMove(board, notation)
			if err != nil {
				return err
			}
			if err := board.Apply(move); err != nil {
				return fmt.Errorf("move %q: %v", notation, err)
			}
		}

		if err := board.Check(); err != nil {
			return fmt.Errorf("board invariant violated: %v", err)
		}

		printBoard(board)

		if legal, _ := cmd.Flags().GetBool("legal"); legal {
			fmt.Println()
			printLegalMoves(board)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(dealCmd)

	dealCmd.Flags().StringP("seed", "s", "", "Seed phrase for a reproducible deal")
	dealCmd.Flags().IntP("draw", "d", 1, "Cards turned over per draw (1 or 3)")
	dealCmd.Flags().StringSlice("moves", nil, "Moves to apply before printing")
	dealCmd.Flags().Bool("legal", false, "List the legal moves in the printed position")
}

var (
	redCard   = color.New(color.FgRed)
	blackCard = color.New(color.FgWhite)
	cardBack  = color.New(color.FgBlue)
	faint     = color.New(color.Faint)
)

// sprintCard renders one card with suit coloring, padded to four columns
func sprintCard(c card.Card) string {
	if !c.FaceUp {
		return cardBack.Sprint("##") + "  "
	}
	label := c.Rank.String() + c.Suit.String()
	if c.Suit.Color() == card.Red {
		return redCard.Sprint(label) + "  "
	}
	return blackCard.Sprint(label) + "  "
}

// printBoard writes the board to stdout. On wide terminals the tableaus are
// printed side by side; narrow ones get one pile per line.
func printBoard(b *engine.Board) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width = 80
	}

	fmt.Printf("%s %2d  %s ", faint.Sprint("stock:"), b.Stock.Len(), faint.Sprint("waste:"))
	if top, ok := b.Waste.Peek(); ok {
		fmt.Print(sprintCard(top))
	} else {
		fmt.Print(faint.Sprint("-  "))
	}

	fmt.Print(" ")
	for _, suit := range card.Suits {
		f := b.Foundations[suit]
		if top, ok := f.Peek(); ok {
			fmt.Print(sprintCard(top))
		} else {
			fmt.Print(faint.Sprintf("%v", suit) + "   ")
		}
	}
	fmt.Println()
	fmt.Println()

	if width < 40 {
		printNarrow(b)
		return
	}

	// Tableaus side by side, row by row.
	depth := 0
	for _, t := range b.Tableaus {
		if t.Len() > depth {
			depth = t.Len()
		}
	}

	for i := range b.Tableaus {
		fmt.Print(faint.Sprintf(" %d  ", i+1))
	}
	fmt.Println()

	for row := 0; row < depth; row++ {
		for _, t := range b.Tableaus {
			if row < t.Len() {
				fmt.Print(sprintCard(t[row]))
			} else {
				fmt.Print("    ")
			}
		}
		fmt.Println()
	}
}

// printNarrow prints one tableau per line for small terminals
func printNarrow(b *engine.Board) {
	for i, t := range b.Tableaus {
		var sb strings.Builder
		for _, c := range t {
			sb.WriteString(sprintCard(c))
		}
		fmt.Printf("%s %s\n", faint.Sprintf("t%d:", i+1), sb.String())
	}
}

func printLegalMoves(b *engine.Board) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		fmt.Println("no legal moves")
		return
	}
	fmt.Printf("%d legal moves:\n", len(moves))
	for _, m := range moves {
		fmt.Printf("  %v\n", m)
	}
}
