package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "patience",
	Short: "Klondike solitaire for the terminal",
	Long: `Patience is a game of Klondike solitaire played in the terminal.
Games are dealt from seeded shuffles, so any game can be replayed or shared
by its seed.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
