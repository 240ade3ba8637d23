package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/patience/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		fmt.Println("config file:", config.GetConfigFilePath())
		fmt.Println("draw_count: ", cfg.DrawCount)
		fmt.Println("color:      ", cfg.Color)
		return nil
	},
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}

		fmt.Println("Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}
