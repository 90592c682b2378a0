// Package cli implements the command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/fsq/internal/config"
	"github.com/aidanlsb/fsq/internal/ui"
)

var (
	// Global flags
	configPath  string
	noColorFlag bool

	// Resolved values
	resolvedConfigPath string
	cfg                *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fsq",
	Short: "fsq - query your filesystem with SQL",
	Long: `fsq treats directories as tables: SELECT over files with WHERE
conditions on name, size, timestamps and permissions, recursive
traversal via WITH RECURSIVE, and guarded attribute updates via UPDATE.

Examples:
  fsq query "SELECT * FROM ~/Documents WHERE extension = 'txt'"
  fsq query "WITH RECURSIVE SELECT * FROM /var/log WHERE size > 1000000"
  fsq query "UPDATE ./scripts SET permissions = '755' WHERE extension = 'sh'"
  fsq list ~/Downloads --sort size --long`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "completion", "help", "version":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		var err error
		resolvedConfigPath = config.ResolvePath(configPath)
		cfg, err = config.LoadFrom(resolvedConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if noColorFlag || !ui.NewDisplayContext().IsTTY {
			ui.DisableStyling()
		} else {
			ui.ConfigureTheme(cfg.UI.Accent)
			ui.ConfigureMarkdownCodeTheme(cfg.UI.CodeTheme)
		}
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
}

// getConfig returns the loaded config.
func getConfig() *config.Config {
	if cfg == nil {
		return &config.Config{}
	}
	return cfg
}

// getConfigPath returns the resolved global config path.
func getConfigPath() string {
	return resolvedConfigPath
}
