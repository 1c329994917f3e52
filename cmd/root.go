package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configDir  string
)

var rootCmd = &cobra.Command{
	Use:   "forage-checkbox",
	Short: "Ask multi-select questions in the terminal",
	Long: `forage-checkbox asks a checkbox question and prints the selected values.

Questions come from the command line or from TOML prompt files:
  - positional arguments are the choices
  - prompts/<name>.toml in the config directory are named prompts
  - config.toml holds default styles and key bindings

The answer is printed to stdout; the prompt itself is drawn on stderr.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
		if configDir != "" {
			app.Default.Paths = config.NewPaths(configDir)
			app.Default.Settings = nil
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default $"+config.EnvConfigDir+" or the user config directory)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
