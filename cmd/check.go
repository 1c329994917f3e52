package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/choice"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/tui"
)

var checkCmd = &cobra.Command{
	Use:   "check <name|file>",
	Short: "Validate a prompt without asking it",
	Long: `Load a named prompt or a prompt file and build the question without
running it. Reports the same configuration errors ask would.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	def, err := loadPromptRef(args[0])
	if err != nil {
		return err
	}

	s, err := settings()
	if err != nil {
		return err
	}

	opts, err := promptOptions(def, s)
	if err != nil {
		return err
	}
	if _, err := tui.NewModel(opts); err != nil {
		return err
	}
	warnDefault(opts)

	selectable := 0
	for _, item := range opts.Choices {
		if item.Selectable() && !choice.IsSeparator(item) {
			selectable++
		}
	}
	logSuccess("Prompt %s is valid (%d choices, %d selectable)", def.Name, len(opts.Choices), selectable)
	return nil
}
