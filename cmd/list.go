package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/errors"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List named prompts",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	p := paths()

	prompts, err := config.ListPrompts(p.PromptsDir)
	if err != nil {
		return errors.Wrap(errors.ExitGeneralError, "failed to list prompts", err)
	}

	if len(prompts) == 0 {
		logInfo("No prompts found. Add TOML files to %s", p.PromptsDir)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROMPT\tCHOICES\tMESSAGE")
	fmt.Fprintln(w, "------\t-------\t-------")

	for _, def := range prompts {
		fmt.Fprintf(w, "%s\t%d\t%s\n", def.Name, len(def.Choices), def.Message)
	}

	return w.Flush()
}
