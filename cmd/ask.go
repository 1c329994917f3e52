package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	shellquote "github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-checkbox/internal/tui"
)

// Output formats for the answer.
const (
	outputLines = "lines"
	outputJSON  = "json"
	outputShell = "shell"
)

var (
	askMessage   string
	askFile      string
	askPrompt    string
	askDefault   string
	askInitial   string
	askChecked   []string
	askDisabled  []string
	askMin       int
	askMax       int
	askQMark     string
	askNoPointer bool
	askMaxHeight int
	askShowHelp  bool
	askOutput    string
)

var askCmd = &cobra.Command{
	Use:   "ask [choice...]",
	Short: "Ask a checkbox question and print the selection",
	Long: `Ask a checkbox question and print the selected values.

Choices are given as arguments, or loaded with --file or --prompt.
An argument starting with --- is a separator (use -- first so the
flag parser leaves it alone).

Keys:
  space     toggle the highlighted choice
  a         select all, or none when all are selected
  i         invert the selection
  up/k      move up
  down/j    move down
  enter     submit
  ctrl+c    abort (exit code 130)

Examples:
  forage-checkbox ask -m "Toppings?" cheese ham olives
  forage-checkbox ask -m "Deploy to" --min 1 -- staging --- prod-eu prod-us
  forage-checkbox ask --prompt toppings -o json`,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askMessage, "message", "m", "", "Question to ask")
	askCmd.Flags().StringVarP(&askFile, "file", "f", "", "Load the question from a TOML prompt file")
	askCmd.Flags().StringVarP(&askPrompt, "prompt", "p", "", "Load a named prompt from the prompts directory")
	askCmd.Flags().StringVar(&askDefault, "default", "", "Pre-select this value")
	askCmd.Flags().StringVar(&askInitial, "initial", "", "Start with the cursor on this value")
	askCmd.Flags().StringArrayVar(&askChecked, "checked", nil, "Pre-select a choice (repeatable)")
	askCmd.Flags().StringArrayVar(&askDisabled, "disabled", nil, "Disable a choice as value=reason (repeatable)")
	askCmd.Flags().IntVar(&askMin, "min", 0, "Minimum number of selections")
	askCmd.Flags().IntVar(&askMax, "max", 0, "Maximum number of selections (0 = no limit)")
	askCmd.Flags().StringVar(&askQMark, "qmark", "", "Question mark prefix")
	askCmd.Flags().BoolVar(&askNoPointer, "no-pointer", false, "Hide the pointer")
	askCmd.Flags().IntVar(&askMaxHeight, "max-height", 0, "Maximum number of visible choices")
	askCmd.Flags().BoolVar(&askShowHelp, "show-help", false, "Show key help below the choices")
	askCmd.Flags().StringVarP(&askOutput, "output", "o", outputLines, "Output format: lines, json or shell")
	askCmd.MarkFlagsMutuallyExclusive("file", "prompt")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := validateOutput(askOutput); err != nil {
		return err
	}

	def, err := askDefinition(cmd, args)
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
	if cmd.Flags().Changed("max-height") {
		opts.MaxHeight = askMaxHeight
	}
	opts.ShowHelp = askShowHelp
	warnDefault(opts)

	// Construction errors are reported even without a terminal.
	if _, err := tui.NewModel(opts); err != nil {
		return err
	}

	a := app.Default
	if !a.IsTerminal() {
		return errors.NotATerminal()
	}

	logging.Debug("asking question", "prompt", def.Name, "choices", len(opts.Choices))

	values, err := tui.Run(cmd.Context(), opts,
		tea.WithInput(a.In),
		tea.WithOutput(a.Out),
	)
	if err != nil {
		return err
	}

	return writeAnswer(cmd.OutOrStdout(), askOutput, values)
}

// askDefinition builds the prompt definition from --file, --prompt or the
// positional choices, then applies flag overrides.
func askDefinition(cmd *cobra.Command, args []string) (*config.PromptDef, error) {
	var def *config.PromptDef
	var err error

	switch {
	case askFile != "" || askPrompt != "":
		if len(args) > 0 {
			return nil, errors.ConfigErrorf("choices cannot be given together with --file or --prompt")
		}
		if len(askChecked) > 0 || len(askDisabled) > 0 {
			return nil, errors.ConfigErrorf("--checked and --disabled only apply to choices given as arguments")
		}
		if askFile != "" {
			def, err = config.LoadPromptFile(askFile)
		} else {
			def, err = config.LoadPrompt(paths().PromptsDir, askPrompt)
		}
		if err != nil {
			return nil, err
		}
	default:
		def, err = argsDefinition(args)
		if err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("message") {
		def.Message = askMessage
	}
	if flags.Changed("default") {
		def.Default = askDefault
	}
	if flags.Changed("initial") {
		def.InitialChoice = askInitial
	}
	if flags.Changed("min") {
		def.MinSelected = askMin
	}
	if flags.Changed("max") {
		def.MaxSelected = askMax
	}
	if flags.Changed("qmark") {
		def.QMark = askQMark
	}
	if askNoPointer {
		def.NoPointer = true
	}

	if err := def.Validate(); err != nil {
		return nil, errors.ConfigError("invalid question", err)
	}
	return def, nil
}

// argsDefinition turns positional arguments into choice records.
func argsDefinition(args []string) (*config.PromptDef, error) {
	if len(args) == 0 {
		return nil, errors.ConfigErrorf("no choices given: pass them as arguments or use --file or --prompt")
	}

	disabled := make(map[string]string, len(askDisabled))
	for _, d := range askDisabled {
		value, reason, ok := strings.Cut(d, "=")
		if !ok || reason == "" {
			reason = "disabled"
		}
		disabled[value] = reason
	}
	checked := make(map[string]bool, len(askChecked))
	for _, c := range askChecked {
		checked[c] = true
	}

	choices := make([]any, 0, len(args))
	known := make(map[string]bool, len(args))
	for _, arg := range args {
		if strings.HasPrefix(arg, "---") {
			line := arg
			if arg == "---" {
				line = ""
			}
			choices = append(choices, map[string]any{"separator": line})
			continue
		}
		record := map[string]any{"name": arg}
		if checked[arg] {
			record["checked"] = true
		}
		if reason, ok := disabled[arg]; ok {
			record["disabled"] = reason
		}
		choices = append(choices, record)
		known[arg] = true
	}

	for _, c := range askChecked {
		if !known[c] {
			logWarning("--checked %q does not match any choice", c)
		}
	}
	for value := range disabled {
		if !known[value] {
			logWarning("--disabled %q does not match any choice", value)
		}
	}

	return &config.PromptDef{Name: "args", Choices: choices}, nil
}

func validateOutput(format string) error {
	switch format {
	case outputLines, outputJSON, outputShell:
		return nil
	}
	return errors.ConfigErrorf("invalid output format %q (must be lines, json or shell)", format)
}

// writeAnswer prints the selected values in the requested format.
func writeAnswer(w io.Writer, format string, values []string) error {
	switch format {
	case outputJSON:
		if values == nil {
			values = []string{}
		}
		enc := json.NewEncoder(w)
		return enc.Encode(values)
	case outputShell:
		_, err := fmt.Fprintln(w, shellquote.Join(values...))
		return err
	default:
		for _, v := range values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	}
}
