package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"cotiza/internal/engine"
	"cotiza/internal/model"
)

var (
	flagNarrativeFile  string
	flagNarrativeReset bool
)

// narrativeField wires one free-text budget block to a subcommand. Each
// field is independent; the engine stores the text verbatim.
type narrativeField struct {
	use     string
	short   string
	get     func(model.Budget) string
	set     func(*engine.Engine, string)
	defText string
}

var narrativeFields = []narrativeField{
	{
		use:   "terms",
		short: "Edit the terms & conditions text",
		get:   func(b model.Budget) string { return b.Terms },
		set:   (*engine.Engine).SetTerms, defText: model.DefaultTerms,
	},
	{
		use:   "payment",
		short: "Edit the payment terms text",
		get:   func(b model.Budget) string { return b.PaymentTerms },
		set:   (*engine.Engine).SetPaymentTerms, defText: model.DefaultPaymentTerms,
	},
	{
		use:   "support",
		short: "Edit the post-project support text",
		get:   func(b model.Budget) string { return b.SupportTerms },
		set:   (*engine.Engine).SetSupportTerms, defText: model.DefaultSupportTerms,
	},
	{
		use:   "estimate",
		short: "Edit the time estimate text ([SEMANAS] expands to the week count)",
		get:   func(b model.Budget) string { return b.TimeEstimate },
		set:   (*engine.Engine).SetTimeEstimate, defText: model.DefaultTimeEstimate,
	},
	{
		use:   "note",
		short: "Edit the project note text",
		get:   func(b model.Budget) string { return b.ProjectNote },
		set:   (*engine.Engine).SetProjectNote, defText: model.DefaultProjectNote,
	},
	{
		use:   "message",
		short: "Edit the message shown before the price tables",
		get:   func(b model.Budget) string { return b.PreTableMessage },
		set:   (*engine.Engine).SetPreTableMessage, defText: "",
	},
}

func init() {
	for _, f := range narrativeFields {
		field := f
		c := &cobra.Command{
			Use:   field.use + " [text]",
			Short: field.short,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runNarrative(cmd, args, field)
			},
		}
		c.Flags().StringVar(&flagNarrativeFile, "file", "", "Read the text from a file (\"-\" for stdin)")
		c.Flags().BoolVar(&flagNarrativeReset, "reset", false, "Restore the built-in default text")
		rootCmd.AddCommand(c)
	}
}

func runNarrative(cmd *cobra.Command, args []string, field narrativeField) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	switch {
	case flagNarrativeReset:
		field.set(s.eng, field.defText)
		fmt.Printf("  Restored default %s text.\n", field.use)

	case cmd.Flags().Changed("file"):
		text, err := readNarrativeFile(flagNarrativeFile)
		if err != nil {
			return err
		}
		field.set(s.eng, text)
		fmt.Printf("  Updated %s text.\n", field.use)

	case len(args) == 1:
		field.set(s.eng, args[0])
		fmt.Printf("  Updated %s text.\n", field.use)

	default:
		fmt.Println(field.get(s.eng.Snapshot()))
	}
	return nil
}

func readNarrativeFile(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
