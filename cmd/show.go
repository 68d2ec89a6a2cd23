package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"cotiza/internal/render"
)

var flagShowOut string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render the full proposal document",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVarP(&flagShowOut, "out", "o", "", "Write the document to a file instead of stdout")
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	b := s.eng.Snapshot()
	opts := render.Options{Currency: currencySymbol(s.cfg)}

	if flagShowOut != "" {
		// Files get the plain document, no ANSI codes.
		lipgloss.SetColorProfile(termenv.Ascii)
		doc := render.Document(b, opts)
		if err := os.WriteFile(flagShowOut, []byte(doc), 0o644); err != nil {
			return fmt.Errorf("writing document: %w", err)
		}
		fmt.Printf("  Wrote proposal to %s\n", flagShowOut)
		return nil
	}

	setupStyling()
	fmt.Print(render.Document(b, opts))
	return nil
}
