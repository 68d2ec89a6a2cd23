package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cotiza/internal/snapshot"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the budget to a JSON snapshot",
	Long:  "Write the full budget as JSON. Without a file argument the snapshot is named after the client, as presupuesto-<client>.json.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the budget with a JSON snapshot",
	Long:  "Validate and load a previously exported snapshot. On any validation error the current budget is left untouched.",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	b := s.eng.Snapshot()

	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		client := strings.TrimSpace(b.ClientName)
		if client == "" {
			client = "cliente"
		}
		path = fmt.Sprintf("presupuesto-%s.json", slugify(client))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := snapshot.Write(f, b); err != nil {
		return err
	}
	fmt.Printf("  Exported budget to %s\n", path)
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("opening %s: %w", args[0], err)
	}
	defer f.Close()

	b, err := snapshot.Read(f)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	s.eng.Replace(b)
	fmt.Printf("  Imported budget for %q (%d projects, %d items)\n",
		b.ClientName, len(b.Projects), b.ItemCount())
	return nil
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	if b.Len() == 0 {
		return "cliente"
	}
	return b.String()
}
