package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cotiza/internal/engine"
	"cotiza/internal/render"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage budget projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new project",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProjectAdd,
}

var projectRenameCmd = &cobra.Command{
	Use:   "rename <project> <name>",
	Short: "Rename a project",
	Args:  cobra.ExactArgs(2),
	RunE:  runProjectRename,
}

var projectRmCmd = &cobra.Command{
	Use:   "rm <project>",
	Short: "Remove a project and all its items",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectRm,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects with their hours and totals",
	RunE:  runProjectList,
}

func init() {
	projectCmd.AddCommand(projectAddCmd, projectRenameCmd, projectRmCmd, projectListCmd)
	rootCmd.AddCommand(projectCmd)
}

func runProjectAdd(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	id := s.eng.AddProject()
	if len(args) == 1 {
		s.eng.RenameProject(id, args[0])
	}

	b := s.eng.Snapshot()
	fmt.Printf("  Added project %d (%s)\n", len(b.Projects), shortID(id))
	return nil
}

func runProjectRename(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	p, err := resolveProject(s.eng.Snapshot(), args[0])
	if err != nil {
		return err
	}
	s.eng.RenameProject(p.ID, args[1])
	fmt.Printf("  Renamed %s to %q\n", shortID(p.ID), args[1])
	return nil
}

func runProjectRm(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	p, err := resolveProject(s.eng.Snapshot(), args[0])
	if err != nil {
		return err
	}
	s.eng.RemoveProject(p.ID)
	fmt.Printf("  Removed project %q (%d items)\n", p.Name, len(p.Items))
	return nil
}

func runProjectList(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	setupStyling()
	b := s.eng.Snapshot()
	if len(b.Projects) == 0 {
		fmt.Println("\n  No projects yet. Add one with `cotiza project add <name>`.")
		return nil
	}

	money := currencyFormatter(s.cfg)
	rows := make([][]string, 0, len(b.Projects))
	for i, p := range b.Projects {
		name := p.Name
		if name == "" {
			name = "(untitled)"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			shortID(p.ID),
			name,
			fmt.Sprintf("%d", len(p.Items)),
			render.FormatHours(engine.ProjectHours(p)),
			money(engine.ProjectTotal(b, p)),
		})
	}

	fmt.Println()
	fmt.Print(render.RenderTable(render.Table{
		Headers: []string{"#", "ID", "Name", "Items", "Hours", "Total"},
		Rows:    rows,
	}))
	return nil
}
