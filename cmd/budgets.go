package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cotiza/internal/config"
	"cotiza/internal/render"
	"cotiza/internal/store"
)

var flagNewForce bool

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Manage saved budgets",
}

var budgetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved budgets",
	RunE:  runBudgetsList,
}

var budgetsSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a copy of the working budget under a name",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetsSave,
}

var budgetsLoadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Replace the working budget with a saved one",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetsLoad,
}

var budgetsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved budget",
	Args:  cobra.ExactArgs(1),
	RunE:  runBudgetsDelete,
}

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a fresh budget",
	RunE:  runNew,
}

func init() {
	budgetsCmd.AddCommand(budgetsListCmd, budgetsSaveCmd, budgetsLoadCmd, budgetsDeleteCmd)
	newCmd.Flags().BoolVarP(&flagNewForce, "force", "f", false, "Discard the working budget without asking")
	rootCmd.AddCommand(budgetsCmd, newCmd)
}

func requireStore(s *session) error {
	if s.store == nil {
		return fmt.Errorf("storage is unavailable")
	}
	return nil
}

func runBudgetsList(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()
	if err := requireStore(s); err != nil {
		return err
	}

	saved, err := s.store.List()
	if err != nil {
		return err
	}
	if len(saved) == 0 {
		fmt.Println("\n  No saved budgets.")
		return nil
	}

	setupStyling()
	rows := make([][]string, 0, len(saved))
	for _, sb := range saved {
		rows = append(rows, []string{sb.Name, sb.SavedAt.Local().Format("2006-01-02 15:04")})
	}
	fmt.Println()
	fmt.Print(render.RenderTable(render.Table{
		Headers: []string{"Name", "Saved"},
		Rows:    rows,
	}))
	return nil
}

func runBudgetsSave(_ *cobra.Command, args []string) error {
	name := args[0]
	if name == store.CurrentSlot {
		return fmt.Errorf("%q is reserved for the working budget", store.CurrentSlot)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()
	if err := requireStore(s); err != nil {
		return err
	}

	if err := s.store.Save(name, s.eng.Snapshot()); err != nil {
		return err
	}
	fmt.Printf("  Saved budget as %q\n", name)
	return nil
}

func runBudgetsLoad(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()
	if err := requireStore(s); err != nil {
		return err
	}

	b, ok, err := s.store.Load(args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no saved budget named %q", args[0])
	}

	s.eng.Replace(b)
	fmt.Printf("  Loaded budget %q\n", args[0])
	return nil
}

func runBudgetsDelete(_ *cobra.Command, args []string) error {
	if args[0] == store.CurrentSlot {
		return fmt.Errorf("cannot delete the working budget; use `cotiza new` instead")
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()
	if err := requireStore(s); err != nil {
		return err
	}

	if err := s.store.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("  Deleted budget %q\n", args[0])
	return nil
}

func runNew(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	b := s.eng.Snapshot()
	if !flagNewForce && (len(b.Projects) > 0 || b.ClientName != "") {
		return fmt.Errorf("working budget is not empty; save it with `cotiza budgets save <name>` or pass --force")
	}

	s.eng.Replace(config.NewBudget(s.cfg))
	fmt.Println("  Started a fresh budget.")
	return nil
}
