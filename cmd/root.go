package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"cotiza/internal/config"
	"cotiza/internal/engine"
	"cotiza/internal/model"
	"cotiza/internal/render"
	"cotiza/internal/store"
)

var (
	flagDBPath string
	flagPlain  bool
)

var rootCmd = &cobra.Command{
	Use:   "cotiza",
	Short: "Terminal budget & quotation builder",
	Long:  "Build client budgets from hourly or fixed-price line items, compute totals and IGV, and render a formatted proposal.",
	RunE:  runStatus,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Budget database path (defaults to the XDG data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "Disable colors and styling")
}

// session bundles the loaded config, the open store, and the engine holding
// the working budget. The store may be nil when persistence is unavailable;
// editing then proceeds in memory only.
type session struct {
	cfg   config.Config
	store *store.Store
	eng   *engine.Engine
}

// openSession loads config and the saved working budget, falling back to a
// fresh default budget when either is unavailable. Every mutation autosaves
// through the engine's observer.
func openSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  config error: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}

	path := flagDBPath
	if path == "" {
		path = cfg.Storage.DBPath
	}
	if path == "" {
		path = store.DefaultPath()
	}

	st, err := store.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  storage unavailable: %v (changes will not persist)\n", err)
		st = nil
	}

	var eng *engine.Engine
	if st != nil {
		b, ok, err := st.Load(store.CurrentSlot)
		switch {
		case err != nil:
			fmt.Fprintf(os.Stderr, "  saved budget unreadable: %v (starting fresh)\n", err)
		case ok:
			eng = engine.NewFromSnapshot(b)
		}
	}
	if eng == nil {
		eng = engine.NewFromSnapshot(config.NewBudget(cfg))
	}

	if st != nil {
		eng.Subscribe(func(b model.Budget) {
			if err := st.Save(store.CurrentSlot, b); err != nil {
				fmt.Fprintf(os.Stderr, "  autosave failed: %v\n", err)
			}
		})
	}

	return &session{cfg: cfg, store: st, eng: eng}, nil
}

func (s *session) Close() {
	if s.store != nil {
		_ = s.store.Close()
	}
}

// setupStyling picks the color profile: full color on a terminal, no ANSI at
// all when piped or when --plain is set.
func setupStyling() {
	if flagPlain || !isatty.IsTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func runStatus(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	setupStyling()
	b := s.eng.Snapshot()
	money := currencyFormatter(s.cfg)

	fmt.Println()
	fmt.Println(render.RenderTitle("cotiza"))
	fmt.Println()

	client := b.ClientName
	if client == "" {
		client = "(sin cliente)"
	}

	rows := [][]string{
		{"Cliente", client},
		{"Proyectos", fmt.Sprintf("%d", len(b.Projects))},
		{"Ítems", fmt.Sprintf("%d", b.ItemCount())},
		{"Tarifa por hora", money(b.HourlyRate)},
		{"---"},
		{"Horas totales", render.FormatHours(s.eng.TotalHours())},
		{"Semanas estimadas", render.FormatWeeks(engine.WeeksFromHours(s.eng.TotalHours()))},
		{"Subtotal", money(s.eng.Subtotal())},
	}
	if b.IGVEnabled {
		rows = append(rows, []string{"IGV (18%)", money(s.eng.Tax())})
	}
	rows = append(rows, []string{"Total", money(s.eng.TotalWithTax())})

	fmt.Print(render.RenderTable(render.Table{Rows: rows}))
	fmt.Println()
	fmt.Println("  Run `cotiza show` for the full proposal, `cotiza tui` to edit interactively.")
	return nil
}

func currencyFormatter(cfg config.Config) func(float64) string {
	symbol := currencySymbol(cfg)
	return func(v float64) string { return render.FormatCurrency(symbol, v) }
}

func currencySymbol(cfg config.Config) string {
	switch cfg.General.Currency {
	case "", "USD":
		return "$"
	case "PEN":
		return "S/ "
	case "EUR":
		return "€"
	default:
		return cfg.General.Currency + " "
	}
}
