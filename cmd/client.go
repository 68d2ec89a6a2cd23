package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"cotiza/internal/engine"
	"cotiza/internal/render"
)

var (
	flagClientName  string
	flagClientEmail string
	flagClientPhone string

	flagCompanyName    string
	flagCompanyAddress string
	flagCompanyPhone   string
	flagCompanyEmail   string
	flagCompanyWebsite string
	flagCompanyTaxID   string
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Show or update client information",
	RunE:  runClient,
}

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Show or update the issuing company information",
	RunE:  runCompany,
}

func init() {
	clientCmd.Flags().StringVar(&flagClientName, "name", "", "Client name")
	clientCmd.Flags().StringVar(&flagClientEmail, "email", "", "Client email")
	clientCmd.Flags().StringVar(&flagClientPhone, "phone", "", "Client phone")

	companyCmd.Flags().StringVar(&flagCompanyName, "name", "", "Company name")
	companyCmd.Flags().StringVar(&flagCompanyAddress, "address", "", "Company address")
	companyCmd.Flags().StringVar(&flagCompanyPhone, "phone", "", "Company phone")
	companyCmd.Flags().StringVar(&flagCompanyEmail, "email", "", "Company email")
	companyCmd.Flags().StringVar(&flagCompanyWebsite, "website", "", "Company website")
	companyCmd.Flags().StringVar(&flagCompanyTaxID, "tax-id", "", "Company RUC / tax ID")

	rootCmd.AddCommand(clientCmd, companyCmd)
}

func runClient(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	// Unset flags keep the current value; changed ones merge in one commit.
	var patch engine.BudgetPatch
	changed := false
	if cmd.Flags().Changed("name") {
		patch.ClientName = &flagClientName
		changed = true
	}
	if cmd.Flags().Changed("email") {
		patch.ClientEmail = &flagClientEmail
		changed = true
	}
	if cmd.Flags().Changed("phone") {
		patch.ClientPhone = &flagClientPhone
		changed = true
	}
	if changed {
		s.eng.Apply(patch)
		fmt.Println("  Client updated.")
		return nil
	}

	setupStyling()
	b := s.eng.Snapshot()
	fmt.Println()
	fmt.Print(render.RenderTable(render.Table{
		Title: "Client",
		Rows: [][]string{
			{"Name", b.ClientName},
			{"Email", b.ClientEmail},
			{"Phone", b.ClientPhone},
		},
	}))
	return nil
}

func runCompany(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	var patch engine.CompanyPatch
	changed := false
	set := func(flag string, dst **string, v *string) {
		if cmd.Flags().Changed(flag) {
			*dst = v
			changed = true
		}
	}
	set("name", &patch.Name, &flagCompanyName)
	set("address", &patch.Address, &flagCompanyAddress)
	set("phone", &patch.Phone, &flagCompanyPhone)
	set("email", &patch.Email, &flagCompanyEmail)
	set("website", &patch.Website, &flagCompanyWebsite)
	set("tax-id", &patch.TaxID, &flagCompanyTaxID)

	if changed {
		s.eng.UpdateCompanyInfo(patch)
		fmt.Println("  Company updated.")
		return nil
	}

	setupStyling()
	ci := s.eng.Snapshot().CompanyInfo
	fmt.Println()
	fmt.Print(render.RenderTable(render.Table{
		Title: "Company",
		Rows: [][]string{
			{"Name", ci.Name},
			{"Address", ci.Address},
			{"Phone", ci.Phone},
			{"Email", ci.Email},
			{"Website", ci.Website},
			{"Tax ID", ci.TaxID},
		},
	}))
	return nil
}
