package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/offerdesk/internal/format"
	"github.com/sells-group/offerdesk/internal/model"
	"github.com/sells-group/offerdesk/internal/pricing"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print the full quote breakdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		s, err := e.loadState(ctx)
		if err != nil {
			return err
		}

		lt := s.LicenseTotals()
		fmt.Printf("Licencje (%s):\n", lt.Tier)
		for _, line := range lt.Lines {
			fmt.Printf("  %-28s %2d x %12s = %s\n",
				line.Label, line.Quantity, format.Grosz(line.UnitPriceGrosz), format.Grosz(line.TotalGrosz))
		}
		fmt.Printf("  Suma licencji:          %s\n", format.Grosz(lt.SubtotalGrosz))
		if s.Config.SubscriptionYears > 1 {
			fmt.Printf("  Za %d lat(a):            %s\n", s.Config.SubscriptionYears, format.Grosz(lt.BeforeDiscountGrosz))
		}
		if lt.DiscountGrosz > 0 {
			fmt.Printf("  Rabat roczny (%s): -%s\n", format.Percent(pricing.AnnualDiscountRate), format.Grosz(lt.DiscountGrosz))
			fmt.Printf("  Po rabacie:             %s\n", format.Grosz(lt.AfterDiscountGrosz))
		}
		if lt.MaintenanceAnnualGrosz > 0 {
			fmt.Printf("  Opłata serwisowa/rok:   %s (informacyjnie)\n", format.Grosz(lt.MaintenanceAnnualGrosz))
		}

		fmt.Printf("Wdrożenie (%s):  %s\n", s.Config.ImplementationPackage, format.Grosz(s.ImplementationTotal()))
		period := "mies."
		if s.Config.SupportPeriod == model.BillingAnnual {
			period = "rok"
		}
		fmt.Printf("Opieka (%s):     %s/%s (rozliczana osobno)\n", s.Config.SupportPackage, format.Grosz(s.SupportPrice()), period)
		if extras := s.ExtrasTotal(); extras > 0 {
			fmt.Printf("Dodatkowe ustalenia:  %s\n", format.Grosz(extras))
		}

		fmt.Printf("WARTOŚĆ PROJEKTU:     %s\n", format.Grosz(s.ProjectCostTotal()))
		if payback := s.PaybackMonths(); payback >= 0 {
			fmt.Printf("Zwrot z inwestycji:   %.1f mies.\n", payback)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(quoteCmd)
}
