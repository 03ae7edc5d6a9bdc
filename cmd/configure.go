package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/offerdesk/internal/format"
	"github.com/sells-group/offerdesk/internal/model"
	"github.com/sells-group/offerdesk/internal/state"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Adjust the quote selection",
}

var (
	selHosting      string
	selSubscription string
	selMultiplier   float64
	selYears        int
	selModules      []string
	selIntegrations []string
	selImplPackage  string
	selImplMult     float64
	selSupport      string
	selSupportBill  string
)

var configureSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update selection fields (only supplied flags change)",
	Long: `Update the quote selection. Module quantities use --module id=qty and
merge with the existing selection; qty -1 removes a module.`,
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

		var p state.ConfigPatch
		f := cmd.Flags()
		if f.Changed("hosting") {
			h := model.HostingModel(selHosting)
			p.Hosting = &h
		}
		if f.Changed("subscription") {
			sub := model.SubscriptionType(selSubscription)
			p.Subscription = &sub
		}
		if f.Changed("multiplier") {
			p.LicenseMultiplier = &selMultiplier
		}
		if f.Changed("years") {
			p.SubscriptionYears = &selYears
		}
		if f.Changed("integrations") {
			p.Integrations = &selIntegrations
		}
		if f.Changed("implementation") {
			p.ImplementationPackage = &selImplPackage
		}
		if f.Changed("implementation-multiplier") {
			p.ImplementationMultiplier = &selImplMult
		}
		if f.Changed("support") {
			p.SupportPackage = &selSupport
		}
		if f.Changed("support-billing") {
			b := model.BillingPeriod(selSupportBill)
			p.SupportPeriod = &b
		}
		if len(selModules) > 0 {
			p.ModuleQty, err = parseModuleQty(selModules)
			if err != nil {
				return err
			}
		}

		s = state.SetConfig(s, p)
		if err := e.saveState(ctx, s); err != nil {
			return err
		}

		fmt.Printf("Wartość projektu: %s\n", format.Grosz(s.ProjectCostTotal()))
		return nil
	},
}

var extraAmountGrosz int64

var configureExtraCmd = &cobra.Command{
	Use:   "extra [text]",
	Short: "Add an extra arrangement line",
	Args:  cobra.ExactArgs(1),
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

		s, id := state.AddExtraArrangement(s, args[0], extraAmountGrosz)
		if id == "" {
			return eris.Errorf("extra arrangements are capped at %d", model.MaxExtraArrangements)
		}
		if err := e.saveState(ctx, s); err != nil {
			return err
		}

		fmt.Printf("Dodano ustalenie %s (%s)\n", id, format.Grosz(extraAmountGrosz))
		return nil
	},
}

var configureResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default quote selection",
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
		return e.saveState(ctx, state.ResetConfig(s))
	},
}

// parseModuleQty parses repeated id=qty pairs into a merge patch.
func parseModuleQty(pairs []string) (map[string]int, error) {
	out := make(map[string]int, len(pairs))
	for _, pair := range pairs {
		id, qtyStr, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, eris.Errorf("invalid module spec %q, want id=qty", pair)
		}
		qty, err := strconv.Atoi(qtyStr)
		if err != nil {
			return nil, eris.Wrapf(err, "invalid quantity in %q", pair)
		}
		out[id] = qty
	}
	return out, nil
}

func init() {
	configureSetCmd.Flags().StringVar(&selHosting, "hosting", "", "hosting model (CLOUD, OWN_SERVER)")
	configureSetCmd.Flags().StringVar(&selSubscription, "subscription", "", "subscription type (MONTHLY, ANNUAL, PERPETUAL)")
	configureSetCmd.Flags().Float64Var(&selMultiplier, "multiplier", 0, "license price multiplier")
	configureSetCmd.Flags().IntVar(&selYears, "years", 0, "subscription years")
	configureSetCmd.Flags().StringSliceVar(&selModules, "module", nil, "module quantity as id=qty (repeatable)")
	configureSetCmd.Flags().StringSliceVar(&selIntegrations, "integrations", nil, "selected integration ids (replaces the list)")
	configureSetCmd.Flags().StringVar(&selImplPackage, "implementation", "", "implementation package id")
	configureSetCmd.Flags().Float64Var(&selImplMult, "implementation-multiplier", 0, "implementation price multiplier")
	configureSetCmd.Flags().StringVar(&selSupport, "support", "", "support package id")
	configureSetCmd.Flags().StringVar(&selSupportBill, "support-billing", "", "support billing period (MONTHLY, ANNUAL)")

	configureExtraCmd.Flags().Int64Var(&extraAmountGrosz, "amount", 0, "amount in grosz")

	configureCmd.AddCommand(configureSetCmd)
	configureCmd.AddCommand(configureExtraCmd)
	configureCmd.AddCommand(configureResetCmd)
	rootCmd.AddCommand(configureCmd)
}
