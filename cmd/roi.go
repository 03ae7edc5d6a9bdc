package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sells-group/offerdesk/internal/format"
	"github.com/sells-group/offerdesk/internal/model"
	"github.com/sells-group/offerdesk/internal/state"
)

var roiCmd = &cobra.Command{
	Use:   "roi",
	Short: "Show or update the ROI analysis",
}

var roiShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the ROI inputs and derived figures",
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

		in := s.ROI
		r := s.ROIResults()

		fmt.Printf("Pracownicy: %d, stawka: %s/h, strata: %d min/os., dni robocze: %d\n",
			in.Employees, format.Grosz(in.HourlyRateGrosz), in.MinutesPerEmployee, in.WorkdaysInMonth)
		fmt.Printf("Strata dzienna:    %s\n", format.Grosz(r.DailyWasteCostGrosz))
		fmt.Printf("Strata miesięczna: %s\n", format.Grosz(r.MonthlyWasteCostGrosz))
		fmt.Printf("Strata kwartalna:  %s\n", format.Grosz(r.QuarterlyWasteGrosz))
		fmt.Printf("Strata roczna:     %s\n", format.Grosz(r.AnnualWasteCostGrosz))
		if r.InventorySavingGrosz > 0 {
			fmt.Printf("Optymalizacja magazynu: %s\n", format.Grosz(r.InventorySavingGrosz))
		}
		if r.LostTurnoverGrosz > 0 {
			fmt.Printf("Utracony obrót:         %s\n", format.Grosz(r.LostTurnoverGrosz))
		}
		fmt.Printf("Łączny roczny wpływ:    %s\n", format.Grosz(r.TotalAnnualImpact))

		if payback := s.PaybackMonths(); payback >= 0 {
			fmt.Printf("Zwrot z inwestycji: %.1f mies.\n", payback)
		} else {
			fmt.Println("Zwrot z inwestycji: brak miesięcznej straty")
		}
		return nil
	},
}

var (
	roiEmployees    int
	roiRateGrosz    int64
	roiMinutes      int
	roiWorkdays     int
	roiInvValue     int64
	roiInvPercent   float64
	roiTurnover     int64
	roiLostPercent  float64
	roiProviderFit  string
)

var roiSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update ROI inputs (only supplied flags change)",
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

		var p state.ROIPatch
		f := cmd.Flags()
		if f.Changed("employees") {
			p.Employees = &roiEmployees
		}
		if f.Changed("hourly-rate") {
			p.HourlyRateGrosz = &roiRateGrosz
		}
		if f.Changed("minutes") {
			p.MinutesPerEmployee = &roiMinutes
		}
		if f.Changed("workdays") {
			p.WorkdaysInMonth = &roiWorkdays
		}
		if f.Changed("inventory-value") {
			p.InventoryValueGrosz = &roiInvValue
		}
		if f.Changed("inventory-percent") {
			p.InventoryOptPercent = &roiInvPercent
		}
		if f.Changed("turnover") {
			p.AnnualTurnoverGrosz = &roiTurnover
		}
		if f.Changed("lost-percent") {
			p.LostTurnoverPercent = &roiLostPercent
		}
		if f.Changed("fit") {
			fit := model.ProviderFitStatus(roiProviderFit)
			p.ProviderFit = &fit
		}

		s = state.SetROIInputs(s, p)
		if err := e.saveState(ctx, s); err != nil {
			return err
		}

		r := s.ROIResults()
		fmt.Printf("Łączny roczny wpływ: %s\n", format.Grosz(r.TotalAnnualImpact))
		return nil
	},
}

func init() {
	roiSetCmd.Flags().IntVar(&roiEmployees, "employees", 0, "number of employees")
	roiSetCmd.Flags().Int64Var(&roiRateGrosz, "hourly-rate", 0, "hourly rate in grosz")
	roiSetCmd.Flags().IntVar(&roiMinutes, "minutes", 0, "minutes wasted per employee per day")
	roiSetCmd.Flags().IntVar(&roiWorkdays, "workdays", 0, "workdays in a month")
	roiSetCmd.Flags().Int64Var(&roiInvValue, "inventory-value", 0, "inventory value in grosz")
	roiSetCmd.Flags().Float64Var(&roiInvPercent, "inventory-percent", 0, "inventory optimization percent")
	roiSetCmd.Flags().Int64Var(&roiTurnover, "turnover", 0, "annual turnover in grosz")
	roiSetCmd.Flags().Float64Var(&roiLostPercent, "lost-percent", 0, "lost turnover percent")
	roiSetCmd.Flags().StringVar(&roiProviderFit, "fit", "", "provider fit (UNKNOWN, GOOD_FIT, PARTIAL_FIT, NO_FIT)")

	roiCmd.AddCommand(roiShowCmd)
	roiCmd.AddCommand(roiSetCmd)
	rootCmd.AddCommand(roiCmd)
}
