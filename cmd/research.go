package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/offerdesk/internal/model"
	"github.com/sells-group/offerdesk/internal/research"
	"github.com/sells-group/offerdesk/internal/state"
)

var (
	researchCompany  string
	researchWebsite  string
	researchProvider string
)

var researchCmd = &cobra.Command{
	Use:   "research",
	Short: "Research the lead and fill the company profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		if e.researcher == nil {
			return eris.New("anthropic key not configured")
		}

		s, err := e.loadState(ctx)
		if err != nil {
			return err
		}

		if researchCompany != "" || researchWebsite != "" {
			lead := s.Lead
			if researchCompany != "" {
				lead.CompanyName = researchCompany
			}
			if researchWebsite != "" {
				lead.Website = researchWebsite
			}
			s = state.SetLead(s, lead)
		}
		if s.Lead.CompanyName == "" {
			return eris.New("no company name set, use --company")
		}

		s = research.RunLeadResearch(ctx, s, e.researcher, researchProvider)
		if err := e.saveState(ctx, s); err != nil {
			return err
		}
		if s.Research == model.ResearchError {
			return eris.New("lead research failed, previous profile kept")
		}

		fmt.Printf("Firma:     %s\n", s.Lead.CompanyName)
		fmt.Printf("Branża:    %s\n", s.Lead.Industry)
		fmt.Printf("Wielkość:  %s\n", s.Lead.EmployeeRange)
		fmt.Printf("Opis:      %s\n", s.Lead.Summary)
		return nil
	},
}

func init() {
	researchCmd.Flags().StringVar(&researchCompany, "company", "", "lead company name")
	researchCmd.Flags().StringVar(&researchWebsite, "website", "", "lead website URL")
	researchCmd.Flags().StringVar(&researchProvider, "provider", "claude", "research provider id")
	rootCmd.AddCommand(researchCmd)
}
