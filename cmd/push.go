package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/offerdesk/internal/export"
	"github.com/sells-group/offerdesk/internal/model"
	"github.com/sells-group/offerdesk/pkg/hubspot"
)

var pushDryRun bool

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push the quote to the CRM as a deal with line items",
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

		payload := export.CRMPayload(s)

		if pushDryRun {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(payload)
		}

		if e.crm == nil {
			return eris.New("hubspot token not configured")
		}

		dealID, err := pushDeal(ctx, e.crm, payload, cfg.HubSpot.PipelineID)
		if err != nil {
			return err
		}

		fmt.Printf("Utworzono transakcję %s (%s)\n", dealID, payload.DealName)
		return nil
	},
}

// pushDeal creates the deal and its line items concurrently, then links the
// items to the deal.
func pushDeal(ctx context.Context, crm hubspot.Client, payload export.Payload, pipelineID string) (string, error) {
	var (
		deal *hubspot.Deal
		refs []hubspot.ObjectRef
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		deal, err = crm.CreateDeal(gctx, hubspot.DealInput{
			Name:       payload.DealName,
			Amount:     groszToDecimal(payload.AmountGrosz),
			PipelineID: pipelineID,
			Properties: payload.Properties,
		})
		return err
	})
	g.Go(func() error {
		var err error
		refs, err = crm.CreateLineItems(gctx, toLineItemInputs(payload.LineItems))
		return err
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	ids := make([]string, len(refs))
	for i, r := range refs {
		ids[i] = r.ID
	}
	if err := crm.AssociateLineItems(ctx, deal.ID, ids); err != nil {
		return "", err
	}

	zap.L().Info("quote pushed",
		zap.String("deal_id", deal.ID),
		zap.String("deal_name", payload.DealName),
		zap.Int("line_items", len(ids)),
	)

	return deal.ID, nil
}

func toLineItemInputs(items []model.LineItem) []hubspot.LineItemInput {
	out := make([]hubspot.LineItemInput, len(items))
	for i, it := range items {
		out[i] = hubspot.LineItemInput{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     groszToDecimal(it.UnitPriceGrosz),
		}
	}
	return out
}

// groszToDecimal renders grosz as the decimal zloty string the CRM expects.
func groszToDecimal(v int64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func init() {
	pushCmd.Flags().BoolVar(&pushDryRun, "dry-run", false, "print the payload instead of calling the CRM")
	rootCmd.AddCommand(pushCmd)
}
