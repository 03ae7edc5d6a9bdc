package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/offerdesk/internal/export"
	"github.com/sells-group/offerdesk/internal/format"
)

var (
	itemsJSON bool
	itemsXLSX string
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Print the projected quote line items",
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

		items := s.LineItems()

		if itemsXLSX != "" {
			f, err := os.Create(itemsXLSX)
			if err != nil {
				return eris.Wrap(err, "create xlsx file")
			}
			defer f.Close()
			if err := export.WriteXLSX(f, s); err != nil {
				return err
			}
			fmt.Printf("Zapisano %s\n", itemsXLSX)
			return nil
		}

		if itemsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(items)
		}

		for _, it := range items {
			fmt.Printf("%-14s %-32s %2d x %12s = %s\n",
				it.Category, it.Name, it.Quantity, format.Grosz(it.UnitPriceGrosz), format.Grosz(it.TotalGrosz()))
		}
		return nil
	},
}

func init() {
	itemsCmd.Flags().BoolVar(&itemsJSON, "json", false, "print items as JSON")
	itemsCmd.Flags().StringVar(&itemsXLSX, "xlsx", "", "write the quote spreadsheet to this path")
	rootCmd.AddCommand(itemsCmd)
}
