// Package lineitems maps a resolved quote configuration onto the ordered
// list of sellable rows pushed to the CRM. Projection is stateless and
// deterministic; it is re-run whenever the selection changes.
package lineitems

import (
	"github.com/sells-group/offerdesk/internal/dict"
	"github.com/sells-group/offerdesk/internal/model"
	"github.com/sells-group/offerdesk/internal/pricing"
)

// Project produces the export rows for a selection, in contract order:
// module lines in catalog order, the aggregate integrator seat line, exactly
// one implementation line, exactly one support line, then extra arrangements
// with a positive amount. Extras are tagged manual, everything else system.
func Project(sel model.ConfigSelection, d dict.Dictionaries) []model.LineItem {
	engine := pricing.NewEngine(d)
	tier := dict.TierFor(sel.Subscription)
	license := engine.LicenseTotals(sel)

	var items []model.LineItem

	for _, line := range license.Lines {
		category := model.CategoryLicense
		if line.ModuleID == dict.IntegratorModuleID {
			category = model.CategoryIntegration
		}
		items = append(items, model.LineItem{
			ID:             "module:" + line.ModuleID,
			ProductID:      dict.ModuleProductID(line.ModuleID, tier),
			Name:           line.Label,
			Category:       category,
			Quantity:       line.Quantity,
			UnitPriceGrosz: line.UnitPriceGrosz,
			Source:         model.LineItemSourceSystem,
		})
	}

	impl := d.ImplementationPackageByID(sel.ImplementationPackage)
	items = append(items, model.LineItem{
		ID:             "implementation",
		ProductID:      dict.ImplementationProductID(sel.ImplementationPackage),
		Name:           impl.Label,
		Category:       model.CategoryImplementation,
		Quantity:       1,
		UnitPriceGrosz: engine.ImplementationTotal(sel),
		Source:         model.LineItemSourceSystem,
	})

	support := d.SupportPackageByID(sel.SupportPackage)
	items = append(items, model.LineItem{
		ID:             "support",
		ProductID:      dict.SupportProductID(sel.SupportPackage),
		Name:           support.Label,
		Category:       model.CategorySupport,
		Quantity:       1,
		UnitPriceGrosz: engine.SupportPrice(sel),
		Source:         model.LineItemSourceSystem,
	})

	for _, x := range sel.Extras {
		if x.AmountGrosz <= 0 {
			continue
		}
		items = append(items, model.LineItem{
			ID:             "extra:" + x.ID,
			ProductID:      dict.ExtrasProductID,
			Name:           x.Text,
			Category:       model.CategoryExtra,
			Quantity:       1,
			UnitPriceGrosz: x.AmountGrosz,
			Source:         model.LineItemSourceManual,
		})
	}

	return items
}
