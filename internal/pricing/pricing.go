// Package pricing turns a quote configuration and the reference dictionaries
// into license, implementation, support and grand-total figures. Everything
// is grosz-denominated; unit prices are rounded half-up before any quantity
// multiplication so results match the reference quotes bit for bit.
package pricing

import (
	"github.com/sells-group/offerdesk/internal/dict"
	"github.com/sells-group/offerdesk/internal/model"
)

// AnnualDiscountRate is the flat "2 months free" discount applied to ANNUAL
// subscriptions. The exact figure would be 1/6 (~16.67%); the literal 16.66%
// is kept because issued quotes depend on it.
const AnnualDiscountRate = 0.1666

// PerpetualMaintenanceRate is the annual maintenance fee on PERPETUAL
// licenses, informational only and never added to the grand total.
const PerpetualMaintenanceRate = 0.18

// LicenseLine is one priced license row.
type LicenseLine struct {
	ModuleID       string `json:"module_id"`
	Label          string `json:"label"`
	Quantity       int    `json:"quantity"`
	UnitPriceGrosz int64  `json:"unit_price_grosz"`
	TotalGrosz     int64  `json:"total_grosz"`
}

// LicenseTotals is the license part of the quote.
type LicenseTotals struct {
	Tier                   dict.PriceTier `json:"tier"`
	Lines                  []LicenseLine  `json:"lines"`
	SubtotalGrosz          int64          `json:"subtotal_grosz"`
	BeforeDiscountGrosz    int64          `json:"before_discount_grosz"`
	DiscountGrosz          int64          `json:"discount_grosz"`
	AfterDiscountGrosz     int64          `json:"after_discount_grosz"`
	MaintenanceAnnualGrosz int64          `json:"maintenance_annual_grosz,omitempty"`
}

// Engine prices selections against a set of dictionaries.
type Engine struct {
	dict dict.Dictionaries
}

// NewEngine creates an Engine over the given dictionaries.
func NewEngine(d dict.Dictionaries) *Engine {
	return &Engine{dict: d}
}

// unitPrice resolves the rounded per-unit license price for a module.
func (e *Engine) unitPrice(tier dict.PriceTier, moduleID string, multiplier float64) int64 {
	if multiplier == 0 {
		multiplier = 1.0
	}
	return dict.RoundGrosz(float64(e.dict.BasePrice(tier, moduleID)) * multiplier)
}

// LicenseTotals computes the license subtotal, the annual-billing discount
// and the after-discount figure for a selection. Module lines follow the
// catalog's declared order; the integrator seat line is appended when any
// integrations are selected.
func (e *Engine) LicenseTotals(sel model.ConfigSelection) LicenseTotals {
	tier := dict.TierFor(sel.Subscription)

	var lines []LicenseLine
	var subtotal int64

	for _, m := range e.dict.Modules {
		qty := sel.ModuleQty[m.ID]
		if qty <= 0 {
			continue
		}
		unit := e.unitPrice(tier, m.ID, sel.LicenseMultiplier)
		total := unit * int64(qty)
		lines = append(lines, LicenseLine{
			ModuleID:       m.ID,
			Label:          m.Label,
			Quantity:       qty,
			UnitPriceGrosz: unit,
			TotalGrosz:     total,
		})
		subtotal += total
	}

	if n := len(sel.Integrations); n > 0 {
		unit := e.unitPrice(tier, dict.IntegratorModuleID, sel.LicenseMultiplier)
		total := unit * int64(n)
		lines = append(lines, LicenseLine{
			ModuleID:       dict.IntegratorModuleID,
			Label:          dict.IntegratorLabel,
			Quantity:       n,
			UnitPriceGrosz: unit,
			TotalGrosz:     total,
		})
		subtotal += total
	}

	years := sel.SubscriptionYears
	if years <= 0 {
		years = 1
	}
	before := subtotal * int64(years)

	var discount int64
	if sel.Subscription == model.SubscriptionAnnual {
		discount = dict.RoundGrosz(float64(before) * AnnualDiscountRate)
	}
	after := before - discount

	var maintenance int64
	if sel.Subscription == model.SubscriptionPerpetual {
		maintenance = dict.RoundGrosz(float64(after) * PerpetualMaintenanceRate)
	}

	return LicenseTotals{
		Tier:                   tier,
		Lines:                  lines,
		SubtotalGrosz:          subtotal,
		BeforeDiscountGrosz:    before,
		DiscountGrosz:          discount,
		AfterDiscountGrosz:     after,
		MaintenanceAnnualGrosz: maintenance,
	}
}

// ImplementationTotal prices the selected implementation package with its
// multiplier applied. Unknown packages price at 0.
func (e *Engine) ImplementationTotal(sel model.ConfigSelection) int64 {
	pkg := e.dict.ImplementationPackageByID(sel.ImplementationPackage)
	mul := sel.ImplementationMultiplier
	if mul == 0 {
		mul = 1.0
	}
	return dict.RoundGrosz(float64(pkg.BasePriceGrosz) * mul)
}

// SupportPrice is the direct package/period lookup. No multiplier applies.
func (e *Engine) SupportPrice(sel model.ConfigSelection) int64 {
	return e.dict.SupportPrice(sel.SupportPackage, sel.SupportPeriod)
}

// ExtrasTotal sums the amounts of all extra arrangements.
func (e *Engine) ExtrasTotal(sel model.ConfigSelection) int64 {
	var total int64
	for _, x := range sel.Extras {
		total += x.AmountGrosz
	}
	return total
}

// ProjectCostTotal is the quote grand total: license after discount plus
// implementation plus extras. The support price is tracked separately and
// deliberately excluded; support bills recurring, not as project cost.
func (e *Engine) ProjectCostTotal(sel model.ConfigSelection) int64 {
	return e.LicenseTotals(sel).AfterDiscountGrosz +
		e.ImplementationTotal(sel) +
		e.ExtrasTotal(sel)
}
