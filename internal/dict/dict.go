// Package dict holds the reference data both engines price against: module
// and integration catalogs, implementation and support packages, price
// matrices, and global parameters. The defaults are authoritative but every
// value can be replaced through the admin overrides file, so nothing
// downstream may hardcode a price.
package dict

import (
	"github.com/sells-group/offerdesk/internal/model"
)

// ModuleInfo is one sellable license module. Catalog order is the order
// line items are projected in.
type ModuleInfo struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// Integration is one entry of the integration catalog. Selected integrations
// are not priced individually; each consumes one integrator seat.
type Integration struct {
	ID       string `json:"id" yaml:"id"`
	Label    string `json:"label" yaml:"label"`
	Category string `json:"category" yaml:"category"`
}

// ImplementationPackage is a fixed-scope implementation offering.
type ImplementationPackage struct {
	ID             string `json:"id" yaml:"id"`
	Label          string `json:"label" yaml:"label"`
	BasePriceGrosz int64  `json:"base_price_grosz" yaml:"base_price_grosz"`
}

// SupportPackage is a support/SLA offering. Prices live in SupportPrices.
type SupportPackage struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
}

// GlobalParams are the admin-editable global knobs.
type GlobalParams struct {
	WorkdaysInMonth       int     `json:"workdays_in_month" yaml:"workdays_in_month"`
	ImplementationDayRate int64   `json:"implementation_day_rate_grosz" yaml:"implementation_day_rate_grosz"`
	SRPMultiplier         float64 `json:"srp_multiplier" yaml:"srp_multiplier"`
}

// Dictionaries bundles all reference tables.
type Dictionaries struct {
	Modules                []ModuleInfo                                  `json:"modules" yaml:"modules"`
	Integrations           []Integration                                 `json:"integrations" yaml:"integrations"`
	ImplementationPackages []ImplementationPackage                       `json:"implementation_packages" yaml:"implementation_packages"`
	SupportPackages        []SupportPackage                              `json:"support_packages" yaml:"support_packages"`
	SupportPrices          map[string]map[model.BillingPeriod]int64      `json:"support_prices" yaml:"support_prices"`
	PriceMatrix            map[PriceTier]map[string]int64                `json:"price_matrix" yaml:"price_matrix"`
	Params                 GlobalParams                                  `json:"params" yaml:"params"`
}

// Default returns the built-in reference data.
func Default() Dictionaries {
	return Dictionaries{
		Modules: []ModuleInfo{
			{ID: "handel", Label: "Handel i sprzedaż"},
			{ID: "magazyn", Label: "Magazyn WMS"},
			{ID: "produkcja", Label: "Produkcja"},
			{ID: "b2b", Label: "Platforma B2B"},
			{ID: "mobile", Label: "Aplikacja mobilna"},
			{ID: "analizy", Label: "Analizy i raporty"},
		},
		Integrations: []Integration{
			{ID: "allegro", Label: "Allegro", Category: "marketplace"},
			{ID: "baselinker", Label: "BaseLinker", Category: "marketplace"},
			{ID: "inpost", Label: "InPost", Category: "courier"},
			{ID: "dpd", Label: "DPD", Category: "courier"},
			{ID: "przelewy24", Label: "Przelewy24", Category: "payments"},
			{ID: "ksef", Label: "KSeF", Category: "government"},
		},
		ImplementationPackages: []ImplementationPackage{
			{ID: "BASIC", Label: "Wdrożenie Basic", BasePriceGrosz: 2_499_000},
			{ID: "PRO", Label: "Wdrożenie Pro", BasePriceGrosz: 6_247_500},
			{ID: "PRO_MAX", Label: "Wdrożenie Pro Max", BasePriceGrosz: 12_495_000},
		},
		SupportPackages: []SupportPackage{
			{ID: "STANDARD", Label: "Opieka Standard"},
			{ID: "PREMIUM", Label: "Opieka Premium"},
			{ID: "ENTERPRISE", Label: "Opieka Enterprise"},
		},
		SupportPrices: map[string]map[model.BillingPeriod]int64{
			"STANDARD":   {model.BillingMonthly: 49_900, model.BillingAnnual: 538_900},
			"PREMIUM":    {model.BillingMonthly: 99_900, model.BillingAnnual: 1_078_900},
			"ENTERPRISE": {model.BillingMonthly: 199_900, model.BillingAnnual: 2_158_900},
		},
		PriceMatrix: defaultPriceMatrix(),
		Params: GlobalParams{
			WorkdaysInMonth:       22,
			ImplementationDayRate: 249_900,
			SRPMultiplier:         1.0,
		},
	}
}

// ModuleLabel returns the catalog label for a module id, or the id itself
// when the catalog has no entry (lookup misses never fail).
func (d Dictionaries) ModuleLabel(id string) string {
	for _, m := range d.Modules {
		if m.ID == id {
			return m.Label
		}
	}
	return id
}

// ImplementationPackageByID returns the package, or a zero-priced fallback
// carrying the id as its label.
func (d Dictionaries) ImplementationPackageByID(id string) ImplementationPackage {
	for _, p := range d.ImplementationPackages {
		if p.ID == id {
			return p
		}
	}
	return ImplementationPackage{ID: id, Label: id}
}

// SupportPackageByID returns the package, or a fallback carrying the id.
func (d Dictionaries) SupportPackageByID(id string) SupportPackage {
	for _, p := range d.SupportPackages {
		if p.ID == id {
			return p
		}
	}
	return SupportPackage{ID: id, Label: id}
}

// SupportPrice returns SupportPrices[pkg][period], 0 on any lookup miss.
func (d Dictionaries) SupportPrice(pkg string, period model.BillingPeriod) int64 {
	periods, ok := d.SupportPrices[pkg]
	if !ok {
		return 0
	}
	return periods[period]
}
