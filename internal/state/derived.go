package state

import (
	"github.com/sells-group/offerdesk/internal/lineitems"
	"github.com/sells-group/offerdesk/internal/model"
	"github.com/sells-group/offerdesk/internal/pricing"
	"github.com/sells-group/offerdesk/internal/roi"
)

// Derived getters. Each one recomputes from the current inputs on every
// call; nothing is memoized, so derived data is always consistent with the
// latest mutation.

// ROIResults derives the loss figures from the current ROI inputs. When the
// inputs carry no workdays value the dictionaries' global param applies.
func (s State) ROIResults() model.ROIResults {
	in := s.ROI
	if in.WorkdaysInMonth <= 0 {
		in.WorkdaysInMonth = s.Dict.Params.WorkdaysInMonth
	}
	return roi.Compute(in)
}

// LicenseTotals derives the license part of the quote.
func (s State) LicenseTotals() pricing.LicenseTotals {
	return pricing.NewEngine(s.Dict).LicenseTotals(s.Config)
}

// ImplementationTotal derives the implementation cost.
func (s State) ImplementationTotal() int64 {
	return pricing.NewEngine(s.Dict).ImplementationTotal(s.Config)
}

// SupportPrice derives the support/SLA cost. Displayed alongside the quote
// but never part of the project grand total.
func (s State) SupportPrice() int64 {
	return pricing.NewEngine(s.Dict).SupportPrice(s.Config)
}

// ExtrasTotal derives the extra-arrangements sum.
func (s State) ExtrasTotal() int64 {
	return pricing.NewEngine(s.Dict).ExtrasTotal(s.Config)
}

// ProjectCostTotal derives the quote grand total.
func (s State) ProjectCostTotal() int64 {
	return pricing.NewEngine(s.Dict).ProjectCostTotal(s.Config)
}

// PaybackMonths derives how many months of measured waste the project cost
// represents, -1 when the monthly waste is zero.
func (s State) PaybackMonths() float64 {
	return roi.PaybackMonths(s.ProjectCostTotal(), s.ROIResults().MonthlyWasteCostGrosz)
}

// LineItems projects the export rows for the current selection.
func (s State) LineItems() []model.LineItem {
	return lineitems.Project(s.Config, s.Dict)
}
