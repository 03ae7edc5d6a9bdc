// Package roi converts operational assumptions about a lead into annualized
// loss figures. All arithmetic is grosz-denominated with half-up rounding at
// each multiplication step, so two machines computing the same inputs produce
// identical quotes.
package roi

import (
	"math"

	"github.com/sells-group/offerdesk/internal/model"
)

// DefaultWorkdays is used when neither the inputs nor the global params
// carry a workdays-per-month value.
const DefaultWorkdays = 22

// PaybackUndefined is the sentinel returned when monthly waste cost is zero.
const PaybackUndefined = -1

// SafeNumber coerces a possibly missing numeric input to a usable float.
// NaN and infinities become 0; everything else passes through. Negative
// values are not rejected here, that is a UI concern.
func SafeNumber(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// roundGrosz rounds half-up to the nearest integer grosz.
func roundGrosz(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}

// Compute derives ROIResults from the inputs. It is a total function: any
// malformed numeric field is coerced to 0 and the result is always defined.
func Compute(in model.ROIInputs) model.ROIResults {
	minutes := int64(in.Employees) * int64(in.MinutesPerEmployee)

	rate := SafeNumber(float64(in.HourlyRateGrosz))
	dailyWaste := roundGrosz(float64(minutes) / 60.0 * rate)

	workdays := in.WorkdaysInMonth
	if workdays <= 0 {
		workdays = DefaultWorkdays
	}
	monthly := dailyWaste * int64(workdays)

	inventorySaving := roundGrosz(SafeNumber(float64(in.InventoryValueGrosz)) * SafeNumber(in.InventoryOptPercent) / 100.0)
	lostTurnover := roundGrosz(SafeNumber(float64(in.AnnualTurnoverGrosz)) * SafeNumber(in.LostTurnoverPercent) / 100.0)

	annual := monthly * 12

	return model.ROIResults{
		DailyMinutesTotal:     minutes,
		DailyWasteCostGrosz:   dailyWaste,
		MonthlyWasteCostGrosz: monthly,
		QuarterlyWasteGrosz:   monthly * 3,
		AnnualWasteCostGrosz:  annual,
		InventorySavingGrosz:  inventorySaving,
		LostTurnoverGrosz:     lostTurnover,
		TotalAnnualImpact:     annual + inventorySaving + lostTurnover,
	}
}

// PaybackMonths returns how many months of waste cost the project cost
// represents, or PaybackUndefined when monthly waste is zero.
func PaybackMonths(projectCostGrosz, monthlyWasteGrosz int64) float64 {
	if monthlyWasteGrosz == 0 {
		return PaybackUndefined
	}
	return float64(projectCostGrosz) / float64(monthlyWasteGrosz)
}
