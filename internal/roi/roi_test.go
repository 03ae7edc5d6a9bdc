package roi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/offerdesk/internal/model"
)

func TestComputeReferenceVector(t *testing.T) {
	t.Parallel()

	// 20 employees wasting 15 min/day at 50.00 PLN/h over 22 workdays.
	got := Compute(model.ROIInputs{
		Employees:          20,
		HourlyRateGrosz:    5000,
		MinutesPerEmployee: 15,
		WorkdaysInMonth:    22,
	})

	assert.Equal(t, int64(300), got.DailyMinutesTotal)
	assert.Equal(t, int64(25_000), got.DailyWasteCostGrosz)
	assert.Equal(t, int64(550_000), got.MonthlyWasteCostGrosz)
	assert.Equal(t, int64(1_650_000), got.QuarterlyWasteGrosz)
	assert.Equal(t, int64(6_600_000), got.AnnualWasteCostGrosz)
}

func TestComputeInventoryAndTurnover(t *testing.T) {
	t.Parallel()

	got := Compute(model.ROIInputs{
		InventoryValueGrosz: 100_000_000,
		InventoryOptPercent: 10,
		AnnualTurnoverGrosz: 50_000_000,
		LostTurnoverPercent: 2.5,
	})

	assert.Equal(t, int64(10_000_000), got.InventorySavingGrosz)
	assert.Equal(t, int64(1_250_000), got.LostTurnoverGrosz)
	assert.Equal(t, got.AnnualWasteCostGrosz+got.InventorySavingGrosz+got.LostTurnoverGrosz, got.TotalAnnualImpact)
}

func TestComputeInvariants(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   model.ROIInputs
	}{
		{"zero inputs", model.ROIInputs{}},
		{"employees only", model.ROIInputs{Employees: 7}},
		{"odd minutes", model.ROIInputs{Employees: 13, MinutesPerEmployee: 7, HourlyRateGrosz: 3333}},
		{"large values", model.ROIInputs{Employees: 5000, MinutesPerEmployee: 45, HourlyRateGrosz: 12_000, WorkdaysInMonth: 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Compute(tt.in)
			assert.Equal(t, got.MonthlyWasteCostGrosz*12, got.AnnualWasteCostGrosz)
			assert.Equal(t, got.MonthlyWasteCostGrosz*3, got.QuarterlyWasteGrosz)
			assert.Equal(t, got.AnnualWasteCostGrosz+got.InventorySavingGrosz+got.LostTurnoverGrosz, got.TotalAnnualImpact)
		})
	}
}

func TestComputeDefaultWorkdays(t *testing.T) {
	t.Parallel()

	// Unset workdays falls back to 22.
	got := Compute(model.ROIInputs{Employees: 1, MinutesPerEmployee: 60, HourlyRateGrosz: 6000})
	assert.Equal(t, int64(6000*22), got.MonthlyWasteCostGrosz)
}

func TestComputeRoundsHalfUp(t *testing.T) {
	t.Parallel()

	// 1 employee, 1 minute, 30.01 PLN/h -> 3001/60 = 50.016... -> 50.
	got := Compute(model.ROIInputs{Employees: 1, MinutesPerEmployee: 1, HourlyRateGrosz: 3001})
	assert.Equal(t, int64(50), got.DailyWasteCostGrosz)

	// 90 grosz/h for 30 min -> exactly 45, and 91 -> 45.5 rounds up to 46.
	got = Compute(model.ROIInputs{Employees: 1, MinutesPerEmployee: 30, HourlyRateGrosz: 91})
	assert.Equal(t, int64(46), got.DailyWasteCostGrosz)
}

func TestSafeNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, SafeNumber(math.NaN()))
	assert.Equal(t, 0.0, SafeNumber(math.Inf(1)))
	assert.Equal(t, 0.0, SafeNumber(math.Inf(-1)))
	assert.Equal(t, 12.5, SafeNumber(12.5))
	assert.Equal(t, -3.0, SafeNumber(-3))
}

func TestComputeNaNPercentCoercesToZero(t *testing.T) {
	t.Parallel()

	got := Compute(model.ROIInputs{
		InventoryValueGrosz: 100_000_000,
		InventoryOptPercent: math.NaN(),
	})
	assert.Equal(t, int64(0), got.InventorySavingGrosz)
	assert.Equal(t, int64(0), got.TotalAnnualImpact)
}

func TestPaybackMonths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, float64(PaybackUndefined), PaybackMonths(1_000_000, 0))
	assert.InDelta(t, 4.0, PaybackMonths(2_200_000, 550_000), 1e-9)
	assert.InDelta(t, 0.5, PaybackMonths(275_000, 550_000), 1e-9)
}
