package state

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/offerdesk/internal/model"
)

func intp(v int) *int            { return &v }
func i64p(v int64) *int64        { return &v }
func f64p(v float64) *float64    { return &v }
func strp(v string) *string      { return &v }

func TestSetROIInputsPartialPatch(t *testing.T) {
	t.Parallel()

	s := Default()
	s = SetROIInputs(s, ROIPatch{Employees: intp(20), HourlyRateGrosz: i64p(5000)})
	s = SetROIInputs(s, ROIPatch{MinutesPerEmployee: intp(15)})

	// Earlier fields survive later patches.
	assert.Equal(t, 20, s.ROI.Employees)
	assert.Equal(t, int64(5000), s.ROI.HourlyRateGrosz)
	assert.Equal(t, 15, s.ROI.MinutesPerEmployee)
	assert.Equal(t, 22, s.ROI.WorkdaysInMonth)
}

func TestSetROIInputsDoesNotMutateOriginal(t *testing.T) {
	t.Parallel()

	s := Default()
	_ = SetROIInputs(s, ROIPatch{Employees: intp(99)})
	assert.Equal(t, 0, s.ROI.Employees)
}

func TestSetConfigMergesModuleQty(t *testing.T) {
	t.Parallel()

	s := Default()
	s = SetConfig(s, ConfigPatch{ModuleQty: map[string]int{"handel": 5, "magazyn": 2}})
	s = SetConfig(s, ConfigPatch{ModuleQty: map[string]int{"magazyn": 3}})

	assert.Equal(t, 5, s.Config.ModuleQty["handel"])
	assert.Equal(t, 3, s.Config.ModuleQty["magazyn"])

	// Negative quantity removes the key.
	s = SetConfig(s, ConfigPatch{ModuleQty: map[string]int{"handel": -1}})
	_, ok := s.Config.ModuleQty["handel"]
	assert.False(t, ok)
}

func TestSetConfigNormalizesPerpetualOnCloud(t *testing.T) {
	t.Parallel()

	s := Default()
	sub := model.SubscriptionPerpetual
	s = SetConfig(s, ConfigPatch{Subscription: &sub})
	assert.Equal(t, model.SubscriptionMonthly, s.Config.Subscription)

	hosting := model.HostingOwnServer
	s = SetConfig(s, ConfigPatch{Hosting: &hosting, Subscription: &sub})
	assert.Equal(t, model.SubscriptionPerpetual, s.Config.Subscription)
}

func TestCommitteeLifecycle(t *testing.T) {
	t.Parallel()

	s := Default()
	s, id := AddCommitteeMember(s, "Anna Nowak", "COO", model.MemberStatusPositive)
	require.NotEmpty(t, id)
	require.Len(t, s.ROI.Committee, 1)

	s = UpdateCommitteeMember(s, id, "Anna Nowak", "CEO", model.MemberStatusNeutral)
	assert.Equal(t, "CEO", s.ROI.Committee[0].Position)
	assert.Equal(t, model.MemberStatusNeutral, s.ROI.Committee[0].Status)

	// Unknown id is a no-op.
	s = UpdateCommitteeMember(s, "ghost", "X", "Y", model.MemberStatusNegative)
	assert.Equal(t, "CEO", s.ROI.Committee[0].Position)

	s = RemoveCommitteeMember(s, id)
	assert.Empty(t, s.ROI.Committee)
}

func TestScheduleLifecycle(t *testing.T) {
	t.Parallel()

	s := Default()
	s, a := AddScheduleStep(s, "Analiza przedwdrożeniowa", model.StepStatusPending, "2026-10-01")
	s, b := AddScheduleStep(s, "Migracja danych", model.StepStatusPending, "2026-11-15")
	require.Len(t, s.ROI.Schedule, 2)

	// Order of insertion is preserved.
	assert.Equal(t, a, s.ROI.Schedule[0].ID)
	assert.Equal(t, b, s.ROI.Schedule[1].ID)

	s = UpdateScheduleStep(s, a, "Analiza przedwdrożeniowa", model.StepStatusDone, "2026-10-01")
	assert.Equal(t, model.StepStatusDone, s.ROI.Schedule[0].Status)

	s = RemoveScheduleStep(s, a)
	require.Len(t, s.ROI.Schedule, 1)
	assert.Equal(t, b, s.ROI.Schedule[0].ID)
}

func TestExtraArrangementsCap(t *testing.T) {
	t.Parallel()

	s := Default()
	for i := 0; i < model.MaxExtraArrangements; i++ {
		var id string
		s, id = AddExtraArrangement(s, fmt.Sprintf("Ustalenie %d", i), int64(i)*1000)
		assert.NotEmpty(t, id)
	}
	require.Len(t, s.Config.Extras, model.MaxExtraArrangements)

	// The 9th add is a no-op.
	s, id := AddExtraArrangement(s, "jeszcze jedno", 100)
	assert.Empty(t, id)
	assert.Len(t, s.Config.Extras, model.MaxExtraArrangements)
}

func TestExtraArrangementUpdateRemove(t *testing.T) {
	t.Parallel()

	s := Default()
	s, id := AddExtraArrangement(s, "Szkolenie", 100_000)
	s = UpdateExtraArrangement(s, id, "Szkolenie dodatkowe", 150_000)
	assert.Equal(t, int64(150_000), s.Config.Extras[0].AmountGrosz)

	s = RemoveExtraArrangement(s, id)
	assert.Empty(t, s.Config.Extras)
}

func TestDerivedGettersIdempotent(t *testing.T) {
	t.Parallel()

	s := Default()
	s = SetROIInputs(s, ROIPatch{Employees: intp(20), HourlyRateGrosz: i64p(5000), MinutesPerEmployee: intp(15)})
	s = SetConfig(s, ConfigPatch{ModuleQty: map[string]int{"handel": 4}})
	s, _ = AddExtraArrangement(s, "Migracja", 200_000)

	assert.Equal(t, s.ROIResults(), s.ROIResults())
	assert.Equal(t, s.LicenseTotals(), s.LicenseTotals())
	assert.Equal(t, s.ProjectCostTotal(), s.ProjectCostTotal())
	assert.Equal(t, s.LineItems(), s.LineItems())
	assert.Equal(t, s.PaybackMonths(), s.PaybackMonths())
}

func TestDerivedRecomputesAfterMutation(t *testing.T) {
	t.Parallel()

	s := Default()
	s = SetConfig(s, ConfigPatch{ModuleQty: map[string]int{"handel": 1}})
	before := s.ProjectCostTotal()

	s = SetConfig(s, ConfigPatch{ModuleQty: map[string]int{"handel": 2}})
	assert.Greater(t, s.ProjectCostTotal(), before)
}

func TestROIResultsUseDictWorkdaysWhenUnset(t *testing.T) {
	t.Parallel()

	s := Default()
	s.ROI.WorkdaysInMonth = 0
	s.Dict.Params.WorkdaysInMonth = 20
	s = SetROIInputs(s, ROIPatch{Employees: intp(1), MinutesPerEmployee: intp(60), HourlyRateGrosz: i64p(6000)})
	s.ROI.WorkdaysInMonth = 0

	assert.Equal(t, int64(6000*20), s.ROIResults().MonthlyWasteCostGrosz)
}

func TestSnapshotRoundTrip(t *testing.T) {
	t.Parallel()

	s := Default()
	s = SetROIInputs(s, ROIPatch{Employees: intp(35), InventoryOptPercent: f64p(12.5)})
	s = SetConfig(s, ConfigPatch{
		ModuleQty:             map[string]int{"produkcja": 2},
		ImplementationPackage: strp("PRO_MAX"),
	})
	s, _ = AddCommitteeMember(s, "Jan Kowalski", "CFO", model.MemberStatusNeutral)
	s, _ = AddExtraArrangement(s, "Integracja niestandardowa", 990_000)
	s = SetLead(s, model.LeadProfile{CompanyName: "Meblex", Website: "https://meblex.example"})

	data, err := Snapshot(s)
	require.NoError(t, err)

	got, err := Restore(data)
	require.NoError(t, err)

	assert.Equal(t, s.ROI, got.ROI)
	assert.Equal(t, s.Config, got.Config)
	assert.Equal(t, s.Dict, got.Dict)
	assert.Equal(t, s.Lead, got.Lead)
	assert.Equal(t, s.ProjectCostTotal(), got.ProjectCostTotal())
}

func TestRestoreCorruptBlobFallsBackToDefault(t *testing.T) {
	t.Parallel()

	got, err := Restore([]byte("{not json"))
	assert.Error(t, err)
	assert.Equal(t, Default().Config, got.Config)
}

func TestNamespaceKey(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "offerdesk_state_v3", NamespaceKey)
}
