package model

// ProviderFitStatus is the qualitative assessment of how well we fit the lead.
type ProviderFitStatus string

const (
	ProviderFitUnknown ProviderFitStatus = "UNKNOWN"
	ProviderFitGood    ProviderFitStatus = "GOOD_FIT"
	ProviderFitPartial ProviderFitStatus = "PARTIAL_FIT"
	ProviderFitNone    ProviderFitStatus = "NO_FIT"
)

// MemberStatus is the stance of a buying-committee member.
type MemberStatus string

const (
	MemberStatusUnknown  MemberStatus = "UNKNOWN"
	MemberStatusPositive MemberStatus = "POSITIVE"
	MemberStatusNeutral  MemberStatus = "NEUTRAL"
	MemberStatusNegative MemberStatus = "NEGATIVE"
)

// StepStatus is the progress state of an implementation-schedule step.
type StepStatus string

const (
	StepStatusPending    StepStatus = "PENDING"
	StepStatusInProgress StepStatus = "IN_PROGRESS"
	StepStatusDone       StepStatus = "DONE"
)

// CommitteeMember is a single member of the lead's buying committee.
type CommitteeMember struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Position string       `json:"position"`
	Status   MemberStatus `json:"status"`
}

// ScheduleStep is an ordered step of the planned implementation schedule.
type ScheduleStep struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Status StepStatus `json:"status"`
	Date   string     `json:"date,omitempty"` // YYYY-MM-DD, free-form
}

// ROIInputs holds the operational assumptions entered for a lead.
// All currency amounts are grosz (minor units).
type ROIInputs struct {
	Employees           int               `json:"employees"`
	HourlyRateGrosz     int64             `json:"hourly_rate_grosz"`
	MinutesPerEmployee  int               `json:"minutes_per_employee"`
	WorkdaysInMonth     int               `json:"workdays_in_month"`
	InventoryValueGrosz int64             `json:"inventory_value_grosz"`
	InventoryOptPercent float64           `json:"inventory_opt_percent"`
	AnnualTurnoverGrosz int64             `json:"annual_turnover_grosz"`
	LostTurnoverPercent float64           `json:"lost_turnover_percent"`
	ProviderFit         ProviderFitStatus `json:"provider_fit"`
	Committee           []CommitteeMember `json:"committee"`
	Schedule            []ScheduleStep    `json:"schedule"`
}

// ROIResults is fully derived from ROIInputs; callers never mutate it.
type ROIResults struct {
	DailyMinutesTotal     int64 `json:"daily_minutes_total"`
	DailyWasteCostGrosz   int64 `json:"daily_waste_cost_grosz"`
	MonthlyWasteCostGrosz int64 `json:"monthly_waste_cost_grosz"`
	QuarterlyWasteGrosz   int64 `json:"quarterly_waste_cost_grosz"`
	AnnualWasteCostGrosz  int64 `json:"annual_waste_cost_grosz"`
	InventorySavingGrosz  int64 `json:"inventory_saving_grosz"`
	LostTurnoverGrosz     int64 `json:"lost_turnover_value_grosz"`
	TotalAnnualImpact     int64 `json:"total_annual_impact_grosz"`
}
