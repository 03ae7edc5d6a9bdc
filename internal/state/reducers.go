package state

import (
	"github.com/google/uuid"

	"github.com/sells-group/offerdesk/internal/model"
)

// ROIPatch carries partial updates to the ROI inputs. Nil fields keep the
// prior value; supplied fields overwrite it.
type ROIPatch struct {
	Employees           *int                     `json:"employees,omitempty"`
	HourlyRateGrosz     *int64                   `json:"hourly_rate_grosz,omitempty"`
	MinutesPerEmployee  *int                     `json:"minutes_per_employee,omitempty"`
	WorkdaysInMonth     *int                     `json:"workdays_in_month,omitempty"`
	InventoryValueGrosz *int64                   `json:"inventory_value_grosz,omitempty"`
	InventoryOptPercent *float64                 `json:"inventory_opt_percent,omitempty"`
	AnnualTurnoverGrosz *int64                   `json:"annual_turnover_grosz,omitempty"`
	LostTurnoverPercent *float64                 `json:"lost_turnover_percent,omitempty"`
	ProviderFit         *model.ProviderFitStatus `json:"provider_fit,omitempty"`
}

// SetROIInputs applies a partial patch and returns the new state.
func SetROIInputs(s State, p ROIPatch) State {
	in := s.ROI
	if p.Employees != nil {
		in.Employees = *p.Employees
	}
	if p.HourlyRateGrosz != nil {
		in.HourlyRateGrosz = *p.HourlyRateGrosz
	}
	if p.MinutesPerEmployee != nil {
		in.MinutesPerEmployee = *p.MinutesPerEmployee
	}
	if p.WorkdaysInMonth != nil {
		in.WorkdaysInMonth = *p.WorkdaysInMonth
	}
	if p.InventoryValueGrosz != nil {
		in.InventoryValueGrosz = *p.InventoryValueGrosz
	}
	if p.InventoryOptPercent != nil {
		in.InventoryOptPercent = *p.InventoryOptPercent
	}
	if p.AnnualTurnoverGrosz != nil {
		in.AnnualTurnoverGrosz = *p.AnnualTurnoverGrosz
	}
	if p.LostTurnoverPercent != nil {
		in.LostTurnoverPercent = *p.LostTurnoverPercent
	}
	if p.ProviderFit != nil {
		in.ProviderFit = *p.ProviderFit
	}
	s.ROI = in
	return s
}

// ConfigPatch carries partial updates to the quote selection. ModuleQty
// entries merge per key; a negative quantity removes the key.
type ConfigPatch struct {
	Hosting                  *model.HostingModel     `json:"hosting,omitempty"`
	Subscription             *model.SubscriptionType `json:"subscription,omitempty"`
	LicenseMultiplier        *float64                `json:"license_multiplier,omitempty"`
	SubscriptionYears        *int                    `json:"subscription_years,omitempty"`
	ModuleQty                map[string]int          `json:"module_qty,omitempty"`
	Integrations             *[]string               `json:"integrations,omitempty"`
	ImplementationPackage    *string                 `json:"implementation_package,omitempty"`
	ImplementationMultiplier *float64                `json:"implementation_multiplier,omitempty"`
	SupportPackage           *string                 `json:"support_package,omitempty"`
	SupportPeriod            *model.BillingPeriod    `json:"support_period,omitempty"`
}

// SetConfig applies a partial patch to the selection. The hosting and
// subscription pair is normalized afterwards: PERPETUAL is not sellable on
// CLOUD hosting, so that combination falls back to MONTHLY.
func SetConfig(s State, p ConfigPatch) State {
	c := s.Config
	c.ModuleQty = copyQty(c.ModuleQty)
	c.Integrations = append([]string(nil), c.Integrations...)
	c.Extras = append([]model.ExtraArrangement(nil), c.Extras...)

	if p.Hosting != nil {
		c.Hosting = *p.Hosting
	}
	if p.Subscription != nil {
		c.Subscription = *p.Subscription
	}
	if p.LicenseMultiplier != nil {
		c.LicenseMultiplier = *p.LicenseMultiplier
	}
	if p.SubscriptionYears != nil {
		c.SubscriptionYears = *p.SubscriptionYears
	}
	for id, qty := range p.ModuleQty {
		if qty < 0 {
			delete(c.ModuleQty, id)
			continue
		}
		c.ModuleQty[id] = qty
	}
	if p.Integrations != nil {
		c.Integrations = append([]string(nil), *p.Integrations...)
	}
	if p.ImplementationPackage != nil {
		c.ImplementationPackage = *p.ImplementationPackage
	}
	if p.ImplementationMultiplier != nil {
		c.ImplementationMultiplier = *p.ImplementationMultiplier
	}
	if p.SupportPackage != nil {
		c.SupportPackage = *p.SupportPackage
	}
	if p.SupportPeriod != nil {
		c.SupportPeriod = *p.SupportPeriod
	}

	if c.Hosting == model.HostingCloud && c.Subscription == model.SubscriptionPerpetual {
		c.Subscription = model.SubscriptionMonthly
	}

	s.Config = c
	return s
}

// SetLead replaces the lead profile.
func SetLead(s State, lead model.LeadProfile) State {
	s.Lead = lead
	return s
}

// SetResearchStatus moves the research flow to the given status.
func SetResearchStatus(s State, status model.ResearchStatus) State {
	s.Research = status
	return s
}

// ResetROI restores the ROI inputs to their defaults.
func ResetROI(s State) State {
	s.ROI = Default().ROI
	return s
}

// ResetConfig restores the quote selection to its documented default.
func ResetConfig(s State) State {
	s.Config = Default().Config
	return s
}

// AddCommitteeMember appends a member with a generated id and returns the
// new state and the id.
func AddCommitteeMember(s State, name, position string, status model.MemberStatus) (State, string) {
	id := uuid.New().String()
	in := s.ROI
	in.Committee = append(append([]model.CommitteeMember(nil), in.Committee...), model.CommitteeMember{
		ID: id, Name: name, Position: position, Status: status,
	})
	s.ROI = in
	return s, id
}

// UpdateCommitteeMember overwrites the member with the given id. Unknown
// ids are a no-op.
func UpdateCommitteeMember(s State, id string, name, position string, status model.MemberStatus) State {
	in := s.ROI
	in.Committee = append([]model.CommitteeMember(nil), in.Committee...)
	for i, m := range in.Committee {
		if m.ID == id {
			in.Committee[i] = model.CommitteeMember{ID: id, Name: name, Position: position, Status: status}
			break
		}
	}
	s.ROI = in
	return s
}

// RemoveCommitteeMember deletes the member with the given id.
func RemoveCommitteeMember(s State, id string) State {
	in := s.ROI
	out := make([]model.CommitteeMember, 0, len(in.Committee))
	for _, m := range in.Committee {
		if m.ID != id {
			out = append(out, m)
		}
	}
	in.Committee = out
	s.ROI = in
	return s
}

// AddScheduleStep appends a schedule step with a generated id.
func AddScheduleStep(s State, name string, status model.StepStatus, date string) (State, string) {
	id := uuid.New().String()
	in := s.ROI
	in.Schedule = append(append([]model.ScheduleStep(nil), in.Schedule...), model.ScheduleStep{
		ID: id, Name: name, Status: status, Date: date,
	})
	s.ROI = in
	return s, id
}

// UpdateScheduleStep overwrites the step with the given id.
func UpdateScheduleStep(s State, id string, name string, status model.StepStatus, date string) State {
	in := s.ROI
	in.Schedule = append([]model.ScheduleStep(nil), in.Schedule...)
	for i, st := range in.Schedule {
		if st.ID == id {
			in.Schedule[i] = model.ScheduleStep{ID: id, Name: name, Status: status, Date: date}
			break
		}
	}
	s.ROI = in
	return s
}

// RemoveScheduleStep deletes the step with the given id.
func RemoveScheduleStep(s State, id string) State {
	in := s.ROI
	out := make([]model.ScheduleStep, 0, len(in.Schedule))
	for _, st := range in.Schedule {
		if st.ID != id {
			out = append(out, st)
		}
	}
	in.Schedule = out
	s.ROI = in
	return s
}

// AddExtraArrangement appends an extra arrangement. The list is capped at
// model.MaxExtraArrangements; adds past the cap are no-ops and return an
// empty id.
func AddExtraArrangement(s State, text string, amountGrosz int64) (State, string) {
	if len(s.Config.Extras) >= model.MaxExtraArrangements {
		return s, ""
	}
	id := uuid.New().String()
	c := s.Config
	c.Extras = append(append([]model.ExtraArrangement(nil), c.Extras...), model.ExtraArrangement{
		ID: id, Text: text, AmountGrosz: amountGrosz,
	})
	s.Config = c
	return s, id
}

// UpdateExtraArrangement overwrites the arrangement with the given id.
func UpdateExtraArrangement(s State, id, text string, amountGrosz int64) State {
	c := s.Config
	c.Extras = append([]model.ExtraArrangement(nil), c.Extras...)
	for i, x := range c.Extras {
		if x.ID == id {
			c.Extras[i] = model.ExtraArrangement{ID: id, Text: text, AmountGrosz: amountGrosz}
			break
		}
	}
	s.Config = c
	return s
}

// RemoveExtraArrangement deletes the arrangement with the given id.
func RemoveExtraArrangement(s State, id string) State {
	c := s.Config
	out := make([]model.ExtraArrangement, 0, len(c.Extras))
	for _, x := range c.Extras {
		if x.ID != id {
			out = append(out, x)
		}
	}
	c.Extras = out
	s.Config = c
	return s
}

func copyQty(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
