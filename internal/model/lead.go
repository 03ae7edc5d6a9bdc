package model

// ResearchStatus is the linear state of the lead-research flow. Failures set
// ERROR and leave previously gathered data intact; there is no retry or
// cancellation.
type ResearchStatus string

const (
	ResearchIdle       ResearchStatus = "IDLE"
	ResearchProcessing ResearchStatus = "PROCESSING"
	ResearchCompleted  ResearchStatus = "COMPLETED"
	ResearchError      ResearchStatus = "ERROR"
)

// LeadProfile holds research data about the prospective customer. The
// pricing/ROI core reads it only for the deal name and export metadata.
type LeadProfile struct {
	CompanyName   string `json:"company_name"`
	Website       string `json:"website,omitempty"`
	Industry      string `json:"industry,omitempty"`
	EmployeeRange string `json:"employee_range,omitempty"`
	Summary       string `json:"summary,omitempty"`
	Notes         string `json:"notes,omitempty"`
}
