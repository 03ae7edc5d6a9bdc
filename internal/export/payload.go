// Package export assembles the outward-facing artifacts of a configurator
// session: the CRM deal payload, the quote spreadsheet and the settings
// snapshot JSON.
package export

import (
	"fmt"
	"strings"

	"github.com/sells-group/offerdesk/internal/model"
	"github.com/sells-group/offerdesk/internal/state"
)

// DealNamePlaceholder is used when the lead has no company name yet.
const DealNamePlaceholder = "NOWY_KLIENT"

// Payload is the CRM export: the deal, its ordered line items, and the ROI
// summary attached as custom properties.
type Payload struct {
	DealName    string            `json:"deal_name"`
	AmountGrosz int64             `json:"amount_grosz"`
	LineItems   []model.LineItem  `json:"line_items"`
	Properties  map[string]string `json:"properties"`
}

// DealName derives the deal name from the lead profile:
// OFERTA_<companyName-or-placeholder>, uppercased with spaces collapsed
// to underscores.
func DealName(lead model.LeadProfile) string {
	name := strings.TrimSpace(lead.CompanyName)
	if name == "" {
		name = DealNamePlaceholder
	}
	name = strings.ToUpper(strings.Join(strings.Fields(name), "_"))
	return "OFERTA_" + name
}

// CRMPayload projects the current state into the CRM export payload.
func CRMPayload(s state.State) Payload {
	results := s.ROIResults()
	payback := s.PaybackMonths()

	return Payload{
		DealName:    DealName(s.Lead),
		AmountGrosz: s.ProjectCostTotal(),
		LineItems:   s.LineItems(),
		Properties: map[string]string{
			"annual_loss_grosz": fmt.Sprintf("%d", results.TotalAnnualImpact),
			"payback_months":    fmt.Sprintf("%.1f", payback),
			"company_name":      s.Lead.CompanyName,
		},
	}
}
