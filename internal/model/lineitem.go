package model

// LineItemSource distinguishes system-generated rows from manually entered ones.
type LineItemSource string

const (
	LineItemSourceSystem LineItemSource = "system"
	LineItemSourceManual LineItemSource = "manual"
)

// Line-item categories as they appear in the CRM export.
const (
	CategoryLicense        = "license"
	CategoryIntegration    = "integration"
	CategoryImplementation = "implementation"
	CategorySupport        = "support"
	CategoryExtra          = "extra"
)

// LineItem is one export-ready sellable row. Line items are projected on
// demand from the current selection and never persisted independently.
type LineItem struct {
	ID             string         `json:"id"`
	ProductID      string         `json:"product_id"`
	Name           string         `json:"name"`
	Category       string         `json:"category"`
	Quantity       int            `json:"quantity"`
	UnitPriceGrosz int64          `json:"unit_price_grosz"`
	Source         LineItemSource `json:"source"`
}

// TotalGrosz returns quantity times unit price.
func (li LineItem) TotalGrosz() int64 {
	return int64(li.Quantity) * li.UnitPriceGrosz
}
