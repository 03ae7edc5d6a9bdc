package model

// HostingModel selects where the system runs.
type HostingModel string

const (
	HostingCloud     HostingModel = "CLOUD"
	HostingOwnServer HostingModel = "OWN_SERVER"
)

// SubscriptionType selects the license billing model.
type SubscriptionType string

const (
	SubscriptionMonthly   SubscriptionType = "MONTHLY"
	SubscriptionAnnual    SubscriptionType = "ANNUAL"
	SubscriptionPerpetual SubscriptionType = "PERPETUAL"
)

// BillingPeriod is the billing cadence for support/SLA packages.
type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "MONTHLY"
	BillingAnnual  BillingPeriod = "ANNUAL"
)

// MaxExtraArrangements caps the free-text arrangement list; adds past the
// cap are no-ops.
const MaxExtraArrangements = 8

// ExtraArrangement is a free-text quote line with a manually entered amount.
type ExtraArrangement struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	AmountGrosz int64  `json:"amount_grosz"`
}

// ConfigSelection is the full quote configuration.
//
// PERPETUAL is only valid when hosting is not CLOUD; the selection setters
// normalize the pair, the pricing engine prices whatever it is given.
type ConfigSelection struct {
	Hosting                  HostingModel       `json:"hosting"`
	Subscription             SubscriptionType   `json:"subscription"`
	LicenseMultiplier        float64            `json:"license_multiplier"`
	SubscriptionYears        int                `json:"subscription_years"`
	ModuleQty                map[string]int     `json:"module_qty"`
	Integrations             []string           `json:"integrations"`
	ImplementationPackage    string             `json:"implementation_package"`
	ImplementationMultiplier float64            `json:"implementation_multiplier"`
	SupportPackage           string             `json:"support_package"`
	SupportPeriod            BillingPeriod      `json:"support_period"`
	Extras                   []ExtraArrangement `json:"extras"`
}
