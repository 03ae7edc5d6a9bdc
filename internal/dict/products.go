package dict

// PlaceholderProductID surfaces an unmapped external product id. Exports
// carry the placeholder instead of failing on incomplete reference data.
const PlaceholderProductID = "UNMAPPED"

// ExtrasProductID is the shared fallback id for free-text extra arrangements.
const ExtrasProductID = "2901100"

// moduleProducts maps module id and price tier to the external CRM product id.
var moduleProducts = map[string]map[PriceTier]string{
	"handel":            {TierCloudMonthly: "2901001", TierCloudAnnual: "2901002", TierPerpetual: "2901003"},
	"magazyn":           {TierCloudMonthly: "2901011", TierCloudAnnual: "2901012", TierPerpetual: "2901013"},
	"produkcja":         {TierCloudMonthly: "2901021", TierCloudAnnual: "2901022", TierPerpetual: "2901023"},
	"b2b":               {TierCloudMonthly: "2901031", TierCloudAnnual: "2901032", TierPerpetual: "2901033"},
	"mobile":            {TierCloudMonthly: "2901041", TierCloudAnnual: "2901042"},
	"analizy":           {TierCloudMonthly: "2901051", TierCloudAnnual: "2901052", TierPerpetual: "2901053"},
	IntegratorModuleID: {TierCloudMonthly: "2901061", TierCloudAnnual: "2901062", TierPerpetual: "2901063"},
}

// implementationProducts maps implementation package id to product id.
var implementationProducts = map[string]string{
	"BASIC":   "2902001",
	"PRO":     "2902002",
	"PRO_MAX": "2902003",
}

// supportProducts maps support package id to product id.
var supportProducts = map[string]string{
	"STANDARD":   "2903001",
	"PREMIUM":    "2903002",
	"ENTERPRISE": "2903003",
}

// ModuleProductID resolves the external product id for a module at a tier.
// When the tier-specific mapping is absent it falls back to the monthly id,
// then to the placeholder.
func ModuleProductID(moduleID string, tier PriceTier) string {
	tiers, ok := moduleProducts[moduleID]
	if !ok {
		return PlaceholderProductID
	}
	if id, ok := tiers[tier]; ok {
		return id
	}
	if id, ok := tiers[TierCloudMonthly]; ok {
		return id
	}
	return PlaceholderProductID
}

// ImplementationProductID resolves the product id for an implementation package.
func ImplementationProductID(pkg string) string {
	if id, ok := implementationProducts[pkg]; ok {
		return id
	}
	return PlaceholderProductID
}

// SupportProductID resolves the product id for a support package.
func SupportProductID(pkg string) string {
	if id, ok := supportProducts[pkg]; ok {
		return id
	}
	return PlaceholderProductID
}
