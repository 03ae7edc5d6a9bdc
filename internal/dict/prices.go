package dict

import (
	"math"

	"github.com/sells-group/offerdesk/internal/model"
)

// PriceTier is the price-matrix bucket a subscription type maps to.
type PriceTier string

const (
	TierCloudMonthly PriceTier = "CLOUD_MONTHLY"
	TierCloudAnnual  PriceTier = "CLOUD_ANNUAL"
	TierPerpetual    PriceTier = "PERPETUAL"
)

// IntegratorModuleID is the pseudo-module the integrator seat is priced
// under in the price matrix.
const IntegratorModuleID = "integrator"

// IntegratorLabel names the aggregate integrator line item.
const IntegratorLabel = "Integrator"

// TierFor maps a subscription type to its price-matrix tier.
func TierFor(sub model.SubscriptionType) PriceTier {
	switch sub {
	case model.SubscriptionAnnual:
		return TierCloudAnnual
	case model.SubscriptionPerpetual:
		return TierPerpetual
	default:
		return TierCloudMonthly
	}
}

// defaultPriceMatrix returns the built-in base unit prices in grosz.
// CLOUD_ANNUAL is 12x the monthly price; the 2-months-free discount is
// applied separately by the pricing engine, not baked in here.
func defaultPriceMatrix() map[PriceTier]map[string]int64 {
	monthly := map[string]int64{
		"handel":            29_900,
		"magazyn":           39_900,
		"produkcja":         49_900,
		"b2b":               34_900,
		"mobile":            19_900,
		"analizy":           24_900,
		IntegratorModuleID: 14_900,
	}
	annual := make(map[string]int64, len(monthly))
	for id, p := range monthly {
		annual[id] = p * 12
	}
	perpetual := map[string]int64{
		"handel":            999_000,
		"magazyn":           1_349_000,
		"produkcja":         1_699_000,
		"b2b":               1_149_000,
		"mobile":            649_000,
		"analizy":           849_000,
		IntegratorModuleID: 499_000,
	}
	return map[PriceTier]map[string]int64{
		TierCloudMonthly: monthly,
		TierCloudAnnual:  annual,
		TierPerpetual:    perpetual,
	}
}

// BasePrice returns the matrix price for a tier and module with the global
// SRP multiplier applied, rounded half-up to the nearest grosz. Missing
// entries yield 0 rather than an error.
func (d Dictionaries) BasePrice(tier PriceTier, moduleID string) int64 {
	row, ok := d.PriceMatrix[tier]
	if !ok {
		return 0
	}
	base, ok := row[moduleID]
	if !ok {
		return 0
	}
	mul := d.Params.SRPMultiplier
	if mul == 0 {
		mul = 1.0
	}
	return RoundGrosz(float64(base) * mul)
}

// RoundGrosz rounds half-up to the nearest integer grosz. Every price
// multiplication rounds through this before any quantity scaling.
func RoundGrosz(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
