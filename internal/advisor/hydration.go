package advisor

import (
	"fmt"
	"math"
)

// DefaultBodyWeightKg is used when no body weight is configured.
const DefaultBodyWeightKg = 70

const mlPerGlass = 250

// HydrationPlan is the daily water target with its sahur/iftar/night split.
// SahurMl+IftarMl+NightMl always equals TotalNeededMl. Non-fasting plans
// carry only the total and recommendation.
type HydrationPlan struct {
	TotalNeededMl  int      `json:"totalNeededMl"`
	SahurMl        int      `json:"sahurMl,omitempty"`
	IftarMl        int      `json:"iftarMl,omitempty"`
	NightMl        int      `json:"nightMl,omitempty"`
	SahurGlasses   int      `json:"sahurGlasses,omitempty"`
	IftarGlasses   int      `json:"iftarGlasses,omitempty"`
	NightGlasses   int      `json:"nightGlasses,omitempty"`
	Pattern        string   `json:"pattern,omitempty"`
	Recommendation string   `json:"recommendation"`
	Fasting        bool     `json:"fasting"`
	Severity       Severity `json:"severity"`
}

type hydrationTier struct {
	multiplier     float64
	sahurGlasses   int
	iftarGlasses   int
	nightGlasses   int
	recommendation string
	severity       Severity
}

// PlanHydration derives the day's water target from the heat index and body
// weight (35 ml per kg, scaled up in hot weather). Tiers are evaluated
// high-to-low. A zero or negative bodyWeightKg falls back to the default.
func PlanHydration(heatIndexC, bodyWeightKg float64, fasting bool) HydrationPlan {
	if bodyWeightKg <= 0 {
		bodyWeightKg = DefaultBodyWeightKg
	}

	var tier hydrationTier
	switch {
	case heatIndexC > 32:
		tier = hydrationTier{1.5, 3, 5, 4,
			"CRITICAL: Cuaca sangat panas. Prioritaskan air putih dan hindari kafein.",
			SeverityDanger}
	case heatIndexC > 28:
		tier = hydrationTier{1.3, 3, 4, 3,
			"WARNING: Udara panas. Perbanyak minum saat sahur.",
			SeverityWarning}
	default:
		tier = hydrationTier{1.0, 2, 4, 2,
			"NORMAL: Minum air secukupnya, konsumsi buah berair.",
			SeveritySuccess}
	}

	totalMl := int(math.Round(bodyWeightKg * 35 * tier.multiplier))

	if !fasting {
		return HydrationPlan{
			TotalNeededMl:  totalMl,
			Recommendation: "Minum air teratur sepanjang hari",
			Fasting:        false,
			Severity:       tier.severity,
		}
	}

	sahur := tier.sahurGlasses
	iftar := tier.iftarGlasses
	night := tier.nightGlasses

	// If the ml target needs more glasses than the tier's base pattern,
	// spread the surplus 20/40/40 across sahur/iftar/night, remainder to
	// night.
	totalGlasses := int(math.Ceil(float64(totalMl) / mlPerGlass))
	if base := sahur + iftar + night; totalGlasses > base {
		surplus := totalGlasses - base
		extraSahur := surplus * 20 / 100
		extraIftar := surplus * 40 / 100
		sahur += extraSahur
		iftar += extraIftar
		night += surplus - extraSahur - extraIftar
	} else {
		totalGlasses = base
	}

	// Split the ml total in proportion to the glasses, giving night the
	// rounding remainder so the parts always sum to the total.
	sahurMl := totalMl * sahur / totalGlasses
	iftarMl := totalMl * iftar / totalGlasses
	nightMl := totalMl - sahurMl - iftarMl

	return HydrationPlan{
		TotalNeededMl:  totalMl,
		SahurMl:        sahurMl,
		IftarMl:        iftarMl,
		NightMl:        nightMl,
		SahurGlasses:   sahur,
		IftarGlasses:   iftar,
		NightGlasses:   night,
		Pattern:        fmt.Sprintf("%d-%d-%d", sahur, iftar, night),
		Recommendation: tier.recommendation,
		Fasting:        true,
		Severity:       tier.severity,
	}
}
