package advisor

import "fmt"

// MosqueComfortResult is the Tarawih comfort advisory. Unlike the other
// scorers it is branch-based rather than point-based.
type MosqueComfortResult struct {
	Comfort        string   `json:"comfort"`
	HeatIndexC     float64  `json:"heatIndexC"`
	ClothingAdvice string   `json:"clothingAdvice"`
	RainAdvice     string   `json:"rainAdvice"`
	Severity       Severity `json:"severity"`
	OverallAdvice  string   `json:"overallAdvice"`
}

// ScoreMosqueComfort classifies how comfortable the mosque will be for
// evening prayers, combining a heat-index comfort class with independent
// rain advice.
func ScoreMosqueComfort(tempC, humidityPct, precipProbPct float64) MosqueComfortResult {
	heatIndex := HeatIndex(tempC, humidityPct)

	res := MosqueComfortResult{
		Comfort:        "NYAMAN",
		HeatIndexC:     heatIndex,
		ClothingAdvice: "Pakaian biasa",
		Severity:       SeveritySuccess,
	}

	switch {
	case heatIndex > 32 && humidityPct > 70:
		res.Comfort = "PENGAP"
		res.ClothingAdvice = "Pakai baju tipis & bawa kipas. Sejadah yang menyerap keringat."
		res.Severity = SeverityDanger
	case heatIndex > 28:
		res.Comfort = "SEDIKIT GERAH"
		res.ClothingAdvice = "Baju berbahan katun. Bawa air minum."
		res.Severity = SeverityWarning
	case tempC < 22:
		res.Comfort = "SEJUK/DINGIN"
		res.ClothingAdvice = "Bawa jaket tipis atau mukena tebal."
		res.Severity = SeverityInfo
	}

	switch {
	case precipProbPct > 50:
		res.RainAdvice = "Bawa payung & sandal cadangan (akan hujan)."
	case precipProbPct > 20:
		res.RainAdvice = "Siapkan payung (mungkin hujan ringan)."
	default:
		res.RainAdvice = "Cuaca cerah."
	}

	res.OverallAdvice = fmt.Sprintf("%s. %s %s", res.Comfort, res.ClothingAdvice, res.RainAdvice)
	return res
}
