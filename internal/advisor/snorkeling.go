package advisor

// SnorkelingResult is the marine-conditions safety verdict.
type SnorkelingResult struct {
	Score          int      `json:"score"`
	Status         string   `json:"status"`
	Severity       Severity `json:"severity"`
	Advice         string   `json:"advice"`
	Recommendation string   `json:"recommendation"`
	WaveStatus     string   `json:"waveStatus"`
}

// EstimateWaveHeight derives a rough wave height (m) from wind speed, used
// when the marine API has no reading for the location.
func EstimateWaveHeight(windKmh float64) float64 {
	switch {
	case windKmh > 20:
		return 1.5
	case windKmh > 10:
		return 0.8
	default:
		return 0.3
	}
}

// ScoreSnorkeling rates snorkeling safety. Wave height is the dominant
// factor; clear skies earn a bonus for underwater visibility.
func ScoreSnorkeling(waveHeightM, windKmh, cloudCoverPct, precipProbPct float64) SnorkelingResult {
	score := 100

	switch {
	case waveHeightM > 2.0:
		score -= 50
	case waveHeightM > 1.5:
		score -= 35
	case waveHeightM > 1.0:
		score -= 20
	case waveHeightM > 0.5:
		score -= 10
	}

	if windKmh > 30 {
		score -= 25
	} else if windKmh > 20 {
		score -= 15
	}

	if cloudCoverPct > 80 {
		score -= 20
	} else if cloudCoverPct < 30 {
		score += 10
	}

	if precipProbPct > 50 {
		score -= 30
	} else if precipProbPct > 20 {
		score -= 15
	}

	score = clampScore(score)

	res := SnorkelingResult{Score: score}
	switch {
	case score >= 80:
		res.Status = "EXCELLENT"
		res.Severity = SeveritySuccess
		res.Advice = "Kondisi sempurna! Air jernih, ombak tenang. Waktu terbaik untuk snorkeling."
		res.Recommendation = "GO! Bawa kamera underwater."
	case score >= 60:
		res.Status = "GOOD"
		res.Severity = SeveritySuccess
		res.Advice = "Kondisi bagus untuk snorkeling. Pastikan tetap di area yang aman."
		res.Recommendation = "Aman untuk pemula dan keluarga."
	case score >= 40:
		res.Status = "MODERATE"
		res.Severity = SeverityWarning
		res.Advice = "Kondisi cukup menantang. Hanya untuk yang berpengalaman."
		res.Recommendation = "Pertimbangkan menunda jika pemula."
	default:
		res.Status = "DANGEROUS"
		res.Severity = SeverityDanger
		res.Advice = "Ombak tinggi dan kondisi buruk. JANGAN snorkeling!"
		res.Recommendation = "CANCEL. Terlalu berbahaya."
	}

	switch {
	case waveHeightM > 1.5:
		res.WaveStatus = "Tinggi"
	case waveHeightM > 0.8:
		res.WaveStatus = "Sedang"
	default:
		res.WaveStatus = "Tenang"
	}
	return res
}
