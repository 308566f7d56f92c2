package advisor

// LaundryResult is the drying-conditions verdict for hang-dried laundry.
type LaundryResult struct {
	Score      int      `json:"score"`
	Status     string   `json:"status"`
	Severity   Severity `json:"severity"`
	Advice     string   `json:"advice"`
	DryingTime string   `json:"dryingTime"`
}

// ScoreLaundry rates how well laundry will dry today. Starts from 100 and
// applies weighted deductions (humidity and rain dominate), then buckets the
// clamped score into a status.
func ScoreLaundry(tempC, humidityPct, windKmh, precipProbPct, cloudCoverPct float64) LaundryResult {
	score := 100

	// Temperature: 25-35°C dries best.
	if tempC < 20 {
		score -= 20
	} else if tempC >= 35 {
		score -= 10
	}

	// Humidity: lower is better.
	switch {
	case humidityPct > 80:
		score -= 30
	case humidityPct > 70:
		score -= 20
	case humidityPct > 60:
		score -= 10
	}

	// Wind: a moderate breeze helps, dead calm and storms both hurt.
	switch {
	case windKmh < 5:
		score -= 10
	case windKmh > 30:
		score -= 15
	case windKmh >= 10 && windKmh <= 20:
		score += 10
	}

	// Rain kills laundry.
	if precipProbPct > 50 {
		score -= 40
	} else if precipProbPct > 20 {
		score -= 25
	}

	if cloudCoverPct > 80 {
		score -= 15
	}

	score = clampScore(score)

	res := LaundryResult{Score: score}
	switch {
	case score >= 75:
		res.Status = "SEMPURNA"
		res.Severity = SeveritySuccess
		res.Advice = "Kering dalam 2-3 jam. Cuci apa aja, gas!"
		res.DryingTime = "2-3 jam"
	case score >= 50:
		res.Status = "CUKUP BAIK"
		res.Severity = SeverityWarning
		res.Advice = "Bisa kering, tapi mungkin sedikit lembab. Jemur sebelum jam 2 siang."
		res.DryingTime = "4-6 jam"
	case score >= 25:
		res.Status = "KURANG BAIK"
		res.Severity = SeverityWarning
		res.Advice = "Risiko tidak kering atau bau apek. Pertimbangkan tunda mencuci."
		res.DryingTime = "6+ jam"
	default:
		res.Status = "JANGAN CUCI"
		res.Severity = SeverityDanger
		res.Advice = "Hujan/Lembab tinggi. Pakaian pasti tidak akan kering!"
		res.DryingTime = "Tidak akan kering"
	}
	return res
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
