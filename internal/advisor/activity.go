package advisor

// Activity identifies a scoreable afternoon/outing activity.
type Activity string

const (
	ActivityStrolling      Activity = "jalan"     // strolling before iftar
	ActivityStreetFood     Activity = "kuliner"   // takjil hunting
	ActivityPark           Activity = "taman"     // park / town square
	ActivityCommunalDining Activity = "bukber"    // group iftar, often outdoor
	ActivityBeach          Activity = "pantai"    // beach & water activities
	ActivityMountain       Activity = "gunung"    // hiking
	ActivityMobility       Activity = "mobilitas" // road travel
)

// Surface is the planner view an activity belongs to. The two surfaces keep
// separate activity sets; communal dining appears on both.
type Surface string

const (
	SurfaceNgabuburit Surface = "ngabuburit"
	SurfaceTourism    Surface = "tourism"
)

// SurfaceActivities returns the activities scored on a planner surface, in
// display order.
func SurfaceActivities(s Surface) []Activity {
	switch s {
	case SurfaceTourism:
		return []Activity{ActivityBeach, ActivityMountain, ActivityMobility, ActivityCommunalDining}
	default:
		return []Activity{ActivityStrolling, ActivityStreetFood, ActivityPark, ActivityCommunalDining}
	}
}

// ActivitySignals bundles the weather inputs an activity score reads.
// PrecipProbAt looks up the hourly precipitation probability for fixed
// future hours (takjil time, iftar time); a nil func reads as 0.
type ActivitySignals struct {
	TempC         float64
	HeatIndexC    float64
	PrecipProbPct float64
	WindKmh       float64
	CloudCoverPct float64
	WaveHeightM   float64
	PrecipProbAt  func(hour int) float64
}

func (s ActivitySignals) precipProbAt(hour int) float64 {
	if s.PrecipProbAt == nil {
		return 0
	}
	return s.PrecipProbAt(hour)
}

// ActivityResult is the suitability verdict for one activity. Tips are
// appended in rule-evaluation order; the UI renders them as given.
type ActivityResult struct {
	Activity Activity `json:"activity"`
	Score    int      `json:"score"`
	Status   string   `json:"status"`
	Severity Severity `json:"severity"`
	Tips     []string `json:"tips"`
}

const (
	takjilHour = 17 // peak street-food time
	iftarHour  = 18 // communal dining checks the iftar-time forecast
)

// ScoreActivity rates one activity against the current weather signals.
// Each activity has its own weighted rule table and status cutoffs.
func ScoreActivity(a Activity, sig ActivitySignals) ActivityResult {
	score := 100
	var tips []string

	add := func(delta int, tip string) {
		score += delta
		tips = append(tips, tip)
	}

	var statuses [4]string
	var cutoffs [3]int

	switch a {
	case ActivityStrolling:
		if sig.PrecipProbPct > 50 {
			add(-35, "Kemungkinan hujan tinggi, siapkan payung")
		} else if sig.PrecipProbPct > 30 {
			add(-15, "Kemungkinan gerimis, bawa payung lipat")
		}
		if sig.HeatIndexC > 35 {
			add(-25, "Cuaca sangat panas, tunggu menjelang Maghrib")
		} else if sig.HeatIndexC > 32 {
			add(-15, "Masih panas, hindari jalan kaki terlalu lama")
		} else if sig.HeatIndexC < 28 {
			add(10, "Cuaca sejuk, cocok untuk jalan kaki santai")
		}
		if sig.WindKmh > 30 {
			add(-15, "Angin cukup kencang")
		}
		if sig.CloudCoverPct > 70 {
			add(5, "Mendung, tidak terlalu terik")
		}
		cutoffs = [3]int{75, 50, 30}
		statuses = [4]string{"SANGAT COCOK", "CUKUP NYAMAN", "KURANG IDEAL", "TIDAK DISARANKAN"}

	case ActivityStreetFood:
		if sig.PrecipProbPct > 60 {
			add(-40, "Hujan deras, pilih takjil drive-thru atau pesan online")
		} else if sig.PrecipProbPct > 30 {
			add(-20, "Kemungkinan hujan, pilih tempat takjil indoor")
		}
		if sig.HeatIndexC > 34 {
			add(-15, "Cuaca panas, beli es buah atau es kelapa muda!")
		} else if sig.HeatIndexC < 28 {
			add(10, "Cuaca sejuk, cocok beli gorengan hangat")
		}
		if sig.WindKmh > 25 {
			add(-10, "Angin kencang, hati-hati bawa makanan")
		}
		if sig.precipProbAt(takjilHour) > 50 {
			add(-15, "Prediksi hujan jam 5 sore, berangkat lebih awal")
		}
		cutoffs = [3]int{80, 60, 40}
		statuses = [4]string{"WAKTU IDEAL BERBURU", "COCOK", "PERLU PERSIAPAN", "PESAN ONLINE SAJA"}

	case ActivityPark:
		if sig.PrecipProbPct > 50 {
			add(-40, "Risiko hujan tinggi, tidak cocok ke taman")
		} else if sig.PrecipProbPct > 30 {
			add(-20, "Kemungkinan hujan, bawa payung")
		}
		if sig.HeatIndexC > 35 {
			add(-30, "Masih sangat panas, tunggu menjelang Maghrib")
		} else if sig.HeatIndexC > 32 {
			add(-15, "Cuaca masih panas, cari spot teduh")
		} else if sig.HeatIndexC < 28 {
			add(15, "Cuaca sejuk, sempurna untuk ngabuburit di taman!")
		}
		if sig.WindKmh > 35 {
			add(-15, "Angin kencang, hati-hati dekat pohon besar")
		}
		if sig.CloudCoverPct > 60 && sig.PrecipProbPct < 30 {
			add(10, "Mendung tapi tidak hujan, sejuk!")
		}
		cutoffs = [3]int{75, 50, 30}
		statuses = [4]string{"SEMPURNA", "CUKUP NYAMAN", "KURANG IDEAL", "TIDAK DISARANKAN"}

	case ActivityCommunalDining:
		if sig.PrecipProbPct > 40 {
			add(-30, "Risiko hujan, pilih tempat bukber indoor")
		}
		if sig.HeatIndexC > 33 {
			add(-15, "Cuaca panas, pilih tempat ber-AC")
		} else if sig.HeatIndexC < 26 {
			add(10, "Cuaca sejuk, outdoor dining nyaman!")
		}
		if sig.WindKmh > 25 {
			add(-10, "Angin kencang, hindari meja outdoor")
		}
		if p := sig.precipProbAt(iftarHour); p > 50 {
			add(-20, "Prediksi hujan saat berbuka")
		} else if p < 20 {
			add(5, "Cuaca cerah saat berbuka, outdoor aman")
		}
		cutoffs = [3]int{80, 60, 40}
		statuses = [4]string{"SANGAT COCOK", "COCOK", "PERTIMBANGKAN INDOOR", "PILIH INDOOR"}

	case ActivityBeach:
		if sig.WaveHeightM > 2.0 {
			add(-40, "Ombak tinggi, berbahaya untuk berenang")
		} else if sig.WaveHeightM > 1.5 {
			add(-25, "Ombak sedang, hati-hati berenang")
		}
		if sig.PrecipProbPct > 50 {
			add(-30, "Kemungkinan hujan tinggi")
		} else if sig.PrecipProbPct > 30 {
			add(-15, "Siapkan payung untuk jaga-jaga")
		}
		if sig.WindKmh > 30 {
			add(-20, "Angin kencang, hati-hati aktivitas air")
		}
		if sig.HeatIndexC > 35 {
			add(-15, "Cuaca sangat panas, pakai sunscreen SPF 50+")
		} else if sig.HeatIndexC > 30 {
			add(0, "Cuaca panas, bawa banyak air minum")
		}
		if sig.CloudCoverPct < 30 {
			add(10, "Langit cerah, cocok untuk snorkeling!")
		}
		cutoffs = [3]int{75, 50, 30}
		statuses = [4]string{"SEMPURNA", "CUKUP BAIK", "KURANG IDEAL", "TIDAK DISARANKAN"}

	case ActivityMountain:
		if sig.PrecipProbPct > 50 {
			add(-40, "Hujan tinggi, jalur licin berbahaya")
		} else if sig.PrecipProbPct > 30 {
			add(-20, "Kemungkinan hujan, bawa jas hujan")
		}
		if sig.WindKmh > 40 {
			add(-30, "Angin sangat kencang di puncak")
		} else if sig.WindKmh > 25 {
			add(-15, "Angin kencang, bawa jaket windbreaker")
		}
		if sig.TempC < 15 {
			add(0, "Suhu dingin, bawa pakaian tebal")
		} else if sig.TempC > 30 {
			add(-10, "Cuaca panas, bawa air ekstra")
		}
		if sig.CloudCoverPct > 80 {
			add(-10, "Mendung tebal, view mungkin tertutup")
		} else if sig.CloudCoverPct < 30 {
			add(10, "Langit cerah, view akan bagus!")
		}
		cutoffs = [3]int{75, 50, 30}
		statuses = [4]string{"SEMPURNA", "CUKUP BAIK", "PERLU PERSIAPAN EKSTRA", "TUNDA PENDAKIAN"}

	case ActivityMobility:
		if sig.PrecipProbPct > 60 {
			add(-35, "Hujan lebat, hati-hati berkendara")
		} else if sig.PrecipProbPct > 30 {
			add(-15, "Kemungkinan hujan, waspadai genangan")
		}
		if sig.WindKmh > 50 {
			add(-25, "Angin kencang berbahaya untuk motor")
		}
		if sig.CloudCoverPct > 90 {
			add(-5, "Mendung gelap, nyalakan lampu")
		}
		if sig.HeatIndexC > 35 {
			add(-10, "AC mobil ON, hindari motor siang")
		}
		cutoffs = [3]int{80, 60, 40}
		statuses = [4]string{"LANCAR", "NORMAL", "WASPADA", "TUNDA PERJALANAN"}
	}

	score = clampScore(score)

	var status string
	var severity Severity
	switch {
	case score >= cutoffs[0]:
		status = statuses[0]
		severity = SeveritySuccess
	case score >= cutoffs[1]:
		status = statuses[1]
		severity = SeverityWarning
	case score >= cutoffs[2]:
		status = statuses[2]
		severity = SeverityWarning
	default:
		status = statuses[3]
		severity = SeverityDanger
	}

	return ActivityResult{
		Activity: a,
		Score:    score,
		Status:   status,
		Severity: severity,
		Tips:     tips,
	}
}
