package meal

import (
	"fmt"
	"sort"
	"time"
)

// RankedMeal is a catalog entry scored for today's weather. Produced per
// request, never stored.
type RankedMeal struct {
	Meal
	WeatherScore  int    `json:"weatherScore"`
	WeatherAdvice string `json:"weatherAdvice,omitempty"`
}

// SelectBucket maps the minutes available for cooking to a prep-time
// bucket. Sahur cuts over at 10 and 20 minutes, iftar at 15 and 45.
func SelectBucket(t Type, prepMinutes int) Bucket {
	if t == TypeSahur {
		switch {
		case prepMinutes < 10:
			return BucketQuick
		case prepMinutes < 20:
			return BucketMedium
		default:
			return BucketSlow
		}
	}
	switch {
	case prepMinutes < 15:
		return BucketQuick
	case prepMinutes < 45:
		return BucketMedium
	default:
		return BucketSlow
	}
}

// Rank scores every meal in one catalog bucket for the given weather and
// sorts descending. The sort is stable so ties keep their catalog order.
func (c Catalog) Rank(t Type, b Bucket, tempC, heatIndexC float64, isRainy bool) []RankedMeal {
	meals := c.Meals(t, b)
	ranked := make([]RankedMeal, 0, len(meals))

	for _, m := range meals {
		score := 100
		var advice string

		if heatIndexC > 32 {
			switch m.Hydration {
			case HydrationHigh, HydrationVeryHigh:
				score += 20
				advice = "Sangat cocok untuk cuaca panas! Hidrasi tinggi."
			case HydrationLow:
				score -= 30
				advice = "Kurang cocok untuk panas. Tambah sayur/buah."
			}
			if m.Rich {
				score -= 25
				advice = "Terlalu berat untuk cuaca panas. Pilih yang lebih ringan."
			}
		}

		if isRainy || tempC < 24 {
			if m.Warming {
				score += 25
				advice = "Cocok! Kuah hangat pas untuk hujan/dingin."
			} else if m.Chilled {
				score -= 20
				advice = "Kurang cocok untuk cuaca dingin. Pilih yang hangat."
			}
		}

		if t == TypeIftar {
			if m.TarawihSafe {
				score += 15
				advice = joinAdvice(advice, "Ringan, aman untuk Tarawih.")
			} else if m.Rich {
				score -= 10
				advice = joinAdvice(advice, "Berat. Bisa bikin ngantuk saat Tarawih.")
			}
		}

		ranked = append(ranked, RankedMeal{Meal: m, WeatherScore: score, WeatherAdvice: advice})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].WeatherScore > ranked[j].WeatherScore
	})
	return ranked
}

func joinAdvice(a, b string) string {
	if a == "" {
		return b
	}
	return a + " " + b
}

// MinutesUntil returns the whole minutes from now until the next occurrence
// of the "HH:MM" wall-clock time, rolling to tomorrow when already past.
func MinutesUntil(hhmm string, now time.Time) (int, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("meal: bad time %q: %w", hhmm, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("meal: bad time %q", hhmm)
	}

	target := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if target.Before(now) {
		target = target.AddDate(0, 0, 1)
	}
	return int(target.Sub(now).Minutes()), nil
}

// Urgency grades how close imsak is.
type Urgency string

const (
	UrgencyRelaxed  Urgency = "relaxed"
	UrgencyModerate Urgency = "moderate"
	UrgencyHurry    Urgency = "hurry"
	UrgencyCritical Urgency = "critical"
)

func urgencyFor(minutesLeft int) (Urgency, string) {
	switch {
	case minutesLeft > 60:
		return UrgencyRelaxed, "Masih santai! Bisa masak yang agak lama."
	case minutesLeft > 30:
		return UrgencyModerate, "Waktu cukup, tapi jangan terlalu lama ya!"
	case minutesLeft > 15:
		return UrgencyHurry, "Mepet! Pilih menu yang cepat!"
	default:
		return UrgencyCritical, "SEKARANG! Smoothie/Roti saja, cepat!"
	}
}

// SahurPlan is the countdown-aware sahur recommendation set.
type SahurPlan struct {
	MinutesLeft     int          `json:"minutesLeft"`
	Urgency         Urgency      `json:"urgency"`
	Message         string       `json:"message"`
	ImsakTime       string       `json:"imsakTime"`
	Recommendations []RankedMeal `json:"recommendations"`
}

const sahurBufferMinutes = 10 // eating time reserved after cooking

// PlanSahur builds a sahur plan for the time remaining before imsak. The
// caller passes the clock in so the planner stays deterministic.
func (c Catalog) PlanSahur(now time.Time, imsakTime string, tempC, heatIndexC float64, isRainy bool) (SahurPlan, error) {
	minutesLeft, err := MinutesUntil(imsakTime, now)
	if err != nil {
		return SahurPlan{}, err
	}

	urgency, message := urgencyFor(minutesLeft)
	bucket := SelectBucket(TypeSahur, minutesLeft-sahurBufferMinutes)
	ranked := c.Rank(TypeSahur, bucket, tempC, heatIndexC, isRainy)

	return SahurPlan{
		MinutesLeft:     minutesLeft,
		Urgency:         urgency,
		Message:         message,
		ImsakTime:       imsakTime,
		Recommendations: topN(ranked, 3),
	}, nil
}

// TarawihAdvice is the fixed iftar-timing advisory.
type TarawihAdvice struct {
	StartTime string `json:"startTime"`
	Message   string `json:"message"`
	FoodTips  string `json:"foodTips"`
}

// IftarPlan is the iftar recommendation set plus Tarawih timing advice.
type IftarPlan struct {
	PrepTimeMinutes int           `json:"prepTimeMinutes"`
	Recommendations []RankedMeal  `json:"recommendations"`
	TarawihAdvice   TarawihAdvice `json:"tarawihAdvice"`
}

// PlanIftar builds an iftar plan for the given cooking-time budget.
func (c Catalog) PlanIftar(prepMinutes int, tempC, heatIndexC float64, isRainy bool) IftarPlan {
	bucket := SelectBucket(TypeIftar, prepMinutes)
	ranked := c.Rank(TypeIftar, bucket, tempC, heatIndexC, isRainy)

	return IftarPlan{
		PrepTimeMinutes: prepMinutes,
		Recommendations: topN(ranked, 5),
		TarawihAdvice: TarawihAdvice{
			StartTime: "19:00",
			Message:   "Makan 1.5 jam sebelum Tarawih agar tidak begah.",
			FoodTips:  "Hindari: Santan kental, gorengan banyak, makanan pedas. Pilih: Protein ringan (ikan/ayam), sayur, buah.",
		},
	}
}

func topN(meals []RankedMeal, n int) []RankedMeal {
	if len(meals) > n {
		return meals[:n]
	}
	return meals
}
