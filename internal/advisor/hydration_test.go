package advisor

import "testing"

func TestPlanHydrationHotDay(t *testing.T) {
	plan := PlanHydration(35, 70, true)

	if plan.TotalNeededMl != 3675 {
		t.Errorf("TotalNeededMl = %d, want 3675", plan.TotalNeededMl)
	}
	if got := plan.SahurGlasses + plan.IftarGlasses + plan.NightGlasses; got != 15 {
		t.Errorf("total glasses = %d, want 15", got)
	}
	if plan.Pattern != "3-6-6" {
		t.Errorf("Pattern = %q, want %q", plan.Pattern, "3-6-6")
	}
	if plan.SahurMl != 735 || plan.IftarMl != 1470 || plan.NightMl != 1470 {
		t.Errorf("ml split = %d/%d/%d, want 735/1470/1470",
			plan.SahurMl, plan.IftarMl, plan.NightMl)
	}
	if plan.Severity != SeverityDanger {
		t.Errorf("Severity = %q, want %q", plan.Severity, SeverityDanger)
	}
}

func TestPlanHydrationTiers(t *testing.T) {
	// At 50 kg the ml target fits inside each tier's base glasses; at
	// 70 kg it overflows and the 20/40/40 surplus split kicks in.
	tests := []struct {
		name       string
		heatIndexC float64
		weightKg   float64
		pattern    string
		severity   Severity
	}{
		{"mild base pattern", 26, 50, "2-4-2", SeveritySuccess},
		{"warm base pattern", 30, 50, "3-4-3", SeverityWarning},
		{"boundary stays warm", 32, 50, "3-4-3", SeverityWarning},
		{"mild with surplus", 26, 70, "2-4-4", SeveritySuccess},
		{"warm with surplus", 30, 70, "3-5-5", SeverityWarning},
		{"hot", 33, 70, "3-6-6", SeverityDanger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanHydration(tt.heatIndexC, tt.weightKg, true)
			if plan.Pattern != tt.pattern {
				t.Errorf("Pattern = %q, want %q", plan.Pattern, tt.pattern)
			}
			if plan.Severity != tt.severity {
				t.Errorf("Severity = %q, want %q", plan.Severity, tt.severity)
			}
		})
	}
}

func TestPlanHydrationConservation(t *testing.T) {
	for _, hi := range []float64{20, 28.5, 31, 34, 40} {
		for _, kg := range []float64{45, 58, 70, 83, 102} {
			plan := PlanHydration(hi, kg, true)
			sum := plan.SahurMl + plan.IftarMl + plan.NightMl
			if sum != plan.TotalNeededMl {
				t.Errorf("PlanHydration(%v, %v): parts sum to %d, total %d",
					hi, kg, sum, plan.TotalNeededMl)
			}
			glasses := plan.SahurGlasses + plan.IftarGlasses + plan.NightGlasses
			if need := (plan.TotalNeededMl + mlPerGlass - 1) / mlPerGlass; glasses < need {
				t.Errorf("PlanHydration(%v, %v): %d glasses cannot hold %d ml",
					hi, kg, glasses, plan.TotalNeededMl)
			}
		}
	}
}

func TestPlanHydrationNotFasting(t *testing.T) {
	plan := PlanHydration(35, 70, false)

	if plan.Fasting {
		t.Error("Fasting = true, want false")
	}
	if plan.TotalNeededMl != 3675 {
		t.Errorf("TotalNeededMl = %d, want 3675", plan.TotalNeededMl)
	}
	if plan.Pattern != "" || plan.SahurMl != 0 {
		t.Errorf("non-fasting plan carries a split: %+v", plan)
	}
}

func TestPlanHydrationWeightFallback(t *testing.T) {
	got := PlanHydration(26, 0, true)
	want := PlanHydration(26, DefaultBodyWeightKg, true)
	if got != want {
		t.Errorf("zero weight plan = %+v, want default-weight plan %+v", got, want)
	}
}
