package advisor

import "testing"

func TestScoreLaundry(t *testing.T) {
	tests := []struct {
		name                                            string
		tempC, humidity, windKmh, precipProb, cloudCover float64
		wantScore                                       int
		wantStatus                                      string
		wantSeverity                                    Severity
	}{
		{"ideal drying day", 25, 50, 15, 0, 0, 100, "SEMPURNA", SeveritySuccess},
		{"overcast and muggy", 30, 75, 3, 0, 85, 55, "CUKUP BAIK", SeverityWarning},
		{"cold drizzle", 18, 75, 3, 25, 0, 25, "KURANG BAIK", SeverityWarning},
		{"rainy humid day", 28, 85, 3, 60, 90, 5, "JANGAN CUCI", SeverityDanger},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreLaundry(tt.tempC, tt.humidity, tt.windKmh, tt.precipProb, tt.cloudCover)
			if got.Score != tt.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, tt.wantScore)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", got.Status, tt.wantStatus)
			}
			if got.Severity != tt.wantSeverity {
				t.Errorf("Severity = %q, want %q", got.Severity, tt.wantSeverity)
			}
		})
	}
}

func TestScoreLaundryClamped(t *testing.T) {
	// Out-of-range inputs must never push the score outside 0-100.
	extremes := []struct {
		tempC, humidity, windKmh, precipProb, cloudCover float64
	}{
		{-50, 150, 500, 100, 100},
		{60, -10, -5, -1, -1},
		{25, 50, 15, 0, 0},
	}
	for _, in := range extremes {
		got := ScoreLaundry(in.tempC, in.humidity, in.windKmh, in.precipProb, in.cloudCover)
		if got.Score < 0 || got.Score > 100 {
			t.Errorf("ScoreLaundry(%+v).Score = %d, outside [0,100]", in, got.Score)
		}
	}
}
