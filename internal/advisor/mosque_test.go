package advisor

import (
	"strings"
	"testing"
)

func TestScoreMosqueComfort(t *testing.T) {
	tests := []struct {
		name                        string
		tempC, humidity, precipProb float64
		wantComfort                 string
		wantSeverity                Severity
		wantRainAdvice              string
	}{
		{"hot and humid", 33, 75, 60, "PENGAP", SeverityDanger, "Bawa payung & sandal cadangan (akan hujan)."},
		{"warm evening", 29, 60, 30, "SEDIKIT GERAH", SeverityWarning, "Siapkan payung (mungkin hujan ringan)."},
		{"cool highland night", 20, 50, 0, "SEJUK/DINGIN", SeverityInfo, "Cuaca cerah."},
		{"pleasant", 25, 50, 0, "NYAMAN", SeveritySuccess, "Cuaca cerah."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreMosqueComfort(tt.tempC, tt.humidity, tt.precipProb)
			if got.Comfort != tt.wantComfort {
				t.Errorf("Comfort = %q, want %q", got.Comfort, tt.wantComfort)
			}
			if got.Severity != tt.wantSeverity {
				t.Errorf("Severity = %q, want %q", got.Severity, tt.wantSeverity)
			}
			if got.RainAdvice != tt.wantRainAdvice {
				t.Errorf("RainAdvice = %q, want %q", got.RainAdvice, tt.wantRainAdvice)
			}
			if !strings.HasPrefix(got.OverallAdvice, got.Comfort+". ") {
				t.Errorf("OverallAdvice = %q, should start with comfort class", got.OverallAdvice)
			}
		})
	}
}
