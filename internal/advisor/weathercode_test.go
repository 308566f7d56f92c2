package advisor

import "testing"

func TestDescribeWeatherCode(t *testing.T) {
	tests := []struct {
		code         int
		wantDesc     string
		wantSeverity Severity
	}{
		{0, "Cerah", SeveritySuccess},
		{63, "Hujan Sedang", SeverityWarning},
		{95, "Badai Petir", SeverityDanger},
		{42, "Tidak Diketahui", SeverityInfo},
	}
	for _, tt := range tests {
		got := DescribeWeatherCode(tt.code)
		if got.Description != tt.wantDesc || got.Severity != tt.wantSeverity {
			t.Errorf("DescribeWeatherCode(%d) = %+v, want %q/%q",
				tt.code, got, tt.wantDesc, tt.wantSeverity)
		}
	}
}

func TestIsRainyCode(t *testing.T) {
	rainy := []int{51, 61, 67, 80, 82, 95, 99}
	dry := []int{0, 3, 45, 48, 71, 75, 79, 94}

	for _, code := range rainy {
		if !IsRainyCode(code) {
			t.Errorf("IsRainyCode(%d) = false, want true", code)
		}
	}
	for _, code := range dry {
		if IsRainyCode(code) {
			t.Errorf("IsRainyCode(%d) = true, want false", code)
		}
	}
}
