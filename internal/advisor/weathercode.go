package advisor

// WeatherCodeInfo is the Indonesian-language description of a WMO weather
// code, grouped by severity for display.
type WeatherCodeInfo struct {
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

var weatherCodes = map[int]WeatherCodeInfo{
	0:  {"Cerah", SeveritySuccess},
	1:  {"Cerah Berawan", SeveritySuccess},
	2:  {"Berawan Sebagian", SeverityInfo},
	3:  {"Berawan", SeverityInfo},
	45: {"Berkabut", SeverityInfo},
	48: {"Kabut Tebal", SeverityInfo},
	51: {"Gerimis Ringan", SeverityWarning},
	53: {"Gerimis", SeverityWarning},
	55: {"Gerimis Lebat", SeverityWarning},
	61: {"Hujan Ringan", SeverityWarning},
	63: {"Hujan Sedang", SeverityWarning},
	65: {"Hujan Lebat", SeverityDanger},
	71: {"Salju Ringan", SeverityInfo},
	73: {"Salju", SeverityInfo},
	75: {"Salju Lebat", SeverityInfo},
	80: {"Hujan Rintik", SeverityWarning},
	81: {"Hujan Deras", SeverityDanger},
	82: {"Hujan Sangat Deras", SeverityDanger},
	95: {"Badai Petir", SeverityDanger},
	96: {"Badai Petir + Hujan Es", SeverityDanger},
	99: {"Badai Petir Kuat", SeverityDanger},
}

// DescribeWeatherCode maps a WMO weather code to its description. Unknown
// codes return a placeholder rather than failing.
func DescribeWeatherCode(code int) WeatherCodeInfo {
	if info, ok := weatherCodes[code]; ok {
		return info
	}
	return WeatherCodeInfo{Description: "Tidak Diketahui", Severity: SeverityInfo}
}

// IsRainyCode reports whether a WMO weather code indicates precipitation,
// used to flag rainy conditions for the meal planner.
func IsRainyCode(code int) bool {
	return (code >= 51 && code <= 67) || (code >= 80 && code <= 82) || code >= 95
}
