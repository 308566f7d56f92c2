package ingest

import (
	"encoding/json"

	"github.com/rizaldy/temanramadhan/internal/models"
)

const (
	FlagTempOutOfRange    = "temp_out_of_range"
	FlagHumidityInvalid   = "humidity_invalid"
	FlagWindSpeedUnlikely = "wind_speed_unlikely"
	FlagCloudCoverInvalid = "cloud_cover_invalid"
	FlagPrecipNegative    = "precip_negative"
	FlagWaveOutOfRange    = "wave_out_of_range"
)

// ValidateSnapshot flags readings that are physically implausible for a
// tropical coastal location. Flagged readings are still stored; the flags
// only feed the ingest log.
func ValidateSnapshot(s models.WeatherSnapshot) []string {
	var flags []string

	if s.TemperatureC < 10 || s.TemperatureC > 45 {
		flags = append(flags, FlagTempOutOfRange)
	}
	if s.RelativeHumidityPct < 0 || s.RelativeHumidityPct > 100 {
		flags = append(flags, FlagHumidityInvalid)
	}
	if s.WindSpeedKmh < 0 || s.WindSpeedKmh > 150 {
		flags = append(flags, FlagWindSpeedUnlikely)
	}
	if s.CloudCoverPct < 0 || s.CloudCoverPct > 100 {
		flags = append(flags, FlagCloudCoverInvalid)
	}
	if s.PrecipitationMm < 0 {
		flags = append(flags, FlagPrecipNegative)
	}

	return flags
}

// ValidateMarine flags implausible wave readings.
func ValidateMarine(m models.MarineSnapshot) []string {
	if m.WaveHeightM < 0 || m.WaveHeightM > 15 {
		return []string{FlagWaveOutOfRange}
	}
	return nil
}

func QualityFlagsToJSON(flags []string) string {
	if len(flags) == 0 {
		return ""
	}
	b, _ := json.Marshal(flags)
	return string(b)
}
