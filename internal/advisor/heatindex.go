package advisor

import "math"

// HeatIndex converts ambient temperature (°C) and relative humidity (%) into
// the "feels like" temperature using the NOAA Rothfusz regression, evaluated
// in Fahrenheit and converted back to Celsius, rounded to 1 decimal.
//
// Humidity is not validated here; callers clamp to [0,100] before calling.
// At low temperatures the polynomial can return a value below the input
// temperature. That is a known limitation of the regression and is passed
// through unchanged.
func HeatIndex(tempC, humidityPct float64) float64 {
	tempF := tempC*9/5 + 32
	rh := humidityPct

	hi := -42.379 +
		2.04901523*tempF +
		10.14333127*rh -
		0.22475541*tempF*rh -
		0.00683783*tempF*tempF -
		0.05481717*rh*rh +
		0.00122874*tempF*tempF*rh +
		0.00085282*tempF*rh*rh -
		0.00000199*tempF*tempF*rh*rh

	hiC := (hi - 32) * 5 / 9
	return math.Round(hiC*10) / 10
}
