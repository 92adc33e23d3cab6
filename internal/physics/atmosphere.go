package physics

import (
	"fmt"
	"math"
)

// Magnus formula constants for dew point approximation.
const (
	magnusA = 17.27
	magnusB = 237.7
)

// minHumidity floors the relative humidity so ln(h/100) stays finite.
// Bone-dry readings report the dew point for 0.1%.
const minHumidity = 0.1

// CalculateAirDensity returns air density in kg/m³ from temperature (°F) and
// station pressure (inHg). Temperature converts to Kelvin via Rankine;
// pressure converts inHg→kPa with 3.38639 and divides by the specific gas
// constant for dry air (0.287042 kJ/(kg·K)). 59°F at 29.92 inHg gives the
// standard sea-level 1.225.
func CalculateAirDensity(temperature, pressure float64) (float64, error) {
	if !finite(temperature, pressure) {
		return 0, fmt.Errorf("%w: temperature and pressure must be numeric", ErrInvalidInput)
	}

	tempK := (temperature + 459.67) * 5 / 9
	if tempK <= 0 {
		return 0, fmt.Errorf("%w: temperature %.2f°F is at or below absolute zero", ErrInvalidInput, temperature)
	}

	density := pressure * 3.38639 / (tempK * 0.287042)
	return round3(density), nil
}

// CalculateDewPoint returns the dew point (°F) via the Magnus approximation.
// Humidity is relative humidity in percent and must be in [0,100]; readings
// below 0.1% are floored so the result stays finite. The result is always a
// finite number or an ErrInvalidInput.
func CalculateDewPoint(temperature, humidity float64) (float64, error) {
	if !finite(temperature, humidity) {
		return 0, fmt.Errorf("%w: temperature and humidity must be numeric", ErrInvalidInput)
	}
	if humidity < 0 || humidity > 100 {
		return 0, fmt.Errorf("%w: humidity %.2f must be in [0,100]", ErrInvalidInput, humidity)
	}
	if humidity < minHumidity {
		humidity = minHumidity
	}

	alpha := magnusA*temperature/(magnusB+temperature) + math.Log(humidity/100)
	dewPoint := magnusB * alpha / (magnusA - alpha)
	if !finite(dewPoint) {
		return 0, fmt.Errorf("%w: dew point is undefined at %.2f°F / %.1f%% humidity", ErrInvalidInput, temperature, humidity)
	}
	return round2(dewPoint), nil
}
