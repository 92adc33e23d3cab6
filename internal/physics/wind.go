package physics

import (
	"fmt"
	"math"
)

// WindEffect is the signed correction a given wind applies to a nominal shot.
type WindEffect struct {
	Distance float64 `json:"distance"` // carry delta in yards (negative = shot comes up short)
	Lateral  float64 `json:"lateral"`  // lateral delta in yards (positive = right)
}

// Per-mph sensitivity of carry and lateral drift. Empirical, tuned against
// launch-monitor sessions; the height factor scales them for low/high flights.
const (
	headwindCoeff  = 0.009
	crosswindCoeff = 0.008
)

// CalculateWindEffect decomposes wind into headwind/crosswind components
// relative to the target line and scales the effect by shot height.
// windDirection is degrees [0,360] where 0 is a dead headwind; shotHeight is
// the apex in yards. Height sensitivity saturates outside [15,45] yards.
func CalculateWindEffect(windSpeed, windDirection, shotDistance, shotHeight float64) (WindEffect, error) {
	if !finite(windSpeed, windDirection, shotDistance, shotHeight) {
		return WindEffect{}, fmt.Errorf("%w: non-numeric argument", ErrInvalidInput)
	}
	if windSpeed < 0 {
		return WindEffect{}, fmt.Errorf("%w: wind speed %.2f must be >= 0", ErrInvalidInput, windSpeed)
	}
	if windDirection < 0 || windDirection > 360 {
		return WindEffect{}, fmt.Errorf("%w: wind direction %.2f must be in [0,360]", ErrInvalidInput, windDirection)
	}

	rad := windDirection * math.Pi / 180
	headwind := windSpeed * math.Cos(rad)
	crosswind := windSpeed * math.Sin(rad)

	heightFactor := clamp(shotHeight/30, 0.5, 1.5)

	return WindEffect{
		Distance: round3(snapZero(-headwind * headwindCoeff * heightFactor)),
		Lateral:  round3(snapZero(-crosswind * crosswindCoeff * heightFactor)),
	}, nil
}

// CalculateEffectiveWindSpeed scales measured wind speed for altitude: thinner
// air lets the same wind move the ball further. Unlike the validating formulas
// this one degrades instead of erroring: a non-numeric speed reads as calm,
// a non-numeric altitude as sea level.
func CalculateEffectiveWindSpeed(windSpeed, altitude float64) float64 {
	if !finite(windSpeed) {
		windSpeed = 0
	}
	if !finite(altitude) {
		altitude = 0
	}
	alt := clamp(altitude, 0, 20000)
	altitudeFactor := 1 + alt/66667
	return round2(math.Abs(windSpeed) * altitudeFactor)
}
