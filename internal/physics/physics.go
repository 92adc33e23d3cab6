package physics

import (
	"errors"
	"math"
)

// ErrInvalidInput is returned when a formula receives a non-finite or
// out-of-range argument. The computation is aborted; there is no partial result.
var ErrInvalidInput = errors.New("invalid input")

// Conditions holds the weather inputs for a shot.
type Conditions struct {
	Temperature   float64 `json:"temperature"`    // °F
	Humidity      float64 `json:"humidity"`       // % [0,100]
	Pressure      float64 `json:"pressure"`       // inHg
	WindSpeed     float64 `json:"wind_speed"`     // mph
	WindDirection float64 `json:"wind_direction"` // degrees [0,360], 0 = dead headwind
	Altitude      float64 `json:"altitude"`       // ft above sea level
}

// round3 rounds to 3 decimal places, matching the precision the client renders.
func round3(n float64) float64 {
	return math.Round(n*1000) / 1000
}

func round2(n float64) float64 {
	return math.Round(n*100) / 100
}

// snapZero flushes sub-epsilon magnitudes to exactly 0 so callers can compare
// against zero without a tolerance.
func snapZero(n float64) float64 {
	if math.Abs(n) < 1e-10 {
		return 0
	}
	return n
}

func clamp(n, lo, hi float64) float64 {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// finite reports whether every argument is a usable number (not NaN or ±Inf).
func finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
