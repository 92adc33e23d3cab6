package viz

import (
	"fmt"
	"math"

	"github.com/windcaddy/backend/internal/physics"
)

// Params are the three client-adjustable inputs driving the drawn path.
type Params struct {
	Distance      float64 `json:"distance"`       // yards [100,300]
	WindSpeed     float64 `json:"wind_speed"`     // mph [0,30]
	WindDirection float64 `json:"wind_direction"` // degrees [0,360]
}

// Layout constants for the 800×400 surface.
const (
	pathSamples = 100
	plotPad     = 20.0
	pxPerYardX  = 8.0 // fixed lateral scale; vertical scale fits the current distance

	// initialVelocity in the lateral parametrization. Presentation constant,
	// not a physical speed.
	pathInitialVelocity = 0.3
)

// Validate checks the UI ranges. Out-of-range params never reach the scene
// builder.
func (p Params) Validate() error {
	if !p.isNumeric() {
		return fmt.Errorf("%w: params must be numeric", physics.ErrInvalidInput)
	}
	if p.Distance < 100 || p.Distance > 300 {
		return fmt.Errorf("%w: distance %.1f must be in [100,300]", physics.ErrInvalidInput, p.Distance)
	}
	if p.WindSpeed < 0 || p.WindSpeed > 30 {
		return fmt.Errorf("%w: wind speed %.1f must be in [0,30]", physics.ErrInvalidInput, p.WindSpeed)
	}
	if p.WindDirection < 0 || p.WindDirection > 360 {
		return fmt.Errorf("%w: wind direction %.1f must be in [0,360]", physics.ErrInvalidInput, p.WindDirection)
	}
	return nil
}

func (p Params) isNumeric() bool {
	for _, v := range []float64{p.Distance, p.WindSpeed, p.WindDirection} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// LateralOffset is the total sideways displacement in yards for a shot of the
// given distance under the given wind. Positive = right of the target line.
func LateralOffset(distance, windSpeed, windDirection float64) float64 {
	rad := windDirection * math.Pi / 180
	windEffect := math.Cos(rad) * windSpeed * math.Pow(distance/200, 1.5)
	return windEffect * 0.4
}

// BuildScene produces the full drawable frame for the given params: grid,
// wind indicator, sampled flight path, and landing marker.
//
// The path parametrization is a presentation heuristic with fixed exponents
// and coefficients; it is not derived from projectile motion and must not be
// "corrected" toward one.
func BuildScene(p Params) (Scene, error) {
	if err := p.Validate(); err != nil {
		return Scene{}, err
	}

	originX := CanvasWidth / 2
	originY := CanvasHeight - plotPad
	pxPerYardY := (CanvasHeight - 2*plotPad) / p.Distance

	scene := Scene{
		Width:  CanvasWidth,
		Height: CanvasHeight,
		Wind:   buildWindIndicator(p),
	}
	scene.Grid, scene.Labels = buildGrid(p.Distance, originX, originY, pxPerYardY)

	offset := LateralOffset(p.Distance, p.WindSpeed, p.WindDirection)
	maxHeight := 0.15 * p.Distance
	windScale := math.Pow(p.Distance/200, 1.2)

	scene.Path = make([]Point, pathSamples)
	for i := 0; i < pathSamples; i++ {
		t := float64(i) / (pathSamples - 1)

		height := 4 * t * (1 - t) * maxHeight
		velocityDecay := math.Pow(1-t, 0.7)
		lateralFactor := math.Pow(1-pathInitialVelocity*velocityDecay, 2)
		distanceFactor := t * t * t
		lateralT := lateralFactor * distanceFactor * windScale

		scene.Path[i] = Point{
			X: originX + offset*lateralT*pxPerYardX,
			Y: originY - p.Distance*t*pxPerYardY + height*pxPerYardY,
		}
	}
	scene.Landing = scene.Path[pathSamples-1]

	return scene, nil
}

// buildGrid emits horizontal gridlines every 20 distance-yards and vertical
// gridlines every 5 lateral-yards, with axis labels along each edge.
func buildGrid(distance, originX, originY, pxPerYardY float64) ([]GridLine, []Label) {
	var grid []GridLine
	var labels []Label

	for yd := 0.0; yd <= distance; yd += 20 {
		y := originY - yd*pxPerYardY
		grid = append(grid, GridLine{X1: 0, Y1: y, X2: CanvasWidth, Y2: y})
		labels = append(labels, Label{Text: fmt.Sprintf("%.0f", yd), X: 4, Y: y})
	}

	maxLateral := (CanvasWidth / 2) / pxPerYardX
	for yd := -maxLateral; yd <= maxLateral; yd += 5 {
		x := originX + yd*pxPerYardX
		grid = append(grid, GridLine{X1: x, Y1: 0, X2: x, Y2: CanvasHeight})
		if yd != 0 && math.Mod(yd, 20) == 0 {
			labels = append(labels, Label{Text: fmt.Sprintf("%+.0f", yd), X: x, Y: CanvasHeight - 4})
		}
	}

	return grid, labels
}

// buildWindIndicator places the compass in the top-right corner.
func buildWindIndicator(p Params) WindIndicator {
	return WindIndicator{
		X:          CanvasWidth - 60,
		Y:          60,
		Radius:     40,
		ArrowAngle: p.WindDirection,
		SpeedLabel: fmt.Sprintf("%.0f mph", p.WindSpeed),
	}
}
