package viz

import (
	"errors"
	"math"
	"testing"

	"github.com/windcaddy/backend/internal/physics"
)

func TestLateralOffsetZeroWind(t *testing.T) {
	for _, dir := range []float64{0, 90, 135, 270, 360} {
		if got := LateralOffset(200, 0, dir); got != 0 {
			t.Errorf("zero wind at direction %.0f: offset = %v, want 0", dir, got)
		}
	}
	for _, dist := range []float64{100, 200, 300} {
		if got := LateralOffset(dist, 0, 45); got != 0 {
			t.Errorf("zero wind at distance %.0f: offset = %v, want 0", dist, got)
		}
	}
}

func TestLateralOffsetGrowsWithDistance(t *testing.T) {
	short := math.Abs(LateralOffset(100, 15, 0))
	long := math.Abs(LateralOffset(300, 15, 0))
	if long <= short {
		t.Errorf("offset should grow with distance: 100yd=%v 300yd=%v", short, long)
	}
}

func TestLateralOffsetSign(t *testing.T) {
	// cos(0°) = 1: positive wind effect pushes right.
	if got := LateralOffset(200, 10, 0); got <= 0 {
		t.Errorf("direction 0 should push right, got %v", got)
	}
	// cos(180°) = -1: opposite wind pushes left.
	if got := LateralOffset(200, 10, 180); got >= 0 {
		t.Errorf("direction 180 should push left, got %v", got)
	}
}

func TestParamsValidation(t *testing.T) {
	valid := Params{Distance: 200, WindSpeed: 10, WindDirection: 90}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}

	cases := []struct {
		name string
		p    Params
	}{
		{"distance too short", Params{Distance: 50, WindSpeed: 10, WindDirection: 90}},
		{"distance too long", Params{Distance: 400, WindSpeed: 10, WindDirection: 90}},
		{"wind too strong", Params{Distance: 200, WindSpeed: 35, WindDirection: 90}},
		{"negative wind", Params{Distance: 200, WindSpeed: -5, WindDirection: 90}},
		{"direction out of range", Params{Distance: 200, WindSpeed: 10, WindDirection: 400}},
		{"NaN distance", Params{Distance: math.NaN(), WindSpeed: 10, WindDirection: 90}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.p.Validate(); !errors.Is(err, physics.ErrInvalidInput) {
				t.Errorf("want ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestBuildSceneShape(t *testing.T) {
	scene, err := BuildScene(Params{Distance: 200, WindSpeed: 10, WindDirection: 90})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if scene.Width != CanvasWidth || scene.Height != CanvasHeight {
		t.Errorf("scene surface = %vx%v, want %vx%v", scene.Width, scene.Height, CanvasWidth, CanvasHeight)
	}
	if len(scene.Path) != 100 {
		t.Fatalf("path has %d points, want 100", len(scene.Path))
	}
	if scene.Landing != scene.Path[99] {
		t.Errorf("landing marker %+v should be the final sample %+v", scene.Landing, scene.Path[99])
	}

	// First sample sits at the origin (t=0, no height, no lateral movement).
	first := scene.Path[0]
	if first.X != CanvasWidth/2 || first.Y != CanvasHeight-plotPad {
		t.Errorf("path start = %+v, want origin (%.0f, %.0f)", first, CanvasWidth/2, CanvasHeight-plotPad)
	}
}

func TestBuildSceneGridSpacing(t *testing.T) {
	scene, err := BuildScene(Params{Distance: 200, WindSpeed: 0, WindDirection: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var horizontal, vertical int
	for _, g := range scene.Grid {
		switch {
		case g.Y1 == g.Y2:
			horizontal++
		case g.X1 == g.X2:
			vertical++
		}
	}
	// 200yd at 20yd spacing: lines at 0,20,...,200.
	if horizontal != 11 {
		t.Errorf("horizontal gridlines = %d, want 11", horizontal)
	}
	// ±50yd lateral at 5yd spacing: 21 lines.
	if vertical != 21 {
		t.Errorf("vertical gridlines = %d, want 21", vertical)
	}
}

func TestBuildSceneStraightWithoutWind(t *testing.T) {
	scene, err := BuildScene(Params{Distance: 250, WindSpeed: 0, WindDirection: 45})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, pt := range scene.Path {
		if pt.X != CanvasWidth/2 {
			t.Fatalf("point %d drifted to x=%v with no wind", i, pt.X)
		}
	}
}

func TestBuildSceneCrosswindCurvesPath(t *testing.T) {
	scene, err := BuildScene(Params{Distance: 200, WindSpeed: 20, WindDirection: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Drift accumulates toward the landing point: late samples sit further
	// right than early ones.
	mid := scene.Path[50].X - CanvasWidth/2
	end := scene.Landing.X - CanvasWidth/2
	if end <= mid || end <= 0 {
		t.Errorf("drift should accumulate rightward: mid=%v end=%v", mid, end)
	}

	// Wind indicator mirrors the inputs.
	if scene.Wind.ArrowAngle != 0 || scene.Wind.SpeedLabel != "20 mph" {
		t.Errorf("wind indicator = %+v, want angle 0 / label \"20 mph\"", scene.Wind)
	}
}

func TestBuildSceneRejectsInvalidParams(t *testing.T) {
	if _, err := BuildScene(Params{Distance: 10, WindSpeed: 0, WindDirection: 0}); !errors.Is(err, physics.ErrInvalidInput) {
		t.Errorf("want ErrInvalidInput, got %v", err)
	}
}
