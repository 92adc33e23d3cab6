package physics

import (
	"errors"
	"math"
	"testing"
)

func TestWindEffectZeroWindIsZero(t *testing.T) {
	for _, dir := range []float64{0, 45, 90, 180, 270, 360} {
		effect, err := CalculateWindEffect(0, dir, 150, 30)
		if err != nil {
			t.Fatalf("unexpected error at direction %.0f: %v", dir, err)
		}
		if effect.Distance != 0 || effect.Lateral != 0 {
			t.Errorf("zero wind at direction %.0f: got distance=%v lateral=%v, want 0/0",
				dir, effect.Distance, effect.Lateral)
		}
	}
}

func TestWindEffectHeadwindShortensShot(t *testing.T) {
	// Direction 0 = dead headwind: full distance penalty, no lateral drift.
	effect, err := CalculateWindEffect(10, 0, 150, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if effect.Distance >= 0 {
		t.Errorf("headwind should reduce distance, got %v", effect.Distance)
	}
	if effect.Lateral != 0 {
		t.Errorf("dead headwind should not drift laterally, got %v", effect.Lateral)
	}
	// 10 mph * 0.009 * heightFactor 1.0
	if effect.Distance != -0.09 {
		t.Errorf("distance delta = %v, want -0.09", effect.Distance)
	}
}

func TestWindEffectCrosswindDrifts(t *testing.T) {
	// Direction 90 = pure crosswind from the right, pushing the ball left.
	effect, err := CalculateWindEffect(10, 90, 150, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if effect.Lateral != -0.08 {
		t.Errorf("lateral delta = %v, want -0.08", effect.Lateral)
	}
	if effect.Distance != 0 {
		t.Errorf("pure crosswind distance delta = %v, want 0 (snapped)", effect.Distance)
	}
}

func TestWindEffectHeightFactorSaturates(t *testing.T) {
	// heightFactor clamps to 0.5 below 15 yd and 1.5 above 45 yd, so the
	// magnitudes stop growing outside [15,45].
	low, _ := CalculateWindEffect(10, 45, 150, 5)
	atFloor, _ := CalculateWindEffect(10, 45, 150, 15)
	mid, _ := CalculateWindEffect(10, 45, 150, 30)
	atCeil, _ := CalculateWindEffect(10, 45, 150, 45)
	high, _ := CalculateWindEffect(10, 45, 150, 90)

	if low.Distance != atFloor.Distance || low.Lateral != atFloor.Lateral {
		t.Errorf("effect below 15yd should match 15yd: %+v vs %+v", low, atFloor)
	}
	if high.Distance != atCeil.Distance || high.Lateral != atCeil.Lateral {
		t.Errorf("effect above 45yd should match 45yd: %+v vs %+v", high, atCeil)
	}
	if math.Abs(mid.Distance) <= math.Abs(atFloor.Distance) {
		t.Errorf("30yd effect %v should exceed 15yd effect %v", mid.Distance, atFloor.Distance)
	}
	if math.Abs(mid.Distance) >= math.Abs(atCeil.Distance) {
		t.Errorf("30yd effect %v should be below 45yd effect %v", mid.Distance, atCeil.Distance)
	}
}

func TestWindEffectInvalidInputs(t *testing.T) {
	cases := []struct {
		name                      string
		speed, dir, distance, hgt float64
	}{
		{"negative speed", -1, 0, 100, 30},
		{"direction above 360", 10, 361, 100, 30},
		{"direction below 0", 10, -0.5, 100, 30},
		{"NaN speed", math.NaN(), 0, 100, 30},
		{"Inf height", 10, 0, 100, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := CalculateWindEffect(tc.speed, tc.dir, tc.distance, tc.hgt)
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("want ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestEffectiveWindSpeedAltitudeScaling(t *testing.T) {
	got := CalculateEffectiveWindSpeed(10, 20000)
	if got != 13.0 {
		t.Errorf("effective wind at 20000ft = %v, want 13.0", got)
	}

	// Sea level: no scaling.
	if got := CalculateEffectiveWindSpeed(10, 0); got != 10.0 {
		t.Errorf("effective wind at sea level = %v, want 10.0", got)
	}

	// Altitude above the ceiling clamps to 20000.
	if a, b := CalculateEffectiveWindSpeed(10, 50000), CalculateEffectiveWindSpeed(10, 20000); a != b {
		t.Errorf("altitude should clamp at 20000: got %v vs %v", a, b)
	}
}

func TestEffectiveWindSpeedDegradesGracefully(t *testing.T) {
	// Non-numeric speed reads as calm, non-numeric altitude as sea level.
	if got := CalculateEffectiveWindSpeed(math.NaN(), 5000); got != 0 {
		t.Errorf("NaN speed should yield 0, got %v", got)
	}
	if got := CalculateEffectiveWindSpeed(10, math.NaN()); got != 10.0 {
		t.Errorf("NaN altitude should default to sea level, got %v", got)
	}
	// Negative speed is treated as magnitude.
	if got := CalculateEffectiveWindSpeed(-10, 0); got != 10.0 {
		t.Errorf("negative speed should use magnitude, got %v", got)
	}
}
