package physics

import (
	"errors"
	"math"
	"testing"
)

func TestAirDensityStandardConditions(t *testing.T) {
	// 59°F / 29.92 inHg is the standard atmosphere; density should land on
	// ~1.225 kg/m³ within the 3-decimal rounding.
	density, err := CalculateAirDensity(59, 29.92)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(density-1.225) > 0.005 {
		t.Errorf("standard density = %v, want ~1.225", density)
	}
}

func TestAirDensityDropsWithHeat(t *testing.T) {
	cold, _ := CalculateAirDensity(30, 29.92)
	hot, _ := CalculateAirDensity(100, 29.92)
	if hot >= cold {
		t.Errorf("hot air should be less dense: hot=%v cold=%v", hot, cold)
	}
}

func TestAirDensityInvalidInputs(t *testing.T) {
	if _, err := CalculateAirDensity(math.NaN(), 29.92); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NaN temperature: want ErrInvalidInput, got %v", err)
	}
	if _, err := CalculateAirDensity(59, math.Inf(1)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Inf pressure: want ErrInvalidInput, got %v", err)
	}
}

func TestAirDensityRejectsAbsoluteZero(t *testing.T) {
	// −459.67°F is 0 K; at or below it the formula would divide by zero or
	// flip sign, so it must error instead of returning ±Inf.
	if _, err := CalculateAirDensity(-459.67, 29.92); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("absolute zero: want ErrInvalidInput, got %v", err)
	}
	if _, err := CalculateAirDensity(-500, 29.92); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("below absolute zero: want ErrInvalidInput, got %v", err)
	}
}

func TestDewPointBelowAirTemperature(t *testing.T) {
	dew, err := CalculateDewPoint(70, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dew >= 70 {
		t.Errorf("dew point %v should be strictly below air temperature at 50%% humidity", dew)
	}
}

func TestDewPointRisesWithHumidity(t *testing.T) {
	dry, _ := CalculateDewPoint(70, 30)
	humid, _ := CalculateDewPoint(70, 90)
	if humid <= dry {
		t.Errorf("dew point should rise with humidity: 30%%=%v 90%%=%v", dry, humid)
	}
}

func TestDewPointHumidityBoundaries(t *testing.T) {
	// 0% is inside the valid range and must yield a finite value, not
	// the NaN that a raw ln(0) would produce.
	dry, err := CalculateDewPoint(70, 0)
	if err != nil {
		t.Fatalf("humidity 0: unexpected error: %v", err)
	}
	if math.IsNaN(dry) || math.IsInf(dry, 0) {
		t.Fatalf("humidity 0: dew point %v is not finite", dry)
	}

	floored, err := CalculateDewPoint(70, 0.1)
	if err != nil {
		t.Fatalf("humidity 0.1: unexpected error: %v", err)
	}
	if dry != floored {
		t.Errorf("humidity 0 should floor to 0.1%%: got %v, want %v", dry, floored)
	}

	// Saturated air: dew point equals the air temperature.
	saturated, err := CalculateDewPoint(70, 100)
	if err != nil {
		t.Fatalf("humidity 100: unexpected error: %v", err)
	}
	if math.Abs(saturated-70) > 0.5 {
		t.Errorf("dew point at 100%% humidity = %v, want ~70", saturated)
	}
}

func TestDewPointSingularTemperature(t *testing.T) {
	// −237.7°F zeroes the Magnus denominator; the result would be NaN.
	if _, err := CalculateDewPoint(-magnusB, 50); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("singular temperature: want ErrInvalidInput, got %v", err)
	}
}

func TestDewPointHumidityRange(t *testing.T) {
	if _, err := CalculateDewPoint(70, -1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("humidity -1: want ErrInvalidInput, got %v", err)
	}
	if _, err := CalculateDewPoint(70, 101); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("humidity 101: want ErrInvalidInput, got %v", err)
	}
	if _, err := CalculateDewPoint(math.NaN(), 50); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NaN temperature: want ErrInvalidInput, got %v", err)
	}
}
