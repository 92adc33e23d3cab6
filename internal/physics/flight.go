package physics

import (
	"fmt"
	"math"
)

// ClubData describes a club's nominal launch profile under standard conditions.
type ClubData struct {
	Name          string  `json:"name"`
	BallSpeed     float64 `json:"ball_speed"`     // mph
	SpinRate      float64 `json:"spin_rate"`      // rpm
	LaunchAngle   float64 `json:"launch_angle"`   // degrees
	ApexHeight    float64 `json:"apex_height"`    // yards
	LandingAngle  float64 `json:"landing_angle"`  // degrees
	CarryDistance float64 `json:"carry_distance"` // yards
}

// BallData describes the struck ball for spin-decay purposes.
type BallData struct {
	InitialSpin float64 `json:"initial_spin"` // rpm off the face
	FlightTime  float64 `json:"flight_time"`  // seconds
}

// DewPointEffect is the moisture correction applied to spin and carry.
type DewPointEffect struct {
	SpinFactor  float64 `json:"spin_factor"`
	CarryFactor float64 `json:"carry_factor"`
}

// TrajectoryProfile is the normalized arc descriptor for a club in the
// current air, feeding the spin decay rate.
type TrajectoryProfile struct {
	TrajectoryShape float64 `json:"trajectory_shape"` // (0,1]: 1 = steep wedge-like arc
	SpinDecayRate   float64 `json:"spin_decay_rate"`  // 1/s
}

// BallFlightAdjustment bundles the multiplicative corrections for a shot.
// Factors apply to a nominal no-wind, standard-atmosphere outcome.
type BallFlightAdjustment struct {
	FinalSpin      float64           `json:"final_spin"` // rpm at landing
	SpinFactor     float64           `json:"spin_factor"`
	CarryFactor    float64           `json:"carry_factor"`
	TrajectoryData TrajectoryProfile `json:"trajectory_data"`
	TotalFactor    float64           `json:"total_factor"`
}

// CalculateDewPointEffect maps dew point (°F) to spin/carry corrections.
// Moist air near the ball adds a drag film: above a 50°F dew point spin holds
// slightly longer and carry shrinks; dry air does the opposite.
func CalculateDewPointEffect(dewPoint, temperature float64) (DewPointEffect, error) {
	if !finite(dewPoint, temperature) {
		return DewPointEffect{}, fmt.Errorf("%w: dew point and temperature must be numeric", ErrInvalidInput)
	}

	spread := dewPoint - 50
	return DewPointEffect{
		SpinFactor:  round3(clamp(1+spread/500, 0.95, 1.05)),
		CarryFactor: round3(clamp(1-spread/1000, 0.97, 1.03)),
	}, nil
}

// CalculateTrajectoryShape derives a club's arc descriptor and spin decay rate
// in the given air density (kg/m³). Denser air bleeds spin faster; higher-spin
// clubs decay faster in absolute terms.
func CalculateTrajectoryShape(club ClubData, airDensity float64) (TrajectoryProfile, error) {
	if !finite(airDensity) || airDensity <= 0 {
		return TrajectoryProfile{}, fmt.Errorf("%w: air density %.3f must be a positive number", ErrInvalidInput, airDensity)
	}
	if club.CarryDistance <= 0 {
		return TrajectoryProfile{}, fmt.Errorf("%w: club %q has no carry distance", ErrInvalidInput, club.Name)
	}

	// An apex at 15% of carry or more reads as a full wedge-like arc (shape 1).
	shape := clamp(club.ApexHeight/(0.15*club.CarryDistance), 0, 1)
	decay := 0.05 * (airDensity / 1.225) * (club.SpinRate / 3000)

	return TrajectoryProfile{
		TrajectoryShape: round3(shape),
		SpinDecayRate:   round3(decay),
	}, nil
}

// CalculateBallFlightAdjustments combines the moisture and trajectory
// corrections for a shot under the given conditions. Flatter arcs pick up a
// small carry bonus via the trajectory factor.
func CalculateBallFlightAdjustments(cond Conditions, ball BallData, club ClubData) (BallFlightAdjustment, error) {
	dewPoint, err := CalculateDewPoint(cond.Temperature, cond.Humidity)
	if err != nil {
		return BallFlightAdjustment{}, err
	}

	dewEffect, err := CalculateDewPointEffect(dewPoint, cond.Temperature)
	if err != nil {
		return BallFlightAdjustment{}, err
	}

	density, err := CalculateAirDensity(cond.Temperature, cond.Pressure)
	if err != nil {
		return BallFlightAdjustment{}, err
	}

	profile, err := CalculateTrajectoryShape(club, density)
	if err != nil {
		return BallFlightAdjustment{}, err
	}

	finalSpin := ball.InitialSpin * math.Exp(-profile.SpinDecayRate*ball.FlightTime)
	trajectoryFactor := 1 + (1-profile.TrajectoryShape)*0.05
	carry := dewEffect.CarryFactor * trajectoryFactor

	return BallFlightAdjustment{
		FinalSpin:      round2(finalSpin),
		SpinFactor:     dewEffect.SpinFactor,
		CarryFactor:    round3(carry),
		TrajectoryData: profile,
		TotalFactor:    round3(carry),
	}, nil
}

// CalculateBallCompression returns the temperature-dependent compression
// factor for a standard ball. Cold balls compress less and fly shorter; the
// effect grows non-linearly away from the 70°F baseline.
func CalculateBallCompression(temperature float64) float64 {
	const baseline = 0.95

	deviation := temperature - 70
	if deviation == 0 {
		return baseline
	}

	tempEffect := math.Pow(math.Abs(deviation)/50, 1.2) * 0.05
	if deviation < 0 {
		tempEffect = -tempEffect
	}

	return clamp(baseline+tempEffect, 0.85, 1.0)
}
