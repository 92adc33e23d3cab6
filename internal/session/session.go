package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/windcaddy/backend/internal/clubs"
	"github.com/windcaddy/backend/internal/models"
	"github.com/windcaddy/backend/internal/physics"
	"github.com/windcaddy/backend/internal/viz"
)

// ShotSession is one golfer's interactive tuning state: the three slider
// params, the current weather, and an optional selected club. Every change
// triggers a full synchronous recompute; nothing persists between snapshots
// except these inputs.
type ShotSession struct {
	Token        string             `json:"token"`
	Params       viz.Params         `json:"params"`
	Conditions   physics.Conditions `json:"conditions"`
	ClubName     string             `json:"club_name"`
	CreatedAt    time.Time          `json:"created_at"`
	LastActivity time.Time          `json:"last_activity"`

	mu sync.Mutex
}

// Snapshot is the full recompute result pushed to clients after every change.
type Snapshot struct {
	Token         string                        `json:"token"`
	Params        viz.Params                    `json:"params"`
	Conditions    physics.Conditions            `json:"conditions"`
	ClubName      string                        `json:"club_name,omitempty"`
	EffectiveWind float64                       `json:"effective_wind"`
	WindEffect    physics.WindEffect            `json:"wind_effect"`
	DewPoint      float64                       `json:"dew_point"`
	AirDensity    float64                       `json:"air_density"`
	Compression   float64                       `json:"compression"`
	Adjustments   *physics.BallFlightAdjustment `json:"adjustments,omitempty"`
	Scene         viz.Scene                     `json:"scene"`
}

// defaultSession returns the initial slider and weather state for a new
// session: a 200-yard shot in a mild 10 mph headwind at sea level.
func defaultSession(token string) *ShotSession {
	now := time.Now()
	return &ShotSession{
		Token: token,
		Params: viz.Params{
			Distance:      200,
			WindSpeed:     10,
			WindDirection: 0,
		},
		Conditions: physics.Conditions{
			Temperature:   70,
			Humidity:      50,
			Pressure:      29.92,
			WindSpeed:     10,
			WindDirection: 0,
			Altitude:      0,
		},
		CreatedAt:    now,
		LastActivity: now,
	}
}

// SetParams validates and applies new visualization params.
func (s *ShotSession) SetParams(p viz.Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Params = p
	s.LastActivity = time.Now()
	return nil
}

// SetConditions applies new weather inputs and mirrors wind into the
// visualization params (clamped to the slider ranges).
func (s *ShotSession) SetConditions(c physics.Conditions) error {
	if c.Humidity < 0 || c.Humidity > 100 {
		return fmt.Errorf("%w: humidity %.1f must be in [0,100]", physics.ErrInvalidInput, c.Humidity)
	}
	if c.Temperature <= -459.67 {
		return fmt.Errorf("%w: temperature %.1f°F is at or below absolute zero", physics.ErrInvalidInput, c.Temperature)
	}
	if c.WindSpeed < 0 {
		return fmt.Errorf("%w: wind speed %.1f must be >= 0", physics.ErrInvalidInput, c.WindSpeed)
	}
	if c.WindDirection < 0 || c.WindDirection > 360 {
		return fmt.Errorf("%w: wind direction %.1f must be in [0,360]", physics.ErrInvalidInput, c.WindDirection)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Conditions = c
	s.Params.WindDirection = c.WindDirection
	s.Params.WindSpeed = c.WindSpeed
	if s.Params.WindSpeed > 30 {
		s.Params.WindSpeed = 30
	}
	s.LastActivity = time.Now()
	return nil
}

// SelectClub records the chosen club for flight adjustments.
func (s *ShotSession) SelectClub(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ClubName = name
	s.LastActivity = time.Now()
}

// Recompute runs the full formula chain and builds the drawable scene. The
// club argument may be nil when no club is selected; adjustments are then
// omitted from the snapshot.
func (s *ShotSession) Recompute(club *models.Club) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scene, err := viz.BuildScene(s.Params)
	if err != nil {
		return Snapshot{}, err
	}

	effectiveWind := physics.CalculateEffectiveWindSpeed(s.Params.WindSpeed, s.Conditions.Altitude)

	// Shot height follows the selected club's apex; default to a mid arc.
	shotHeight := 30.0
	if club != nil {
		shotHeight = club.ApexHeight
	}
	windEffect, err := physics.CalculateWindEffect(effectiveWind, s.Params.WindDirection, s.Params.Distance, shotHeight)
	if err != nil {
		return Snapshot{}, err
	}

	dewPoint, err := physics.CalculateDewPoint(s.Conditions.Temperature, s.Conditions.Humidity)
	if err != nil {
		return Snapshot{}, err
	}
	airDensity, err := physics.CalculateAirDensity(s.Conditions.Temperature, s.Conditions.Pressure)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Token:         s.Token,
		Params:        s.Params,
		Conditions:    s.Conditions,
		ClubName:      s.ClubName,
		EffectiveWind: effectiveWind,
		WindEffect:    windEffect,
		DewPoint:      dewPoint,
		AirDensity:    airDensity,
		Compression:   physics.CalculateBallCompression(s.Conditions.Temperature),
		Scene:         scene,
	}

	if club != nil {
		adj, err := physics.CalculateBallFlightAdjustments(s.Conditions, clubs.NominalBall(*club), clubs.ToClubData(*club))
		if err != nil {
			return Snapshot{}, err
		}
		snap.Adjustments = &adj
	}

	return snap, nil
}
