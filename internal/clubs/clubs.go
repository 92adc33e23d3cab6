package clubs

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/windcaddy/backend/internal/models"
	"github.com/windcaddy/backend/internal/physics"
)

// Repo reads the club launch-profile table. Consumers treat the data as
// read-only; only the admin routes write to it.
type Repo struct {
	db *sqlx.DB
}

func NewRepo(db *sqlx.DB) *Repo {
	return &Repo{db: db}
}

// List returns all clubs ordered by carry distance, longest first.
func (r *Repo) List() ([]models.Club, error) {
	var out []models.Club
	err := r.db.Select(&out, `SELECT id, name, ball_speed, spin_rate, launch_angle, apex_height, landing_angle, carry_distance, created_at, updated_at FROM clubs ORDER BY carry_distance DESC`)
	return out, err
}

// GetByName looks up a single club by its canonical name.
func (r *Repo) GetByName(name string) (*models.Club, error) {
	var club models.Club
	err := r.db.Get(&club, `SELECT id, name, ball_speed, spin_rate, launch_angle, apex_height, landing_angle, carry_distance, created_at, updated_at FROM clubs WHERE name=$1`, name)
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// Upsert inserts or updates a club profile. Admin-only path.
func (r *Repo) Upsert(club models.Club) error {
	if club.Name == "" {
		return fmt.Errorf("club name is required")
	}
	if club.CarryDistance <= 0 {
		return fmt.Errorf("club %q carry distance must be positive", club.Name)
	}

	_, err := r.db.Exec(`
		INSERT INTO clubs (name, ball_speed, spin_rate, launch_angle, apex_height, landing_angle, carry_distance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (name) DO UPDATE SET
			ball_speed = EXCLUDED.ball_speed,
			spin_rate = EXCLUDED.spin_rate,
			launch_angle = EXCLUDED.launch_angle,
			apex_height = EXCLUDED.apex_height,
			landing_angle = EXCLUDED.landing_angle,
			carry_distance = EXCLUDED.carry_distance,
			updated_at = NOW()
	`, club.Name, club.BallSpeed, club.SpinRate, club.LaunchAngle, club.ApexHeight, club.LandingAngle, club.CarryDistance)

	return err
}

// ToClubData converts a stored club row into the physics input record.
func ToClubData(club models.Club) physics.ClubData {
	return physics.ClubData{
		Name:          club.Name,
		BallSpeed:     club.BallSpeed,
		SpinRate:      club.SpinRate,
		LaunchAngle:   club.LaunchAngle,
		ApexHeight:    club.ApexHeight,
		LandingAngle:  club.LandingAngle,
		CarryDistance: club.CarryDistance,
	}
}

// NominalBall derives the spin-decay inputs for a club's stock shot: spin off
// the face is the club's spin rate, and hang time is estimated from carry and
// ball speed (yd/s ≈ mph·0.49; average forward speed ~60% of launch speed).
func NominalBall(club models.Club) physics.BallData {
	avgSpeedYdPerSec := club.BallSpeed * 0.49 * 0.6
	flightTime := 0.0
	if avgSpeedYdPerSec > 0 {
		flightTime = club.CarryDistance / avgSpeedYdPerSec
	}
	return physics.BallData{
		InitialSpin: club.SpinRate,
		FlightTime:  flightTime,
	}
}

// StandardSet is the seeded 14-club bag with PGA-average launch numbers.
// Apex heights are in yards.
func StandardSet() []models.Club {
	return []models.Club{
		{Name: "driver", BallSpeed: 167, SpinRate: 2686, LaunchAngle: 10.9, ApexHeight: 32, LandingAngle: 38, CarryDistance: 275},
		{Name: "3-wood", BallSpeed: 158, SpinRate: 3655, LaunchAngle: 9.2, ApexHeight: 30, LandingAngle: 43, CarryDistance: 243},
		{Name: "5-wood", BallSpeed: 152, SpinRate: 4350, LaunchAngle: 9.4, ApexHeight: 31, LandingAngle: 47, CarryDistance: 230},
		{Name: "hybrid", BallSpeed: 146, SpinRate: 4437, LaunchAngle: 10.2, ApexHeight: 29, LandingAngle: 47, CarryDistance: 225},
		{Name: "3-iron", BallSpeed: 142, SpinRate: 4630, LaunchAngle: 10.4, ApexHeight: 27, LandingAngle: 46, CarryDistance: 212},
		{Name: "4-iron", BallSpeed: 137, SpinRate: 4836, LaunchAngle: 11.0, ApexHeight: 28, LandingAngle: 48, CarryDistance: 203},
		{Name: "5-iron", BallSpeed: 132, SpinRate: 5361, LaunchAngle: 12.1, ApexHeight: 31, LandingAngle: 49, CarryDistance: 194},
		{Name: "6-iron", BallSpeed: 127, SpinRate: 6231, LaunchAngle: 14.1, ApexHeight: 30, LandingAngle: 50, CarryDistance: 183},
		{Name: "7-iron", BallSpeed: 120, SpinRate: 7097, LaunchAngle: 16.3, ApexHeight: 32, LandingAngle: 50, CarryDistance: 172},
		{Name: "8-iron", BallSpeed: 115, SpinRate: 7998, LaunchAngle: 18.1, ApexHeight: 31, LandingAngle: 50, CarryDistance: 160},
		{Name: "9-iron", BallSpeed: 109, SpinRate: 8647, LaunchAngle: 20.4, ApexHeight: 30, LandingAngle: 51, CarryDistance: 148},
		{Name: "pitching wedge", BallSpeed: 102, SpinRate: 9304, LaunchAngle: 24.2, ApexHeight: 29, LandingAngle: 52, CarryDistance: 136},
		{Name: "gap wedge", BallSpeed: 95, SpinRate: 9700, LaunchAngle: 26.0, ApexHeight: 28, LandingAngle: 53, CarryDistance: 120},
		{Name: "sand wedge", BallSpeed: 87, SpinRate: 10200, LaunchAngle: 28.5, ApexHeight: 27, LandingAngle: 54, CarryDistance: 105},
	}
}
