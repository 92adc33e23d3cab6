package models

import (
	"database/sql"
	"time"
)

// Club is one row of the club launch-profile table. Values are nominal
// standard-conditions numbers; the adjustment logic only ever reads them.
type Club struct {
	ID            int       `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	BallSpeed     float64   `db:"ball_speed" json:"ball_speed"`
	SpinRate      float64   `db:"spin_rate" json:"spin_rate"`
	LaunchAngle   float64   `db:"launch_angle" json:"launch_angle"`
	ApexHeight    float64   `db:"apex_height" json:"apex_height"`
	LandingAngle  float64   `db:"landing_angle" json:"landing_angle"`
	CarryDistance float64   `db:"carry_distance" json:"carry_distance"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// AdminAccount is a backoffice user allowed to edit club data.
type AdminAccount struct {
	Username     string    `db:"username" json:"username"`
	DisplayName  string    `db:"display_name" json:"display_name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// AdminAudit records one admin action against the club table.
type AdminAudit struct {
	ID            int            `db:"id" json:"id"`
	AdminUsername string         `db:"admin_username" json:"admin_username"`
	IP            string         `db:"ip" json:"ip"`
	Route         string         `db:"route" json:"route"`
	Action        string         `db:"action" json:"action"`
	Details       sql.NullString `db:"details" json:"details,omitempty"`
	Success       bool           `db:"success" json:"success"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
}
