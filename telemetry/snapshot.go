// Package telemetry assembles the read-only tick snapshot the engine
// consumes: local position, global velocity, land-detector state, vehicle
// status, and home position, each normally backed by an independent uORB
// subscription on the real vehicle.
package telemetry

import (
	"context"

	"github.com/aeronav/wpnav/nav"
)

// Snapshot is one tick's worth of telemetry, captured consistently at tick
// entry per the engine's "one snapshot per tick" ordering rule.
type Snapshot struct {
	Local  nav.LocalPosition
	GVel   nav.GlobalVelocity
	Land   nav.LandDetected
	Status nav.VehicleStatus
	Home   nav.HomePosition
	Now    nav.Time
}

// Provider assembles a Snapshot for the current tick.
type Provider interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}
