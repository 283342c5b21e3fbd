package session

import (
	"context"

	"github.com/aeronav/wpnav/nav"
	"github.com/aeronav/wpnav/navmath"
)

// Dynamics is a point-mass kinematic stand-in for a flight controller: it
// steers straight at a target position at constant speed and turns yaw to
// match the ground track. It exists so navengine's demonstration front
// ends have something that actually moves between ticks, not a real
// autopilot model.
type Dynamics struct {
	Pos    nav.LocalPosition
	Target [3]float32
	Speed  float32 // m/s
	DT     float32 // seconds per tick

	Landed bool
}

// NewDynamics starts a vehicle at pos with the given cruise speed and tick
// period.
func NewDynamics(pos nav.LocalPosition, speed, dt float32) *Dynamics {
	return &Dynamics{Pos: pos, Speed: speed, DT: dt}
}

// SetTarget points the vehicle at a new local-frame position.
func (d *Dynamics) SetTarget(x, y, z float32) {
	d.Target = [3]float32{x, y, z}
}

// Step advances the vehicle one tick toward Target at Speed.
func (d *Dynamics) Step() {
	dx := d.Target[0] - d.Pos.X
	dy := d.Target[1] - d.Pos.Y
	dz := d.Target[2] - d.Pos.Z
	dist := navmath.Sqrt(dx*dx + dy*dy + dz*dz)

	if dist < navmath.Epsilon {
		d.Pos.VX, d.Pos.VY, d.Pos.VZ = 0, 0, 0
		return
	}

	step := navmath.Min(d.Speed*d.DT, dist)
	ux, uy, uz := dx/dist, dy/dist, dz/dist

	d.Pos.X += ux * step
	d.Pos.Y += uy * step
	d.Pos.Z += uz * step

	d.Pos.VX = ux * d.Speed
	d.Pos.VY = uy * d.Speed
	d.Pos.VZ = uz * d.Speed

	if navmath.Abs(dx) > navmath.Epsilon || navmath.Abs(dy) > navmath.Epsilon {
		d.Pos.Yaw = navmath.Bearing(navmath.Vec2{}, navmath.Vec2{X: dx, Y: dy})
	}
}

// LocalPositionCtx satisfies telemetry.SubReader.Local.
func (d *Dynamics) LocalPositionCtx(ctx context.Context) (nav.LocalPosition, error) {
	return d.Pos, nil
}

// GlobalVelocityCtx satisfies telemetry.SubReader.GVel, deriving
// north/east ground velocity from the local NED velocity.
func (d *Dynamics) GlobalVelocityCtx(ctx context.Context) (nav.GlobalVelocity, error) {
	return nav.GlobalVelocity{VelN: d.Pos.VX, VelE: d.Pos.VY}, nil
}

// LandDetectedCtx satisfies telemetry.SubReader.Land.
func (d *Dynamics) LandDetectedCtx(ctx context.Context) (nav.LandDetected, error) {
	return nav.LandDetected{Landed: d.Landed}, nil
}
