// Package session adapts a telemetry snapshot plus a set of mission
// parameters into the nav.Host capability interface, and drives a list of
// navigator items through the engine tick by tick. It is the glue the
// navengine binaries use to exercise the nav package without a real flight
// controller behind it.
package session

import (
	"github.com/aeronav/wpnav/geo"
	"github.com/aeronav/wpnav/nav"
	"github.com/aeronav/wpnav/navmath"
	"github.com/aeronav/wpnav/telemetry"
)

// Host adapts one telemetry.Snapshot, a fixed set of navigator parameters,
// and a geodetic reference point into a nav.Host. It is rebuilt (or its
// Snapshot swapped) once per tick by Engine; nothing in the nav package
// retains a reference to it across ticks.
type Host struct {
	Snapshot      telemetry.Snapshot
	MissionParams nav.Params

	LoiterRadiusM     float32
	AcceptanceRadiusM float32
	AltAcceptanceM    float32
	CruiseSpeedMS     float32
	CruiseThrottle    float32
	CanLoiterAtSP     bool

	Ref       geo.Ref
	Projector *geo.Projector

	tripletUpdated bool
	published      []nav.VehicleCommand
	actuators      []ActuatorCall
	missionFailure string
}

// ActuatorCall records one PublishActuatorControl invocation, for
// inspection by the shell and HTTP status endpoint.
type ActuatorCall struct {
	Group, Channel int
	Value          float32
}

func (h *Host) LocalPosition() nav.LocalPosition   { return h.Snapshot.Local }
func (h *Host) GlobalVelocity() nav.GlobalVelocity { return h.Snapshot.GVel }
func (h *Host) LandDetected() nav.LandDetected     { return h.Snapshot.Land }
func (h *Host) VehicleStatus() nav.VehicleStatus   { return h.Snapshot.Status }
func (h *Host) HomePosition() nav.HomePosition     { return h.Snapshot.Home }

func (h *Host) LoiterRadius() float32 { return h.LoiterRadiusM }

func (h *Host) AcceptanceRadius(override float32) float32 {
	if navmath.Abs(override) > navmath.Epsilon {
		return navmath.Abs(override)
	}
	return h.AcceptanceRadiusM
}

func (h *Host) AltitudeAcceptanceRadius() float32 { return h.AltAcceptanceM }
func (h *Host) CruisingSpeed() float32            { return h.CruiseSpeedMS }
func (h *Host) CruisingThrottle() float32         { return h.CruiseThrottle }
func (h *Host) CanLoiterAtSetpoint() bool         { return h.CanLoiterAtSP }

func (h *Host) ProjectLocal(p nav.LatLon) (x, y float32) {
	return h.Projector.Project(h.Ref, p.Lat, p.Lon)
}

func (h *Host) HeadingToTarget(point [2]float32, from *[2]float32) float32 {
	var f navmath.Vec2
	if from != nil {
		f = navmath.Vec2{X: from[0], Y: from[1]}
	} else {
		pos := h.Snapshot.Local
		f = navmath.Vec2{X: pos.X, Y: pos.Y}
	}
	return navmath.Bearing(f, navmath.Vec2{X: point[0], Y: point[1]})
}

func (h *Host) Params() nav.Params { return h.MissionParams }

func (h *Host) SetTripletUpdated() { h.tripletUpdated = true }

func (h *Host) PublishVehicleCmd(cmd nav.VehicleCommand) {
	h.published = append(h.published, cmd)
}

func (h *Host) PublishActuatorControl(group int, channel int, value float32) {
	h.actuators = append(h.actuators, ActuatorCall{Group: group, Channel: channel, Value: value})
}

func (h *Host) SetMissionFailure(reason string) { h.missionFailure = reason }

func (h *Host) Now() nav.Time { return h.Snapshot.Now }

// drainTick resets the per-tick publish/failure bookkeeping and returns
// what accumulated since the last drain.
func (h *Host) drainTick() (tripletUpdated bool, published []nav.VehicleCommand, actuators []ActuatorCall, missionFailure string) {
	tripletUpdated, published, actuators, missionFailure = h.tripletUpdated, h.published, h.actuators, h.missionFailure
	h.tripletUpdated, h.published, h.actuators, h.missionFailure = false, nil, nil, ""
	return
}
