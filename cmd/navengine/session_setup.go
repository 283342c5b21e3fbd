package main

import (
	"context"
	"time"

	"github.com/aeronav/wpnav/geo"
	"github.com/aeronav/wpnav/internal/session"
	"github.com/aeronav/wpnav/nav"
	"github.com/aeronav/wpnav/navlog"
	"github.com/aeronav/wpnav/telemetry"
)

func durationFromSeconds(s float32) time.Duration {
	return time.Duration(s * float32(time.Second))
}

// tickPeriodSeconds is the simulated time step between navengine ticks.
const tickPeriodSeconds = 0.2

// newSession wires a Dynamics point-mass model, a telemetry.MockProvider
// reading from it, and a session.Host into a ready-to-run session.Engine
// over items.
func newSession(items []nav.Item) (*session.Engine, *session.Dynamics, *session.Host) {
	dyn := session.NewDynamics(nav.LocalPosition{}, 15, tickPeriodSeconds)

	now := nav.Time(0)
	provider := &telemetry.MockProvider{
		Reader: telemetry.SubReader{
			Local: dyn.LocalPositionCtx,
			GVel:  dyn.GlobalVelocityCtx,
			Land:  dyn.LandDetectedCtx,
			Status: func(ctx context.Context) (nav.VehicleStatus, error) {
				return nav.VehicleStatus{IsRotaryWing: true, Armed: true}, nil
			},
			Home: func(ctx context.Context) (nav.HomePosition, error) {
				return nav.HomePosition{}, nil
			},
		},
		Clock: func() nav.Time {
			now += nav.Micros(durationFromSeconds(tickPeriodSeconds))
			return now
		},
	}

	host := &session.Host{
		LoiterRadiusM:     80,
		AcceptanceRadiusM: 10,
		AltAcceptanceM:    10,
		CruiseSpeedMS:     15,
		CruiseThrottle:    0.6,
		CanLoiterAtSP:     true,
		MissionParams:     nav.Params{YawErr: 5, YawTimeout: 8},
		Ref:               geo.NewRef(37.6213, -122.3790),
		Projector:         geo.NewProjector(),
	}

	eng := session.NewEngine(provider, host, items)
	return eng, dyn, host
}

// syncDynamicsTarget points dyn at the engine's current setpoint so the
// vehicle actually moves toward whatever the translator/evaluator just
// decided, including mid-item retargeting like a loiter's tangent exit.
func syncDynamicsTarget(dyn *session.Dynamics, tr session.Transition) {
	sp := tr.Triplet.Current
	if sp.Valid {
		dyn.SetTarget(sp.X, sp.Y, sp.Z)
	}
}

var globalLogger *navlog.Logger
