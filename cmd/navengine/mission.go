package main

import (
	"math"

	"github.com/aeronav/wpnav/nav"
)

// sampleMission returns a short demonstration mission: takeoff, two
// waypoints (the second forcing heading), a timed loiter with a tangent
// exit, and a landing. It exists for navengine's run/shell/serve/serial
// front ends, not as a mission-file format -- this binary never parses
// real mission files (see the package doc).
func sampleMission() []nav.Item {
	return []nav.Item{
		{
			NavCmd:       nav.CmdTakeoff,
			X:            0,
			Y:            0,
			Z:            -20,
			Yaw:          float32(math.NaN()),
			Autocontinue: true,
		},
		{
			NavCmd:           nav.CmdWaypoint,
			X:                150,
			Y:                0,
			Z:                -20,
			Yaw:              float32(math.NaN()),
			AcceptanceRadius: 5,
			Autocontinue:     true,
		},
		{
			NavCmd:           nav.CmdWaypoint,
			X:                150,
			Y:                150,
			Z:                -20,
			Yaw:              float32(math.Pi / 2),
			ForceHeading:     true,
			AcceptanceRadius: 5,
			Autocontinue:     true,
		},
		{
			NavCmd:           nav.CmdLoiterTimeLimit,
			X:                150,
			Y:                350,
			Z:                -20,
			Yaw:              float32(math.NaN()),
			LoiterRadius:     50,
			LoiterExitXtrack: true,
			TimeInside:       3,
			AcceptanceRadius: 60,
			Autocontinue:     true,
		},
		{
			NavCmd:       nav.CmdLand,
			X:            0,
			Y:            0,
			Z:            10000,
			Autocontinue: true,
		},
	}
}
