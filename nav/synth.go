package nav

import (
	"math"

	"github.com/aeronav/wpnav/navmath"
)

// SetLoiterItem is the set_loiter_item synthesizer (§4.3): builds the item
// the outer sequencer injects to park the vehicle when it has nothing else
// queued.
func SetLoiterItem(minClearance float32, current Setpoint, host Host) Item {
	land := host.LandDetected()
	if land.Landed {
		return SetIdleItem(host)
	}

	it := Item{
		NavCmd:           CmdLoiterUnlimited,
		Yaw:              nan32(),
		LoiterRadius:     host.LoiterRadius(),
		AcceptanceRadius: host.AcceptanceRadius(0),
		TimeInside:       0,
		Autocontinue:     false,
	}

	if current.Valid && host.CanLoiterAtSetpoint() {
		it.X, it.Y, it.Z = current.X, current.Y, current.Z
	} else {
		pos := host.LocalPosition()
		it.X, it.Y, it.Z = pos.X, pos.Y, pos.Z
	}

	if minClearance > 0 && it.Z > -minClearance {
		it.Z = -minClearance
	}
	return it
}

// SetFollowTargetItem is the set_follow_target_item synthesizer: builds a
// DO_FOLLOW_REPOSITION item tracking a moving geodetic target.
func SetFollowTargetItem(minClearance float32, target LatLon, yaw float32, host Host) Item {
	land := host.LandDetected()
	if land.Landed {
		return SetIdleItem(host)
	}

	x, y := host.ProjectLocal(target)
	home := host.HomePosition()

	return Item{
		NavCmd:       CmdDoFollowReposition,
		X:            x,
		Y:            y,
		Z:            home.Z - navmath.Max(minClearance, 8),
		Yaw:          yaw,
		Autocontinue: false,
	}
}

// SetTakeoffItem is the set_takeoff_item synthesizer.
func SetTakeoffItem(lposZ, minPitch float32, host Host) Item {
	pos := host.LocalPosition()
	return Item{
		NavCmd:    CmdTakeoff,
		X:         pos.X,
		Y:         pos.Y,
		Z:         lposZ,
		Yaw:       pos.Yaw,
		PitchMin:  minPitch,
	}
}

// SetLandItem is the set_land_item synthesizer. When the vehicle is a VTOL
// currently flying fixed-wing and FORCE_VTOL is set, it publishes a
// DO_VTOL_TRANSITION command ahead of the land item to force a
// multicopter-mode landing.
func SetLandItem(atCurrentLocation bool, host Host) Item {
	vs := host.VehicleStatus()
	params := host.Params()
	if vs.IsVTOL && !vs.IsRotaryWing && params.ForceVTOL {
		host.PublishVehicleCmd(VehicleCommand{
			Command: CmdDoVTOLTransition,
			Param1:  VTOLStateMC,
		})
	}

	it := Item{
		NavCmd:       CmdLand,
		Z:            10000,
		Autocontinue: true,
	}

	if atCurrentLocation {
		pos := host.LocalPosition()
		it.X, it.Y = pos.X, pos.Y
		it.Yaw = pos.Yaw
	} else {
		home := host.HomePosition()
		it.X, it.Y = home.X, home.Y
		it.Yaw = home.Yaw
	}
	return it
}

// SetCurrentPositionItem is the set_current_position_item synthesizer: a
// WAYPOINT pinned to wherever the vehicle is right now.
func SetCurrentPositionItem(host Host) Item {
	pos := host.LocalPosition()
	return Item{
		NavCmd:       CmdWaypoint,
		X:            pos.X,
		Y:            pos.Y,
		Z:            pos.Z,
		Yaw:          nan32(),
		Autocontinue: true,
	}
}

// SetIdleItem is the set_idle_item synthesizer: IDLE at home.
func SetIdleItem(host Host) Item {
	home := host.HomePosition()
	return Item{
		NavCmd: CmdIdle,
		X:      home.X,
		Y:      home.Y,
		Z:      home.Z,
	}
}

func nan32() float32 {
	return float32(math.NaN())
}
