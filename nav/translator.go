package nav

import "github.com/aeronav/wpnav/navmath"

// ItemToSetpoint is the Item->Setpoint Translator (§4.2): a pure mapping
// from the active item plus a handful of navigator-level parameter queries
// into the position setpoint the controller actually flies.
func ItemToSetpoint(item *Item, host Host) Setpoint {
	sp := Setpoint{
		X:                   item.X,
		Y:                   item.Y,
		Z:                   item.Z,
		Yaw:                 item.Yaw,
		YawValid:            navmath.IsFinite(item.Yaw),
		AcceptanceRadius:    item.AcceptanceRadius,
		DisableMCYawControl: item.DisableMCYaw,
		CruisingSpeed:       host.CruisingSpeed(),
		CruisingThrottle:    host.CruisingThrottle(),
		Type:                SetpointPosition,
		Valid:               true,
	}

	if navmath.Abs(item.LoiterRadius) > navmath.Epsilon {
		sp.LoiterRadius = navmath.Abs(item.LoiterRadius)
	} else {
		sp.LoiterRadius = host.LoiterRadius()
	}
	if item.LoiterRadius > 0 {
		sp.LoiterDirection = 1
	} else {
		sp.LoiterDirection = -1
	}

	vs := host.VehicleStatus()
	params := host.Params()
	home := host.HomePosition()
	land := host.LandDetected()

	switch item.NavCmd {
	case CmdIdle:
		sp.Type = SetpointIdle

	case CmdTakeoff:
		if !vs.Armed || land.Landed {
			sp.Type = SetpointTakeoff
			sp.PitchMin = item.PitchMin
		}

	case CmdVTOLTakeoff:
		sp.Type = SetpointTakeoff
		sp.PitchMin = item.PitchMin
		if vs.IsVTOL && params.VTOLWeathervaneTakeoff {
			sp.DisableMCYawControl = true
		}

	case CmdLand, CmdVTOLLand:
		sp.Type = SetpointLand
		if vs.IsVTOL && params.VTOLWeathervaneLand {
			sp.DisableMCYawControl = true
		}

	case CmdLoiterToAlt:
		local := host.LocalPosition()
		if params.LoiterMinAlt > 0 {
			sp.Z = navmath.Min(local.Z-home.Z, -params.LoiterMinAlt) + home.Z
		} else {
			sp.Z = local.Z
		}

	case CmdLoiterTimeLimit, CmdLoiterUnlimited:
		sp.Type = SetpointLoiter
		if vs.IsVTOL && params.VTOLWeathervaneLoiter {
			sp.DisableMCYawControl = true
		}
	}

	return sp
}
