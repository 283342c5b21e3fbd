package nav

// IssueCommand is the Action Dispatch (§4.4), called by the outer sequencer
// once when an item activates. Positional items are driven entirely by the
// setpoint path and are a no-op here; DO_LAND_START is a marker the outer
// sequencer itself reacts to.
func IssueCommand(item *Item, progress *Progress, host Host) {
	if item.ContainsPosition() {
		return
	}

	switch item.NavCmd {
	case CmdDoLandStart:
		return

	case CmdDoSetServo:
		channel := int(item.Params[0])
		pwm := item.Params[1]
		value := float32(1.0/2000.0) * -pwm
		host.PublishActuatorControl(2, channel, value)

	default:
		progress.ActionStart = host.Now()
		host.PublishVehicleCmd(VehicleCommand{
			Command: item.NavCmd,
			Param1:  item.Params[0],
			Param2:  item.Params[1],
			Param3:  item.Params[2],
			Param4:  item.Params[3],
			Param5:  item.Params[4],
			Param6:  item.Params[5],
			Param7:  item.Params[6],
		})
	}
}

// ApplyLimitation is the Altitude Limiter (§4.5): clamps an item's target
// altitude to the land detector's configured ceiling before translation.
func ApplyLimitation(item *Item, host Host) {
	land := host.LandDetected()
	home := host.HomePosition()

	if land.AltMax > 0 && land.AltMax < -(item.Z-home.Z) {
		item.Z = -land.AltMax + home.Z
	}
}
