package nav

import (
	"time"

	"github.com/aeronav/wpnav/navmath"
)

// vtolTransitionSettleTime is the propagation delay PX4 waits after issuing
// DO_VTOL_TRANSITION before it starts checking in_transition_mode.
const vtolTransitionSettleTime = Time(500 * time.Millisecond / time.Microsecond)

// IsItemReached is the Acceptance Evaluator: it decides whether the active
// item is satisfied, mutating progress and possibly triplet.Current along
// the way. It is safe to call more than once within the same tick with
// unchanged inputs — the second call is a no-op that returns the same
// result (§8.1 property 7), since all the state it reads (progress,
// triplet.Current.Type/Z) either short-circuits identically or was already
// updated to its tick-stable value by the first call.
func IsItemReached(item *Item, progress *Progress, triplet *Triplet, host Host) bool {
	now := host.Now()

	if reached, handled := actionShortCircuit(item, progress, host, now); handled {
		return reached
	}

	land := host.LandDetected()
	vs := host.VehicleStatus()

	if land.Landed || progress.WaypointPositionReached {
		// Either nothing to do (landed) or position acceptance already
		// latched this activation; fall straight to yaw/dwell.
		return finishAcceptance(item, progress, triplet, host, now)
	}

	pos := host.LocalPosition()
	distXY := navmath.Distance2(navmath.Vec2{X: item.X, Y: item.Y}, navmath.Vec2{X: pos.X, Y: pos.Y})
	distZ := navmath.Abs(item.Z - pos.Z)
	dist := navmath.Sqrt(distXY*distXY + distZ*distZ)

	altAccept := host.AltitudeAcceptanceRadius()
	loiterRadius := host.LoiterRadius()

	if !vs.IsRotaryWing && item.NavCmd == CmdWaypoint {
		applyAltitudeCaptureLoiter(triplet, host, distZ, distXY, altAccept, loiterRadius)
	}

	switch {
	case (item.NavCmd == CmdTakeoff || item.NavCmd == CmdVTOLTakeoff) && vs.IsRotaryWing:
		takeoffAlt := -item.Z
		rAlt := altAccept
		if takeoffAlt > 0 && takeoffAlt < altAccept {
			rAlt = takeoffAlt / 2
		}
		if pos.Z < item.Z+rAlt {
			progress.WaypointPositionReached = true
		}

	case item.NavCmd == CmdTakeoff:
		if dist <= host.AcceptanceRadius(0) && distZ <= altAccept {
			progress.WaypointPositionReached = true
		}

	case !vs.IsRotaryWing && (item.NavCmd == CmdLoiterUnlimited || item.NavCmd == CmdLoiterTimeLimit):
		r := host.AcceptanceRadius(navmath.Abs(item.LoiterRadius) * 1.2)
		if dist <= r && distZ <= altAccept {
			progress.WaypointPositionReached = true
		} else {
			progress.TimeFirstInsideOrbit = 0
		}

	case !vs.IsRotaryWing && item.NavCmd == CmdLoiterToAlt:
		evaluateLoiterToAlt(item, progress, triplet, host, pos, altAccept)

	case item.NavCmd == CmdDelay:
		progress.WaypointPositionReached = true
		progress.WaypointYawReached = true
		progress.TimeWPReached = now

	default:
		r := defaultAcceptanceRadius(item, host, pos)
		if dist <= r && distZ <= altAccept {
			progress.WaypointPositionReached = true
		}
	}

	if progress.WaypointPositionReached && progress.TimeWPReached == 0 {
		// Stamp only on first reach; once set, time_wp_reached must survive
		// the per-tick acceptance reset below so a yaw (or dwell) timeout
		// measured against it keeps counting from the original reach, not
		// from whichever tick most recently re-confirmed position.
		progress.TimeWPReached = now
	}

	return finishAcceptance(item, progress, triplet, host, now)
}

// actionShortCircuit handles the non-geometric item kinds (§4.1.1). handled
// is false when the item falls through to the geometric path.
func actionShortCircuit(item *Item, progress *Progress, host Host, now Time) (reached bool, handled bool) {
	switch item.NavCmd {
	case CmdDoSetServo, CmdDoChangeSpeed, CmdDoLandStart, CmdDoTriggerControl,
		CmdDoDigicamControl, CmdImageStartCapture, CmdImageStopCapture,
		CmdVideoStartCapture, CmdVideoStopCapture, CmdDoMountConfigure,
		CmdDoMountControl, CmdDoSetROI, CmdDoSetCamTriggDist,
		CmdDoSetCamTriggInterval, CmdSetCameraMode:
		return true, true

	case CmdLand, CmdVTOLLand:
		return host.LandDetected().Landed, true

	case CmdIdle, CmdLoiterUnlimited:
		return false, true

	case CmdDoVTOLTransition:
		if Elapsed(now, progress.ActionStart) > vtolTransitionSettleTime && !host.VehicleStatus().InTransitionMode {
			progress.ActionStart = 0
			return true, true
		}
		return false, true

	default:
		return false, false
	}
}
