package nav

import "github.com/aeronav/wpnav/navmath"

// applyAltitudeCaptureLoiter implements the fixed-wing WAYPOINT
// altitude-via-loiter switch (§4.1.2): close to the waypoint horizontally
// but still far off in altitude promotes the current setpoint to a LOITER
// so the aircraft circles while it climbs/descends instead of overflying
// the target; once within the loiter's own acceptance it demotes back to
// POSITION.
func applyAltitudeCaptureLoiter(triplet *Triplet, host Host, distZ, distXY, altAccept, loiterRadius float32) {
	cur := &triplet.Current
	switch cur.Type {
	case SetpointPosition:
		if distZ > 2*altAccept && distXY < 2*loiterRadius {
			cur.Type = SetpointLoiter
			cur.LoiterRadius = loiterRadius
			cur.LoiterDirection = 1
			host.SetTripletUpdated()
		}
	case SetpointLoiter:
		if distZ < loiterRadius && distXY <= 1.2*loiterRadius {
			cur.Type = SetpointPosition
			host.SetTripletUpdated()
		}
	}
}

// evaluateLoiterToAlt implements the two-phase LOITER_TO_ALT acceptance
// (§4.1.2): while the setpoint altitude differs from the item's, the first
// tick that satisfies the loiter predicate (measured against the item's
// position and altitude) overwrites the setpoint altitude with the item's
// in one step; once they match, position-reached is declared the next time
// the same predicate holds.
func evaluateLoiterToAlt(item *Item, progress *Progress, triplet *Triplet, host Host, pos LocalPosition, altAccept float32) {
	cur := &triplet.Current
	r := host.AcceptanceRadius(navmath.Abs(item.LoiterRadius) * 1.2)

	if navmath.Abs(cur.Z-item.Z) >= navmath.Epsilon {
		distXY := navmath.Distance2(navmath.Vec2{X: item.X, Y: item.Y}, navmath.Vec2{X: pos.X, Y: pos.Y})
		distZ := navmath.Abs(item.Z - pos.Z)
		dist := navmath.Sqrt(distXY*distXY + distZ*distZ)
		if dist <= r && distZ <= altAccept {
			cur.Z = item.Z
			host.SetTripletUpdated()
		}
		return
	}

	distXY := navmath.Distance2(navmath.Vec2{X: item.X, Y: item.Y}, navmath.Vec2{X: pos.X, Y: pos.Y})
	distZ := navmath.Abs(item.Z - pos.Z)
	dist := navmath.Sqrt(distXY*distXY + distZ*distZ)
	if dist <= r && distZ <= altAccept {
		progress.WaypointPositionReached = true

		if item.ForceHeading {
			next := triplet.Next
			if next.Valid {
				item.Yaw = host.HeadingToTarget([2]float32{next.X, next.Y}, nil)
				progress.WaypointYawReached = false
			} else {
				progress.WaypointYawReached = true
			}
		}
	}
}

// defaultAcceptanceRadius resolves the acceptance radius for the "default"
// positional item row of §4.1.2, applying the back-transition
// stopping-distance override when applicable.
func defaultAcceptanceRadius(item *Item, host Host, pos LocalPosition) float32 {
	r := host.AcceptanceRadius(item.AcceptanceRadius)
	if r < navmath.Epsilon {
		r = host.AcceptanceRadius(0)
	}

	if item.VTOLBackTransition {
		params := host.Params()
		v := navmath.Sqrt(pos.VX*pos.VX + pos.VY*pos.VY)
		if params.BackTransDecelMSS > navmath.Epsilon && v > navmath.Epsilon {
			r = (v*v)/(2*params.BackTransDecelMSS) + params.ReverseDelay*v
		}
	}
	return r
}

// finishAcceptance evaluates yaw acceptance, the dwell timer, and tangent
// exit, then applies the same-iteration atomicity rule: unless reached is
// returned, both WaypointPositionReached and WaypointYawReached are cleared
// before returning so the next tick must re-establish both from scratch.
func finishAcceptance(item *Item, progress *Progress, triplet *Triplet, host Host, now Time) bool {
	if progress.WaypointPositionReached && !progress.WaypointYawReached {
		evaluateYawAcceptance(item, progress, host, now)
	}

	if progress.WaypointPositionReached && progress.WaypointYawReached {
		if progress.TimeFirstInsideOrbit == 0 {
			progress.TimeFirstInsideOrbit = now
		}

		dwell := item.timeInside()
		if dwell < navmath.Epsilon || Elapsed(now, progress.TimeFirstInsideOrbit) >= Micros(secondsToDuration(dwell)) {
			applyTangentExit(item, triplet, host)
			return true
		}
	}

	progress.resetAcceptance()
	return false
}

// evaluateYawAcceptance implements §4.1.3.
func evaluateYawAcceptance(item *Item, progress *Progress, host Host, now Time) {
	vs := host.VehicleStatus()
	forcedLoiterToAlt := item.NavCmd == CmdLoiterToAlt && item.ForceHeading

	if (vs.IsRotaryWing || forcedLoiterToAlt) && navmath.IsFinite(item.Yaw) {
		var cog float32
		if vs.IsRotaryWing {
			cog = host.LocalPosition().Yaw
		} else {
			gv := host.GlobalVelocity()
			cog = navmath.Atan2(gv.VelE, gv.VelN)
		}
		yawErr := navmath.WrapPi(item.Yaw - cog)
		params := host.Params()

		if navmath.Abs(yawErr) < radians(params.YawErr) || (params.YawTimeout >= navmath.Epsilon && !item.ForceHeading) {
			progress.WaypointYawReached = true
		}

		if !progress.WaypointYawReached && item.ForceHeading && params.YawTimeout >= navmath.Epsilon &&
			Elapsed(now, progress.TimeWPReached) >= Micros(secondsToDuration(params.YawTimeout)) {
			host.SetMissionFailure("unable to reach heading within timeout")
		}
	} else {
		progress.WaypointYawReached = true
	}
}

// applyTangentExit snaps the current setpoint's x/y to the ideal tangent
// departure point when leaving a loiter toward the next item (§4.1.4).
func applyTangentExit(item *Item, triplet *Triplet, host Host) {
	if !(item.NavCmd == CmdLoiterTimeLimit || item.NavCmd == CmdLoiterToAlt) {
		return
	}
	if !item.LoiterExitXtrack || !triplet.Next.Valid {
		return
	}

	cur := &triplet.Current
	next := triplet.Next

	rng := navmath.Distance2(navmath.Vec2{X: cur.X, Y: cur.Y}, navmath.Vec2{X: next.X, Y: next.Y})
	if !navmath.IsFinite(rng) || rng == 0 {
		return
	}

	bearing := host.HeadingToTarget([2]float32{next.X, next.Y}, &[2]float32{cur.X, cur.Y})
	inner := halfPi - navmath.Asin(item.LoiterRadius/rng)
	if cur.LoiterDirection > 0 {
		bearing -= inner
	} else {
		bearing += inner
	}

	// Rotate the unit +X vector by bearing in the local plane and scale by
	// the loiter radius to get the ideal tangent origin.
	dest := rotatePlanar(navmath.Vec2{X: 1, Y: 0}, bearing).Scale(cur.LoiterRadius)
	cur.X = dest.X
	cur.Y = dest.Y

	NavLog(LogTangent, "exit xtrack cmd=%s x=%.2f y=%.2f bearing=%.3f", item.NavCmd, cur.X, cur.Y, bearing)
}
