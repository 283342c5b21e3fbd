package nav

// Progress is the per-item acceptance state the engine owns. All five
// fields are reset whenever the outer sequencer activates a new item.
type Progress struct {
	WaypointPositionReached bool
	WaypointYawReached      bool

	TimeWPReached        Time // when position acceptance first held
	TimeFirstInsideOrbit Time // when both position and yaw first held continuously

	ActionStart Time // stamped at issue for items with propagation delay (e.g. VTOL transition)
}

// Reset clears all acceptance bookkeeping, as required whenever the active
// item changes.
func (p *Progress) Reset() {
	*p = Progress{}
}

// resetAcceptance clears only the two acceptance flags, per the "all
// criteria must hold in the same tick" atomicity rule. TimeWPReached,
// TimeFirstInsideOrbit, and ActionStart are deliberately left alone; the
// orbit dwell timer in particular must survive a transient per-tick flag
// drop or every loiter would restart its dwell clock on the first missed
// sample.
func (p *Progress) resetAcceptance() {
	p.WaypointPositionReached = false
	p.WaypointYawReached = false
}
