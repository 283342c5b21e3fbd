package nav

import "testing"

func TestProgressReset_ClearsEverything(t *testing.T) {
	p := Progress{
		WaypointPositionReached: true,
		WaypointYawReached:      true,
		TimeWPReached:           99,
		TimeFirstInsideOrbit:    99,
		ActionStart:             99,
	}
	p.Reset()
	if p != (Progress{}) {
		t.Errorf("Reset() left %+v, want zero value", p)
	}
}

func TestResetAcceptance_PreservesTimers(t *testing.T) {
	p := Progress{
		WaypointPositionReached: true,
		WaypointYawReached:      true,
		TimeWPReached:           10,
		TimeFirstInsideOrbit:    20,
		ActionStart:             30,
	}
	p.resetAcceptance()

	if p.WaypointPositionReached || p.WaypointYawReached {
		t.Error("resetAcceptance() should clear both acceptance flags")
	}
	if p.TimeWPReached != 10 || p.TimeFirstInsideOrbit != 20 || p.ActionStart != 30 {
		t.Errorf("resetAcceptance() touched timers: %+v", p)
	}
}
