package nav

import "testing"

func TestContainsPosition(t *testing.T) {
	positional := []Cmd{CmdWaypoint, CmdLoiterUnlimited, CmdLoiterTimeLimit, CmdLand,
		CmdTakeoff, CmdLoiterToAlt, CmdVTOLTakeoff, CmdVTOLLand}
	for _, c := range positional {
		if !(Item{NavCmd: c}).ContainsPosition() {
			t.Errorf("%v: ContainsPosition() = false, want true", c)
		}
	}

	action := []Cmd{CmdIdle, CmdDoSetServo, CmdDoChangeSpeed, CmdDoLandStart, CmdDelay}
	for _, c := range action {
		if (Item{NavCmd: c}).ContainsPosition() {
			t.Errorf("%v: ContainsPosition() = true, want false", c)
		}
	}
}

func TestTimeInside_TakeoffForcedToZero(t *testing.T) {
	it := Item{NavCmd: CmdTakeoff, TimeInside: 5}
	if got := it.timeInside(); got != 0 {
		t.Errorf("timeInside() = %v, want 0 for TAKEOFF regardless of the stored value", got)
	}

	it = Item{NavCmd: CmdLoiterTimeLimit, TimeInside: 5}
	if got := it.timeInside(); got != 5 {
		t.Errorf("timeInside() = %v, want 5", got)
	}
}
