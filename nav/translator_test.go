package nav

import (
	"math"
	"testing"
)

func TestItemToSetpoint_AlwaysValid(t *testing.T) {
	h := newTestHost()
	cmds := []Cmd{CmdIdle, CmdWaypoint, CmdTakeoff, CmdVTOLTakeoff, CmdLand, CmdVTOLLand,
		CmdLoiterToAlt, CmdLoiterTimeLimit, CmdLoiterUnlimited, CmdDelay}
	for _, cmd := range cmds {
		sp := ItemToSetpoint(&Item{NavCmd: cmd}, h)
		if !sp.Valid {
			t.Errorf("%v: valid = false, want true", cmd)
		}
	}
}

func TestItemToSetpoint_TypeSelection(t *testing.T) {
	h := newTestHost()

	t.Run("idle", func(t *testing.T) {
		sp := ItemToSetpoint(&Item{NavCmd: CmdIdle}, h)
		if sp.Type != SetpointIdle {
			t.Errorf("type = %v, want IDLE", sp.Type)
		}
	})

	t.Run("takeoff while landed", func(t *testing.T) {
		h := newTestHost()
		h.land = LandDetected{Landed: true}
		sp := ItemToSetpoint(&Item{NavCmd: CmdTakeoff, PitchMin: 0.2}, h)
		if sp.Type != SetpointTakeoff || sp.PitchMin != 0.2 {
			t.Errorf("got type=%v pitchMin=%v, want TAKEOFF/0.2", sp.Type, sp.PitchMin)
		}
	})

	t.Run("takeoff while flying is a plain position", func(t *testing.T) {
		h := newTestHost()
		h.vs = VehicleStatus{Armed: true}
		h.land = LandDetected{Landed: false}
		sp := ItemToSetpoint(&Item{NavCmd: CmdTakeoff}, h)
		if sp.Type != SetpointPosition {
			t.Errorf("type = %v, want POSITION", sp.Type)
		}
	})

	t.Run("vtol takeoff disables MC yaw under weathervane", func(t *testing.T) {
		h := newTestHost()
		h.vs = VehicleStatus{IsVTOL: true}
		h.params = Params{VTOLWeathervaneTakeoff: true}
		sp := ItemToSetpoint(&Item{NavCmd: CmdVTOLTakeoff}, h)
		if sp.Type != SetpointTakeoff || !sp.DisableMCYawControl {
			t.Errorf("got type=%v disableMCYaw=%v, want TAKEOFF/true", sp.Type, sp.DisableMCYawControl)
		}
	})

	t.Run("land", func(t *testing.T) {
		sp := ItemToSetpoint(&Item{NavCmd: CmdLand}, h)
		if sp.Type != SetpointLand {
			t.Errorf("type = %v, want LAND", sp.Type)
		}
	})

	t.Run("loiter to alt clamps initial z to min clearance", func(t *testing.T) {
		h := newTestHost()
		h.local = LocalPosition{Z: -2} // only 2m above home, below the 5m clearance
		h.home = HomePosition{Z: 0}
		h.params = Params{LoiterMinAlt: 5}
		sp := ItemToSetpoint(&Item{NavCmd: CmdLoiterToAlt}, h)
		if sp.Type != SetpointPosition {
			t.Errorf("type = %v, want POSITION", sp.Type)
		}
		if want := float32(-5); sp.Z != want {
			t.Errorf("z = %v, want %v (clamped to min clearance)", sp.Z, want)
		}
	})

	t.Run("loiter to alt keeps current z when already above clearance", func(t *testing.T) {
		h := newTestHost()
		h.local = LocalPosition{Z: -20}
		h.home = HomePosition{Z: 0}
		h.params = Params{LoiterMinAlt: 5}
		sp := ItemToSetpoint(&Item{NavCmd: CmdLoiterToAlt}, h)
		if want := float32(-20); sp.Z != want {
			t.Errorf("z = %v, want %v (already clear of min altitude)", sp.Z, want)
		}
	})

	t.Run("loiter time limit", func(t *testing.T) {
		sp := ItemToSetpoint(&Item{NavCmd: CmdLoiterTimeLimit}, h)
		if sp.Type != SetpointLoiter {
			t.Errorf("type = %v, want LOITER", sp.Type)
		}
	})
}

func TestItemToSetpoint_YawValidity(t *testing.T) {
	h := newTestHost()

	sp := ItemToSetpoint(&Item{NavCmd: CmdWaypoint, Yaw: 1.5}, h)
	if !sp.YawValid {
		t.Error("finite yaw should be valid")
	}

	sp = ItemToSetpoint(&Item{NavCmd: CmdWaypoint, Yaw: float32(math.NaN())}, h)
	if sp.YawValid {
		t.Error("NaN yaw should be invalid")
	}
}

func TestItemToSetpoint_LoiterDirectionFromSign(t *testing.T) {
	h := newTestHost()

	sp := ItemToSetpoint(&Item{NavCmd: CmdLoiterUnlimited, LoiterRadius: -30}, h)
	if sp.LoiterDirection != -1 || sp.LoiterRadius != 30 {
		t.Errorf("got dir=%v radius=%v, want dir=-1 radius=30", sp.LoiterDirection, sp.LoiterRadius)
	}

	sp = ItemToSetpoint(&Item{NavCmd: CmdLoiterUnlimited, LoiterRadius: 30}, h)
	if sp.LoiterDirection != 1 || sp.LoiterRadius != 30 {
		t.Errorf("got dir=%v radius=%v, want dir=1 radius=30", sp.LoiterDirection, sp.LoiterRadius)
	}
}

func TestItemToSetpoint_LoiterRadiusAndDirectionAreIndependentTests(t *testing.T) {
	h := newTestHost()
	h.loiterRadius = 80

	// A radius below the epsilon threshold falls back to the host default,
	// but the sign test still runs independently on the raw (tiny) value.
	sp := ItemToSetpoint(&Item{NavCmd: CmdLoiterUnlimited, LoiterRadius: 0.0001}, h)
	if sp.LoiterRadius != 80 {
		t.Errorf("radius = %v, want host default 80 (below epsilon)", sp.LoiterRadius)
	}
	if sp.LoiterDirection != 1 {
		t.Errorf("direction = %v, want 1 for a positive (if tiny) radius", sp.LoiterDirection)
	}

	// LoiterRadius == 0 is the common "unset" case on WAYPOINT/TAKEOFF
	// items; the sign test is not positive, so direction is -1.
	sp = ItemToSetpoint(&Item{NavCmd: CmdWaypoint, LoiterRadius: 0}, h)
	if sp.LoiterRadius != 80 {
		t.Errorf("radius = %v, want host default 80", sp.LoiterRadius)
	}
	if sp.LoiterDirection != -1 {
		t.Errorf("direction = %v, want -1 for a zero radius", sp.LoiterDirection)
	}
}

func TestItemToSetpoint_AcceptanceRadiusIsPlainCopy(t *testing.T) {
	h := newTestHost()
	h.acceptanceRadius = 25

	sp := ItemToSetpoint(&Item{NavCmd: CmdWaypoint, AcceptanceRadius: 0}, h)
	if sp.AcceptanceRadius != 0 {
		t.Errorf("acceptanceRadius = %v, want 0 (no default substitution on the setpoint)", sp.AcceptanceRadius)
	}

	sp = ItemToSetpoint(&Item{NavCmd: CmdWaypoint, AcceptanceRadius: 3}, h)
	if sp.AcceptanceRadius != 3 {
		t.Errorf("acceptanceRadius = %v, want 3 (copied verbatim)", sp.AcceptanceRadius)
	}
}
