package nav

// SetpointType selects which control law the flight-control loop runs for
// the current setpoint.
type SetpointType int32

const (
	SetpointIdle SetpointType = iota
	SetpointPosition
	SetpointLoiter
	SetpointTakeoff
	SetpointLand
)

func (t SetpointType) String() string {
	switch t {
	case SetpointIdle:
		return "IDLE"
	case SetpointPosition:
		return "POSITION"
	case SetpointLoiter:
		return "LOITER"
	case SetpointTakeoff:
		return "TAKEOFF"
	case SetpointLand:
		return "LAND"
	default:
		return "UNKNOWN"
	}
}

// Setpoint is one slot of the position setpoint triplet consumed by the
// flight-control loop.
type Setpoint struct {
	X, Y, Z float32
	Yaw     float32
	YawValid bool

	LoiterRadius    float32
	LoiterDirection int32 // +1 clockwise, -1 counter-clockwise

	AcceptanceRadius float32

	CruisingSpeed    float32
	CruisingThrottle float32

	DisableMCYawControl bool
	PitchMin            float32

	Valid bool
	Type  SetpointType
}

// Triplet is the (previous, current, next) tuple owned by the outer
// navigator. The Translator writes Current; the Evaluator may mutate
// Current's type, altitude, x/y, and loiter fields in place.
type Triplet struct {
	Previous Setpoint
	Current  Setpoint
	Next     Setpoint
}

// SetPrevious copies Current into Previous, the way the navigator does
// right before activating a new item, if Current currently holds a valid
// setpoint.
func (t *Triplet) SetPrevious() {
	if t.Current.Valid {
		t.Previous = t.Current
	}
}
