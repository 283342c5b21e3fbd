// Package nav implements the waypoint progression engine: given a
// navigator item and a telemetry snapshot, it decides how the item is
// translated into a position setpoint and when the item is reached.
//
// The package is deliberately free of any mission-file parsing, estimation,
// or transport concerns — those live on the Host side (see host.go) and in
// the sibling telemetry/binlog/navlog packages.
package nav

// Cmd tags the behavior of a navigator item. Values match the MAVLink
// MAV_CMD enumeration so items can cross the wire unchanged; NAV_CMD_IDLE
// is PX4-internal and has no MAVLink counterpart.
type Cmd int32

const (
	CmdIdle                  Cmd = 0
	CmdWaypoint              Cmd = 16
	CmdLoiterUnlimited       Cmd = 17
	CmdLoiterTimeLimit       Cmd = 19
	CmdLand                  Cmd = 21
	CmdTakeoff               Cmd = 22
	CmdLoiterToAlt           Cmd = 31
	CmdDoFollowReposition    Cmd = 33
	CmdDoChangeSpeed         Cmd = 178
	CmdDoSetServo            Cmd = 183
	CmdDoLandStart           Cmd = 189
	CmdDoSetROI              Cmd = 201
	CmdDoDigicamControl      Cmd = 203
	CmdDoMountConfigure      Cmd = 204
	CmdDoMountControl        Cmd = 205
	CmdDoSetCamTriggDist     Cmd = 206
	CmdDoSetCamTriggInterval Cmd = 214
	CmdSetCameraMode         Cmd = 530
	CmdVTOLTakeoff           Cmd = 84
	CmdVTOLLand              Cmd = 85
	CmdDelay                 Cmd = 93
	CmdImageStartCapture     Cmd = 2000
	CmdImageStopCapture      Cmd = 2001
	CmdDoTriggerControl      Cmd = 2003
	CmdVideoStartCapture     Cmd = 2500
	CmdVideoStopCapture      Cmd = 2501
	CmdDoVTOLTransition      Cmd = 3000
)

func (c Cmd) String() string {
	switch c {
	case CmdIdle:
		return "IDLE"
	case CmdWaypoint:
		return "WAYPOINT"
	case CmdLoiterUnlimited:
		return "LOITER_UNLIMITED"
	case CmdLoiterTimeLimit:
		return "LOITER_TIME_LIMIT"
	case CmdLand:
		return "LAND"
	case CmdTakeoff:
		return "TAKEOFF"
	case CmdLoiterToAlt:
		return "LOITER_TO_ALT"
	case CmdDoFollowReposition:
		return "DO_FOLLOW_REPOSITION"
	case CmdDoChangeSpeed:
		return "DO_CHANGE_SPEED"
	case CmdDoSetServo:
		return "DO_SET_SERVO"
	case CmdDoLandStart:
		return "DO_LAND_START"
	case CmdDoSetROI:
		return "DO_SET_ROI"
	case CmdDoDigicamControl:
		return "DO_DIGICAM_CONTROL"
	case CmdDoMountConfigure:
		return "DO_MOUNT_CONFIGURE"
	case CmdDoMountControl:
		return "DO_MOUNT_CONTROL"
	case CmdDoSetCamTriggDist:
		return "DO_SET_CAM_TRIGG_DIST"
	case CmdDoSetCamTriggInterval:
		return "DO_SET_CAM_TRIGG_INTERVAL"
	case CmdSetCameraMode:
		return "SET_CAMERA_MODE"
	case CmdVTOLTakeoff:
		return "VTOL_TAKEOFF"
	case CmdVTOLLand:
		return "VTOL_LAND"
	case CmdDelay:
		return "DELAY"
	case CmdImageStartCapture:
		return "IMAGE_START_CAPTURE"
	case CmdImageStopCapture:
		return "IMAGE_STOP_CAPTURE"
	case CmdDoTriggerControl:
		return "DO_TRIGGER_CONTROL"
	case CmdVideoStartCapture:
		return "VIDEO_START_CAPTURE"
	case CmdVideoStopCapture:
		return "VIDEO_STOP_CAPTURE"
	case CmdDoVTOLTransition:
		return "DO_VTOL_TRANSITION"
	default:
		return "UNKNOWN"
	}
}

// Origin records who authored an item, for bookkeeping only.
type Origin int32

const (
	OriginUnknown Origin = 0
	OriginMission Origin = 1
	OriginOnboard Origin = 2
)

// Item is one step of a mission: a waypoint, an action, or a mode change.
// Position is in the local NED frame (meters; Z positive down). Yaw is
// radians; NaN means unspecified.
type Item struct {
	NavCmd Cmd

	X, Y, Z float32
	Yaw     float32

	LoiterRadius     float32 // sign encodes direction: + CW, - CCW; |r|<eps means "use default"
	AcceptanceRadius float32 // 0 means "use default"
	TimeInside       float32 // seconds to dwell before reached

	ForceHeading       bool
	LoiterExitXtrack   bool
	PitchMin           float32 // takeoff only
	DisableMCYaw       bool
	VTOLBackTransition bool

	Autocontinue bool
	Origin       Origin

	Params [7]float32
}

// ContainsPosition reports whether the item carries a 3D target the
// position controller flies to, as opposed to a pure action or mode item.
func (it Item) ContainsPosition() bool {
	switch it.NavCmd {
	case CmdWaypoint, CmdLoiterUnlimited, CmdLoiterTimeLimit, CmdLand,
		CmdTakeoff, CmdLoiterToAlt, CmdVTOLTakeoff, CmdVTOLLand:
		return true
	default:
		return false
	}
}

// timeInside returns the dwell time to use for acceptance: PX4 forces this
// to zero for TAKEOFF regardless of what the item itself carries, since a
// takeoff is reached the instant altitude is captured.
func (it Item) timeInside() float32 {
	if it.NavCmd == CmdTakeoff {
		return 0
	}
	return it.TimeInside
}
