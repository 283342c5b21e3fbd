package nav

// LocalPosition is the vehicle's local-frame position/velocity estimate
// (§3.4). Positions are meters in the local NED frame; velocities m/s.
type LocalPosition struct {
	X, Y, Z       float32
	VX, VY, VZ    float32
	Yaw           float32
}

// GlobalVelocity carries the north/east components of ground velocity,
// used to derive course-over-ground for fixed-wing yaw acceptance.
type GlobalVelocity struct {
	VelN, VelE float32
}

// LandDetected mirrors the landing detector's output.
type LandDetected struct {
	Landed bool
	AltMax float32 // <=0 means "no altitude cap"
}

// VehicleStatus carries the airframe/arming facts the engine's branches key
// off of.
type VehicleStatus struct {
	IsRotaryWing    bool
	IsVTOL          bool
	InTransitionMode bool
	Armed           bool
}

// HomePosition is the local-frame origin the engine measures altitude
// above-home against.
type HomePosition struct {
	X, Y, Z, Yaw float32
}

// LatLon is a geodetic coordinate pair in degrees.
type LatLon struct {
	Lat, Lon float64
}

// Params bundles the read-only tunables from §3.5.
type Params struct {
	LoiterMinAlt     float32 // meters; <=0 disables the clamp
	YawTimeout       float32 // seconds; >=eps accepts non-forced yaw immediately and arms the forced-heading failure timeout
	YawErr           float32 // degrees
	VTOLWeathervaneLand    bool
	VTOLWeathervaneTakeoff bool
	VTOLWeathervaneLoiter  bool
	ForceVTOL        bool
	BackTransDecelMSS float32 // m/s^2
	ReverseDelay      float32 // seconds
}

// VehicleCommand is a generic outbound command assembled from an action
// item's seven parameter slots.
type VehicleCommand struct {
	Command Cmd
	Param1, Param2, Param3, Param4, Param5, Param6, Param7 float32
}

// VTOLState values used for the forced back-transition command published
// ahead of a land item (§4.3 set_land_item).
const VTOLStateMC float32 = 2

// Host is the capability interface the engine consumes from the outer
// navigator (§6.2). It is a non-owning handle passed into every operation —
// the engine holds no back-pointer to its caller.
type Host interface {
	LocalPosition() LocalPosition
	GlobalVelocity() GlobalVelocity
	LandDetected() LandDetected
	VehicleStatus() VehicleStatus
	HomePosition() HomePosition

	LoiterRadius() float32
	AcceptanceRadius(override float32) float32
	AltitudeAcceptanceRadius() float32
	CruisingSpeed() float32
	CruisingThrottle() float32
	CanLoiterAtSetpoint() bool

	// ProjectLocal projects a geodetic point into the local NED frame about
	// the navigator's local reference point.
	ProjectLocal(p LatLon) (x, y float32)

	// HeadingToTarget returns the bearing from "from" to "point"; if from
	// is nil, the current local position is used.
	HeadingToTarget(point [2]float32, from *[2]float32) float32

	Params() Params

	SetTripletUpdated()
	PublishVehicleCmd(cmd VehicleCommand)
	PublishActuatorControl(group int, channel int, value float32)
	SetMissionFailure(reason string)

	Now() Time
}
