package nav

// testHost is a stand-in Host used by the engine's own tests. Every field
// defaults to the PX4-typical values the scenarios in spec §8 assume;
// override what a given test case cares about.
type testHost struct {
	local  LocalPosition
	gvel   GlobalVelocity
	land   LandDetected
	vs     VehicleStatus
	home   HomePosition
	params Params

	loiterRadius     float32
	acceptanceRadius float32
	altAccept        float32
	cruiseSpeed      float32
	cruiseThrottle   float32
	canLoiterAtSP    bool

	now Time

	projectFn func(LatLon) (float32, float32)
	headingFn func(point [2]float32, from *[2]float32) float32

	tripletUpdated bool
	publishedCmds  []VehicleCommand
	actuatorCalls  []actuatorCall
	missionFailure string
}

type actuatorCall struct {
	group, channel int
	value          float32
}

func newTestHost() *testHost {
	return &testHost{
		loiterRadius:     80,
		acceptanceRadius: 10,
		altAccept:        10,
		cruiseSpeed:      15,
		cruiseThrottle:   0.6,
		now:              1_000_000,
		params:           Params{YawErr: 5},
	}
}

func (h *testHost) LocalPosition() LocalPosition   { return h.local }
func (h *testHost) GlobalVelocity() GlobalVelocity { return h.gvel }
func (h *testHost) LandDetected() LandDetected     { return h.land }
func (h *testHost) VehicleStatus() VehicleStatus   { return h.vs }
func (h *testHost) HomePosition() HomePosition     { return h.home }

func (h *testHost) LoiterRadius() float32 { return h.loiterRadius }
func (h *testHost) AcceptanceRadius(override float32) float32 {
	if override > 0 {
		return override
	}
	return h.acceptanceRadius
}
func (h *testHost) AltitudeAcceptanceRadius() float32 { return h.altAccept }
func (h *testHost) CruisingSpeed() float32            { return h.cruiseSpeed }
func (h *testHost) CruisingThrottle() float32         { return h.cruiseThrottle }
func (h *testHost) CanLoiterAtSetpoint() bool         { return h.canLoiterAtSP }

func (h *testHost) ProjectLocal(p LatLon) (float32, float32) {
	if h.projectFn != nil {
		return h.projectFn(p)
	}
	return 0, 0
}

func (h *testHost) HeadingToTarget(point [2]float32, from *[2]float32) float32 {
	if h.headingFn != nil {
		return h.headingFn(point, from)
	}
	return 0
}

func (h *testHost) Params() Params { return h.params }

func (h *testHost) SetTripletUpdated() { h.tripletUpdated = true }
func (h *testHost) PublishVehicleCmd(cmd VehicleCommand) {
	h.publishedCmds = append(h.publishedCmds, cmd)
}
func (h *testHost) PublishActuatorControl(group, channel int, value float32) {
	h.actuatorCalls = append(h.actuatorCalls, actuatorCall{group, channel, value})
}
func (h *testHost) SetMissionFailure(reason string) { h.missionFailure = reason }

func (h *testHost) Now() Time { return h.now }
