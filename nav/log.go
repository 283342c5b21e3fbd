package nav

// Available logging categories for NavLog.
const (
	LogState    = "state"
	LogWaypoint = "waypoint"
	LogAltitude = "altitude"
	LogYaw      = "yaw"
	LogAction   = "action"
	LogTangent  = "tangent"
)
