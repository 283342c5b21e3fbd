// Package binlog records a navigator session's control ticks to a binary
// trace file for later replay and debugging, the engine's analogue of a
// flight log. Frames are msgpack-encoded and the stream is zstd-compressed,
// the same pairing the teacher uses for its own object cache.
package binlog

import (
	"github.com/google/uuid"

	"github.com/aeronav/wpnav/nav"
)

// Frame is one control tick: the item under evaluation, the telemetry that
// drove the decision, the resulting acceptance state, the current triplet,
// and whatever outcome the tick produced.
type Frame struct {
	Session uuid.UUID
	Seq     uint64
	Now     nav.Time

	Item nav.Item

	Local  nav.LocalPosition
	GVel   nav.GlobalVelocity
	Land   nav.LandDetected
	Status nav.VehicleStatus
	Home   nav.HomePosition

	Progress nav.Progress
	Triplet  nav.Triplet

	Reached        bool
	MissionFailure string
}
