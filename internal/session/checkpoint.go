package session

import (
	"github.com/brunoga/deep"

	"github.com/aeronav/wpnav/nav"
)

// Checkpoint captures the engine's rollback-able state: which item is
// active and the acceptance progress/triplet built up for it. It does not
// capture the vehicle model (Dynamics) or the telemetry provider; a
// rollback leaves both where they are.
type Checkpoint struct {
	Index    int
	Progress nav.Progress
	Triplet  nav.Triplet
}

// Checkpoint deep-copies the engine's current rollback state so the
// caller can mutate the live engine afterward (via further Tick calls)
// without that mutation reaching back into the snapshot.
func (e *Engine) Checkpoint() Checkpoint {
	return deep.MustCopy(Checkpoint{
		Index:    e.index,
		Progress: e.progress,
		Triplet:  e.triplet,
	})
}

// Restore resets the engine to a previously captured Checkpoint, the way
// the shell's "rollback" command lets an operator back out of a tick
// they stepped into by mistake. started is cleared so the next Tick
// re-activates the restored item cleanly.
func (e *Engine) Restore(c Checkpoint) {
	restored := deep.MustCopy(c)
	e.index = restored.Index
	e.progress = restored.Progress
	e.triplet = restored.Triplet
	e.started = false
}
