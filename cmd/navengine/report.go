package main

import (
	"fmt"

	"github.com/goforj/godump"

	"github.com/aeronav/wpnav/binlog"
	"github.com/aeronav/wpnav/internal/session"
)

// printTransition prints a one-line summary of a tick, and a godump-pretty
// dump of the triplet/progress state when the item advances or fails.
func printTransition(tr session.Transition) {
	fmt.Printf("[tick %3d] item=%d cmd=%s reached=%v advanced=%v\n",
		tr.Tick, tr.ItemIndex, tr.Item.NavCmd, tr.Reached, tr.Advanced)

	for _, cmd := range tr.Published {
		fmt.Printf("  published: %+v\n", cmd)
	}
	for _, a := range tr.Actuators {
		fmt.Printf("  actuator: group=%d channel=%d value=%.3f\n", a.Group, a.Channel, a.Value)
	}

	if tr.Advanced || tr.MissionFailure != "" {
		fmt.Println(godump.DumpStr(tr.Triplet))
		fmt.Println(godump.DumpStr(tr.Progress))
	}
}

// toFrame converts a Transition plus the host's current snapshot into a
// binlog.Frame for trace recording.
func toFrame(tr session.Transition, host *session.Host) binlog.Frame {
	return binlog.Frame{
		Now:            host.Snapshot.Now,
		Item:           tr.Item,
		Local:          host.Snapshot.Local,
		GVel:           host.Snapshot.GVel,
		Land:           host.Snapshot.Land,
		Status:         host.Snapshot.Status,
		Home:           host.Snapshot.Home,
		Progress:       tr.Progress,
		Triplet:        tr.Triplet,
		Reached:        tr.Reached,
		MissionFailure: tr.MissionFailure,
	}
}
