package session

import (
	"context"
	"fmt"

	"github.com/aeronav/wpnav/nav"
	"github.com/aeronav/wpnav/telemetry"
)

// Transition describes what happened on one Engine.Tick call, for the
// run/shell/serve front ends to report to the operator.
type Transition struct {
	Tick int

	ItemIndex int
	Item      nav.Item

	Reached        bool
	Advanced       bool
	Exhausted      bool
	MissionFailure string

	TripletUpdated bool
	Published      []nav.VehicleCommand
	Actuators      []ActuatorCall

	Triplet  nav.Triplet
	Progress nav.Progress
}

// Engine drives a fixed list of navigator items through IssueCommand,
// ItemToSetpoint, and IsItemReached, one telemetry snapshot at a time. It
// owns the triplet and per-item progress the nav package operates on.
type Engine struct {
	Provider telemetry.Provider
	Host     *Host
	Items    []nav.Item

	tick     int
	index    int
	progress nav.Progress
	triplet  nav.Triplet
	started  bool
}

// NewEngine builds an Engine over items, backed by provider for telemetry
// and host for the capability surface the nav package consumes.
func NewEngine(provider telemetry.Provider, host *Host, items []nav.Item) *Engine {
	return &Engine{Provider: provider, Host: host, Items: items}
}

// Done reports whether every item has been activated and reached.
func (e *Engine) Done() bool {
	return e.index >= len(e.Items)
}

// Tick advances the engine by one telemetry sample: it activates the
// current item on first entry, evaluates acceptance, and advances to the
// next item when it's reached.
func (e *Engine) Tick(ctx context.Context) (Transition, error) {
	e.tick++

	if e.Done() {
		return Transition{Tick: e.tick, Exhausted: true}, nil
	}

	snap, err := e.Provider.Snapshot(ctx)
	if err != nil {
		return Transition{}, fmt.Errorf("session: snapshot tick %d: %w", e.tick, err)
	}
	e.Host.Snapshot = snap

	item := &e.Items[e.index]

	if !e.started {
		nav.ApplyLimitation(item, e.Host)
		e.triplet.SetPrevious()
		e.triplet.Current = nav.ItemToSetpoint(item, e.Host)
		nav.IssueCommand(item, &e.progress, e.Host)
		e.started = true
	}

	reached := nav.IsItemReached(item, &e.progress, &e.triplet, e.Host)
	tripletUpdated, published, actuators, missionFailure := e.Host.drainTick()

	tr := Transition{
		Tick:           e.tick,
		ItemIndex:      e.index,
		Item:           *item,
		Reached:        reached,
		TripletUpdated: tripletUpdated,
		Published:      published,
		Actuators:      actuators,
		MissionFailure: missionFailure,
		Triplet:        e.triplet,
		Progress:       e.progress,
	}

	if reached {
		e.progress.Reset()
		e.index++
		e.started = false
		tr.Advanced = true
		if e.Done() {
			tr.Exhausted = true
		}
	}

	return tr, nil
}
