package telemetry

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/aeronav/wpnav/nav"
)

// SubReader fetches one of the five independent sub-readings that make up a
// Snapshot. Production readers wrap uORB subscriptions; tests and the
// navengine run harness wrap fixtures or a deterministic generator.
type SubReader struct {
	Local  func(ctx context.Context) (nav.LocalPosition, error)
	GVel   func(ctx context.Context) (nav.GlobalVelocity, error)
	Land   func(ctx context.Context) (nav.LandDetected, error)
	Status func(ctx context.Context) (nav.VehicleStatus, error)
	Home   func(ctx context.Context) (nav.HomePosition, error)
}

// MockProvider fetches its five sub-readings concurrently, modeling the
// independent uORB subscriptions the real navigator holds, then assembles
// one consistent Snapshot. The clock is supplied separately since it isn't
// one of the five telemetry topics.
type MockProvider struct {
	Reader SubReader
	Clock  func() nav.Time

	mu   sync.Mutex
	last Snapshot
}

func (m *MockProvider) Snapshot(ctx context.Context) (Snapshot, error) {
	var sp Snapshot

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) { sp.Local, err = m.Reader.Local(ctx); return })
	eg.Go(func() (err error) { sp.GVel, err = m.Reader.GVel(ctx); return })
	eg.Go(func() (err error) { sp.Land, err = m.Reader.Land(ctx); return })
	eg.Go(func() (err error) { sp.Status, err = m.Reader.Status(ctx); return })
	eg.Go(func() (err error) { sp.Home, err = m.Reader.Home(ctx); return })

	if err := eg.Wait(); err != nil {
		return Snapshot{}, err
	}

	sp.Now = m.Clock()

	m.mu.Lock()
	m.last = sp
	m.mu.Unlock()

	return sp, nil
}

// Last returns the most recently assembled snapshot, for debug tooling that
// wants to inspect state between ticks without forcing a new read.
func (m *MockProvider) Last() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}
