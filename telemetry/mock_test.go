package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/aeronav/wpnav/nav"
)

func TestMockProvider_AssemblesAllFiveReadings(t *testing.T) {
	m := &MockProvider{
		Reader: SubReader{
			Local:  func(ctx context.Context) (nav.LocalPosition, error) { return nav.LocalPosition{X: 1}, nil },
			GVel:   func(ctx context.Context) (nav.GlobalVelocity, error) { return nav.GlobalVelocity{VelN: 2}, nil },
			Land:   func(ctx context.Context) (nav.LandDetected, error) { return nav.LandDetected{Landed: true}, nil },
			Status: func(ctx context.Context) (nav.VehicleStatus, error) { return nav.VehicleStatus{Armed: true}, nil },
			Home:   func(ctx context.Context) (nav.HomePosition, error) { return nav.HomePosition{X: 3}, nil },
		},
		Clock: func() nav.Time { return 42 },
	}

	sp, err := m.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}

	if sp.Local.X != 1 || sp.GVel.VelN != 2 || !sp.Land.Landed || !sp.Status.Armed || sp.Home.X != 3 || sp.Now != 42 {
		t.Errorf("Snapshot = %+v, missing or wrong sub-reading", sp)
	}

	if m.Last() != sp {
		t.Errorf("Last() = %+v, want %+v", m.Last(), sp)
	}
}

func TestMockProvider_PropagatesSubReaderError(t *testing.T) {
	wantErr := errors.New("local position unavailable")
	m := &MockProvider{
		Reader: SubReader{
			Local:  func(ctx context.Context) (nav.LocalPosition, error) { return nav.LocalPosition{}, wantErr },
			GVel:   func(ctx context.Context) (nav.GlobalVelocity, error) { return nav.GlobalVelocity{}, nil },
			Land:   func(ctx context.Context) (nav.LandDetected, error) { return nav.LandDetected{}, nil },
			Status: func(ctx context.Context) (nav.VehicleStatus, error) { return nav.VehicleStatus{}, nil },
			Home:   func(ctx context.Context) (nav.HomePosition, error) { return nav.HomePosition{}, nil },
		},
		Clock: func() nav.Time { return 0 },
	}

	if _, err := m.Snapshot(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("Snapshot error = %v, want %v", err, wantErr)
	}
}
