package app

import (
	"errors"
	"testing"

	"github.com/roberte777/fluid-sim/fluid"
	V "github.com/roberte777/fluid-sim/vector"
)

func testScene(t *testing.T) *Scene {
	t.Helper()
	cfg := fluid.DefaultConfig()
	cfg.Gravity = V.Vec2{}
	layout := fluid.GridLayout{Count: 20, Columns: 5, Spacing: 1.0, Radius: 0.35, Damping: 0.95}
	sim, err := fluid.NewSPHFluid(cfg, fluid.Domain{Width: 150, Height: 90}, layout)
	if err != nil {
		t.Fatal(err)
	}
	return NewScene(sim)
}

func TestEditsApplyBetweenTicks(t *testing.T) {
	s := testScene(t)

	s.Queue(Edit{Kind: ParamRadius, Value: 0.5})
	s.Queue(Edit{Kind: ParamDamping, Value: 0.25})
	s.Queue(Edit{Kind: ParamWidth, Value: 200})
	s.Queue(Edit{Kind: ParamHeight, Value: 100})

	//nothing visible until the next tick
	radius, _, width, _ := s.Params()
	if radius != 0.35 || width != 150 {
		t.Fatalf("edits leaked before the tick: radius=%f width=%f", radius, width)
	}

	if err := s.Step(); err != nil {
		t.Fatal(err)
	}

	radius, damping, width, height := s.Params()
	if radius != 0.5 || damping != 0.25 || width != 200 || height != 100 {
		t.Errorf("edits not applied: %f %f %f %f", radius, damping, width, height)
	}
	for i := 0; i < s.Fluid.Field.Count; i++ {
		if s.Fluid.Field.Radii[i] != 0.5 || s.Fluid.Field.Damping[i] != 0.25 {
			t.Fatalf("broadcast missed particle %d", i)
		}
	}
}

func TestInvalidEditsIgnored(t *testing.T) {
	s := testScene(t)

	s.Queue(Edit{Kind: ParamWidth, Value: -10})
	s.Queue(Edit{Kind: ParamRadius, Value: 0})
	s.Queue(Edit{Kind: ParamDamping, Value: 2})
	if err := s.Step(); err != nil {
		t.Fatal(err)
	}

	radius, damping, width, _ := s.Params()
	if radius != 0.35 || damping != 0.95 || width != 150 {
		t.Errorf("invalid edit applied: %f %f %f", radius, damping, width)
	}
}

func TestSnapshotIsolated(t *testing.T) {
	s := testScene(t)
	if err := s.Step(); err != nil {
		t.Fatal(err)
	}

	snap := fluid.Snapshot{}
	s.Snapshot(&snap)
	if len(snap.Positions) != 20 || snap.Width != 150 || snap.Height != 90 {
		t.Fatalf("snapshot shape wrong: %d particles %fx%f", len(snap.Positions), snap.Width, snap.Height)
	}

	//mutating the copy must not reach the store
	snap.Positions[0] = V.Vec2{999, 999}
	if V.VecEquals(s.Fluid.Field.Positions[0], V.Vec2{999, 999}) {
		t.Error("snapshot aliases the particle store")
	}
}

func TestDivergencePropagates(t *testing.T) {
	cfg := fluid.DefaultConfig()
	cfg.Gravity = V.Vec2{}
	cfg.UsePrediction = false
	cfg.GasConstant = 1e20
	cfg.RestDensity = 0
	cfg.TimeStep = 1e10
	layout := fluid.GridLayout{Count: 2, Columns: 2, Spacing: 0.1, Radius: 0, Damping: 0.95}
	sim, err := fluid.NewSPHFluid(cfg, fluid.Domain{Width: 1000, Height: 1000}, layout)
	if err != nil {
		t.Fatal(err)
	}

	s := NewScene(sim)
	if err := s.RunHeadless(10); !errors.Is(err, fluid.ErrDiverged) {
		t.Errorf("expected ErrDiverged, got %v", err)
	}
}

func TestHeadlessRun(t *testing.T) {
	s := testScene(t)
	if err := s.RunHeadless(30); err != nil {
		t.Fatal(err)
	}
	if s.Fluid.Field.Count != 20 {
		t.Errorf("population changed to %d", s.Fluid.Field.Count)
	}
}
