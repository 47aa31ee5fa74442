package app

//Manages the fluid scene routine: fixed-step ticking, parameter edits from
//the UI collaborators, and the read-only snapshot handed to renderers.
//Single-writer-per-tick discipline: edits queue up from any goroutine and
//are applied between ticks, never during one.
import (
	"sync"
	"time"

	"github.com/roberte777/fluid-sim/fluid"
	V "github.com/roberte777/fluid-sim/vector"
)

//ParamKind enumerates the UI writable scalars
type ParamKind int

const (
	ParamRadius ParamKind = iota
	ParamDamping
	ParamWidth
	ParamHeight
)

type Edit struct {
	Kind  ParamKind
	Value float32
}

//Scene owns the solver between the simulation and its collaborators.
type Scene struct {
	Fluid *fluid.SPHFluid

	mu      sync.Mutex
	pending []Edit
	snap    fluid.Snapshot
}

func NewScene(f *fluid.SPHFluid) *Scene {
	s := &Scene{Fluid: f}
	f.Field.CopyInto(&s.snap, f.Domain)
	return s
}

//Queue schedules a parameter edit for the next tick. Safe from any goroutine.
func (s *Scene) Queue(e Edit) {
	s.mu.Lock()
	s.pending = append(s.pending, e)
	s.mu.Unlock()
}

//Step applies pending edits, advances the solver one tick and refreshes the
//published snapshot. Must be called from a single goroutine.
func (s *Scene) Step() error {
	s.mu.Lock()
	edits := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, e := range edits {
		s.apply(e)
	}

	err := s.Fluid.Step()

	s.mu.Lock()
	s.Fluid.Field.CopyInto(&s.snap, s.Fluid.Domain)
	s.mu.Unlock()
	return err
}

func (s *Scene) apply(e Edit) {
	switch e.Kind {
	case ParamRadius:
		if e.Value > 0 {
			s.Fluid.Field.SetRadius(e.Value)
		}
	case ParamDamping:
		if e.Value >= 0 && e.Value <= 1 {
			s.Fluid.Field.SetDamping(e.Value)
		}
	case ParamWidth:
		if e.Value > 0 {
			s.Fluid.Domain.Width = e.Value
		}
	case ParamHeight:
		if e.Value > 0 {
			s.Fluid.Domain.Height = e.Value
		}
	}
}

//Snapshot copies the last published tick state into dst
func (s *Scene) Snapshot(dst *fluid.Snapshot) {
	s.mu.Lock()
	if len(dst.Positions) != len(s.snap.Positions) {
		dst.Positions = make([]V.Vec2, len(s.snap.Positions))
		dst.Radii = make([]float32, len(s.snap.Radii))
	}
	copy(dst.Positions, s.snap.Positions)
	copy(dst.Radii, s.snap.Radii)
	dst.Width = s.snap.Width
	dst.Height = s.snap.Height
	s.mu.Unlock()
}

//Params returns the current UI visible scalars
func (s *Scene) Params() (radius, damping, width, height float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.Fluid.Field
	if f.Count > 0 {
		radius = f.Radii[0]
		damping = f.Damping[0]
	}
	return radius, damping, s.Fluid.Domain.Width, s.Fluid.Domain.Height
}

//ApplyForce injects an interactive radial kick. Call only from the ticking
//goroutine, between its own Step calls.
func (s *Scene) ApplyForce(at V.Vec2, strength float32) {
	s.Fluid.ApplyForce(at, strength)
}

//Run ticks the scene at the configured fixed time step until stop closes or
//the solver diverges.
func (s *Scene) Run(stop <-chan struct{}) error {
	ticker := time.NewTicker(time.Duration(float64(s.Fluid.Config.TimeStep) * float64(time.Second)))
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return nil
		case <-ticker.C:
			if err := s.Step(); err != nil {
				return err
			}
		}
	}
}

//RunHeadless advances a fixed number of ticks as fast as possible
func (s *Scene) RunHeadless(ticks int) error {
	for i := 0; i < ticks; i++ {
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}
