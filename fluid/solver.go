package fluid

//Brute force all-pairs SPH solver. Three phases per tick: optional position
//prediction, density/pressure accumulation, force accumulation + integration
//with the boundary resolved per particle. Both O(n^2) passes only ever write
//to the particle they own, so they shard across a worker pool.
import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	V "github.com/roberte777/fluid-sim/vector"
)

//ErrDiverged - a position component left the real number line. The
//integration step size or kernel parameters are not stable for the current
//configuration, the simulation must stop advancing.
var ErrDiverged = errors.New("fluid: simulation diverged")

//SPHFluid - owns the particle field and advances it one tick at a time.
type SPHFluid struct {
	Config SimConfig
	Domain Domain
	Field  *ParticleField

	DensKernel Kernel       //density estimator, spiky or poly6 per config
	GradKernel *SpikyKernel //pressure gradient estimator
	ViscKernel Kernel       //poly6 weight stands in for the viscosity laplacian

	scratchVel []V.Vec2 //prior tick velocity snapshot read by the force pass
}

//NewSPHFluid validates the configuration once and seeds the particle grid.
func NewSPHFluid(cfg SimConfig, dom Domain, layout GridLayout) (*SPHFluid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := dom.Validate(); err != nil {
		return nil, err
	}
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	fluid := &SPHFluid{Config: cfg, Domain: dom}
	fluid.Field = Seed(layout)
	fluid.scratchVel = make([]V.Vec2, fluid.Field.Count)

	spiky := InitSpiky(cfg.SmoothingRadius)
	poly6 := InitPoly6(cfg.SmoothingRadius)
	fluid.GradKernel = &spiky
	fluid.ViscKernel = &poly6
	switch cfg.DensityKernel {
	case KernelPoly6:
		fluid.DensKernel = &poly6
	default:
		fluid.DensKernel = fluid.GradKernel
	}
	return fluid, nil
}

//Step advances the simulation by one fixed tick. On divergence the field is
//left as is and the error identifies the first offending particle.
func (fluid *SPHFluid) Step() error {
	f := fluid.Field
	dt := fluid.Config.TimeStep

	//Phase 1: integrate gravity and project the predicted positions. When
	//prediction is off the pairwise passes run on the live positions and
	//gravity joins the force sum in phase 3 instead.
	if fluid.Config.UsePrediction {
		g := V.Scale(fluid.Config.Gravity, dt)
		for i := 0; i < f.Count; i++ {
			f.Velocities[i].Add(g)
			f.Predicted[i] = V.Add(f.Positions[i], V.Scale(f.Velocities[i], dt))
		}
	} else {
		copy(f.Predicted, f.Positions)
	}

	//Phase 2: all-pairs density and equation of state pressure
	fluid.parallel(f.Count, fluid.densityPass)

	//Phase 3 reads the full prior snapshot, then each particle commits only
	//its own velocity and position
	copy(fluid.scratchVel, f.Velocities)
	var diverged atomic.Int64
	diverged.Store(-1)
	fluid.parallel(f.Count, func(start, end int) {
		fluid.forcePass(start, end, &diverged)
	})

	if i := diverged.Load(); i >= 0 {
		return fmt.Errorf("%w: particle %d position is not finite", ErrDiverged, i)
	}
	return nil
}

//densityPass sums kernel weights over every particle including self, so a
//live particle always carries at least the kernel maximum and the vacuum
//guard below stays a guard. Pressure may go negative below rest density,
//that is the cohesive regime and is intentional.
func (fluid *SPHFluid) densityPass(start, end int) {
	f := fluid.Field
	for i := start; i < end; i++ {
		density := float32(0.0)
		for j := 0; j < f.Count; j++ {
			dist := f.Predicted[i].Distance(f.Predicted[j])
			density += fluid.DensKernel.F(dist)
		}
		f.Densities[i] = density
		f.Pressures[i] = fluid.Config.GasConstant * (density - fluid.Config.RestDensity)
	}
}

func (fluid *SPHFluid) forcePass(start, end int, diverged *atomic.Int64) {
	f := fluid.Field
	cfg := &fluid.Config
	dt := cfg.TimeStep

	for i := start; i < end; i++ {
		pressureForce := V.Vec2{}
		viscosityForce := V.Vec2{}

		for j := 0; j < f.Count; j++ {
			if j == i {
				continue
			}
			r := V.Sub(f.Predicted[i], f.Predicted[j])
			dist := V.Length(r)
			//zero separation and zero neighbor density contribute nothing,
			//this guards a singular normalize and a division by zero
			if dist == 0 || f.Densities[j] == 0 {
				continue
			}
			dir := V.Scale(r, 1.0/dist)
			shared := (f.Pressures[i] + f.Pressures[j]) / 2.0
			pressureForce.Add(V.Scale(fluid.GradKernel.Grad(dist, &dir), shared/f.Densities[j]))

			if cfg.ViscosityCoefficient != 0 {
				dv := V.Sub(fluid.scratchVel[j], fluid.scratchVel[i])
				viscosityForce.Add(V.Scale(dv, cfg.ViscosityCoefficient*fluid.ViscKernel.F(dist)/f.Densities[j]))
			}
		}

		//a zero density particle is vacuum: contributes nothing, receives
		//nothing beyond gravity
		force := V.Vec2{}
		if f.Densities[i] != 0 {
			force = V.Add(viscosityForce, V.Scale(pressureForce, 1.0/f.Densities[i]))
		}
		if !cfg.UsePrediction {
			force.Add(cfg.Gravity)
		}

		vel := V.Add(fluid.scratchVel[i], V.Scale(force, dt))
		vel = V.ClampLength(vel, cfg.MaxSpeed)
		pos := V.Add(f.Positions[i], V.Scale(vel, dt))
		if !V.IsFinite(pos) {
			diverged.CompareAndSwap(-1, int64(i))
			return
		}
		f.Velocities[i] = vel
		f.Positions[i] = pos
		fluid.Domain.Resolve(cfg.Boundary, &f.Positions[i], &f.Velocities[i], f.Radii[i], f.Damping[i])
	}
}

//ApplyForce kicks every particle radially away from (or toward, for a
//negative strength) a world point, falling off with squared distance.
//Caller must not run it concurrently with Step.
func (fluid *SPHFluid) ApplyForce(at V.Vec2, strength float32) {
	f := fluid.Field
	for i := 0; i < f.Count; i++ {
		d := V.Sub(f.Positions[i], at)
		distSq := V.Dot(d, d)
		if distSq == 0 {
			continue
		}
		f.Velocities[i].Add(V.Scale(d, strength/distSq))
	}
}

//parallel shards [0,n) across the configured worker count. One worker, or a
//population smaller than the pool, runs inline.
func (fluid *SPHFluid) parallel(n int, task func(start, end int)) {
	workers := fluid.Config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers == 1 || n < workers {
		task(0, n)
		return
	}

	chunk := n / workers
	wg := sync.WaitGroup{}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		s := w * chunk
		e := s + chunk
		if w == workers-1 {
			e = n
		}
		go func(s, e int) {
			defer wg.Done()
			task(s, e)
		}(s, e)
	}
	wg.Wait()
}
