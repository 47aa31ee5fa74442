package fluid

import (
	"fmt"
	"math"

	V "github.com/roberte777/fluid-sim/vector"
)

//KernelType selects the density estimator. The reference solver used the
//quadratic spiky kernel, poly6 is the textbook alternative.
type KernelType int

const (
	KernelSpiky KernelType = iota
	KernelPoly6
)

//BoundaryPolicy selects how wall penetration is resolved.
//BoundaryCorrect reflects the penetration depth back into the domain,
//BoundaryClamp discards it and pins the particle to the wall.
type BoundaryPolicy int

const (
	BoundaryCorrect BoundaryPolicy = iota
	BoundaryClamp
)

//SimConfig holds the per-tick immutable scalar parameters of the solver.
//Validated once at construction, the tick loop performs no re-validation.
type SimConfig struct {
	GasConstant          float32
	RestDensity          float32
	SmoothingRadius      float32
	Gravity              V.Vec2
	ViscosityCoefficient float32
	TimeStep             float32
	MaxSpeed             float32 //0 disables the speed clamp
	DensityKernel        KernelType
	Boundary             BoundaryPolicy
	UsePrediction        bool
	Workers              int //0 sizes the pool from runtime.NumCPU
}

//DefaultConfig mirrors the reference tuning
func DefaultConfig() SimConfig {
	return SimConfig{
		GasConstant:          500.0,
		RestDensity:          3.0,
		SmoothingRadius:      3.0,
		Gravity:              V.Vec2{0.0, -9.8},
		ViscosityCoefficient: 0.0,
		TimeStep:             1.0 / 60.0,
		MaxSpeed:             0.0,
		DensityKernel:        KernelSpiky,
		Boundary:             BoundaryCorrect,
		UsePrediction:        true,
		Workers:              1,
	}
}

func (c *SimConfig) Validate() error {
	if !(c.SmoothingRadius > 0) || math.IsInf(float64(c.SmoothingRadius), 0) {
		return fmt.Errorf("fluid: smoothing radius must be positive and finite, got %f", c.SmoothingRadius)
	}
	if !(c.TimeStep > 0) {
		return fmt.Errorf("fluid: time step must be positive, got %f", c.TimeStep)
	}
	if c.MaxSpeed < 0 {
		return fmt.Errorf("fluid: max speed must not be negative, got %f", c.MaxSpeed)
	}
	if c.ViscosityCoefficient < 0 {
		return fmt.Errorf("fluid: viscosity coefficient must not be negative, got %f", c.ViscosityCoefficient)
	}
	if c.Workers < 0 {
		return fmt.Errorf("fluid: worker count must not be negative, got %d", c.Workers)
	}
	switch c.DensityKernel {
	case KernelSpiky, KernelPoly6:
	default:
		return fmt.Errorf("fluid: unknown density kernel %d", c.DensityKernel)
	}
	switch c.Boundary {
	case BoundaryCorrect, BoundaryClamp:
	default:
		return fmt.Errorf("fluid: unknown boundary policy %d", c.Boundary)
	}
	return nil
}
