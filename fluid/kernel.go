package fluid

import V "github.com/roberte777/fluid-sim/vector"

const PI = 3.141592653589

//Kernel Interface for Particle Integration - Kernels return Relative Weight of Integrator
type Kernel interface {
	F(distance float32) float32                 //F stands for inline () Function operator since we can't operator overload
	O1D(distance float32) float32               //First Order Derivative of Estimator
	O2D(distance float32) float32               //Second Order Derivative of Estimator
	Grad(distance float32, dir *V.Vec2) V.Vec2  //Gradient Vector given direction from the neighbor to center
}

//Poly6Kernel - 2D density estimator (h^2 - d^2)^3 normalized by 4/(pi*h^8).
//Powers of H are precomputed and held in an array.
type Poly6Kernel struct {
	H [3]float32 //h, h^2, h^8
	C float32
}

//SpikyKernel - quadratic spike (h - d)^2 normalized by 6/(pi*h^4). Its first
//derivative is the pressure gradient estimator, normalized by 12/(pi*h^4).
type SpikyKernel struct {
	H  [2]float32 //h, h^4
	C  float32
	C1 float32
}

//------------------------------------------------------------------------------
// Poly6 Kernel Operators

//All cutoffs are strict d < h. The negated comparison form also maps a NaN
//distance to 0 instead of evaluating the polynomial on garbage.
func (K *Poly6Kernel) F(distance float32) float32 {
	if !(distance < K.H[0]) {
		return 0.0
	}
	x := K.H[1] - distance*distance
	return x * x * x * K.C
}

func (K *Poly6Kernel) O1D(distance float32) float32 {
	if !(distance < K.H[0]) {
		return 0.0
	}
	x := K.H[1] - distance*distance
	return -6.0 * distance * x * x * K.C
}

func (K *Poly6Kernel) O2D(distance float32) float32 {
	if !(distance < K.H[0]) {
		return 0.0
	}
	d2 := distance * distance
	x := K.H[1] - d2
	return 6.0 * K.C * x * (5.0*d2 - K.H[1])
}

func (K *Poly6Kernel) Grad(distance float32, dir *V.Vec2) V.Vec2 {
	return V.Scale(*dir, -K.O1D(distance))
}

//------------------------------------------------------------------------------
// Spiky Kernel Operators

func (K *SpikyKernel) F(distance float32) float32 {
	if !(distance < K.H[0]) {
		return 0.0
	}
	x := K.H[0] - distance
	return x * x * K.C
}

//O1D is negative inside the support, the repulsive sign comes from Grad
func (K *SpikyKernel) O1D(distance float32) float32 {
	if !(distance < K.H[0]) {
		return 0.0
	}
	return (distance - K.H[0]) * K.C1
}

func (K *SpikyKernel) O2D(distance float32) float32 {
	if !(distance < K.H[0]) {
		return 0.0
	}
	return K.C1
}

func (K *SpikyKernel) Grad(distance float32, dir *V.Vec2) V.Vec2 {
	return V.Scale(*dir, -K.O1D(distance))
}

////////////ALLOCATION FUNCTIONS //////////////

//Kernels must never be allocated with h <= 0, NewSPHFluid validates first.
func InitPoly6(radius float32) Poly6Kernel {
	P := Poly6Kernel{}
	h2 := radius * radius
	h8 := h2 * h2 * h2 * h2
	P.H[0] = radius
	P.H[1] = h2
	P.H[2] = h8
	P.C = 4.0 / (PI * h8)
	return P
}

func InitSpiky(radius float32) SpikyKernel {
	S := SpikyKernel{}
	h4 := radius * radius * radius * radius
	S.H[0] = radius
	S.H[1] = h4
	S.C = 6.0 / (PI * h4)
	S.C1 = 12.0 / (PI * h4)
	return S
}
