package vector

import (
	"fmt"
	"math"
)

//2D vector math for the planar fluid solver. All free functions are
//immutable, pointer-receiver methods mutate in place.

//Vec2 Default Vector Implementation
type Vec2 [2]float32

func NewVec2(a float32) *Vec2 {
	return &Vec2{a, a}
}

func Abs(a Vec2) Vec2 {
	a[0] = float32(math.Abs(float64(a[0])))
	a[1] = float32(math.Abs(float64(a[1])))
	return a
}

func Dot(a Vec2, b Vec2) float32 {
	return a[0]*b[0] + a[1]*b[1]
}

func (v *Vec2) Dot(b Vec2) float32 {
	return v[0]*b[0] + v[1]*b[1]
}

//Scale - Scales vector by scalar a
func Scale(v Vec2, a float32) Vec2 {
	return Vec2{v[0] * a, v[1] * a}
}

func (v *Vec2) Scale(a float32) *Vec2 {
	v[0] *= a
	v[1] *= a
	return v
}

func (v *Vec2) Clear() *Vec2 {
	v[0] = 0
	v[1] = 0
	return v
}

func Add(v Vec2, b Vec2) Vec2 {
	return Vec2{v[0] + b[0], v[1] + b[1]}
}

func Sub(v Vec2, b Vec2) Vec2 {
	return Vec2{v[0] - b[0], v[1] - b[1]}
}

//Add - Mutate
func (v *Vec2) Add(b Vec2) *Vec2 {
	v[0] += b[0]
	v[1] += b[1]
	return v
}

func (v *Vec2) Sub(b Vec2) *Vec2 {
	v[0] -= b[0]
	v[1] -= b[1]
	return v
}

func Length(a Vec2) float32 {
	return float32(math.Sqrt(float64(a[0]*a[0] + a[1]*a[1])))
}

func (v *Vec2) Length() float32 {
	return float32(math.Sqrt(float64(v[0]*v[0] + v[1]*v[1])))
}

//Normalize - returns the zero vector for a zero length input, callers
//guard the singular case themselves when it matters
func Normalize(a Vec2) Vec2 {
	v := Vec2{}
	l := a.Length()
	if l != 0 {
		v[0] = a[0] / l
		v[1] = a[1] / l
	}
	return v
}

//ClampLength - rescales v onto the disc of radius max when it exceeds it
func ClampLength(v Vec2, max float32) Vec2 {
	l := Length(v)
	if max > 0 && l > max {
		return Scale(v, max/l)
	}
	return v
}

//Reflect v about the plane normal n
func Reflect(n Vec2, v Vec2) Vec2 {
	b := Scale(n, (Dot(n, v)*2.0)/(n.Length()*n.Length()))
	return Sub(v, b)
}

func (v *Vec2) Distance(a Vec2) float32 {
	return Length(Sub(*v, a))
}

func VecEquals(v Vec2, a Vec2) bool {
	return v[0] == a[0] && v[1] == a[1]
}

//IsFinite reports whether both components are real numbers
func IsFinite(v Vec2) bool {
	x := float64(v[0])
	y := float64(v[1])
	return !math.IsNaN(x) && !math.IsNaN(y) && !math.IsInf(x, 0) && !math.IsInf(y, 0)
}

func isEpsilon(a float32, b float32) bool {
	return math.Abs(float64(b-a)) <= 0.00000019
}

func (a *Vec2) String() string {
	return fmt.Sprintf("[ %f, %f]", a[0], a[1])
}
