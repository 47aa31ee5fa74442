package vector

import (
	"math"
	"testing"
)

//Vector module testing
func TestVecAdd(t *testing.T) {
	var x = Vec2{1.0, 1.0}
	var y = Vec2{1, 2}
	var eq = Vec2{2, 3}

	if !VecEquals(*x.Add(y), eq) {
		t.Errorf("Vector Addition failed %f", x[0])
	}
}

func TestVecDot(t *testing.T) {
	var x = Vec2{1, 2}
	var y = Vec2{3, 1}
	var eq = float32(5.0)

	if Dot(x, y) != eq || x.Dot(y) != eq {
		t.Errorf("Vector Dot failed %f", x[0])
	}
}

func TestVector(t *testing.T) {
	a := Vec2{2, 2}

	if !VecEquals(Scale(a, 2.0), Vec2{4.0, 4.0}) {
		t.Error()
	}
	if !VecEquals(Add(a, Vec2{2.0, 2.0}), Vec2{4.0, 4.0}) {
		t.Error()
	}
	if !VecEquals(Sub(a, Vec2{1.0, 2.0}), Vec2{1.0, 0.0}) {
		t.Error()
	}

	if Length(a) != float32(math.Sqrt(8)) {
		t.Errorf("Error Length")
	}

	n := Normalize(Vec2{3, 4})
	if !isEpsilon(n.Length(), 1.0) {
		t.Errorf("Normalized vector error: %f, %f", n[0], n[1])
	}

	if !VecEquals(Normalize(Vec2{}), Vec2{}) {
		t.Errorf("Zero vector normalization must stay zero")
	}

	p := Vec2{1, -1}
	o := Vec2{0, 1}
	r := Reflect(o, p)
	if !VecEquals(r, Vec2{1, 1}) {
		t.Errorf("Error Reflection %f, %f", r[0], r[1])
	}

	d := Vec2{0, 0}
	if d.Distance(Vec2{3, 4}) != 5.0 {
		t.Errorf("Error Distance")
	}
}

func TestClampLength(t *testing.T) {
	v := ClampLength(Vec2{3, 4}, 2.5)
	if !isEpsilon(Length(v), 2.5) {
		t.Errorf("Clamped length %f", Length(v))
	}

	w := ClampLength(Vec2{1, 0}, 2.5)
	if !VecEquals(w, Vec2{1, 0}) {
		t.Errorf("Vector under the limit must pass through")
	}

	u := ClampLength(Vec2{3, 4}, 0)
	if !VecEquals(u, Vec2{3, 4}) {
		t.Errorf("Zero max disables the clamp")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(Vec2{1, -2}) {
		t.Error()
	}
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	if IsFinite(Vec2{nan, 0}) || IsFinite(Vec2{0, inf}) {
		t.Error()
	}
}

func BenchmarkVecOp(b *testing.B) {
	p := Vec2{1, -1}
	o := Vec2{0, 1}

	for i := 0; i < b.N; i++ {
		r := p.Add(o)
		r.Scale(0.5)
		r.Sub(o)
	}
}
