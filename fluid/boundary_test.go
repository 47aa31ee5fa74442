package fluid

import (
	"testing"

	V "github.com/roberte777/fluid-sim/vector"
)

func TestBoundaryReflect(t *testing.T) {
	dom := Domain{Width: 10, Height: 10}

	//particle past the +x wall by 0.5 with inbound velocity, damping 0.5
	pos := V.Vec2{5.5, 0}
	vel := V.Vec2{-5, 0}
	dom.Resolve(BoundaryCorrect, &pos, &vel, 0, 0.5)
	if pos[0] != 4.5 {
		t.Errorf("correcting reflection x = %f want 4.5", pos[0])
	}
	if vel[0] != 2.5 {
		t.Errorf("reflected velocity x = %f want 2.5", vel[0])
	}

	pos = V.Vec2{5.5, 0}
	vel = V.Vec2{-5, 0}
	dom.Resolve(BoundaryClamp, &pos, &vel, 0, 0.5)
	if pos[0] != 5.0 {
		t.Errorf("clamped x = %f want 5.0", pos[0])
	}
	if vel[0] != 2.5 {
		t.Errorf("reflected velocity x = %f want 2.5", vel[0])
	}
}

func TestBoundaryRadiusShrinksExtent(t *testing.T) {
	dom := Domain{Width: 10, Height: 10}

	pos := V.Vec2{4.8, 0}
	vel := V.Vec2{1, 0}
	dom.Resolve(BoundaryClamp, &pos, &vel, 0.5, 1.0)
	if pos[0] != 4.5 {
		t.Errorf("half extent must subtract the radius, x = %f", pos[0])
	}
	if vel[0] != -1 {
		t.Errorf("velocity x = %f want -1", vel[0])
	}
}

func TestBoundaryAxesIndependent(t *testing.T) {
	dom := Domain{Width: 10, Height: 20}

	pos := V.Vec2{-5.25, 10.5}
	vel := V.Vec2{-2, 4}
	dom.Resolve(BoundaryCorrect, &pos, &vel, 0, 1.0)
	if pos[0] != -4.75 || pos[1] != 9.5 {
		t.Errorf("corner reflection got %f,%f", pos[0], pos[1])
	}
	if vel[0] != 2 || vel[1] != -4 {
		t.Errorf("corner velocity got %f,%f", vel[0], vel[1])
	}
}

func TestBoundaryInsideUntouched(t *testing.T) {
	dom := Domain{Width: 10, Height: 10}

	pos := V.Vec2{1, -2}
	vel := V.Vec2{3, 4}
	dom.Resolve(BoundaryCorrect, &pos, &vel, 0.35, 0.95)
	if !V.VecEquals(pos, V.Vec2{1, -2}) || !V.VecEquals(vel, V.Vec2{3, 4}) {
		t.Errorf("interior particle must pass through untouched")
	}
}
