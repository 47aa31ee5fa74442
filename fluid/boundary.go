package fluid

import (
	"fmt"
	"math"

	V "github.com/roberte777/fluid-sim/vector"
)

//Domain - axis aligned rectangle centered at the origin. Mutated only by
//external configuration between ticks, read by the boundary pass and the
//initial grid layout.
type Domain struct {
	Width  float32
	Height float32
}

func (d *Domain) Validate() error {
	if !(d.Width > 0) || !(d.Height > 0) {
		return fmt.Errorf("fluid: domain extents must be positive, got %fx%f", d.Width, d.Height)
	}
	return nil
}

//Resolve corrects wall penetration on both axes independently and reflects
//the crossed velocity component scaled by the damping factor. Order of the
//axes does not matter, there is no corner coupling.
func (d Domain) Resolve(policy BoundaryPolicy, pos *V.Vec2, vel *V.Vec2, radius float32, damping float32) {
	half := V.Vec2{d.Width/2 - radius, d.Height/2 - radius}
	for axis := 0; axis < 2; axis++ {
		mag := float32(math.Abs(float64(pos[axis])))
		if mag <= half[axis] {
			continue
		}
		sign := float32(1.0)
		if pos[axis] < 0 {
			sign = -1.0
		}
		switch policy {
		case BoundaryClamp:
			pos[axis] = half[axis] * sign
		default:
			//penetration correcting reflection
			penetration := mag - half[axis]
			pos[axis] = (half[axis] - penetration) * sign
		}
		vel[axis] *= -damping
	}
}
