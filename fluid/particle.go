package fluid

//Particle state lives in parallel slices indexed by particle. Mass is not
//modeled, every particle weighs 1 and densities are plain kernel sums.
import (
	"fmt"
	"math"

	V "github.com/roberte777/fluid-sim/vector"
)

//ParticleField - per particle physical state. Population is fixed after
//Seed, particles are never created or destroyed by the solver.
type ParticleField struct {
	Count      int
	Positions  []V.Vec2
	Velocities []V.Vec2
	Predicted  []V.Vec2 //one step ahead positions, equals Positions when prediction is off
	Densities  []float32
	Pressures  []float32
	Radii      []float32
	Damping    []float32
}

//GridLayout describes the deterministic column-major starting grid.
type GridLayout struct {
	Count   int
	Columns int
	Spacing float32
	Radius  float32 //visual/collision half extent, also the grid offset
	Damping float32 //wall restitution in [0,1]
}

func DefaultLayout() GridLayout {
	return GridLayout{
		Count:   1500,
		Columns: 50,
		Spacing: 1.0,
		Radius:  0.35,
		Damping: 0.95,
	}
}

func (l *GridLayout) Validate() error {
	if l.Count <= 0 {
		return fmt.Errorf("fluid: particle count must be positive, got %d", l.Count)
	}
	if l.Columns <= 0 {
		return fmt.Errorf("fluid: column count must be positive, got %d", l.Columns)
	}
	if l.Damping < 0 || l.Damping > 1 {
		return fmt.Errorf("fluid: damping must be in [0,1], got %f", l.Damping)
	}
	return nil
}

//Seed lays the particles out column-major over a centered grid, offset by
//the starting radius, and stops once Count is reached. The last column may
//stay partial.
func Seed(layout GridLayout) *ParticleField {
	f := &ParticleField{Count: layout.Count}
	f.Positions = make([]V.Vec2, f.Count)
	f.Velocities = make([]V.Vec2, f.Count)
	f.Predicted = make([]V.Vec2, f.Count)
	f.Densities = make([]float32, f.Count)
	f.Pressures = make([]float32, f.Count)
	f.Radii = make([]float32, f.Count)
	f.Damping = make([]float32, f.Count)

	rows := int(math.Ceil(float64(layout.Count) / float64(layout.Columns)))
	totalWidth := float32(layout.Columns-1) * layout.Spacing
	totalHeight := float32(rows-1) * layout.Spacing
	startX := -totalWidth / 2.0
	startY := -totalHeight / 2.0

	for i := 0; i < layout.Columns; i++ {
		for j := 0; j < rows; j++ {
			index := i*rows + j
			if index >= layout.Count {
				break
			}
			f.Positions[index] = V.Vec2{
				startX + float32(i)*layout.Spacing + layout.Radius,
				startY + float32(j)*layout.Spacing + layout.Radius,
			}
			f.Predicted[index] = f.Positions[index]
			f.Radii[index] = layout.Radius
			f.Damping[index] = layout.Damping
		}
	}
	return f
}

//SetRadius broadcasts a UI radius edit to the whole population
func (f *ParticleField) SetRadius(radius float32) {
	for i := range f.Radii {
		f.Radii[i] = radius
	}
}

//SetDamping broadcasts a UI damping edit to the whole population
func (f *ParticleField) SetDamping(damping float32) {
	for i := range f.Damping {
		f.Damping[i] = damping
	}
}

//Snapshot - read only per tick view for the render/UI collaborators.
type Snapshot struct {
	Positions []V.Vec2
	Radii     []float32
	Width     float32
	Height    float32
}

//CopyInto refreshes dst from the field, reusing its slices when sized
func (f *ParticleField) CopyInto(dst *Snapshot, dom Domain) {
	if len(dst.Positions) != f.Count {
		dst.Positions = make([]V.Vec2, f.Count)
		dst.Radii = make([]float32, f.Count)
	}
	copy(dst.Positions, f.Positions)
	copy(dst.Radii, f.Radii)
	dst.Width = dom.Width
	dst.Height = dom.Height
}
