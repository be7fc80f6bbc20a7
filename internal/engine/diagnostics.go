package engine

import (
	"math"

	"github.com/san-kum/orbital/internal/vec"
)

// Energy returns the total mechanical energy of the live set: kinetic plus
// softened pairwise potential. Softening matches the force law, so the
// value is the conserved quantity of the integrated system.
func (e *Engine) Energy() float64 {
	ke := 0.0
	pe := 0.0
	eps2 := e.Softening * e.Softening
	n := len(e.bodies)
	for i := 0; i < n; i++ {
		a := e.bodies[i]
		ke += 0.5 * a.Mass * a.Vel.NormSq()
		for j := i + 1; j < n; j++ {
			b := e.bodies[j]
			r := math.Sqrt(vec.DistSq(a.Pos, b.Pos) + eps2)
			pe -= e.G * a.Mass * b.Mass / r
		}
	}
	return ke + pe
}

// Momentum returns the total linear momentum of the live set.
func (e *Engine) Momentum() vec.Vec2 {
	p := vec.Zero
	for _, b := range e.bodies {
		p = p.Add(b.Vel.Scale(b.Mass))
	}
	return p
}

// AngularMomentum returns the total angular momentum about the origin.
func (e *Engine) AngularMomentum() float64 {
	l := 0.0
	for _, b := range e.bodies {
		l += b.Mass * b.Pos.Cross(b.Vel)
	}
	return l
}
