package engine

import (
	"math"

	"github.com/san-kum/orbital/internal/body"
	"github.com/san-kum/orbital/internal/vec"
)

const (
	DefaultG          = 800.0
	DefaultSoftening  = 8.0
	DefaultSubsteps   = 4
	DefaultMaxFrameDt = 0.05
	DefaultMaxTrail   = 120

	// mergeTolerance scales the sum of radii so bodies must visibly
	// overlap before a merge triggers.
	mergeTolerance = 0.6

	// starPromotionMass is the merged mass above which a non-star result
	// adopts the star visual preset.
	starPromotionMass = 500.0
)

// Options configures a new Engine. Zero values take the documented defaults.
type Options struct {
	G          float64
	Softening  float64
	Substeps   int
	MaxFrameDt float64
	MaxTrail   int
}

// Engine owns the body set and the simulation clock. It is single-threaded:
// all methods must be called from one goroutine, typically the render loop.
// The exported tunables may be adjusted between calls to Step.
type Engine struct {
	G          float64
	Softening  float64
	Substeps   int
	MaxFrameDt float64
	MaxTrail   int
	Paused     bool

	bodies  []*body.Body
	elapsed float64
}

func New(opts Options) *Engine {
	e := &Engine{
		G:          opts.G,
		Softening:  opts.Softening,
		Substeps:   opts.Substeps,
		MaxFrameDt: opts.MaxFrameDt,
		MaxTrail:   opts.MaxTrail,
	}
	if e.G == 0 {
		e.G = DefaultG
	}
	if e.Softening == 0 {
		e.Softening = DefaultSoftening
	}
	if e.Substeps <= 0 {
		e.Substeps = DefaultSubsteps
	}
	if e.MaxFrameDt == 0 {
		e.MaxFrameDt = DefaultMaxFrameDt
	}
	if e.MaxTrail == 0 {
		e.MaxTrail = DefaultMaxTrail
	}
	return e
}

// Bodies returns the live body set in insertion order. Callers must treat
// the slice and its bodies as read-only.
func (e *Engine) Bodies() []*body.Body { return e.bodies }

// Elapsed returns the simulated time advanced so far.
func (e *Engine) Elapsed() float64 { return e.elapsed }

// AddBody creates a body of the given kind and appends it to the set.
// An unknown kind is a configuration error and fails fast.
func (e *Engine) AddBody(kind body.Kind, pos, vel vec.Vec2) (*body.Body, error) {
	b, err := body.New(kind, pos, vel)
	if err != nil {
		return nil, err
	}
	e.bodies = append(e.bodies, b)
	return b, nil
}

// Clear drops all bodies and resets the clock. Tunables are untouched.
func (e *Engine) Clear() {
	e.bodies = e.bodies[:0]
	e.elapsed = 0
}

// OrbitalSpeed returns the speed of a circular orbit at distance r around a
// point mass m under the engine's current gravitational constant. r must be
// positive; the caller owns that check.
func (e *Engine) OrbitalSpeed(m, r float64) float64 {
	return math.Sqrt(e.G * m / r)
}

// DemoScene resets the engine to a deterministic starting configuration:
// one star at the origin and four satellites on circular orbits.
func (e *Engine) DemoScene() {
	e.Clear()
	e.AddBody(body.Star, vec.Zero, vec.Zero)

	star, _ := body.PresetFor(body.Star)
	sats := []struct {
		kind   body.Kind
		radius float64
		angle  float64
	}{
		{body.Planet, 120, 0},
		{body.Planet, 200, 2.1},
		{body.Planet, 300, 4.2},
		{body.Moon, 380, 5.5},
	}
	for _, s := range sats {
		pos := vec.New(s.radius*math.Cos(s.angle), s.radius*math.Sin(s.angle))
		v := e.OrbitalSpeed(star.Mass, s.radius)
		vel := vec.New(-math.Sin(s.angle)*v, math.Cos(s.angle)*v)
		e.AddBody(s.kind, pos, vel)
	}
}

// Step advances the simulation by one visual frame. frameDelta is clamped
// to MaxFrameDt before scaling so a stalled caller cannot inject one huge,
// tunneling timestep. The frame is subdivided into Substeps Velocity Verlet
// sub-intervals, then trails and ages update once, then a single collision
// pass runs, then the clock advances by the scaled delta.
func (e *Engine) Step(frameDelta, timeScale float64) {
	if e.Paused {
		return
	}
	dt := math.Min(frameDelta, e.MaxFrameDt) * timeScale
	h := dt / float64(e.Substeps)

	// Accelerations may be stale after a previous frame's merges.
	e.accelerate()
	for s := 0; s < e.Substeps; s++ {
		e.verletSubstep(h)
	}

	for _, b := range e.bodies {
		b.PushTrail(e.MaxTrail)
		b.Age++
	}

	e.mergePass()
	e.elapsed += dt
}

// verletSubstep runs one kick-drift-kick update over interval h. The order
// half-kick, drift, force recompute, half-kick is what makes the scheme
// symplectic and must not be rearranged.
func (e *Engine) verletSubstep(h float64) {
	half := 0.5 * h
	for _, b := range e.bodies {
		b.Vel = b.Vel.Add(b.Acc.Scale(half))
		b.Pos = b.Pos.Add(b.Vel.Scale(h))
	}
	e.accelerate()
	for _, b := range e.bodies {
		b.Vel = b.Vel.Add(b.Acc.Scale(half))
	}
}

// accelerate recomputes every body's acceleration from current positions.
// Pairwise softened gravity, accumulated with equal and opposite signs.
func (e *Engine) accelerate() {
	for _, b := range e.bodies {
		b.Acc = vec.Zero
	}
	eps2 := e.Softening * e.Softening
	n := len(e.bodies)
	for i := 0; i < n; i++ {
		a := e.bodies[i]
		for j := i + 1; j < n; j++ {
			b := e.bodies[j]
			d2 := vec.DistSq(a.Pos, b.Pos) + eps2
			dir := b.Pos.Sub(a.Pos).Normalized()
			f := e.G / d2
			a.Acc = a.Acc.Add(dir.Scale(f * b.Mass))
			b.Acc = b.Acc.Sub(dir.Scale(f * a.Mass))
		}
	}
}

// mergePass scans unordered pairs in index order and merges any pair whose
// centers sit closer than mergeTolerance times the sum of their radii. The
// scan reads live, current radius and mass, so a body that grows from one
// merge can absorb further bodies later in the same pass. Dead bodies are
// skipped immediately and compacted out at the end, survivors keeping
// their order.
func (e *Engine) mergePass() {
	n := len(e.bodies)
	for i := 0; i < n; i++ {
		a := e.bodies[i]
		if !a.Alive {
			continue
		}
		for j := i + 1; j < n; j++ {
			b := e.bodies[j]
			if !b.Alive {
				continue
			}
			limit := mergeTolerance * (a.Radius + b.Radius)
			if vec.DistSq(a.Pos, b.Pos) >= limit*limit {
				continue
			}
			big, small := a, b
			if b.Mass > a.Mass {
				big, small = b, a
			}
			merge(big, small)
			if !a.Alive {
				break
			}
		}
	}
	e.compact()
}

// merge folds small into big: momentum-weighted velocity, mass-weighted
// position, exact mass sum, constant-density radius growth, and promotion
// to the star preset past the mass threshold.
func merge(big, small *body.Body) {
	total := big.Mass + small.Mass
	big.Vel = big.Vel.Scale(big.Mass).Add(small.Vel.Scale(small.Mass)).Scale(1 / total)
	big.Pos = big.Pos.Scale(big.Mass).Add(small.Pos.Scale(small.Mass)).Scale(1 / total)
	big.Radius *= math.Cbrt(total / big.Mass)
	big.Mass = total
	if big.Kind != body.Star && total > starPromotionMass {
		p, _ := body.PresetFor(body.Star)
		big.Kind = body.Star
		big.Color = p.Color
	}
	small.Alive = false
}

func (e *Engine) compact() {
	live := e.bodies[:0]
	for _, b := range e.bodies {
		if b.Alive {
			live = append(live, b)
		}
	}
	// Drop trailing references so dead bodies can be collected.
	for i := len(live); i < len(e.bodies); i++ {
		e.bodies[i] = nil
	}
	e.bodies = live
}
