package metrics

import (
	"testing"

	"github.com/san-kum/orbital/internal/body"
	"github.com/san-kum/orbital/internal/engine"
	"github.com/san-kum/orbital/internal/vec"
)

func TestEnergyDriftStaysSmallOnOrbit(t *testing.T) {
	e := engine.New(engine.Options{})
	star, _ := e.AddBody(body.Star, vec.Zero, vec.Zero)
	v := e.OrbitalSpeed(star.Mass, 200)
	e.AddBody(body.Planet, vec.New(200, 0), vec.New(0, v))

	m := NewEnergyDrift()
	for i := 0; i < 300; i++ {
		e.Step(0.016, 1)
		m.Observe(e, e.Elapsed())
	}

	if m.Value() > 0.05 {
		t.Errorf("energy drift %v over a stable orbit, want < 5%%", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset did not zero the drift")
	}
}

func TestEnergyDriftReanchorsAfterMerge(t *testing.T) {
	e := engine.New(engine.Options{})
	e.AddBody(body.Planet, vec.New(0, 0), vec.Zero)
	e.AddBody(body.Planet, vec.New(4, 0), vec.Zero)

	m := NewEnergyDrift()
	m.Observe(e, 0)
	e.Step(0.001, 1) // merges the pair
	m.Observe(e, e.Elapsed())

	// The baseline moved with the merge, so the drift against the new
	// single-body system stays tiny.
	if m.Value() > 1e-6 {
		t.Errorf("drift %v after re-anchor, want ~0", m.Value())
	}
}

func TestMomentumDrift(t *testing.T) {
	e := engine.New(engine.Options{})
	e.AddBody(body.Planet, vec.New(-60, 0), vec.New(3, 1))
	e.AddBody(body.Planet, vec.New(60, 0), vec.New(-3, -1))

	m := NewMomentumDrift()
	for i := 0; i < 100; i++ {
		e.Step(0.016, 1)
		m.Observe(e, e.Elapsed())
	}

	if m.Value() > 1e-6 {
		t.Errorf("momentum drift %v, want ~0", m.Value())
	}
}

func TestBodyCount(t *testing.T) {
	e := engine.New(engine.Options{})
	e.DemoScene()

	m := NewBodyCount()
	m.Observe(e, 0)
	if m.Value() != 5 {
		t.Errorf("body count = %v, want 5", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset did not zero the count")
	}
}
