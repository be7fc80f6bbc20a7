package metrics

import (
	"math"

	"github.com/san-kum/orbital/internal/engine"
)

// EnergyDrift tracks the maximum relative deviation of total energy from
// its value at the first observation. A symplectic step keeps this small
// over long runs; merges move the baseline, so the drift is re-anchored
// whenever the body count changes.
type EnergyDrift struct {
	initial  float64
	maxDrift float64
	bodies   int
	samples  int
}

func NewEnergyDrift() *EnergyDrift { return &EnergyDrift{} }

func (m *EnergyDrift) Name() string { return "energy_drift" }

func (m *EnergyDrift) Observe(e *engine.Engine, t float64) {
	energy := e.Energy()
	n := len(e.Bodies())
	if m.samples == 0 || n != m.bodies {
		m.initial = energy
		m.bodies = n
	}
	m.samples++
	if m.initial != 0 {
		drift := math.Abs(energy-m.initial) / math.Abs(m.initial)
		m.maxDrift = math.Max(m.maxDrift, drift)
	}
}

func (m *EnergyDrift) Value() float64 { return m.maxDrift }

func (m *EnergyDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.bodies = 0
	m.samples = 0
}
