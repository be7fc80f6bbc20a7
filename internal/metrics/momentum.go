package metrics

import (
	"math"

	"github.com/san-kum/orbital/internal/engine"
)

// MomentumDrift tracks the maximum absolute deviation of total linear
// momentum magnitude from its first observation. Gravity and merging both
// conserve momentum, so this should stay near floating-point noise.
type MomentumDrift struct {
	initial  float64
	maxDrift float64
	samples  int
}

func NewMomentumDrift() *MomentumDrift { return &MomentumDrift{} }

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(e *engine.Engine, t float64) {
	p := e.Momentum().Norm()
	if m.samples == 0 {
		m.initial = p
	}
	m.samples++
	m.maxDrift = math.Max(m.maxDrift, math.Abs(p-m.initial))
}

func (m *MomentumDrift) Value() float64 { return m.maxDrift }

func (m *MomentumDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}

// BodyCount reports the number of live bodies at the last observation.
// Watching it fall is the cheapest way to count merges in a run.
type BodyCount struct {
	count int
}

func NewBodyCount() *BodyCount { return &BodyCount{} }

func (m *BodyCount) Name() string { return "bodies" }

func (m *BodyCount) Observe(e *engine.Engine, t float64) {
	m.count = len(e.Bodies())
}

func (m *BodyCount) Value() float64 { return float64(m.count) }

func (m *BodyCount) Reset() { m.count = 0 }
