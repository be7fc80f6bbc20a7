package metrics

import "github.com/san-kum/orbital/internal/engine"

// Metric observes engine state once per frame during a headless run.
type Metric interface {
	Name() string
	Observe(e *engine.Engine, t float64)
	Value() float64
	Reset()
}
