package body

import (
	"fmt"

	"github.com/san-kum/orbital/internal/vec"
)

// Kind classifies a body and selects its creation preset.
type Kind string

const (
	Star   Kind = "star"
	Planet Kind = "planet"
	Moon   Kind = "moon"
)

// Preset holds the creation-time attributes for a body kind.
type Preset struct {
	Mass   float64
	Radius float64
	Color  string
}

var presets = map[Kind]Preset{
	Star:   {Mass: 3000, Radius: 16, Color: "#ffcc33"},
	Planet: {Mass: 12, Radius: 5, Color: "#44aaff"},
	Moon:   {Mass: 1.5, Radius: 2.5, Color: "#bbbbbb"},
}

// PresetFor returns the preset for kind, or an error for an unknown kind.
// An unknown kind is a configuration mistake, not a runtime condition.
func PresetFor(kind Kind) (Preset, error) {
	p, ok := presets[kind]
	if !ok {
		return Preset{}, fmt.Errorf("unknown body kind: %q", kind)
	}
	return p, nil
}

// Kinds lists the known body kinds.
func Kinds() []Kind {
	return []Kind{Star, Planet, Moon}
}

// Body is one point mass in the simulation. Position, velocity and
// acceleration are updated every integration substep; trail and age once
// per visual frame. A body marked dead is compacted out of the engine's
// set at the end of the step that killed it.
type Body struct {
	Kind   Kind
	Mass   float64
	Radius float64
	Color  string

	Pos vec.Vec2
	Vel vec.Vec2
	Acc vec.Vec2

	Trail []vec.Vec2
	Age   int
	Alive bool
}

// New creates a live body of the given kind at pos with velocity vel.
func New(kind Kind, pos, vel vec.Vec2) (*Body, error) {
	p, err := PresetFor(kind)
	if err != nil {
		return nil, err
	}
	return &Body{
		Kind:   kind,
		Mass:   p.Mass,
		Radius: p.Radius,
		Color:  p.Color,
		Pos:    pos,
		Vel:    vel,
		Alive:  true,
	}, nil
}

// PushTrail appends the current position to the trail, evicting the oldest
// entry once the trail exceeds maxLen. maxLen <= 0 keeps the trail empty.
func (b *Body) PushTrail(maxLen int) {
	if maxLen <= 0 {
		b.Trail = b.Trail[:0]
		return
	}
	b.Trail = append(b.Trail, b.Pos)
	if len(b.Trail) > maxLen {
		b.Trail = b.Trail[len(b.Trail)-maxLen:]
	}
}
