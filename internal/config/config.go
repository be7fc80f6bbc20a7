package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbital/internal/body"
	"github.com/san-kum/orbital/internal/engine"
	"github.com/san-kum/orbital/internal/vec"
)

const (
	DefaultDt        = 1.0 / 60.0
	DefaultDuration  = 30.0
	DefaultTimeScale = 1.0
)

// Config describes one simulation setup: engine tunables plus the initial
// body layout. Zero-valued tunables take the engine defaults.
type Config struct {
	G          float64      `yaml:"g"`
	Softening  float64      `yaml:"softening"`
	Substeps   int          `yaml:"substeps"`
	MaxFrameDt float64      `yaml:"max_frame_dt"`
	Trail      int          `yaml:"trail"`
	Dt         float64      `yaml:"dt"`
	Duration   float64      `yaml:"duration"`
	TimeScale  float64      `yaml:"time_scale"`
	AutoOrbit  bool         `yaml:"auto_orbit"`
	Bodies     []BodyConfig `yaml:"bodies"`
}

// BodyConfig places one body. With AutoOrbit set on the config, bodies
// after the first that have zero velocity get a tangential circular-orbit
// velocity around the first body.
type BodyConfig struct {
	Kind string     `yaml:"kind"`
	Pos  [2]float64 `yaml:"pos"`
	Vel  [2]float64 `yaml:"vel"`
}

func DefaultConfig() *Config {
	return &Config{
		G:          engine.DefaultG,
		Softening:  engine.DefaultSoftening,
		Substeps:   engine.DefaultSubsteps,
		MaxFrameDt: engine.DefaultMaxFrameDt,
		Trail:      engine.DefaultMaxTrail,
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		TimeScale:  DefaultTimeScale,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Build constructs an engine from the config and populates it with the
// configured bodies. An unknown body kind fails the whole build. An empty
// body list falls back to the demo scene.
func (c *Config) Build() (*engine.Engine, error) {
	e := engine.New(engine.Options{
		G:          c.G,
		Softening:  c.Softening,
		Substeps:   c.Substeps,
		MaxFrameDt: c.MaxFrameDt,
		MaxTrail:   c.Trail,
	})
	if len(c.Bodies) == 0 {
		e.DemoScene()
		return e, nil
	}
	for i, bc := range c.Bodies {
		pos := vec.New(bc.Pos[0], bc.Pos[1])
		vel := vec.New(bc.Vel[0], bc.Vel[1])
		if c.AutoOrbit && i > 0 && vel == vec.Zero {
			vel = orbitVelocity(e, c.Bodies[0], pos)
		}
		if _, err := e.AddBody(body.Kind(bc.Kind), pos, vel); err != nil {
			return nil, fmt.Errorf("body %d: %w", i, err)
		}
	}
	return e, nil
}

// orbitVelocity returns the tangential velocity for a circular orbit of pos
// around the central body described by cc.
func orbitVelocity(e *engine.Engine, cc BodyConfig, pos vec.Vec2) vec.Vec2 {
	p, err := body.PresetFor(body.Kind(cc.Kind))
	if err != nil {
		return vec.Zero
	}
	center := vec.New(cc.Pos[0], cc.Pos[1])
	rel := pos.Sub(center)
	r := rel.Norm()
	if r == 0 {
		return vec.Zero
	}
	v := e.OrbitalSpeed(p.Mass, r)
	angle := math.Atan2(rel.Y, rel.X)
	return vec.New(-math.Sin(angle)*v, math.Cos(angle)*v)
}
