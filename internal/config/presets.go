package config

import "sort"

// Scenes are named starting configurations for the CLI and the live view.
var Scenes = map[string]*Config{
	"demo": {
		AutoOrbit: true,
		Bodies: []BodyConfig{
			{Kind: "star", Pos: [2]float64{0, 0}},
			{Kind: "planet", Pos: [2]float64{120, 0}},
			{Kind: "planet", Pos: [2]float64{-101, 172}},
			{Kind: "planet", Pos: [2]float64{-147, -261}},
			{Kind: "moon", Pos: [2]float64{269, -268}},
		},
	},
	"binary": {
		Bodies: []BodyConfig{
			{Kind: "star", Pos: [2]float64{-150, 0}, Vel: [2]float64{0, 63}},
			{Kind: "star", Pos: [2]float64{150, 0}, Vel: [2]float64{0, -63}},
			{Kind: "planet", Pos: [2]float64{0, 420}, Vel: [2]float64{-107, 0}},
		},
	},
	"collision": {
		Bodies: []BodyConfig{
			{Kind: "planet", Pos: [2]float64{-60, 0}},
			{Kind: "planet", Pos: [2]float64{60, 0}},
			{Kind: "moon", Pos: [2]float64{0, 90}},
		},
	},
	"cluster": {
		AutoOrbit: true,
		Bodies: []BodyConfig{
			{Kind: "star", Pos: [2]float64{0, 0}},
			{Kind: "planet", Pos: [2]float64{90, 0}},
			{Kind: "planet", Pos: [2]float64{0, 140}},
			{Kind: "planet", Pos: [2]float64{-190, 0}},
			{Kind: "planet", Pos: [2]float64{0, -240}},
			{Kind: "moon", Pos: [2]float64{290, 0}},
			{Kind: "moon", Pos: [2]float64{0, 340}},
		},
	},
}

// GetScene returns a copy of the named scene merged over the defaults, or
// nil if the name is unknown.
func GetScene(name string) *Config {
	scene, ok := Scenes[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.AutoOrbit = scene.AutoOrbit
	cfg.Bodies = append([]BodyConfig(nil), scene.Bodies...)
	return cfg
}

// ListScenes returns the scene names in sorted order.
func ListScenes() []string {
	names := make([]string, 0, len(Scenes))
	for name := range Scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
