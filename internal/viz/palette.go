package viz

import "github.com/san-kum/orbital/internal/body"

// Per-kind color palettes for bodies spawned from the live view. The spawn
// counters are presentation state owned here, not by the engine.
var palettes = map[body.Kind][]string{
	body.Star:   {"#ffcc33", "#ffaa00", "#ff8855"},
	body.Planet: {"#44aaff", "#66dd88", "#cc66ff", "#ff6688", "#ffaa66"},
	body.Moon:   {"#bbbbbb", "#8899aa", "#ddccaa"},
}

type palette struct {
	counters map[body.Kind]int
}

func newPalette() *palette {
	return &palette{counters: make(map[body.Kind]int)}
}

// next returns the next color for kind, cycling through its palette.
func (p *palette) next(kind body.Kind) string {
	colors, ok := palettes[kind]
	if !ok || len(colors) == 0 {
		return "#ffffff"
	}
	c := colors[p.counters[kind]%len(colors)]
	p.counters[kind]++
	return c
}
