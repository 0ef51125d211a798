package duckdash

import (
	"github.com/vovakirdan/duckdash/internal/config"
	"github.com/vovakirdan/duckdash/internal/core"
)

// BiomeController tracks the score-keyed zone and eases the background
// color toward the zone's sky.
type BiomeController struct {
	biomes []config.BiomeConfig
	lerp   float64
	index  int
	bg     [3]float64
}

// NewBiomeController starts in the first biome with its sky as background.
func NewBiomeController(biomes []config.BiomeConfig, lerp float64) *BiomeController {
	b := &BiomeController{biomes: biomes, lerp: lerp}
	b.Reset()
	return b
}

// Reset returns to the first biome.
func (b *BiomeController) Reset() {
	b.index = 0
	if len(b.biomes) > 0 {
		sky := b.biomes[0].Sky
		b.bg = [3]float64{float64(sky[0]), float64(sky[1]), float64(sky[2])}
	}
}

// IndexFor returns the highest biome whose breakpoint is <= score.
func (b *BiomeController) IndexFor(score int) int {
	idx := 0
	for i, bi := range b.biomes {
		if bi.Score <= score {
			idx = i
		}
	}
	return idx
}

// Update recomputes the biome from score and eases the background by dt.
// It reports whether a new biome was entered.
func (b *BiomeController) Update(score int, dt float64) bool {
	if len(b.biomes) == 0 {
		return false
	}
	idx := b.IndexFor(score)
	changed := idx != b.index
	b.index = idx

	t := core.ClampF(b.lerp*dt, 0, 1)
	target := b.biomes[idx].Sky
	for i := range b.bg {
		b.bg[i] = core.Lerp(b.bg[i], float64(target[i]), t)
	}
	return changed
}

// Index returns the current biome index.
func (b *BiomeController) Index() int {
	return b.index
}

// Current returns the current biome.
func (b *BiomeController) Current() config.BiomeConfig {
	if len(b.biomes) == 0 {
		return config.BiomeConfig{}
	}
	return b.biomes[b.index]
}

// Background returns the eased background color.
func (b *BiomeController) Background() core.RGB {
	var out core.RGB
	for i, v := range b.bg {
		out[i] = uint8(core.ClampF(v+0.5, 0, 255))
	}
	return out
}
