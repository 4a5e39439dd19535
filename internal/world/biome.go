package world

import (
	"fmt"

	"shooter/internal/draw"
)

type Biome int

const (
	Hills Biome = iota
	Desert
	Ice
)

func (b Biome) String() string {
	switch b {
	case Hills:
		return "hills"
	case Desert:
		return "desert"
	case Ice:
		return "ice"
	}
	return fmt.Sprintf("Biome(%d)", int(b))
}

// Next is the biome that follows b in the fixed cycle.
func (b Biome) Next() Biome {
	switch b {
	case Hills:
		return Desert
	case Desert:
		return Ice
	case Ice:
		return Hills
	}
	panic(fmt.Sprintf("world: unknown biome %d", int(b)))
}

// textures returns the default top and side texture for tiles of b.
func (b Biome) textures() (top, side draw.TextureID) {
	switch b {
	case Hills:
		return draw.TexHillsGrass, draw.TexHillsDirt
	case Desert:
		return draw.TexDesertSand, draw.TexDesertSandstone
	case Ice:
		return draw.TexIceSnow, draw.TexIceSnow
	}
	panic(fmt.Sprintf("world: unknown biome %d", int(b)))
}
