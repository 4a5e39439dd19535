package world

import (
	"fmt"

	"shooter/internal/draw"
	"shooter/internal/vmath"
)

// Chunk is a ChunkW x ChunkH block of terrain. It is immutable once built.
type Chunk struct {
	Biome       Biome
	Tiles       []Tile // row-major: Tiles[y*ChunkW+x]
	Decorations []Decoration

	heights HeightGrid
}

// NewChunk generates a chunk of the given biome. When prev is non-nil its
// overhang rows become this chunk's first rows so the seam is continuous.
func NewChunk(r *vmath.Rand, biome Biome, prev *HeightGrid) *Chunk {
	c := &Chunk{
		Biome: biome,
		Tiles: make([]Tile, ChunkW*ChunkH),
	}
	c.heights.carry(prev)

	switch biome {
	case Hills:
		c.heights.raiseHills(r, r.Range(hillsMin, hillsMax), hillsLow, hillsHigh)
		c.buildTiles()
	case Desert:
		c.heights.raiseHills(r, r.Range(desertHillsMin, desertHillsMax), desertLow, desertHigh)
		c.buildTiles()
		for i := 0; i < desertPillars; i++ {
			c.Decorations = append(c.Decorations, newPillar(r))
		}
		for i := 0; i < desertPyramids; i++ {
			c.Decorations = append(c.Decorations, newPyramid(r))
		}
	case Ice:
		c.heights.raiseHills(r, r.Range(iceHillsMin, iceHillsMax), iceLow, iceHigh)
		c.buildTiles()
		n := r.Range(iceMesasMin, iceMesasMax)
		for i := 0; i < n; i++ {
			m := MesaPattern(r, 0, mesaHeight)
			xOff := int(r.Float64() * float64(ChunkW-m.Width()))
			yOff := int(r.Float64() * float64(ChunkH-m.Height()))
			c.stampMesa(m, xOff, yOff)
		}
		for i := 0; i < iceSnowmen; i++ {
			c.Decorations = append(c.Decorations, newSnowman(r, c.Tiles))
		}
	default:
		panic(fmt.Sprintf("world: unknown biome %d", int(biome)))
	}
	return c
}

func (c *Chunk) idx(x, y int) int {
	return y*ChunkW + x
}

func (c *Chunk) buildTiles() {
	top, side := c.Biome.textures()
	for x := 0; x < ChunkW; x++ {
		for y := 0; y < ChunkH; y++ {
			c.Tiles[c.idx(x, y)] = NewTile(c.heights[x][y], top, side)
		}
	}
}

// stampMesa raises tiles under the mesa and gives them ice walls. Only the
// tiles change; the height grid handed to the next chunk is untouched.
func (c *Chunk) stampMesa(m Mesa, xOff, yOff int) {
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			tx, ty := x+xOff, y+yOff
			if tx < 0 || ty < 0 || tx >= ChunkW || ty >= ChunkH {
				continue
			}
			t := &c.Tiles[c.idx(tx, ty)]
			t.IncreaseHeight(m[y][x])
			t.Side = draw.TexIceWall
		}
	}
}

// Heights exposes the retained height grid, including the overhang rows.
func (c *Chunk) Heights() *HeightGrid {
	return &c.heights
}

func (c *Chunk) Tile(x, y int) *Tile {
	return &c.Tiles[c.idx(x, y)]
}

// Draw emits decorations, then every tile top, then every tile side, so each
// pass stays on few textures. The surface must already be in tile units.
func (c *Chunk) Draw(s draw.Surface) {
	for i := range c.Decorations {
		c.Decorations[i].Draw(s)
	}
	c.drawTiles(s, (*Tile).DrawTop)
	c.drawTiles(s, (*Tile).DrawSides)
}

func (c *Chunk) drawTiles(s draw.Surface, face func(*Tile, draw.Surface)) {
	s.Push()
	s.Translate(-ChunkW/2.0+0.5, -ChunkH/2.0, 0)
	for y := 0; y < ChunkH; y++ {
		s.Push()
		for x := 0; x < ChunkW; x++ {
			face(&c.Tiles[c.idx(x, y)], s)
			s.Translate(1, 0, 0)
		}
		s.Pop()
		s.Translate(0, 1, 0)
	}
	s.Pop()
}
