package world

import "shooter/internal/vmath"

// Patch is a square hill height field indexed [x][y].
type Patch [HillSize][HillSize]float64

// HeightGrid is a chunk's height field indexed [x][y]. Rows [ChunkH, GridRows)
// lie past the chunk's far edge and seed the next chunk's first rows.
type HeightGrid [ChunkW][GridRows]float64

// HillBlob synthesises a hill with the diamond-square algorithm. The centre is
// seeded in [min,max) and the corners stay at zero. A square-step neighbour
// that falls outside the patch contributes zero but the divisor stays 4, which
// keeps the edges low.
func HillBlob(r *vmath.Rand, min, max float64) *Patch {
	var p Patch
	mid := HillSize / 2
	p[mid][mid] = r.RangeF(min, max)

	size := HillSize / 2
	v := HeightVariation
	for size > 1 {
		half := size / 2

		// diamond
		for x := 0; x < HillSize-1; x += size {
			for y := 0; y < HillSize-1; y += size {
				h := p[x][y] + p[x+size][y] + p[x][y+size] + p[x+size][y+size]
				p[x+half][y+half] = h/4 + r.BiRand(v)
			}
		}

		// square
		for x := 0; x < HillSize-1; x += half {
			for y := (x + half) % size; y < HillSize-1; y += size {
				var h float64
				if x >= half {
					h += p[x-half][y]
				}
				if x+half < HillSize {
					h += p[x+half][y]
				}
				if y >= half {
					h += p[x][y-half]
				}
				if y+half < HillSize {
					h += p[x][y+half]
				}
				p[x][y] = h/4 + r.BiRand(v)
			}
		}

		v /= 2
		size /= 2
	}

	// The raw centre towers over its surroundings; rebuild it from its neighbours.
	c := p[mid-1][mid] + p[mid+1][mid] + p[mid][mid-1] + p[mid][mid+1]
	p[mid][mid] = c/4 + r.Float64()*HeightVariation
	return &p
}

// Merge stamps p into g at (xOff, yOff) keeping the higher value per cell.
// Parts of the patch outside the grid are dropped.
func (g *HeightGrid) Merge(p *Patch, xOff, yOff int) {
	for x := max(0, -xOff); x < HillSize; x++ {
		dx := x + xOff
		if dx >= ChunkW {
			break
		}
		for y := max(0, -yOff); y < HillSize; y++ {
			dy := y + yOff
			if dy >= GridRows {
				break
			}
			if h := p[x][y]; h > g[dx][dy] {
				g[dx][dy] = h
			}
		}
	}
}

// carry copies the rows of prev that lie past its far edge into g's first rows.
func (g *HeightGrid) carry(prev *HeightGrid) {
	if prev == nil {
		return
	}
	for x := 0; x < ChunkW; x++ {
		copy(g[x][:HillSize], prev[x][ChunkH:GridRows])
	}
}

// raiseHills merges n hill patches at random offsets. x offsets may start up to
// one patch left of the grid so hills can straddle the edge.
func (g *HeightGrid) raiseHills(r *vmath.Rand, n int, min, max float64) {
	for i := 0; i < n; i++ {
		xOff := int(r.RangeF(-HillSize, ChunkW))
		yOff := int(r.Float64() * ChunkH)
		g.Merge(HillBlob(r, min, max), xOff, yOff)
	}
}
