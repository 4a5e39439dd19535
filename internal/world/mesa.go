package world

import "shooter/internal/vmath"

// mesaBitmaps are the hand-drawn mesa outlines. The first value of each is the
// row width in bits; each following value is one row, most significant bit
// leftmost.
var mesaBitmaps = [][]uint32{
	{
		12,
		0b0001_1110_0000,
		0b0011_1111_0000,
		0b0011_1111_1100,
		0b0111_1111_1110,
		0b1111_1111_1110,
		0b1111_1111_1110,
		0b1111_1111_1111,
		0b1111_1111_1111,
		0b1111_1111_1111,
		0b1111_1111_1111,
		0b1111_1111_1111,
		0b1111_1111_1111,
		0b1111_1111_1110,
		0b0011_1111_1110,
		0b0000_1111_1110,
	},
	{
		14,
		0b00_0001_1100_0000,
		0b00_0011_1110_0000,
		0b00_0111_1111_1000,
		0b00_0111_1111_1110,
		0b01_1111_1111_1111,
		0b01_1111_1111_1111,
		0b11_1111_1111_1111,
		0b11_1111_1111_1111,
		0b11_1111_1111_1110,
		0b01_1111_1111_1100,
		0b00_1111_1111_1100,
		0b00_0111_1111_1000,
		0b00_0011_1111_1000,
	},
	{
		17,
		0b0_0000_0111_0000_0000,
		0b0_0000_1111_1110_0000,
		0b0_0001_1111_1111_1100,
		0b0_0001_1111_1111_1100,
		0b0_0011_1111_1111_1110,
		0b0_1111_1111_1111_1110,
		0b1_1111_1111_1111_1111,
		0b1_1111_1111_1111_1111,
		0b0_1111_1111_1111_1110,
		0b0_1111_1111_1111_1110,
		0b0_1111_1111_1111_1100,
		0b0_0111_1111_1111_1100,
		0b0_0000_1111_1111_0000,
		0b0_0000_0000_1100_0000,
	},
}

// mesaPatterns holds the expanded bitmaps, indexed [y][x].
var mesaPatterns = expandMesas(mesaBitmaps)

func expandMesas(bitmaps [][]uint32) [][][]bool {
	out := make([][][]bool, len(bitmaps))
	for i, bits := range bitmaps {
		w := int(bits[0])
		rows := make([][]bool, len(bits)-1)
		for y := range rows {
			row := make([]bool, w)
			cur := bits[y+1]
			for x := w - 1; x >= 0; x-- {
				row[x] = cur&1 == 1
				cur >>= 1
			}
			rows[y] = row
		}
		out[i] = rows
	}
	return out
}

// Mesa is a height stamp indexed [y][x].
type Mesa [][]float64

func (m Mesa) Width() int  { return len(m[0]) }
func (m Mesa) Height() int { return len(m) }

// MesaPattern picks one of the mesa outlines, mirrors it horizontally and
// vertically with independent even odds, maps set bits to high and clear bits
// to low, then softens it with one 4-neighbour box blur. Neighbours outside
// the mesa count as low.
func MesaPattern(r *vmath.Rand, low, high float64) Mesa {
	pat := mesaPatterns[r.Intn(len(mesaPatterns))]
	hFlip := r.Chance(0.5)
	vFlip := r.Chance(0.5)
	h, w := len(pat), len(pat[0])

	raw := make([][]float64, h)
	for y := 0; y < h; y++ {
		ty := y
		if vFlip {
			ty = h - y - 1
		}
		raw[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			tx := x
			if hFlip {
				tx = w - x - 1
			}
			if pat[ty][tx] {
				raw[y][x] = high
			} else {
				raw[y][x] = low
			}
		}
	}

	at := func(x, y int) float64 {
		if x < 0 || y < 0 || x >= w || y >= h {
			return low
		}
		return raw[y][x]
	}
	out := make(Mesa, h)
	for y := 0; y < h; y++ {
		out[y] = make([]float64, w)
		for x := 0; x < w; x++ {
			out[y][x] = (at(x, y-1) + at(x, y+1) + at(x-1, y) + at(x+1, y)) / 4
		}
	}
	return out
}
