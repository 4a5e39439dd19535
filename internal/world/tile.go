package world

import "shooter/internal/draw"

// Tile corner order when viewed top-down.
const (
	cornerTL = iota
	cornerBL
	cornerBR
	cornerTR
)

var cornerXY = [4][2]float64{
	cornerTL: {-0.5, 0.5},
	cornerBL: {-0.5, -0.5},
	cornerBR: {0.5, -0.5},
	cornerTR: {0.5, 0.5},
}

// Tile is one unit square column of terrain. Each surface corner has its own
// height so a tile can slope; the base sits at TileBaseZ.
type Tile struct {
	Corners [4]float64
	Top     draw.TextureID
	Side    draw.TextureID
}

func NewTile(z float64, top, side draw.TextureID) Tile {
	return Tile{Corners: [4]float64{z, z, z, z}, Top: top, Side: side}
}

// IncreaseHeight raises every corner to at least z.
func (t *Tile) IncreaseHeight(z float64) {
	for i := range t.Corners {
		t.Corners[i] = max(t.Corners[i], z)
	}
}

// Height is the mean corner height.
func (t *Tile) Height() float64 {
	return (t.Corners[0] + t.Corners[1] + t.Corners[2] + t.Corners[3]) / 4
}

func (t *Tile) surf(c int) draw.Vertex {
	return draw.Vertex{X: cornerXY[c][0], Y: cornerXY[c][1], Z: t.Corners[c]}
}

func (t *Tile) base(c int) draw.Vertex {
	return draw.Vertex{X: cornerXY[c][0], Y: cornerXY[c][1], Z: TileBaseZ}
}

func uv(v draw.Vertex, u, w float64) draw.Vertex {
	v.U, v.V = u, w
	return v
}

// DrawTop emits the top face as a strip.
func (t *Tile) DrawTop(s draw.Surface) {
	s.Texture(t.Top)
	s.Shape(draw.Strip,
		uv(t.surf(cornerTL), 0, 0),
		uv(t.surf(cornerBL), 0, 1),
		uv(t.surf(cornerTR), 1, 0),
		uv(t.surf(cornerBR), 1, 1),
	)
}

// DrawSides emits the four walls as one strip running front, right, back, left.
// The V coordinate spans the wall height so side textures tile vertically.
func (t *Tile) DrawSides(s draw.Surface) {
	h := t.Corners[cornerTL] - TileBaseZ
	s.Texture(t.Side)
	s.Shape(draw.Strip,
		uv(t.surf(cornerBL), 0, 0),
		uv(t.base(cornerBL), 0, h),
		uv(t.surf(cornerBR), 1, 0),
		uv(t.base(cornerBR), 1, h),
		uv(t.surf(cornerTR), 0, 0),
		uv(t.base(cornerTR), 0, h),
		uv(t.surf(cornerTL), 1, 0),
		uv(t.base(cornerTL), 1, h),
		uv(t.surf(cornerBL), 0, 0),
		uv(t.base(cornerBL), 0, h),
	)
}
