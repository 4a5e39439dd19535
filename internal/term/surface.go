package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"shooter/internal/draw"
	"shooter/internal/vmath"
)

const halfBlock = '▀'

// Surface rasterizes the game into a pixel grid two rows per terminal cell,
// depth tested, and presents it with half-block glyphs.
type Surface struct {
	draw.Stack

	view, proj vmath.Mat4
	w, h       int
	colour     []draw.RGB
	depth      []float64
	tris       []draw.EyeVertex
}

// NewSurface sizes the grid for a terminal of cols×rows cells.
func NewSurface(cols, rows int) *Surface {
	s := &Surface{Stack: draw.NewStack(), view: vmath.Identity(), proj: vmath.Identity()}
	s.Resize(cols, rows)
	return s
}

func (s *Surface) Resize(cols, rows int) {
	s.w, s.h = max(cols, 0), max(rows, 0)*2
	n := s.w * s.h
	if cap(s.colour) < n {
		s.colour = make([]draw.RGB, n)
		s.depth = make([]float64, n)
	}
	s.colour = s.colour[:n]
	s.depth = s.depth[:n]
}

// Size is the pixel grid, height twice the terminal rows.
func (s *Surface) Size() (w, h int) { return s.w, s.h }

// Begin clears the grid for a frame drawn through view and shown through proj.
func (s *Surface) Begin(proj, view vmath.Mat4) {
	s.Reset()
	s.proj, s.view = proj, view
	for i := range s.colour {
		s.colour[i] = draw.Black
		s.depth[i] = math.Inf(1)
	}
}

func (s *Surface) Shape(p draw.Primitive, verts ...draw.Vertex) {
	s.tris = draw.Tessellate(s.tris[:0], s.Current(), s.view, p, verts)
	for i := 0; i+2 < len(s.tris); i += 3 {
		s.raster(s.tris[i], s.tris[i+1], s.tris[i+2])
	}
}

// Pixel reads back the colour at grid position x, y.
func (s *Surface) Pixel(x, y int) draw.RGB {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return draw.Black
	}
	return s.colour[y*s.w+x]
}

// toPixel projects an eye-space point into grid coordinates; Z keeps the
// device depth.
func (s *Surface) toPixel(p vmath.Vec3) (vmath.Vec3, bool) {
	ndc, ok := draw.Project(s.proj, p)
	if !ok {
		return vmath.Vec3{}, false
	}
	return vmath.Vec3{
		X: (ndc.X + 1) / 2 * float64(s.w),
		Y: (1 - ndc.Y) / 2 * float64(s.h),
		Z: ndc.Z,
	}, true
}

func edge(a, b, p vmath.Vec3) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
}

func (s *Surface) raster(a, b, c draw.EyeVertex) {
	pa, okA := s.toPixel(a.Pos)
	pb, okB := s.toPixel(b.Pos)
	pc, okC := s.toPixel(c.Pos)
	if !okA || !okB || !okC {
		return
	}
	area := edge(pa, pb, pc)
	if area == 0 {
		return
	}

	minX := max(int(math.Floor(min(pa.X, pb.X, pc.X))), 0)
	maxX := min(int(math.Ceil(max(pa.X, pb.X, pc.X))), s.w-1)
	minY := max(int(math.Floor(min(pa.Y, pb.Y, pc.Y))), 0)
	maxY := min(int(math.Ceil(max(pa.Y, pb.Y, pc.Y))), s.h-1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			p := vmath.Vec3{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			w0 := edge(pb, pc, p) / area
			w1 := edge(pc, pa, p) / area
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*pa.Z + w1*pb.Z + w2*pc.Z
			if z < -1 || z > 1 {
				continue
			}
			i := y*s.w + x
			if z <= s.depth[i] {
				s.depth[i] = z
				s.colour[i] = a.Col
			}
		}
	}
}

func rgb(c draw.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Present writes the grid to screen, one half-block per pixel pair.
func (s *Surface) Present(screen tcell.Screen) {
	for row := 0; row < s.h/2; row++ {
		for x := 0; x < s.w; x++ {
			top := s.colour[(2*row)*s.w+x]
			bottom := s.colour[(2*row+1)*s.w+x]
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			screen.SetContent(x, row, halfBlock, nil, style)
		}
	}
}
