package world

import (
	"shooter/internal/draw"
	"shooter/internal/vmath"
)

// World is the scrolling window of terrain chunks.
type World struct {
	chunks     [NumChunks]*Chunk
	scroll     float64
	chunkCount int
	generated  int
	biome      Biome
	rng        *vmath.Rand

	// OnBiomeChange, when set, is called after every biome switch.
	OnBiomeChange func(Biome)
}

// Snapshot is a read-only view of the stream for HUDs and debug output.
type Snapshot struct {
	Biome      Biome
	Scroll     float64
	ChunkCount int
	Generated  int
}

func New(r *vmath.Rand) *World {
	w := &World{biome: Hills, rng: r}
	w.chunks[0] = NewChunk(r, w.biome, nil)
	for i := 1; i < NumChunks; i++ {
		w.chunks[i] = NewChunk(r, w.biome, w.chunks[i-1].Heights())
	}
	w.generated = NumChunks
	return w
}

// Scroll advances the stream by delta chunk heights. Each whole chunk crossed
// drops the oldest chunk and generates a new one continuous with the newest.
// A negative delta only rewinds within the current chunk.
func (w *World) Scroll(delta float64) {
	w.scroll += delta
	for w.scroll >= 1 {
		copy(w.chunks[:], w.chunks[1:])
		w.chunks[NumChunks-1] = NewChunk(w.rng, w.biome, w.chunks[NumChunks-2].Heights())
		w.generated++

		w.chunkCount++
		if w.chunkCount >= ChunksPerBiome {
			w.CycleBiome()
			w.chunkCount = 0
		}
		w.scroll--
	}
	if w.scroll < 0 {
		w.scroll = 0
	}
}

// CycleBiome switches the biome used for chunks generated from now on.
func (w *World) CycleBiome() {
	w.biome = w.biome.Next()
	if w.OnBiomeChange != nil {
		w.OnBiomeChange(w.biome)
	}
}

func (w *World) Biome() Biome { return w.biome }

func (w *World) ScrollFraction() float64 { return w.scroll }

// Chunks returns the window, oldest first.
func (w *World) Chunks() []*Chunk { return w.chunks[:] }

func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Biome:      w.biome,
		Scroll:     w.scroll,
		ChunkCount: w.chunkCount,
		Generated:  w.generated,
	}
}

func (w *World) Draw(s draw.Surface) {
	s.Push()
	s.Scale(TileSize, TileSize, TileSize)
	s.Translate(0, -w.scroll*ChunkH+ScrollOffset, 0)
	for i, c := range w.chunks {
		s.Push()
		s.Translate(0, float64(i*ChunkH), 0)
		c.Draw(s)
		s.Pop()
	}
	s.Pop()
}
