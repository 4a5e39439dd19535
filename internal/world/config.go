package world

// Chunk geometry (in tiles).
const (
	ChunkW   = 44
	ChunkH   = 36
	TileSize = 0.2 // tile edge in NDC units

	// HillSize is the side of a hill patch (2^4+1). It is also the number of
	// rows a chunk carries over to its successor.
	HillSize = 17
	GridRows = ChunkH + HillSize

	TileBaseZ       = -2.0
	HeightVariation = 0.5
)

// Stream.
const (
	NumChunks      = 2
	ChunksPerBiome = 16
	ScrollOffset   = ChunkH / 5.0
)

// Biome generation parameters.
const (
	hillsMin  = 8
	hillsMax  = 12
	hillsLow  = 1.0
	hillsHigh = 4.0

	desertHillsMin = 4
	desertHillsMax = 8
	desertLow      = 0.0
	desertHigh     = 0.5
	desertPillars  = 2
	desertPyramids = 2

	iceHillsMin = 6
	iceHillsMax = 12
	iceLow      = 0.25
	iceHigh     = 1.0
	iceMesasMin = 1
	iceMesasMax = 2
	mesaHeight  = 3.0
	iceSnowmen  = 2
)
