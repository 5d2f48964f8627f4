// pipeline_pool.go - Fixed-capacity working buffers owned by the pipeline

/*
Package rasterpipe implements a CPU-resident software rasterizer: a
classical transform -> project -> cull -> sort -> bin -> rasterize
pipeline over indexed triangle meshes, producing a packed pixel buffer
for a host to blit.

Every stage operates on buffers owned by a single *Pool*, allocated once
to fixed, compile-time maxima and reused every frame. This mirrors the
teacher engine's habit of pre-allocating chip memory once at construction
time (see video_chip.go's VRAM/front/back buffer allocation in the
IntuitionEngine emulator this package is adapted from) rather than
growing buffers per frame.
*/
package rasterpipe

import "fmt"

// RawVertex is an immutable object-space input vertex.
type RawVertex struct {
	X, Y, Z float32
}

// Vertex is a homogeneous vertex. After projection its W component
// doubles as a validity flag: W < 0 means "behind the near plane, do
// not use".
type Vertex struct {
	X, Y, Z, W float32
}

// Face is a triangle referenced by three vertex indices.
type Face struct {
	A, B, C uint32
}

// Tile is a fixed square region of the framebuffer owning an
// append-only, capacity-bounded list of face indices that overlap it.
type Tile struct {
	MinX, MinY, MaxX, MaxY int // screen-space bounds, [Min, Max)
	Indices                []uint32
	FaceCount              int
}

// Matrix is a 16-float column-major 4x4 transform, consumed by the
// vertex transformer. Composition is a host concern (spec §1); this
// package only ever multiplies by one.
type Matrix [16]float32

// Pool owns every working buffer the pipeline touches during a frame:
// vertex arrays, per-face arrays, the radix sort's double buffer, tiles,
// and the pixel/output buffers. It is constructed once and threaded
// through every stage call; no stage allocates on its own.
//
// Thread safety: a Pool is not safe for concurrent frames. Within a
// single frame, the tile rasterizer (RenderTilesParallel) may read it
// concurrently from multiple goroutines because tiles own disjoint
// pixel ranges and disjoint face-index slices (spec §5); no other stage
// is parallel-safe without external synchronization.
type Pool struct {
	width, height int

	// Vertex arrays (capacity MaxVertices)
	rawVertices    []RawVertex
	clipVertices   []Vertex
	screenVertices []Vertex
	vertexCount    int

	// Face arrays (capacity MaxFaces)
	faces     []Face
	faceCount int

	// Written by ProcessFaces: validFaceIDs/depthKeys are per-valid-face
	// (length validCount); intensities/debugColors are indexed by face index
	validFaceIDs []uint32
	depthKeys    []float32
	intensities  []float32
	debugColors  []uint32
	validCount   int

	// Radix sort double buffer (capacity MaxFaces each)
	auxFaceIDs []uint32
	auxDepths  []float32
	histogram  [256]uint32

	// Tiles (capacity MaxTiles, each with capacity MaxFacesPerTile)
	tiles          []Tile
	tilesX, tilesY int

	// Pixel buffers, row stride always WMax regardless of active viewport
	colorBuf []uint32
	depthBuf []float32

	// Output buffer for ExtractColors, tightly packed with row stride width
	outputBuf []uint32

	// Matrix supplied by the host for this frame's TransformVertices call
	matrix Matrix

	// Normalized world-space light direction for this frame's Lambertian term
	lightDir [3]float32

	// Projector focal term (spec §4.2's "fov") and wireframe dash density,
	// both host-settable per frame like matrix/lightDir.
	fov         float32
	wireDensity float32
}

// NewPool allocates a Pool sized to the canonical maxima (§6) and an
// initial active viewport of width x height. It returns an error only
// for a true construction-time contract violation; every stage called
// on a successfully constructed Pool is infallible (spec §7).
func NewPool(width, height int) (*Pool, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rasterpipe: NewPool: non-positive viewport %dx%d", width, height)
	}
	if width > WMax || height > HMax {
		return nil, fmt.Errorf("rasterpipe: NewPool: viewport %dx%d exceeds maxima %dx%d", width, height, WMax, HMax)
	}

	p := &Pool{
		width:          width,
		height:         height,
		rawVertices:    make([]RawVertex, MaxVertices),
		clipVertices:   make([]Vertex, MaxVertices),
		screenVertices: make([]Vertex, MaxVertices),
		faces:          make([]Face, MaxFaces),
		validFaceIDs:   make([]uint32, MaxFaces),
		depthKeys:      make([]float32, MaxFaces),
		intensities:    make([]float32, MaxFaces),
		debugColors:    make([]uint32, MaxFaces),
		auxFaceIDs:     make([]uint32, MaxFaces),
		auxDepths:      make([]float32, MaxFaces),
		tiles:          make([]Tile, MaxTiles),
		colorBuf:       make([]uint32, WMax*HMax),
		depthBuf:       make([]float32, WMax*HMax),
		outputBuf:      make([]uint32, WMax*HMax),
		fov:            float32(width) * 0.5, // spec §8 scenario 1's own canonical default (fov=W/2)
		wireDensity:    0.5,
	}
	p.resizeTiles(width, height)
	for i := range p.tiles {
		if p.tiles[i].Indices == nil {
			p.tiles[i].Indices = make([]uint32, MaxFacesPerTile)
		}
	}
	p.Clear(width, height)
	return p, nil
}

// resizeTiles recomputes the tile grid geometry for an active viewport.
// Tile storage itself (the capped per-tile index slices) is allocated
// once in NewPool and never reallocated; only the grid's logical extent
// and each tile's pixel bounds change between viewport sizes.
func (p *Pool) resizeTiles(width, height int) {
	p.tilesX = ceilDiv(width, TileSize)
	p.tilesY = ceilDiv(height, TileSize)
	for ty := 0; ty < p.tilesY; ty++ {
		for tx := 0; tx < p.tilesX; tx++ {
			idx := ty*p.tilesX + tx
			t := &p.tiles[idx]
			t.MinX = tx * TileSize
			t.MinY = ty * TileSize
			t.MaxX = min(t.MinX+TileSize, width)
			t.MaxY = min(t.MinY+TileSize, height)
			t.FaceCount = 0
			if t.Indices == nil {
				t.Indices = make([]uint32, MaxFacesPerTile)
			}
		}
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// Resize changes the active viewport for subsequent frames. It does not
// reallocate any buffer (spec Non-goals: "dynamic resizing of the
// pre-allocated buffers beyond their compile-time maxima" is explicitly
// out of scope) -- it only narrows or widens the region future Clear/
// pipeline calls address, and recomputes tile bounds.
func (p *Pool) Resize(width, height int) error {
	if width <= 0 || height <= 0 || width > WMax || height > HMax {
		return fmt.Errorf("rasterpipe: Resize: %dx%d out of range (max %dx%d)", width, height, WMax, HMax)
	}
	p.width, p.height = width, height
	p.resizeTiles(width, height)
	pipelineLog.Printf("pool resized to %dx%d (%d tiles)", width, height, p.tilesX*p.tilesY)
	return nil
}

// Width and Height report the current active viewport.
func (p *Pool) Width() int  { return p.width }
func (p *Pool) Height() int { return p.height }

// Clear resets the pixel buffers within the active viewport to their
// sentinel values: color 0, depth DepthSentinel. Calling Clear twice in
// a row is idempotent -- the second call observes the same state the
// first one produced.
func (p *Pool) Clear(width, height int) {
	for y := 0; y < height; y++ {
		row := y * WMax
		clearRow := p.colorBuf[row : row+width]
		for i := range clearRow {
			clearRow[i] = ClearColor
		}
		depthRow := p.depthBuf[row : row+width]
		for i := range depthRow {
			depthRow[i] = DepthSentinel
		}
	}
}

// --- Typed buffer views (the Go analogue of the C ABI's "getter
// returning a base address and an implicit fixed size" -- see §6). Each
// view exposes the full fixed-capacity backing array; the logical
// length in use is tracked separately: the host sets the input counts
// (SetVertexCount, SetFaceCount) and ProcessFaces sets ValidCount.

// RawVertices returns the full-capacity raw vertex buffer.
func (p *Pool) RawVertices() []RawVertex { return p.rawVertices }

// ClipVertices returns the full-capacity homogeneous (post-transform)
// vertex buffer.
func (p *Pool) ClipVertices() []Vertex { return p.clipVertices }

// ScreenVertices returns the full-capacity screen-space (post-project)
// vertex buffer.
func (p *Pool) ScreenVertices() []Vertex { return p.screenVertices }

// Faces returns the full-capacity face index buffer.
func (p *Pool) Faces() []Face { return p.faces }

// SetFaceCount records how many entries of Faces() are populated this
// frame. Pipeline callers set this once after writing faces and before
// calling ProcessFaces.
func (p *Pool) SetFaceCount(n int) { p.faceCount = n }

// FaceCount reports the input face count set via SetFaceCount.
func (p *Pool) FaceCount() int { return p.faceCount }

// SetVertexCount records how many entries of the vertex buffers are
// populated this frame.
func (p *Pool) SetVertexCount(n int) { p.vertexCount = n }

// VertexCount reports the input vertex count set via SetVertexCount.
func (p *Pool) VertexCount() int { return p.vertexCount }

// Matrix returns the transform matrix for this frame.
func (p *Pool) Matrix() Matrix { return p.matrix }

// SetMatrix stores the transform matrix the host supplies for this
// frame's TransformVertices call.
func (p *Pool) SetMatrix(m Matrix) { p.matrix = m }

// SetLightDirection stores the normalized world-space light direction used
// by the face processor's Lambertian term. The host is responsible for
// normalizing it; the face processor does not re-normalize per call.
func (p *Pool) SetLightDirection(x, y, z float32) { p.lightDir = [3]float32{x, y, z} }

// LightDirection returns the light direction set via SetLightDirection.
func (p *Pool) LightDirection() (x, y, z float32) {
	return p.lightDir[0], p.lightDir[1], p.lightDir[2]
}

// SetFOV stores the projector's focal term (spec §4.2's "fov") for this
// frame. NewPool seeds a default of width/2; a host rendering a real
// camera should call this explicitly rather than rely on the default.
func (p *Pool) SetFOV(fov float32) { p.fov = fov }

// FOV returns the focal term set via SetFOV.
func (p *Pool) FOV() float32 { return p.fov }

// SetWireDensity stores the wireframe dash density in [0, 1] (spec
// §4.7) for this frame. NewPool seeds a default of 0.5.
func (p *Pool) SetWireDensity(density float32) { p.wireDensity = density }

// WireDensity returns the dash density set via SetWireDensity.
func (p *Pool) WireDensity() float32 { return p.wireDensity }

// ValidFaceIDs, DepthKeys, Intensities and DebugColors return the arrays
// written by ProcessFaces. ValidFaceIDs and DepthKeys are parallel
// per-valid-face arrays of logical length ValidCount; Intensities and
// DebugColors are indexed by original face index (Intensities()[faceID]).
func (p *Pool) ValidFaceIDs() []uint32   { return p.validFaceIDs }
func (p *Pool) DepthKeys() []float32     { return p.depthKeys }
func (p *Pool) Intensities() []float32   { return p.intensities }
func (p *Pool) DebugColors() []uint32    { return p.debugColors }
func (p *Pool) ValidCount() int          { return p.validCount }
func (p *Pool) setValidCount(n int)      { p.validCount = n }

// Tiles returns the tile grid for the active viewport (length
// TilesX()*TilesY()).
func (p *Pool) Tiles() []Tile  { return p.tiles[:p.tilesX*p.tilesY] }
func (p *Pool) TilesX() int    { return p.tilesX }
func (p *Pool) TilesY() int    { return p.tilesY }

// ColorBuffer and DepthBuffer return the fixed-stride (WMax-wide) pixel
// buffers. Index a pixel at (x, y) as buf[y*WMax+x].
func (p *Pool) ColorBuffer() []uint32 { return p.colorBuf }
func (p *Pool) DepthBuffer() []float32 { return p.depthBuf }

// OutputBuffer returns the buffer ExtractColors writes into, tightly
// packed with row stride Width(): index a pixel at (x, y) as
// buf[y*Width()+x].
func (p *Pool) OutputBuffer() []uint32 { return p.outputBuf }
