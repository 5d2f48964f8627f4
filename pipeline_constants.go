// pipeline_constants.go - Canonical limits and shared constants for rasterpipe

package rasterpipe

// ------------------------------------------------------------------------------
// Canonical Buffer Maxima
// ------------------------------------------------------------------------------
// All working buffers are allocated once, to these sizes, and reused every
// frame. A Pool never grows past them; the package adds no count checks
// of its own, so callers that exceed them hit Go's slice bounds check (an
// index-out-of-range panic) rather than writing outside the buffers.
const (
	WMax            = 2560    // maximum active viewport width, pixels
	HMax            = 1600    // maximum active viewport height, pixels
	MaxVertices     = 1000000 // maximum raw/homogeneous/screen vertex count
	MaxFaces        = 1500000 // maximum triangle count
	TileSize        = 128     // edge length of a binner tile, pixels
	MaxFacesPerTile = 16384   // append cap per tile; further appends drop silently
	MaxTiles        = 260     // ceil(WMax/TileSize) * ceil(HMax/TileSize) = 20*13
)

// ------------------------------------------------------------------------------
// Fixed-Point Edge Stepping
// ------------------------------------------------------------------------------
const (
	FixedShift = 16          // shared sub-pixel precision shift for all fixed-point math
	FixedOne   = 1 << FixedShift
	FixedHalf  = FixedOne / 2
)

// ------------------------------------------------------------------------------
// Depth / Clear Sentinels
// ------------------------------------------------------------------------------
const (
	DepthSentinel = float32(-2000.0) // cleared depth; any valid depth must exceed it
	ClearColor    = uint32(0)        // cleared color: fully transparent black
)

// ------------------------------------------------------------------------------
// Projection Constants
// ------------------------------------------------------------------------------
const (
	NearEpsilon = float32(0.01) // vertices with z > -NearEpsilon are frustum-rejected
)

// ------------------------------------------------------------------------------
// Lighting Constants
// ------------------------------------------------------------------------------
const (
	AmbientFloor = float32(0.2) // minimum intensity regardless of facing
	DiffuseGain  = float32(0.8) // scale applied to max(0, n.L)
)

// ------------------------------------------------------------------------------
// Adaptive Stride LOD Thresholds
// ------------------------------------------------------------------------------
// Faces skipped by stride are neither culled nor drawn: a deliberate lossy
// level-of-detail policy for very large meshes, kept bit-for-bit because it
// alters which face indices are visible downstream.
const (
	StrideThreshold2 = 50000  // face count above which stride becomes 2
	StrideThreshold4 = 200000 // face count above which stride becomes 4
)

// adaptiveStride returns the face-processor step for a given input face count.
func adaptiveStride(faceCount int) int {
	switch {
	case faceCount > StrideThreshold4:
		return 4
	case faceCount > StrideThreshold2:
		return 2
	default:
		return 1
	}
}

// ------------------------------------------------------------------------------
// Wireframe Constants
// ------------------------------------------------------------------------------
const (
	DashPeriod    = 16             // pixels per dash cycle
	WireDepthBias = float32(0.01) // wire lines stay visible atop the filled surface
)

// ------------------------------------------------------------------------------
// Winding / Culling Convention
// ------------------------------------------------------------------------------
// Positive signed screen-space area = back-facing, per the rasterizer's
// winding convention (spec §4.3). Backface culling is skipped entirely in
// wireframe mode.
const backfaceIsPositiveArea = true
