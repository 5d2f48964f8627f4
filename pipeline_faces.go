// pipeline_faces.go - Face Processor: culling, lighting, and adaptive LOD

package rasterpipe

import "math"

// ProcessFaces walks p.Faces()[:p.FaceCount()] under the adaptive stride
// policy (spec §4.3, §9), and for every face it visits:
//
//   - rejects it if any corner failed the near-plane test in ProjectVertices
//   - computes the screen-space signed area and rejects back-facing
//     triangles (positive area, per the winding convention this package
//     uses throughout -- see backfaceIsPositiveArea)
//   - computes a world-space face normal and a Lambertian intensity
//     against p.LightDirection()
//   - packs a debug color from the normal, for callers that want to
//     visualize normals instead of lit color
//   - records a depth key (mean world-space Z of the three corners) used
//     by the sorter
//
// Faces skipped by the stride are not culled and not drawn: they simply
// do not appear in the valid-face output this frame. Surviving face
// indices are appended, in input order, to p.ValidFaceIDs()/DepthKeys();
// ValidCount() reports how many entries were written. Intensities() and
// DebugColors() are keyed by original face index (not by position in the
// valid-face list), so they stay valid lookup tables after SortFaces
// reorders ValidFaceIDs/DepthKeys -- a rasterizer stage looks up
// Intensities()[faceID], never Intensities()[i].
//
// The face normal and depth key are both computed from p.ClipVertices()
// -- the Vertex Transformer's world-space output -- not p.RawVertices().
// Object-space corners ignore whatever the host's matrix did (rotation,
// translation), so any rotated or moved mesh would light and sort
// against its pre-transform orientation instead of its actual one.
func ProcessFaces(p *Pool) {
	faces := p.Faces()
	screen := p.ScreenVertices()
	world := p.ClipVertices()

	faceIDs := p.ValidFaceIDs()
	depthKeys := p.DepthKeys()
	intensities := p.Intensities()
	debugColors := p.DebugColors()

	lx, ly, lz := p.LightDirection()

	n := p.FaceCount()
	stride := adaptiveStride(n)
	out := 0

	for i := 0; i < n; i += stride {
		f := faces[i]
		a, b, c := screen[f.A], screen[f.B], screen[f.C]
		if !VertexValid(a) || !VertexValid(b) || !VertexValid(c) {
			continue
		}

		area := signedArea(a, b, c)
		if backfaceIsPositiveArea && area >= 0 {
			continue
		}
		if !backfaceIsPositiveArea && area <= 0 {
			continue
		}

		wa, wb, wc := world[f.A], world[f.B], world[f.C]
		nx, ny, nz := faceNormal(wa, wb, wc)

		intensity := AmbientFloor + DiffuseGain*maxf(0, nx*lx+ny*ly+nz*lz)
		if intensity > 1 {
			intensity = 1
		}

		faceIDs[out] = uint32(i)
		depthKeys[out] = (wa.Z + wb.Z + wc.Z) / 3
		intensities[i] = intensity
		debugColors[i] = packDebugNormal(nx, ny, nz)
		out++
	}

	p.setValidCount(out)
}

// signedArea computes twice the signed screen-space area of a triangle's
// projected corners. Its sign encodes winding: this package treats a
// positive result as back-facing (backfaceIsPositiveArea).
func signedArea(a, b, c Vertex) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// faceNormal returns the normalized face normal of a triangle in
// world space, via the cross product of its two edge vectors and a fast
// inverse square root in the style of the classic Quake III
// implementation -- adequate precision for a per-face lighting term
// computed once per triangle per frame, and considerably cheaper than a
// library sqrt call at the face counts this pipeline targets.
func faceNormal(a, b, c Vertex) (x, y, z float32) {
	e1x, e1y, e1z := b.X-a.X, b.Y-a.Y, b.Z-a.Z
	e2x, e2y, e2z := c.X-a.X, c.Y-a.Y, c.Z-a.Z

	nx := e1y*e2z - e1z*e2y
	ny := e1z*e2x - e1x*e2z
	nz := e1x*e2y - e1y*e2x

	lenSq := nx*nx + ny*ny + nz*nz
	if lenSq == 0 {
		return 0, 0, 0
	}
	inv := fastInverseSqrt(lenSq)
	return nx * inv, ny * inv, nz * inv
}

// fastInverseSqrt computes 1/sqrt(x) via the classic bit-hack magic
// number and one Newton-Raphson refinement step.
func fastInverseSqrt(x float32) float32 {
	const magic = 0x5f3759df
	bits := math.Float32bits(x)
	bits = magic - (bits >> 1)
	y := math.Float32frombits(bits)
	y = y * (1.5 - 0.5*x*y*y) // one Newton iteration
	return y
}

// packDebugNormal maps a unit normal's [-1, 1] components into an ABGR
// debug color, useful for visually verifying winding/culling without a
// lit shading pass.
func packDebugNormal(x, y, z float32) uint32 {
	r := uint32((x*0.5 + 0.5) * 255)
	g := uint32((y*0.5 + 0.5) * 255)
	b := uint32((z*0.5 + 0.5) * 255)
	return 0xFF000000 | (b << 16) | (g << 8) | r
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
