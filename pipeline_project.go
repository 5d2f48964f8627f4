// pipeline_project.go - Projector: perspective divide and viewport mapping

package rasterpipe

// ProjectVertices performs the perspective divide and viewport mapping
// for every homogeneous (post-transform) vertex in p.ClipVertices()[:n],
// n = p.VertexCount(), writing screen-space results to
// p.ScreenVertices()[:n]. The focal term is taken from p.FOV() (spec
// §4.2's "fov"), set by the host via SetFOV -- it is independent of
// whatever the transform matrix happens to leave in a vertex's W, so an
// affine (non-projective) transform matrix does not defeat it.
//
// A vertex whose homogeneous Z is past the near plane (z > -ε, ε =
// NearEpsilon; a vertex exactly at z = -ε is kept) is rejected: its screen vertex is written with W = -1, a
// sentinel every downstream stage checks before trusting X/Y/Z (spec
// §4.2). The test reads z directly rather than w, because w only carries
// this meaning under a true perspective projection matrix -- every other
// matrix helper in this package (Identity/Translate/Scale/RotateY) is
// affine and leaves w = 1 regardless of depth, which would make a
// w-based test silently dead for the common case. Vertices are never
// dropped from the array -- only flagged -- because faces reference
// vertices by index and must be able to test validity per-corner without
// a second indirection.
func ProjectVertices(p *Pool) {
	ProjectVerticesRange(p, 0, p.VertexCount())
}

// ProjectVerticesRange projects only clip vertices [start, end), for
// parallel callers driving disjoint ranges.
func ProjectVerticesRange(p *Pool, start, end int) {
	clip := p.ClipVertices()
	screen := p.ScreenVertices()
	cx := float32(p.Width()) * 0.5
	cy := float32(p.Height()) * 0.5
	fov := p.FOV()

	for i := start; i < end; i++ {
		v := clip[i]
		if v.Z > -NearEpsilon {
			screen[i] = Vertex{W: -1}
			continue
		}
		inv := 1 / -v.Z
		scale := fov * inv

		screen[i] = Vertex{
			X: v.X*scale + cx,
			Y: -v.Y*scale + cy, // screen Y grows downward
			Z: inv,             // doubles as the depth key: larger means nearer
			W: 1,
		}
	}
}

// VertexValid reports whether a projected screen vertex survived the
// near-plane test.
func VertexValid(v Vertex) bool { return v.W >= 0 }
