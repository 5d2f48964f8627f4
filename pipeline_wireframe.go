// pipeline_wireframe.go - Wireframe Renderer: Bresenham edges over the filled surface

package rasterpipe

// RenderWireframe draws every valid face's three edges as Bresenham
// lines on top of whatever RasterizeTile/RenderTilesParallel already
// produced. Backface culling does not apply here (spec §4.3 note):
// wireframe mode draws every valid face's outline regardless of winding,
// since the point of the mode is to inspect topology, not shaded
// surfaces.
//
// Each line is dashed with a fixed 16-pixel period and a density in
// [0, 1] (spec §4.7): a step i is drawn iff i mod 16 < floor(16*density).
// Each lit step is depth-tested with a small forward bias (WireDepthBias)
// so the wire consistently wins against the coplanar filled surface it
// traces without the host needing a second offset pass.
func RenderWireframe(p *Pool, density float32) {
	faces := p.Faces()
	screen := p.ScreenVertices()
	color := p.ColorBuffer()
	depth := p.DepthBuffer()

	n := p.FaceCount()
	for i := 0; i < n; i++ {
		f := faces[i]
		a, b, c := screen[f.A], screen[f.B], screen[f.C]
		if !VertexValid(a) || !VertexValid(b) || !VertexValid(c) {
			continue
		}
		drawWireEdge(color, depth, p, a, b, density)
		drawWireEdge(color, depth, p, b, c, density)
		drawWireEdge(color, depth, p, c, a, density)
	}
}

// drawWireEdge draws one dashed, depth-tested Bresenham line between two
// screen-space vertices, clipped to the active viewport.
func drawWireEdge(color []uint32, depth []float32, p *Pool, a, b Vertex, density float32) {
	dashOn := int(16 * density)
	x0, y0 := int(a.X), int(a.Y)
	x1, y1 := int(b.X), int(b.Y)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	steps := dx
	if -dy > steps {
		steps = -dy
	}
	totalSteps := steps + 1
	dzStep := float32(0)
	if totalSteps > 0 {
		dzStep = (b.Z - a.Z) / float32(totalSteps)
	}
	z := a.Z

	x, y := x0, y0
	step := 0
	for {
		if step%DashPeriod < dashOn && x >= 0 && x < p.Width() && y >= 0 && y < p.Height() {
			idx := y*WMax + x
			if z+WireDepthBias >= depth[idx] {
				depth[idx] = z
				color[idx] = 0xFFFFFFFF // opaque white wire
			}
		}

		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
		z += dzStep
		step++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
