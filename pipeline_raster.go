// pipeline_raster.go - Scanline Rasterizer: fills binned triangles into the pixel buffers

package rasterpipe

// Depth convention used by this file and by Pool.DepthBuffer: a screen
// vertex's Z is the Projector's inv = 1/(-clipZ) term (spec §4.2),
// already larger-means-closer for any vertex that survived the near-
// plane test, under any matrix the host supplies -- there is no sign
// flip to apply here. The clear value DepthSentinel (-2000) is far
// smaller than any real projected depth (always positive), so the very
// first fragment written to a pixel always passes the depth test, and
// the test itself is a single ">".

// RasterizeTile rasterizes every face binned into tile t (spec §4.6/§4.7),
// depth-testing and shading each covered pixel, writing into p's color and
// depth buffers. Multiple tiles may be rasterized concurrently by
// different goroutines because each owns a disjoint pixel rectangle and a
// disjoint face-index list; see RenderTilesParallel.
func RasterizeTile(p *Pool, tileIndex int) {
	tiles := p.Tiles()
	t := &tiles[tileIndex]
	faces := p.Faces()
	screen := p.ScreenVertices()
	intensities := p.Intensities()
	color := p.ColorBuffer()
	depth := p.DepthBuffer()

	for i := 0; i < t.FaceCount; i++ {
		fid := t.Indices[i]
		f := faces[fid]
		a, b, c := screen[f.A], screen[f.B], screen[f.C]
		intensity := intensities[fid]

		rasterizeTriangle(color, depth, t, a, b, c, intensity)
	}
}

// rasterizeTriangle clips its scan conversion to tile t's pixel bounds and
// fills it with the fixed-point scanline algorithm, punting sub-pixel
// triangles (those whose screen bounding box covers less than one pixel
// in both axes) to a single depth-tested point instead of running the
// full edge-stepping loop over a degenerate span.
func rasterizeTriangle(color []uint32, depth []float32, t *Tile, a, b, c Vertex, intensity float32) {
	minX, maxX := minf3(a.X, b.X, c.X), maxf3(a.X, b.X, c.X)
	minY, maxY := minf3(a.Y, b.Y, c.Y), maxf3(a.Y, b.Y, c.Y)

	if maxX < float32(t.MinX) || minX >= float32(t.MaxX) || maxY < float32(t.MinY) || minY >= float32(t.MaxY) {
		return
	}

	if maxX-minX < 1 && maxY-minY < 1 {
		rasterizePoint(color, depth, t, a, b, c, intensity)
		return
	}

	// Sort corners by Y ascending: top, mid, bottom.
	top, mid, bot := a, b, c
	if top.Y > mid.Y {
		top, mid = mid, top
	}
	if mid.Y > bot.Y {
		mid, bot = bot, mid
	}
	if top.Y > mid.Y {
		top, mid = mid, top
	}

	yTop := ceilToPixel(top.Y)
	yMid := ceilToPixel(mid.Y)
	yBot := ceilToPixel(bot.Y)

	yTop = clampInt(yTop, t.MinY, t.MaxY)
	yMid = clampInt(yMid, t.MinY, t.MaxY)
	yBot = clampInt(yBot, t.MinY, t.MaxY)

	if yTop < yMid {
		fillHalfTriangle(color, depth, t, top, mid, bot, top, bot, intensity, yTop, yMid, true)
	}
	if yMid < yBot {
		fillHalfTriangle(color, depth, t, mid, bot, bot, top, bot, intensity, yMid, yBot, false)
	}
}

// fillHalfTriangle scans rows [y0, y1) of one of the two monotone halves
// of a triangle (top-to-mid or mid-to-bottom), interpolating the short
// edge (e0a -> e0b) against the long edge (longA -> longB) in float32 at
// each row's center, and filling each resulting span; only the span ends
// pass through fixed point, for rounding. The caller picks the active
// short edge (top->mid or mid->bottom) through e0a/e0b; both halves use
// the same long edge top->bottom. upperHalf is not read.
func fillHalfTriangle(color []uint32, depth []float32, t *Tile, e0a, e0b, _ Vertex, longA, longB Vertex, intensity float32, y0, y1 int, upperHalf bool) {
	_ = upperHalf
	shortDY := e0b.Y - e0a.Y
	longDY := longB.Y - longA.Y
	if shortDY == 0 || longDY == 0 {
		return
	}

	shortStepX := (e0b.X - e0a.X) / shortDY
	shortStepZ := (e0b.Z - e0a.Z) / shortDY

	longStepX := (longB.X - longA.X) / longDY
	longStepZ := (longB.Z - longA.Z) / longDY

	for y := y0; y < y1; y++ {
		fy := float32(y) + 0.5

		tShort := fy - e0a.Y
		xShort := e0a.X + shortStepX*tShort
		zShort := e0a.Z + shortStepZ*tShort

		tLong := fy - longA.Y
		xLong := longA.X + longStepX*tLong
		zLong := longA.Z + longStepZ*tLong

		xLeft, xRight := xShort, xLong
		zLeft, zRight := zShort, zLong
		if xLeft > xRight {
			xLeft, xRight = xRight, xLeft
			zLeft, zRight = zRight, zLeft
		}

		// Convert the span's float edges to fixed point and back purely
		// to apply the pipeline's single rounding rule (ceil to the
		// first integer pixel coordinate at or after the edge) at a
		// fixed sub-pixel precision, rather than relying on ad hoc
		// float rounding at each edge independently.
		pxLeft := ceilFixedToPixel(toFixed(xLeft))
		pxRight := ceilFixedToPixel(toFixed(xRight))
		pxLeft = clampInt(pxLeft, t.MinX, t.MaxX)
		pxRight = clampInt(pxRight, t.MinX, t.MaxX)
		if pxLeft >= pxRight {
			continue
		}

		spanLen := pxRight - pxLeft
		stepZ := (zRight - zLeft) / float32(spanLen)

		z := zLeft
		row := y * WMax
		for x := pxLeft; x < pxRight; x++ {
			idx := row + x
			if z > depth[idx] {
				depth[idx] = z
				color[idx] = shadeIntensity(intensity)
			}
			z += stepZ
		}
	}
}

// rasterizePoint handles a triangle whose screen footprint is smaller
// than a pixel: rather than run the scan conversion over a span that
// would round to zero pixels either way, it depth-tests and shades the
// single pixel nearest the triangle's centroid (spec §4.6 sub-pixel rule).
// A tile that does not contain that pixel leaves its buffers untouched.
func rasterizePoint(color []uint32, depth []float32, t *Tile, a, b, c Vertex, intensity float32) {
	cx := (a.X + b.X + c.X) / 3
	cy := (a.Y + b.Y + c.Y) / 3
	cz := (a.Z + b.Z + c.Z) / 3

	px, py := int(cx), int(cy)
	if cx < 0 || cy < 0 || px < t.MinX || px >= t.MaxX || py < t.MinY || py >= t.MaxY {
		return
	}

	idx := py*WMax + px
	if cz > depth[idx] {
		depth[idx] = cz
		color[idx] = shadeIntensity(intensity)
	}
}

// shadeIntensity packs a greyscale Lambertian intensity into an ABGR
// pixel: 0xFF000000 | B<<16 | G<<8 | R, per the packing contract (spec
// §4.8/§6).
func shadeIntensity(intensity float32) uint32 {
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	v := uint32(intensity * 255)
	return 0xFF000000 | (v << 16) | (v << 8) | v
}

// ceilToPixel maps a sub-pixel screen coordinate to the first integer
// pixel row/column at or after it, matching the span-inclusivity rule
// used throughout this rasterizer (a row or column is covered if its
// integer coordinate lies at or after the leading edge and before the
// trailing edge).
func ceilToPixel(v float32) int {
	iv := int(v)
	if float32(iv) < v {
		return iv + 1
	}
	return iv
}

// toFixed converts a float32 screen coordinate into FixedShift-bit fixed
// point.
func toFixed(v float32) int64 { return int64(v * FixedOne) }

// ceilFixedToPixel maps a fixed-point coordinate to the first integer
// pixel at or after it.
func ceilFixedToPixel(v int64) int {
	whole := v >> FixedShift
	if v&(FixedOne-1) != 0 {
		return int(whole) + 1
	}
	return int(whole)
}
