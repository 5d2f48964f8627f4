// pipeline_binner.go - Tile Binner: assigns sorted faces to screen tiles

package rasterpipe

// BinFaces walks p.ValidFaceIDs()[:p.ValidCount()] in the order SortFaces
// left them (painter's-algorithm depth order, back to front) and appends
// each face's index to every tile its screen-space bounding box overlaps.
// Within a tile, face indices therefore remain in depth order -- the
// rasterizer relies on this to resolve overlap without a separate sort
// per tile.
//
// A tile's append list is fixed capacity (MaxFacesPerTile). Once full,
// further faces that overlap it are silently dropped from that tile only
// -- a face can still appear in, and be drawn in, any other tile it
// overlaps. This bounds worst-case per-tile work independent of scene
// complexity at the cost of occasional, deliberately unreported overdraw
// loss in pathological tiles (spec §4.6, §9).
func BinFaces(p *Pool) {
	faces := p.Faces()
	screen := p.ScreenVertices()
	ids := p.ValidFaceIDs()
	tiles := p.Tiles()

	tileSize := float32(TileSize)

	for i := 0; i < p.ValidCount(); i++ {
		fid := ids[i]
		f := faces[fid]
		a, b, c := screen[f.A], screen[f.B], screen[f.C]

		minX, maxX := minf3(a.X, b.X, c.X), maxf3(a.X, b.X, c.X)
		minY, maxY := minf3(a.Y, b.Y, c.Y), maxf3(a.Y, b.Y, c.Y)

		if maxX < 0 || maxY < 0 || minX > float32(p.Width()) || minY > float32(p.Height()) {
			continue // fully off-screen, never reaches a tile
		}

		tx0 := clampInt(int(minX/tileSize), 0, p.TilesX()-1)
		tx1 := clampInt(int(maxX/tileSize), 0, p.TilesX()-1)
		ty0 := clampInt(int(minY/tileSize), 0, p.TilesY()-1)
		ty1 := clampInt(int(maxY/tileSize), 0, p.TilesY()-1)

		for ty := ty0; ty <= ty1; ty++ {
			for tx := tx0; tx <= tx1; tx++ {
				t := &tiles[ty*p.TilesX()+tx]
				if t.FaceCount >= MaxFacesPerTile {
					continue
				}
				t.Indices[t.FaceCount] = fid
				t.FaceCount++
			}
		}
	}
}

// ClearTiles resets every tile's face count to zero, without touching the
// tiles' fixed bounds geometry. Called once per frame before BinFaces.
func ClearTiles(p *Pool) {
	tiles := p.Tiles()
	for i := range tiles {
		tiles[i].FaceCount = 0
	}
}

func minf3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxf3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
