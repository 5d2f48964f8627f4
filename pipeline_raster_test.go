package rasterpipe

import "testing"

func TestShadeIntensityPacksABGR(t *testing.T) {
	got := shadeIntensity(1.0)
	want := uint32(0xFFFFFFFF)
	if got != want {
		t.Fatalf("shadeIntensity(1.0) = %#x, want %#x", got, want)
	}

	got = shadeIntensity(0.0)
	want = 0xFF000000
	if got != want {
		t.Fatalf("shadeIntensity(0.0) = %#x, want %#x", got, want)
	}

	// Alpha channel is always opaque regardless of intensity.
	if shadeIntensity(0.5)&0xFF000000 != 0xFF000000 {
		t.Fatalf("shadeIntensity must always set full alpha")
	}
}

func TestShadeIntensityClamps(t *testing.T) {
	if shadeIntensity(-1) != shadeIntensity(0) {
		t.Fatalf("negative intensity should clamp to 0")
	}
	if shadeIntensity(2) != shadeIntensity(1) {
		t.Fatalf("intensity above 1 should clamp to 1")
	}
}

func TestRasterizeTileDepthTestNearerWins(t *testing.T) {
	p, _ := NewPool(128, 128)
	setupFullTile(p)

	faces := p.Faces()
	screen := p.ScreenVertices()
	intens := p.Intensities()

	// Face 0: far triangle covering a region, low intensity. Screen Z is
	// the Projector's depth convention directly (larger means nearer), so
	// "far" is the smaller value here.
	screen[0] = Vertex{X: 10, Y: 10, Z: 0.2, W: 1}
	screen[1] = Vertex{X: 50, Y: 10, Z: 0.2, W: 1}
	screen[2] = Vertex{X: 10, Y: 50, Z: 0.2, W: 1}
	faces[0] = Face{A: 0, B: 1, C: 2}
	intens[0] = 0.2

	// Face 1: same footprint, nearer (larger depth value), higher intensity.
	screen[3] = Vertex{X: 10, Y: 10, Z: 0.9, W: 1}
	screen[4] = Vertex{X: 50, Y: 10, Z: 0.9, W: 1}
	screen[5] = Vertex{X: 10, Y: 50, Z: 0.9, W: 1}
	faces[1] = Face{A: 3, B: 4, C: 5}
	intens[1] = 0.9

	tile := &p.Tiles()[0]
	tile.Indices[0] = 0
	tile.Indices[1] = 1
	tile.FaceCount = 2

	RasterizeTile(p, 0)

	idx := 20*WMax + 20
	want := shadeIntensity(0.9)
	if p.ColorBuffer()[idx] != want {
		t.Fatalf("color at (20,20) = %#x, want %#x (nearer face should win)", p.ColorBuffer()[idx], want)
	}
}

func TestRasterizeTileFartherFaceLosesWhenDrawnSecond(t *testing.T) {
	p, _ := NewPool(128, 128)
	setupFullTile(p)
	faces := p.Faces()
	screen := p.ScreenVertices()
	intens := p.Intensities()

	// Nearer face (larger depth value) drawn first.
	screen[0] = Vertex{X: 10, Y: 10, Z: 0.9, W: 1}
	screen[1] = Vertex{X: 50, Y: 10, Z: 0.9, W: 1}
	screen[2] = Vertex{X: 10, Y: 50, Z: 0.9, W: 1}
	faces[0] = Face{A: 0, B: 1, C: 2}
	intens[0] = 0.9

	// Farther face (smaller depth value) drawn second; must not overwrite.
	screen[3] = Vertex{X: 10, Y: 10, Z: 0.2, W: 1}
	screen[4] = Vertex{X: 50, Y: 10, Z: 0.2, W: 1}
	screen[5] = Vertex{X: 10, Y: 50, Z: 0.2, W: 1}
	faces[1] = Face{A: 3, B: 4, C: 5}
	intens[1] = 0.2

	tile := &p.Tiles()[0]
	tile.Indices[0] = 0 // nearer drawn first
	tile.Indices[1] = 1 // farther drawn second, must not overwrite
	tile.FaceCount = 2

	RasterizeTile(p, 0)

	idx := 20*WMax + 20
	want := shadeIntensity(0.9)
	if p.ColorBuffer()[idx] != want {
		t.Fatalf("farther face incorrectly overwrote nearer pixel: got %#x, want %#x", p.ColorBuffer()[idx], want)
	}
}

func TestRasterizeTileSubPixelPunts(t *testing.T) {
	p, _ := NewPool(128, 128)
	setupFullTile(p)
	faces := p.Faces()
	screen := p.ScreenVertices()
	intens := p.Intensities()

	screen[0] = Vertex{X: 20.1, Y: 20.1, Z: 0, W: 1}
	screen[1] = Vertex{X: 20.6, Y: 20.1, Z: 0, W: 1}
	screen[2] = Vertex{X: 20.1, Y: 20.6, Z: 0, W: 1}
	faces[0] = Face{A: 0, B: 1, C: 2}
	intens[0] = 0.7

	tile := &p.Tiles()[0]
	tile.Indices[0] = 0
	tile.FaceCount = 1

	RasterizeTile(p, 0)

	idx := 20*WMax + 20
	if p.ColorBuffer()[idx] == ClearColor {
		t.Fatalf("sub-pixel triangle should still shade its nearest pixel")
	}
}

func setupFullTile(p *Pool) {
	ClearTiles(p)
}
