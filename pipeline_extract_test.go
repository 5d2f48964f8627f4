package rasterpipe

import "testing"

func TestExtractColorsPacksRowsContiguously(t *testing.T) {
	p, _ := NewPool(4, 3)
	color := p.ColorBuffer()
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			color[y*WMax+x] = uint32(y*10 + x)
		}
	}

	ExtractColors(p)

	out := p.OutputBuffer()
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := uint32(y*10 + x)
			got := out[y*4+x]
			if got != want {
				t.Fatalf("output[%d,%d] = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestExtractColorsIgnoresBeyondViewport(t *testing.T) {
	p, _ := NewPool(2, 2)
	color := p.ColorBuffer()
	color[0*WMax+5] = 0xDEADBEEF // outside the active 2x2 viewport

	ExtractColors(p)

	out := p.OutputBuffer()
	for i := 0; i < 4; i++ {
		if out[i] == 0xDEADBEEF {
			t.Fatalf("extraction leaked a pixel from outside the active viewport")
		}
	}
}
