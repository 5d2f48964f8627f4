// pipeline_extract.go - Pixel Extractor: packs the active viewport into a contiguous buffer

package rasterpipe

// ExtractColors copies the active viewport out of the fixed WMax-strided
// color buffer into p.OutputBuffer(), tightly packed with row stride
// equal to p.Width() -- the layout a host blits directly to a texture or
// window surface without knowing anything about the pipeline's internal
// WMax stride (spec §4.8, §6).
func ExtractColors(p *Pool) {
	w, h := p.Width(), p.Height()
	src := p.ColorBuffer()
	dst := p.OutputBuffer()

	for y := 0; y < h; y++ {
		srcRow := src[y*WMax : y*WMax+w]
		dstRow := dst[y*w : y*w+w]
		copy(dstRow, srcRow)
	}
}
