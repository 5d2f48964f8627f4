package main

import (
	"bytes"
	"fmt"
	"image/png"

	"golang.design/x/clipboard"
)

// copyPNGToClipboard PNG-encodes the rendered frame and pushes it to the
// system clipboard, grounded on the teacher's video_backend_ebiten.go use
// of golang.design/x/clipboard for its own screenshot command.
func copyPNGToClipboard(pixels []uint32, width, height int) error {
	if err := clipboard.Init(); err != nil {
		return fmt.Errorf("clipboard init: %w", err)
	}

	img := pixelsToImage(pixels, width, height)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}

	clipboard.Write(clipboard.FmtImage, buf.Bytes())
	return nil
}
