package main

import (
	"fmt"
	"image"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/term"
)

// printANSIPreview downsamples the rendered frame to fit the current
// terminal width (via golang.org/x/term) using bilinear scaling (via
// golang.org/x/image/draw) and prints it as a grid of 24-bit ANSI
// background-color cells, two source rows per printed line to
// approximate square pixels in a typical monospace font.
func printANSIPreview(pixels []uint32, width, height int) {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth <= 0 {
		termWidth = 80
	}
	if termWidth > width {
		termWidth = width
	}

	src := pixelsToImage(pixels, width, height)
	scale := float64(termWidth) / float64(width)
	dstW := termWidth
	dstH := int(float64(height) * scale / 2) // halve rows for non-square terminal cells
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var out []byte
	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			r, g, b, _ := dst.At(x, y).RGBA()
			out = append(out, []byte(fmt.Sprintf("\x1b[48;2;%d;%d;%dm ", r>>8, g>>8, b>>8))...)
		}
		out = append(out, []byte("\x1b[0m\n")...)
	}
	os.Stdout.Write(out)
}
