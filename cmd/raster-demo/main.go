// Command raster-demo is a small host around the rasterpipe library: it
// loads a Lua scenario script, renders one frame, and shows the result
// either in a windowed ebiten viewer or as a downsampled ANSI preview
// printed straight to the terminal. It follows the teacher engine's
// habit of parsing os.Args by hand rather than reaching for the flag
// package, and of printing a small banner before doing anything else.
package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/veetance/rasterpipe/scenario"
)

type options struct {
	scenarioPath string
	terminalMode bool
	screenshot   bool
}

func parseArgs(args []string) (options, error) {
	opts := options{scenarioPath: "scenario/testdata/single_lit_triangle.lua"}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-scenario", "--scenario":
			i++
			if i >= len(args) {
				return opts, fmt.Errorf("raster-demo: %s requires a path argument", args[i-1])
			}
			opts.scenarioPath = args[i]
		case "-term", "--term":
			opts.terminalMode = true
		case "-screenshot", "--screenshot":
			opts.screenshot = true
		case "-h", "--help":
			printUsage()
			os.Exit(0)
		default:
			return opts, fmt.Errorf("raster-demo: unrecognized argument %q", args[i])
		}
	}
	return opts, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: raster-demo [--scenario path.lua] [--term] [--screenshot]")
}

func boilerPlate() {
	fmt.Println(`
 ____            _                  _
|  _ \ __ _ ___| |_ ___ _ __ _ __ (_)_ __   ___
| |_) / _` + "`" + ` / __| __/ _ \ '__| '_ \| | '_ \ / _ \
|  _ < (_| \__ \ ||  __/ |  | |_) | | |_) |  __/
|_| \_\__,_|___/\__\___|_|  | .__/|_| .__/ \___|
                             |_|     |_|
  CPU software rasterizer pipeline -- demo host`)
}

func main() {
	boilerPlate()

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage()
		os.Exit(1)
	}

	out, sc, err := scenario.RunFile(context.Background(), opts.scenarioPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "raster-demo:", err)
		os.Exit(1)
	}

	if opts.screenshot {
		if err := copyPNGToClipboard(out, sc.Width, sc.Height); err != nil {
			fmt.Fprintln(os.Stderr, "raster-demo: screenshot:", err)
		} else {
			fmt.Println("frame copied to clipboard")
		}
	}

	if opts.terminalMode {
		printANSIPreview(out, sc.Width, sc.Height)
		return
	}

	game := &viewerGame{pixels: out, width: sc.Width, height: sc.Height}
	ebiten.SetWindowSize(sc.Width*2, sc.Height*2)
	ebiten.SetWindowTitle("raster-demo")
	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintln(os.Stderr, "raster-demo:", err)
		os.Exit(1)
	}
}

// viewerGame is the minimal ebiten.Game implementation needed to blit a
// single already-rendered frame to a window, grounded on the teacher's
// ebiten-backed video_backend_ebiten.go host loop.
type viewerGame struct {
	pixels        []uint32
	width, height int
	img           *ebiten.Image
}

func (g *viewerGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *viewerGame) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImage(g.width, g.height)
		buf := make([]byte, g.width*g.height*4)
		for i, px := range g.pixels {
			r := byte(px)
			gch := byte(px >> 8)
			b := byte(px >> 16)
			a := byte(px >> 24)
			buf[i*4+0] = r
			buf[i*4+1] = gch
			buf[i*4+2] = b
			buf[i*4+3] = a
		}
		g.img.WritePixels(buf)
	}
	screen.DrawImage(g.img, nil)
	ebitenutil.DebugPrint(screen, "raster-demo (press Esc to quit)")
}

func (g *viewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// pixelsToImage converts a packed ABGR buffer (rasterpipe's output
// format) into a standard library image.RGBA for use with
// golang.org/x/image/draw and for clipboard screenshots.
func pixelsToImage(pixels []uint32, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			px := pixels[y*width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: byte(px),
				G: byte(px >> 8),
				B: byte(px >> 16),
				A: byte(px >> 24),
			})
		}
	}
	return img
}
