package scenario

import (
	"context"
	"fmt"

	"github.com/veetance/rasterpipe"
)

// Run builds a rasterpipe.Pool sized to the scene's viewport, loads the
// scene's geometry and lighting into it, and renders a single frame. It
// returns the extracted, tightly-packed pixel buffer.
func Run(ctx context.Context, sc *Scene) ([]uint32, error) {
	p, err := rasterpipe.NewPool(sc.Width, sc.Height)
	if err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}

	raw := p.RawVertices()
	copy(raw, sc.Vertices)
	p.SetVertexCount(len(sc.Vertices))

	faces := p.Faces()
	copy(faces, sc.Faces)
	p.SetFaceCount(len(sc.Faces))

	p.SetMatrix(sc.Matrix)
	p.SetLightDirection(sc.Light[0], sc.Light[1], sc.Light[2])
	p.SetFOV(sc.FOV)
	p.SetWireDensity(sc.WireDensity)

	if err := rasterpipe.RunFrame(ctx, p, sc.Wireframe); err != nil {
		return nil, fmt.Errorf("scenario: RunFrame: %w", err)
	}

	out := make([]uint32, sc.Width*sc.Height)
	copy(out, p.OutputBuffer()[:sc.Width*sc.Height])
	return out, nil
}

// RunFile is a convenience wrapper around Load followed by Run.
func RunFile(ctx context.Context, path string) ([]uint32, *Scene, error) {
	sc, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	out, err := Run(ctx, sc)
	if err != nil {
		return nil, nil, err
	}
	return out, sc, nil
}
