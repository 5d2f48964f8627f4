// pipeline.go - Frame orchestration: the fixed stage order every caller follows

package rasterpipe

import "context"

// RunFrame drives one full frame through the pipeline in the fixed order
// the external interface contract requires (spec §6): transform, project,
// cull/light/LOD, cluster cull, sort, clear tiles, bin, clear pixels,
// rasterize, extract. Transform and project run sequentially here; tile
// rasterization goes through RenderTilesParallel with the default worker
// count. A host chasing throughput can call TransformVerticesParallel and
// ProjectVerticesParallel directly instead, in the same order.
//
// The caller is responsible for having already set the frame's inputs on
// p: RawVertices/Faces contents, SetVertexCount, SetFaceCount, SetMatrix,
// SetLightDirection, and (for a real camera) SetFOV -- NewPool seeds a
// default fov/wireDensity but a host rendering to spec should set its own.
func RunFrame(ctx context.Context, p *Pool, wireframe bool) error {
	TransformVertices(p)
	ProjectVertices(p)
	ProcessFaces(p)
	ProcessClusters(p)
	SortFaces(p)

	ClearTiles(p)
	BinFaces(p)

	p.Clear(p.Width(), p.Height())
	if err := RenderTilesParallel(ctx, p, 0); err != nil {
		return err
	}

	if wireframe {
		RenderWireframe(p, p.WireDensity())
	}

	ExtractColors(p)
	return nil
}
