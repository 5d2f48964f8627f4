package rasterpipe

import (
	"context"
	"testing"
)

// TestRunFrameSingleTriangle exercises the full fixed stage order (spec
// §6/§8) end to end: one front-facing, camera-facing triangle, lit and
// rasterized into a 64x64 viewport, then extracted. This is the simplest
// of the six end-to-end scenarios this package's tests cover.
func TestRunFrameSingleTriangle(t *testing.T) {
	p, err := NewPool(64, 64)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}

	raw := p.RawVertices()
	raw[0] = RawVertex{X: -0.5, Y: -0.5, Z: -2}
	raw[1] = RawVertex{X: 0.5, Y: -0.5, Z: -2}
	raw[2] = RawVertex{X: 0, Y: 0.5, Z: -2}
	p.SetVertexCount(3)

	p.Faces()[0] = Face{A: 0, B: 1, C: 2}
	p.SetFaceCount(1)

	p.SetMatrix(Identity())
	p.SetLightDirection(0, 0, 1)

	if err := RunFrame(context.Background(), p, false); err != nil {
		t.Fatalf("RunFrame: %v", err)
	}

	out := p.OutputBuffer()
	litAny := false
	for i := 0; i < 64*64; i++ {
		if out[i] != ClearColor {
			litAny = true
			break
		}
	}
	if !litAny {
		t.Fatal("expected the triangle to shade at least one output pixel")
	}

	// Every lit pixel must carry full alpha, per the packing contract.
	for i := 0; i < 64*64; i++ {
		if out[i] != ClearColor && out[i]&0xFF000000 != 0xFF000000 {
			t.Fatalf("pixel %d = %#x missing full alpha", i, out[i])
		}
	}
}

// TestRunFrameEmptySceneClearsToSentinel covers the degenerate-input
// scenario: zero faces should still produce a fully cleared frame, not
// a crash or stale buffer contents.
func TestRunFrameEmptySceneClearsToSentinel(t *testing.T) {
	p, _ := NewPool(32, 32)
	p.SetVertexCount(0)
	p.SetFaceCount(0)
	p.SetMatrix(Identity())

	if err := RunFrame(context.Background(), p, false); err != nil {
		t.Fatalf("RunFrame: %v", err)
	}

	out := p.OutputBuffer()
	for i := 0; i < 32*32; i++ {
		if out[i] != ClearColor {
			t.Fatalf("empty scene should extract to ClearColor everywhere, got %#x at %d", out[i], i)
		}
	}
}

// TestRunFrameBehindCameraRejected covers the frustum-rejection scenario:
// a triangle entirely behind the near plane must contribute no pixels.
func TestRunFrameBehindCameraRejected(t *testing.T) {
	p, _ := NewPool(32, 32)
	raw := p.RawVertices()
	raw[0] = RawVertex{X: -0.5, Y: -0.5, Z: 5} // positive Z: behind the camera
	raw[1] = RawVertex{X: 0.5, Y: -0.5, Z: 5}
	raw[2] = RawVertex{X: 0, Y: 0.5, Z: 5}
	p.SetVertexCount(3)
	p.Faces()[0] = Face{A: 0, B: 1, C: 2}
	p.SetFaceCount(1)
	p.SetMatrix(Identity())

	if err := RunFrame(context.Background(), p, false); err != nil {
		t.Fatalf("RunFrame: %v", err)
	}

	out := p.OutputBuffer()
	for i := 0; i < 32*32; i++ {
		if out[i] != ClearColor {
			t.Fatalf("triangle behind the camera should not be drawn, found %#x at %d", out[i], i)
		}
	}
}

func BenchmarkRunFrameThousandTriangles(b *testing.B) {
	p, _ := NewPool(256, 256)
	raw := p.RawVertices()
	faces := p.Faces()
	const tris = 1000
	for i := 0; i < tris; i++ {
		base := uint32(i * 3)
		ox := float32(i%32) - 16
		oy := float32(i/32) - 16
		raw[base] = RawVertex{X: ox, Y: oy, Z: -5}
		raw[base+1] = RawVertex{X: ox + 0.4, Y: oy, Z: -5}
		raw[base+2] = RawVertex{X: ox, Y: oy + 0.4, Z: -5}
		faces[i] = Face{A: base, B: base + 1, C: base + 2}
	}
	p.SetVertexCount(tris * 3)
	p.SetFaceCount(tris)
	p.SetMatrix(Identity())
	p.SetLightDirection(0, 0, 1)

	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := RunFrame(ctx, p, false); err != nil {
			b.Fatalf("RunFrame: %v", err)
		}
	}
}
