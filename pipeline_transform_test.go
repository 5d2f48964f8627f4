package rasterpipe

import "testing"

func TestTransformVerticesIdentity(t *testing.T) {
	p, _ := NewPool(64, 64)
	p.SetMatrix(Identity())
	raw := p.RawVertices()
	raw[0] = RawVertex{X: 1, Y: 2, Z: 3}
	p.SetVertexCount(1)

	TransformVertices(p)

	got := p.ClipVertices()[0]
	want := Vertex{X: 1, Y: 2, Z: 3, W: 1}
	if got != want {
		t.Fatalf("identity transform = %+v, want %+v", got, want)
	}
}

func TestTransformVerticesTranslate(t *testing.T) {
	p, _ := NewPool(64, 64)
	p.SetMatrix(Translate(10, -5, 2))
	raw := p.RawVertices()
	raw[0] = RawVertex{X: 0, Y: 0, Z: 0}
	p.SetVertexCount(1)

	TransformVertices(p)

	got := p.ClipVertices()[0]
	if got.X != 10 || got.Y != -5 || got.Z != 2 || got.W != 1 {
		t.Fatalf("translate transform = %+v", got)
	}
}

func TestTransformVerticesRangeMatchesFullRun(t *testing.T) {
	p, _ := NewPool(64, 64)
	p.SetMatrix(RotateY(0.7))
	raw := p.RawVertices()
	for i := 0; i < 10; i++ {
		raw[i] = RawVertex{X: float32(i), Y: float32(i) * 2, Z: float32(i) * 3}
	}
	p.SetVertexCount(10)

	TransformVertices(p)
	sequential := append([]Vertex(nil), p.ClipVertices()[:10]...)

	for i := range p.ClipVertices()[:10] {
		p.ClipVertices()[i] = Vertex{}
	}
	TransformVerticesRange(p, 0, 5)
	TransformVerticesRange(p, 5, 10)
	ranged := p.ClipVertices()[:10]

	for i := range sequential {
		if sequential[i] != ranged[i] {
			t.Fatalf("range split diverges at %d: %+v != %+v", i, sequential[i], ranged[i])
		}
	}
}
