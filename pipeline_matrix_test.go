package rasterpipe

import "testing"

func TestMultiplyIdentityIsNoop(t *testing.T) {
	m := Translate(1, 2, 3)
	got := Multiply(Identity(), m)
	for i := range got {
		if got[i] != m[i] {
			t.Fatalf("Multiply(Identity, m)[%d] = %v, want %v", i, got[i], m[i])
		}
	}
}

func TestMultiplyComposesTranslations(t *testing.T) {
	a := Translate(1, 0, 0)
	b := Translate(0, 2, 0)
	got := Multiply(a, b)
	want := Translate(1, 2, 0)
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("composed translation[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScaleAppliesPerAxis(t *testing.T) {
	m := Scale(2, 3, 4)
	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Fatalf("Scale matrix diagonal = (%v,%v,%v), want (2,3,4)", m[0], m[5], m[10])
	}
}
