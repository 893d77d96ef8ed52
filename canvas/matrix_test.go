package canvas

import (
	"testing"

	"github.com/chewxy/math32"
)

const epsilon = 1e-5

func approx(a, b float32) bool {
	return math32.Abs(a-b) < epsilon
}

func TestMatrixIdentity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	x, y := m.TransformPoint(3, 4)
	if x != 3 || y != 4 {
		t.Errorf("identity transform = (%v, %v), want (3, 4)", x, y)
	}
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name         string
		m            Matrix
		x, y         float32
		wantX, wantY float32
	}{
		{"translate", Translate(10, 20), 1, 2, 11, 22},
		{"scale", Scale(2, 3), 4, 5, 8, 15},
		{"rotate quarter", Rotate(math32.Pi / 2), 1, 0, 0, 1},
		{"rotate half", Rotate(math32.Pi), 1, 0, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.m.TransformPoint(tt.x, tt.y)
			if !approx(x, tt.wantX) || !approx(y, tt.wantY) {
				t.Errorf("TransformPoint(%v, %v) = (%v, %v), want (%v, %v)",
					tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMatrixMultiply(t *testing.T) {
	// m.Multiply(other) applies other first, then m.
	m := Translate(10, 0).Multiply(Scale(2, 2))
	x, y := m.TransformPoint(3, 4)
	if !approx(x, 16) || !approx(y, 8) {
		t.Errorf("scale-then-translate = (%v, %v), want (16, 8)", x, y)
	}

	// Opposite order differs.
	m = Scale(2, 2).Multiply(Translate(10, 0))
	x, y = m.TransformPoint(3, 4)
	if !approx(x, 26) || !approx(y, 8) {
		t.Errorf("translate-then-scale = (%v, %v), want (26, 8)", x, y)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translate(5, -3).Multiply(Rotate(0.7)).Multiply(Scale(2, 4))
	inv := m.Invert()

	x, y := m.TransformPoint(3, 4)
	bx, by := inv.TransformPoint(x, y)
	if !approx(bx, 3) || !approx(by, 4) {
		t.Errorf("invert roundtrip = (%v, %v), want (3, 4)", bx, by)
	}

	if !m.Multiply(inv).IsIdentity() {
		// IsIdentity uses exact comparison; verify approximately.
		p := m.Multiply(inv)
		if !approx(p.A, 1) || !approx(p.B, 0) || !approx(p.C, 0) ||
			!approx(p.D, 0) || !approx(p.E, 1) || !approx(p.F, 0) {
			t.Errorf("m * m^-1 = %+v, want identity", p)
		}
	}
}
