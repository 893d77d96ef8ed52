package canvas

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestPathBasicElements(t *testing.T) {
	p := NewPath()
	if !p.Empty() {
		t.Error("new path should be empty")
	}

	p.MoveTo(1, 2)
	p.LineTo(3, 4)
	p.QuadraticTo(5, 6, 7, 8)
	p.CubicTo(1, 1, 2, 2, 3, 3)
	p.Close()

	want := []PathElement{
		MoveTo{X: 1, Y: 2},
		LineTo{X: 3, Y: 4},
		QuadTo{CX: 5, CY: 6, X: 7, Y: 8},
		CubicTo{C1X: 1, C1Y: 1, C2X: 2, C2Y: 2, X: 3, Y: 3},
		Close{},
	}
	got := p.Elements()
	if len(got) != len(want) {
		t.Fatalf("got %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestPathLazyStart(t *testing.T) {
	// A segment without a preceding MoveTo starts an implicit subpath
	// at the origin.
	p := NewPath()
	p.LineTo(5, 5)

	els := p.Elements()
	if len(els) != 2 {
		t.Fatalf("got %d elements, want 2", len(els))
	}
	if els[0] != (MoveTo{X: 0, Y: 0}) {
		t.Errorf("first element = %#v, want origin MoveTo", els[0])
	}
}

func TestPathRect(t *testing.T) {
	p := NewPath()
	p.Rect(40, 20)

	els := p.Elements()
	if len(els) != 5 {
		t.Fatalf("got %d elements, want 5", len(els))
	}
	if els[0] != (MoveTo{X: 0, Y: 0}) {
		t.Errorf("rect starts at %#v, want origin", els[0])
	}
	if els[2] != (LineTo{X: 40, Y: 20}) {
		t.Errorf("opposite corner = %#v, want (40, 20)", els[2])
	}
	if els[4] != (Close{}) {
		t.Error("rect subpath not closed")
	}
}

func TestPathCircle(t *testing.T) {
	p := NewPath()
	p.Circle(10)

	// One MoveTo, four quarter-circle cubics, Close.
	els := p.Elements()
	if len(els) != 6 {
		t.Fatalf("got %d elements, want 6", len(els))
	}
	if els[0] != (MoveTo{X: 10, Y: 0}) {
		t.Errorf("circle starts at %#v, want (10, 0)", els[0])
	}
	for i := 1; i <= 4; i++ {
		if _, ok := els[i].(CubicTo); !ok {
			t.Errorf("element %d = %T, want CubicTo", i, els[i])
		}
	}
}

func TestPathRoundRectClampsRadii(t *testing.T) {
	// Radii larger than half the short side are clamped.
	p := NewPath()
	p.RoundRect(20, 10, 50)

	els := p.Elements()
	if els[0] != (MoveTo{X: 5, Y: 0}) {
		t.Errorf("round rect starts at %#v, want clamped (5, 0)", els[0])
	}
}

func TestPathArcStart(t *testing.T) {
	p := NewPath()
	p.Arc(10, 20, 5, 0, math32.Pi, false)

	els := p.Elements()
	mv, ok := els[0].(MoveTo)
	if !ok {
		t.Fatalf("first element = %T, want MoveTo", els[0])
	}
	if mv.X != 15 || mv.Y != 20 {
		t.Errorf("arc starts at (%v, %v), want (15, 20)", mv.X, mv.Y)
	}
	// Half circle needs two quarter-turn cubics.
	cubics := 0
	for _, e := range els[1:] {
		if _, ok := e.(CubicTo); ok {
			cubics++
		}
	}
	if cubics != 2 {
		t.Errorf("got %d cubic segments, want 2", cubics)
	}
}

func TestPathArcClockwise(t *testing.T) {
	p := NewPath()
	p.Arc(0, 0, 1, 0, -math32.Pi/2, true)

	var last CubicTo
	for _, e := range p.Elements() {
		if c, ok := e.(CubicTo); ok {
			last = c
		}
	}
	// Sweeping clockwise from angle 0 by a quarter turn ends at (0, -1).
	if math32.Abs(last.X) > 1e-5 || math32.Abs(last.Y+1) > 1e-5 {
		t.Errorf("clockwise arc ends at (%v, %v), want (0, -1)", last.X, last.Y)
	}
}

func TestPathArcToDegenerate(t *testing.T) {
	// Zero radius degrades to a line to the corner.
	p := NewPath()
	p.MoveTo(0, 0)
	p.ArcTo(10, 0, 10, 10, 0)

	els := p.Elements()
	if len(els) != 2 {
		t.Fatalf("got %d elements, want 2", len(els))
	}
	if els[1] != (LineTo{X: 10, Y: 0}) {
		t.Errorf("second element = %#v, want LineTo corner", els[1])
	}
}

func TestPathArcToRounded(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.ArcTo(10, 0, 10, 10, 2)

	els := p.Elements()
	// MoveTo, LineTo to the first tangent point, then arc cubics.
	if len(els) < 3 {
		t.Fatalf("got %d elements, want at least 3", len(els))
	}
	lt, ok := els[1].(LineTo)
	if !ok {
		t.Fatalf("second element = %T, want LineTo", els[1])
	}
	if math32.Abs(lt.X-8) > 1e-4 || math32.Abs(lt.Y) > 1e-4 {
		t.Errorf("tangent point = (%v, %v), want (8, 0)", lt.X, lt.Y)
	}
}

func TestPathCloneIsolated(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(1, 0)

	c := p.Clone()
	p.LineTo(2, 0)

	if got := len(c.Elements()); got != 2 {
		t.Errorf("clone has %d elements after original append, want 2", got)
	}
	if got := len(p.Elements()); got != 3 {
		t.Errorf("original has %d elements, want 3", got)
	}

	var nilPath *Path
	if nilPath.Clone() != nil {
		t.Error("Clone of nil path should be nil")
	}
}

func TestPathClear(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(2, 2)
	p.Clear()

	if !p.Empty() {
		t.Error("path not empty after Clear")
	}
	// Lazy origin start applies again after a clear.
	p.LineTo(5, 5)
	if p.Elements()[0] != (MoveTo{X: 0, Y: 0}) {
		t.Errorf("first element after clear = %#v, want origin MoveTo", p.Elements()[0])
	}
}

func TestPathSector(t *testing.T) {
	p := NewPath()
	p.Sector(10, math32.Pi/2)

	els := p.Elements()
	if els[0] != (MoveTo{X: 0, Y: 0}) {
		t.Errorf("sector starts at %#v, want origin", els[0])
	}
	if els[1] != (LineTo{X: 10, Y: 0}) {
		t.Errorf("sector edge = %#v, want (10, 0)", els[1])
	}
	if els[len(els)-1] != (Close{}) {
		t.Error("sector subpath not closed")
	}
}
