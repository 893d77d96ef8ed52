package canvas

import "github.com/chewxy/math32"

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bezier segment.
const kappa = 0.5522848

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	X, Y float32
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	X, Y float32
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	CX, CY float32
	X, Y   float32
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	C1X, C1Y float32
	C2X, C2Y float32
	X, Y     float32
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path under construction. Script path opcodes
// append to it; fill/stroke/clip operations hand it to the canvas.
type Path struct {
	elements []PathElement
	start    [2]float32 // starting point of current subpath
	current  [2]float32 // current point
	started  bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float32) {
	p.elements = append(p.elements, MoveTo{X: x, Y: y})
	p.start = [2]float32{x, y}
	p.current = p.start
	p.started = true
}

// LineTo draws a line to a point. If the path has no current point, the
// segment starts an implicit subpath at the origin.
func (p *Path) LineTo(x, y float32) {
	p.ensureStart()
	p.elements = append(p.elements, LineTo{X: x, Y: y})
	p.current = [2]float32{x, y}
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float32) {
	p.ensureStart()
	p.elements = append(p.elements, QuadTo{CX: cx, CY: cy, X: x, Y: y})
	p.current = [2]float32{x, y}
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	p.ensureStart()
	p.elements = append(p.elements, CubicTo{
		C1X: c1x, C1Y: c1y,
		C2X: c2x, C2Y: c2y,
		X: x, Y: y,
	})
	p.current = [2]float32{x, y}
}

// ArcTo draws an arc tangent to the two lines current→(x1,y1) and
// (x1,y1)→(x2,y2), the HTML-canvas arcTo construction.
func (p *Path) ArcTo(x1, y1, x2, y2, radius float32) {
	p.ensureStart()
	x0, y0 := p.current[0], p.current[1]

	// Tangent directions away from the corner.
	d0x, d0y := x0-x1, y0-y1
	d1x, d1y := x2-x1, y2-y1
	l0 := math32.Hypot(d0x, d0y)
	l1 := math32.Hypot(d1x, d1y)
	if radius <= 0 || l0 == 0 || l1 == 0 {
		p.LineTo(x1, y1)
		return
	}
	d0x, d0y = d0x/l0, d0y/l0
	d1x, d1y = d1x/l1, d1y/l1

	angle := math32.Acos(d0x*d1x + d0y*d1y)
	if angle == 0 || angle == math32.Pi {
		p.LineTo(x1, y1)
		return
	}
	dist := radius / math32.Tan(angle/2)

	// Tangent points on each leg.
	t0x, t0y := x1+d0x*dist, y1+d0y*dist
	t1x, t1y := x1+d1x*dist, y1+d1y*dist

	// Arc center lies along the angle bisector.
	bx, by := d0x+d1x, d0y+d1y
	bl := math32.Hypot(bx, by)
	bx, by = bx/bl, by/bl
	centerDist := radius / math32.Sin(angle/2)
	cx, cy := x1+bx*centerDist, y1+by*centerDist

	a0 := math32.Atan2(t0y-cy, t0x-cx)
	a1 := math32.Atan2(t1y-cy, t1x-cx)
	sweep := a1 - a0
	for sweep > math32.Pi {
		sweep -= 2 * math32.Pi
	}
	for sweep < -math32.Pi {
		sweep += 2 * math32.Pi
	}

	p.LineTo(t0x, t0y)
	p.appendArc(cx, cy, radius, radius, a0, sweep)
}

// Close closes the current subpath by drawing a line to its start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = [2]float32{}
	p.current = [2]float32{}
	p.started = false
}

// Clone returns a deep copy of the path. Graphics-state snapshots clone
// the in-progress path so later appends do not leak into saved state.
func (p *Path) Clone() *Path {
	if p == nil {
		return nil
	}
	c := &Path{
		elements: make([]PathElement, len(p.elements)),
		start:    p.start,
		current:  p.current,
		started:  p.started,
	}
	copy(c.elements, p.elements)
	return c
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool {
	return len(p.elements) == 0
}

func (p *Path) ensureStart() {
	if !p.started {
		p.MoveTo(0, 0)
	}
}

// ---------------------------------------------------------------------------
// Closed parametric shapes. Each appends one complete subpath.
// ---------------------------------------------------------------------------

// Triangle appends a closed triangle.
func (p *Path) Triangle(x0, y0, x1, y1, x2, y2 float32) {
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	p.LineTo(x2, y2)
	p.Close()
}

// Quad appends a closed quadrilateral.
func (p *Path) Quad(x0, y0, x1, y1, x2, y2, x3, y3 float32) {
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	p.LineTo(x2, y2)
	p.LineTo(x3, y3)
	p.Close()
}

// Rect appends a closed w×h rectangle with its upper-left at the origin.
func (p *Path) Rect(w, h float32) {
	p.MoveTo(0, 0)
	p.LineTo(w, 0)
	p.LineTo(w, h)
	p.LineTo(0, h)
	p.Close()
}

// RoundRect appends a closed rounded rectangle with one radius for all
// four corners.
func (p *Path) RoundRect(w, h, r float32) {
	p.RoundRectVar(w, h, r, r, r, r)
}

// RoundRectVar appends a closed rounded rectangle with independent
// corner radii, ordered top-left, top-right, bottom-right, bottom-left.
func (p *Path) RoundRectVar(w, h, tl, tr, br, bl float32) {
	half := math32.Min(w, h) / 2
	tl = clampRadius(tl, half)
	tr = clampRadius(tr, half)
	br = clampRadius(br, half)
	bl = clampRadius(bl, half)

	p.MoveTo(tl, 0)
	p.LineTo(w-tr, 0)
	p.CubicTo(w-tr+kappa*tr, 0, w, tr-kappa*tr, w, tr)
	p.LineTo(w, h-br)
	p.CubicTo(w, h-br+kappa*br, w-br+kappa*br, h, w-br, h)
	p.LineTo(bl, h)
	p.CubicTo(bl-kappa*bl, h, 0, h-bl+kappa*bl, 0, h-bl)
	p.LineTo(0, tl)
	p.CubicTo(0, tl-kappa*tl, tl-kappa*tl, 0, tl, 0)
	p.Close()
}

// Circle appends a closed circle of the given radius centered at the
// origin.
func (p *Path) Circle(r float32) {
	p.Ellipse(r, r)
}

// Ellipse appends a closed ellipse centered at the origin.
func (p *Path) Ellipse(rx, ry float32) {
	kx := kappa * rx
	ky := kappa * ry

	p.MoveTo(rx, 0)
	p.CubicTo(rx, ky, kx, ry, 0, ry)
	p.CubicTo(-kx, ry, -rx, ky, -rx, 0)
	p.CubicTo(-rx, -ky, -kx, -ry, 0, -ry)
	p.CubicTo(kx, -ry, rx, -ky, rx, 0)
	p.Close()
}

// Sector appends a closed wedge centered at the origin, sweeping from
// angle zero through the given angle in radians.
func (p *Path) Sector(radius, radians float32) {
	p.MoveTo(0, 0)
	p.LineTo(radius, 0)
	p.appendArc(0, 0, radius, radius, 0, radians)
	p.Close()
}

// Arc appends an arc of a circle centered at (cx, cy) from the start
// angle to the end angle, both in radians. When clockwise is set the
// sweep runs in the negative angular direction.
func (p *Path) Arc(cx, cy, radius, start, end float32, clockwise bool) {
	sweep := end - start
	if clockwise && sweep > 0 {
		sweep -= 2 * math32.Pi
	} else if !clockwise && sweep < 0 {
		sweep += 2 * math32.Pi
	}
	p.MoveTo(cx+radius*math32.Cos(start), cy+radius*math32.Sin(start))
	p.appendArc(cx, cy, radius, radius, start, sweep)
}

// appendArc approximates an elliptical arc with cubic segments of at
// most a quarter turn each. The current point must already be at the
// arc's start.
func (p *Path) appendArc(cx, cy, rx, ry, start, sweep float32) {
	if sweep == 0 {
		return
	}
	segments := int(math32.Ceil(math32.Abs(sweep) / (math32.Pi / 2)))
	if segments < 1 {
		segments = 1
	}
	step := sweep / float32(segments)
	// Control point distance for one step of the arc.
	k := 4.0 / 3.0 * math32.Tan(step/4)

	a0 := start
	for i := 0; i < segments; i++ {
		a1 := a0 + step
		cos0, sin0 := math32.Cos(a0), math32.Sin(a0)
		cos1, sin1 := math32.Cos(a1), math32.Sin(a1)

		x0, y0 := cx+rx*cos0, cy+ry*sin0
		x1, y1 := cx+rx*cos1, cy+ry*sin1
		p.CubicTo(
			x0-k*rx*sin0, y0+k*ry*cos0,
			x1+k*rx*sin1, y1-k*ry*cos1,
			x1, y1,
		)
		a0 = a1
	}
}

func clampRadius(r, limit float32) float32 {
	if r < 0 {
		return 0
	}
	if r > limit {
		return limit
	}
	return r
}
