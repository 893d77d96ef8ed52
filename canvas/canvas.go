// Package canvas defines the drawing boundary between the script engine
// and a display backend. The engine resolves scripts into calls on the
// Canvas interface; backends (windowed, direct-display, off-screen)
// implement it over their native surface API.
//
// Fonts and images are opaque resources: the engine looks them up by
// identifier and passes the handles through. Decoding image bytes and
// loading font files belong to the embedding environment.
package canvas

// Rect is an axis-aligned rectangle given by its upper-left corner and
// size.
type Rect struct {
	X, Y float32
	W, H float32
}

// XYWH creates a Rect from its components.
func XYWH(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Image is an opaque handle to a cached image resource.
type Image interface {
	// Size returns the image dimensions in pixels.
	Size() (w, h int)
}

// TextMetrics describes a measured string at a specific size. Ascent
// and Descent are positive distances from the baseline.
type TextMetrics struct {
	Advance float32
	Ascent  float32
	Descent float32
}

// Typeface is an opaque handle to a cached font resource. The engine
// needs exactly one capability from it: measuring a string so text can
// be aligned before drawing.
type Typeface interface {
	Measure(text string, size float32) TextMetrics
}

// Canvas is the drawing surface the executor renders into. Immediate
// shapes are drawn in the current local coordinate frame: rectangles
// with their upper-left at the origin, circles and ovals centered on
// it. Arbitrary geometry goes through DrawPath.
//
// Save/Restore bracket the canvas's own transform and clip state; the
// engine keeps its paint state separately and pairs the two.
type Canvas interface {
	// Clear fills the whole surface with a color, ignoring clip and
	// transform.
	Clear(c Color)

	// Save pushes the current transform and clip.
	Save()
	// Restore pops to the most recent Save. Extra restores are ignored.
	Restore()
	// Concat prepends the matrix to the current transform.
	Concat(m Matrix)

	// ClipRect intersects the clip with a w×h rectangle at the origin.
	ClipRect(w, h float32)
	// ClipPath combines the path with the clip region in device space.
	ClipPath(p *Path, op ClipOp)

	DrawLine(x0, y0, x1, y1 float32, paint *Paint)
	DrawRect(w, h float32, paint *Paint)
	// DrawRoundRect draws a rounded rectangle; radii are ordered
	// top-left, top-right, bottom-right, bottom-left.
	DrawRoundRect(w, h float32, radii [4]float32, paint *Paint)
	DrawCircle(radius float32, paint *Paint)
	// DrawOval draws an ellipse with the given radii centered at the
	// origin.
	DrawOval(rx, ry float32, paint *Paint)
	DrawPath(p *Path, paint *Paint)

	// DrawImageRect blits the src rectangle of an image into the dst
	// rectangle, scaling as needed, modulated by opacity in [0, 1].
	DrawImageRect(img Image, src, dst Rect, opacity float32)

	// DrawText draws a string with its baseline origin at (x, y).
	DrawText(text string, x, y float32, face Typeface, size float32, paint *Paint)
}
