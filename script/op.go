package script

import "github.com/colibri-cam/scenic-driver-skia/canvas"

// Op is one decoded script operation. This is a sealed sum type: only
// types in this package implement it, one per opcode category, so the
// executor can dispatch exhaustively and malformed operations cannot
// exist past decode time.
type Op interface {
	isOp()
}

// DrawFlags is the 2-bit fill/stroke mask carried by immediate-draw
// operations. Both bits may be set, in which case the shape is filled
// first and then stroked.
type DrawFlags uint16

const (
	// DrawFill requests the shape be filled with the current fill paint.
	DrawFill DrawFlags = 1 << iota
	// DrawStroke requests the shape be stroked with the current stroke
	// paint.
	DrawStroke
)

// Fill reports whether the fill bit is set.
func (f DrawFlags) Fill() bool { return f&DrawFill != 0 }

// Stroke reports whether the stroke bit is set.
func (f DrawFlags) Stroke() bool { return f&DrawStroke != 0 }

// TextAlign selects horizontal text alignment relative to the draw
// origin. Constant values match the wire enumerants.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextBaseline selects the vertical anchor of drawn text. Constant
// values match the wire enumerants.
type TextBaseline int

const (
	BaselineTop TextBaseline = iota
	BaselineMiddle
	BaselineAlphabetic
	BaselineBottom
)

// SpriteCmd is one blit within a sprite batch: a source rectangle
// cropped from the shared image, a destination rectangle on the canvas,
// and an opacity in [0, 1].
type SpriteCmd struct {
	SX, SY, SW, SH float32
	DX, DY, DW, DH float32
	Alpha          float32
}

// ---------------------------------------------------------------------------
// State stack control
// ---------------------------------------------------------------------------

// PushState saves the graphics state and canvas transform/clip.
type PushState struct{}

// PopState restores the most recent saved state; a no-op when nothing
// is saved.
type PopState struct{}

// PopPushState restores the most recent saved state and immediately
// re-saves it, leaving the stack depth unchanged.
type PopPushState struct{}

// ---------------------------------------------------------------------------
// Transforms
// ---------------------------------------------------------------------------

// Transform concatenates a general 2×3 affine matrix onto the canvas
// transform. Field order follows the wire layout: x' = A*x + C*y + E,
// y' = B*x + D*y + F.
type Transform struct {
	A, B, C, D, E, F float32
}

// Translate concatenates a translation.
type Translate struct {
	X, Y float32
}

// Scale concatenates a scale.
type Scale struct {
	X, Y float32
}

// Rotate concatenates a rotation by an angle in radians.
type Rotate struct {
	Radians float32
}

// ---------------------------------------------------------------------------
// Paint assignment
// ---------------------------------------------------------------------------

// FillColor sets the flat fill color, clearing any fill shader.
type FillColor struct {
	Color canvas.Color
}

// FillLinear sets a two-stop linear gradient as the fill paint.
type FillLinear struct {
	X0, Y0, X1, Y1 float32
	From, To       canvas.Color
}

// FillRadial sets a two-stop radial gradient as the fill paint.
type FillRadial struct {
	CX, CY                   float32
	InnerRadius, OuterRadius float32
	From, To                 canvas.Color
}

// FillImage sets a static image resource as the fill paint.
type FillImage struct {
	ID string
}

// FillStream sets a streaming texture resource as the fill paint.
type FillStream struct {
	ID string
}

// StrokeColor sets the flat stroke color, clearing any stroke shader.
type StrokeColor struct {
	Color canvas.Color
}

// StrokeLinear sets a two-stop linear gradient as the stroke paint.
type StrokeLinear struct {
	X0, Y0, X1, Y1 float32
	From, To       canvas.Color
}

// StrokeRadial sets a two-stop radial gradient as the stroke paint.
type StrokeRadial struct {
	CX, CY                   float32
	InnerRadius, OuterRadius float32
	From, To                 canvas.Color
}

// StrokeImage sets a static image resource as the stroke paint.
type StrokeImage struct {
	ID string
}

// StrokeStream sets a streaming texture resource as the stroke paint.
type StrokeStream struct {
	ID string
}

// StrokeWidth sets the stroke width. Encoded as quarter-unit fixed
// point on the wire.
type StrokeWidth struct {
	Width float32
}

// StrokeCap sets the stroke end cap.
type StrokeCap struct {
	Cap canvas.LineCap
}

// StrokeJoin sets the stroke join.
type StrokeJoin struct {
	Join canvas.LineJoin
}

// MiterLimit sets the stroke miter limit.
type MiterLimit struct {
	Limit float32
}

// ---------------------------------------------------------------------------
// Clipping
// ---------------------------------------------------------------------------

// Scissor intersects the clip with a w×h rectangle at the origin of the
// current coordinate frame.
type Scissor struct {
	W, H float32
}

// ClipPath combines the current path with the clip region.
type ClipPath struct {
	Op canvas.ClipOp
}

// ---------------------------------------------------------------------------
// Path construction
// ---------------------------------------------------------------------------

// BeginPath starts a fresh in-progress path.
type BeginPath struct{}

// ClosePath closes the current subpath.
type ClosePath struct{}

// FillPath fills the in-progress path with the current fill paint. The
// path is kept; a later StrokePath or ClipPath still sees it.
type FillPath struct{}

// StrokePath strokes the in-progress path with the current stroke paint
// and consumes it.
type StrokePath struct{}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	X, Y float32
}

// LineTo appends a line segment.
type LineTo struct {
	X, Y float32
}

// ArcTo appends a tangent arc through two control points.
type ArcTo struct {
	X1, Y1, X2, Y2 float32
	Radius         float32
}

// BezierTo appends a cubic Bezier segment.
type BezierTo struct {
	C1X, C1Y, C2X, C2Y float32
	X, Y               float32
}

// QuadraticTo appends a quadratic Bezier segment.
type QuadraticTo struct {
	CX, CY float32
	X, Y   float32
}

// PathTriangle appends a closed triangle subpath.
type PathTriangle struct {
	X0, Y0, X1, Y1, X2, Y2 float32
}

// PathQuad appends a closed quadrilateral subpath.
type PathQuad struct {
	X0, Y0, X1, Y1, X2, Y2, X3, Y3 float32
}

// PathRect appends a closed rectangle subpath.
type PathRect struct {
	W, H float32
}

// PathRRect appends a closed rounded-rectangle subpath with one shared
// corner radius.
type PathRRect struct {
	W, H, Radius float32
}

// PathSector appends a closed wedge subpath.
type PathSector struct {
	Radius, Radians float32
}

// PathCircle appends a closed circle subpath centered at the origin.
type PathCircle struct {
	Radius float32
}

// PathEllipse appends a closed ellipse subpath centered at the origin.
type PathEllipse struct {
	RX, RY float32
}

// PathArc appends a circular arc subpath.
type PathArc struct {
	CX, CY     float32
	Radius     float32
	Start, End float32
	Clockwise  bool
}

// ---------------------------------------------------------------------------
// Immediate draws
// ---------------------------------------------------------------------------

// DrawLine draws a line segment.
type DrawLine struct {
	X0, Y0, X1, Y1 float32
	Flags          DrawFlags
}

// DrawTriangle draws a triangle.
type DrawTriangle struct {
	X0, Y0, X1, Y1, X2, Y2 float32
	Flags                  DrawFlags
}

// DrawQuad draws a quadrilateral.
type DrawQuad struct {
	X0, Y0, X1, Y1, X2, Y2, X3, Y3 float32
	Flags                          DrawFlags
}

// DrawRect draws a w×h rectangle at the origin.
type DrawRect struct {
	W, H  float32
	Flags DrawFlags
}

// DrawRRect draws a rounded rectangle with one shared corner radius.
type DrawRRect struct {
	W, H, Radius float32
	Flags        DrawFlags
}

// DrawRRectVar draws a rounded rectangle with independent corner radii.
type DrawRRectVar struct {
	W, H                    float32
	TopLeft, TopRight       float32
	BottomRight, BottomLeft float32
	Flags                   DrawFlags
}

// DrawArc draws an open arc of the given radius sweeping from angle
// zero through radians.
type DrawArc struct {
	Radius, Radians float32
	Flags           DrawFlags
}

// DrawSector draws a closed wedge.
type DrawSector struct {
	Radius, Radians float32
	Flags           DrawFlags
}

// DrawCircle draws a circle centered at the origin.
type DrawCircle struct {
	Radius float32
	Flags  DrawFlags
}

// DrawEllipse draws an ellipse centered at the origin.
type DrawEllipse struct {
	RX, RY float32
	Flags  DrawFlags
}

// DrawSprites blits a batch of cropped, scaled copies of one static
// image resource.
type DrawSprites struct {
	ID   string
	Cmds []SpriteCmd
}

// DrawText draws a literal string with the current font and fill paint.
type DrawText struct {
	Text string
}

// DrawScript executes another script by identifier, inline: the
// referenced script sees and mutates the same graphics state.
type DrawScript struct {
	ID string
}

// ---------------------------------------------------------------------------
// Text state
// ---------------------------------------------------------------------------

// Font selects a typeface resource by identifier.
type Font struct {
	ID string
}

// FontSize sets the font size. Encoded as quarter-unit fixed point on
// the wire.
type FontSize struct {
	Size float32
}

// SetTextAlign sets horizontal text alignment.
type SetTextAlign struct {
	Align TextAlign
}

// SetTextBase sets the text baseline anchor.
type SetTextBase struct {
	Base TextBaseline
}

func (PushState) isOp()    {}
func (PopState) isOp()     {}
func (PopPushState) isOp() {}
func (Transform) isOp()    {}
func (Translate) isOp()    {}
func (Scale) isOp()        {}
func (Rotate) isOp()       {}
func (FillColor) isOp()    {}
func (FillLinear) isOp()   {}
func (FillRadial) isOp()   {}
func (FillImage) isOp()    {}
func (FillStream) isOp()   {}
func (StrokeColor) isOp()  {}
func (StrokeLinear) isOp() {}
func (StrokeRadial) isOp() {}
func (StrokeImage) isOp()  {}
func (StrokeStream) isOp() {}
func (StrokeWidth) isOp()  {}
func (StrokeCap) isOp()    {}
func (StrokeJoin) isOp()   {}
func (MiterLimit) isOp()   {}
func (Scissor) isOp()      {}
func (ClipPath) isOp()     {}
func (BeginPath) isOp()    {}
func (ClosePath) isOp()    {}
func (FillPath) isOp()     {}
func (StrokePath) isOp()   {}
func (MoveTo) isOp()       {}
func (LineTo) isOp()       {}
func (ArcTo) isOp()        {}
func (BezierTo) isOp()     {}
func (QuadraticTo) isOp()  {}
func (PathTriangle) isOp() {}
func (PathQuad) isOp()     {}
func (PathRect) isOp()     {}
func (PathRRect) isOp()    {}
func (PathSector) isOp()   {}
func (PathCircle) isOp()   {}
func (PathEllipse) isOp()  {}
func (PathArc) isOp()      {}
func (DrawLine) isOp()     {}
func (DrawTriangle) isOp() {}
func (DrawQuad) isOp()     {}
func (DrawRect) isOp()     {}
func (DrawRRect) isOp()    {}
func (DrawRRectVar) isOp() {}
func (DrawArc) isOp()      {}
func (DrawSector) isOp()   {}
func (DrawCircle) isOp()   {}
func (DrawEllipse) isOp()  {}
func (DrawSprites) isOp()  {}
func (DrawText) isOp()     {}
func (DrawScript) isOp()   {}
func (Font) isOp()         {}
func (FontSize) isOp()     {}
func (SetTextAlign) isOp() {}
func (SetTextBase) isOp()  {}
