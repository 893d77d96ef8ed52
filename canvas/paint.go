package canvas

// LineCap specifies the shape of stroke endpoints. The constant values
// match the script wire enumerants.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of stroke joins. The constant values
// match the script wire enumerants.
type LineJoin int

const (
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter
)

// ClipOp selects how a clip shape combines with the current clip region.
type ClipOp int

const (
	// ClipIntersect restricts the clip region to the shape.
	ClipIntersect ClipOp = iota
	// ClipDifference subtracts the shape from the clip region.
	ClipDifference
)

// PaintStyle selects whether a paint fills or strokes geometry.
type PaintStyle int

const (
	// PaintFill fills the interior of shapes.
	PaintFill PaintStyle = iota
	// PaintStroke strokes shape outlines.
	PaintStroke
)

// Paint is a fully resolved paint description handed to the canvas with
// each draw call. The executor resolves it from the graphics state; the
// canvas never sees raw script operations.
//
// When Shader is non-nil it determines pixel color and Color acts as a
// modulation tint (the executor sets it to opaque white in that case).
type Paint struct {
	Style  PaintStyle
	Color  Color
	Shader Shader

	// Stroke geometry, meaningful only when Style is PaintStroke.
	Width      float32
	Cap        LineCap
	Join       LineJoin
	MiterLimit float32
}

// FillPaint creates a fill paint with the given color.
func FillPaint(c Color) *Paint {
	return &Paint{Style: PaintFill, Color: c}
}

// StrokePaint creates a stroke paint with the given color and width.
func StrokePaint(c Color, width float32) *Paint {
	return &Paint{
		Style:      PaintStroke,
		Color:      c,
		Width:      width,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 4,
	}
}
