// Package script implements the binary script format: a compact opcode
// stream that describes a 2-D scene as drawing instructions. Decode
// turns a byte buffer into a typed operation sequence; Encoder produces
// the same wire layout for script producers and round-trip tests.
//
// Wire layout: each operation starts with a 2-byte big-endian opcode
// tag followed by an opcode-specific payload. Geometry is 4-byte
// big-endian IEEE-754 single precision reconstructed from raw bits;
// stroke width and font size are 2-byte quarter-unit fixed point;
// colors are red/green/blue/alpha bytes; strings carry a 2-byte length
// prefix and are zero-padded to a multiple of four bytes.
package script

import "fmt"

// Opcode is the 2-byte tag identifying one instruction in the binary
// script format. The values are wire protocol and must not change.
type Opcode uint16

// Opcode tags, grouped by category.
const (
	// Immediate draws. The 2-byte word after the tag carries the
	// fill/stroke flag mask (except DrawText, DrawSprites and
	// DrawScript, where it is a string length).
	OpDrawLine     Opcode = 0x01
	OpDrawTriangle Opcode = 0x02
	OpDrawQuad     Opcode = 0x03
	OpDrawRect     Opcode = 0x04
	OpDrawRRect    Opcode = 0x05
	OpDrawArc      Opcode = 0x06
	OpDrawSector   Opcode = 0x07
	OpDrawCircle   Opcode = 0x08
	OpDrawEllipse  Opcode = 0x09
	OpDrawText     Opcode = 0x0A
	OpDrawSprites  Opcode = 0x0B
	OpDrawRRectVar Opcode = 0x0C
	OpDrawScript   Opcode = 0x0F

	// Path construction.
	OpBeginPath    Opcode = 0x20
	OpClosePath    Opcode = 0x21
	OpFillPath     Opcode = 0x22
	OpStrokePath   Opcode = 0x23
	OpMoveTo       Opcode = 0x26
	OpLineTo       Opcode = 0x27
	OpArcTo        Opcode = 0x28
	OpBezierTo     Opcode = 0x29
	OpQuadraticTo  Opcode = 0x2A
	OpPathTriangle Opcode = 0x2B
	OpPathQuad     Opcode = 0x2C
	OpPathRect     Opcode = 0x2D
	OpPathRRect    Opcode = 0x2E
	OpPathSector   Opcode = 0x2F
	OpPathCircle   Opcode = 0x30
	OpPathEllipse  Opcode = 0x31
	OpPathArc      Opcode = 0x32

	// State stack control.
	OpPushState    Opcode = 0x40
	OpPopState     Opcode = 0x41
	OpPopPushState Opcode = 0x42

	// Clipping.
	OpScissor  Opcode = 0x44
	OpClipPath Opcode = 0x45

	// Transforms.
	OpTransform Opcode = 0x50
	OpScale     Opcode = 0x51
	OpRotate    Opcode = 0x52
	OpTranslate Opcode = 0x53

	// Fill paint.
	OpFillColor  Opcode = 0x60
	OpFillLinear Opcode = 0x61
	OpFillRadial Opcode = 0x62
	OpFillImage  Opcode = 0x63
	OpFillStream Opcode = 0x64

	// Stroke paint and geometry.
	OpStrokeWidth  Opcode = 0x70
	OpStrokeColor  Opcode = 0x71
	OpStrokeLinear Opcode = 0x72
	OpStrokeRadial Opcode = 0x73
	OpStrokeImage  Opcode = 0x74
	OpStrokeStream Opcode = 0x75
	OpStrokeCap    Opcode = 0x80
	OpStrokeJoin   Opcode = 0x81
	OpMiterLimit   Opcode = 0x82

	// Text state.
	OpFont      Opcode = 0x90
	OpFontSize  Opcode = 0x91
	OpTextAlign Opcode = 0x92
	OpTextBase  Opcode = 0x93
)

var opcodeNames = map[Opcode]string{
	OpDrawLine:     "DrawLine",
	OpDrawTriangle: "DrawTriangle",
	OpDrawQuad:     "DrawQuad",
	OpDrawRect:     "DrawRect",
	OpDrawRRect:    "DrawRRect",
	OpDrawArc:      "DrawArc",
	OpDrawSector:   "DrawSector",
	OpDrawCircle:   "DrawCircle",
	OpDrawEllipse:  "DrawEllipse",
	OpDrawText:     "DrawText",
	OpDrawSprites:  "DrawSprites",
	OpDrawRRectVar: "DrawRRectVar",
	OpDrawScript:   "DrawScript",
	OpBeginPath:    "BeginPath",
	OpClosePath:    "ClosePath",
	OpFillPath:     "FillPath",
	OpStrokePath:   "StrokePath",
	OpMoveTo:       "MoveTo",
	OpLineTo:       "LineTo",
	OpArcTo:        "ArcTo",
	OpBezierTo:     "BezierTo",
	OpQuadraticTo:  "QuadraticTo",
	OpPathTriangle: "PathTriangle",
	OpPathQuad:     "PathQuad",
	OpPathRect:     "PathRect",
	OpPathRRect:    "PathRRect",
	OpPathSector:   "PathSector",
	OpPathCircle:   "PathCircle",
	OpPathEllipse:  "PathEllipse",
	OpPathArc:      "PathArc",
	OpPushState:    "PushState",
	OpPopState:     "PopState",
	OpPopPushState: "PopPushState",
	OpScissor:      "Scissor",
	OpClipPath:     "ClipPath",
	OpTransform:    "Transform",
	OpScale:        "Scale",
	OpRotate:       "Rotate",
	OpTranslate:    "Translate",
	OpFillColor:    "FillColor",
	OpFillLinear:   "FillLinear",
	OpFillRadial:   "FillRadial",
	OpFillImage:    "FillImage",
	OpFillStream:   "FillStream",
	OpStrokeWidth:  "StrokeWidth",
	OpStrokeColor:  "StrokeColor",
	OpStrokeLinear: "StrokeLinear",
	OpStrokeRadial: "StrokeRadial",
	OpStrokeImage:  "StrokeImage",
	OpStrokeStream: "StrokeStream",
	OpStrokeCap:    "StrokeCap",
	OpStrokeJoin:   "StrokeJoin",
	OpMiterLimit:   "MiterLimit",
	OpFont:         "Font",
	OpFontSize:     "FontSize",
	OpTextAlign:    "TextAlign",
	OpTextBase:     "TextBase",
}

// String returns a human-readable name for the opcode, or its hex value
// if the tag is not part of the protocol.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Opcode(0x%04X)", uint16(op))
}
