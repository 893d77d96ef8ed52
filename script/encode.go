package script

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/colibri-cam/scenic-driver-skia/canvas"
)

// Encoder builds a binary script buffer. The zero value is ready to
// use; call the operation methods in order and take the result with
// Bytes.
type Encoder struct {
	buf []byte
}

// Bytes returns the encoded script. The slice aliases the encoder's
// buffer.
func (e *Encoder) Bytes() []byte { return e.buf }

// Reset discards the buffer, keeping its capacity.
func (e *Encoder) Reset() { e.buf = e.buf[:0] }

// Len returns the current encoded size in bytes.
func (e *Encoder) Len() int { return len(e.buf) }

func (e *Encoder) header(op Opcode, param uint16) {
	e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(op))
	e.buf = binary.BigEndian.AppendUint16(e.buf, param)
}

func (e *Encoder) f32(v float32) {
	e.buf = binary.BigEndian.AppendUint32(e.buf, math.Float32bits(v))
}

func (e *Encoder) color(c canvas.Color) {
	e.buf = append(e.buf, c.R, c.G, c.B, c.A)
}

func (e *Encoder) strBody(s string) {
	e.buf = append(e.buf, s...)
	for pad := (4 - len(s)%4) % 4; pad > 0; pad-- {
		e.buf = append(e.buf, 0)
	}
}

// quarterUnits converts a float to the wire's 2-byte quarter-unit fixed
// point, rounding to the nearest representable value and clamping to
// the encodable range.
func quarterUnits(v float32) uint16 {
	q := math.Round(float64(v) * 4)
	switch {
	case q < 0:
		return 0
	case q > math.MaxUint16:
		return math.MaxUint16
	}
	return uint16(q)
}

func (e *Encoder) DrawLine(x0, y0, x1, y1 float32, flags DrawFlags) {
	e.header(OpDrawLine, uint16(flags))
	e.f32(x0)
	e.f32(y0)
	e.f32(x1)
	e.f32(y1)
}

func (e *Encoder) DrawTriangle(x0, y0, x1, y1, x2, y2 float32, flags DrawFlags) {
	e.header(OpDrawTriangle, uint16(flags))
	e.f32(x0)
	e.f32(y0)
	e.f32(x1)
	e.f32(y1)
	e.f32(x2)
	e.f32(y2)
}

func (e *Encoder) DrawQuad(x0, y0, x1, y1, x2, y2, x3, y3 float32, flags DrawFlags) {
	e.header(OpDrawQuad, uint16(flags))
	e.f32(x0)
	e.f32(y0)
	e.f32(x1)
	e.f32(y1)
	e.f32(x2)
	e.f32(y2)
	e.f32(x3)
	e.f32(y3)
}

func (e *Encoder) DrawRect(w, h float32, flags DrawFlags) {
	e.header(OpDrawRect, uint16(flags))
	e.f32(w)
	e.f32(h)
}

func (e *Encoder) DrawRRect(w, h, radius float32, flags DrawFlags) {
	e.header(OpDrawRRect, uint16(flags))
	e.f32(w)
	e.f32(h)
	e.f32(radius)
}

func (e *Encoder) DrawRRectVar(w, h, tl, tr, br, bl float32, flags DrawFlags) {
	e.header(OpDrawRRectVar, uint16(flags))
	e.f32(w)
	e.f32(h)
	e.f32(tl)
	e.f32(tr)
	e.f32(br)
	e.f32(bl)
}

func (e *Encoder) DrawArc(radius, radians float32, flags DrawFlags) {
	e.header(OpDrawArc, uint16(flags))
	e.f32(radius)
	e.f32(radians)
}

func (e *Encoder) DrawSector(radius, radians float32, flags DrawFlags) {
	e.header(OpDrawSector, uint16(flags))
	e.f32(radius)
	e.f32(radians)
}

func (e *Encoder) DrawCircle(radius float32, flags DrawFlags) {
	e.header(OpDrawCircle, uint16(flags))
	e.f32(radius)
}

func (e *Encoder) DrawEllipse(rx, ry float32, flags DrawFlags) {
	e.header(OpDrawEllipse, uint16(flags))
	e.f32(rx)
	e.f32(ry)
}

func (e *Encoder) DrawText(text string) {
	e.header(OpDrawText, uint16(len(text)))
	e.strBody(text)
}

func (e *Encoder) DrawSprites(id string, cmds []SpriteCmd) {
	e.header(OpDrawSprites, uint16(len(id)))
	e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(len(cmds)))
	e.strBody(id)
	for _, c := range cmds {
		e.f32(c.SX)
		e.f32(c.SY)
		e.f32(c.SW)
		e.f32(c.SH)
		e.f32(c.DX)
		e.f32(c.DY)
		e.f32(c.DW)
		e.f32(c.DH)
		e.f32(c.Alpha)
	}
}

func (e *Encoder) DrawScript(id string) {
	e.header(OpDrawScript, uint16(len(id)))
	e.strBody(id)
}

func (e *Encoder) BeginPath()  { e.header(OpBeginPath, 0) }
func (e *Encoder) ClosePath()  { e.header(OpClosePath, 0) }
func (e *Encoder) FillPath()   { e.header(OpFillPath, 0) }
func (e *Encoder) StrokePath() { e.header(OpStrokePath, 0) }

func (e *Encoder) MoveTo(x, y float32) {
	e.header(OpMoveTo, 0)
	e.f32(x)
	e.f32(y)
}

func (e *Encoder) LineTo(x, y float32) {
	e.header(OpLineTo, 0)
	e.f32(x)
	e.f32(y)
}

func (e *Encoder) ArcTo(x1, y1, x2, y2, radius float32) {
	e.header(OpArcTo, 0)
	e.f32(x1)
	e.f32(y1)
	e.f32(x2)
	e.f32(y2)
	e.f32(radius)
}

func (e *Encoder) BezierTo(c1x, c1y, c2x, c2y, x, y float32) {
	e.header(OpBezierTo, 0)
	e.f32(c1x)
	e.f32(c1y)
	e.f32(c2x)
	e.f32(c2y)
	e.f32(x)
	e.f32(y)
}

func (e *Encoder) QuadraticTo(cx, cy, x, y float32) {
	e.header(OpQuadraticTo, 0)
	e.f32(cx)
	e.f32(cy)
	e.f32(x)
	e.f32(y)
}

func (e *Encoder) PathTriangle(x0, y0, x1, y1, x2, y2 float32) {
	e.header(OpPathTriangle, 0)
	e.f32(x0)
	e.f32(y0)
	e.f32(x1)
	e.f32(y1)
	e.f32(x2)
	e.f32(y2)
}

func (e *Encoder) PathQuad(x0, y0, x1, y1, x2, y2, x3, y3 float32) {
	e.header(OpPathQuad, 0)
	e.f32(x0)
	e.f32(y0)
	e.f32(x1)
	e.f32(y1)
	e.f32(x2)
	e.f32(y2)
	e.f32(x3)
	e.f32(y3)
}

func (e *Encoder) PathRect(w, h float32) {
	e.header(OpPathRect, 0)
	e.f32(w)
	e.f32(h)
}

func (e *Encoder) PathRRect(w, h, radius float32) {
	e.header(OpPathRRect, 0)
	e.f32(w)
	e.f32(h)
	e.f32(radius)
}

func (e *Encoder) PathSector(radius, radians float32) {
	e.header(OpPathSector, 0)
	e.f32(radius)
	e.f32(radians)
}

func (e *Encoder) PathCircle(radius float32) {
	e.header(OpPathCircle, 0)
	e.f32(radius)
}

func (e *Encoder) PathEllipse(rx, ry float32) {
	e.header(OpPathEllipse, 0)
	e.f32(rx)
	e.f32(ry)
}

func (e *Encoder) PathArc(cx, cy, radius, start, end float32, clockwise bool) {
	e.header(OpPathArc, 0)
	e.f32(cx)
	e.f32(cy)
	e.f32(radius)
	e.f32(start)
	e.f32(end)
	var dir uint32
	if clockwise {
		dir = 1
	}
	e.buf = binary.BigEndian.AppendUint32(e.buf, dir)
}

func (e *Encoder) PushState()    { e.header(OpPushState, 0) }
func (e *Encoder) PopState()     { e.header(OpPopState, 0) }
func (e *Encoder) PopPushState() { e.header(OpPopPushState, 0) }

func (e *Encoder) Scissor(w, h float32) {
	e.header(OpScissor, 0)
	e.f32(w)
	e.f32(h)
}

func (e *Encoder) ClipPath(op canvas.ClipOp) {
	e.header(OpClipPath, uint16(op))
}

func (e *Encoder) Transform(a, b, c, d, tx, ty float32) {
	e.header(OpTransform, 0)
	e.f32(a)
	e.f32(b)
	e.f32(c)
	e.f32(d)
	e.f32(tx)
	e.f32(ty)
}

func (e *Encoder) Scale(x, y float32) {
	e.header(OpScale, 0)
	e.f32(x)
	e.f32(y)
}

func (e *Encoder) Rotate(radians float32) {
	e.header(OpRotate, 0)
	e.f32(radians)
}

func (e *Encoder) Translate(x, y float32) {
	e.header(OpTranslate, 0)
	e.f32(x)
	e.f32(y)
}

func (e *Encoder) FillColor(c canvas.Color) {
	e.header(OpFillColor, 0)
	e.color(c)
}

func (e *Encoder) FillLinear(x0, y0, x1, y1 float32, from, to canvas.Color) {
	e.header(OpFillLinear, 0)
	e.f32(x0)
	e.f32(y0)
	e.f32(x1)
	e.f32(y1)
	e.color(from)
	e.color(to)
}

func (e *Encoder) FillRadial(cx, cy, inner, outer float32, from, to canvas.Color) {
	e.header(OpFillRadial, 0)
	e.f32(cx)
	e.f32(cy)
	e.f32(inner)
	e.f32(outer)
	e.color(from)
	e.color(to)
}

func (e *Encoder) FillImage(id string) {
	e.header(OpFillImage, uint16(len(id)))
	e.strBody(id)
}

func (e *Encoder) FillStream(id string) {
	e.header(OpFillStream, uint16(len(id)))
	e.strBody(id)
}

func (e *Encoder) StrokeWidth(width float32) {
	e.header(OpStrokeWidth, quarterUnits(width))
}

func (e *Encoder) StrokeColor(c canvas.Color) {
	e.header(OpStrokeColor, 0)
	e.color(c)
}

func (e *Encoder) StrokeLinear(x0, y0, x1, y1 float32, from, to canvas.Color) {
	e.header(OpStrokeLinear, 0)
	e.f32(x0)
	e.f32(y0)
	e.f32(x1)
	e.f32(y1)
	e.color(from)
	e.color(to)
}

func (e *Encoder) StrokeRadial(cx, cy, inner, outer float32, from, to canvas.Color) {
	e.header(OpStrokeRadial, 0)
	e.f32(cx)
	e.f32(cy)
	e.f32(inner)
	e.f32(outer)
	e.color(from)
	e.color(to)
}

func (e *Encoder) StrokeImage(id string) {
	e.header(OpStrokeImage, uint16(len(id)))
	e.strBody(id)
}

func (e *Encoder) StrokeStream(id string) {
	e.header(OpStrokeStream, uint16(len(id)))
	e.strBody(id)
}

func (e *Encoder) StrokeCap(cap canvas.LineCap) {
	e.header(OpStrokeCap, uint16(cap))
}

func (e *Encoder) StrokeJoin(join canvas.LineJoin) {
	e.header(OpStrokeJoin, uint16(join))
}

func (e *Encoder) MiterLimit(limit float32) {
	l := math.Round(float64(limit))
	if l < 0 {
		l = 0
	} else if l > math.MaxUint16 {
		l = math.MaxUint16
	}
	e.header(OpMiterLimit, uint16(l))
}

func (e *Encoder) Font(id string) {
	e.header(OpFont, uint16(len(id)))
	e.strBody(id)
}

func (e *Encoder) FontSize(size float32) {
	e.header(OpFontSize, quarterUnits(size))
}

func (e *Encoder) TextAlign(align TextAlign) {
	e.header(OpTextAlign, uint16(align))
}

func (e *Encoder) TextBase(base TextBaseline) {
	e.header(OpTextBase, uint16(base))
}

// Append encodes one decoded operation. Together with Decode it forms
// the round trip used by script relays and tests.
func (e *Encoder) Append(op Op) {
	switch v := op.(type) {
	case DrawLine:
		e.DrawLine(v.X0, v.Y0, v.X1, v.Y1, v.Flags)
	case DrawTriangle:
		e.DrawTriangle(v.X0, v.Y0, v.X1, v.Y1, v.X2, v.Y2, v.Flags)
	case DrawQuad:
		e.DrawQuad(v.X0, v.Y0, v.X1, v.Y1, v.X2, v.Y2, v.X3, v.Y3, v.Flags)
	case DrawRect:
		e.DrawRect(v.W, v.H, v.Flags)
	case DrawRRect:
		e.DrawRRect(v.W, v.H, v.Radius, v.Flags)
	case DrawRRectVar:
		e.DrawRRectVar(v.W, v.H, v.TopLeft, v.TopRight, v.BottomRight, v.BottomLeft, v.Flags)
	case DrawArc:
		e.DrawArc(v.Radius, v.Radians, v.Flags)
	case DrawSector:
		e.DrawSector(v.Radius, v.Radians, v.Flags)
	case DrawCircle:
		e.DrawCircle(v.Radius, v.Flags)
	case DrawEllipse:
		e.DrawEllipse(v.RX, v.RY, v.Flags)
	case DrawText:
		e.DrawText(v.Text)
	case DrawSprites:
		e.DrawSprites(v.ID, v.Cmds)
	case DrawScript:
		e.DrawScript(v.ID)
	case BeginPath:
		e.BeginPath()
	case ClosePath:
		e.ClosePath()
	case FillPath:
		e.FillPath()
	case StrokePath:
		e.StrokePath()
	case MoveTo:
		e.MoveTo(v.X, v.Y)
	case LineTo:
		e.LineTo(v.X, v.Y)
	case ArcTo:
		e.ArcTo(v.X1, v.Y1, v.X2, v.Y2, v.Radius)
	case BezierTo:
		e.BezierTo(v.C1X, v.C1Y, v.C2X, v.C2Y, v.X, v.Y)
	case QuadraticTo:
		e.QuadraticTo(v.CX, v.CY, v.X, v.Y)
	case PathTriangle:
		e.PathTriangle(v.X0, v.Y0, v.X1, v.Y1, v.X2, v.Y2)
	case PathQuad:
		e.PathQuad(v.X0, v.Y0, v.X1, v.Y1, v.X2, v.Y2, v.X3, v.Y3)
	case PathRect:
		e.PathRect(v.W, v.H)
	case PathRRect:
		e.PathRRect(v.W, v.H, v.Radius)
	case PathSector:
		e.PathSector(v.Radius, v.Radians)
	case PathCircle:
		e.PathCircle(v.Radius)
	case PathEllipse:
		e.PathEllipse(v.RX, v.RY)
	case PathArc:
		e.PathArc(v.CX, v.CY, v.Radius, v.Start, v.End, v.Clockwise)
	case PushState:
		e.PushState()
	case PopState:
		e.PopState()
	case PopPushState:
		e.PopPushState()
	case Scissor:
		e.Scissor(v.W, v.H)
	case ClipPath:
		e.ClipPath(v.Op)
	case Transform:
		e.Transform(v.A, v.B, v.C, v.D, v.E, v.F)
	case Scale:
		e.Scale(v.X, v.Y)
	case Rotate:
		e.Rotate(v.Radians)
	case Translate:
		e.Translate(v.X, v.Y)
	case FillColor:
		e.FillColor(v.Color)
	case FillLinear:
		e.FillLinear(v.X0, v.Y0, v.X1, v.Y1, v.From, v.To)
	case FillRadial:
		e.FillRadial(v.CX, v.CY, v.InnerRadius, v.OuterRadius, v.From, v.To)
	case FillImage:
		e.FillImage(v.ID)
	case FillStream:
		e.FillStream(v.ID)
	case StrokeWidth:
		e.StrokeWidth(v.Width)
	case StrokeColor:
		e.StrokeColor(v.Color)
	case StrokeLinear:
		e.StrokeLinear(v.X0, v.Y0, v.X1, v.Y1, v.From, v.To)
	case StrokeRadial:
		e.StrokeRadial(v.CX, v.CY, v.InnerRadius, v.OuterRadius, v.From, v.To)
	case StrokeImage:
		e.StrokeImage(v.ID)
	case StrokeStream:
		e.StrokeStream(v.ID)
	case StrokeCap:
		e.StrokeCap(v.Cap)
	case StrokeJoin:
		e.StrokeJoin(v.Join)
	case MiterLimit:
		e.MiterLimit(v.Limit)
	case Font:
		e.Font(v.ID)
	case FontSize:
		e.FontSize(v.Size)
	case SetTextAlign:
		e.TextAlign(v.Align)
	case SetTextBase:
		e.TextBase(v.Base)
	default:
		panic(fmt.Sprintf("script: unknown operation %T", op))
	}
}
