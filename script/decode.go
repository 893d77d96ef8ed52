package script

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/colibri-cam/scenic-driver-skia/canvas"
)

// Decode failure reasons.
const (
	reasonTruncated        = "opcode truncated"
	reasonPayloadTruncated = "payload truncated"
	reasonInvalidEnumerant = "invalid enumerant"
	reasonUnsupported      = "unsupported opcode"
)

// DecodeError reports why a script buffer was rejected. Offset is the
// byte position of the opcode tag that failed; for an unsupported tag
// Op holds the unknown value.
type DecodeError struct {
	Op     Opcode
	Offset int
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("script: %s %s at offset %d", e.Op, e.Reason, e.Offset)
}

// Decode parses a complete binary script into its operation sequence.
// Decoding is all-or-nothing: any truncated payload, invalid enumerant
// or unknown opcode rejects the whole buffer with a *DecodeError and no
// operations are returned.
func Decode(buf []byte) ([]Op, error) {
	r := reader{buf: buf}
	var ops []Op
	for r.remaining() > 0 {
		start := r.off
		if r.remaining() < 2 {
			return nil, &DecodeError{Offset: start, Reason: reasonTruncated}
		}
		op := Opcode(r.u16())
		fail := func(reason string) error {
			return &DecodeError{Op: op, Offset: start, Reason: reason}
		}

		switch op {
		case OpDrawLine:
			if r.remaining() < 18 {
				return nil, fail(reasonTruncated)
			}
			flags := DrawFlags(r.u16())
			ops = append(ops, DrawLine{
				X0: r.f32(), Y0: r.f32(), X1: r.f32(), Y1: r.f32(),
				Flags: flags,
			})

		case OpDrawTriangle:
			if r.remaining() < 26 {
				return nil, fail(reasonTruncated)
			}
			flags := DrawFlags(r.u16())
			ops = append(ops, DrawTriangle{
				X0: r.f32(), Y0: r.f32(),
				X1: r.f32(), Y1: r.f32(),
				X2: r.f32(), Y2: r.f32(),
				Flags: flags,
			})

		case OpDrawQuad:
			if r.remaining() < 34 {
				return nil, fail(reasonTruncated)
			}
			flags := DrawFlags(r.u16())
			ops = append(ops, DrawQuad{
				X0: r.f32(), Y0: r.f32(),
				X1: r.f32(), Y1: r.f32(),
				X2: r.f32(), Y2: r.f32(),
				X3: r.f32(), Y3: r.f32(),
				Flags: flags,
			})

		case OpDrawRect:
			if r.remaining() < 10 {
				return nil, fail(reasonTruncated)
			}
			flags := DrawFlags(r.u16())
			ops = append(ops, DrawRect{W: r.f32(), H: r.f32(), Flags: flags})

		case OpDrawRRect:
			if r.remaining() < 14 {
				return nil, fail(reasonTruncated)
			}
			flags := DrawFlags(r.u16())
			ops = append(ops, DrawRRect{
				W: r.f32(), H: r.f32(), Radius: r.f32(),
				Flags: flags,
			})

		case OpDrawRRectVar:
			if r.remaining() < 26 {
				return nil, fail(reasonTruncated)
			}
			flags := DrawFlags(r.u16())
			ops = append(ops, DrawRRectVar{
				W: r.f32(), H: r.f32(),
				TopLeft: r.f32(), TopRight: r.f32(),
				BottomRight: r.f32(), BottomLeft: r.f32(),
				Flags: flags,
			})

		case OpDrawArc:
			if r.remaining() < 10 {
				return nil, fail(reasonTruncated)
			}
			flags := DrawFlags(r.u16())
			ops = append(ops, DrawArc{Radius: r.f32(), Radians: r.f32(), Flags: flags})

		case OpDrawSector:
			if r.remaining() < 10 {
				return nil, fail(reasonTruncated)
			}
			flags := DrawFlags(r.u16())
			ops = append(ops, DrawSector{Radius: r.f32(), Radians: r.f32(), Flags: flags})

		case OpDrawCircle:
			if r.remaining() < 6 {
				return nil, fail(reasonTruncated)
			}
			flags := DrawFlags(r.u16())
			ops = append(ops, DrawCircle{Radius: r.f32(), Flags: flags})

		case OpDrawEllipse:
			if r.remaining() < 10 {
				return nil, fail(reasonTruncated)
			}
			flags := DrawFlags(r.u16())
			ops = append(ops, DrawEllipse{RX: r.f32(), RY: r.f32(), Flags: flags})

		case OpDrawText:
			if r.remaining() < 2 {
				return nil, fail(reasonTruncated)
			}
			text, ok := r.str()
			if !ok {
				return nil, fail(reasonPayloadTruncated)
			}
			ops = append(ops, DrawText{Text: text})

		case OpDrawSprites:
			if r.remaining() < 6 {
				return nil, fail(reasonTruncated)
			}
			n := int(r.u16())
			count := int(r.u32())
			id, ok := r.strBody(n)
			if !ok {
				return nil, fail(reasonPayloadTruncated)
			}
			if count > r.remaining()/36 {
				return nil, fail(reasonPayloadTruncated)
			}
			cmds := make([]SpriteCmd, count)
			for i := range cmds {
				cmds[i] = SpriteCmd{
					SX: r.f32(), SY: r.f32(), SW: r.f32(), SH: r.f32(),
					DX: r.f32(), DY: r.f32(), DW: r.f32(), DH: r.f32(),
					Alpha: r.f32(),
				}
			}
			ops = append(ops, DrawSprites{ID: id, Cmds: cmds})

		case OpDrawScript:
			if r.remaining() < 2 {
				return nil, fail(reasonTruncated)
			}
			id, ok := r.str()
			if !ok {
				return nil, fail(reasonPayloadTruncated)
			}
			ops = append(ops, DrawScript{ID: id})

		case OpBeginPath, OpClosePath, OpFillPath, OpStrokePath,
			OpPushState, OpPopState, OpPopPushState:
			if r.remaining() < 2 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			switch op {
			case OpBeginPath:
				ops = append(ops, BeginPath{})
			case OpClosePath:
				ops = append(ops, ClosePath{})
			case OpFillPath:
				ops = append(ops, FillPath{})
			case OpStrokePath:
				ops = append(ops, StrokePath{})
			case OpPushState:
				ops = append(ops, PushState{})
			case OpPopState:
				ops = append(ops, PopState{})
			case OpPopPushState:
				ops = append(ops, PopPushState{})
			}

		case OpMoveTo:
			if r.remaining() < 10 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, MoveTo{X: r.f32(), Y: r.f32()})

		case OpLineTo:
			if r.remaining() < 10 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, LineTo{X: r.f32(), Y: r.f32()})

		case OpArcTo:
			if r.remaining() < 22 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, ArcTo{
				X1: r.f32(), Y1: r.f32(),
				X2: r.f32(), Y2: r.f32(),
				Radius: r.f32(),
			})

		case OpBezierTo:
			if r.remaining() < 26 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, BezierTo{
				C1X: r.f32(), C1Y: r.f32(),
				C2X: r.f32(), C2Y: r.f32(),
				X: r.f32(), Y: r.f32(),
			})

		case OpQuadraticTo:
			if r.remaining() < 18 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, QuadraticTo{
				CX: r.f32(), CY: r.f32(),
				X: r.f32(), Y: r.f32(),
			})

		case OpPathTriangle:
			if r.remaining() < 26 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, PathTriangle{
				X0: r.f32(), Y0: r.f32(),
				X1: r.f32(), Y1: r.f32(),
				X2: r.f32(), Y2: r.f32(),
			})

		case OpPathQuad:
			if r.remaining() < 34 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, PathQuad{
				X0: r.f32(), Y0: r.f32(),
				X1: r.f32(), Y1: r.f32(),
				X2: r.f32(), Y2: r.f32(),
				X3: r.f32(), Y3: r.f32(),
			})

		case OpPathRect:
			if r.remaining() < 10 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, PathRect{W: r.f32(), H: r.f32()})

		case OpPathRRect:
			if r.remaining() < 14 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, PathRRect{W: r.f32(), H: r.f32(), Radius: r.f32()})

		case OpPathSector:
			if r.remaining() < 10 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, PathSector{Radius: r.f32(), Radians: r.f32()})

		case OpPathCircle:
			if r.remaining() < 6 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, PathCircle{Radius: r.f32()})

		case OpPathEllipse:
			if r.remaining() < 10 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, PathEllipse{RX: r.f32(), RY: r.f32()})

		case OpPathArc:
			if r.remaining() < 26 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			arc := PathArc{
				CX: r.f32(), CY: r.f32(),
				Radius: r.f32(),
				Start:  r.f32(), End: r.f32(),
			}
			arc.Clockwise = r.u32() != 0
			ops = append(ops, arc)

		case OpScissor:
			if r.remaining() < 10 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, Scissor{W: r.f32(), H: r.f32()})

		case OpClipPath:
			if r.remaining() < 2 {
				return nil, fail(reasonTruncated)
			}
			switch mode := r.u16(); mode {
			case 0x00:
				ops = append(ops, ClipPath{Op: canvas.ClipIntersect})
			case 0x01:
				ops = append(ops, ClipPath{Op: canvas.ClipDifference})
			default:
				return nil, fail(reasonInvalidEnumerant)
			}

		case OpTransform:
			if r.remaining() < 26 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, Transform{
				A: r.f32(), B: r.f32(),
				C: r.f32(), D: r.f32(),
				E: r.f32(), F: r.f32(),
			})

		case OpScale:
			if r.remaining() < 10 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, Scale{X: r.f32(), Y: r.f32()})

		case OpRotate:
			if r.remaining() < 6 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, Rotate{Radians: r.f32()})

		case OpTranslate:
			if r.remaining() < 10 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, Translate{X: r.f32(), Y: r.f32()})

		case OpFillColor:
			if r.remaining() < 6 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, FillColor{Color: r.color()})

		case OpFillLinear:
			if r.remaining() < 26 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, FillLinear{
				X0: r.f32(), Y0: r.f32(),
				X1: r.f32(), Y1: r.f32(),
				From: r.color(), To: r.color(),
			})

		case OpFillRadial:
			if r.remaining() < 26 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, FillRadial{
				CX: r.f32(), CY: r.f32(),
				InnerRadius: r.f32(), OuterRadius: r.f32(),
				From: r.color(), To: r.color(),
			})

		case OpFillImage:
			if r.remaining() < 2 {
				return nil, fail(reasonTruncated)
			}
			id, ok := r.str()
			if !ok {
				return nil, fail(reasonPayloadTruncated)
			}
			ops = append(ops, FillImage{ID: id})

		case OpFillStream:
			if r.remaining() < 2 {
				return nil, fail(reasonTruncated)
			}
			id, ok := r.str()
			if !ok {
				return nil, fail(reasonPayloadTruncated)
			}
			ops = append(ops, FillStream{ID: id})

		case OpStrokeWidth:
			if r.remaining() < 2 {
				return nil, fail(reasonTruncated)
			}
			ops = append(ops, StrokeWidth{Width: r.quarter()})

		case OpStrokeColor:
			if r.remaining() < 6 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, StrokeColor{Color: r.color()})

		case OpStrokeLinear:
			if r.remaining() < 26 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, StrokeLinear{
				X0: r.f32(), Y0: r.f32(),
				X1: r.f32(), Y1: r.f32(),
				From: r.color(), To: r.color(),
			})

		case OpStrokeRadial:
			if r.remaining() < 26 {
				return nil, fail(reasonTruncated)
			}
			r.off += 2
			ops = append(ops, StrokeRadial{
				CX: r.f32(), CY: r.f32(),
				InnerRadius: r.f32(), OuterRadius: r.f32(),
				From: r.color(), To: r.color(),
			})

		case OpStrokeImage:
			if r.remaining() < 2 {
				return nil, fail(reasonTruncated)
			}
			id, ok := r.str()
			if !ok {
				return nil, fail(reasonPayloadTruncated)
			}
			ops = append(ops, StrokeImage{ID: id})

		case OpStrokeStream:
			if r.remaining() < 2 {
				return nil, fail(reasonTruncated)
			}
			id, ok := r.str()
			if !ok {
				return nil, fail(reasonPayloadTruncated)
			}
			ops = append(ops, StrokeStream{ID: id})

		case OpStrokeCap:
			if r.remaining() < 2 {
				return nil, fail(reasonTruncated)
			}
			switch v := r.u16(); v {
			case 0x00:
				ops = append(ops, StrokeCap{Cap: canvas.LineCapButt})
			case 0x01:
				ops = append(ops, StrokeCap{Cap: canvas.LineCapRound})
			case 0x02:
				ops = append(ops, StrokeCap{Cap: canvas.LineCapSquare})
			default:
				return nil, fail(reasonInvalidEnumerant)
			}

		case OpStrokeJoin:
			if r.remaining() < 2 {
				return nil, fail(reasonTruncated)
			}
			switch v := r.u16(); v {
			case 0x00:
				ops = append(ops, StrokeJoin{Join: canvas.LineJoinBevel})
			case 0x01:
				ops = append(ops, StrokeJoin{Join: canvas.LineJoinRound})
			case 0x02:
				ops = append(ops, StrokeJoin{Join: canvas.LineJoinMiter})
			default:
				return nil, fail(reasonInvalidEnumerant)
			}

		case OpMiterLimit:
			if r.remaining() < 2 {
				return nil, fail(reasonTruncated)
			}
			ops = append(ops, MiterLimit{Limit: float32(r.u16())})

		case OpFont:
			if r.remaining() < 2 {
				return nil, fail(reasonTruncated)
			}
			id, ok := r.str()
			if !ok {
				return nil, fail(reasonPayloadTruncated)
			}
			ops = append(ops, Font{ID: id})

		case OpFontSize:
			if r.remaining() < 2 {
				return nil, fail(reasonTruncated)
			}
			ops = append(ops, FontSize{Size: r.quarter()})

		case OpTextAlign:
			if r.remaining() < 2 {
				return nil, fail(reasonTruncated)
			}
			switch v := r.u16(); v {
			case 0x00:
				ops = append(ops, SetTextAlign{Align: AlignLeft})
			case 0x01:
				ops = append(ops, SetTextAlign{Align: AlignCenter})
			case 0x02:
				ops = append(ops, SetTextAlign{Align: AlignRight})
			default:
				return nil, fail(reasonInvalidEnumerant)
			}

		case OpTextBase:
			if r.remaining() < 2 {
				return nil, fail(reasonTruncated)
			}
			switch v := r.u16(); v {
			case 0x00:
				ops = append(ops, SetTextBase{Base: BaselineTop})
			case 0x01:
				ops = append(ops, SetTextBase{Base: BaselineMiddle})
			case 0x02:
				ops = append(ops, SetTextBase{Base: BaselineAlphabetic})
			case 0x03:
				ops = append(ops, SetTextBase{Base: BaselineBottom})
			default:
				return nil, fail(reasonInvalidEnumerant)
			}

		default:
			return nil, fail(reasonUnsupported)
		}
	}
	return ops, nil
}

// reader walks a script buffer. Callers check remaining() against the
// declared payload size up front; the per-field readers then assume the
// bytes are there.
type reader struct {
	buf []byte
	off int
}

func (r *reader) remaining() int { return len(r.buf) - r.off }

func (r *reader) u16() uint16 {
	v := binary.BigEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v
}

func (r *reader) u32() uint32 {
	v := binary.BigEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v
}

// f32 reconstructs a float from its raw big-endian IEEE-754 bits, so
// NaN payloads and negative zero survive the trip intact.
func (r *reader) f32() float32 {
	return math.Float32frombits(r.u32())
}

// color reads the 4-byte red/green/blue/alpha wire order.
func (r *reader) color() canvas.Color {
	c := canvas.Color{
		R: r.buf[r.off],
		G: r.buf[r.off+1],
		B: r.buf[r.off+2],
		A: r.buf[r.off+3],
	}
	r.off += 4
	return c
}

// quarter reads a 2-byte quarter-unit fixed-point value.
func (r *reader) quarter() float32 {
	return float32(r.u16()) / 4
}

// str reads a 2-byte length prefix followed by the string body. The
// prefix must already be known to be present.
func (r *reader) str() (string, bool) {
	n := int(r.u16())
	return r.strBody(n)
}

// strBody reads n string bytes plus zero padding to the next 4-byte
// boundary. Reports false without advancing if the buffer is short.
func (r *reader) strBody(n int) (string, bool) {
	pad := (4 - n%4) % 4
	if r.remaining() < n+pad {
		return "", false
	}
	s := string(r.buf[r.off : r.off+n])
	r.off += n + pad
	return s, true
}
