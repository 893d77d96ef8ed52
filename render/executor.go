package render

import (
	"slices"

	"github.com/colibri-cam/scenic-driver-skia/assets"
	"github.com/colibri-cam/scenic-driver-skia/canvas"
	"github.com/colibri-cam/scenic-driver-skia/internal/logx"
	"github.com/colibri-cam/scenic-driver-skia/script"
)

// DefaultMaxDepth bounds script-reference nesting. The cycle guard only
// prevents exact cycles; the depth limit also stops unbounded acyclic
// nesting from exhausting the call stack.
const DefaultMaxDepth = 64

// Executor interprets scripts against a canvas. Resource stores are
// injected so the engine can run with fake resources in tests; the
// executor only ever reads them.
//
// Execution never fails: a missing script, image or font has a defined
// silent degradation so one stale reference cannot abort a frame.
type Executor struct {
	// Images holds static image resources, Streams holds textures the
	// embedding environment replaces frame to frame.
	Images  *assets.Store[canvas.Image]
	Streams *assets.Store[canvas.Image]
	Fonts   *assets.Store[canvas.Typeface]

	// Fallback is drawn with when a script selects no font or an
	// unregistered one.
	Fallback canvas.Typeface

	// MaxDepth caps script-reference nesting; 0 means DefaultMaxDepth.
	MaxDepth int
}

// Render produces one frame: clear to the scene's clear color, then run
// the root script with a fresh default graphics state. Without a root
// program the frame is just the clear color.
func (ex *Executor) Render(c canvas.Canvas, scene *Scene) {
	scripts, clearColor, hasRoot := scene.snapshot()
	c.Clear(clearColor)
	if !hasRoot {
		return
	}
	st := defaultState()
	var stack []DrawState
	visiting := []string{RootID}
	ex.exec(c, scripts, scripts[RootID], &st, &stack, visiting)
}

// RunScript executes a single installed script against the canvas with
// a fresh default state, without clearing. Used by offline tooling.
func (ex *Executor) RunScript(c canvas.Canvas, scene *Scene, id string) {
	scripts, _, _ := scene.snapshot()
	ops, ok := scripts[id]
	if !ok {
		return
	}
	st := defaultState()
	var stack []DrawState
	ex.exec(c, scripts, ops, &st, &stack, []string{id})
}

func (ex *Executor) maxDepth() int {
	if ex.MaxDepth > 0 {
		return ex.MaxDepth
	}
	return DefaultMaxDepth
}

// exec interprets one operation list. The graphics state and its save
// stack are shared across nested script references, so a sub-script's
// state changes persist in the caller, mirroring inline inclusion.
// visiting holds the identifiers currently on the execution stack.
func (ex *Executor) exec(c canvas.Canvas, scripts map[string][]script.Op, ops []script.Op, st *DrawState, stack *[]DrawState, visiting []string) {
	for _, op := range ops {
		switch v := op.(type) {
		case script.PushState:
			*stack = append(*stack, st.snapshot())
			c.Save()

		case script.PopState:
			// Underflow is a defined no-op: neither state nor canvas
			// changes.
			if n := len(*stack); n > 0 {
				*st = (*stack)[n-1]
				*stack = (*stack)[:n-1]
				c.Restore()
			}

		case script.PopPushState:
			if n := len(*stack); n > 0 {
				*st = (*stack)[n-1].snapshot()
				c.Restore()
				c.Save()
			}

		case script.Transform:
			c.Concat(canvas.Matrix{
				A: v.A, B: v.C, C: v.E,
				D: v.B, E: v.D, F: v.F,
			})
		case script.Translate:
			c.Concat(canvas.Translate(v.X, v.Y))
		case script.Scale:
			c.Concat(canvas.Scale(v.X, v.Y))
		case script.Rotate:
			c.Concat(canvas.Rotate(v.Radians))

		case script.FillColor:
			st.setFillColor(v.Color)
		case script.FillLinear:
			st.setFillShader(&canvas.LinearGradient{
				X0: v.X0, Y0: v.Y0, X1: v.X1, Y1: v.Y1,
				From: v.From, To: v.To,
			})
		case script.FillRadial:
			st.setFillShader(&canvas.RadialGradient{
				CX: v.CX, CY: v.CY,
				InnerRadius: v.InnerRadius, OuterRadius: v.OuterRadius,
				From: v.From, To: v.To,
			})
		case script.FillImage:
			st.setFillShader(ex.imageShader(v.ID, false))
			if st.FillShader == nil {
				// Missing resource renders invisible rather than
				// aborting the frame.
				st.setFillColor(canvas.Transparent)
			}
		case script.FillStream:
			st.setFillShader(ex.imageShader(v.ID, true))
			if st.FillShader == nil {
				st.setFillColor(canvas.Transparent)
			}

		case script.StrokeColor:
			st.setStrokeColor(v.Color)
		case script.StrokeLinear:
			st.setStrokeShader(&canvas.LinearGradient{
				X0: v.X0, Y0: v.Y0, X1: v.X1, Y1: v.Y1,
				From: v.From, To: v.To,
			})
		case script.StrokeRadial:
			st.setStrokeShader(&canvas.RadialGradient{
				CX: v.CX, CY: v.CY,
				InnerRadius: v.InnerRadius, OuterRadius: v.OuterRadius,
				From: v.From, To: v.To,
			})
		case script.StrokeImage:
			st.setStrokeShader(ex.imageShader(v.ID, false))
			if st.StrokeShader == nil {
				st.setStrokeColor(canvas.Transparent)
			}
		case script.StrokeStream:
			st.setStrokeShader(ex.imageShader(v.ID, true))
			if st.StrokeShader == nil {
				st.setStrokeColor(canvas.Transparent)
			}

		case script.StrokeWidth:
			st.StrokeWidth = v.Width
		case script.StrokeCap:
			st.Cap = v.Cap
		case script.StrokeJoin:
			st.Join = v.Join
		case script.MiterLimit:
			st.MiterLimit = v.Limit

		case script.Scissor:
			c.ClipRect(v.W, v.H)
		case script.ClipPath:
			if st.Path != nil && !st.Path.Empty() {
				c.ClipPath(st.Path, v.Op)
			}

		case script.BeginPath:
			st.Path = canvas.NewPath()
		case script.ClosePath:
			if st.Path != nil {
				st.Path.Close()
			}
		case script.FillPath:
			// Fill reads the path without consuming it; a later stroke
			// or clip still sees it.
			if st.Path != nil && !st.Path.Empty() {
				c.DrawPath(st.Path, st.fillPaint())
			}
		case script.StrokePath:
			if st.Path != nil && !st.Path.Empty() {
				c.DrawPath(st.Path, st.strokePaint())
			}
			st.Path = nil

		case script.MoveTo:
			st.path().MoveTo(v.X, v.Y)
		case script.LineTo:
			st.path().LineTo(v.X, v.Y)
		case script.ArcTo:
			st.path().ArcTo(v.X1, v.Y1, v.X2, v.Y2, v.Radius)
		case script.BezierTo:
			st.path().CubicTo(v.C1X, v.C1Y, v.C2X, v.C2Y, v.X, v.Y)
		case script.QuadraticTo:
			st.path().QuadraticTo(v.CX, v.CY, v.X, v.Y)
		case script.PathTriangle:
			st.path().Triangle(v.X0, v.Y0, v.X1, v.Y1, v.X2, v.Y2)
		case script.PathQuad:
			st.path().Quad(v.X0, v.Y0, v.X1, v.Y1, v.X2, v.Y2, v.X3, v.Y3)
		case script.PathRect:
			st.path().Rect(v.W, v.H)
		case script.PathRRect:
			st.path().RoundRect(v.W, v.H, v.Radius)
		case script.PathSector:
			st.path().Sector(v.Radius, v.Radians)
		case script.PathCircle:
			st.path().Circle(v.Radius)
		case script.PathEllipse:
			st.path().Ellipse(v.RX, v.RY)
		case script.PathArc:
			st.path().Arc(v.CX, v.CY, v.Radius, v.Start, v.End, v.Clockwise)

		case script.DrawLine:
			if v.Flags.Fill() {
				c.DrawLine(v.X0, v.Y0, v.X1, v.Y1, st.fillPaint())
			}
			if v.Flags.Stroke() {
				c.DrawLine(v.X0, v.Y0, v.X1, v.Y1, st.strokePaint())
			}
		case script.DrawTriangle:
			p := canvas.NewPath()
			p.Triangle(v.X0, v.Y0, v.X1, v.Y1, v.X2, v.Y2)
			ex.drawShape(c, p, v.Flags, st)
		case script.DrawQuad:
			p := canvas.NewPath()
			p.Quad(v.X0, v.Y0, v.X1, v.Y1, v.X2, v.Y2, v.X3, v.Y3)
			ex.drawShape(c, p, v.Flags, st)
		case script.DrawRect:
			if v.Flags.Fill() {
				c.DrawRect(v.W, v.H, st.fillPaint())
			}
			if v.Flags.Stroke() {
				c.DrawRect(v.W, v.H, st.strokePaint())
			}
		case script.DrawRRect:
			radii := [4]float32{v.Radius, v.Radius, v.Radius, v.Radius}
			if v.Flags.Fill() {
				c.DrawRoundRect(v.W, v.H, radii, st.fillPaint())
			}
			if v.Flags.Stroke() {
				c.DrawRoundRect(v.W, v.H, radii, st.strokePaint())
			}
		case script.DrawRRectVar:
			radii := [4]float32{v.TopLeft, v.TopRight, v.BottomRight, v.BottomLeft}
			if v.Flags.Fill() {
				c.DrawRoundRect(v.W, v.H, radii, st.fillPaint())
			}
			if v.Flags.Stroke() {
				c.DrawRoundRect(v.W, v.H, radii, st.strokePaint())
			}
		case script.DrawArc:
			p := canvas.NewPath()
			p.Arc(0, 0, v.Radius, 0, v.Radians, v.Radians < 0)
			ex.drawShape(c, p, v.Flags, st)
		case script.DrawSector:
			p := canvas.NewPath()
			p.Sector(v.Radius, v.Radians)
			ex.drawShape(c, p, v.Flags, st)
		case script.DrawCircle:
			if v.Flags.Fill() {
				c.DrawCircle(v.Radius, st.fillPaint())
			}
			if v.Flags.Stroke() {
				c.DrawCircle(v.Radius, st.strokePaint())
			}
		case script.DrawEllipse:
			if v.Flags.Fill() {
				c.DrawOval(v.RX, v.RY, st.fillPaint())
			}
			if v.Flags.Stroke() {
				c.DrawOval(v.RX, v.RY, st.strokePaint())
			}

		case script.DrawSprites:
			img, ok := ex.Images.Get(v.ID)
			if !ok {
				logx.Logger().Debug("sprite image missing, skipping batch", "id", v.ID)
				continue
			}
			for _, cmd := range v.Cmds {
				c.DrawImageRect(img,
					canvas.XYWH(cmd.SX, cmd.SY, cmd.SW, cmd.SH),
					canvas.XYWH(cmd.DX, cmd.DY, cmd.DW, cmd.DH),
					cmd.Alpha)
			}

		case script.DrawText:
			ex.drawText(c, st, v.Text)

		case script.DrawScript:
			if slices.Contains(visiting, v.ID) {
				// Cycle guard: render the non-cyclic portion once.
				continue
			}
			if len(visiting) >= ex.maxDepth() {
				logx.Logger().Warn("script nesting too deep, skipping", "id", v.ID, "depth", len(visiting))
				continue
			}
			sub, ok := scripts[v.ID]
			if !ok {
				logx.Logger().Debug("referenced script missing, skipping", "id", v.ID)
				continue
			}
			ex.exec(c, scripts, sub, st, stack, append(visiting, v.ID))

		case script.Font:
			st.FontID = v.ID
		case script.FontSize:
			st.FontSize = v.Size
		case script.SetTextAlign:
			st.Align = v.Align
		case script.SetTextBase:
			st.Baseline = v.Base
		}
	}
}

// drawShape fills and/or strokes an assembled path per the draw flags.
func (ex *Executor) drawShape(c canvas.Canvas, p *canvas.Path, flags script.DrawFlags, st *DrawState) {
	if flags.Fill() {
		c.DrawPath(p, st.fillPaint())
	}
	if flags.Stroke() {
		c.DrawPath(p, st.strokePaint())
	}
}

// imageShader resolves an image or stream resource into a shader, or
// nil when the resource is not registered.
func (ex *Executor) imageShader(id string, stream bool) canvas.Shader {
	store := ex.Images
	if stream {
		store = ex.Streams
	}
	img, ok := store.Get(id)
	if !ok {
		logx.Logger().Debug("paint image missing", "id", id, "stream", stream)
		return nil
	}
	return &canvas.ImageShader{ID: id, Image: img, Stream: stream}
}

// drawText measures the string with the selected typeface, offsets the
// origin per the alignment and baseline settings, and draws with the
// current fill paint.
func (ex *Executor) drawText(c canvas.Canvas, st *DrawState, text string) {
	if text == "" {
		return
	}
	face := ex.typeface(st.FontID)
	if face == nil {
		return
	}
	m := face.Measure(text, st.FontSize)

	var dx float32
	switch st.Align {
	case script.AlignCenter:
		dx = -m.Advance / 2
	case script.AlignRight:
		dx = -m.Advance
	}

	var dy float32
	switch st.Baseline {
	case script.BaselineTop:
		dy = m.Ascent
	case script.BaselineMiddle:
		dy = (m.Ascent - m.Descent) / 2
	case script.BaselineBottom:
		dy = -m.Descent
	}

	c.DrawText(text, dx, dy, face, st.FontSize, st.fillPaint())
}

// typeface resolves the selected font identifier, falling back to the
// built-in face when none is selected or the identifier is not cached.
func (ex *Executor) typeface(id string) canvas.Typeface {
	if id != "" {
		if face, ok := ex.Fonts.Get(id); ok {
			return face
		}
		logx.Logger().Debug("typeface missing, using fallback", "id", id)
	}
	return ex.Fallback
}
