// Package render interprets decoded scripts against a canvas. The
// executor walks operation lists, maintains the graphics state stack
// and resolves resource references; the scene holds the installed
// scripts and the redraw wake signal.
package render

import (
	"github.com/colibri-cam/scenic-driver-skia/canvas"
	"github.com/colibri-cam/scenic-driver-skia/script"
)

// DefaultFontSize is the font size used before a script sets one.
const DefaultFontSize = 12

// DrawState is the interpreter's paint, path and text configuration.
// It is a value type: save snapshots copy it, restore assigns it back.
// Only Path needs deep-copying, which snapshot handles.
//
// Fill and stroke each carry a flat color and an optional shader.
// Setting one clears the other; when a shader is active the color is
// opaque white so the shader alone determines pixel color.
type DrawState struct {
	FillColor  canvas.Color
	FillShader canvas.Shader

	StrokeColor  canvas.Color
	StrokeShader canvas.Shader
	StrokeWidth  float32
	Cap          canvas.LineCap
	Join         canvas.LineJoin
	MiterLimit   float32

	// Path is the in-progress path, lazily created on first use.
	Path *canvas.Path

	FontID   string
	FontSize float32
	Align    script.TextAlign
	Baseline script.TextBaseline
}

// defaultState returns the graphics state every redraw starts from:
// black fill and stroke, 1-unit stroke width, butt cap, miter join,
// miter limit 4, no active path, no font selection, left-aligned,
// alphabetic baseline.
func defaultState() DrawState {
	return DrawState{
		FillColor:   canvas.Black,
		StrokeColor: canvas.Black,
		StrokeWidth: 1,
		Cap:         canvas.LineCapButt,
		Join:        canvas.LineJoinMiter,
		MiterLimit:  4,
		FontSize:    DefaultFontSize,
		Align:       script.AlignLeft,
		Baseline:    script.BaselineAlphabetic,
	}
}

// snapshot returns a copy safe to keep on the save stack. The path is
// cloned so that geometry appended after the save does not leak into
// the snapshot.
func (st *DrawState) snapshot() DrawState {
	cp := *st
	if st.Path != nil {
		cp.Path = st.Path.Clone()
	}
	return cp
}

// path returns the in-progress path, creating it on first use.
func (st *DrawState) path() *canvas.Path {
	if st.Path == nil {
		st.Path = canvas.NewPath()
	}
	return st.Path
}

// setFillColor assigns a flat fill color, clearing any fill shader.
func (st *DrawState) setFillColor(c canvas.Color) {
	st.FillColor = c
	st.FillShader = nil
}

// setFillShader assigns a fill shader. The flat color becomes opaque
// white so the shader, not a tint, determines pixel color.
func (st *DrawState) setFillShader(s canvas.Shader) {
	st.FillShader = s
	st.FillColor = canvas.White
}

func (st *DrawState) setStrokeColor(c canvas.Color) {
	st.StrokeColor = c
	st.StrokeShader = nil
}

func (st *DrawState) setStrokeShader(s canvas.Shader) {
	st.StrokeShader = s
	st.StrokeColor = canvas.White
}

// fillPaint resolves the current fill configuration into a canvas
// paint.
func (st *DrawState) fillPaint() *canvas.Paint {
	return &canvas.Paint{
		Style:  canvas.PaintFill,
		Color:  st.FillColor,
		Shader: st.FillShader,
	}
}

// strokePaint resolves the current stroke configuration into a canvas
// paint.
func (st *DrawState) strokePaint() *canvas.Paint {
	return &canvas.Paint{
		Style:      canvas.PaintStroke,
		Color:      st.StrokeColor,
		Shader:     st.StrokeShader,
		Width:      st.StrokeWidth,
		Cap:        st.Cap,
		Join:       st.Join,
		MiterLimit: st.MiterLimit,
	}
}
