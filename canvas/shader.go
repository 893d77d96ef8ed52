package canvas

// Shader is a paint source defined by a gradient or image instead of a
// flat color. This is a sealed interface: only types in this package
// implement it, so canvas backends can switch exhaustively.
type Shader interface {
	shaderMarker()
}

// LinearGradient is a two-stop linear color transition between two
// points.
type LinearGradient struct {
	X0, Y0 float32
	X1, Y1 float32
	From   Color
	To     Color
}

func (*LinearGradient) shaderMarker() {}

// RadialGradient is a two-stop radial color transition between an inner
// and an outer radius around a center point.
type RadialGradient struct {
	CX, CY      float32
	InnerRadius float32
	OuterRadius float32
	From        Color
	To          Color
}

func (*RadialGradient) shaderMarker() {}

// ImageShader paints with the pixels of a cached image resource.
// Stream marks textures that are replaced frame to frame by the
// embedding environment; backends may skip caching derived state for
// them.
type ImageShader struct {
	ID     string
	Image  Image
	Stream bool
}

func (*ImageShader) shaderMarker() {}
