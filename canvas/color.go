package canvas

import "fmt"

// Color is a 32-bit color in the canvas's native alpha-first channel
// order. Script buffers carry colors as red/green/blue/alpha bytes; the
// decoder converts them to this order so the render path never touches
// wire layout again.
type Color struct {
	A, R, G, B uint8
}

// ARGB creates a color from alpha-first components.
func ARGB(a, r, g, b uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// RGBA creates a color from the red/green/blue/alpha order used by
// script producers.
func RGBA(r, g, b, a uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{A: 0xFF}
	White       = Color{A: 0xFF, R: 0xFF, G: 0xFF, B: 0xFF}
)

// Opaque reports whether the color is fully opaque.
func (c Color) Opaque() bool { return c.A == 0xFF }

// String returns the color as an #AARRGGBB literal.
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}
