package scenic

import "github.com/colibri-cam/scenic-driver-skia/canvas"

// Option configures a Driver during creation.
//
// Example:
//
//	drv := scenic.New(
//	    scenic.WithClearColor(canvas.ARGB(0xFF, 0x10, 0x10, 0x10)),
//	    scenic.WithMaxScriptDepth(16),
//	)
type Option func(*driverOptions)

type driverOptions struct {
	maxDepth   int
	clearColor canvas.Color
	fallback   canvas.Typeface
}

// WithMaxScriptDepth caps script-reference nesting. The cycle guard
// already stops exact cycles; the depth limit additionally bounds
// acyclic nesting. Values below 1 are ignored.
func WithMaxScriptDepth(n int) Option {
	return func(o *driverOptions) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// WithClearColor sets the initial frame clear color. The zero default
// is fully transparent; SetClearColor changes it later.
func WithClearColor(c canvas.Color) Option {
	return func(o *driverOptions) {
		o.clearColor = c
	}
}

// WithFallbackTypeface replaces the built-in fallback font used when a
// script draws text without a registered typeface.
func WithFallbackTypeface(face canvas.Typeface) Option {
	return func(o *driverOptions) {
		if face != nil {
			o.fallback = face
		}
	}
}
