// Package fontkit parses font files and measures text with HarfBuzz
// shaping via go-text/typesetting. The driver keeps one Face per
// registered typeface; the executor measures strings to position them
// before drawing, and the canvas backend rasterizes with the same face
// so metrics and pixels agree.
package fontkit

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/colibri-cam/scenic-driver-skia/canvas"
)

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has internal
// mutable state and is not safe for concurrent use, but reusing one
// across sequential calls avoids re-allocating its buffers.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Face is a parsed typeface. The underlying font object is read-only
// and safe for concurrent use; per-call font.Face instances are created
// inside Measure because they are not.
type Face struct {
	font *font.Font
}

// Parse parses TTF or OTF font data.
func Parse(data []byte) (*Face, error) {
	f, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontkit: parse font: %w", err)
	}
	return &Face{font: f.Font}, nil
}

var (
	fallbackOnce sync.Once
	fallbackFace *Face
)

// Fallback returns the built-in fallback typeface (Go Regular), used
// when a script draws text without selecting a registered font. The
// face is parsed once and shared.
func Fallback() *Face {
	fallbackOnce.Do(func() {
		f, err := Parse(goregular.TTF)
		if err != nil {
			// The embedded font is known-good; a parse failure means
			// the toolchain is broken.
			panic(fmt.Sprintf("fontkit: parse embedded fallback: %v", err))
		}
		fallbackFace = f
	})
	return fallbackFace
}

// Measure shapes the string at the given size and returns its metrics.
// Text is NFC-normalized first so that composed and decomposed input
// measure identically.
func (f *Face) Measure(text string, size float32) canvas.TextMetrics {
	if text == "" {
		return canvas.TextMetrics{}
	}
	runes := []rune(norm.NFC.String(text))

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f.font),
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	shaperPool.Put(shaper)

	ascent := fixedToFloat(output.LineBounds.Ascent)
	descent := fixedToFloat(output.LineBounds.Descent)
	if descent < 0 {
		// go-text reports descent as a negative offset from the
		// baseline; metrics carry it as a positive distance.
		descent = -descent
	}
	return canvas.TextMetrics{
		Advance: fixedToFloat(output.Advance),
		Ascent:  ascent,
		Descent: descent,
	}
}

// detectScript inspects the runes and returns the script of the first
// non-space character. Mixed-script strings are measured with the
// leading script; splitting runs is left to richer text layers.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

var _ canvas.Typeface = (*Face)(nil)
